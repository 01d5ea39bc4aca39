// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package rot500k is the public facade over the ROT500K family of
// keyed, format-preserving text obfuscation schemes: PhonoShift
// (Latin/Portuguese text onto the same alphabet), Kana-Skin
// (Latin/Portuguese text onto kana) and JP-Native (Japanese text with
// embedded ASCII rotated too), each with plain, per-token-tagged and
// (PhonoShift only) pronounceable-prefix-tagged and auto-selecting
// verified modes.
package rot500k

import (
	"github.com/luxfi/rot500k/jpnative"
	"github.com/luxfi/rot500k/kanaskin"
	"github.com/luxfi/rot500k/phonoshift"
	"github.com/luxfi/rot500k/verify"
)

// Default parameters, per spec.md §6.
const (
	DefaultIterations = 500000
	DefaultSalt       = "NameFPE:v1"
	DefaultCheckChars = 1
)

// VerifiedResult is the tagged result of every verified decoder.
type VerifiedResult = verify.VerifiedResult

// ErrTokenCountMismatch is returned by the Token* encoders when the
// cipher and plaintext tokenizations disagree in count.
var ErrTokenCountMismatch = verify.ErrTokenCountMismatch

var (
	phonoFamily phonoshift.Family
	skinFamily  kanaskin.Family
	jpFamily    jpnative.Family
)

// Encrypt is the PhonoShift encoder (rot500k_encrypt).
func Encrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	return phonoshift.Encrypt(text, password, iterations, salt, shiftPunct)
}

// Decrypt is the PhonoShift decoder (rot500k_decrypt).
func Decrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	return phonoshift.Decrypt(text, password, iterations, salt, shiftPunct)
}

// TokenTagged is the PhonoShift KT encoder (rot500k_token_tagged).
func TokenTagged(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) (string, error) {
	var translateFn func(s string, encode bool) string
	var shiftFn func(s string, encode bool) string
	if shiftPunct {
		shiftFn = punctShiftLatinAdapter(password, iterations, salt)
	}
	return verify.TokenTag(phonoFamily, text, password, iterations, salt, checkChars, translateFn, shiftFn)
}

// TokenTaggedDecrypt is the PhonoShift KT decoder.
func TokenTaggedDecrypt(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) VerifiedResult {
	var translateFn func(s string, encode bool) string
	var shiftFn func(s string, encode bool) string
	if shiftPunct {
		shiftFn = punctShiftLatinAdapter(password, iterations, salt)
	}
	return verify.TokenUntag(phonoFamily, text, password, iterations, salt, checkChars, translateFn, shiftFn)
}

// PrefixTagged is the PhonoShift KP encoder (rot500k_prefix_tagged).
func PrefixTagged(text, password string, iterations int, salt string, shiftPunct bool) string {
	return verify.PrefixTag(text, password, iterations, salt, shiftPunct)
}

// PrefixTaggedDecrypt is the PhonoShift KP decoder.
func PrefixTaggedDecrypt(text, password string, iterations int, salt string, shiftPunct bool) VerifiedResult {
	return verify.PrefixUntag(text, password, iterations, salt, shiftPunct)
}

// V is the PhonoShift KV auto-selecting encoder (rot500kv).
func V(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) string {
	return verify.Auto(text, password, iterations, salt, checkChars, shiftPunct)
}

// VDecrypt is the PhonoShift KV auto-selecting decoder
// (rot500kv_decrypt).
func VDecrypt(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) VerifiedResult {
	return verify.AutoDecrypt(text, password, iterations, salt, checkChars, shiftPunct)
}

// KanaSkinEncrypt is the Kana-Skin encoder.
func KanaSkinEncrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	return kanaskin.Encrypt(text, password, iterations, salt, shiftPunct)
}

// KanaSkinDecrypt is the Kana-Skin decoder.
func KanaSkinDecrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	return kanaskin.Decrypt(text, password, iterations, salt, shiftPunct)
}

// KanaSkinTokenEncrypt is the Kana-Skin KT encoder.
func KanaSkinTokenEncrypt(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) (string, error) {
	translateFn := punctTranslateAdapter()
	var shiftFn func(s string, encode bool) string
	if shiftPunct {
		shiftFn = punctShiftJPAdapter(password, iterations, salt)
	}
	return verify.TokenTag(skinFamily, text, password, iterations, salt, checkChars, translateFn, shiftFn)
}

// KanaSkinTokenDecrypt is the Kana-Skin KT decoder.
func KanaSkinTokenDecrypt(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) VerifiedResult {
	translateFn := punctTranslateAdapter()
	var shiftFn func(s string, encode bool) string
	if shiftPunct {
		shiftFn = punctShiftJPAdapter(password, iterations, salt)
	}
	return verify.TokenUntag(skinFamily, text, password, iterations, salt, checkChars, translateFn, shiftFn)
}

// JPNativeEncrypt is the JP-Native encoder.
func JPNativeEncrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	return jpnative.Encrypt(text, password, iterations, salt, shiftPunct)
}

// JPNativeDecrypt is the JP-Native decoder.
func JPNativeDecrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	return jpnative.Decrypt(text, password, iterations, salt, shiftPunct)
}

// JPNativeTokenEncrypt is the JP-Native KT encoder.
func JPNativeTokenEncrypt(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) (string, error) {
	translateFn := punctTranslateAdapter()
	var shiftFn func(s string, encode bool) string
	if shiftPunct {
		shiftFn = punctShiftJPAdapter(password, iterations, salt)
	}
	return verify.TokenTag(jpFamily, text, password, iterations, salt, checkChars, translateFn, shiftFn)
}

// JPNativeTokenDecrypt is the JP-Native KT decoder.
func JPNativeTokenDecrypt(text, password string, iterations int, salt string, checkChars int, shiftPunct bool) VerifiedResult {
	translateFn := punctTranslateAdapter()
	var shiftFn func(s string, encode bool) string
	if shiftPunct {
		shiftFn = punctShiftJPAdapter(password, iterations, salt)
	}
	return verify.TokenUntag(jpFamily, text, password, iterations, salt, checkChars, translateFn, shiftFn)
}
