// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jpnative

import "github.com/luxfi/rot500k/kanaskin"

// TokenDomain is the HMAC domain string for KT check digits, per
// spec.md §4.7.
const TokenDomain = "KanaShiftTokJP:v2"

// Family adapts JP-Native to verify.Family. Token separators and the
// alpha-check alphabet are shared with Kana-Skin: both families tag
// the same kind of mixed kana/ASCII text.
type Family struct{}

func (Family) Encrypt(text, password string, iterations int, salt string) string {
	return transform(text, password, iterations, salt, EncryptDir)
}

func (Family) Decrypt(text, password string, iterations int, salt string) string {
	return transform(text, password, iterations, salt, DecryptDir)
}

func (Family) TokenDomain() string { return TokenDomain }

func (f Family) IsTokenSeparator(ch rune) bool {
	var skin kanaskin.Family
	return skin.IsTokenSeparator(ch)
}

func (f Family) DigitCheckBase() rune {
	var skin kanaskin.Family
	return skin.DigitCheckBase()
}

func (f Family) AlphaCheckAlphabet() []rune {
	var skin kanaskin.Family
	return skin.AlphaCheckAlphabet()
}

func (Family) UppercaseAware() bool { return false }

func (Family) IsAllUpperASCII(string) bool { return false }
