// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package verify implements the ROT500K verification layer: the
// per-token check-digit mode (KT), the pronounceable-prefix mode (KP,
// PhonoShift only), and the auto-selecting facade (KV, PhonoShift
// only).
package verify

import (
	"errors"
	"fmt"

	"github.com/luxfi/rot500k/charclass"
	"github.com/luxfi/rot500k/keystream"
)

// ErrTokenCountMismatch is the KT-encode structural error: the cipher
// tokenization produced a different token count than the plaintext
// one. Per spec.md §7 this is the one operation in the library that
// can fail outright rather than collapse to a VerifiedResult.
var ErrTokenCountMismatch = errors.New("rot500k: token/check count mismatch")

// ErrUnusedChecks signals a leftover check after attaching, which
// would also indicate a tokenization mismatch between plaintext and
// ciphertext.
var ErrUnusedChecks = errors.New("rot500k: unused checks remain")

// VerifiedResult is the tagged result of every verified decoder: Value
// is the empty string whenever OK is false.
type VerifiedResult struct {
	OK    bool
	Value string
}

// Family is the small seam that lets the KT tokenizer/tagger below be
// written once and reused across PhonoShift, Kana-Skin and JP-Native,
// per spec.md §4.7 and §6's kanashift_*_token_* entries.
type Family interface {
	Encrypt(text, password string, iterations int, salt string) string
	Decrypt(text, password string, iterations int, salt string) string
	TokenDomain() string
	IsTokenSeparator(ch rune) bool
	DigitCheckBase() rune
	AlphaCheckAlphabet() []rune
	UppercaseAware() bool
	IsAllUpperASCII(token string) bool
}

func isDigitScalar(ch rune) bool {
	return charclass.IsASCIIDigit(ch) || (ch >= '０' && ch <= '９')
}

func isAllDigits(token []rune) bool {
	if len(token) == 0 {
		return false
	}
	for _, c := range token {
		if !isDigitScalar(c) {
			return false
		}
	}
	return true
}

// tokenDigest computes the per-token HMAC-SHA256 MAC of spec.md §4.7:
// HMAC-SHA256(password, "DOMAIN|salt|iterations|i|t").
func tokenDigest(f Family, password, salt string, iterations, index int, token string) [32]byte {
	msg := fmt.Sprintf("%s|%s|%d|%d|%s", f.TokenDomain(), salt, iterations, index, token)
	return keystream.HMACSHA256(password, msg)
}

// makeTokenCheck builds the N-scalar check string for one token from
// its MAC, per spec.md §4.7 step 3.
func makeTokenCheck(f Family, token string, mac [32]byte, checkChars int) string {
	n := checkChars
	if n < 1 {
		n = 1
	}

	digits := isAllDigits([]rune(token))
	upperMode := !digits && f.UppercaseAware() && f.IsAllUpperASCII(token)

	alpha := f.AlphaCheckAlphabet()
	digitBase := f.DigitCheckBase()

	out := make([]rune, n)
	for j := 0; j < n; j++ {
		b := int(mac[(j*7)&31])
		if digits {
			out[j] = digitBase + rune(b%10)
			continue
		}
		ch := alpha[b%len(alpha)]
		if upperMode {
			ch = charclass.ToUpperASCII(ch)
		}
		out[j] = ch
	}
	return string(out)
}

// tokenize splits s into (separators-preserved-in-place) tokens using
// f's separator set. It returns the ordered token contents and, for
// each rune of s, whether that rune is a separator (so callers can
// reconstruct the original layout).
func tokenizeTokens(f Family, s string) []string {
	var tokens []string
	var cur []rune
	for _, c := range s {
		if f.IsTokenSeparator(c) {
			if len(cur) > 0 {
				tokens = append(tokens, string(cur))
				cur = cur[:0]
			}
			continue
		}
		cur = append(cur, c)
	}
	if len(cur) > 0 {
		tokens = append(tokens, string(cur))
	}
	return tokens
}

// buildPlainTokenChecks computes the ordered list of check strings for
// every token of the plaintext, in left-to-right token order — the
// "index" in tokenDigest is this emission order (see DESIGN.md, Open
// Question 1).
func buildPlainTokenChecks(f Family, plain, password, salt string, iterations, checkChars int) []string {
	tokens := tokenizeTokens(f, plain)
	checks := make([]string, len(tokens))
	for i, t := range tokens {
		mac := tokenDigest(f, password, salt, iterations, i, t)
		checks[i] = makeTokenCheck(f, t, mac, checkChars)
	}
	return checks
}

// attachChecksToCipher re-tokenizes cipher using f's separator set and
// appends the i-th plaintext-derived check to the i-th cipher token,
// preserving the cipher's own separators in place.
func attachChecksToCipher(f Family, cipher string, checks []string) (string, error) {
	var out []rune
	var cur []rune
	idx := 0

	flush := func() error {
		if len(cur) == 0 {
			return nil
		}
		if idx >= len(checks) {
			return ErrTokenCountMismatch
		}
		out = append(out, cur...)
		out = append(out, []rune(checks[idx])...)
		idx++
		cur = cur[:0]
		return nil
	}

	for _, c := range cipher {
		if f.IsTokenSeparator(c) {
			if err := flush(); err != nil {
				return "", err
			}
			out = append(out, c)
			continue
		}
		cur = append(cur, c)
	}
	if err := flush(); err != nil {
		return "", err
	}

	if idx != len(checks) {
		return "", ErrUnusedChecks
	}
	return string(out), nil
}

// stripChecksFromTagged splits a KT-tagged string back into its base
// ciphertext and the given checks, one per token. Returns ok=false if
// any token is too short to hold a check.
func stripChecksFromTagged(f Family, tagged string, checkChars int) (base string, given []string, ok bool) {
	n := checkChars
	if n < 1 {
		n = 1
	}

	var baseRunes []rune
	var cur []rune

	flush := func() bool {
		if len(cur) == 0 {
			return true
		}
		if len(cur) <= n {
			return false
		}
		chk := cur[len(cur)-n:]
		baseTok := cur[:len(cur)-n]
		given = append(given, string(chk))
		baseRunes = append(baseRunes, baseTok...)
		cur = cur[:0]
		return true
	}

	for _, c := range tagged {
		if f.IsTokenSeparator(c) {
			if !flush() {
				return "", nil, false
			}
			baseRunes = append(baseRunes, c)
			continue
		}
		cur = append(cur, c)
	}
	if !flush() {
		return "", nil, false
	}

	return string(baseRunes), given, true
}

// TokenTag is the KT encoder (rot500k_token_tagged /
// kanashift_*_token_encrypt): encrypt, derive per-token checks from
// the plaintext, attach them to the re-tokenized ciphertext, then
// (kana families only) translate ASCII punctuation to fullwidth, then
// apply the optional keyed punctuation shift.
//
// Per spec.md §4.7 the attach step runs on the bare family-transform
// output, BEFORE punct_translate — not after, as the looser §2
// data-flow diagram might suggest. Since every ASCII punctuation mark
// in the translate table that is also a token separator has its
// fullwidth counterpart in the same separator set, re-tokenizing
// before or after translation agrees for separator-class scalars; the
// only scalars where it matters are "(){}[]" and '"', which are not
// token separators at all, so they ride along inside a token either
// way. spec.md §4.7's prose is the more detailed, operation-specific
// description, so it is the one this module follows.
func TokenTag(f Family, text, password string, iterations int, salt string, checkChars int, translateFn, shiftPunctFn func(s string, encode bool) string) (string, error) {
	cipher := f.Encrypt(text, password, iterations, salt)
	checks := buildPlainTokenChecks(f, text, password, salt, iterations, checkChars)
	out, err := attachChecksToCipher(f, cipher, checks)
	if err != nil {
		return "", err
	}
	if translateFn != nil {
		out = translateFn(out, true)
	}
	if shiftPunctFn != nil {
		out = shiftPunctFn(out, true)
	}
	return out, nil
}

// TokenUntag is the KT decoder: reverse the punctuation shift, then
// (kana families only) reverse the translate, then split off the
// checks, decrypt the base ciphertext, recompute the checks from the
// recovered plaintext, and compare.
func TokenUntag(f Family, tagged, password string, iterations int, salt string, checkChars int, translateFn, shiftPunctFn func(s string, encode bool) string) VerifiedResult {
	s := tagged
	if shiftPunctFn != nil {
		s = shiftPunctFn(s, false)
	}
	if translateFn != nil {
		s = translateFn(s, false)
	}

	base, given, ok := stripChecksFromTagged(f, s, checkChars)
	if !ok {
		return VerifiedResult{}
	}

	plain := f.Decrypt(base, password, iterations, salt)
	expected := buildPlainTokenChecks(f, plain, password, salt, iterations, checkChars)

	if len(expected) != len(given) {
		return VerifiedResult{}
	}
	for i := range expected {
		if expected[i] != given[i] {
			return VerifiedResult{}
		}
	}

	return VerifiedResult{OK: true, Value: plain}
}
