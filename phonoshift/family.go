// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package phonoshift

import "github.com/luxfi/rot500k/charclass"

// TokenDomain is the HMAC domain string for KT check digits, per
// spec.md §4.7.
const TokenDomain = "PhonoShiftTok:v1"

// PrefixDomain is the HMAC domain string for the KP pronounceable
// prefix, per spec.md §4.7.
const PrefixDomain = "PhonoShiftTag:v1"

// checkConsonants is CONSET, the alpha-check alphabet for KT and the
// consonant alphabet for KP syllables.
var checkConsonants = []rune("bcdfghjklmnpqrstvwxyz")

// Family adapts PhonoShift to verify.Family, letting the shared KT
// tokenizer/tagger in package verify drive this family the same way
// it drives kanaskin and jpnative.
type Family struct{}

func (Family) Encrypt(text, password string, iterations int, salt string) string {
	return transform(text, password, iterations, salt, EncryptDir)
}

func (Family) Decrypt(text, password string, iterations int, salt string) string {
	return transform(text, password, iterations, salt, DecryptDir)
}

func (Family) TokenDomain() string { return TokenDomain }

func (Family) IsTokenSeparator(ch rune) bool {
	switch ch {
	case ' ', '-', '\'', '.', ',', '!', '?', ':', ';', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

func (Family) DigitCheckBase() rune { return '0' }

func (Family) AlphaCheckAlphabet() []rune { return checkConsonants }

// UppercaseAware reports that PhonoShift's alpha check digits follow
// the case of the plaintext token: uppercased iff the token has at
// least one ASCII letter and no lowercase ASCII letter.
func (Family) UppercaseAware() bool { return true }

func (Family) IsAllUpperASCII(token string) bool {
	hasLetter := false
	for _, c := range token {
		if charclass.IsASCIILower(c) {
			return false
		}
		if charclass.IsASCIIUpper(c) {
			hasLetter = true
		}
	}
	return hasLetter
}
