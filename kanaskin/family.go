// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package kanaskin

// TokenDomain is the HMAC domain string for KT check digits, per
// spec.md §4.7.
const TokenDomain = "KanaShiftTok:v2"

// kanaChecks is KANA_CHK, the alpha-check alphabet for the skin
// family's KT mode (no case concept, so no uppercase variant).
var kanaChecks = []rune("さしすせそたちつてとなにぬねのはひふへほま")

// extraKanaSeparators are the kana-family token separators beyond the
// PhonoShift set, per spec.md §4.7.
var extraKanaSeparators = map[rune]struct{}{
	'　': {}, '。': {}, '、': {}, '！': {}, '？': {}, '：': {}, '；': {}, '・': {},
	'「': {}, '」': {}, '『': {}, '』': {}, '（': {}, '）': {}, '［': {}, '］': {}, '｛': {}, '｝': {},
}

// Family adapts Kana-Skin to verify.Family.
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
	}
	_, ok := extraKanaSeparators[ch]
	return ok
}

func (Family) DigitCheckBase() rune { return '０' }

func (Family) AlphaCheckAlphabet() []rune { return kanaChecks }

// UppercaseAware is false: kana has no case concept.
func (Family) UppercaseAware() bool { return false }

func (Family) IsAllUpperASCII(string) bool { return false }
