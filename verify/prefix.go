// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"fmt"
	"strings"

	"github.com/luxfi/rot500k/charclass"
	"github.com/luxfi/rot500k/keystream"
	"github.com/luxfi/rot500k/phonoshift"
	"github.com/luxfi/rot500k/punct"
)

// prefixConsonants and prefixVowels build the two three-syllable
// pronounceable words of the KP prefix.
var (
	prefixConsonants = []rune("bcdfghjklmnpqrstvwxyz")
	prefixVowels      = []rune("aeiou")
)

// ptLetters are the scalars treated as "letters" for KP's case-style
// detection beyond plain ASCII: Portuguese accented vowels and ç/Ç.
func isLetterASCIIOrPT(c rune) bool {
	return charclass.IsASCIIUpper(c) || charclass.IsASCIILower(c) ||
		charclass.VPTLo.Contains(c) || charclass.VPTUp.Contains(c) ||
		charclass.CedLo.Contains(c) || charclass.CedUp.Contains(c)
}

func detectCaseStyle(plain string) string {
	hasLetter, anyUpper, anyLower := false, false, false
	for _, c := range plain {
		if !isLetterASCIIOrPT(c) {
			continue
		}
		hasLetter = true
		switch {
		case charclass.IsASCIIUpper(c):
			anyUpper = true
		case charclass.IsASCIILower(c):
			anyLower = true
		default:
			// Non-ASCII PT letters and ç/Ç carry no case distinction of
			// their own; they count as both, matching the reference
			// port's treatment (neither purely "upper" nor "lower").
			anyUpper = true
			anyLower = true
		}
	}
	if !hasLetter {
		return "title"
	}
	if anyUpper && !anyLower {
		return "upper"
	}
	if anyLower && !anyUpper {
		return "lower"
	}
	return "title"
}

func applyCaseStyleToWord(w, style string) string {
	if w == "" {
		return w
	}
	switch style {
	case "upper":
		return strings.ToUpper(w)
	case "lower":
		return strings.ToLower(w)
	default:
		low := strings.ToLower(w)
		r := []rune(low)
		r[0] = charclass.ToUpperASCII(r[0])
		return string(r)
	}
}

func applyCaseStyleToPhrase(phrase, style string) string {
	words := strings.Split(phrase, " ")
	for i, w := range words {
		words[i] = applyCaseStyleToWord(w, style)
	}
	return strings.Join(words, " ")
}

func pronounceableWord(mac [32]byte, offset, syllables int) string {
	out := make([]rune, 0, syllables*2)
	for i := 0; i < syllables; i++ {
		x := int(mac[(offset+i)&31])
		cIdx := x % len(prefixConsonants)
		vIdx := (x / len(prefixConsonants)) % len(prefixVowels)
		out = append(out, prefixConsonants[cIdx], prefixVowels[vIdx])
	}
	return string(out)
}

var prefixTerminators = [2]string{"? ", "! "}

// buildTagPrefix derives the KP pronounceable prefix for plaintext p,
// per spec.md §4.7. The result always ends in a space.
func buildTagPrefix(p, password string, iterations int, salt string) string {
	msg := fmt.Sprintf("%s|%s|%d|%s", phonoshift.PrefixDomain, salt, iterations, p)
	mac := keystream.HMACSHA256(password, msg)

	w1 := pronounceableWord(mac, 1, 3)
	w2 := pronounceableWord(mac, 4, 3)
	phrase := w1 + " " + w2

	term := prefixTerminators[int(mac[0])%len(prefixTerminators)]
	style := detectCaseStyle(p)
	phrase = applyCaseStyleToPhrase(phrase, style)

	return phrase + term
}

// splitTaggedPrefix locates the first occurrence of "? " or "! " in s
// and splits it into (prefix including the punctuation, cipher after
// the space). Returns ok=false if no such marker exists or the
// remainder would be empty.
func splitTaggedPrefix(s string) (prefix, cipher string, ok bool) {
	runes := []rune(s)
	for i := 0; i < len(runes)-1; i++ {
		if (runes[i] == '?' || runes[i] == '!') && runes[i+1] == ' ' {
			rest := runes[i+2:]
			if len(rest) == 0 {
				return "", "", false
			}
			return string(runes[:i+1]), string(rest), true
		}
	}
	return "", "", false
}

// PrefixTag is the KP encoder (rot500k_prefix_tagged): the family
// core transform, prefixed with a pronounceable, password-derived
// tag, with the optional punctuation shift applied to the whole
// result (prefix included — the shift layer also rotates the
// terminator's "?"/"!", and is reversed symmetrically on decode).
func PrefixTag(text, password string, iterations int, salt string, shiftPunct bool) string {
	var f phonoshift.Family
	cipher := f.Encrypt(text, password, iterations, salt)
	prefix := buildTagPrefix(text, password, iterations, salt)
	out := prefix + cipher
	if shiftPunct {
		out = punct.ShiftLatin(out, password, iterations, salt, punct.Encode)
	}
	return out
}

// PrefixUntag is the KP decoder (rot500k_prefix_tagged_decrypt).
func PrefixUntag(tagged, password string, iterations int, salt string, shiftPunct bool) VerifiedResult {
	s := tagged
	if shiftPunct {
		s = punct.ShiftLatin(s, password, iterations, salt, punct.Decode)
	}

	prefixGiven, cipher, ok := splitTaggedPrefix(s)
	if !ok {
		return VerifiedResult{}
	}

	var f phonoshift.Family
	plain := f.Decrypt(cipher, password, iterations, salt)

	expected := buildTagPrefix(plain, password, iterations, salt)
	expectedNoSpace := expected[:len(expected)-1]

	if expectedNoSpace != prefixGiven {
		return VerifiedResult{}
	}

	return VerifiedResult{OK: true, Value: plain}
}
