// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package kanaskin implements the Kana-Skin family: Latin/Portuguese
// text rotated onto kana, preserving case as a choice of paired
// alphabet rather than a letter-case bit.
package kanaskin

import (
	"github.com/luxfi/rot500k/charclass"
	"github.com/luxfi/rot500k/keystream"
	"github.com/luxfi/rot500k/punct"
)

// Direction is +1 for encrypt, -1 for decrypt.
type Direction int

const (
	EncryptDir Direction = 1
	DecryptDir Direction = -1
)

func digitValue(c rune) (int, bool) {
	if charclass.IsASCIIDigit(c) {
		return int(c - '0'), true
	}
	if c >= '０' && c <= '９' {
		return int(c - '０'), true
	}
	return 0, false
}

// pairRotate rotates ch's index within from by the raw shift mod
// from.Len(), then maps the rotated index into the equal-cardinality
// to alphabet. Used both directions: encode rotates a Latin/PT set
// into its kana counterpart, decode rotates a kana set back into its
// Latin/PT counterpart.
//
// This is raw, allow-zero modular arithmetic, not the no-zero-bump
// EffectiveShift: the (b+1) applied to the keystream byte before shift
// reaches here is what keeps the mapping from going identity, so
// bumping again here would double-compensate and diverge from the
// spec-mandated ciphertext whenever shift mod from.Len() == 0.
func pairRotate(from, to charclass.Set, ch rune, shift int) rune {
	idx := from.IndexOf(ch)
	if idx < 0 {
		return ch
	}
	n := from.Len()
	rawMod := ((shift % n) + n) % n
	return to.At(idx + rawMod)
}

func encodeScalar(c rune, shift int) rune {
	switch {
	case charclass.VLo.Contains(c):
		return pairRotate(charclass.VLo, charclass.CVowLo, c, shift)
	case charclass.CLo.Contains(c):
		return pairRotate(charclass.CLo, charclass.CConLo, c, shift)
	case charclass.VUp.Contains(c):
		return pairRotate(charclass.VUp, charclass.CVowUp, c, shift)
	case charclass.CUp.Contains(c):
		return pairRotate(charclass.CUp, charclass.CConUp, c, shift)
	case charclass.VPTLo.Contains(c):
		return pairRotate(charclass.VPTLo, charclass.CAccLo, c, shift)
	case charclass.VPTUp.Contains(c):
		return pairRotate(charclass.VPTUp, charclass.CAccUp, c, shift)
	case charclass.CedLo.Contains(c):
		return charclass.CedMarkerLo
	case charclass.CedUp.Contains(c):
		return charclass.CedMarkerUp
	default:
		return c
	}
}

func decodeScalar(c rune, shift int) rune {
	switch {
	case charclass.CVowLo.Contains(c):
		return pairRotate(charclass.CVowLo, charclass.VLo, c, shift)
	case charclass.CConLo.Contains(c):
		return pairRotate(charclass.CConLo, charclass.CLo, c, shift)
	case charclass.CVowUp.Contains(c):
		return pairRotate(charclass.CVowUp, charclass.VUp, c, shift)
	case charclass.CConUp.Contains(c):
		return pairRotate(charclass.CConUp, charclass.CUp, c, shift)
	case charclass.CAccLo.Contains(c):
		return pairRotate(charclass.CAccLo, charclass.VPTLo, c, shift)
	case charclass.CAccUp.Contains(c):
		return pairRotate(charclass.CAccUp, charclass.VPTUp, c, shift)
	case c == charclass.CedMarkerLo:
		return 'ç'
	case c == charclass.CedMarkerUp:
		return 'Ç'
	default:
		return c
	}
}

// transform is the core operation of spec.md §4.4 (skin_transform): a
// single keystream-driven pass. Unlike PhonoShift, encode and decode
// are not symmetric under mere direction negation because the cipher
// alphabet differs from the plain one, so each direction dispatches
// through its own scalar classifier.
func transform(text, password string, iterations int, salt string, dir Direction) string {
	if text == "" {
		return text
	}

	runes := []rune(text)
	ks := keystream.Derive(password, salt, iterations, len(runes)+64)
	cur := keystream.NewCursor(ks)

	out := make([]rune, len(runes))
	for i, c := range runes {
		if charclass.IsSeparator(c) {
			out[i] = c
			continue
		}

		b := int(cur.Next())
		shift := (b + 1) * int(dir)

		if d, ok := digitValue(c); ok {
			nd := ((d+shift)%10 + 10) % 10
			if dir == DecryptDir {
				out[i] = '0' + rune(nd)
			} else {
				out[i] = '０' + rune(nd)
			}
			continue
		}

		if dir == EncryptDir {
			out[i] = encodeScalar(c, shift)
		} else {
			out[i] = decodeScalar(c, shift)
		}
	}

	return string(out)
}

// Encrypt runs the skin core transform, the unkeyed punctuation
// translate, then the optional JP punctuation shift.
func Encrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	r := transform(text, password, iterations, salt, EncryptDir)
	r = punct.Translate(r, punct.Encode)
	if shiftPunct {
		r = punct.ShiftJP(r, password, iterations, salt, punct.Encode)
	}
	return r
}

// Decrypt inverts Encrypt.
func Decrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	s := text
	if shiftPunct {
		s = punct.ShiftJP(s, password, iterations, salt, punct.Decode)
	}
	s = punct.Translate(s, punct.Decode)
	return transform(s, password, iterations, salt, DecryptDir)
}
