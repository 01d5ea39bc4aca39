// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package jpnative implements the JP-Native family: Japanese text
// rotated onto Japanese text, with embedded ASCII letters and digits
// rotated too, and long-vowel/iteration marks left untouched.
package jpnative

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

// domainSuffix derives this family's own keystream, independent of
// PhonoShift/Kana-Skin's, per spec.md §4.1.
const domainSuffix = "|JPNative:v2|AsciiShift"

func digitValue(c rune) (int, bool) {
	if charclass.IsASCIIDigit(c) {
		return int(c - '0'), true
	}
	if c >= '０' && c <= '９' {
		return int(c - '０'), true
	}
	return 0, false
}

// transform is the core operation of spec.md §4.5 (jpnative_transform).
// Separators and stable JP marks pass through without consuming a
// keystream byte. Every other scalar is classified first; the byte is
// consumed only if the scalar belongs to one of the five recognized
// classes, otherwise it passes through unchanged and the cursor does
// not advance.
func transform(text, password string, iterations int, salt string, dir Direction) string {
	if text == "" {
		return text
	}

	runes := []rune(text)
	ks := keystream.Derive(password, salt+domainSuffix, iterations, len(runes)+64)
	cur := keystream.NewCursor(ks)

	out := make([]rune, len(runes))
	for i, c := range runes {
		if charclass.IsSeparator(c) || charclass.IsStableJPMark(c) {
			out[i] = c
			continue
		}

		d, isDigit := digitValue(c)

		switch {
		case charclass.IsASCIIUpper(c) || charclass.IsASCIILower(c):
			upper := charclass.IsASCIIUpper(c)
			lc := charclass.ToLowerASCII(c)
			b := int(cur.Next())
			shift := b * int(dir)
			var rotated rune
			switch {
			case charclass.VLo.Contains(lc):
				rotated = charclass.RotateAllowZero(charclass.VLo, lc, shift)
			case charclass.CLo.Contains(lc):
				rotated = charclass.RotateAllowZero(charclass.CLo, lc, shift)
			default:
				rotated = lc
			}
			if upper {
				rotated = charclass.ToUpperASCII(rotated)
			}
			out[i] = rotated

		case isDigit:
			b := int(cur.Next())
			shift := b * int(dir)
			eff := charclass.EffectiveShift(shift, 10)
			nd := ((d+eff)%10 + 10) % 10
			if dir == EncryptDir {
				out[i] = '０' + rune(nd)
			} else {
				out[i] = '0' + rune(nd)
			}

		case c >= charclass.HiraLo && c <= charclass.HiraHi:
			b := int(cur.Next())
			shift := b * int(dir)
			out[i] = charclass.RotateRangeNoZero(c, shift, charclass.HiraLo, charclass.HiraHi)

		case c >= charclass.KataLo && c <= charclass.KataHi:
			b := int(cur.Next())
			shift := b * int(dir)
			out[i] = charclass.RotateRangeNoZero(c, shift, charclass.KataLo, charclass.KataHi)

		case c >= charclass.KanjiLo && c <= charclass.KanjiHi:
			b := int(cur.Next())
			shift := b * int(dir)
			out[i] = charclass.RotateRangeNoZero(c, shift, charclass.KanjiLo, charclass.KanjiHi)

		default:
			out[i] = c
		}
	}

	return string(out)
}

// Encrypt runs the JP-Native core transform, the unkeyed punctuation
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
