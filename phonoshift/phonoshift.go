// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package phonoshift implements the PhonoShift family: Latin/Portuguese
// text rotated onto Latin/Portuguese text, preserving case, digit
// class and the ASCII vowel/consonant partition.
package phonoshift

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

// transform is the core operation of spec.md §4.3
// (phono_transform): a single keystream-driven pass that is its own
// inverse under Direction negation.
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

		if charclass.IsASCIIDigit(c) {
			d := int(c - '0')
			nd := ((d+shift%10)%10 + 10) % 10
			out[i] = '0' + rune(nd)
			continue
		}

		upper := charclass.IsASCIIUpper(c) || charclass.VPTUp.Contains(c) || charclass.CedUp.Contains(c)

		lc := charclass.ToLowerASCII(c)

		switch {
		case charclass.VLo.Contains(lc):
			rotated := charclass.RotateNoZero(charclass.VLo, lc, shift)
			out[i] = applyCase(rotated, upper)
		case charclass.CLo.Contains(lc):
			rotated := charclass.RotateNoZero(charclass.CLo, lc, shift)
			out[i] = applyCase(rotated, upper)
		case charclass.VPTLo.Contains(c):
			out[i] = charclass.RotateNoZero(charclass.VPTLo, c, shift)
		case charclass.VPTUp.Contains(c):
			out[i] = charclass.RotateNoZero(charclass.VPTUp, c, shift)
		case charclass.CedLo.Contains(c):
			out[i] = charclass.RotateNoZero(charclass.CedLo, c, shift)
		case charclass.CedUp.Contains(c):
			out[i] = charclass.RotateNoZero(charclass.CedUp, c, shift)
		default:
			out[i] = c
		}
	}

	return string(out)
}

func applyCase(ch rune, upper bool) rune {
	if upper {
		return charclass.ToUpperASCII(ch)
	}
	return ch
}

// Encrypt runs the PhonoShift core transform forward, then the
// optional Latin punctuation-shift outer layer.
func Encrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	r := transform(text, password, iterations, salt, EncryptDir)
	if shiftPunct {
		r = punct.ShiftLatin(r, password, iterations, salt, punct.Encode)
	}
	return r
}

// Decrypt inverts Encrypt: undo the punctuation shift first, then the
// core transform.
func Decrypt(text, password string, iterations int, salt string, shiftPunct bool) string {
	s := text
	if shiftPunct {
		s = punct.ShiftLatin(s, password, iterations, salt, punct.Decode)
	}
	return transform(s, password, iterations, salt, DecryptDir)
}
