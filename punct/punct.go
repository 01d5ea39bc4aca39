// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package punct implements the ROT500K punctuation layer: a fixed,
// unkeyed ASCII<->fullwidth translation table, and two independently
// keyed rotations over small punctuation subsets (Latin "upside-down"
// marks and JP fullwidth marks).
package punct

import (
	"github.com/luxfi/rot500k/charclass"
	"github.com/luxfi/rot500k/keystream"
)

// Direction is +1 for encode, -1 for decode.
type Direction int

const (
	Encode Direction = 1
	Decode Direction = -1
)

// asciiToFullwidth is the byte-exact table from spec.md §4.6.
var asciiToFullwidth = map[rune]rune{
	'?': '？', '!': '！', ',': '、', '.': '。',
	':': '：', ';': '；',
	'(': '（', ')': '）',
	'[': '［', ']': '］',
	'{': '｛', '}': '｝',
	'"': '＂',
}

var fullwidthToASCII = reverse(asciiToFullwidth)

func reverse(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// Translate applies the ASCII<->fullwidth punctuation table. Encode
// maps ASCII to fullwidth; Decode inverts. Scalars outside the table
// pass through unchanged. This is deterministic and unkeyed.
func Translate(s string, dir Direction) string {
	table := asciiToFullwidth
	if dir == Decode {
		table = fullwidthToASCII
	}
	out := make([]rune, 0, len(s))
	for _, ch := range s {
		if mapped, ok := table[ch]; ok {
			out = append(out, mapped)
		} else {
			out = append(out, ch)
		}
	}
	return string(out)
}

// domainSuffixLatin and domainSuffixJP derive layer-distinct
// keystreams for the two punctuation-shift sub-layers, per spec.md
// §4.1.
const (
	domainSuffixLatin = "|PunctShift:v1"
	domainSuffixJP    = "|PunctShiftJP:v2"
)

// ShiftLatin rotates each scalar of s that belongs to P_OPEN ("¿¡") or
// P_END_LATIN ("!?") within its own subset, consuming one keystream
// byte per matching scalar with shift = (b+1)*dir. Non-matching
// scalars pass through and do not advance the cursor.
func ShiftLatin(s, password string, iterations int, salt string, dir Direction) string {
	return shift(s, password, iterations, salt+domainSuffixLatin, dir, true, charclass.POpen, charclass.PEndLatin)
}

// ShiftJP rotates each scalar of s that belongs to P_END_JP ("！？")
// or P_MID_JP ("、。・") within its own subset, consuming one
// keystream byte per matching scalar with shift = b*dir (no +1 — the
// no-zero rotator still guarantees movement).
func ShiftJP(s, password string, iterations int, salt string, dir Direction) string {
	return shift(s, password, iterations, salt+domainSuffixJP, dir, false, charclass.PEndJP, charclass.PMidJP)
}

func shift(s, password string, iterations int, domainSalt string, dir Direction, plusOne bool, sets ...charclass.Set) string {
	if s == "" {
		return s
	}

	need := 0
	runes := []rune(s)
	for _, ch := range runes {
		for _, set := range sets {
			if set.Contains(ch) {
				need++
				break
			}
		}
	}
	if need == 0 {
		return s
	}

	ks := keystream.Derive(password, domainSalt, iterations, need+64)
	cur := keystream.NewCursor(ks)

	out := make([]rune, len(runes))
	for i, ch := range runes {
		matched := false
		for _, set := range sets {
			if !set.Contains(ch) {
				continue
			}
			matched = true
			b := int(cur.Next())
			shiftVal := b * int(dir)
			if plusOne {
				shiftVal = (b + 1) * int(dir)
			}
			out[i] = charclass.RotateNoZero(set, ch, shiftVal)
			break
		}
		if !matched {
			out[i] = ch
		}
	}
	return string(out)
}
