// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package charclass classifies Unicode scalars into alphabet
// partitions and rotates a scalar within its partition by a
// keystream-driven shift. It is the core engine shared by every
// ROT500K family transform.
package charclass

// Set is an ordered, indexable alphabet partition: a cyclic group
// under index rotation. The index map gives O(1) membership and
// index-by-scalar lookup, per the "sum-typed alphabets" guidance —
// short alphabets would work fine with a linear scan, but every
// family transform does this lookup once per input scalar, so the
// map pays for itself immediately.
type Set struct {
	runes []rune
	index map[rune]int
}

// NewSet builds a Set from an ordered sequence of scalars. Panics if
// runes contains a duplicate, since that would make index rotation
// ambiguous — this only happens if a package-level alphabet constant
// below is malformed, so it is a programmer error, not a runtime one.
func NewSet(runes []rune) Set {
	idx := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, dup := idx[r]; dup {
			panic("charclass: duplicate rune in alphabet")
		}
		idx[r] = i
	}
	return Set{runes: runes, index: idx}
}

// Len returns the number of scalars in the set.
func (s Set) Len() int { return len(s.runes) }

// Contains reports whether ch belongs to the set.
func (s Set) Contains(ch rune) bool {
	_, ok := s.index[ch]
	return ok
}

// At returns the scalar at position i mod Len(). Len() must be > 0.
func (s Set) At(i int) rune {
	n := len(s.runes)
	m := i % n
	if m < 0 {
		m += n
	}
	return s.runes[m]
}

// IndexOf returns the position of ch in the set, or -1 if absent.
func (s Set) IndexOf(ch rune) int {
	if i, ok := s.index[ch]; ok {
		return i
	}
	return -1
}

// EffectiveShift returns shift mod n, bumped away from zero: when the
// modular result is 0 and n >= 2, it becomes +1 (shift >= 0) or -1
// (shift < 0). For n <= 1 it is always 0. This guarantees every keyed
// scalar visibly moves, while remaining invertible: negating a
// resulting ±1 stays nonzero.
func EffectiveShift(shift, n int) int {
	if n <= 1 {
		return 0
	}
	m := shift % n
	if m == 0 {
		if shift >= 0 {
			m = 1
		} else {
			m = -1
		}
	}
	return m
}

// RotateNoZero rotates ch within set by shift, passing shift through
// EffectiveShift so the result is never the identity. Scalars outside
// the set are returned unchanged.
func RotateNoZero(set Set, ch rune, shift int) rune {
	idx := set.IndexOf(ch)
	if idx < 0 {
		return ch
	}
	eff := EffectiveShift(shift, set.Len())
	return set.At(idx + eff)
}

// RotateAllowZero rotates ch within set by raw shift mod n, allowing
// the identity rotation. Used only by the JP-Native family's ASCII
// path, where a keystream byte may legitimately mean "no change" in a
// multi-class context.
func RotateAllowZero(set Set, ch rune, shift int) rune {
	idx := set.IndexOf(ch)
	if idx < 0 {
		return ch
	}
	n := set.Len()
	if n <= 1 {
		return ch
	}
	m := shift % n
	return set.At(idx + m)
}

// RotateRangeNoZero is RotateNoZero for an implicit alphabet: the
// closed scalar range [lo, hi] in natural order.
func RotateRangeNoZero(ch rune, shift int, lo, hi rune) rune {
	if ch < lo || ch > hi {
		return ch
	}
	n := int(hi-lo) + 1
	idx := int(ch - lo)
	eff := EffectiveShift(shift, n)
	j := (idx + eff) % n
	if j < 0 {
		j += n
	}
	return lo + rune(j)
}

// IsSeparator reports whether ch is one of the universal separators
// {' ', '-', '\''} that are never rotated and never advance a
// keystream cursor, in every family.
func IsSeparator(ch rune) bool {
	return ch == ' ' || ch == '-' || ch == '\''
}

// IsStableJPMark reports whether ch is one of the JP-Native family's
// preserved marks: the long-vowel mark and the iteration marks.
func IsStableJPMark(ch rune) bool {
	switch ch {
	case 'ー', '々', 'ゝ', 'ゞ', 'ヽ', 'ヾ':
		return true
	default:
		return false
	}
}

// IsASCIIDigit reports whether ch is an ASCII '0'-'9'.
func IsASCIIDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

// IsASCIIUpper reports whether ch is an ASCII 'A'-'Z'.
func IsASCIIUpper(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

// IsASCIILower reports whether ch is an ASCII 'a'-'z'.
func IsASCIILower(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

// ToLowerASCII lowercases an ASCII upper letter; any other scalar
// passes through unchanged.
func ToLowerASCII(ch rune) rune {
	if IsASCIIUpper(ch) {
		return ch | 0x20
	}
	return ch
}

// ToUpperASCII uppercases an ASCII lower letter; any other scalar
// passes through unchanged.
func ToUpperASCII(ch rune) rune {
	if IsASCIILower(ch) {
		return ch &^ 0x20
	}
	return ch
}
