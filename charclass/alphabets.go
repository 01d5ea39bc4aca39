// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package charclass

// Latin vowel/consonant partitions (PhonoShift, JP-Native ASCII path).
var (
	VLo = NewSet([]rune("aeiou"))
	VUp = NewSet([]rune("AEIOU"))
	CLo = NewSet([]rune("bcdfghjklmnpqrstvwxyz"))
	CUp = NewSet([]rune("BCDFGHJKLMNPQRSTVWXYZ"))
)

// Portuguese accented vowel partitions. spec.md calls for 24 entries
// each, mirrored lower/upper. The base 22 (5 a-forms, 4 e-forms, 4
// i-forms, 5 o-forms, 4 u-forms) come from the reference Python port;
// two nasalized-tilde forms (ĩ, ũ) are added to the i- and u-groups to
// reach 24 while preserving the port's per-vowel grouping and order —
// see DESIGN.md, Open Question decisions.
var (
	VPTLo = NewSet([]rune("áàâãäéèêëíìîïĩóòôõöúùûüũ"))
	VPTUp = NewSet([]rune("ÁÀÂÃÄÉÈÊËÍÌÎÏĨÓÒÔÕÖÚÙÛÜŨ"))
)

// Cedilla singletons.
var (
	CedLo = NewSet([]rune("ç"))
	CedUp = NewSet([]rune("Ç"))
)

// Contiguous JP scalar ranges.
const (
	HiraLo rune = 0x3041
	HiraHi rune = 0x3096
	KataLo rune = 0x30A1
	KataHi rune = 0x30FA
	KanjiLo rune = 0x4E00
	KanjiHi rune = 0x9FFF
)

// Latin punctuation rotation subsets (PhonoShift optional outer layer).
var (
	POpen     = NewSet([]rune("¿¡"))
	PEndLatin = NewSet([]rune("!?"))
)

// JP punctuation rotation subsets (Kana-Skin / JP-Native optional
// outer layer).
var (
	PEndJP = NewSet([]rune("！？"))
	PMidJP = NewSet([]rune("、。・"))
)

// Kana-Skin cipher alphabets: Latin/PT plain alphabets map onto these
// by index, so each pair below must have equal cardinality to its
// plain counterpart (VLo/VUp/CLo/CUp/VPTLo/VPTUp above).
var (
	CVowLo = NewSet([]rune("あいうえお"))
	CVowUp = NewSet([]rune("アイウエオ"))

	// 21 hiragana/katakana standing in for the 21 Latin consonants, in
	// the same left-to-right order as CLo/CUp ("bcdfghjklmnpqrstvwxyz").
	CConLo = NewSet([]rune("かきくけこさしすせそたちつてとなにぬねのは"))
	CConUp = NewSet([]rune("カキクケコサシスセソタチツテトナニヌネノハ"))

	// 24 voiced/semi-voiced hiragana/katakana standing in for the 24
	// Portuguese accented vowels, in the same order as VPTLo/VPTUp.
	CAccLo = NewSet([]rune("がぎぐげござじずぜぞだぢづでどばびぶべぼぱぴぷぺ"))
	CAccUp = NewSet([]rune("ガギグゲゴザジズゼゾダヂヅデドバビブベボパピプペ"))
)

// Cedilla cipher markers: singleton targets chosen so any shift value
// maps a ç/Ç to the same marker, making the skin-family cedilla leg a
// fixed (not rotated) substitution in both directions.
const (
	CedMarkerLo rune = 'ゞ'
	CedMarkerUp rune = 'ヾ'
)
