// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rot500k

import "github.com/luxfi/rot500k/punct"

// punctShiftLatinAdapter and punctShiftJPAdapter adapt punct's keyed
// shift layers to the (s string, encode bool) string shape the verify
// package's KT tagger/untagger expects for its optional outer layer.
func punctShiftLatinAdapter(password string, iterations int, salt string) func(s string, encode bool) string {
	return func(s string, encode bool) string {
		dir := punct.Decode
		if encode {
			dir = punct.Encode
		}
		return punct.ShiftLatin(s, password, iterations, salt, dir)
	}
}

func punctShiftJPAdapter(password string, iterations int, salt string) func(s string, encode bool) string {
	return func(s string, encode bool) string {
		dir := punct.Decode
		if encode {
			dir = punct.Encode
		}
		return punct.ShiftJP(s, password, iterations, salt, dir)
	}
}

// punctTranslateAdapter adapts the unkeyed ASCII<->fullwidth table to
// the same shape, used by the kana families' KT mode between attach
// and the optional keyed JP shift.
func punctTranslateAdapter() func(s string, encode bool) string {
	return func(s string, encode bool) string {
		dir := punct.Decode
		if encode {
			dir = punct.Encode
		}
		return punct.Translate(s, dir)
	}
}
