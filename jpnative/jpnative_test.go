// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jpnative

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sampleTexts = []string{
	"こんにちは世界",
	"カタカナのテスト",
	"ローマ字でabc123も混ざる",
	"長音ー記号と々繰り返し記号",
	"",
	"plain ascii only 42",
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, text := range sampleTexts {
		for _, shiftPunct := range []bool{true, false} {
			enc := Encrypt(text, "pw", 1000, "salt", shiftPunct)
			dec := Decrypt(enc, "pw", 1000, "salt", shiftPunct)
			require.Equal(t, text, dec, "text=%q shiftPunct=%v", text, shiftPunct)
		}
	}
}

func TestEncryptPreservesScalarCount(t *testing.T) {
	for _, text := range sampleTexts {
		enc := Encrypt(text, "pw", 1000, "salt", false)
		require.Equal(t, len([]rune(text)), len([]rune(enc)), "text=%q", text)
	}
}

func TestStableMarksPreserved(t *testing.T) {
	text := "長音ー記号と々繰り返し記号ゝゞヽヾ"
	enc := []rune(Encrypt(text, "pw", 1000, "salt", false))
	for i, c := range []rune(text) {
		switch c {
		case 'ー', '々', 'ゝ', 'ゞ', 'ヽ', 'ヾ':
			require.Equal(t, c, enc[i], "index %d", i)
		}
	}
}

func TestASCIILetterStaysASCIILetterClassAndCase(t *testing.T) {
	enc := []rune(Encrypt("Abc", "pw", 1000, "salt", false))
	require.True(t, enc[0] >= 'A' && enc[0] <= 'Z')
	require.True(t, enc[1] >= 'a' && enc[1] <= 'z')
	require.True(t, enc[2] >= 'a' && enc[2] <= 'z')
}

func TestDigitFullwidthOnEncode(t *testing.T) {
	enc := []rune(Encrypt("5", "pw", 1000, "salt", false))
	require.Len(t, enc, 1)
	require.True(t, enc[0] >= '０' && enc[0] <= '９')
}

func TestFamilyCoreMatchesPackageTransform(t *testing.T) {
	var f Family
	text := "こんにちはabc123"
	gotEnc := f.Encrypt(text, "pw", 1000, "salt")
	wantEnc := transform(text, "pw", 1000, "salt", EncryptDir)
	require.Equal(t, wantEnc, gotEnc)
}

func TestFamilySharesSeparatorsWithKanaSkin(t *testing.T) {
	var f Family
	require.True(t, f.IsTokenSeparator('。'))
	require.True(t, f.IsTokenSeparator(' '))
}

func BenchmarkEncrypt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Encrypt("こんにちは世界、ローマ字abc123も", "pw", 1000, "salt", true)
	}
}
