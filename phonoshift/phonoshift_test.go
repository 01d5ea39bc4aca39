// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package phonoshift

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var sampleTexts = []string{
	"hello world",
	"Hello World",
	"HELLO WORLD",
	"João da Silva Ação",
	"café com açúcar 123",
	"it's a rock-n-roll life",
	"",
	"12345",
	"aeiou AEIOU bcdfg",
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	for _, text := range sampleTexts {
		for _, shiftPunct := range []bool{true, false} {
			enc := Encrypt(text, "correct horse battery staple", 1000, "NameFPE:v1", shiftPunct)
			dec := Decrypt(enc, "correct horse battery staple", 1000, "NameFPE:v1", shiftPunct)
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

func TestEncryptPreservesSeparatorPositions(t *testing.T) {
	text := "it's a rock-n-roll life"
	enc := Encrypt(text, "pw", 1000, "salt", false)
	tr, er := []rune(text), []rune(enc)
	require.Equal(t, len(tr), len(er))
	for i, c := range tr {
		if c == ' ' || c == '-' || c == '\'' {
			require.Equal(t, c, er[i], "index %d", i)
		}
	}
}

func TestEncryptPreservesDigitClass(t *testing.T) {
	text := "abc123def456"
	enc := []rune(Encrypt(text, "pw", 1000, "salt", false))
	for i, c := range []rune(text) {
		if c >= '0' && c <= '9' {
			require.True(t, enc[i] >= '0' && enc[i] <= '9', "index %d", i)
		}
	}
}

func TestEncryptIsDeterministic(t *testing.T) {
	a := Encrypt("hello world", "pw", 1000, "salt", true)
	b := Encrypt("hello world", "pw", 1000, "salt", true)
	require.Equal(t, a, b)
}

func TestEncryptChangesWithPassword(t *testing.T) {
	a := Encrypt("hello world", "pw1", 1000, "salt", false)
	b := Encrypt("hello world", "pw2", 1000, "salt", false)
	require.NotEqual(t, a, b)
}

func TestFamilyCoreMatchesPackageTransform(t *testing.T) {
	var f Family
	text := "Hello, World! 42"
	gotEnc := f.Encrypt(text, "pw", 1000, "salt")
	wantEnc := transform(text, "pw", 1000, "salt", EncryptDir)
	require.Equal(t, wantEnc, gotEnc)

	gotDec := f.Decrypt(gotEnc, "pw", 1000, "salt")
	wantDec := transform(wantEnc, "pw", 1000, "salt", DecryptDir)
	require.Equal(t, wantDec, gotDec)
	require.Equal(t, text, gotDec)
}

func TestFamilyTokenSeparators(t *testing.T) {
	var f Family
	for _, c := range []rune(" -'.,!?:;\t\n\r") {
		require.True(t, f.IsTokenSeparator(c), "char %q", c)
	}
	require.False(t, f.IsTokenSeparator('a'))
}

func TestFamilyIsAllUpperASCII(t *testing.T) {
	var f Family
	require.True(t, f.IsAllUpperASCII("HELLO"))
	require.False(t, f.IsAllUpperASCII("Hello"))
	require.False(t, f.IsAllUpperASCII("123"))
}

func BenchmarkEncrypt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Encrypt("João da Silva went to the café", "pw", 1000, "salt", true)
	}
}
