// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rot500k

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPhonoShiftRoundTrip(t *testing.T) {
	text := "João da Silva"
	enc := Encrypt(text, "pw", DefaultIterations, DefaultSalt, true)
	dec := Decrypt(enc, "pw", DefaultIterations, DefaultSalt, true)
	require.Equal(t, text, dec)
}

func TestTokenTaggedRoundTrip(t *testing.T) {
	text := "hello world this has tokens"
	tagged, err := TokenTagged(text, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	require.NoError(t, err)

	r := TokenTaggedDecrypt(tagged, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	require.True(t, r.OK)
	require.Equal(t, text, r.Value)
}

func TestPrefixTaggedRoundTrip(t *testing.T) {
	text := "hello world"
	tagged := PrefixTagged(text, "pw", DefaultIterations, DefaultSalt, true)
	r := PrefixTaggedDecrypt(tagged, "pw", DefaultIterations, DefaultSalt, true)
	require.True(t, r.OK)
	require.Equal(t, text, r.Value)
}

func TestVRoundTrip(t *testing.T) {
	texts := []string{"hello world with many words", "x", "João"}
	for _, text := range texts {
		enc := V(text, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
		r := VDecrypt(enc, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
		require.True(t, r.OK, "text=%q enc=%q", text, enc)
		require.Equal(t, text, r.Value)
	}
}

func TestVIsDeterministic(t *testing.T) {
	text := "hello world with many words"
	a := V(text, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	b := V(text, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	require.Equal(t, a, b)
}

func TestKanaSkinPlainRoundTrip(t *testing.T) {
	text := "João da Silva"
	enc := KanaSkinEncrypt(text, "pw", DefaultIterations, DefaultSalt, true)
	dec := KanaSkinDecrypt(enc, "pw", DefaultIterations, DefaultSalt, true)
	require.Equal(t, text, dec)
}

func TestKanaSkinTokenRoundTrip(t *testing.T) {
	text := "hello world this has tokens"
	tagged, err := KanaSkinTokenEncrypt(text, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	require.NoError(t, err)

	r := KanaSkinTokenDecrypt(tagged, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	require.True(t, r.OK)
	require.Equal(t, text, r.Value)
}

func TestJPNativePlainRoundTrip(t *testing.T) {
	text := "こんにちは世界abc123"
	enc := JPNativeEncrypt(text, "pw", DefaultIterations, DefaultSalt, true)
	dec := JPNativeDecrypt(enc, "pw", DefaultIterations, DefaultSalt, true)
	require.Equal(t, text, dec)
}

func TestJPNativeTokenRoundTrip(t *testing.T) {
	text := "hello world this has tokens"
	tagged, err := JPNativeTokenEncrypt(text, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	require.NoError(t, err)

	r := JPNativeTokenDecrypt(tagged, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	require.True(t, r.OK)
	require.Equal(t, text, r.Value)
}

func BenchmarkVRoundTrip(b *testing.B) {
	text := "hello world this has many words in it"
	for i := 0; i < b.N; i++ {
		enc := V(text, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
		VDecrypt(enc, "pw", DefaultIterations, DefaultSalt, DefaultCheckChars, true)
	}
}
