// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"testing"

	"github.com/luxfi/rot500k/phonoshift"
	"github.com/stretchr/testify/require"
)

func TestTokenTagRoundTrip(t *testing.T) {
	var f phonoshift.Family
	texts := []string{
		"hello world",
		"João da Silva",
		"it's a rock-n-roll life",
		"abc123 def456",
	}
	for _, text := range texts {
		for _, checkChars := range []int{1, 2, 3} {
			tagged, err := TokenTag(f, text, "pw", 1000, "salt", checkChars, nil, nil)
			require.NoError(t, err, "text=%q checkChars=%d", text, checkChars)

			r := TokenUntag(f, tagged, "pw", 1000, "salt", checkChars, nil, nil)
			require.True(t, r.OK, "text=%q checkChars=%d", text, checkChars)
			require.Equal(t, text, r.Value)
		}
	}
}

func TestTokenUntagRejectsTamperedCheck(t *testing.T) {
	var f phonoshift.Family
	tagged, err := TokenTag(f, "hello world", "pw", 1000, "salt", 2, nil, nil)
	require.NoError(t, err)

	runes := []rune(tagged)
	// Flip the last scalar of the string, which lives inside the final
	// token's check digits.
	last := runes[len(runes)-1]
	runes[len(runes)-1] = last + 1
	tampered := string(runes)

	r := TokenUntag(f, tampered, "pw", 1000, "salt", 2, nil, nil)
	require.False(t, r.OK)
}

func TestTokenUntagRejectsWrongPassword(t *testing.T) {
	var f phonoshift.Family
	tagged, err := TokenTag(f, "hello world", "pw", 1000, "salt", 1, nil, nil)
	require.NoError(t, err)

	r := TokenUntag(f, tagged, "wrong", 1000, "salt", 1, nil, nil)
	require.False(t, r.OK)
}

func TestTokenTagEmptyText(t *testing.T) {
	var f phonoshift.Family
	tagged, err := TokenTag(f, "", "pw", 1000, "salt", 1, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "", tagged)

	r := TokenUntag(f, tagged, "pw", 1000, "salt", 1, nil, nil)
	require.True(t, r.OK)
	require.Equal(t, "", r.Value)
}

func TestMakeTokenCheckUppercaseAwareness(t *testing.T) {
	var f phonoshift.Family
	mac := tokenDigest(f, "pw", "salt", 1000, 0, "HELLO")
	chk := makeTokenCheck(f, "HELLO", mac, 2)
	for _, c := range chk {
		require.True(t, c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
	}
}

func TestMakeTokenCheckDigitsToken(t *testing.T) {
	var f phonoshift.Family
	mac := tokenDigest(f, "pw", "salt", 1000, 0, "123")
	chk := makeTokenCheck(f, "123", mac, 3)
	for _, c := range chk {
		require.True(t, c >= '0' && c <= '9')
	}
}
