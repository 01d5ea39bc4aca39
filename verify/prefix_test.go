// Copyright (C) 2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixTagRoundTrip(t *testing.T) {
	texts := []string{
		"hello world",
		"JOAO DA SILVA",
		"joao da silva",
		"João Da Silva",
		"abc123",
	}
	for _, text := range texts {
		for _, shiftPunct := range []bool{true, false} {
			tagged := PrefixTag(text, "pw", 1000, "salt", shiftPunct)
			r := PrefixUntag(tagged, "pw", 1000, "salt", shiftPunct)
			require.True(t, r.OK, "text=%q shiftPunct=%v", text, shiftPunct)
			require.Equal(t, text, r.Value)
		}
	}
}

func TestPrefixTagHasPronounceableMarker(t *testing.T) {
	tagged := PrefixTag("hello world", "pw", 1000, "salt", false)
	require.True(t, strings.Contains(tagged, "? ") || strings.Contains(tagged, "! "))
}

func TestPrefixTagMatchesDetectedCaseStyle(t *testing.T) {
	upper := PrefixTag("HELLO WORLD", "pw", 1000, "salt", false)
	prefix, _, ok := splitTaggedPrefix(upper)
	require.True(t, ok)
	require.Equal(t, strings.ToUpper(prefix), prefix)

	lower := PrefixTag("hello world", "pw", 1000, "salt", false)
	prefixLo, _, ok := splitTaggedPrefix(lower)
	require.True(t, ok)
	require.Equal(t, strings.ToLower(prefixLo), prefixLo)
}

func TestPrefixUntagRejectsWrongPassword(t *testing.T) {
	tagged := PrefixTag("hello world", "pw", 1000, "salt", false)
	r := PrefixUntag(tagged, "wrong", 1000, "salt", false)
	require.False(t, r.OK)
}

func TestPrefixUntagRejectsMalformedInput(t *testing.T) {
	r := PrefixUntag("no marker at all", "pw", 1000, "salt", false)
	require.False(t, r.OK)
}

func TestDetectCaseStyle(t *testing.T) {
	require.Equal(t, "upper", detectCaseStyle("HELLO WORLD"))
	require.Equal(t, "lower", detectCaseStyle("hello world"))
	require.Equal(t, "title", detectCaseStyle("Hello World"))
	require.Equal(t, "title", detectCaseStyle("123"))
}
