// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ
FORBIDDENWORD !
COMPOUNDMIN 3
REP 2
REP f ph
REP ph f
MAP 1
MAP aá
PFX A Y 2
PFX A 0 re .
PFX A 0 un .
SFX B Y 1
SFX B 0 s [^sxz]
`

func TestParseDirectives(t *testing.T) {
	data, warnings, err := Parse(strings.NewReader(sampleAff))
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, 3, data.CompoundMin)
	assert.True(t, strings.HasPrefix(data.TrySequence, "esianrtolcdugmphbyfvkwz"))

	forbidden, err := testParseFlag("!")
	require.NoError(t, err)
	assert.True(t, data.SpecialFlagsOf([]Flag{forbidden}).Has(Forbidden))

	require.Equal(t, 2, data.Replacements.Len())

	require.Len(t, data.RelatedChars, 1)
	assert.Contains(t, data.RelatedChars[0], 'á')

	prefixClass, ok := data.PrefixClasses[Flag('A')]
	require.True(t, ok)
	assert.True(t, prefixClass.AllowCross)
	require.Len(t, prefixClass.Entries, 2)

	var derived []string
	data.PrefixCandidates("reattach", func(e *Entry) bool {
		if word, ok := e.StripPrefix("reattach"); ok {
			derived = append(derived, word)
		}
		return true
	})
	assert.Contains(t, derived, "attach")
}

func TestParseSuffixEntryApplyAndStrip(t *testing.T) {
	data, _, err := Parse(strings.NewReader(sampleAff))
	require.NoError(t, err)

	suffixClass := data.SuffixClasses[Flag('B')]
	require.NotNil(t, suffixClass)
	entry := suffixClass.Entries[0]
	derived, ok := entry.ApplySuffix("cat")
	require.True(t, ok)
	assert.Equal(t, "cats", derived)

	stem, ok := entry.StripSuffix("cats")
	require.True(t, ok)
	assert.Equal(t, "cat", stem)

	_, ok = entry.StripSuffix("boxs") // condition [^sxz] rejects stems ending in x
	assert.False(t, ok)
}

func TestParseToleratesMalformedLines(t *testing.T) {
	src := `SET UTF-8
GARBAGE line that means nothing
COMPOUNDMIN notanumber
`
	data, warnings, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.NotEmpty(t, warnings)
	assert.Equal(t, 3, data.CompoundMin) // default retained
}
