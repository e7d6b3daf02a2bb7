// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEntryStripPrefixConditionSeesFullStem guards against pruning a
// bracket-free condition against the overlapping strip characters: the
// condition must be checked against the reconstructed stem (strip
// included), not against the bare remainder after the affix is peeled
// off. Strip "ab", affix "xyz", condition "abc" on lemma "abcdef/A"
// derives surface word "xyzcdef"; stripping xyz and re-prepending "ab"
// reconstructs "abcdef", which starts with "abc".
func TestEntryStripPrefixConditionSeesFullStem(t *testing.T) {
	e := &Entry{
		Flag:      'A',
		Strip:     "ab",
		Affix:     "xyz",
		Condition: NewPrefixCondition("abc"),
	}
	stem, ok := e.StripPrefix("xyzcdef")
	require.True(t, ok)
	assert.Equal(t, "abcdef", stem)
}

// TestEntryStripSuffixConditionSeesFullStem mirrors
// TestEntryStripPrefixConditionSeesFullStem for suffixes: "bunny" ->
// "bunnies" under strip "y", affix "ies", condition "ny" (the stem
// must end in "ny" once "y" is reattached).
func TestEntryStripSuffixConditionSeesFullStem(t *testing.T) {
	e := &Entry{
		Flag:      'T',
		Strip:     "y",
		Affix:     "ies",
		Condition: NewSuffixCondition("ny"),
	}
	stem, ok := e.StripSuffix("bunnies")
	require.True(t, ok)
	assert.Equal(t, "bunny", stem)
}
