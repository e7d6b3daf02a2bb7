// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSuggestRepWithSpace mirrors the classic "alot" -> "a lot" REP
// scenario: the REP table's "_" convention encodes a literal space in
// the replacement, and the resulting two-word candidate is validated
// token-by-token rather than as a single misspelled word.
func TestSuggestRepWithSpace(t *testing.T) {
	const aff = `SET UTF-8
REP 1
REP alot a_lot
`
	const dic = `2
a
lot
`
	sp := loadFixture(t, aff, dic)
	assert.False(t, sp.Spellcheck("alot"))
	assert.Contains(t, sp.Suggestions("alot", 3), "a lot")
}

// TestSuggestAddCharacter checks the add-character source: inserting
// a missing leading "a" from the TRY alphabet recovers "appear".
func TestSuggestAddCharacter(t *testing.T) {
	const aff = `SET UTF-8
TRY aeprs
`
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	assert.Contains(t, sp.Suggestions("ppear", 5), "appear")
}

// TestSuggestDeleteCharacter checks the delete-character source: an
// extra trailing "r" is dropped to recover "appear".
func TestSuggestDeleteCharacter(t *testing.T) {
	const aff = "SET UTF-8\n"
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	suggestions := sp.Suggestions("appearr", 3)
	assert.Contains(t, suggestions, "appear")
	assert.LessOrEqual(t, len(suggestions), 3)
}

// TestSuggestMaxCap checks that Suggestions never returns more than
// the requested max, even when a source could produce more.
func TestSuggestMaxCap(t *testing.T) {
	const aff = "SET UTF-8\n"
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	assert.Equal(t, []string{"appear"}, sp.Suggestions("appearr", 1))
}

// TestSuggestSwapAdjacent checks adjacent-transposition recovery.
func TestSuggestSwapAdjacent(t *testing.T) {
	const aff = "SET UTF-8\n"
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	assert.Contains(t, sp.Suggestions("appaer", 3), "appear")
}

// TestSuggestSwapDistance checks transposition of two characters that
// are not adjacent: swapping the runes at positions 0 and 2 of
// "ppaear" recovers "appear".
func TestSuggestSwapDistance(t *testing.T) {
	const aff = "SET UTF-8\n"
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	assert.Contains(t, sp.Suggestions("ppaear", 5), "appear")
}

// TestSuggestReplaceCharacter checks the replace-character source:
// substituting the TRY alphabet's "a" for the wrong letter at one
// position recovers "appear".
func TestSuggestReplaceCharacter(t *testing.T) {
	const aff = `SET UTF-8
TRY a
`
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	assert.Contains(t, sp.Suggestions("appesr", 3), "appear")
}

// TestSuggestRelatedChar checks MAP-group substitution: "a" and "i"
// are declared related, so "ippear" recovers "appear" by substituting
// the related character at the mismatched position.
func TestSuggestRelatedChar(t *testing.T) {
	const aff = `SET UTF-8
MAP 1
MAP ai
`
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	assert.Contains(t, sp.Suggestions("ippear", 3), "appear")
}

// TestSuggestSplitWord checks that an interior split recovers two
// independently valid words joined by a space, without either half
// needing a REP entry.
func TestSuggestSplitWord(t *testing.T) {
	const aff = "SET UTF-8\n"
	const dic = `2
in
spite
`
	sp := loadFixture(t, aff, dic)
	assert.False(t, sp.Spellcheck("inspite"))
	assert.Contains(t, sp.Suggestions("inspite", 5), "in spite")
}

// TestSuggestSplitWordHyphen checks that a hyphenated split is also
// proposed when the break table allows a "-" split.
func TestSuggestSplitWordHyphen(t *testing.T) {
	const aff = `SET UTF-8
BREAK 1
BREAK -
`
	const dic = `2
scot
free
`
	sp := loadFixture(t, aff, dic)
	suggestions := sp.Suggestions("scotfree", 5)
	assert.Contains(t, suggestions, "scot free")
	assert.Contains(t, suggestions, "scot-free")
}

// TestSuggestCaseFix checks that a lower-cased misspelling of a
// capitalized-only lemma (a proper noun) is corrected by title-casing
// it, even though plain Spellcheck of the lower-cased form fails.
func TestSuggestCaseFix(t *testing.T) {
	const aff = "SET UTF-8\n"
	const dic = `1
Alberta
`
	sp := loadFixture(t, aff, dic)
	assert.False(t, sp.Spellcheck("alberta"))
	assert.Contains(t, sp.Suggestions("alberta", 3), "Alberta")
}

// TestSuggestKeyboardAdjacency checks the keyboard-adjacency source:
// "y" and "t" are neighbors on the declared row, so "yree" recovers
// "tree".
func TestSuggestKeyboardAdjacency(t *testing.T) {
	const aff = `SET UTF-8
KEY qwertyuiop
`
	const dic = `1
tree
`
	sp := loadFixture(t, aff, dic)
	assert.Contains(t, sp.Suggestions("yree", 3), "tree")
}

// TestSuggestNeedAffix mirrors the needaffix suggestion scenario: a
// lemma that cannot stand alone still anchors a prefixed form, and
// that prefixed form (not the bare lemma) is the one offered as a
// suggestion.
func TestSuggestNeedAffix(t *testing.T) {
	const aff = `SET UTF-8
NEEDAFFIX N

PFX A Y 1
PFX A 0 a .
`
	const dic = `1
typical/NA
`
	sp := loadFixture(t, aff, dic)
	assert.True(t, sp.Spellcheck("atypical"))
	assert.False(t, sp.Spellcheck("typical"))

	suggestions := sp.Suggestions("attypical", 3)
	assert.Contains(t, suggestions, "atypical")
	assert.NotContains(t, suggestions, "typical")
}

// TestSuggestOrderingPreference checks that a REP-table hit (the
// first source tried) is preferred when a duplicate would also be
// produced by a later source.
func TestSuggestOrderingPreference(t *testing.T) {
	const aff = `SET UTF-8
REP 1
REP x a
`
	const dic = `1
appear
`
	sp := loadFixture(t, aff, dic)
	suggestions := sp.Suggestions("xppear", 1)
	assert.Equal(t, []string{"appear"}, suggestions)
}
