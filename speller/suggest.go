// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"sort"
	"strings"

	"github.com/gospell/hunspell/delins"
	"github.com/gospell/hunspell/ngram"
)

// maxAttemptsPerSource bounds how many raw candidates a single
// suggestion source may generate before giving up, independent of the
// overall max requested by the caller. This is what keeps suggestion
// generation's worst case bounded by the TRY/MAP alphabet size rather
// than by pathological words.
const maxAttemptsPerSource = 1000

// suggCollector accumulates accepted suggestions across sources, in
// the order spec'd: earlier sources win ties, a priority hit (from
// the REP table) ends generation early, and no source may emit more
// than maxAttemptsPerSource raw candidates.
type suggCollector struct {
	s    *HunspellSpeller
	word string
	cap  CapStyle

	max         int
	suggestions []string
	seen        map[string]bool
	attempts    int
	done        bool
}

func newSuggCollector(s *HunspellSpeller, word string, max int) *suggCollector {
	return &suggCollector{
		s:    s,
		word: word,
		cap:  Classify(word),
		max:  max,
		seen: make(map[string]bool),
	}
}

func (c *suggCollector) full() bool {
	return c.done || len(c.suggestions) >= c.max
}

func (c *suggCollector) newSource() {
	c.attempts = 0
}

// tryCandidate runs one raw candidate through the capitalization-aware
// acceptance rule and records it if accepted. It returns false once
// the collector should stop asking this source for more candidates
// (full, done, or the per-source attempt cap was hit).
func (c *suggCollector) tryCandidate(raw string, priority bool) bool {
	if c.full() {
		return false
	}
	c.attempts++
	if c.attempts > maxAttemptsPerSource {
		return false
	}
	if raw == c.word || c.seen[raw] {
		return true
	}

	final, ok := c.s.acceptForSuggestion(raw, c.cap)
	if !ok {
		return true
	}

	c.seen[raw] = true
	c.suggestions = append(c.suggestions, c.s.affix.Oconv.Convert(final))
	if priority {
		c.done = true
	}
	return !c.full()
}

// emitDirect records candidate without routing it through the normal
// single-word acceptance test, for multi-token candidates like a
// split-word's "left right" that Spellcheck was never meant to parse.
func (c *suggCollector) emitDirect(candidate string, priority bool) bool {
	if c.full() {
		return false
	}
	c.attempts++
	if c.attempts > maxAttemptsPerSource {
		return false
	}
	if candidate == c.word || c.seen[candidate] {
		return true
	}
	c.seen[candidate] = true
	c.suggestions = append(c.suggestions, c.s.affix.Oconv.Convert(candidate))
	if priority {
		c.done = true
	}
	return !c.full()
}

// acceptForSuggestion implements spec steps 1-4 of suggestion
// filtering for one raw candidate: try the cap-aware retry first
// (title-case for a Capitalized original, upper-case for AllCaps,
// checked as a standalone word with no break splitting), falling back
// to ordinary Spellcheck.
func (s *HunspellSpeller) acceptForSuggestion(raw string, cap CapStyle) (string, bool) {
	switch cap {
	case Capitalized:
		if title := Titlecase(raw); s.acceptWordNoBreak(title) {
			return title, true
		}
	case AllCaps:
		if upper := Uppercase(raw); s.acceptWordNoBreak(upper) {
			return upper, true
		}
	}
	if s.Spellcheck(raw) {
		return raw, true
	}
	return "", false
}

// acceptWordNoBreak runs the direct-hit/affix-strip/compound checks
// (steps 5-10) against word taken literally, without the casing
// variant loop or break splitting that Spellcheck layers on top.
func (s *HunspellSpeller) acceptWordNoBreak(word string) bool {
	if wi, ok := s.dict.Lookup(word); ok && s.acceptDirectRoot(wi, true) {
		return true
	}
	if s.tryAffixStrip(word, true) {
		return true
	}
	if len(s.affix.CompoundRules) > 0 || s.hasFlatCompoundFlags() {
		if s.tryCompound(word) {
			return true
		}
	}
	return false
}

// Suggestions implements Speller.
func (s *HunspellSpeller) Suggestions(word string, max int) []string {
	if max <= 0 {
		return nil
	}
	word = s.affix.Iconv.Convert(word)
	c := newSuggCollector(s, word, max)

	sources := []func(*suggCollector){
		sourceRep,
		sourceKeyboard,
		sourceAdd,
		sourceDelete,
		sourceSwapAdjacent,
		sourceSwapDistance,
		sourceReplace,
		sourceRelatedChar,
		sourceSplitWord,
		sourceCaseFix,
		sourceNgramFallback,
	}

	for _, src := range sources {
		if c.full() {
			break
		}
		c.newSource()
		src(c)
	}

	return c.suggestions
}

// sourceRep proposes REP-table substitutions. A REP entry's "to" side
// may itself contain a space (the "_" convention lets an affix file
// write one, e.g. mapping "alot" to "a lot"); such a candidate is
// never going to pass whole-word acceptance, so each space-separated
// token is checked on its own instead, mirroring how split-word
// validates its two halves. Only a single-word hit is a priority
// candidate that ends generation early; a multi-token candidate falls
// through to the remaining sources like any other suggestion.
func sourceRep(c *suggCollector) {
	c.s.affix.Replacements.Suggest(c.word, func(cand string) bool {
		if !strings.Contains(cand, " ") {
			return c.tryCandidate(cand, true)
		}
		for _, tok := range strings.Fields(cand) {
			if !c.s.acceptWordNoBreak(tok) {
				return true
			}
		}
		return c.emitDirect(cand, false)
	})
}

// sourceKeyboard proposes substituting each character of the word
// with one of its physically-adjacent neighbors on a KEY-declared
// keyboard row. This isn't one of the original suggestion sources
// (the original crate parses KEY but never uses it for suggestions);
// it's a natural fit for the data KEY already carries.
func sourceKeyboard(c *suggCollector) {
	rows := c.s.affix.KeyboardRows
	if len(rows) == 0 {
		return
	}
	runes := []rune(c.word)
	for i := range runes {
		for _, row := range rows {
			rowRunes := []rune(row)
			pos := -1
			for j, r := range rowRunes {
				if r == runes[i] {
					pos = j
					break
				}
			}
			if pos < 0 {
				continue
			}
			neighbors := make([]rune, 0, 2)
			if pos > 0 {
				neighbors = append(neighbors, rowRunes[pos-1])
			}
			if pos < len(rowRunes)-1 {
				neighbors = append(neighbors, rowRunes[pos+1])
			}
			for _, n := range neighbors {
				cand := append(append([]rune{}, runes[:i]...), n)
				cand = append(cand, runes[i+1:]...)
				if !c.tryCandidate(string(cand), false) {
					return
				}
			}
		}
	}
}

func sourceAdd(c *suggCollector) {
	try := c.s.affix.TrySequence
	if try == "" {
		return
	}
	runes := []rune(c.word)
	for _, tc := range try {
		for i := 0; i <= len(runes); i++ {
			cand := make([]rune, 0, len(runes)+1)
			cand = append(cand, runes[:i]...)
			cand = append(cand, tc)
			cand = append(cand, runes[i:]...)
			if !c.tryCandidate(string(cand), false) {
				return
			}
		}
	}
}

func sourceDelete(c *suggCollector) {
	runes := []rune(c.word)
	for i := range runes {
		cand := make([]rune, 0, len(runes)-1)
		cand = append(cand, runes[:i]...)
		cand = append(cand, runes[i+1:]...)
		if !c.tryCandidate(string(cand), false) {
			return
		}
	}
}

func sourceSwapAdjacent(c *suggCollector) {
	runes := []rune(c.word)
	for i := 0; i+1 < len(runes); i++ {
		cand := append([]rune(nil), runes...)
		cand[i], cand[i+1] = cand[i+1], cand[i]
		if !c.tryCandidate(string(cand), false) {
			return
		}
	}
}

func sourceSwapDistance(c *suggCollector) {
	runes := []rune(c.word)
	for i := 0; i < len(runes); i++ {
		for j := i + 2; j < len(runes); j++ {
			cand := append([]rune(nil), runes...)
			cand[i], cand[j] = cand[j], cand[i]
			if !c.tryCandidate(string(cand), false) {
				return
			}
		}
	}
}

func sourceReplace(c *suggCollector) {
	try := c.s.affix.TrySequence
	if try == "" {
		return
	}
	runes := []rune(c.word)
	for _, tc := range try {
		for i := range runes {
			if runes[i] == tc {
				continue
			}
			cand := append([]rune(nil), runes...)
			cand[i] = tc
			if !c.tryCandidate(string(cand), false) {
				return
			}
		}
	}
}

// sourceRelatedChar enumerates MAP-group substitutions in group
// order, so the combination using only the first (most common)
// substitution in each group is proposed first.
func sourceRelatedChar(c *suggCollector) {
	groups := c.s.affix.RelatedChars
	if len(groups) == 0 {
		return
	}
	wvec := []rune(c.word)
	candidates := [][]rune{append([]rune(nil), wvec...)}

	for _, group := range groups {
		for i := range wvec {
			if !runeInGroup(group, wvec[i]) {
				continue
			}
			var next [][]rune
			for _, cnd := range candidates {
				for _, newc := range group {
					if newc == wvec[i] {
						continue
					}
					newcnd := append([]rune(nil), cnd...)
					newcnd[i] = newc
					if !c.tryCandidate(string(newcnd), false) {
						return
					}
					next = append(next, newcnd)
				}
				next = append(next, cnd)
			}
			candidates = next
		}
	}
}

func runeInGroup(group []rune, r rune) bool {
	for _, g := range group {
		if g == r {
			return true
		}
	}
	return false
}

func sourceSplitWord(c *suggCollector) {
	runes := []rune(c.word)
	hyphen := breakListAllows(c.s.affix.WordBreaks, "-")

	for i := 1; i < len(runes); i++ {
		left, right := string(runes[:i]), string(runes[i:])
		if !c.s.acceptWordNoBreak(left) || !c.s.acceptWordNoBreak(right) {
			continue
		}
		if !c.emitDirect(left+" "+right, false) {
			return
		}
		if hyphen {
			if !c.emitDirect(left+"-"+right, false) {
				return
			}
		}
	}
}

func breakListAllows(breaks []string, pattern string) bool {
	for _, b := range breaks {
		if b == pattern {
			return true
		}
	}
	return false
}

func sourceCaseFix(c *suggCollector) {
	if title := Titlecase(c.word); title != c.word {
		if !c.tryCandidate(title, false) {
			return
		}
	}
	if upper := Uppercase(c.word); upper != c.word {
		c.tryCandidate(upper, false)
	}
}

// sourceNgramFallback ranks the whole dictionary by n-gram similarity
// to the word as a last resort when the structured sources above
// didn't fill the requested count. The per-source attempt cap bounds
// this to at most maxAttemptsPerSource dictionary entries considered,
// so cost does not scale with dictionary size beyond that.
func sourceNgramFallback(c *suggCollector) {
	type scored struct {
		word  string
		score int
		dist  int
	}

	wordRunes := []rune(c.word)
	nmax := c.s.affix.MaxNgramSuggs
	if nmax <= 0 {
		nmax = 4
	}

	var candidates []scored
	for i, w := range c.s.dict.SortedWords() {
		if i >= maxAttemptsPerSource {
			break
		}
		wr := []rune(w)
		if absInt(len(wr)-len(wordRunes)) > 4 {
			continue
		}
		score := ngram.Score(nmax, wordRunes, wr)
		if score <= 1 {
			continue
		}
		dist := delins.Distance(wordRunes, wr, len(wordRunes)+len(wr))
		candidates = append(candidates, scored{w, score, dist})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].word < candidates[j].word
	})

	for _, cand := range candidates {
		if !c.tryCandidate(cand.word, false) {
			return
		}
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
