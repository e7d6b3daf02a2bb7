// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "github.com/gospell/hunspell/trie"

// defaultCompoundMin is Hunspell's default COMPOUNDMIN when the affix
// file does not set one.
const defaultCompoundMin = 3

// defaultWordBreaks is the BREAK table in effect until a BREAK
// directive replaces it, or a bare "BREAK 0" clears it.
var defaultWordBreaks = []string{"-", "^-", "-$"}

// specialFlagSlot names one of the directives ("FORBIDDENWORD",
// "COMPOUNDBEGIN", ...) that assigns a single Flag meaning to carry a
// SpecialFlags bit. Data keeps the assignment, and dict uses it to
// turn a lemma's raw flag list into a SpecialFlags bitmask once at
// load time.
type specialFlagSlot struct {
	set  bool
	flag Flag
	bit  SpecialFlags
}

// Data is everything parsed out of an affix (.aff) file: the flag
// encoding, the prefix/suffix classes and their trie indexes, the
// replacement tables, compound rules and the handful of single-flag
// directives that mark a lemma as forbidden, compound-only, and so on.
//
// A Data is built once by Parse and is read-only afterwards; dict and
// speller share one instance across every lookup without locking (see
// speller.HunspellSpeller for the concurrency contract this relies on).
type Data struct {
	FlagMode FlagMode

	TrySequence    string
	KeyboardRows   []string // KEY, split on '|'
	WordChars      string
	CompoundMin    int
	MaxNgramSuggs  int
	FullStrip      bool
	CheckSharps    bool

	Replacements *Replacements // REP
	Iconv        *Replacements
	Oconv        *Replacements

	CompoundRules []*CompoundRule
	RelatedChars  [][]rune // MAP groups of mutually interchangeable characters
	WordBreaks    []string

	PrefixClasses map[Flag]*Class
	SuffixClasses map[Flag]*Class

	prefixIndex *trie.PrefixTrie[*Entry]
	suffixIndex *trie.SuffixTrie[*Entry]

	forbidden      specialFlagSlot
	noSuggest      specialFlagSlot
	compoundBegin  specialFlagSlot
	compoundMiddle specialFlagSlot
	compoundEnd    specialFlagSlot
	compoundPermit specialFlagSlot
	onlyInCompound specialFlagSlot
	compoundFlag   specialFlagSlot // legacy COMPOUNDFLAG
	needAffix      specialFlagSlot // NEEDAFFIX, legacy PSEUDOROOT
	circumfix      specialFlagSlot
	keepCase       specialFlagSlot
	warn           specialFlagSlot
}

// NewData returns an empty Data with Hunspell's documented defaults.
func NewData() *Data {
	return &Data{
		FlagMode:      CharFlags,
		CompoundMin:   defaultCompoundMin,
		MaxNgramSuggs: 4,
		WordBreaks:    append([]string(nil), defaultWordBreaks...),
		PrefixClasses: make(map[Flag]*Class),
		SuffixClasses: make(map[Flag]*Class),
		Replacements:  &Replacements{},
		Iconv:         &Replacements{},
		Oconv:         &Replacements{},
	}
}

// finalize builds the trie indexes over the parsed prefix/suffix
// classes. Parse calls this once after the last directive line.
func (d *Data) finalize() {
	d.prefixIndex = trie.NewPrefixTrie[*Entry]()
	for _, class := range d.PrefixClasses {
		for _, e := range class.Entries {
			d.prefixIndex.Insert(e.Affix, e)
		}
	}

	d.suffixIndex = trie.NewSuffixTrie[*Entry]()
	for _, class := range d.SuffixClasses {
		for _, e := range class.Entries {
			d.suffixIndex.Insert(e.Affix, e)
		}
	}
}

// PrefixCandidates invokes found for every prefix Entry whose Affix is
// a prefix of word, shortest affix first. found's return value is
// threaded through from trie.PrefixTrie.Lookup: return false to stop.
func (d *Data) PrefixCandidates(word string, found func(*Entry) bool) {
	if d.prefixIndex == nil {
		return
	}
	d.prefixIndex.Lookup(word, found)
}

// SuffixCandidates invokes found for every suffix Entry whose Affix is
// a suffix of word, shortest affix first. found's return value is
// threaded through from trie.SuffixTrie.Lookup: return false to stop.
func (d *Data) SuffixCandidates(word string, found func(*Entry) bool) {
	if d.suffixIndex == nil {
		return
	}
	d.suffixIndex.Lookup(word, found)
}

// CircumfixFlag returns the flag assigned by CIRCUMFIX, if any.
func (d *Data) CircumfixFlag() (Flag, bool) { return d.circumfix.flag, d.circumfix.set }

// CompoundBeginFlag returns the flag assigned by COMPOUNDBEGIN, if any.
func (d *Data) CompoundBeginFlag() (Flag, bool) { return d.compoundBegin.flag, d.compoundBegin.set }

// CompoundMiddleFlag returns the flag assigned by COMPOUNDMIDDLE, if any.
func (d *Data) CompoundMiddleFlag() (Flag, bool) { return d.compoundMiddle.flag, d.compoundMiddle.set }

// CompoundEndFlag returns the flag assigned by COMPOUNDEND, if any.
func (d *Data) CompoundEndFlag() (Flag, bool) { return d.compoundEnd.flag, d.compoundEnd.set }

// CompoundPermitFlag returns the flag assigned by COMPOUNDPERMITFLAG, if any.
func (d *Data) CompoundPermitFlag() (Flag, bool) { return d.compoundPermit.flag, d.compoundPermit.set }

// CompoundFlagFlag returns the flag assigned by the legacy COMPOUNDFLAG
// directive, if any.
func (d *Data) CompoundFlagFlag() (Flag, bool) { return d.compoundFlag.flag, d.compoundFlag.set }

// NeedAffixFlag returns the flag assigned by NEEDAFFIX/PSEUDOROOT, if any.
func (d *Data) NeedAffixFlag() (Flag, bool) { return d.needAffix.flag, d.needAffix.set }

// SpecialFlagsOf computes the SpecialFlags bitmask that a lemma's raw
// flag list maps to under this affix file's directive assignments.
func (d *Data) SpecialFlagsOf(flags []Flag) SpecialFlags {
	var s SpecialFlags
	for _, slot := range []specialFlagSlot{
		d.forbidden, d.noSuggest, d.compoundBegin, d.compoundMiddle,
		d.compoundEnd, d.compoundPermit, d.onlyInCompound, d.compoundFlag,
		d.needAffix, d.circumfix, d.keepCase, d.warn,
	} {
		if slot.set && hasFlag(flags, slot.flag) {
			s |= slot.bit
		}
	}
	return s
}
