// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"strings"

	"github.com/gospell/hunspell/affix"
	"github.com/gospell/hunspell/dict"
)

// maxAffixDepth bounds continuation-flag re-affixation (step 9):
// an affix entry's continuation flags let the stripped stem undergo
// one further affix pass rather than requiring a direct dictionary
// hit, covering the common doubled-suffix/doubled-prefix case
// (two-level affixation). Hunspell itself allows deeper nesting in
// principle; in practice affix files rarely stack more than two
// levels, and capping here keeps worst-case lookup cost bounded.
const maxAffixDepth = 2

// Spellcheck implements Speller.
func (s *HunspellSpeller) Spellcheck(word string) bool {
	word = s.affix.Iconv.Convert(word)
	word = strings.TrimSpace(word)
	if word == "" || isNumericForm(word) {
		return true
	}

	for _, variant := range s.variants(word) {
		if s.acceptVariant(variant, word) {
			return true
		}
	}
	return false
}

// variants lists the casing forms of word that get a full acceptance
// attempt, per spec step 4: the literal word; if Capitalized or
// AllCaps, also all-lowercase; if AllCaps, also title-case. When
// CheckSharps is set, AllCaps words also get ss->ß folded forms so
// that e.g. "MÜSSIG" can match a lemma spelled "müßig".
func (s *HunspellSpeller) variants(word string) []string {
	cap := Classify(word)
	out := []string{word}

	switch cap {
	case Capitalized:
		if lower := Lowercase(word); lower != word {
			out = append(out, lower)
		}
	case AllCaps:
		lower := Lowercase(word)
		if lower != word {
			out = append(out, lower)
		}
		if title := Titlecase(word); title != word {
			out = append(out, title)
		}
		if s.affix.CheckSharps {
			folded := strings.ReplaceAll(lower, "ss", "ß")
			if folded != lower {
				out = append(out, folded)
			}
		}
	}
	return out
}

// acceptVariant runs steps 5-13 against one casing variant of the
// original word.
func (s *HunspellSpeller) acceptVariant(variant, original string) bool {
	isOriginal := variant == original

	if wi, ok := s.dict.Lookup(variant); ok {
		if s.acceptDirectRoot(wi, isOriginal) {
			return true
		}
		// A word explicitly listed as forbidden is rejected outright,
		// even if affix stripping, compounding or break splitting
		// would otherwise accept it.
		if wi.Special.Has(affix.Forbidden) {
			return false
		}
	}

	if s.tryAffixStrip(variant, isOriginal) {
		return true
	}

	if len(s.affix.CompoundRules) > 0 || s.hasFlatCompoundFlags() {
		if s.tryCompound(variant) {
			return true
		}
	}

	if s.tryBreak(variant, original) {
		return true
	}

	return false
}

// acceptDirectRoot applies the forbidden/need_affix/only_in_compound
// and KeepCase gates (steps 5 and 12) to a word matched without any
// affix stripping or compounding.
func (s *HunspellSpeller) acceptDirectRoot(wi *dict.WordInfo, isOriginalCasing bool) bool {
	if wi.Special.Has(affix.NeedAffix) {
		return false
	}
	return s.acceptAffixedRoot(wi, isOriginalCasing)
}

// acceptAffixedRoot applies the forbidden/only_in_compound and
// KeepCase gates (steps 6-9 and 12) to the lemma anchoring a
// stripped affix. Unlike acceptDirectRoot, it does not reject on
// need_affix: that flag exists precisely to allow a lemma as an
// affixation base while barring it unaffixed.
func (s *HunspellSpeller) acceptAffixedRoot(wi *dict.WordInfo, isOriginalCasing bool) bool {
	if wi.Special.Has(affix.Forbidden) || wi.Special.Has(affix.OnlyInCompound) {
		return false
	}
	if wi.Special.Has(affix.KeepCase) && !isOriginalCasing {
		return false
	}
	return true
}

// tryAffixStrip implements prefix stripping (step 6), suffix
// stripping (step 7) and their cross-product (step 8).
func (s *HunspellSpeller) tryAffixStrip(word string, isOriginalCasing bool) bool {
	accepted := false

	s.affix.PrefixCandidates(word, func(pe *affix.Entry) bool {
		stem, ok := pe.StripPrefix(word)
		if !ok || (stem == "" && !s.affix.FullStrip) {
			return true
		}

		if wi, ok := s.dict.Lookup(stem); ok && wi.HasFlag(pe.Flag) && s.acceptAffixedRoot(wi, isOriginalCasing) {
			accepted = true
			return false
		}

		if pe.AllowCross {
			residual := stem
			s.affix.SuffixCandidates(residual, func(se *affix.Entry) bool {
				if !se.AllowCross {
					return true
				}
				if !s.circumfixCompatible(pe, se) {
					return true
				}
				innerStem, ok := se.StripSuffix(residual)
				if !ok || (innerStem == "" && !s.affix.FullStrip) {
					return true
				}
				wi, ok := s.dict.Lookup(innerStem)
				if !ok || !wi.HasFlag(pe.Flag) || !wi.HasFlag(se.Flag) || !s.acceptAffixedRoot(wi, isOriginalCasing) {
					return true
				}
				accepted = true
				return false
			})
			if accepted {
				return false
			}
		}

		if s.continuePrefix(stem, pe, isOriginalCasing, 1) {
			accepted = true
			return false
		}

		return true
	})
	if accepted {
		return true
	}

	s.affix.SuffixCandidates(word, func(se *affix.Entry) bool {
		stem, ok := se.StripSuffix(word)
		if !ok || (stem == "" && !s.affix.FullStrip) {
			return true
		}
		if wi, ok := s.dict.Lookup(stem); ok && wi.HasFlag(se.Flag) && s.acceptAffixedRoot(wi, isOriginalCasing) {
			accepted = true
			return false
		}
		if s.continueSuffix(stem, se, isOriginalCasing, 1) {
			accepted = true
			return false
		}
		return true
	})

	return accepted
}

// circumfixCompatible enforces that a prefix and suffix entry being
// cross-producted agree on the circumfix constraint: if the affix
// file declares a circumfix flag, a prefix entry carrying it may only
// combine with a suffix entry that also carries it, and vice versa.
func (s *HunspellSpeller) circumfixCompatible(pe, se *affix.Entry) bool {
	cf, ok := s.affix.CircumfixFlag()
	if !ok {
		return true
	}
	return pe.HasContFlag(cf) == se.HasContFlag(cf)
}

// continuePrefix re-strips a further (inner, closer-to-root) prefix
// from stem when that inner entry's own continuation flags declare
// outer's flag as permitted on top of it (step 9): outer was the
// entry already stripped, so it is the surface layer, and "er/Z"-style
// continuation flags live on the entry that is applied first when
// building the word (innermost), naming what may wrap around it
// (outer) when parsing back out.
func (s *HunspellSpeller) continuePrefix(stem string, outer *affix.Entry, isOriginalCasing bool, depth int) bool {
	if depth >= maxAffixDepth {
		return false
	}
	accepted := false
	s.affix.PrefixCandidates(stem, func(pe *affix.Entry) bool {
		if !pe.HasContFlag(outer.Flag) {
			return true
		}
		inner, ok := pe.StripPrefix(stem)
		if !ok || (inner == "" && !s.affix.FullStrip) {
			return true
		}
		wi, ok := s.dict.Lookup(inner)
		if ok && wi.HasFlag(pe.Flag) && s.acceptAffixedRoot(wi, isOriginalCasing) {
			accepted = true
			return false
		}
		return true
	})
	return accepted
}

// continueSuffix mirrors continuePrefix for suffixes.
func (s *HunspellSpeller) continueSuffix(stem string, outer *affix.Entry, isOriginalCasing bool, depth int) bool {
	if depth >= maxAffixDepth {
		return false
	}
	accepted := false
	s.affix.SuffixCandidates(stem, func(se *affix.Entry) bool {
		if !se.HasContFlag(outer.Flag) {
			return true
		}
		inner, ok := se.StripSuffix(stem)
		if !ok || (inner == "" && !s.affix.FullStrip) {
			return true
		}
		wi, ok := s.dict.Lookup(inner)
		if ok && wi.HasFlag(se.Flag) && s.acceptAffixedRoot(wi, isOriginalCasing) {
			accepted = true
			return false
		}
		return true
	})
	return accepted
}

func (s *HunspellSpeller) hasFlatCompoundFlags() bool {
	_, begin := s.affix.CompoundBeginFlag()
	_, end := s.affix.CompoundEndFlag()
	return begin && end
}

// tryCompound implements step 10: decompose word into ≥2 dictionary
// lemmas of length ≥ compound_min, validated either against a
// COMPOUNDRULE or against the flat begin/middle/end flags. Every
// component must be a whole dictionary lemma: affixed components are
// not tried, and COMPOUNDPERMITFLAG is not consulted.
func (s *HunspellSpeller) tryCompound(word string) bool {
	var comps []*dict.WordInfo
	return s.decomposeCompound([]rune(word), &comps)
}

func (s *HunspellSpeller) decomposeCompound(remaining []rune, comps *[]*dict.WordInfo) bool {
	if len(remaining) == 0 {
		if len(*comps) < 2 {
			return false
		}
		return s.validateCompound(*comps)
	}

	minLen := s.affix.CompoundMin
	if minLen < 1 {
		minLen = 1
	}

	for end := minLen; end <= len(remaining); end++ {
		tailLen := len(remaining) - end
		if tailLen > 0 && tailLen < minLen {
			continue
		}

		head := string(remaining[:end])
		wi, ok := s.dict.Lookup(head)
		if !ok || wi.Special.Has(affix.Forbidden) {
			continue
		}

		*comps = append(*comps, wi)
		if s.decomposeCompound(remaining[end:], comps) {
			return true
		}
		*comps = (*comps)[:len(*comps)-1]
	}

	return false
}

func (s *HunspellSpeller) validateCompound(comps []*dict.WordInfo) bool {
	for _, c := range comps {
		if c.Special.Has(affix.Forbidden) {
			return false
		}
	}

	if len(s.affix.CompoundRules) > 0 {
		flagsList := make([][]affix.Flag, len(comps))
		for i, c := range comps {
			flagsList[i] = c.Flags
		}
		for _, rule := range s.affix.CompoundRules {
			if rule.Match(flagsList) {
				return true
			}
		}
	}

	return s.validateFlatCompoundFlags(comps)
}

func (s *HunspellSpeller) validateFlatCompoundFlags(comps []*dict.WordInfo) bool {
	begin, okBegin := s.affix.CompoundBeginFlag()
	end, okEnd := s.affix.CompoundEndFlag()
	middle, okMiddle := s.affix.CompoundMiddleFlag()
	legacy, okLegacy := s.affix.CompoundFlagFlag()
	if !okBegin || !okEnd {
		return false
	}

	for i, c := range comps {
		switch {
		case i == 0:
			if !c.HasFlag(begin) && !(okLegacy && c.HasFlag(legacy)) {
				return false
			}
		case i == len(comps)-1:
			if !c.HasFlag(end) {
				return false
			}
		default:
			if okMiddle && !c.HasFlag(middle) {
				return false
			}
		}
	}
	return true
}

// tryBreak implements step 11: split word at a BREAK table pattern
// and recursively accept both sides. Anchored patterns ("^-", "-$")
// only fire at the corresponding end of the word.
func (s *HunspellSpeller) tryBreak(word, original string) bool {
	for _, pattern := range s.affix.WordBreaks {
		anchorStart := strings.HasPrefix(pattern, "^")
		anchorEnd := strings.HasSuffix(pattern, "$")
		lit := strings.TrimSuffix(strings.TrimPrefix(pattern, "^"), "$")
		if lit == "" {
			continue
		}

		switch {
		case anchorStart:
			if rest, ok := strings.CutPrefix(word, lit); ok && rest != "" {
				if s.acceptVariant(rest, original) {
					return true
				}
			}
		case anchorEnd:
			if rest, ok := strings.CutSuffix(word, lit); ok && rest != "" {
				if s.acceptVariant(rest, original) {
					return true
				}
			}
		default:
			from := 0
			for {
				idx := strings.Index(word[from:], lit)
				if idx < 0 {
					break
				}
				pos := from + idx
				left, right := word[:pos], word[pos+len(lit):]
				if left != "" && right != "" && s.acceptVariant(left, original) && s.acceptVariant(right, original) {
					return true
				}
				from = pos + 1
			}
		}
	}
	return false
}
