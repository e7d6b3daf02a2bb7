// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "strings"

// Entry is one PFX/SFX body line: stripping strip from (for a prefix,
// the start of; for a suffix, the end of) a word and appending affix
// in its place produces a derived form, provided condition matches the
// stem. ContFlags are the continuation flags the derived form gains,
// used for two-level affixation and the circumfix check.
type Entry struct {
	Flag       Flag
	Strip      string
	Affix      string
	AllowCross bool // the affix class's Y/N header; true lets this entry combine with the opposite affix type
	Condition  *Condition
	ContFlags  []Flag
}

// ApplyPrefix strips e.Strip from the front of stem and prepends
// e.Affix, reporting ok=false if stem does not begin with e.Strip.
func (e *Entry) ApplyPrefix(stem string) (string, bool) {
	if !strings.HasPrefix(stem, e.Strip) {
		return "", false
	}
	return e.Affix + stem[len(e.Strip):], true
}

// ApplySuffix strips e.Strip from the end of stem and appends e.Affix,
// reporting ok=false if stem does not end with e.Strip.
func (e *Entry) ApplySuffix(stem string) (string, bool) {
	if !strings.HasSuffix(stem, e.Strip) {
		return "", false
	}
	return stem[:len(stem)-len(e.Strip)] + e.Affix, true
}

// StripPrefix reverses ApplyPrefix: given a word that begins with
// e.Affix, returns the stem that this entry would have derived it
// from, provided that stem matches e.Condition.
func (e *Entry) StripPrefix(word string) (string, bool) {
	if !strings.HasPrefix(word, e.Affix) {
		return "", false
	}
	stem := e.Strip + word[len(e.Affix):]
	if !e.Condition.Match(stem) {
		return "", false
	}
	return stem, true
}

// StripSuffix reverses ApplySuffix: given a word that ends with
// e.Affix, returns the stem that this entry would have derived it
// from, provided that stem matches e.Condition.
func (e *Entry) StripSuffix(word string) (string, bool) {
	if !strings.HasSuffix(word, e.Affix) {
		return "", false
	}
	stem := word[:len(word)-len(e.Affix)] + e.Strip
	if !e.Condition.Match(stem) {
		return "", false
	}
	return stem, true
}

// HasContFlag reports whether flag is among e.ContFlags.
func (e *Entry) HasContFlag(flag Flag) bool {
	return hasFlag(e.ContFlags, flag)
}

// Class is one PFX or SFX affix class: every Entry sharing the same
// flag letter and cross-product setting, as declared by a class's
// header line ("PFX A Y 3").
type Class struct {
	Flag       Flag
	AllowCross bool
	Entries    []*Entry
}
