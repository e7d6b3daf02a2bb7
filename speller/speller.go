// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package speller implements the word acceptor and suggestion
// generator on top of a loaded affix.Data and dict.Dictionary, and
// exposes them through the Speller interface.
package speller

import (
	"strings"
	"unicode"

	"github.com/coregx/coregex"

	"github.com/gospell/hunspell/affix"
	"github.com/gospell/hunspell/dict"
)

var numericForm = coregex.MustCompile(`^-?[0-9]+([.,][0-9]+)*(--)?$`)

// Speller is the public contract of a spell-checking engine. Its
// shape follows the original Hunspell crate's own capability
// abstraction: callers program against the interface so a non-
// Hunspell backend could stand in without changing call sites, even
// though HunspellSpeller is the only implementation here.
type Speller interface {
	// Spellcheck reports whether word is accepted by the language.
	Spellcheck(word string) bool
	// Suggestions returns up to max corrections for word, most likely
	// first. Every single-word suggestion passes Spellcheck; a
	// multi-word suggestion (a REP replacement containing a space, or a
	// split word) has each of its words accepted separately instead.
	Suggestions(word string, max int) []string
	// AddWord adds word to the in-memory dictionary. It returns false
	// if word is empty or contains characters outside the affix
	// file's WORDCHARS and plain alphanumerics.
	AddWord(word string) bool
	// SetUserDict loads path (creating it if absent), adding each
	// non-empty line via AddWord, and records path for future appends
	// by AddWordToUserDict. It returns the number of words accepted.
	SetUserDict(path string) (int, error)
	// AddWordToUserDict adds word in-memory and appends it to the
	// recorded user dictionary file.
	AddWordToUserDict(word string) error
	// Errors returns the non-fatal warnings accumulated while loading
	// the affix and dictionary files.
	Errors() []string
}

// HunspellSpeller is the native engine's Speller implementation.
//
// Spellcheck and Suggestions take no locks and do not modify the
// speller. AddWord, SetUserDict and AddWordToUserDict modify its
// dictionary; the caller must serialize them against every other use
// of the same HunspellSpeller.
type HunspellSpeller struct {
	affix *affix.Data
	dict  *dict.Dictionary

	userDictPath string

	errors []string
}

// New builds a Speller over an already-loaded affix.Data and
// dict.Dictionary. warnings, if given, seeds the accumulated error
// log (see FormatWarnings) with the affix/dictionary load warnings.
func New(affixData *affix.Data, dictionary *dict.Dictionary, warnings ...string) *HunspellSpeller {
	return &HunspellSpeller{affix: affixData, dict: dictionary, errors: warnings}
}

// Errors implements Speller.
func (s *HunspellSpeller) Errors() []string {
	return s.errors
}

// stringer is satisfied by affix.ParseWarning and dict.ParseWarning.
type stringer interface {
	String() string
}

// FormatWarnings renders a slice of affix.ParseWarning or
// dict.ParseWarning (or anything else with a String method) as plain
// strings, for passing into New or appending to an existing log.
func FormatWarnings[T stringer](warnings []T) []string {
	out := make([]string, len(warnings))
	for i, w := range warnings {
		out[i] = w.String()
	}
	return out
}

func isNumericForm(word string) bool {
	return numericForm.MatchString(word)
}

// isWordChar reports whether r is allowed in a word added via
// AddWord: a Unicode letter or digit, or one of the affix file's
// WORDCHARS.
func (s *HunspellSpeller) isWordChar(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	return strings.ContainsRune(s.affix.WordChars, r)
}
