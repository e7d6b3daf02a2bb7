// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hunspell provides a Hunspell-compatible spell checker.
//
// Given a Hunspell-format affix file (.aff) and dictionary file (.dic),
// the speller package decides whether a word is accepted by the
// language described by those files and proposes corrections for words
// it rejects. The engine is a from-scratch reimplementation of the
// affix-stripping, compounding and suggestion algorithms Hunspell uses,
// not a binding to the C library.
//
// The public entry point is the speller.Speller interface:
//
//	affixData, _, err := affix.Parse(affixFile)
//	dictionary, _, err := dict.Load(dicFile, affixData)
//	sp := speller.New(affixData, dictionary)
//	sp.Spellcheck("reappears") // true
//	sp.Suggestions("alot", 3)  // ["a lot", ...]
//
// Package layout mirrors the algorithm's natural dependency order:
// trie has no dependencies within the module; affix (flag parsing,
// conditions, the .aff grammar) sits on top of it and indexes its
// affix entries in tries; dict sits on top of affix; speller ties
// affix and dict (plus the ngram and delins scorers) together into the
// checker and suggestion generator. config and cmd are integration glue for the
// command-line tools shipped alongside the library.
package hunspell
