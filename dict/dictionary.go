// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dict loads a Hunspell dictionary (.dic) file into an
// in-memory lemma store keyed by the affix data that decodes its flag
// strings.
package dict

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/gospell/hunspell/affix"
)

// WordInfo is everything known about one dictionary lemma: its raw
// flag list (used for affix continuation and compound-rule matching)
// and the SpecialFlags bitmask those flags collapse to under the
// affix file's directive assignments (checked far more often than the
// raw list is scanned).
type WordInfo struct {
	Flags   []affix.Flag
	Special affix.SpecialFlags
	Morph   []string
}

// HasFlag reports whether flag is in w's raw flag list (used for
// affix class membership and COMPOUNDRULE matching).
func (w *WordInfo) HasFlag(flag affix.Flag) bool {
	for _, f := range w.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// Dictionary is a loaded .dic file plus the affix.Data it was decoded
// against. It is read-only after Load returns, except for the
// explicit AddWord path used for runtime/user-dictionary additions
// (see speller.Speller.AddWord).
type Dictionary struct {
	Affix *affix.Data
	words map[string]*WordInfo
}

// New returns an empty Dictionary bound to affixData.
func New(affixData *affix.Data) *Dictionary {
	return &Dictionary{Affix: affixData, words: make(map[string]*WordInfo)}
}

// Lookup returns the WordInfo for word, if the dictionary has an
// entry for it under an exact (case-sensitive) match.
func (d *Dictionary) Lookup(word string) (*WordInfo, bool) {
	wi, ok := d.words[word]
	return wi, ok
}

// Len reports the number of lemmas in the dictionary.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// SortedWords returns every lemma in the dictionary in sorted order,
// giving callers that need to scan the whole dictionary (the n-gram
// suggestion fallback) a deterministic iteration order.
func (d *Dictionary) SortedWords() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}

// AddWord inserts or replaces the entry for word, used both for
// Speller.AddWord (in-memory only) and while loading a user
// dictionary file.
func (d *Dictionary) AddWord(word string, flags []affix.Flag) {
	d.words[word] = &WordInfo{Flags: flags, Special: d.Affix.SpecialFlagsOf(flags)}
}

// Load reads a .dic file (the first line is a word count whose value
// is not used, but a first line that is not a number is a fatal
// MalformedHeader error) and returns the resulting Dictionary, along
// with any non-fatal per-line warnings.
func Load(r io.Reader, affixData *affix.Data) (*Dictionary, []ParseWarning, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	d := New(affixData)
	var warnings []ParseWarning

	lineNo := 0
	if scanner.Scan() {
		lineNo++
		header := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "﻿"))
		if _, err := strconv.Atoi(header); err != nil {
			return nil, nil, &Error{Kind: MalformedHeader, Line: lineNo, Message: fmt.Sprintf("expected word count, got %q", header)}
		}
	}

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "\t") {
			continue // tab-indented lines are comments
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		lemma, flagsStr, hasFlags := strings.Cut(fields[0], "/")
		var flags []affix.Flag
		if hasFlags {
			var err error
			flags, err = affix.ParseFlags(affixData.FlagMode, flagsStr)
			if err != nil {
				warnings = append(warnings, ParseWarning{Line: lineNo, Message: err.Error()})
				continue
			}
		}

		if _, dup := d.words[lemma]; dup {
			return nil, warnings, &Error{Kind: DuplicateLemma, Line: lineNo, Message: fmt.Sprintf("duplicate lemma %q", lemma)}
		}

		d.words[lemma] = &WordInfo{
			Flags:   flags,
			Special: affixData.SpecialFlagsOf(flags),
			Morph:   morphFields(fields[1:]),
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, warnings, err
	}

	return d, warnings, nil
}

// morphFields keeps only fields that look like a morphological
// annotation ("st:word", "po:noun", ...): a short alphabetic tag,
// a colon, and a value. Anything else trailing a .dic line is
// considered stray input rather than real morphological data.
func morphFields(fields []string) []string {
	var out []string
	for _, f := range fields {
		if tag, _, ok := strings.Cut(f, ":"); ok && len(tag) <= 3 && isAlpha(tag) {
			out = append(out, f)
		}
	}
	return out
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
