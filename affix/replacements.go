// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import "strings"

// replacement is one (from, to) pair of a Replacements table, with
// optional start/end anchoring taken from a leading '^' or trailing
// '$' on the "from" side, exactly as REP/ICONV/OCONV lines encode it.
type replacement struct {
	from, to            string
	anchorBegin, anchorEnd bool
}

func (r replacement) matches(tail string, atStart bool) bool {
	if r.anchorBegin && !atStart {
		return false
	}
	if r.anchorEnd {
		return tail == r.from
	}
	return strings.HasPrefix(tail, r.from)
}

// Replacements is an ordered table of substring substitutions, used for
// iconv (applied to input before dictionary lookup), oconv (applied to
// suggestion output) and REP (substring substitutions that seed
// suggestions). Longest match wins at a given position.
type Replacements struct {
	reps []replacement
}

// Push adds one (from, to) pair to the table, preserving insertion
// order (longest-match resolution is by length, not position, but ties
// keep the first-added entry via a strict '>' comparison below).
func (r *Replacements) Push(from, to string) {
	rep := replacement{from: from, to: to}
	if strings.HasPrefix(rep.from, "^") {
		rep.from = rep.from[1:]
		rep.anchorBegin = true
	}
	if strings.HasSuffix(rep.from, "$") {
		rep.from = rep.from[:len(rep.from)-1]
		rep.anchorEnd = true
	}
	r.reps = append(r.reps, rep)
}

// Len reports the number of entries in the table.
func (r *Replacements) Len() int {
	return len(r.reps)
}

func (r *Replacements) longestMatch(tail string, atStart bool) (replacement, bool) {
	var best replacement
	bestLen := -1
	for _, rep := range r.reps {
		if len(rep.from) > bestLen && rep.matches(tail, atStart) {
			bestLen = len(rep.from)
			best = rep
		}
	}
	return best, bestLen >= 0
}

// Convert applies the table to word, replacing the longest matching
// "from" at each position with its "to". Used for iconv/oconv.
func (r *Replacements) Convert(word string) string {
	if len(r.reps) == 0 {
		return word
	}

	var out strings.Builder
	skipTo := 0
	for i, c := range word {
		if i < skipTo {
			continue
		}
		if rep, ok := r.longestMatch(word[i:], i == 0); ok {
			out.WriteString(rep.to)
			skipTo = i + len(rep.from)
		} else {
			out.WriteRune(c)
		}
	}
	return out.String()
}

// Suggest emits, for every position in word and every table entry whose
// "from" matches there, the candidate word with that occurrence
// substituted. suggest is called once per candidate and stops the scan
// as soon as it returns false.
func (r *Replacements) Suggest(word string, suggest func(string) bool) {
	for i := range word {
		for _, rep := range r.reps {
			if !rep.matches(word[i:], i == 0) {
				continue
			}
			candidate := word[:i] + rep.to + word[i+len(rep.from):]
			if !suggest(candidate) {
				return
			}
		}
	}
}
