// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"strings"

	"github.com/coregx/coregex"
)

// Condition is a compiled Hunspell affix condition: a small regex
// dialect with literal characters, '.' as a wildcard, and
// '[abc]'/'[^abc]' groups, matched against the start of a word (for
// prefix entries) or the end of a word (for suffix entries).
//
// A Hunspell condition is already a strict subset of coregex's (and
// stdlib regexp's) pattern grammar, so Condition doesn't interpret the
// atoms itself: it translates the condition into an anchored coregex
// pattern once at load time and delegates matching to the compiled
// regex. The one thing that needs special-casing is the empty
// condition, which must match every word including the empty word --
// an anchored empty pattern would do that too, but a condition that
// fails to compile (an unclosed '[' group) must reject every word
// instead of erroring out the whole load, matching parse_aff's
// "disable it" behavior for bad condition syntax.
type Condition struct {
	re       *coregex.Regex
	disabled bool
	empty    bool
}

// NewPrefixCondition compiles cond to match the start of a word.
func NewPrefixCondition(cond string) *Condition {
	return newCondition(cond, true)
}

// NewSuffixCondition compiles cond to match the end of a word.
func NewSuffixCondition(cond string) *Condition {
	return newCondition(cond, false)
}

func newCondition(cond string, prefix bool) *Condition {
	if cond == "" {
		return &Condition{empty: true}
	}

	pattern, ok := translateCondition(cond)
	if !ok {
		return &Condition{disabled: true}
	}

	anchored := pattern + "$"
	if prefix {
		anchored = "^" + pattern
	}

	re, err := coregex.Compile(anchored)
	if err != nil {
		return &Condition{disabled: true}
	}

	return &Condition{re: re}
}

// Match reports whether the condition is satisfied by word.
func (c *Condition) Match(word string) bool {
	if c.disabled {
		return false
	}
	if c.empty {
		return true
	}
	return c.re.MatchString(word)
}

// translateCondition converts a Hunspell condition string into an
// (unanchored) coregex/regexp pattern. It returns ok=false for an
// unclosed '[' group, which the caller turns into a never-matching
// Condition rather than a load failure.
func translateCondition(cond string) (string, bool) {
	runes := []rune(cond)
	var b strings.Builder

	i := 0
	for i < len(runes) {
		r := runes[i]
		if r != '[' {
			writeLiteralRune(&b, r)
			i++
			continue
		}

		b.WriteRune('[')
		i++
		if i < len(runes) && runes[i] == '^' {
			b.WriteRune('^')
			i++
		}

		closed := false
		first := true
		for i < len(runes) {
			c := runes[i]
			if c == ']' && !first {
				b.WriteRune(']')
				i++
				closed = true
				break
			}
			switch c {
			case ']': // literal ']' as the first character of the group
				b.WriteString(`\]`)
			case '\\':
				b.WriteString(`\\`)
			default:
				b.WriteRune(c)
			}
			first = false
			i++
		}
		if !closed {
			return "", false
		}
	}

	return b.String(), true
}

func writeLiteralRune(b *strings.Builder, r rune) {
	switch r {
	case '.':
		b.WriteRune('.') // wildcard in both Hunspell conditions and regex
	case '\\', '(', ')', '*', '+', '?', '|', '^', '$', '{', '}':
		b.WriteRune('\\')
		b.WriteRune(r)
	default:
		b.WriteRune(r)
	}
}

