// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package trie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixTrieLookup(t *testing.T) {
	trie := NewPrefixTrie[string]()
	trie.Insert("re", "re-entry")
	trie.Insert("real", "real-entry")

	var got []string
	trie.Lookup("reality", func(v string) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []string{"re-entry", "real-entry"}, got)
}

func TestPrefixTrieLookupStopsEarly(t *testing.T) {
	trie := NewPrefixTrie[string]()
	trie.Insert("a", "1")
	trie.Insert("ab", "2")

	var got []string
	trie.Lookup("abc", func(v string) bool {
		got = append(got, v)
		return false
	})
	assert.Equal(t, []string{"1"}, got)
}

func TestSuffixTrieLookup(t *testing.T) {
	trie := NewSuffixTrie[string]()
	trie.Insert("s", "plural-s")
	trie.Insert("es", "plural-es")

	var got []string
	trie.Lookup("boxes", func(v string) bool {
		got = append(got, v)
		return true
	})
	assert.Equal(t, []string{"plural-s", "plural-es"}, got)
}

func TestTrieNoMatch(t *testing.T) {
	trie := NewPrefixTrie[string]()
	trie.Insert("un", "negate")

	called := false
	trie.Lookup("reattach", func(v string) bool {
		called = true
		return true
	})
	assert.False(t, called)
}
