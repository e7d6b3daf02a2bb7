// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionEmptyMatchesEverything(t *testing.T) {
	c := NewSuffixCondition("")
	assert.True(t, c.Match(""))
	assert.True(t, c.Match("anything"))
}

func TestConditionSuffixGroup(t *testing.T) {
	c := NewSuffixCondition("[^aeiou]y")
	assert.True(t, c.Match("happy"))
	assert.False(t, c.Match("play")) // preceding char is a vowel
	assert.False(t, c.Match("y"))
}

func TestConditionNegatedGroup(t *testing.T) {
	c := NewPrefixCondition("[^xyz]")
	assert.True(t, c.Match("apple"))
	assert.False(t, c.Match("xray"))
}

func TestConditionWildcard(t *testing.T) {
	c := NewSuffixCondition("a.c")
	assert.True(t, c.Match("abc"))
	assert.False(t, c.Match("ac"))
}

func TestConditionUnclosedGroupDisables(t *testing.T) {
	c := NewPrefixCondition("[abc")
	assert.False(t, c.Match("abc"))
	assert.False(t, c.Match(""))
}
