// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func charFlag(r rune) Flag { return Flag(r) }

func testParseFlag(s string) (Flag, error) {
	flags, err := ParseFlags(CharFlags, s)
	if err != nil {
		return 0, err
	}
	if len(flags) != 1 {
		return 0, fmt.Errorf("expected exactly one flag, got %q", s)
	}
	return flags[0], nil
}

func TestCompoundRuleOnce(t *testing.T) {
	rule, err := ParseCompoundRule("AB", testParseFlag)
	require.NoError(t, err)

	require.True(t, rule.Match([][]Flag{{charFlag('A')}, {charFlag('B')}}))
	require.False(t, rule.Match([][]Flag{{charFlag('A')}}))
	require.False(t, rule.Match([][]Flag{{charFlag('A')}, {charFlag('B')}, {charFlag('B')}}))
}

func TestCompoundRuleMulti(t *testing.T) {
	rule, err := ParseCompoundRule("A*B", testParseFlag)
	require.NoError(t, err)

	require.True(t, rule.Match([][]Flag{{charFlag('B')}}))
	require.True(t, rule.Match([][]Flag{{charFlag('A')}, {charFlag('B')}}))
	require.True(t, rule.Match([][]Flag{{charFlag('A')}, {charFlag('A')}, {charFlag('B')}}))
	require.False(t, rule.Match([][]Flag{{charFlag('A')}, {charFlag('A')}}))
}

func TestCompoundRuleOptional(t *testing.T) {
	rule, err := ParseCompoundRule("A?B", testParseFlag)
	require.NoError(t, err)

	require.True(t, rule.Match([][]Flag{{charFlag('B')}}))
	require.True(t, rule.Match([][]Flag{{charFlag('A')}, {charFlag('B')}}))
	require.False(t, rule.Match([][]Flag{{charFlag('A')}, {charFlag('A')}, {charFlag('B')}}))
}

func TestCompoundRuleParenGroup(t *testing.T) {
	rule, err := ParseCompoundRule("(ab)(cd)", func(s string) (Flag, error) {
		flags, err := ParseFlags(DoubleCharFlags, s)
		if err != nil {
			return 0, err
		}
		return flags[0], nil
	})
	require.NoError(t, err)
	require.NotNil(t, rule)
	require.Len(t, rule.elems, 2)
}
