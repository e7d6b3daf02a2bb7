// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospell/hunspell/affix"
)

func testAffixData() *affix.Data {
	d, _, err := affix.Parse(strings.NewReader("SET UTF-8\nFORBIDDENWORD !\n"))
	if err != nil {
		panic(err)
	}
	return d
}

func TestLoadBasic(t *testing.T) {
	const src = "3\n" +
		"cat/S\n" +
		"dog\n" +
		"\tthis is a comment\n" +
		"run/S st:run po:verb\n"

	ad := testAffixData()
	d, warnings, err := Load(strings.NewReader(src), ad)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 3, d.Len())

	cat, ok := d.Lookup("cat")
	require.True(t, ok)
	assert.True(t, cat.HasFlag(affix.Flag('S')))

	run, ok := d.Lookup("run")
	require.True(t, ok)
	want := &WordInfo{Flags: []affix.Flag{'S'}, Morph: []string{"st:run", "po:verb"}}
	if diff := cmp.Diff(want, run); diff != "" {
		t.Errorf("run entry mismatch (-want +got):\n%v", diff)
	}

	_, ok = d.Lookup("nonexistent")
	assert.False(t, ok)
}

func TestLoadDuplicateLemmaIsFatal(t *testing.T) {
	const src = "2\ncat\ncat\n"
	_, _, err := Load(strings.NewReader(src), testAffixData())
	require.Error(t, err)

	var dictErr *Error
	require.ErrorAs(t, err, &dictErr)
	assert.Equal(t, DuplicateLemma, dictErr.Kind)
}

func TestLoadBadHeaderIsFatal(t *testing.T) {
	const src = "not-a-number\ncat\n"
	_, _, err := Load(strings.NewReader(src), testAffixData())
	require.Error(t, err)
}

func TestAddWord(t *testing.T) {
	ad := testAffixData()
	d := New(ad)
	d.AddWord("neologism", nil)

	wi, ok := d.Lookup("neologism")
	require.True(t, ok)
	assert.Empty(t, wi.Flags)
}
