// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gospell/hunspell/affix"
	"github.com/gospell/hunspell/dict"
)

// loadFixture builds a HunspellSpeller from inline .aff/.dic text, the
// same way the tests build small single-feature fixtures instead of
// shipping the full shipped-language corpora.
func loadFixture(t *testing.T, aff, dic string) *HunspellSpeller {
	t.Helper()

	affixData, _, err := affix.Parse(strings.NewReader(aff))
	require.NoError(t, err)

	dictionary, _, err := dict.Load(strings.NewReader(dic), affixData)
	require.NoError(t, err)

	return New(affixData, dictionary)
}
