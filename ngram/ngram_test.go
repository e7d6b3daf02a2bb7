// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ngram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	foo := []rune("foo")
	bar := []rune("bar")
	awooo := []rune("awooo")
	awooga := []rune("awooga")

	assert.Equal(t, 0, Score(1, foo, bar))
	assert.Equal(t, 6, Score(1, awooo, foo))
	assert.Equal(t, 10, Score(2, awooo, foo))
	assert.Equal(t, 10, Score(3, awooo, foo))
	assert.Equal(t, 9, Score(1, awooo, awooga))
	assert.Equal(t, 17, Score(2, awooo, awooga))
	assert.Equal(t, 23, Score(3, awooo, awooga))
	assert.Equal(t, 27, Score(4, awooo, awooga))
	assert.Equal(t, 27, Score(5, awooo, awooga))
}
