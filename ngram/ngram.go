// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ngram scores the similarity between two words for ranking
// suggestions as a last-resort fallback when the structured
// suggestion sources (affix-aware add/delete/swap/replace) don't fill
// the requested suggestion count.
package ngram

// Score returns a similarity score between vec1 and vec2: the number
// of pairs of equal characters (one from each word, at any positions),
// plus, for each chunk size n from 2 up to nmax, n times the number of
// pairs of equal n-character chunks (one from each word, at any
// positions). Scoring stops early past n=1 if
// there were at most one single-character match (no larger chunk
// could possibly exist), and at each n past the first if there was at
// most one match of that size (a higher n could then only do worse).
func Score(nmax int, vec1, vec2 []rune) int {
	score := 0
	for _, c1 := range vec1 {
		for _, c2 := range vec2 {
			if c1 == c2 {
				score++
			}
		}
	}
	if nmax == 1 || score <= 1 {
		return score
	}

	for n := 2; n <= nmax; n++ {
		if n > len(vec1) || n > len(vec2) {
			break
		}
		nscore := 0
		for i1 := 0; i1 <= len(vec1)-n; i1++ {
		next:
			for i2 := 0; i2 <= len(vec2)-n; i2++ {
				for j := 0; j < n; j++ {
					if vec1[i1+j] != vec2[i2+j] {
						continue next
					}
				}
				nscore++
			}
		}
		score += nscore * n
		if nscore <= 1 {
			break
		}
	}

	return score
}
