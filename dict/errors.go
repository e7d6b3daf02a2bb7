// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dict

import "fmt"

// ErrorKind classifies a fatal dictionary-load error.
type ErrorKind int

const (
	// MalformedHeader: the .dic word-count line could not be read.
	MalformedHeader ErrorKind = iota
	// DuplicateLemma: the same lemma appears twice (whatever its flag
	// sets), which the original Hunspell loader also rejects outright
	// rather than silently merging or shadowing.
	DuplicateLemma
)

// Error is a fatal dictionary-load error.
type Error struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("dictionary file line %d: %s", e.Line, e.Message)
}

// ParseWarning is a non-fatal problem with one .dic line: the line is
// skipped but loading continues.
type ParseWarning struct {
	Line    int
	Message string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}
