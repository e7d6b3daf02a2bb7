// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package speller

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// AddWord implements Speller.
func (s *HunspellSpeller) AddWord(word string) bool {
	word = strings.TrimSpace(word)
	if word == "" {
		return false
	}
	for _, r := range word {
		if !s.isWordChar(r) {
			return false
		}
	}
	s.dict.AddWord(word, nil)
	return true
}

// SetUserDict implements Speller.
func (s *HunspellSpeller) SetUserDict(path string) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return 0, fmt.Errorf("open user dictionary %q: %w", path, err)
	}
	defer f.Close()

	added := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if s.AddWord(line) {
			added++
		}
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("read user dictionary %q: %w", path, err)
	}

	s.userDictPath = path
	return added, nil
}

// AddWordToUserDict implements Speller.
func (s *HunspellSpeller) AddWordToUserDict(word string) error {
	if !s.AddWord(word) {
		return fmt.Errorf("invalid word %q", word)
	}
	if s.userDictPath == "" {
		return fmt.Errorf("no user dictionary set")
	}

	f, err := os.OpenFile(s.userDictPath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("open user dictionary %q: %w", s.userDictPath, err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, word); err != nil {
		return fmt.Errorf("write user dictionary %q: %w", s.userDictPath, err)
	}
	return nil
}
