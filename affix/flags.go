// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"fmt"
	"strconv"
	"strings"
)

// Flag is an opaque identifier for a Hunspell affix flag. Its meaning
// (which character(s) or number it corresponds to) depends on the
// FlagMode in effect for the affix file that produced it.
type Flag uint32

// FlagMode controls how flag strings in the .dic and .aff files are
// decoded into Flag values.
type FlagMode int

const (
	// CharFlags: one Unicode codepoint is one flag (the default).
	CharFlags FlagMode = iota
	// DoubleCharFlags: two ASCII characters packed as first*256+second.
	DoubleCharFlags
	// NumericFlags: flags are comma-separated decimal numbers.
	NumericFlags
	// Utf8Flags: one Unicode codepoint is one flag, same decoding as
	// CharFlags but declared explicitly via "FLAG UTF-8".
	Utf8Flags
)

// ParseFlagMode maps the argument of a FLAG directive to a FlagMode.
func ParseFlagMode(s string) (FlagMode, error) {
	switch s {
	case "long":
		return DoubleCharFlags, nil
	case "num":
		return NumericFlags, nil
	case "UTF-8":
		return Utf8Flags, nil
	default:
		return CharFlags, fmt.Errorf("unknown FLAG mode %q", s)
	}
}

// ParseFlags decodes a flag string (as found after a '/' in a .dic
// line, or as an affix flag, or a COMPOUNDRULE flag) under mode.
func ParseFlags(mode FlagMode, flags string) ([]Flag, error) {
	if flags == "" {
		return nil, nil
	}

	switch mode {
	case CharFlags, Utf8Flags:
		result := make([]Flag, 0, len(flags))
		for _, r := range flags {
			result = append(result, Flag(r))
		}
		return result, nil

	case DoubleCharFlags:
		runes := []rune(flags)
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("odd number of characters in double-char flag string %q", flags)
		}
		result := make([]Flag, 0, len(runes)/2)
		for i := 0; i < len(runes); i += 2 {
			c1, c2 := runes[i], runes[i+1]
			if c1 > 255 || c2 > 255 {
				return nil, fmt.Errorf("invalid characters in double-char flag string %q", flags)
			}
			result = append(result, Flag(uint32(c1)*256+uint32(c2)))
		}
		return result, nil

	case NumericFlags:
		parts := strings.Split(flags, ",")
		result := make([]Flag, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid numeric flag %q: %w", p, err)
			}
			result = append(result, Flag(n))
		}
		return result, nil
	}

	return nil, fmt.Errorf("unknown flag mode %d", mode)
}

// SpecialFlags is a bitmask of the word-level capabilities a lemma can
// carry, mirroring the WordFlags bitflags in the original Hunspell
// crate: most checks against a word's flag set only ever ask "does
// this lemma carry the forbidden/keep_case/.../compound_end flag",
// so a precomputed bitmask (set once when a WordInfo is built) turns
// those checks into a single AND instead of a scan over the lemma's
// flag list.
type SpecialFlags uint16

const (
	Forbidden SpecialFlags = 1 << iota
	CompoundBegin
	CompoundMiddle
	CompoundEnd
	CompoundPermit
	OnlyInCompound
	NoSuggest
	Circumfix
	NeedAffix
	KeepCase
	CompoundFlag // legacy predecessor of CompoundBegin/Middle/End
	Warn
)

// Has reports whether all bits of want are set in s.
func (s SpecialFlags) Has(want SpecialFlags) bool {
	return s&want == want
}
