// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"os"

	"github.com/gospell/hunspell/affix"
	"github.com/gospell/hunspell/config"
	"github.com/gospell/hunspell/dict"
	"github.com/gospell/hunspell/speller"
)

// MustLoadSpeller opens and parses the affix and dictionary files
// named in cfg, wires in the user dictionary if one is configured,
// and exits the process with a diagnostic on any failure. It is the
// shared entry point for the gospell-* command-line tools.
func MustLoadSpeller(cfg *config.Config) *speller.HunspellSpeller {
	affixFile, err := os.Open(cfg.AffixFile)
	ExitIfError("cannot open affix file", err)
	defer affixFile.Close()

	affixData, affixWarnings, err := affix.Parse(affixFile)
	ExitIfError("cannot parse affix file", err)

	dicFile, err := os.Open(cfg.DictionaryFile)
	ExitIfError("cannot open dictionary file", err)
	defer dicFile.Close()

	dictionary, dictWarnings, err := dict.Load(dicFile, affixData)
	ExitIfError("cannot load dictionary", err)

	warnings := append(speller.FormatWarnings(affixWarnings), speller.FormatWarnings(dictWarnings)...)
	sp := speller.New(affixData, dictionary, warnings...)

	if cfg.UserDictFile != "" {
		if _, err := sp.SetUserDict(cfg.UserDictFile); err != nil {
			ExitIfError("cannot load user dictionary", err)
		}
	}

	return sp
}
