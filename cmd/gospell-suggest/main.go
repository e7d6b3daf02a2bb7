// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gospell-suggest prints ranked corrections for every word on
// its input, one line per word, regardless of whether the word is
// already accepted.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gospell/hunspell/cmd/common"
	"github.com/gospell/hunspell/config"
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] config [input] [output]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

var maxSuggestions = flag.Int("max", 0, "override the configuration file's max_suggestions (0: use configured value)")

func main() {
	flag.Parse()

	if flag.NArg() == 0 || flag.NArg() > 3 {
		flag.Usage()
		os.Exit(1)
	}

	cfg := config.MustParseFile(flag.Arg(0))
	sp := common.MustLoadSpeller(cfg)

	limit := cfg.MaxSuggestions
	if *maxSuggestions > 0 {
		limit = *maxSuggestions
	}

	inputFile := common.FileOrStdin(flag.Args(), 1)
	defer inputFile.Close()

	outputFile := common.FileOrStdout(flag.Args(), 2)
	defer outputFile.Close()

	writer := bufio.NewWriter(outputFile)
	defer writer.Flush()

	scanner := bufio.NewScanner(inputFile)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}

		suggestions := sp.Suggestions(word, limit)
		fmt.Fprintf(writer, "%s: %s\n", word, strings.Join(suggestions, ", "))
	}
	common.ExitIfError("error reading input", scanner.Err())
}
