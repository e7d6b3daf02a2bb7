// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gospell-check is a pipe-mode spell checker in the classic
// ispell/aspell convention: one word per input line, "*" printed for
// an accepted word, "& <suggestions>" for a rejected one with
// corrections, "#" for a rejected word with none.
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

		if sp.Spellcheck(word) {
			fmt.Fprintln(writer, "*")
			continue
		}

		suggestions := sp.Suggestions(word, limit)
		if len(suggestions) == 0 {
			fmt.Fprintln(writer, "#")
			continue
		}
		fmt.Fprintf(writer, "& %s\n", strings.Join(suggestions, ", "))
	}
	common.ExitIfError("error reading input", scanner.Err())
}
