// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the TOML configuration file shared by the
// gospell command-line tools: which affix/dictionary/user-dictionary
// files to load and how many suggestions to generate by default.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config stores the configuration of a gospell command-line tool.
type Config struct {
	Language       string
	AffixFile      string `toml:"affix_file"`
	DictionaryFile string `toml:"dictionary_file"`
	UserDictFile   string `toml:"user_dict"`
	MaxSuggestions int    `toml:"max_suggestions"`
}

func defaultConfig() *Config {
	return &Config{
		MaxSuggestions: 5,
	}
}

// MustParseFile opens and parses filename, exiting the process with a
// message on stderr if either step fails. Paths in the result are
// resolved relative to filename's directory.
func MustParseFile(filename string) *Config {
	f, err := os.Open(filename)
	if err != nil {
		exitf("cannot open configuration file: %s", err)
	}
	defer f.Close()

	config, err := Parse(f)
	if err != nil {
		exitf("cannot parse configuration file: %s", err)
	}

	config.AffixFile = relToConfig(filename, config.AffixFile)
	config.DictionaryFile = relToConfig(filename, config.DictionaryFile)
	config.UserDictFile = relToConfig(filename, config.UserDictFile)

	return config
}

// Parse decodes a Config from reader.
func Parse(reader io.Reader) (*Config, error) {
	config := defaultConfig()
	if _, err := toml.DecodeReader(reader, config); err != nil {
		return config, err
	}
	return config, nil
}

func exitf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// relToConfig resolves filePath relative to the directory of
// configPath, unless filePath is absolute or empty.
func relToConfig(configPath, filePath string) string {
	if len(filePath) == 0 {
		return filePath
	}
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return filepath.Join(filepath.Dir(configPath), filePath)
}
