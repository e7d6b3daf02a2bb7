// Copyright 2024 The gospell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package affix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseWarning is a non-fatal problem in an affix file: the line is
// skipped but loading continues, mirroring Hunspell's own tolerance
// of affix files with the odd malformed or vendor-specific line.
type ParseWarning struct {
	Line    int
	Message string
}

func (w ParseWarning) String() string {
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// ErrorKind classifies a fatal affix-file error, mirroring the error
// taxonomy shared with dict.Error: LoadIO (the underlying reader
// failed), UnsupportedEncoding (a SET directive names a non-UTF-8
// charset, which this library cannot transcode) or ParseFatal (a
// structural problem such as a malformed PFX/SFX header).
type ErrorKind int

const (
	ParseFatal ErrorKind = iota
	LoadIO
	UnsupportedEncoding
)

// ParseError is a fatal problem: the affix file could not be loaded
// at all (an unreadable stream, an unsupported character encoding, a
// malformed PFX/SFX header line).
type ParseError struct {
	Kind    ErrorKind
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("affix file line %d: %s", e.Line, e.Message)
}

// Parse reads a Hunspell .aff file and returns the resulting Data.
// Malformed individual lines are collected as warnings and skipped;
// only a handful of structural problems (a malformed PFX/SFX header,
// a non-UTF-8 SET directive, an unreadable stream) are fatal.
func Parse(r io.Reader) (*Data, []ParseWarning, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, nil, &ParseError{Kind: LoadIO, Message: err.Error()}
	}

	p := &parser{data: NewData(), lines: lines}
	if err := p.run(); err != nil {
		return nil, p.warnings, err
	}
	p.data.finalize()
	return p.data, p.warnings, nil
}

func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	var lines []string
	first := true
	for scanner.Scan() {
		line := scanner.Text()
		if first {
			line = strings.TrimPrefix(line, "﻿")
			first = false
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

type parser struct {
	data     *Data
	lines    []string
	i        int // index of the next unconsumed line
	warnings []ParseWarning
}

func (p *parser) warnf(lineNo int, format string, args ...interface{}) {
	p.warnings = append(p.warnings, ParseWarning{Line: lineNo, Message: fmt.Sprintf(format, args...)})
}

func (p *parser) parseFlag(s string) (Flag, error) {
	flags, err := ParseFlags(p.data.FlagMode, s)
	if err != nil {
		return 0, err
	}
	if len(flags) != 1 {
		return 0, fmt.Errorf("expected exactly one flag, got %q", s)
	}
	return flags[0], nil
}

func (p *parser) run() error {
	for p.i < len(p.lines) {
		lineNo := p.i + 1
		line := p.lines[p.i]
		p.i++

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if strings.HasPrefix(fields[0], "#") {
			continue
		}

		if err := p.directive(lineNo, fields); err != nil {
			return err
		}
	}
	return nil
}

func (p *parser) directive(lineNo int, fields []string) error {
	d := p.data
	name := fields[0]
	arg := func(n int) string {
		if n < len(fields) {
			return fields[n]
		}
		return ""
	}

	switch name {
	case "SET":
		if !strings.EqualFold(arg(1), "UTF-8") {
			return &ParseError{
				Kind:    UnsupportedEncoding,
				Line:    lineNo,
				Message: fmt.Sprintf("declared encoding %q is not supported; only UTF-8 affix files are", arg(1)),
			}
		}

	case "FLAG":
		mode, err := ParseFlagMode(arg(1))
		if err != nil {
			p.warnf(lineNo, "%s", err)
			return nil
		}
		d.FlagMode = mode

	case "KEY":
		d.KeyboardRows = strings.Split(arg(1), "|")

	case "TRY":
		d.TrySequence = arg(1)

	case "WORDCHARS":
		d.WordChars = arg(1)

	case "COMPOUNDMIN":
		n, err := strconv.Atoi(arg(1))
		if err != nil {
			p.warnf(lineNo, "bad COMPOUNDMIN value %q", arg(1))
			return nil
		}
		d.CompoundMin = n

	case "MAXNGRAMSUGS":
		n, err := strconv.Atoi(arg(1))
		if err != nil {
			p.warnf(lineNo, "bad MAXNGRAMSUGS value %q", arg(1))
			return nil
		}
		d.MaxNgramSuggs = n

	case "FULLSTRIP":
		d.FullStrip = true

	case "CHECKSHARPS":
		d.CheckSharps = true

	case "FORBIDDENWORD":
		p.assignSpecialFlag(lineNo, &d.forbidden, Forbidden, arg(1))
	case "NOSUGGEST":
		p.assignSpecialFlag(lineNo, &d.noSuggest, NoSuggest, arg(1))
	case "COMPOUNDBEGIN":
		p.assignSpecialFlag(lineNo, &d.compoundBegin, CompoundBegin, arg(1))
	case "COMPOUNDMIDDLE":
		p.assignSpecialFlag(lineNo, &d.compoundMiddle, CompoundMiddle, arg(1))
	case "COMPOUNDEND":
		p.assignSpecialFlag(lineNo, &d.compoundEnd, CompoundEnd, arg(1))
	case "COMPOUNDPERMITFLAG":
		p.assignSpecialFlag(lineNo, &d.compoundPermit, CompoundPermit, arg(1))
	case "ONLYINCOMPOUND":
		p.assignSpecialFlag(lineNo, &d.onlyInCompound, OnlyInCompound, arg(1))
	case "COMPOUNDFLAG":
		p.assignSpecialFlag(lineNo, &d.compoundFlag, CompoundFlag, arg(1))
	case "NEEDAFFIX", "PSEUDOROOT":
		p.assignSpecialFlag(lineNo, &d.needAffix, NeedAffix, arg(1))
	case "CIRCUMFIX":
		p.assignSpecialFlag(lineNo, &d.circumfix, Circumfix, arg(1))
	case "KEEPCASE":
		p.assignSpecialFlag(lineNo, &d.keepCase, KeepCase, arg(1))
	case "WARN":
		p.assignSpecialFlag(lineNo, &d.warn, Warn, arg(1))

	case "ICONV":
		p.readTable(lineNo, arg(1), name, func(lineNo int, f []string) {
			if len(f) < 3 {
				p.warnf(lineNo, "malformed ICONV line")
				return
			}
			d.Iconv.Push(f[1], f[2])
		})

	case "OCONV":
		p.readTable(lineNo, arg(1), name, func(lineNo int, f []string) {
			if len(f) < 3 {
				p.warnf(lineNo, "malformed OCONV line")
				return
			}
			d.Oconv.Push(f[1], f[2])
		})

	case "REP":
		p.readTable(lineNo, arg(1), name, func(lineNo int, f []string) {
			if len(f) < 3 {
				p.warnf(lineNo, "malformed REP line")
				return
			}
			// "_" stands for a literal space in a REP line, so a
			// suggestion like "alot" -> "a lot" can be written.
			from := strings.ReplaceAll(f[1], "_", " ")
			to := strings.ReplaceAll(f[2], "_", " ")
			d.Replacements.Push(from, to)
		})

	case "MAP":
		p.readTable(lineNo, arg(1), name, func(lineNo int, f []string) {
			if len(f) < 2 {
				p.warnf(lineNo, "malformed MAP line")
				return
			}
			d.RelatedChars = append(d.RelatedChars, parseMapGroup(f[1]))
		})

	case "BREAK":
		if arg(1) == "0" {
			d.WordBreaks = nil
			return nil
		}
		d.WordBreaks = nil // a BREAK table replaces the defaults
		p.readTable(lineNo, arg(1), name, func(lineNo int, f []string) {
			if len(f) < 2 {
				p.warnf(lineNo, "malformed BREAK line")
				return
			}
			d.WordBreaks = append(d.WordBreaks, f[1])
		})

	case "COMPOUNDRULE":
		p.readTable(lineNo, arg(1), name, func(lineNo int, f []string) {
			if len(f) < 2 {
				p.warnf(lineNo, "malformed COMPOUNDRULE line")
				return
			}
			rule, err := ParseCompoundRule(f[1], p.parseFlag)
			if err != nil {
				p.warnf(lineNo, "%s", err)
				return
			}
			d.CompoundRules = append(d.CompoundRules, rule)
		})

	case "PFX", "SFX":
		return p.readAffixClass(lineNo, fields, name == "PFX")

	default:
		// Unknown or vendor-specific directive (e.g. LANG, VERSION,
		// SYLLABLENUM): ignored, not even worth a warning.
	}

	return nil
}

func (p *parser) assignSpecialFlag(lineNo int, slot *specialFlagSlot, bit SpecialFlags, flagStr string) {
	flag, err := p.parseFlag(flagStr)
	if err != nil {
		p.warnf(lineNo, "%s", err)
		return
	}
	slot.set = true
	slot.flag = flag
	slot.bit = bit
}

// readTable consumes the count body lines that follow a table header
// (REP, MAP, ICONV, OCONV, BREAK, COMPOUNDRULE), applying handle to
// each. Lines not starting with keyword are warned about but still
// consumed, so a single malformed table never desynchronizes the rest
// of the file.
func (p *parser) readTable(headerLine int, countStr, keyword string, handle func(lineNo int, fields []string)) {
	count, err := strconv.Atoi(countStr)
	if err != nil {
		p.warnf(headerLine, "bad %s count %q", keyword, countStr)
		return
	}
	for n := 0; n < count && p.i < len(p.lines); n++ {
		lineNo := p.i + 1
		fields := strings.Fields(p.lines[p.i])
		p.i++
		if len(fields) == 0 {
			n--
			continue
		}
		if fields[0] != keyword {
			p.warnf(lineNo, "expected %s body line, got %q", keyword, fields[0])
		}
		handle(lineNo, fields)
	}
}

func parseMapGroup(s string) []rune {
	var out []rune
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '(' {
			end := i + 1
			for end < len(runes) && runes[end] != ')' {
				end++
			}
			if end < len(runes) {
				out = append(out, runes[i+1]) // multi-char group members collapse to their first rune
				i = end
				continue
			}
		}
		out = append(out, runes[i])
	}
	return out
}

func (p *parser) readAffixClass(headerLine int, header []string, isPrefix bool) error {
	d := p.data
	if len(header) < 4 {
		return &ParseError{Line: headerLine, Message: fmt.Sprintf("malformed %s header", header[0])}
	}

	flag, err := p.parseFlag(header[1])
	if err != nil {
		return &ParseError{Line: headerLine, Message: err.Error()}
	}
	allowCross := header[2] == "Y"
	count, err := strconv.Atoi(header[3])
	if err != nil {
		return &ParseError{Line: headerLine, Message: fmt.Sprintf("bad entry count %q", header[3])}
	}

	class := &Class{Flag: flag, AllowCross: allowCross}

	for n := 0; n < count && p.i < len(p.lines); n++ {
		lineNo := p.i + 1
		fields := strings.Fields(p.lines[p.i])
		p.i++
		if len(fields) == 0 {
			n--
			continue
		}
		if fields[0] != header[0] {
			p.warnf(lineNo, "expected %s body line, got %q", header[0], fields[0])
			n--
			continue
		}
		entry, err := p.parseAffixEntry(fields, isPrefix, allowCross)
		if err != nil {
			p.warnf(lineNo, "%s", err)
			continue
		}
		class.Entries = append(class.Entries, entry)
	}

	if isPrefix {
		d.PrefixClasses[flag] = class
	} else {
		d.SuffixClasses[flag] = class
	}
	return nil
}

// parseAffixEntry parses a PFX/SFX body line's fields (already split,
// fields[0] is the "PFX"/"SFX" keyword, fields[1] the flag):
//
//	PFX A   0     re          .
//	SFX A   0     s           [^sxz]
//	SFX B   y     ies/C       [^aeiou]y
//
// fields beyond the condition are morphological annotations
// ("st:stem", "po:noun", ...) and are accepted but ignored: this
// library does not expose morphological analysis.
func (p *parser) parseAffixEntry(fields []string, isPrefix, allowCross bool) (*Entry, error) {
	if len(fields) < 5 {
		return nil, fmt.Errorf("malformed affix entry")
	}

	flag, err := p.parseFlag(fields[1])
	if err != nil {
		return nil, err
	}

	strip := fields[2]
	if strip == "0" {
		strip = ""
	}

	affixField := fields[3]
	affixPart, contPart, hasCont := strings.Cut(affixField, "/")
	if affixPart == "0" {
		affixPart = ""
	}
	var contFlags []Flag
	if hasCont {
		contFlags, err = ParseFlags(p.data.FlagMode, contPart)
		if err != nil {
			return nil, fmt.Errorf("bad continuation flags: %w", err)
		}
	}

	condStr := fields[4]
	if condStr == "." {
		condStr = ""
	}
	var cond *Condition
	if isPrefix {
		cond = NewPrefixCondition(condStr)
	} else {
		cond = NewSuffixCondition(condStr)
	}

	return &Entry{
		Flag:       flag,
		Strip:      strip,
		Affix:      affixPart,
		AllowCross: allowCross,
		Condition:  cond,
		ContFlags:  contFlags,
	}, nil
}
