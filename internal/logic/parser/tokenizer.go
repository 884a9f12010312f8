// File: tokenizer.go
// Title: Lexical Argument Tokenizer
// Description: Splits a raw argument string into a preamble and a multimap
//              from recognized flag prefixes to their ordered values.
//              Values are trimmed but not otherwise validated.

package parser

import (
	"sort"
	"strings"
	"unicode"
)

// Prefix marks the start of a flagged argument value, e.g. "n/" in
// "n/John Doe".
type Prefix string

// Recognized prefixes of the command surface.
const (
	PrefixName      Prefix = "n/"
	PrefixPhone     Prefix = "p/"
	PrefixEmail     Prefix = "e/"
	PrefixAddress   Prefix = "a/"
	PrefixTag       Prefix = "t/"
	PrefixMemo      Prefix = "m/"
	PrefixDate      Prefix = "d/"
	PrefixSubject   Prefix = "s/"
	PrefixFeedback  Prefix = "f/"
	PrefixTimeslot  Prefix = "ts/"
	PrefixSessionID Prefix = "session/"
	PrefixAttended  Prefix = "attended/"
)

// ArgumentMultimap is the result of tokenizing an argument string: the
// preamble before the first recognized prefix, and for each prefix the
// ordered sequence of values that followed its occurrences.
type ArgumentMultimap struct {
	preamble string
	values   map[Prefix][]string
}

// Preamble returns the trimmed text before the first recognized prefix.
func (m *ArgumentMultimap) Preamble() string {
	return m.preamble
}

// Value returns the value of the last occurrence of p and whether p
// occurred at all. A prefix given with no following text yields an empty
// string, which some commands use to signal "clear this field".
func (m *ArgumentMultimap) Value(p Prefix) (string, bool) {
	vals := m.values[p]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value of p in input order.
func (m *ArgumentMultimap) AllValues(p Prefix) []string {
	return m.values[p]
}

// VerifyNoDuplicatePrefixes returns a structured duplicate-prefix error
// naming every given prefix that occurred more than once.
func (m *ArgumentMultimap) VerifyNoDuplicatePrefixes(prefixes ...Prefix) error {
	var duplicated []Prefix
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			duplicated = append(duplicated, p)
		}
	}
	if len(duplicated) > 0 {
		return duplicatePrefixError(duplicated)
	}
	return nil
}

// prefixPosition is one occurrence of a recognized prefix in the input.
type prefixPosition struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefix-value mappings for the
// given prefixes. A prefix is recognized only at the start of the input or
// directly after whitespace, so values may freely contain slashes.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMultimap {
	positions := findPrefixPositions(args, prefixes)
	sort.Slice(positions, func(i, j int) bool {
		return positions[i].start < positions[j].start
	})

	m := &ArgumentMultimap{values: make(map[Prefix][]string)}
	if len(positions) == 0 {
		m.preamble = strings.TrimSpace(args)
		return m
	}

	m.preamble = strings.TrimSpace(args[:positions[0].start])
	for i, pos := range positions {
		valueStart := pos.start + len(pos.prefix)
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		value := strings.TrimSpace(args[valueStart:valueEnd])
		m.values[pos.prefix] = append(m.values[pos.prefix], value)
	}
	return m
}

// findPrefixPositions locates every occurrence of every recognized prefix.
func findPrefixPositions(args string, prefixes []Prefix) []prefixPosition {
	var positions []prefixPosition
	for _, p := range prefixes {
		from := 0
		for {
			idx := strings.Index(args[from:], string(p))
			if idx < 0 {
				break
			}
			start := from + idx
			if start == 0 || isSpaceByte(args[start-1]) {
				positions = append(positions, prefixPosition{prefix: p, start: start})
			}
			from = start + 1
		}
	}
	return positions
}

func isSpaceByte(b byte) bool {
	return unicode.IsSpace(rune(b))
}
