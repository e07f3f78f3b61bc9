// File: tokenizer.go
// Title: Prefix Tokenizer
// Description: Finds recognised prefixes in argument text and cuts the text into
//              a preamble and one fragment per prefix occurrence.
// Author: msto63
// Version: v0.1.1
// Created: 2025-10-17
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation
// - 2025-10-18 v0.1.1: Only ASCII whitespace starts a new token

package argparse

import (
	"sort"
	"strings"
)

// Prefix is a literal label marker such as "a/"
type Prefix string

// String returns the prefix text
func (p Prefix) String() string {
	return string(p)
}

// position marks where a prefix starts in the input
type position struct {
	prefix Prefix
	start  int // byte offset of the prefix
}

// Tokenize splits args into a preamble and the fragments introduced by prefixes.
// Prefixes that are empty strings are ignored.
func Tokenize(args string, prefixes ...Prefix) *ArgMap {
	positions := findAllPositions(args, prefixes)

	m := newArgMap()
	if len(positions) == 0 {
		m.preamble = args
		return m
	}

	m.preamble = args[:positions[0].start]
	for i, pos := range positions {
		valueStart := pos.start + len(pos.prefix)
		valueEnd := len(args)
		if i+1 < len(positions) {
			valueEnd = positions[i+1].start
		}
		m.put(pos.prefix, args[valueStart:valueEnd])
	}

	return m
}

// findAllPositions returns every prefix occurrence ordered by offset
func findAllPositions(args string, prefixes []Prefix) []position {
	var positions []position
	seen := make(map[Prefix]bool, len(prefixes))

	for _, prefix := range prefixes {
		if prefix == "" || seen[prefix] {
			continue
		}
		seen[prefix] = true
		positions = append(positions, findPositions(args, prefix)...)
	}

	sort.SliceStable(positions, func(i, j int) bool {
		return positions[i].start < positions[j].start
	})
	return dropOverlaps(positions)
}

// findPositions returns the offsets where prefix starts a token
func findPositions(args string, prefix Prefix) []position {
	var positions []position
	p := string(prefix)

	for from := 0; from <= len(args)-len(p); {
		idx := strings.Index(args[from:], p)
		if idx < 0 {
			break
		}
		start := from + idx
		if atTokenStart(args, start) {
			positions = append(positions, position{prefix: prefix, start: start})
		}
		from = start + 1
	}

	return positions
}

// atTokenStart reports whether offset is the start of the input or follows
// ASCII whitespace. Other Unicode spaces belong to the value.
func atTokenStart(args string, offset int) bool {
	if offset == 0 {
		return true
	}
	switch args[offset-1] {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// dropOverlaps keeps one occurrence per offset. When one recognised prefix is a
// prefix of another and both match at the same offset, the longer one wins.
func dropOverlaps(positions []position) []position {
	if len(positions) < 2 {
		return positions
	}

	out := positions[:0]
	for _, pos := range positions {
		if n := len(out); n > 0 && out[n-1].start == pos.start {
			if len(pos.prefix) > len(out[n-1].prefix) {
				out[n-1] = pos
			}
			continue
		}
		out = append(out, pos)
	}
	return out
}
