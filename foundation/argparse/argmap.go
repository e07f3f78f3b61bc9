// File: argmap.go
// Title: Argument Map
// Description: Result of tokenizing: the preamble plus ordered prefix fragments.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial implementation

package argparse

// Fragment is one prefix occurrence and the raw text that follows it
type Fragment struct {
	Prefix Prefix
	Value  string
}

// ArgMap holds the preamble and every fragment found by Tokenize
type ArgMap struct {
	preamble  string
	fragments []Fragment
	values    map[Prefix][]string
}

func newArgMap() *ArgMap {
	return &ArgMap{values: make(map[Prefix][]string)}
}

func (m *ArgMap) put(prefix Prefix, value string) {
	m.fragments = append(m.fragments, Fragment{Prefix: prefix, Value: value})
	m.values[prefix] = append(m.values[prefix], value)
}

// Preamble returns the text before the first recognised prefix, untrimmed
func (m *ArgMap) Preamble() string {
	return m.preamble
}

// Value returns the last value given for prefix
func (m *ArgMap) Value(prefix Prefix) (string, bool) {
	vals := m.values[prefix]
	if len(vals) == 0 {
		return "", false
	}
	return vals[len(vals)-1], true
}

// AllValues returns every value given for prefix, in input order
func (m *ArgMap) AllValues(prefix Prefix) []string {
	vals := m.values[prefix]
	out := make([]string, len(vals))
	copy(out, vals)
	return out
}

// Has reports whether prefix occurred at least once
func (m *ArgMap) Has(prefix Prefix) bool {
	return len(m.values[prefix]) > 0
}

// Count returns how many times prefix occurred
func (m *ArgMap) Count(prefix Prefix) int {
	return len(m.values[prefix])
}

// Duplicates returns the prefixes, among those given, that occurred more than once
func (m *ArgMap) Duplicates(prefixes ...Prefix) []Prefix {
	var dups []Prefix
	for _, p := range prefixes {
		if m.Count(p) > 1 {
			dups = append(dups, p)
		}
	}
	return dups
}

// Fragments returns all fragments in input order
func (m *ArgMap) Fragments() []Fragment {
	out := make([]Fragment, len(m.fragments))
	copy(out, m.fragments)
	return out
}
