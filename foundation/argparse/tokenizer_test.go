// File: tokenizer_test.go
// Title: Prefix Tokenizer Tests
// Description: Tests for preamble extraction, fragment splitting, repeated prefixes
//              and prefix recognition rules.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial test suite

package argparse

import (
	"reflect"
	"testing"
)

const (
	pAmount Prefix = "a/"
	pDate   Prefix = "d/"
	pRemark Prefix = "r/"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		preamble  string
		fragments []Fragment
	}{
		{
			name:     "empty input",
			input:    "",
			preamble: "",
		},
		{
			name:     "preamble only",
			input:    "  2  ",
			preamble: "  2  ",
		},
		{
			name:     "amount",
			input:    "1 a/23.50",
			preamble: "1 ",
			fragments: []Fragment{
				{Prefix: pAmount, Value: "23.50"},
			},
		},
		{
			name:     "remark with spaces",
			input:    "4 r/cca shirt",
			preamble: "4 ",
			fragments: []Fragment{
				{Prefix: pRemark, Value: "cca shirt"},
			},
		},
		{
			name:     "two different prefixes keep input order",
			input:    "2 d/2023-01-01 a/10",
			preamble: "2 ",
			fragments: []Fragment{
				{Prefix: pDate, Value: "2023-01-01 "},
				{Prefix: pAmount, Value: "10"},
			},
		},
		{
			name:     "prefix at start of input",
			input:    "a/5",
			preamble: "",
			fragments: []Fragment{
				{Prefix: pAmount, Value: "5"},
			},
		},
		{
			name:     "prefix inside a word is not recognised",
			input:    "1 r/data/a/b",
			preamble: "1 ",
			fragments: []Fragment{
				{Prefix: pRemark, Value: "data/a/b"},
			},
		},
		{
			name:     "tab before prefix",
			input:    "1\ta/7",
			preamble: "1\t",
			fragments: []Fragment{
				{Prefix: pAmount, Value: "7"},
			},
		},
		{
			name:     "no-break space does not start a prefix",
			input:    "1 r/a\u00a0a/5",
			preamble: "1 ",
			fragments: []Fragment{
				{Prefix: pRemark, Value: "a\u00a0a/5"},
			},
		},
		{
			name:     "empty value",
			input:    "1 a/",
			preamble: "1 ",
			fragments: []Fragment{
				{Prefix: pAmount, Value: ""},
			},
		},
		{
			name:     "unknown prefix stays in preamble",
			input:    "1 x/5",
			preamble: "1 x/5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Tokenize(tt.input, pAmount, pDate, pRemark)

			if m.Preamble() != tt.preamble {
				t.Errorf("Preamble() = %q, want %q", m.Preamble(), tt.preamble)
			}
			got := m.Fragments()
			if len(got) == 0 && len(tt.fragments) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.fragments) {
				t.Errorf("Fragments() = %#v, want %#v", got, tt.fragments)
			}
		})
	}
}

func TestTokenize_RepeatedPrefix(t *testing.T) {
	m := Tokenize("3 a/10 a/10 r/x", pAmount, pDate, pRemark)

	if got := m.Count(pAmount); got != 2 {
		t.Fatalf("Count(a/) = %d, want 2", got)
	}
	if got := m.AllValues(pAmount); !reflect.DeepEqual(got, []string{"10 ", "10 "}) {
		t.Errorf("AllValues(a/) = %#v", got)
	}
	if v, ok := m.Value(pAmount); !ok || v != "10 " {
		t.Errorf("Value(a/) = %q, %v", v, ok)
	}
	if dups := m.Duplicates(pAmount, pDate, pRemark); !reflect.DeepEqual(dups, []Prefix{pAmount}) {
		t.Errorf("Duplicates() = %v", dups)
	}
}

func TestTokenize_AbsentPrefix(t *testing.T) {
	m := Tokenize("1 a/5", pAmount, pDate)

	if m.Has(pDate) {
		t.Error("Has(d/) = true for absent prefix")
	}
	if v, ok := m.Value(pDate); ok || v != "" {
		t.Errorf("Value(d/) = %q, %v", v, ok)
	}
	if vals := m.AllValues(pDate); len(vals) != 0 {
		t.Errorf("AllValues(d/) = %v", vals)
	}
}

func TestTokenize_OverlappingPrefixes(t *testing.T) {
	m := Tokenize("1 ab/x a/y", Prefix("a"), Prefix("ab/"), pAmount)

	frags := m.Fragments()
	if len(frags) != 2 {
		t.Fatalf("Fragments() = %#v", frags)
	}
	if frags[0].Prefix != "ab/" || frags[0].Value != "x " {
		t.Errorf("first fragment = %#v", frags[0])
	}
	if frags[1].Prefix != pAmount || frags[1].Value != "y" {
		t.Errorf("second fragment = %#v", frags[1])
	}
}

func TestTokenize_ResultIsIndependentCopy(t *testing.T) {
	m := Tokenize("1 a/5", pAmount)

	vals := m.AllValues(pAmount)
	vals[0] = "mutated"
	frags := m.Fragments()
	frags[0].Value = "mutated"

	if v, _ := m.Value(pAmount); v != "5" {
		t.Errorf("ArgMap was mutated through a returned slice: %q", v)
	}
}
