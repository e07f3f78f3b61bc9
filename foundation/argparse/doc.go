// File: doc.go
// Title: Argument Tokenizer Package Documentation
// Description: Splits command argument text into an unlabeled preamble and
//              prefix-labeled fragments.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-17
// Modified: 2025-10-17
//
// Change History:
// - 2025-10-17 v0.1.0: Initial tokenizer, replaces the TCOL lexer for prefix syntax

/*
Package argparse splits the argument part of a command line into a preamble and
labeled fragments.

A label is a short literal prefix such as "a/" or "d/". A prefix is recognised
only at the start of the input or directly after ASCII whitespace, so "abc/def" inside a
value does not start a new fragment.

	m := argparse.Tokenize("3 a/23.50 r/cca shirt", "a/", "r/")
	m.Preamble()          // "3 "
	m.Value("r/")         // "cca shirt", true
	m.Count("a/")         // 1

The tokenizer is purely structural: values are not trimmed or validated, and a
prefix that appears several times keeps every occurrence so callers can reject
duplicates.
*/
package argparse
