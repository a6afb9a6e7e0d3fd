// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package jtok implements a tokenizer that builds a syntax tree of JSON-like
// values annotated with precise source positions.
//
// # Tokenizing
//
// Call Tokenize with the complete text of a document. The document must
// contain at most one value, optionally surrounded by whitespace:
//
//	r := jtok.Tokenize(input, nil)
//	if !r.OK() {
//	   log.Fatalf("Tokenize failed: %v", r.Err())
//	}
//	log.Printf("Root value spans %v", r.Value.Span())
//
// Tokenizing stops at the first error. Errors have concrete type
// *jtok.SyntaxError, and report the kind of error together with the offset,
// line, and column where it was detected. Set Options.PanicOnError to panic
// with the error instead of returning it.
//
// # Values
//
// The concrete type of a Value is one of:
//
//	Type     | Source               | Contents
//	-------- | -------------------- | ---------------------------------
//	*String  | "a\tb"               | decoded text
//	*Number  | -12.5                | source text and float64 value
//	*Bool    | true, false          | bool
//	*Null    | null                 | --
//	*Array   | [ ... ]              | items in source order
//	*Object  | { "name": ... }      | *Property values in source order
//
// Every value records the Span of source text it was parsed from. The span
// of an array or object contains the spans of all its children.
//
// # Grammar
//
// The accepted grammar is close to JSON, with these differences: numbers may
// have leading zeros and have no exponent notation; strings may not contain
// raw CR or LF characters; an escape other than \\, \", \n, \r, \t, or
// \uXXXX denotes the escaped character itself; and commas between array items
// and object properties are optional, though a comma may not be the last
// thing before "]" or "}".
//
// # Scanning
//
// The Scanner type exposes the individual recognizers. Each recognizer
// returns nil and consumes nothing if the input at the current position does
// not begin its construct:
//
//	s := jtok.NewScanner(`-15.25 rest`)
//	n, err := s.Number() // n.Value == -15.25, s.Offset() == 6
package jtok
