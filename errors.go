// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import "fmt"

// ErrorKind classifies a SyntaxError.
type ErrorKind byte

// Constants defining the valid ErrorKind values.
const (
	InvalidCharacter        ErrorKind = iota + 1 // unexpected input byte
	UnterminatedString                           // end of input inside "..."
	UnterminatedArray                            // end of input inside [...]
	UnterminatedObject                           // end of input inside {...}
	MultipleDecimalPoints                        // second "." in a number
	IncompleteUnicodeEscape                      // \u with fewer than 4 bytes left
	MultilineString                              // raw CR or LF inside "..."
	TrailingComma                                // "," with no item before "]" or "}"
	InvalidPropertyName                          // object member key is not a string
	TrailingContent                              // input remains after the top-level value
	TooDeep                                      // nesting exceeds the configured limit
)

var kindStr = [...]string{
	InvalidCharacter:        "invalid character",
	UnterminatedString:      "unterminated string literal",
	UnterminatedArray:       "unterminated array",
	UnterminatedObject:      "unterminated object",
	MultipleDecimalPoints:   "a number may contain at most one decimal point",
	IncompleteUnicodeEscape: "incomplete unicode escape",
	MultilineString:         "strings cannot be broken into multiple lines",
	TrailingComma:           "expected item after comma",
	InvalidPropertyName:     "invalid property name (property names can only be strings)",
	TrailingContent:         "invalid character after top-level value",
	TooDeep:                 "maximum nesting depth exceeded",
}

func (k ErrorKind) String() string {
	v := int(k)
	if v <= 0 || v >= len(kindStr) {
		return fmt.Sprintf("ErrorKind(%d)", v)
	}
	return kindStr[v]
}

// SyntaxError is the concrete type of errors reported by the tokenizer.
type SyntaxError struct {
	Kind     ErrorKind
	Location Location
	Message  string
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at %s: %s", s.Location, s.Message)
}

// Is reports whether target is a *SyntaxError of the same kind. This permits
// errors.Is(err, &jtok.SyntaxError{Kind: jtok.UnterminatedArray}).
func (s *SyntaxError) Is(target error) bool {
	t, ok := target.(*SyntaxError)
	return ok && t.Kind == s.Kind
}
