// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

// Options control the behavior of Tokenize. A nil *Options is ready for use
// and provides default values.
type Options struct {
	// If true, a syntax error causes Tokenize to panic with the
	// *SyntaxError rather than returning it in the Result.
	PanicOnError bool

	// If positive, the maximum nesting depth of arrays and objects.
	MaxDepth int
}

func (o *Options) panicOnError() bool { return o != nil && o.PanicOnError }

func (o *Options) maxDepth() int {
	if o == nil {
		return 0
	}
	return o.MaxDepth
}

// A Result is the outcome of a call to Tokenize. Exactly one of Value and
// Errors is meaningful: if Errors is empty the document was valid, and Value
// is its root (nil if the document contained only whitespace).
type Result struct {
	Value  Value
	Errors []*SyntaxError
}

// OK reports whether r describes a successful parse.
func (r Result) OK() bool { return len(r.Errors) == 0 }

// Err returns the first error of r, or nil if r is OK.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return r.Errors[0]
}

// Tokenize parses text as a single value surrounded by optional whitespace.
// The whole input must be consumed; any content after the first value is an
// error. Parsing stops at the first error.
func Tokenize(text string, opts *Options) Result {
	s := NewScanner(text)
	s.SetMaxDepth(opts.maxDepth())

	v, err := try(s.document)
	if err != nil {
		if opts.panicOnError() {
			panic(err)
		}
		return Result{Errors: []*SyntaxError{err}}
	}
	return Result{Value: v}
}

// Parse parses text as by Tokenize with default options, and returns the root
// value. In case of error, the concrete type of the error is *SyntaxError.
func Parse(text string) (Value, error) {
	r := Tokenize(text, nil)
	return r.Value, r.Err()
}

// Unquote decodes a single string literal, including its enclosing double
// quotation marks, using the same rules as the scanner.
func Unquote(lit string) (string, error) {
	s := NewScanner(lit)
	v, err := catch(func() *String {
		str := s.str()
		if str == nil {
			s.unexpected()
		} else if !s.AtEnd() {
			s.failf(TrailingContent, "invalid character %q after string literal", s.Current())
		}
		return str
	})
	if err != nil {
		return "", err
	}
	return v.Value, nil
}
