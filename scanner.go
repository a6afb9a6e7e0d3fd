// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"fmt"

	"github.com/creachadair/jtok/internal/escape"

	"go4.org/mem"
)

// errReadPastEnd is the panic value reported when the scanner is asked to
// advance beyond the end of its input. It indicates a bug in a recognizer, and
// is never reported as a syntax error.
var errReadPastEnd = errors.New("jtok: read past end of input")

// A Scanner recognizes values in a single input text. Each recognizer method
// examines the input at the current position: if the input there does not
// begin the corresponding construct, the method returns nil and consumes
// nothing. Otherwise it consumes the construct and returns its value, or
// reports a *SyntaxError if the construct is malformed.
//
// A Scanner is not safe for concurrent use. After a recognizer reports an
// error, the position of the scanner is unspecified and it should be
// discarded.
type Scanner struct {
	text mem.RO
	pos  int // offset of the current byte

	// Apparent line and column offsets (0-based) of pos.
	line, col int

	depth, maxDepth int

	items []func() Value // array items and property values, in order
	roots []func() Value // top-level values, in order
}

// NewScanner constructs a new scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	s := &Scanner{text: mem.S(text)}
	s.items = []func() Value{opt(s.boolean), opt(s.null), opt(s.number), opt(s.str), opt(s.object), opt(s.array)}
	s.roots = []func() Value{opt(s.str), opt(s.number), opt(s.boolean), opt(s.null), opt(s.array), opt(s.object)}
	return s
}

// SetMaxDepth limits the nesting depth of arrays and objects to n. If n ≤ 0,
// nesting is not limited.
func (s *Scanner) SetMaxDepth(n int) { s.maxDepth = n }

// Current returns the byte at the current position, or 0 at the end of the
// input.
func (s *Scanner) Current() byte {
	if s.AtEnd() {
		return 0
	}
	return s.text.At(s.pos)
}

// AtEnd reports whether the input has been fully consumed.
func (s *Scanner) AtEnd() bool { return s.pos >= s.text.Len() }

// Offset returns the current offset in the input.
func (s *Scanner) Offset() int { return s.pos }

// Location returns the complete location of the current position.
func (s *Scanner) Location() Location {
	return Location{Offset: s.pos, LineCol: LineCol{Line: s.line, Column: s.col}}
}

// Whitespace consumes a run of space, tab, CR, and LF characters, and reports
// whether any were found.
func (s *Scanner) Whitespace() bool { return s.whitespace() }

// Number recognizes a number: an optional "-" followed by digits and at most
// one decimal point. Scanning stops at the first byte that cannot continue
// the number, so "12a" yields 12 and leaves "a" unconsumed.
func (s *Scanner) Number() (*Number, error) { return catch(s.number) }

// Str recognizes a double-quoted string literal and decodes its escapes.
func (s *Scanner) Str() (*String, error) { return catch(s.str) }

// Bool recognizes either of the constants true or false.
func (s *Scanner) Bool() (*Bool, error) { return catch(s.boolean) }

// True recognizes the constant true.
func (s *Scanner) True() (*Bool, error) { return catch(s.trueLit) }

// False recognizes the constant false.
func (s *Scanner) False() (*Bool, error) { return catch(s.falseLit) }

// Null recognizes the constant null.
func (s *Scanner) Null() (*Null, error) { return catch(s.null) }

// Array recognizes an array of values enclosed in "[" ... "]".
func (s *Scanner) Array() (*Array, error) { return catch(s.array) }

// Object recognizes an object enclosed in "{" ... "}".
func (s *Scanner) Object() (*Object, error) { return catch(s.object) }

// Property parses a single "name": value property. Unlike the other
// recognizers, Property requires a match: if the input does not begin with a
// string it reports an InvalidPropertyName error.
func (s *Scanner) Property() (*Property, error) { return catch(s.property) }

// Value recognizes a single value of any type.
func (s *Scanner) Value() (Value, error) {
	return catch(func() Value { return s.first(s.roots) })
}

// document consumes the whole input as a single value surrounded by optional
// whitespace. It returns nil if the input is empty apart from whitespace.
func (s *Scanner) document() Value {
	s.whitespace()
	v := s.first(s.roots)
	s.whitespace()
	if !s.AtEnd() {
		if v == nil {
			s.unexpected()
		}
		s.failf(TrailingContent, "invalid character %q after top-level value", s.Current())
	}
	return v
}

func (s *Scanner) whitespace() bool {
	var ok bool
	for !s.AtEnd() && isSpace(s.Current()) {
		s.advance()
		ok = true
	}
	return ok
}

func (s *Scanner) number() *Number {
	if s.AtEnd() || !isNumStart(s.Current()) {
		return nil
	}
	start := s.pos
	var dots int
	for {
		if s.Current() == '.' {
			dots++
			if dots > 1 {
				s.fail(MultipleDecimalPoints)
			}
		}
		s.advance()
		if s.AtEnd() || !isNumRune(s.Current()) {
			break
		}
	}
	text := s.text.Slice(start, s.pos).StringCopy()
	v, err := parseNumber(text)
	if err != nil {
		s.failf(InvalidCharacter, "invalid number %q", text)
	}
	return &Number{Range: s.spanFrom(start), Text: text, Value: v}
}

func (s *Scanner) str() *String {
	if s.AtEnd() || s.Current() != '"' {
		return nil
	}
	start := s.pos
	s.advance()

	var buf escape.Buffer
	for {
		if s.AtEnd() {
			s.fail(UnterminatedString)
		}
		switch s.Current() {
		case '"':
			s.advance()
			return &String{Range: s.spanFrom(start), Value: buf.String()}
		case '\n', '\r':
			s.fail(MultilineString)
		case '\\':
			s.escape(&buf)
		default:
			// Copy a run of plain bytes in one go.
			end := s.pos + 1
			for end < s.text.Len() && !isStringSpecial(s.text.At(end)) {
				end++
			}
			buf.Append(s.text.Slice(s.pos, end))
			s.skip(end - s.pos)
		}
	}
}

// escape decodes a single escape sequence into buf.
// Precondition: current == '\\'.
func (s *Scanner) escape(buf *escape.Buffer) {
	s.advance()
	if s.AtEnd() {
		s.fail(UnterminatedString)
	}
	switch c := s.Current(); c {
	case '\n', '\r':
		s.fail(MultilineString)
	case 'u':
		s.advance()
		if s.text.Len()-s.pos < 4 {
			s.fail(IncompleteUnicodeEscape)
		}
		u, i, err := escape.ParseHex(s.text.Slice(s.pos, s.pos+4))
		if err != nil {
			if s.text.At(s.pos+i) == '"' {
				s.skip(i)
				s.fail(IncompleteUnicodeEscape)
			}
			// Not a unicode escape: "\u" denotes "u" like any other letter.
			buf.WriteByte('u')
			return
		}
		s.skip(4)
		buf.WriteUnit(u)
	default:
		buf.WriteByte(escape.Simple(c))
		s.advance()
	}
}

func (s *Scanner) null() *Null {
	start := s.pos
	if !s.literal("null") {
		return nil
	}
	return &Null{Range: s.spanFrom(start)}
}

func (s *Scanner) trueLit() *Bool {
	start := s.pos
	if !s.literal("true") {
		return nil
	}
	return &Bool{Range: s.spanFrom(start), Value: true}
}

func (s *Scanner) falseLit() *Bool {
	start := s.pos
	if !s.literal("false") {
		return nil
	}
	return &Bool{Range: s.spanFrom(start), Value: false}
}

func (s *Scanner) boolean() *Bool {
	if b := s.trueLit(); b != nil {
		return b
	}
	return s.falseLit()
}

// literal consumes the constant word and reports true, or reports false if
// the current byte does not begin word. Once the first byte matches, any
// mismatch is an error anchored at the start of the constant.
func (s *Scanner) literal(word string) bool {
	if s.AtEnd() || s.Current() != word[0] {
		return false
	}
	at := s.Location()
	for i := 1; i < len(word); i++ {
		s.advance()
		if s.AtEnd() {
			s.failAt(at, InvalidCharacter, "unexpected end of input in %q", word)
		} else if c := s.Current(); c != word[i] {
			s.failAt(at, InvalidCharacter, "invalid character %q in %q", c, word)
		}
	}
	s.advance()
	return true
}

func (s *Scanner) array() *Array {
	if s.AtEnd() || s.Current() != '[' {
		return nil
	}
	start := s.pos
	s.enter()
	s.advance()

	var items []Value
	var expect bool // a comma was seen and no item has followed it yet
	for {
		if s.AtEnd() {
			s.fail(UnterminatedArray)
		}
		c := s.Current()
		if c == ']' {
			if expect {
				s.fail(TrailingComma)
			}
			s.advance()
			s.leave()
			return &Array{Range: s.spanFrom(start), Items: items}
		} else if c == ',' {
			expect = true
			s.advance()
			continue
		} else if s.whitespace() {
			continue
		}

		v := s.first(s.items)
		if v == nil {
			s.unexpected()
		}
		items = append(items, v)
		expect = false
	}
}

func (s *Scanner) object() *Object {
	if s.AtEnd() || s.Current() != '{' {
		return nil
	}
	start := s.pos
	s.enter()
	s.advance()

	var props []*Property
	var expect bool // a comma was seen and no property has followed it yet
	for {
		if s.AtEnd() {
			s.fail(UnterminatedObject)
		}
		c := s.Current()
		if c == '}' {
			if expect {
				s.fail(TrailingComma)
			}
			s.advance()
			s.leave()
			return &Object{Range: s.spanFrom(start), Properties: props}
		} else if c == ',' {
			if len(props) == 0 {
				s.unexpected()
			}
			expect = true
			s.advance()
			continue
		} else if s.whitespace() {
			continue
		}

		props = append(props, s.property())
		expect = false
	}
}

func (s *Scanner) property() *Property {
	name := s.str()
	if name == nil {
		s.fail(InvalidPropertyName)
	}
	s.whitespace()
	if s.AtEnd() {
		s.failf(InvalidCharacter, "unexpected end of input, expected %q", ':')
	} else if c := s.Current(); c != ':' {
		s.failf(InvalidCharacter, "invalid character %q, expected %q", c, ':')
	}
	s.advance()
	s.whitespace()

	v := s.first(s.items)
	if v == nil {
		s.unexpected()
	}
	return &Property{Range: s.spanFrom(name.Range.Pos), Name: name, Value: v}
}

// first returns the value from the first of fs to match, or nil if none of
// them matches.
func (s *Scanner) first(fs []func() Value) Value {
	for _, f := range fs {
		if v := f(); v != nil {
			return v
		}
	}
	return nil
}

func (s *Scanner) enter() {
	s.depth++
	if s.maxDepth > 0 && s.depth > s.maxDepth {
		s.failf(TooDeep, "nesting depth exceeds %d", s.maxDepth)
	}
}

func (s *Scanner) leave() { s.depth-- }

// advance moves to the next byte of the input.
func (s *Scanner) advance() {
	if s.AtEnd() {
		panic(errReadPastEnd)
	}
	if s.text.At(s.pos) == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.pos++
}

// skip advances n times.
func (s *Scanner) skip(n int) {
	for range n {
		s.advance()
	}
}

// spanFrom returns the span from start to the current position.
func (s *Scanner) spanFrom(start int) Span { return Span{Pos: start, End: s.pos} }

// unexpected reports an InvalidCharacter error at the current position.
func (s *Scanner) unexpected() {
	if s.AtEnd() {
		s.failf(InvalidCharacter, "unexpected end of input")
	}
	s.failf(InvalidCharacter, "invalid character %q", s.Current())
}

func (s *Scanner) fail(kind ErrorKind) {
	panic(&SyntaxError{Kind: kind, Location: s.Location(), Message: kind.String()})
}

func (s *Scanner) failf(kind ErrorKind, msg string, args ...any) {
	s.failAt(s.Location(), kind, msg, args...)
}

func (s *Scanner) failAt(loc Location, kind ErrorKind, msg string, args ...any) {
	panic(&SyntaxError{Kind: kind, Location: loc, Message: fmt.Sprintf(msg, args...)})
}

// try calls f and returns its result. If f panics with a *SyntaxError, try
// recovers and returns that error; any other panic is propagated.
func try[T any](f func() T) (_ T, serr *SyntaxError) {
	defer func() {
		if x := recover(); x != nil {
			e, ok := x.(*SyntaxError)
			if !ok {
				panic(x)
			}
			serr = e
		}
	}()
	return f(), nil
}

// catch is as try, but reports its error as an error interface.
func catch[T any](f func() T) (T, error) {
	v, serr := try(f)
	if serr != nil {
		return v, serr
	}
	return v, nil
}

// opt adapts a recognizer returning a concrete pointer to one returning a
// Value, so that "no match" is an untyped nil.
func opt[P interface {
	*T
	Value
}, T any](f func() P) func() Value {
	return func() Value {
		if v := f(); v != nil {
			return v
		}
		return nil
	}
}

func isSpace(ch byte) bool    { return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t' }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }
func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isNumRune(ch byte) bool  { return ch == '.' || isDigit(ch) }

func isStringSpecial(ch byte) bool {
	return ch == '"' || ch == '\\' || ch == '\n' || ch == '\r'
}
