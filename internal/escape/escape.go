// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package escape handles decoding of escape sequences in string literals.
package escape

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"

	"go4.org/mem"
)

// Simple returns the byte denoted by the escape sequence \b. Bytes with no
// special meaning denote themselves.
func Simple(b byte) byte {
	switch b {
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	default:
		return b // includes '"' and '\\'
	}
}

// ParseHex decodes data as a hexadecimal value. If data contains a byte that
// is not a hex digit, ParseHex reports its index along with an error.
func ParseHex(data mem.RO) (rune, int, error) {
	var v rune
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		if '0' <= b && b <= '9' {
			v += rune(b - '0')
		} else if 'a' <= b && b <= 'f' {
			v += rune(b - 'a' + 10)
		} else if 'A' <= b && b <= 'F' {
			v += rune(b - 'A' + 10)
		} else {
			return 0, i, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, 0, nil
}

// A Buffer accumulates the decoded contents of a string literal. UTF-16 code
// units written with WriteUnit are combined into runes when they form a
// surrogate pair; an unpaired surrogate is written as utf8.RuneError.
//
// The zero value is ready for use.
type Buffer struct {
	buf []byte
	hi  rune // pending high surrogate, or 0
}

// WriteByte appends a single byte. It always returns nil.
func (b *Buffer) WriteByte(c byte) error {
	b.flush()
	b.buf = append(b.buf, c)
	return nil
}

// Append appends the contents of data.
func (b *Buffer) Append(data mem.RO) {
	b.flush()
	b.buf = mem.Append(b.buf, data)
}

// WriteUnit appends a single UTF-16 code unit.
func (b *Buffer) WriteUnit(u rune) {
	switch {
	case b.hi != 0 && isLowSurrogate(u):
		b.buf = utf8.AppendRune(b.buf, utf16.DecodeRune(b.hi, u))
		b.hi = 0
	case isHighSurrogate(u):
		b.flush()
		b.hi = u
	default:
		b.flush()
		b.buf = utf8.AppendRune(b.buf, u) // lone low surrogates encode as RuneError
	}
}

// String returns the decoded contents of b.
func (b *Buffer) String() string {
	b.flush()
	return string(b.buf)
}

func (b *Buffer) flush() {
	if b.hi != 0 {
		b.buf = utf8.AppendRune(b.buf, utf8.RuneError)
		b.hi = 0
	}
}

func isHighSurrogate(r rune) bool { return 0xd800 <= r && r < 0xdc00 }
func isLowSurrogate(r rune) bool  { return 0xdc00 <= r && r < 0xe000 }
