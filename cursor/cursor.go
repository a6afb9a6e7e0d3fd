// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Package cursor resolves source positions to the nodes of a syntax tree.
package cursor

import (
	"slices"
	"strings"

	"github.com/creachadair/jtok"
)

// A Node is an element of a syntax tree: either a jtok.Value or a
// *jtok.Property.
type Node interface {
	Span() jtok.Span
}

// Enclosing returns the nodes of v whose spans contain the given byte offset,
// ordered from v down to the innermost. It returns nil if offset lies outside
// the span of v.
//
// A property encloses its name, its value, and the separator between them, so
// an offset on the ":" resolves to the *jtok.Property. Whitespace and commas
// between the children of an array or object resolve to the container.
func Enclosing(v jtok.Value, offset int) []Node {
	if v == nil || !contains(v.Span(), offset) {
		return nil
	}
	path := []Node{v}
	for {
		next := child(path[len(path)-1], offset)
		if next == nil {
			return path
		}
		path = append(path, next)
	}
}

// At returns the innermost node of v whose span contains offset, or nil.
func At(v jtok.Value, offset int) Node {
	if path := Enclosing(v, offset); len(path) != 0 {
		return path[len(path)-1]
	}
	return nil
}

// child returns the child of n containing offset, or nil.
func child(n Node, offset int) Node {
	switch t := n.(type) {
	case *jtok.Array:
		if v, ok := search(t.Items, offset); ok {
			return v
		}
	case *jtok.Object:
		if p, ok := search(t.Properties, offset); ok {
			return p
		}
	case *jtok.Property:
		if contains(t.Name.Range, offset) {
			return t.Name
		} else if contains(t.Value.Span(), offset) {
			return t.Value
		}
	}
	return nil
}

// search finds the element of kids containing offset. The spans of kids must
// be non-overlapping and in increasing order, as the scanner produces them.
func search[T Node](kids []T, offset int) (T, bool) {
	i, ok := slices.BinarySearchFunc(kids, offset, func(k T, off int) int {
		sp := k.Span()
		if off < sp.Pos {
			return 1
		} else if off >= sp.End {
			return -1
		}
		return 0
	})
	if !ok {
		var zero T
		return zero, false
	}
	return kids[i], true
}

func contains(sp jtok.Span, offset int) bool { return sp.Pos <= offset && offset < sp.End }

// Offset returns the byte offset in text of the position lc, using the same
// line and column conventions as jtok.Location. It reports false if text has
// no such position. The column may equal the length of its line, denoting the
// line break (or the end of the text on the last line).
func Offset(text string, lc jtok.LineCol) (int, bool) {
	if lc.Line < 0 || lc.Column < 0 {
		return 0, false
	}
	start := 0
	for range lc.Line {
		i := strings.IndexByte(text[start:], '\n')
		if i < 0 {
			return 0, false
		}
		start += i + 1
	}
	end := len(text)
	if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
		end = start + i
	}
	if start+lc.Column > end {
		return 0, false
	}
	return start + lc.Column, true
}

// Locate returns the location of the given byte offset in text. It reports
// false if offset is out of range. Locate(text, len(text)) is the location
// of the end of the input.
func Locate(text string, offset int) (jtok.Location, bool) {
	if offset < 0 || offset > len(text) {
		return jtok.Location{}, false
	}
	before := text[:offset]
	return jtok.Location{
		Offset: offset,
		LineCol: jtok.LineCol{
			Line:   strings.Count(before, "\n"),
			Column: offset - (strings.LastIndexByte(before, '\n') + 1),
		},
	}, true
}
