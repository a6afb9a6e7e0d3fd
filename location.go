// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import "fmt"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// Len reports the length of s in bytes.
func (s Span) Len() int { return s.End - s.Pos }

// Contains reports whether o lies entirely within s.
func (s Span) Contains(o Span) bool { return s.Pos <= o.Pos && o.End <= s.End }

// Rebase returns a copy of s shifted so that offset base becomes 0.
func (s Span) Rebase(base int) Span { return Span{Pos: s.Pos - base, End: s.End - base} }

func (s Span) String() string { return fmt.Sprintf("%d-%d", s.Pos, s.End) }

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 0-based
	Column int // byte offset of column in line, 0-based
}

// String renders lc as LINE:COL with a 1-based line number.
func (lc LineCol) String() string { return fmt.Sprintf("%d:%d", lc.Line+1, lc.Column) }

// A Location describes a single point in source text.
type Location struct {
	Offset int // byte offset, 0-based
	LineCol
}

func (loc Location) String() string {
	return fmt.Sprintf("%s (offset %d)", loc.LineCol, loc.Offset)
}
