// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jtok

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// A Value is a node of the syntax tree. The concrete type is one of *String,
// *Number, *Bool, *Null, *Array, or *Object.
type Value interface {
	Span() Span

	isValue()
}

// A String is a string value. Value holds the decoded text; the raw literal
// covers Range in the source.
type String struct {
	Range Span
	Value string
}

// Span satisfies the Value interface.
func (s *String) Span() Span { return s.Range }

// A Number is a numeric value.
type Number struct {
	Range Span
	Text  string  // the source text, as written
	Value float64 // the numeric value of Text
}

// Span satisfies the Value interface.
func (n *Number) Span() Span { return n.Range }

// IsInt reports whether n was written without a decimal point.
func (n *Number) IsInt() bool { return !strings.Contains(n.Text, ".") }

// Int64 returns the value of n as an int64. It reports false if n is not an
// integer or its value does not fit.
func (n *Number) Int64() (int64, bool) {
	if !n.IsInt() {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Text, 10, 64)
	return v, err == nil
}

// A Bool is a Boolean constant, true or false.
type Bool struct {
	Range Span
	Value bool
}

// Span satisfies the Value interface.
func (b *Bool) Span() Span { return b.Range }

// Null represents the null constant.
type Null struct {
	Range Span
}

// Span satisfies the Value interface.
func (n *Null) Span() Span { return n.Range }

// An Array is a sequence of values.
type Array struct {
	Range Span
	Items []Value
}

// Span satisfies the Value interface.
func (a *Array) Span() Span { return a.Range }

// Len reports the number of items in a.
func (a *Array) Len() int { return len(a.Items) }

// An Object is a collection of properties, in source order.
type Object struct {
	Range      Span
	Properties []*Property
}

// Span satisfies the Value interface.
func (o *Object) Span() Span { return o.Range }

// Len reports the number of properties in o.
func (o *Object) Len() int { return len(o.Properties) }

// Find returns the first property of o with the given name, or nil.
func (o *Object) Find(name string) *Property {
	for _, p := range o.Properties {
		if p.Name.Value == name {
			return p
		}
	}
	return nil
}

// A Property is a single name-value pair belonging to an Object. Its span
// runs from the start of the name to the end of the value.
type Property struct {
	Range Span
	Name  *String
	Value Value
}

// Span reports the location of p.
func (p *Property) Span() Span { return p.Range }

func (*String) isValue() {}
func (*Number) isValue() {}
func (*Bool) isValue()   {}
func (*Null) isValue()   {}
func (*Array) isValue()  {}
func (*Object) isValue() {}

// Plain converts v into plain Go values: objects become map[string]any,
// arrays []any, numbers float64, and null becomes nil. If an object has
// duplicate property names, the last one wins.
func Plain(v Value) any {
	switch t := v.(type) {
	case nil, *Null:
		return nil
	case *String:
		return t.Value
	case *Number:
		return t.Value
	case *Bool:
		return t.Value
	case *Array:
		out := make([]any, len(t.Items))
		for i, item := range t.Items {
			out[i] = Plain(item)
		}
		return out
	case *Object:
		out := make(map[string]any, len(t.Properties))
		for _, p := range t.Properties {
			out[p.Name.Value] = Plain(p.Value)
		}
		return out
	default:
		panic("unknown value type")
	}
}

// parseNumber computes the value of a number token. Text without a decimal
// point is parsed as an integer, falling back to floating point when it does
// not fit in 64 bits.
func parseNumber(text string) (float64, error) {
	if strings.Contains(text, ".") {
		return strconv.ParseFloat(text, 64)
	}
	z, err := strconv.ParseInt(text, 10, 64)
	if err == nil {
		return float64(z), nil
	}
	if errors.Is(err, strconv.ErrRange) {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !math.IsInf(f, 0) {
			return 0, err
		}
		return f, nil
	}
	return 0, err
}
