// Package testutil defines support code for unit tests.
package testutil

import (
	"fmt"
	"os"

	"github.com/creachadair/jtok"
	"github.com/creachadair/jtok/cursor"
	"gopkg.in/yaml.v3"
)

// A Case is a single entry of a YAML test corpus. Exactly one of Value and
// Error is set.
type Case struct {
	Name  string `yaml:"name"`
	Input string `yaml:"input"`

	// For successful parses, the expected plain value (see jtok.Plain) and
	// optionally the span of the root.
	Value any   `yaml:"value"`
	Span  []int `yaml:"span,flow"` // [pos, end]

	// For failures, the expected error kind name and location.
	Error  string `yaml:"error"`
	Offset int    `yaml:"offset"`
	Line   int    `yaml:"line"`
	Column int    `yaml:"column"`
}

// WantError reports whether c expects a syntax error.
func (c Case) WantError() bool { return c.Error != "" }

// LoadCases reads a YAML list of test cases from path.
func LoadCases(path string) ([]Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cases, nil
}

// CheckSpans verifies the structural span invariants of v: every array and
// object span contains the spans of its children, which are non-overlapping
// and strictly increasing, and every property span runs from the start of
// its name to the end of its value. It returns one error per violation.
func CheckSpans(v jtok.Value) []error {
	var errs []error
	report := func(msg string, args ...any) { errs = append(errs, fmt.Errorf(msg, args...)) }
	checkKids := func(parent jtok.Span, kids []jtok.Span) {
		last := parent.Pos
		for i, k := range kids {
			if k.Len() <= 0 {
				report("child %d of %v has empty span %v", i, parent, k)
			}
			if !parent.Contains(k) || k.Pos == parent.Pos || k.End == parent.End {
				report("span %v does not strictly contain child %d at %v", parent, i, k)
			}
			if k.Pos < last {
				report("child %d at %v overlaps its predecessor (end %d)", i, k, last)
			}
			last = k.End
		}
	}
	cursor.Walk(v, func(n cursor.Node) bool {
		switch t := n.(type) {
		case *jtok.Array:
			kids := make([]jtok.Span, len(t.Items))
			for i, item := range t.Items {
				kids[i] = item.Span()
			}
			checkKids(t.Range, kids)
		case *jtok.Object:
			kids := make([]jtok.Span, len(t.Properties))
			for i, p := range t.Properties {
				kids[i] = p.Range
			}
			checkKids(t.Range, kids)
		case *jtok.Property:
			if t.Range.Pos != t.Name.Range.Pos || t.Range.End != t.Value.Span().End {
				report("property %q span %v does not cover name %v through value %v",
					t.Name.Value, t.Range, t.Name.Range, t.Value.Span())
			}
		}
		return true
	})
	return errs
}
