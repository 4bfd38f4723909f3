// Package casebook reads resolver scenarios out of markdown documents.
//
// A scenario starts at a heading of the form "Test: <name>" and holds one
// fenced block of source plus at least one expectation block:
//
//	## Test: forward reference
//
//	```unit
//	fn make() -> Point { Point { x: 1.0 } }
//	struct Point { x: f64 }
//	```
//
//	```diagnostics
//	none
//	```
//
//	```types
//	fn make() -> Point
//	Point { x: 1.0 }: Point
//	```
//
// Diagnostics lines read "Kind: message". Types lines are either a resolved
// function signature or "expression: type".
package casebook

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

const (
	FenceUnit        = "unit"
	FenceDiagnostics = "diagnostics"
	FenceTypes       = "types"
)

type Case struct {
	Name   string
	Line   int
	Source string

	// CheckDiagnostics is set when the case has a diagnostics block. An
	// empty Diagnostics then means the unit must resolve cleanly.
	CheckDiagnostics bool
	Diagnostics      []string
	Types            []string
}

// Extract returns every case in document order.
func Extract(markdown string) ([]Case, error) {
	source := []byte(markdown)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var cases []Case
	var current *Case

	finish := func() error {
		if current == nil {
			return nil
		}
		if err := validate(current); err != nil {
			return err
		}
		cases = append(cases, *current)
		return nil
	}

	err := ast.Walk(doc, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n := node.(type) {
		case *ast.Heading:
			heading := textOf(n, source)
			if !strings.HasPrefix(heading, "Test: ") {
				return ast.WalkContinue, nil
			}
			if err := finish(); err != nil {
				return ast.WalkStop, err
			}
			current = &Case{
				Name: strings.TrimPrefix(heading, "Test: "),
				Line: lineOf(n, source),
			}

		case *ast.FencedCodeBlock:
			lang := string(n.Language(source))
			line := lineOf(n, source)
			if lang == "" {
				return ast.WalkContinue, nil
			}
			if current == nil {
				return ast.WalkStop, fmt.Errorf("line %d: %s fence outside of a test", line, lang)
			}

			content := strings.TrimRight(contentOf(n, source), "\n")
			switch lang {
			case FenceUnit:
				if current.Source != "" {
					return ast.WalkStop, fmt.Errorf("line %d: test %q has more than one unit fence", line, current.Name)
				}
				current.Source = content
			case FenceDiagnostics:
				current.CheckDiagnostics = true
				for _, l := range lines(content) {
					if l != "none" {
						current.Diagnostics = append(current.Diagnostics, l)
					}
				}
			case FenceTypes:
				current.Types = append(current.Types, lines(content)...)
			default:
				return ast.WalkStop, fmt.Errorf("line %d: unknown fence %q in test %q", line, lang, current.Name)
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, err
	}

	if err := finish(); err != nil {
		return nil, err
	}
	return cases, nil
}

func validate(c *Case) error {
	if c.Source == "" {
		return fmt.Errorf("test %q has no unit fence", c.Name)
	}
	if !c.CheckDiagnostics && len(c.Types) == 0 {
		return fmt.Errorf("test %q has no expectations", c.Name)
	}
	return nil
}

func lines(content string) []string {
	var out []string
	for _, l := range strings.Split(content, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func textOf(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := n.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
		}
		return ast.WalkContinue, nil
	})
	return buf.String()
}

func contentOf(block *ast.FencedCodeBlock, source []byte) string {
	var buf bytes.Buffer
	for i := 0; i < block.Lines().Len(); i++ {
		line := block.Lines().At(i)
		buf.Write(line.Value(source))
	}
	return buf.String()
}

func lineOf(node ast.Node, source []byte) int {
	if node.Lines().Len() == 0 {
		return 0
	}
	return bytes.Count(source[:node.Lines().At(0).Start], []byte("\n")) + 1
}
