package resolve

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/nalgeon/be"
	"github.com/pontaoski/tawacheck/casebook"
	"github.com/pontaoski/tawacheck/syntax"
)

func TestCasebooks(t *testing.T) {
	books, err := filepath.Glob("testdata/*.md")
	be.Err(t, err, nil)
	be.True(t, len(books) > 0)

	for _, book := range books {
		t.Run(strings.TrimSuffix(filepath.Base(book), ".md"), func(t *testing.T) {
			content, err := os.ReadFile(book)
			be.Err(t, err, nil)

			cases, err := casebook.Extract(string(content))
			be.Err(t, err, nil)

			for _, tc := range cases {
				t.Run(tc.Name, func(t *testing.T) {
					runCase(t, book, tc)
				})
			}
		})
	}
}

func runCase(t *testing.T, book string, tc casebook.Case) {
	unit, err := syntax.ParseString("case.rs", tc.Source)
	if err != nil {
		t.Fatalf("%s:%d: %v", book, tc.Line, err)
	}

	u, diags := Resolve(unit)

	if tc.CheckDiagnostics {
		var got []string
		for _, d := range diags {
			got = append(got, fmt.Sprintf("%s: %s", d.Kind, d.Message))
		}
		be.Equal(t, got, tc.Diagnostics)
	}

	resolved := map[string]bool{}
	for _, fn := range u.Functions {
		resolved[fn.Signature()] = true
		Walk(fn.Body, func(e *Expr) bool {
			resolved[e.String()] = true
			return true
		})
	}
	for _, want := range tc.Types {
		if !resolved[want] {
			t.Errorf("no resolved expression or signature %q in\n%s", want, repr.String(keys(resolved), repr.Indent("  ")))
		}
	}
}

func keys(m map[string]bool) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}
