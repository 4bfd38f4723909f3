// Package diag collects the problems found while resolving a compilation
// unit and hands them out in source order.
package diag

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pontaoski/tawacheck/errors"
	"github.com/pontaoski/tawacheck/types"
)

type Diagnostic struct {
	Kind     errors.Kind
	Location types.Span
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.Location.From, d.Kind, d.Message)
}

// Diagnostics is sorted by source position.
type Diagnostics []Diagnostic

func (d Diagnostics) HasErrors() bool {
	return len(d) > 0
}

// Kinds lists the kind of every diagnostic, in order.
func (d Diagnostics) Kinds() []errors.Kind {
	var out []errors.Kind
	for _, it := range d {
		out = append(out, it.Kind)
	}
	return out
}

func (d Diagnostics) Error() string {
	lines := make([]string, 0, len(d))
	for _, it := range d {
		lines = append(lines, it.String())
	}
	return strings.Join(lines, "\n")
}

// Err returns d as an error, or nil when there is nothing to report.
func (d Diagnostics) Err() error {
	if !d.HasErrors() {
		return nil
	}
	return d
}

// Reporter accumulates errors for one resolution run. It is not safe for
// concurrent use; every run owns its own Reporter.
type Reporter struct {
	errs []errors.Error
}

func NewReporter() *Reporter {
	return &Reporter{}
}

func (r *Reporter) Report(err errors.Error) {
	r.errs = append(r.errs, err)
}

func (r *Reporter) HasErrors() bool {
	return len(r.errs) > 0
}

func (r *Reporter) Len() int {
	return len(r.errs)
}

// Diagnostics returns everything reported so far ordered by position.
// Diagnostics at the same position keep the order they were reported in.
func (r *Reporter) Diagnostics() Diagnostics {
	out := make(Diagnostics, 0, len(r.errs))
	for _, err := range r.errs {
		out = append(out, Diagnostic{
			Kind:     err.Kind(),
			Location: err.At(),
			Message:  err.Message(),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Location.From.Before(out[j].Location.From)
	})
	return out
}
