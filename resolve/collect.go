package resolve

import (
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tawacheck/ast"
	"github.com/pontaoski/tawacheck/diag"
	"github.com/pontaoski/tawacheck/errors"
	"github.com/pontaoski/tawacheck/symbols"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawacheck", "resolve")

// Collect registers every top-level item of unit before anything is
// resolved. Only names are read; function bodies are not inspected. A
// second item with an already-taken name is reported and skipped, so later
// phases see the first declaration. The returned table is sealed.
func Collect(unit *ast.CompilationUnit, rep *diag.Reporter) *symbols.Table {
	table := symbols.NewTable()

	for _, item := range unit.Items {
		if err := table.Insert(symbols.Of(item)); err != nil {
			rep.Report(err.(errors.Error))
		}
	}

	table.Seal()
	plog.Debugf("collected %d of %d top-level items in %q", table.Len(), len(unit.Items), unit.Name)

	return table
}
