// Package symbols is the flat top-level namespace of a compilation unit.
package symbols

import (
	"github.com/pontaoski/tawacheck/ast"
	"github.com/pontaoski/tawacheck/errors"
	"github.com/pontaoski/tawacheck/types"
)

type Kind int

const (
	Function Kind = iota
	Struct
)

func (k Kind) String() string {
	if k == Struct {
		return "struct"
	}
	return "function"
}

type Symbol struct {
	Name     string
	Kind     Kind
	Decl     ast.Item
	Location types.Span
}

// Of builds the symbol for a top-level item.
func Of(item ast.Item) *Symbol {
	sym := &Symbol{
		Name:     ast.NameOf(item),
		Decl:     item,
		Location: ast.ItemSpan(item),
	}
	if _, ok := item.(*ast.Struct); ok {
		sym.Kind = Struct
	}
	return sym
}

// Table maps names to declarations, one namespace per Kind. Once sealed it
// is read-only.
type Table struct {
	names  map[Kind]map[string]*Symbol
	order  []*Symbol
	sealed bool
}

func NewTable() *Table {
	return &Table{
		names: map[Kind]map[string]*Symbol{
			Function: {},
			Struct:   {},
		},
	}
}

// Insert adds sym unless its namespace already holds the name, in which
// case the existing entry is kept and a DuplicateDeclaration is returned.
func (t *Table) Insert(sym *Symbol) error {
	if t.sealed {
		panic("error: symbol table is sealed, cannot insert " + sym.Name)
	}

	if prev, ok := t.names[sym.Kind][sym.Name]; ok {
		return errors.DuplicateDeclaration{
			Name:     sym.Name,
			Location: sym.Location,
			Previous: prev.Location,
		}
	}

	t.names[sym.Kind][sym.Name] = sym
	t.order = append(t.order, sym)
	return nil
}

func (t *Table) Lookup(kind Kind, name string) (*Symbol, bool) {
	sym, ok := t.names[kind][name]
	return sym, ok
}

func (t *Table) LookupFunction(name string) (*ast.Function, bool) {
	sym, ok := t.Lookup(Function, name)
	if !ok {
		return nil, false
	}
	return sym.Decl.(*ast.Function), true
}

func (t *Table) LookupStruct(name string) (*ast.Struct, bool) {
	sym, ok := t.Lookup(Struct, name)
	if !ok {
		return nil, false
	}
	return sym.Decl.(*ast.Struct), true
}

// Seal ends the collection phase.
func (t *Table) Seal() {
	t.sealed = true
}

func (t *Table) Sealed() bool {
	return t.sealed
}

func (t *Table) Len() int {
	return len(t.order)
}

// Symbols returns the entries in insertion order.
func (t *Table) Symbols() []*Symbol {
	out := make([]*Symbol, len(t.order))
	copy(out, t.order)
	return out
}
