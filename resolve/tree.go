package resolve

import (
	"fmt"
	"strings"

	"github.com/pontaoski/tawacheck/ast"
	"github.com/pontaoski/tawacheck/symbols"
	"github.com/pontaoski/tawacheck/types"
)

// Unit is a compilation unit with every expression annotated. It is
// returned even when resolution reported diagnostics; failed nodes carry
// types.Invalid.
type Unit struct {
	Name      string
	Structs   []*Struct
	Functions []*Function

	structs   map[string]*Struct
	functions map[string]*Function
}

func newUnit(name string) *Unit {
	return &Unit{
		Name:      name,
		structs:   map[string]*Struct{},
		functions: map[string]*Function{},
	}
}

// Struct returns the first struct declared under name.
func (u *Unit) Struct(name string) (*Struct, bool) {
	s, ok := u.structs[name]
	return s, ok
}

// Function returns the first function declared under name.
func (u *Unit) Function(name string) (*Function, bool) {
	f, ok := u.functions[name]
	return f, ok
}

type Field struct {
	Name  string
	Type  types.Type
	Index int
	Decl  *ast.FieldDecl
}

type Struct struct {
	Decl   *ast.Struct
	Type   types.Type
	Fields []*Field

	fields map[string]*Field
}

func (s *Struct) Field(name string) (*Field, bool) {
	f, ok := s.fields[name]
	return f, ok
}

// Local is a parameter or let binding.
type Local struct {
	Name     string
	Type     types.Type
	Mutable  bool
	Param    bool
	Location types.Span
}

type Function struct {
	Decl    *ast.Function
	Name    string
	Params  []*Local
	Returns types.Type
	Body    *Expr
}

// Signature renders the resolved signature, e.g. "fn make_origin() -> Point".
func (f *Function) Signature() string {
	var params []string
	for _, p := range f.Params {
		params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Type))
	}
	sig := fmt.Sprintf("fn %s(%s)", f.Name, strings.Join(params, ", "))
	if f.Returns != types.Unit {
		sig += " -> " + f.Returns.String()
	}
	return sig
}

type Statement struct {
	Node    ast.Stmt
	Binding *Local
	Value   *Expr
}

// FieldValue is one initializer of a struct literal. Field is nil when the
// struct has no such field or the struct itself is unknown.
type FieldValue struct {
	Ident ast.Identifier
	Field *Field
	Value *Expr
}

// Expr is a resolved expression. Which of the binding fields is set depends
// on Node:
//
//	*ast.Var           Local, or Symbol for a function used as a value
//	*ast.Call          Symbol of the callee (and Local when called through one), Operands
//	*ast.StructLiteral Symbol, Inits
//	*ast.FieldAccess   Field, Operands[0] is the base
//	*ast.FormatCall    Operands
//	*ast.Block         Stmts, Tail
type Expr struct {
	Node ast.Expression
	Type types.Type

	Symbol   *symbols.Symbol
	Local    *Local
	Field    *Field
	Operands []*Expr
	Inits    []*FieldValue
	Stmts    []*Statement
	Tail     *Expr
}

func (e *Expr) String() string {
	return fmt.Sprintf("%s: %s", ast.String(e.Node), e.Type)
}

// Walk visits e and its sub-expressions in source order. Returning false
// from fn skips the children of that node.
func Walk(e *Expr, fn func(*Expr) bool) {
	if e == nil || !fn(e) {
		return
	}
	for _, op := range e.Operands {
		Walk(op, fn)
	}
	for _, init := range e.Inits {
		Walk(init.Value, fn)
	}
	for _, stmt := range e.Stmts {
		Walk(stmt.Value, fn)
	}
	Walk(e.Tail, fn)
}
