// Package ast is the parsed declaration and expression tree consumed by the
// resolver. Item, Stmt and Expression are closed sums; their marker methods
// live in nodes_gen.go.
package ast

//go:generate sh -c "cd ../tool && go run . ../ast/nodes.adt ../ast/nodes_gen.go ast"

import "github.com/pontaoski/tawacheck/types"

type Identifier struct {
	Name string
	Pos  types.Span
}

// CompilationUnit is every top-level item of one module, in source order.
type CompilationUnit struct {
	Name  string
	Items []Item
}

// TypeRef is a type annotation as written. The unit type is spelled "()".
type TypeRef struct {
	Name string
	Pos  types.Span
}

type Param struct {
	Ident Identifier
	Kind  *TypeRef
}

type Function struct {
	Ident   Identifier
	Params  []*Param
	Returns *TypeRef
	Body    *Block
	Pos     types.Span
}

type FieldDecl struct {
	Ident Identifier
	Kind  *TypeRef
}

type Struct struct {
	Ident  Identifier
	Fields []*FieldDecl
	Pos    types.Span
}

type Let struct {
	To      Identifier
	Mutable bool
	Kind    *TypeRef
	Value   Expression
	Pos     types.Span
}

type ExprStmt struct {
	Expr      Expression
	Semicolon bool
}

// Block is a braced statement list. Tail, when present, is the value of
// the block.
type Block struct {
	Stmts []Stmt
	Tail  Expression
	Pos   types.Span
}

type LiteralKind int

const (
	IntLiteral LiteralKind = iota
	FloatLiteral
	StringLiteral
	BoolLiteral
)

// Literal keeps the literal's spelling; strings are stored unquoted.
type Literal struct {
	Kind  LiteralKind
	Value string
	Pos   types.Span
}

// Var is a use of a name in expression position.
type Var Identifier

type Call struct {
	Function  Identifier
	Arguments []Expression
	Pos       types.Span
}

type FieldInit struct {
	Ident Identifier
	Value Expression
}

type StructLiteral struct {
	Ident  Identifier
	Fields []*FieldInit
	Pos    types.Span
}

type FieldAccess struct {
	Of    Expression
	Ident Identifier
	Pos   types.Span
}

// FormatCall is a print-style sink. Format is the leading string literal
// of a macro form such as println!("{}", x), if there is one.
type FormatCall struct {
	Macro     Identifier
	Format    *Literal
	Arguments []Expression
	Pos       types.Span
}

func (f *Function) Name() string { return f.Ident.Name }

func (s *Struct) Name() string { return s.Ident.Name }

// NameOf returns the declared name of a top-level item.
func NameOf(item Item) string {
	switch it := item.(type) {
	case *Function:
		return it.Ident.Name
	case *Struct:
		return it.Ident.Name
	}
	panic("unhandled")
}

// SpanOf returns where an expression starts.
func SpanOf(e Expression) types.Span {
	switch expr := e.(type) {
	case *Literal:
		return expr.Pos
	case *Var:
		return expr.Pos
	case *Call:
		return expr.Pos
	case *StructLiteral:
		return expr.Pos
	case *FieldAccess:
		return expr.Pos
	case *FormatCall:
		return expr.Pos
	case *Block:
		return expr.Pos
	}
	panic("unhandled")
}

// ItemSpan returns where a top-level item is declared.
func ItemSpan(item Item) types.Span {
	switch it := item.(type) {
	case *Function:
		return it.Ident.Pos
	case *Struct:
		return it.Ident.Pos
	}
	panic("unhandled")
}
