// Package syntax parses source text into ast values. It sits outside the
// resolver: nothing it produces has been checked.
package syntax

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alecthomas/participle"
	"github.com/alecthomas/participle/lexer"
	"github.com/pontaoski/tawacheck/ast"
	"github.com/pontaoski/tawacheck/types"
	"github.com/ztrue/tracerr"
)

var parser = participle.MustBuild(&file{})

// ParseString parses src as a single file called name.
func ParseString(name, src string) (*ast.CompilationUnit, error) {
	items, err := parseItems(name, 0, []byte(src))
	if err != nil {
		return nil, err
	}
	return &ast.CompilationUnit{Name: unitName(name), Items: items}, nil
}

func ParseFile(path string) (*ast.CompilationUnit, error) {
	return ParseFiles(unitName(path), []string{path})
}

// ParseFiles parses every path into one compilation unit. Items keep file
// order, then source order within a file.
func ParseFiles(name string, paths []string) (*ast.CompilationUnit, error) {
	unit := &ast.CompilationUnit{Name: name}

	for i, path := range paths {
		data, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, tracerr.Wrap(err)
		}

		items, err := parseItems(path, i, data)
		if err != nil {
			return nil, err
		}
		unit.Items = append(unit.Items, items...)
	}

	return unit, nil
}

func unitName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func parseItems(filename string, index int, data []byte) ([]ast.Item, error) {
	var f file
	if err := parser.ParseBytes(data, &f); err != nil {
		return nil, tracerr.Wrap(fmt.Errorf("%s: %w", filename, err))
	}

	c := converter{filename: filename, index: index}
	items, err := c.items(f.Items)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return items, nil
}

type converter struct {
	filename string
	index    int
}

func (c converter) span(p lexer.Position) types.Span {
	return types.SingleCharSpan(types.Position{
		Line:     p.Line,
		Column:   p.Column,
		Filename: c.filename,
		File:     c.index,
	})
}

func (c converter) ident(name string, p lexer.Position) ast.Identifier {
	return ast.Identifier{Name: name, Pos: c.span(p)}
}

func (c converter) name(id *ident) ast.Identifier {
	return c.ident(id.Value, id.Pos)
}

func (c converter) items(in []*item) ([]ast.Item, error) {
	var out []ast.Item

	for _, it := range in {
		switch {
		case it.Func != nil:
			fn, err := c.function(it.Func)
			if err != nil {
				return nil, err
			}
			out = append(out, fn)
		case it.Struct != nil:
			out = append(out, c.structDecl(it.Struct))
		}
	}

	return out, nil
}

func (c converter) typeRef(t *typeRef) *ast.TypeRef {
	if t == nil {
		return nil
	}
	if t.Unit {
		return &ast.TypeRef{Name: "()", Pos: c.span(t.Pos)}
	}
	return &ast.TypeRef{Name: t.Name, Pos: c.span(t.Pos)}
}

func (c converter) function(f *funcDecl) (*ast.Function, error) {
	fn := &ast.Function{
		Ident:   c.name(f.Name),
		Returns: c.typeRef(f.Returns),
		Pos:     c.span(f.Pos),
	}

	for _, p := range f.Params {
		fn.Params = append(fn.Params, &ast.Param{
			Ident: c.ident(p.Name, p.Pos),
			Kind:  c.typeRef(p.Type),
		})
	}

	body, err := c.block(f.Body)
	if err != nil {
		return nil, err
	}
	fn.Body = body

	return fn, nil
}

func (c converter) structDecl(s *structDecl) *ast.Struct {
	st := &ast.Struct{
		Ident: c.name(s.Name),
		Pos:   c.span(s.Pos),
	}

	for _, f := range s.Fields {
		st.Fields = append(st.Fields, &ast.FieldDecl{
			Ident: c.ident(f.Name, f.Pos),
			Kind:  c.typeRef(f.Type),
		})
	}

	return st
}

func (c converter) block(b *block) (*ast.Block, error) {
	out := &ast.Block{Pos: c.span(b.Pos)}

	for i, s := range b.Stmts {
		switch {
		case s.Let != nil:
			value, err := c.expr(s.Let.Value)
			if err != nil {
				return nil, err
			}
			let := &ast.Let{
				To:      c.name(s.Let.Name),
				Mutable: s.Let.Mutable,
				Kind:    c.typeRef(s.Let.Type),
				Value:   value,
				Pos:     c.span(s.Let.Pos),
			}
			out.Stmts = append(out.Stmts, let)
		case s.Expr != nil:
			e, err := c.expr(s.Expr.Expr)
			if err != nil {
				return nil, err
			}
			if i == len(b.Stmts)-1 && !s.Expr.Semicolon {
				out.Tail = e
				continue
			}
			out.Stmts = append(out.Stmts, &ast.ExprStmt{Expr: e, Semicolon: s.Expr.Semicolon})
		}
	}

	return out, nil
}

func (c converter) expr(e *expr) (ast.Expression, error) {
	out, err := c.primary(e.Primary)
	if err != nil {
		return nil, err
	}

	for _, sel := range e.Selectors {
		out = &ast.FieldAccess{
			Of:    out,
			Ident: c.ident(sel.Name, sel.Pos),
			Pos:   c.span(e.Pos),
		}
	}

	return out, nil
}

func unquote(s string) string {
	if v, err := strconv.Unquote(s); err == nil {
		return v
	}
	return s
}

func (c converter) primary(p *primary) (ast.Expression, error) {
	pos := c.span(p.Pos)

	switch {
	case p.Float != nil:
		return &ast.Literal{Kind: ast.FloatLiteral, Value: *p.Float, Pos: pos}, nil
	case p.Int != nil:
		return &ast.Literal{Kind: ast.IntLiteral, Value: *p.Int, Pos: pos}, nil
	case p.String != nil:
		return &ast.Literal{Kind: ast.StringLiteral, Value: unquote(*p.String), Pos: pos}, nil
	case p.Bool != nil:
		return &ast.Literal{Kind: ast.BoolLiteral, Value: *p.Bool, Pos: pos}, nil
	case p.Block != nil:
		return c.block(p.Block)
	case p.Named != nil:
		return c.named(p.Named)
	}

	return nil, fmt.Errorf("%s: empty expression", pos.From)
}

func (c converter) arguments(args *arguments) ([]ast.Expression, error) {
	var out []ast.Expression
	for _, arg := range args.Values {
		e, err := c.expr(arg.Value)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (c converter) named(n *named) (ast.Expression, error) {
	id := c.ident(n.Name, n.Pos)

	switch {
	case n.Macro:
		if n.Args == nil {
			return nil, fmt.Errorf("%s: macro %s! must be called with arguments", id.Pos.From, n.Name)
		}
		args, err := c.arguments(n.Args)
		if err != nil {
			return nil, err
		}
		fc := &ast.FormatCall{Macro: id, Pos: id.Pos}
		if len(args) > 0 {
			if lit, ok := args[0].(*ast.Literal); ok && lit.Kind == ast.StringLiteral {
				fc.Format = lit
				args = args[1:]
			}
		}
		fc.Arguments = args
		return fc, nil
	case n.Args != nil:
		args, err := c.arguments(n.Args)
		if err != nil {
			return nil, err
		}
		return &ast.Call{Function: id, Arguments: args, Pos: id.Pos}, nil
	case n.Literal != nil:
		lit := &ast.StructLiteral{Ident: id, Pos: id.Pos}
		for _, f := range n.Literal.Fields {
			value, err := c.expr(f.Value)
			if err != nil {
				return nil, err
			}
			lit.Fields = append(lit.Fields, &ast.FieldInit{Ident: c.ident(f.Name, f.Pos), Value: value})
		}
		return lit, nil
	}

	return &ast.Var{Name: n.Name, Pos: id.Pos}, nil
}
