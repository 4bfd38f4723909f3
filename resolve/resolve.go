// Package resolve binds every name in a compilation unit to its declaration
// and types every expression.
//
// Resolution runs in two stages. Collect registers all top-level items in a
// symbol table, then declarations and function bodies are resolved against
// the finished table, so a function may construct a struct declared after
// it. Binding a name and typing the expression that uses it happen in the
// same step.
package resolve

import (
	"fmt"

	"github.com/pontaoski/tawacheck/ast"
	"github.com/pontaoski/tawacheck/diag"
	"github.com/pontaoski/tawacheck/errors"
	"github.com/pontaoski/tawacheck/symbols"
	"github.com/pontaoski/tawacheck/types"
)

type resolver struct {
	table *symbols.Table
	rep   *diag.Reporter
	unit  *Unit
	names []map[string]*Local
}

// Resolve resolves unit. The annotated unit is always returned; it is only
// fit for code generation when the diagnostics are empty.
func Resolve(unit *ast.CompilationUnit) (*Unit, diag.Diagnostics) {
	rep := diag.NewReporter()

	r := &resolver{
		table: Collect(unit, rep),
		rep:   rep,
		unit:  newUnit(unit.Name),
	}

	r.declare(unit)
	for _, fn := range r.unit.Functions {
		r.function(fn)
	}

	diags := rep.Diagnostics()
	plog.Debugf("resolved %q with %d diagnostic(s)", unit.Name, len(diags))

	return r.unit, diags
}

func (r *resolver) function(fn *Function) {
	r.pushScope()
	defer r.popScope()

	for _, p := range fn.Params {
		if prev, ok := r.top()[p.Name]; ok {
			r.rep.Report(errors.DuplicateDeclaration{
				Name:     p.Name,
				Location: p.Location,
				Previous: prev.Location,
			})
			continue
		}
		r.top()[p.Name] = p
	}

	body := fn.Decl.Body
	if body == nil {
		body = &ast.Block{Pos: fn.Decl.Pos}
	}
	fn.Body = r.block(body)

	if fn.Returns.IsUnresolved() {
		return
	}
	if fn.Body.Tail == nil {
		if fn.Returns != types.Unit {
			r.rep.Report(errors.TypeMismatch{
				Expected: fn.Returns,
				Got:      types.Unit,
				Context:  "body of " + fn.Name,
				Location: body.Pos,
			})
		}
		return
	}
	r.expect(fn.Returns, fn.Body, "body of "+fn.Name)
}

// fits reports whether e can be used where expected is required. Untyped
// numeric literals take on the expected type of their family.
func fits(expected types.Type, e *Expr) bool {
	if e.Type == expected {
		return true
	}

	switch node := e.Node.(type) {
	case *ast.Literal:
		if (node.Kind == ast.IntLiteral && expected.IsInteger()) ||
			(node.Kind == ast.FloatLiteral && expected.IsFloat()) {
			e.Type = expected
			return true
		}
	case *ast.Block:
		if e.Tail != nil && fits(expected, e.Tail) {
			e.Type = e.Tail.Type
			return true
		}
	}

	return false
}

// expect reports a TypeMismatch unless e fits expected. Nothing is reported
// when either side already failed to resolve.
func (r *resolver) expect(expected types.Type, e *Expr, context string) {
	if expected.IsUnresolved() || e.Type.IsUnresolved() {
		return
	}
	if fits(expected, e) {
		return
	}

	r.rep.Report(errors.TypeMismatch{
		Expected: expected,
		Got:      e.Type,
		Context:  context,
		Location: ast.SpanOf(e.Node),
	})
}

func (r *resolver) expr(e ast.Expression) *Expr {
	switch expr := e.(type) {
	case *ast.Literal:
		return r.literal(expr)
	case *ast.Var:
		return r.variable(expr)
	case *ast.Call:
		return r.call(expr)
	case *ast.StructLiteral:
		return r.structLiteral(expr)
	case *ast.FieldAccess:
		return r.fieldAccess(expr)
	case *ast.FormatCall:
		return r.formatCall(expr)
	case *ast.Block:
		return r.block(expr)
	}

	panic("unhandled")
}

func (r *resolver) literal(lit *ast.Literal) *Expr {
	out := &Expr{Node: lit}

	switch lit.Kind {
	case ast.IntLiteral:
		out.Type = types.Int32
	case ast.FloatLiteral:
		out.Type = types.Float64
	case ast.StringLiteral:
		out.Type = types.String
	case ast.BoolLiteral:
		out.Type = types.Boolean
	default:
		panic("unhandled")
	}

	return out
}

// variable binds a name to a local, or failing that a top-level function.
func (r *resolver) variable(v *ast.Var) *Expr {
	out := &Expr{Node: v, Type: types.Invalid}

	if local, ok := r.lookup(v.Name); ok {
		out.Local = local
		out.Type = local.Type
		return out
	}

	if sym, ok := r.table.Lookup(symbols.Function, v.Name); ok {
		out.Symbol = sym
		out.Type = types.FuncRef(v.Name)
		return out
	}

	r.rep.Report(errors.UnresolvedName{Name: v.Name, Location: v.Pos})
	return out
}

func (r *resolver) call(c *ast.Call) *Expr {
	out := &Expr{Node: c, Type: types.Invalid}
	for _, arg := range c.Arguments {
		out.Operands = append(out.Operands, r.expr(arg))
	}

	name := c.Function.Name

	if local, ok := r.lookup(name); ok {
		out.Local = local
		switch {
		case local.Type.IsUnresolved():
			return out
		case local.Type.Kind != types.Func:
			r.rep.Report(errors.NotCallable{Name: name, Type: local.Type, Location: c.Function.Pos})
			return out
		}
		name = local.Type.Name
	} else if isFormatSink(name) {
		if _, declared := r.table.Lookup(symbols.Function, name); !declared {
			out.Type = types.Unit
			return out
		}
	}

	sym, ok := r.table.Lookup(symbols.Function, name)
	if !ok {
		r.rep.Report(errors.UnknownFunction{Name: name, Location: c.Function.Pos})
		return out
	}
	out.Symbol = sym
	target := r.unit.functions[name]

	if len(out.Operands) != len(target.Params) {
		r.rep.Report(errors.ArityMismatch{
			Function: name,
			Expected: len(target.Params),
			Got:      len(out.Operands),
			Location: c.Pos,
		})
	}
	for i, arg := range out.Operands {
		if i >= len(target.Params) {
			break
		}
		r.expect(target.Params[i].Type, arg, fmt.Sprintf("argument %d of %s", i+1, name))
	}

	out.Type = target.Returns
	return out
}

func (r *resolver) structLiteral(lit *ast.StructLiteral) *Expr {
	out := &Expr{Node: lit, Type: types.Invalid}
	name := lit.Ident.Name

	sym, ok := r.table.Lookup(symbols.Struct, name)
	if !ok {
		r.rep.Report(errors.UnresolvedName{Name: name, Location: lit.Ident.Pos})
		for _, init := range lit.Fields {
			out.Inits = append(out.Inits, &FieldValue{Ident: init.Ident, Value: r.expr(init.Value)})
		}
		return out
	}
	out.Symbol = sym
	st := r.unit.structs[name]

	seen := map[string]bool{}
	for _, init := range lit.Fields {
		fv := &FieldValue{Ident: init.Ident, Value: r.expr(init.Value)}
		out.Inits = append(out.Inits, fv)

		if seen[init.Ident.Name] {
			r.rep.Report(errors.DuplicateField{Struct: name, Name: init.Ident.Name, Location: init.Ident.Pos})
			continue
		}
		seen[init.Ident.Name] = true

		field, ok := st.Field(init.Ident.Name)
		if !ok {
			r.rep.Report(errors.UnknownField{Struct: name, Field: init.Ident.Name, Location: init.Ident.Pos})
			continue
		}
		fv.Field = field
		r.expect(field.Type, fv.Value, fmt.Sprintf("field %s of %s", field.Name, name))
	}

	for _, field := range st.Fields {
		if !seen[field.Name] {
			r.rep.Report(errors.MissingField{Struct: name, Field: field.Name, Location: lit.Pos})
		}
	}

	out.Type = st.Type
	return out
}

func (r *resolver) fieldAccess(fa *ast.FieldAccess) *Expr {
	base := r.expr(fa.Of)
	out := &Expr{Node: fa, Type: types.Invalid, Operands: []*Expr{base}}

	if base.Type.IsUnresolved() {
		return out
	}
	if !base.Type.IsStruct() {
		r.rep.Report(errors.NotAStruct{Type: base.Type, Field: fa.Ident.Name, Location: fa.Ident.Pos})
		return out
	}

	st := r.unit.structs[base.Type.Name]
	field, ok := st.Field(fa.Ident.Name)
	if !ok {
		r.rep.Report(errors.NoSuchField{Type: base.Type, Field: fa.Ident.Name, Location: fa.Ident.Pos})
		return out
	}

	out.Field = field
	out.Type = field.Type
	return out
}

func (r *resolver) formatCall(fc *ast.FormatCall) *Expr {
	out := &Expr{Node: fc, Type: types.Unit}
	for _, arg := range fc.Arguments {
		out.Operands = append(out.Operands, r.expr(arg))
	}
	return out
}

func (r *resolver) block(b *ast.Block) *Expr {
	out := &Expr{Node: b, Type: types.Unit}

	r.pushScope()
	defer r.popScope()

	for _, stmt := range b.Stmts {
		out.Stmts = append(out.Stmts, r.statement(stmt))
	}
	if b.Tail != nil {
		out.Tail = r.expr(b.Tail)
		out.Type = out.Tail.Type
	}

	return out
}

func (r *resolver) statement(s ast.Stmt) *Statement {
	switch stmt := s.(type) {
	case *ast.Let:
		// the initializer is resolved before the new name is visible
		value := r.expr(stmt.Value)
		local := &Local{
			Name:     stmt.To.Name,
			Type:     value.Type,
			Mutable:  stmt.Mutable,
			Location: stmt.To.Pos,
		}
		if stmt.Kind != nil {
			local.Type = r.resolveType(stmt.Kind)
			r.expect(local.Type, value, "initializer of "+stmt.To.Name)
		}
		r.top()[local.Name] = local

		return &Statement{Node: stmt, Binding: local, Value: value}
	case *ast.ExprStmt:
		return &Statement{Node: stmt, Value: r.expr(stmt.Expr)}
	}

	panic("unhandled")
}
