package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func typeToString(t *TypeRef) string {
	if t == nil {
		return "()"
	}
	return t.Name
}

func (t *TypeRef) String() string {
	return typeToString(t)
}

func (f *Function) String() string {
	var args []string
	for _, arg := range f.Params {
		args = append(args, fmt.Sprintf("%s: %s", arg.Ident.Name, typeToString(arg.Kind)))
	}
	if f.Returns == nil {
		return fmt.Sprintf("fn %s(%s)", f.Ident.Name, strings.Join(args, ", "))
	}
	return fmt.Sprintf("fn %s(%s) -> %s", f.Ident.Name, strings.Join(args, ", "), typeToString(f.Returns))
}

func (s *Struct) String() string {
	var fields []string
	for _, field := range s.Fields {
		fields = append(fields, fmt.Sprintf("%s: %s", field.Ident.Name, typeToString(field.Kind)))
	}
	return fmt.Sprintf("struct %s { %s }", s.Ident.Name, strings.Join(fields, ", "))
}

func joinExpressions(es []Expression) string {
	var out []string
	for _, e := range es {
		out = append(out, String(e))
	}
	return strings.Join(out, ", ")
}

// String renders an expression back in source form on a single line.
func String(e Expression) string {
	switch expr := e.(type) {
	case *Literal:
		if expr.Kind == StringLiteral {
			return strconv.Quote(expr.Value)
		}
		return expr.Value
	case *Var:
		return expr.Name
	case *Call:
		return fmt.Sprintf("%s(%s)", expr.Function.Name, joinExpressions(expr.Arguments))
	case *StructLiteral:
		var fields []string
		for _, field := range expr.Fields {
			fields = append(fields, fmt.Sprintf("%s: %s", field.Ident.Name, String(field.Value)))
		}
		return fmt.Sprintf("%s { %s }", expr.Ident.Name, strings.Join(fields, ", "))
	case *FieldAccess:
		return fmt.Sprintf("%s.%s", String(expr.Of), expr.Ident.Name)
	case *FormatCall:
		args := expr.Arguments
		if expr.Format != nil {
			args = append([]Expression{expr.Format}, args...)
		}
		return fmt.Sprintf("%s!(%s)", expr.Macro.Name, joinExpressions(args))
	case *Block:
		var parts []string
		for _, stmt := range expr.Stmts {
			parts = append(parts, stmtString(stmt))
		}
		if expr.Tail != nil {
			parts = append(parts, String(expr.Tail))
		}
		if len(parts) == 0 {
			return "{}"
		}
		return "{ " + strings.Join(parts, " ") + " }"
	}
	panic("unhandled")
}

func stmtString(s Stmt) string {
	switch stmt := s.(type) {
	case *Let:
		var b strings.Builder
		b.WriteString("let ")
		if stmt.Mutable {
			b.WriteString("mut ")
		}
		b.WriteString(stmt.To.Name)
		if stmt.Kind != nil {
			b.WriteString(": " + stmt.Kind.Name)
		}
		b.WriteString(" = " + String(stmt.Value) + ";")
		return b.String()
	case *ExprStmt:
		if stmt.Semicolon {
			return String(stmt.Expr) + ";"
		}
		return String(stmt.Expr)
	}
	panic("unhandled")
}
