package resolve

import (
	"github.com/pontaoski/tawacheck/ast"
	"github.com/pontaoski/tawacheck/errors"
	"github.com/pontaoski/tawacheck/symbols"
	"github.com/pontaoski/tawacheck/types"
)

// resolveType turns an annotation into a type. A missing annotation is the
// unit type. Declared structs take precedence over primitive names.
func (r *resolver) resolveType(ref *ast.TypeRef) types.Type {
	if ref == nil {
		return types.Unit
	}

	if _, ok := r.table.Lookup(symbols.Struct, ref.Name); ok {
		return types.StructRef(ref.Name)
	}
	if t, ok := types.Primitive(ref.Name); ok {
		return t
	}

	r.rep.Report(errors.UnknownType{Name: ref.Name, Location: ref.Pos})
	return types.Invalid
}

// declareStruct builds the field layout of a struct declaration.
func (r *resolver) declareStruct(decl *ast.Struct) *Struct {
	s := &Struct{
		Decl:   decl,
		Type:   types.StructRef(decl.Name()),
		fields: map[string]*Field{},
	}

	for _, fd := range decl.Fields {
		if _, ok := s.fields[fd.Ident.Name]; ok {
			r.rep.Report(errors.DuplicateField{
				Struct:   decl.Name(),
				Name:     fd.Ident.Name,
				Location: fd.Ident.Pos,
			})
			continue
		}

		field := &Field{
			Name:  fd.Ident.Name,
			Type:  r.resolveType(fd.Kind),
			Index: len(s.Fields),
			Decl:  fd,
		}
		s.fields[field.Name] = field
		s.Fields = append(s.Fields, field)
	}

	return s
}

// declareFunction resolves a function's parameter and return annotations.
// The body is left for later.
func (r *resolver) declareFunction(decl *ast.Function) *Function {
	fn := &Function{
		Decl:    decl,
		Name:    decl.Name(),
		Returns: r.resolveType(decl.Returns),
	}

	for _, p := range decl.Params {
		fn.Params = append(fn.Params, &Local{
			Name:     p.Ident.Name,
			Type:     r.resolveType(p.Kind),
			Param:    true,
			Location: p.Ident.Pos,
		})
	}

	return fn
}

// declare registers layouts and signatures for every item in source order.
// Only the first declaration of a name becomes reachable by lookup.
func (r *resolver) declare(unit *ast.CompilationUnit) {
	for _, item := range unit.Items {
		switch it := item.(type) {
		case *ast.Struct:
			s := r.declareStruct(it)
			r.unit.Structs = append(r.unit.Structs, s)
			if _, ok := r.unit.structs[it.Name()]; !ok {
				r.unit.structs[it.Name()] = s
			}
		case *ast.Function:
			fn := r.declareFunction(it)
			r.unit.Functions = append(r.unit.Functions, fn)
			if _, ok := r.unit.functions[it.Name()]; !ok {
				r.unit.functions[it.Name()] = fn
			}
		default:
			panic("unhandled")
		}
	}
}
