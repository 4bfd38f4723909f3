// Package emit lowers the declarations of a resolved unit to an LLVM IR
// module: one named struct per struct, one function declaration per
// function, format sink declarations and an embedded typeinfo global.
// Function bodies are not lowered.
package emit

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/types"
	"github.com/pontaoski/tawacheck/resolve"
	tawa "github.com/pontaoski/tawacheck/types"
	"github.com/ztrue/tracerr"
)

// Sinks are declared as variadic functions returning void.
var Sinks = []string{"print", "println"}

type lowering struct {
	unit    *resolve.Unit
	module  *ir.Module
	structs map[string]*types.StructType
	funcs   map[string]*ir.Func
}

// Declarations lowers u. It fails if any declaration still carries an
// unresolved type, so only units without diagnostics should be passed in.
func Declarations(u *resolve.Unit) (*ir.Module, error) {
	l := &lowering{
		unit:    u,
		module:  ir.NewModule(),
		structs: map[string]*types.StructType{},
		funcs:   map[string]*ir.Func{},
	}
	l.module.SourceFilename = u.Name
	l.module.NewTypeDef("string_impl", StringImpl)

	// struct names first so fields can refer to structs declared later
	for _, s := range l.reachableStructs() {
		st := types.NewStruct()
		l.module.NewTypeDef(s.Decl.Name(), st)
		l.structs[s.Decl.Name()] = st
	}
	for _, s := range l.reachableStructs() {
		if err := l.fields(s); err != nil {
			return nil, err
		}
	}

	for _, name := range Sinks {
		if _, declared := u.Function(name); declared {
			continue
		}
		fn := l.module.NewFunc(name, types.Void)
		fn.Sig.Variadic = true
		l.funcs[name] = fn
	}

	for _, fn := range u.Functions {
		if first, _ := u.Function(fn.Name); first != fn {
			continue
		}
		if err := l.function(fn); err != nil {
			return nil, err
		}
	}

	if err := registerTypeInfo(TypeInfoOf(u), l.module); err != nil {
		return nil, err
	}

	plog.Debugf("lowered %d struct(s) and %d function(s) of %q", len(l.structs), len(l.funcs), u.Name)
	return l.module, nil
}

// reachableStructs skips later duplicates of a name, which lookups never
// return.
func (l *lowering) reachableStructs() []*resolve.Struct {
	var out []*resolve.Struct
	for _, s := range l.unit.Structs {
		if first, _ := l.unit.Struct(s.Decl.Name()); first == s {
			out = append(out, s)
		}
	}
	return out
}

func (l *lowering) fields(s *resolve.Struct) error {
	st := l.structs[s.Decl.Name()]
	for _, f := range s.Fields {
		t, err := l.typeOf(f.Type)
		if err != nil {
			return tracerr.Errorf("field %s of %s: %v", f.Name, s.Decl.Name(), err)
		}
		st.Fields = append(st.Fields, t)
	}
	return nil
}

func (l *lowering) signature(returns tawa.Type, params []*resolve.Local) (*types.FuncType, error) {
	ret, err := l.typeOf(returns)
	if err != nil {
		return nil, err
	}

	var args []types.Type
	for _, p := range params {
		t, err := l.typeOf(p.Type)
		if err != nil {
			return nil, tracerr.Errorf("parameter %s: %v", p.Name, err)
		}
		args = append(args, t)
	}

	return types.NewFunc(ret, args...), nil
}

func (l *lowering) function(fn *resolve.Function) error {
	ret, err := l.typeOf(fn.Returns)
	if err != nil {
		return tracerr.Errorf("return type of %s: %v", fn.Name, err)
	}

	var params []*ir.Param
	for _, p := range fn.Params {
		t, err := l.typeOf(p.Type)
		if err != nil {
			return tracerr.Errorf("parameter %s of %s: %v", p.Name, fn.Name, err)
		}
		params = append(params, ir.NewParam(p.Name, t))
	}

	l.funcs[fn.Name] = l.module.NewFunc(fn.Name, ret, params...)
	return nil
}
