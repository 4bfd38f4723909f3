package emit

import (
	"github.com/llir/llvm/ir/types"
	tawa "github.com/pontaoski/tawacheck/types"
	"github.com/ztrue/tracerr"
)

var (
	Byte = types.I8

	// StringImpl is the layout behind a str value: length, then data.
	StringImpl = types.NewStruct(types.I64, types.NewPointer(Byte))
	String     = types.NewPointer(StringImpl)
)

var primitives = map[tawa.Kind]types.Type{
	tawa.UnitKind: types.Void,
	tawa.Bool:     types.I1,
	tawa.I32:      types.I32,
	tawa.U32:      types.I32,
	tawa.I64:      types.I64,
	tawa.U64:      types.I64,
	tawa.Isize:    types.I64,
	tawa.Usize:    types.I64,
	tawa.F32:      types.Float,
	tawa.F64:      types.Double,
	tawa.Str:      String,
}

// typeOf maps a resolved type to its IR type. Struct types must already be
// declared.
func (l *lowering) typeOf(t tawa.Type) (types.Type, error) {
	if prim, ok := primitives[t.Kind]; ok {
		return prim, nil
	}

	switch t.Kind {
	case tawa.Struct:
		st, ok := l.structs[t.Name]
		if !ok {
			return nil, tracerr.Errorf("struct %s was not declared", t.Name)
		}
		return st, nil
	case tawa.Func:
		fn, ok := l.unit.Function(t.Name)
		if !ok {
			return nil, tracerr.Errorf("function %s was not declared", t.Name)
		}
		sig, err := l.signature(fn.Returns, fn.Params)
		if err != nil {
			return nil, err
		}
		return types.NewPointer(sig), nil
	}

	return nil, tracerr.Errorf("cannot lower unresolved type")
}
