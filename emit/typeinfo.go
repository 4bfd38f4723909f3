package emit

import (
	"encoding/json"

	"github.com/coreos/pkg/capnslog"
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/pontaoski/tawacheck/resolve"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawacheck", "emit")

// TypeInfoGlobal names the global holding the JSON typeinfo of a module.
const TypeInfoGlobal = "__tawa_types"

type TypeInfo struct {
	Package   string              `json:"package"`
	Functions map[string]string   `json:"functions"`
	Structs   map[string][]string `json:"structs"`
}

// TypeInfoOf describes the reachable declarations of u: each function by
// its signature and each struct by its fields in declaration order.
func TypeInfoOf(u *resolve.Unit) TypeInfo {
	t := TypeInfo{
		Package:   u.Name,
		Functions: map[string]string{},
		Structs:   map[string][]string{},
	}

	for _, fn := range u.Functions {
		if _, ok := t.Functions[fn.Name]; !ok {
			t.Functions[fn.Name] = fn.Signature()
		}
	}
	for _, s := range u.Structs {
		name := s.Decl.Name()
		if _, ok := t.Structs[name]; ok {
			continue
		}
		fields := []string{}
		for _, f := range s.Fields {
			fields = append(fields, f.Name+": "+f.Type.String())
		}
		t.Structs[name] = fields
	}

	return t
}

func (t TypeInfo) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(t, "", "  ")
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return data, nil
}

func registerTypeInfo(t TypeInfo, m *ir.Module) error {
	data, err := json.Marshal(t)
	if err != nil {
		return tracerr.Wrap(err)
	}

	g := m.NewGlobalDef(TypeInfoGlobal, constant.NewCharArray(append(data, 0)))
	g.Immutable = true
	return nil
}
