package types

import (
	"fmt"
)

type Position struct {
	Line     int
	Column   int
	Filename string
	// File is the index of Filename among the files of its unit.
	File int
}

type Span struct {
	From Position
	To   Position
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// Before orders positions by the order files were given, then line, then
// column.
func (p Position) Before(o Position) bool {
	if p.File != o.File {
		return p.File < o.File
	}
	if p.Filename != o.Filename {
		return p.Filename < o.Filename
	}
	if p.Line != o.Line {
		return p.Line < o.Line
	}
	return p.Column < o.Column
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type Kind int

const (
	// Unresolved marks a node whose type could not be determined. Checks
	// that see it stay silent so one failure is reported once.
	Unresolved Kind = iota
	UnitKind
	Bool
	I32
	I64
	U32
	U64
	Isize
	Usize
	F32
	F64
	Str
	Struct
	Func
)

func (k Kind) String() string {
	data := map[Kind]string{
		Unresolved: "<unresolved>",
		UnitKind:   "()",
		Bool:       "bool",
		I32:        "i32",
		I64:        "i64",
		U32:        "u32",
		U64:        "u64",
		Isize:      "isize",
		Usize:      "usize",
		F32:        "f32",
		F64:        "f64",
		Str:        "str",
		Struct:     "struct",
		Func:       "fn",
	}
	return data[k]
}

// Type is the semantic type of a declaration or expression. Name is only
// set for Struct and Func kinds.
type Type struct {
	Kind Kind
	Name string
}

var (
	Invalid = Type{Kind: Unresolved}
	Unit    = Type{Kind: UnitKind}

	Boolean = Type{Kind: Bool}
	Int32   = Type{Kind: I32}
	Int64   = Type{Kind: I64}
	Uint32  = Type{Kind: U32}
	Uint64  = Type{Kind: U64}
	Int     = Type{Kind: Isize}
	Uint    = Type{Kind: Usize}
	Float32 = Type{Kind: F32}
	Float64 = Type{Kind: F64}
	String  = Type{Kind: Str}
)

var primitives = map[string]Type{
	"()":    Unit,
	"bool":  Boolean,
	"i32":   Int32,
	"i64":   Int64,
	"u32":   Uint32,
	"u64":   Uint64,
	"isize": Int,
	"usize": Uint,
	"f32":   Float32,
	"f64":   Float64,
	"str":   String,
}

// Primitive looks up a builtin type by its source spelling.
func Primitive(name string) (Type, bool) {
	t, ok := primitives[name]
	return t, ok
}

func StructRef(name string) Type {
	return Type{Kind: Struct, Name: name}
}

func FuncRef(name string) Type {
	return Type{Kind: Func, Name: name}
}

func (t Type) IsUnresolved() bool {
	return t.Kind == Unresolved
}

func (t Type) IsStruct() bool {
	return t.Kind == Struct
}

func (t Type) IsInteger() bool {
	switch t.Kind {
	case I32, I64, U32, U64, Isize, Usize:
		return true
	}
	return false
}

func (t Type) IsFloat() bool {
	return t.Kind == F32 || t.Kind == F64
}

func (t Type) String() string {
	switch t.Kind {
	case Struct:
		return t.Name
	case Func:
		return "fn " + t.Name
	}
	return t.Kind.String()
}
