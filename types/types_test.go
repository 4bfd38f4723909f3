package types

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestPrimitive(t *testing.T) {
	for name, want := range map[string]Type{
		"f64":   Float64,
		"i32":   Int32,
		"usize": Uint,
		"()":    Unit,
		"str":   String,
	} {
		got, ok := Primitive(name)
		be.True(t, ok)
		be.Equal(t, got, want)
		be.Equal(t, got.String(), name)
	}

	_, ok := Primitive("Point")
	be.True(t, !ok)
}

func TestTypePredicates(t *testing.T) {
	be.True(t, Invalid.IsUnresolved())
	be.True(t, StructRef("Point").IsStruct())
	be.True(t, Uint64.IsInteger())
	be.True(t, !Float32.IsInteger())
	be.True(t, Float32.IsFloat())
	be.True(t, !StructRef("f64").IsFloat())
	be.Equal(t, StructRef("Point"), StructRef("Point"))
	be.True(t, StructRef("Point") != FuncRef("Point"))
}

func TestTypeString(t *testing.T) {
	be.Equal(t, StructRef("Point").String(), "Point")
	be.Equal(t, FuncRef("make_origin").String(), "fn make_origin")
	be.Equal(t, Invalid.String(), "<unresolved>")
}

func TestPositionOrder(t *testing.T) {
	a := Position{Filename: "a.rs", Line: 3, Column: 9}
	b := Position{Filename: "a.rs", Line: 4, Column: 1}
	c := Position{Filename: "b.rs", Line: 1, Column: 1}

	be.True(t, a.Before(b))
	be.True(t, b.Before(c))
	be.True(t, !b.Before(a))
	be.True(t, !a.Before(a))
	be.Equal(t, a.String(), "a.rs:3:9")
	be.Equal(t, SingleCharSpan(a).String(), "a.rs:3:9-3:9")
	be.Equal(t, Position{Line: 1, Column: 2}.String(), "<unknown>:1:2")
}

func TestPositionOrderFollowsFileIndex(t *testing.T) {
	tail := Position{Filename: "z_tail.rs", File: 0, Line: 9, Column: 1}
	main := Position{Filename: "b_main.rs", File: 1, Line: 1, Column: 1}

	be.True(t, tail.Before(main))
	be.True(t, !main.Before(tail))
}
