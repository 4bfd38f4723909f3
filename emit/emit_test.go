package emit

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/pontaoski/tawacheck/resolve"
	"github.com/pontaoski/tawacheck/syntax"
)

func resolved(t *testing.T, src string) *resolve.Unit {
	t.Helper()
	unit, err := syntax.ParseString("test.rs", src)
	be.Err(t, err, nil)
	u, _ := resolve.Resolve(unit)
	return u
}

const fixture = `
fn make_origin() -> Point { Point { x: 0.0, y: 0.0 } }
struct Point { x: f64, y: f64 }
fn main() { let origin = make_origin(); println!("Origin: ({}, {})", origin.x, origin.y); }
`

func TestDeclarations(t *testing.T) {
	m, err := Declarations(resolved(t, fixture))
	be.Err(t, err, nil)

	ll := m.String()
	for _, want := range []string{
		`source_filename = "test"`,
		"%string_impl = type { i64, i8* }",
		"%Point = type { double, double }",
		"declare %Point @make_origin()",
		"declare void @main()",
		"declare void @print(...)",
		"declare void @println(...)",
		"@__tawa_types = constant",
	} {
		be.True(t, strings.Contains(ll, want))
	}
}

func TestDeclarationsParamsAndLaterStructs(t *testing.T) {
	m, err := Declarations(resolved(t, `
struct Line { from: Point, to: Point, label: str }
fn scale(l: Line, k: f32, n: u64, ok: bool) -> Line { l }
struct Point { x: i32, y: i64 }
`))
	be.Err(t, err, nil)

	ll := m.String()
	be.True(t, strings.Contains(ll, "%Line = type { %Point, %Point, %string_impl* }"))
	be.True(t, strings.Contains(ll, "%Point = type { i32, i64 }"))
	be.True(t, strings.Contains(ll, "declare %Line @scale(%Line %l, float %k, i64 %n, i1 %ok)"))
}

func TestDeclarationsSkipsDuplicatesAndUserSinks(t *testing.T) {
	m, err := Declarations(resolved(t, `
fn print(s: str) {}
fn f() -> i32 { 1 }
fn f() -> f64 { 1.0 }
`))
	be.Err(t, err, nil)

	ll := m.String()
	be.True(t, strings.Contains(ll, "declare void @print(%string_impl* %s)"))
	be.True(t, !strings.Contains(ll, "declare void @print(...)"))
	be.Equal(t, strings.Count(ll, "@f("), 1)
	be.True(t, strings.Contains(ll, "declare i32 @f()"))
}

func TestDeclarationsRejectsUnresolvedTypes(t *testing.T) {
	_, err := Declarations(resolved(t, `fn f(p: Nope) {}`))
	be.Err(t, err, "parameter p of f")
}

func TestTypeInfoOf(t *testing.T) {
	info := TypeInfoOf(resolved(t, fixture))
	be.Equal(t, info.Package, "test")
	be.Equal(t, info.Functions, map[string]string{
		"make_origin": "fn make_origin() -> Point",
		"main":        "fn main()",
	})
	be.Equal(t, info.Structs, map[string][]string{
		"Point": {"x: f64", "y: f64"},
	})

	data, err := info.JSON()
	be.Err(t, err, nil)

	var back TypeInfo
	be.Err(t, json.Unmarshal(data, &back), nil)
	be.Equal(t, back, info)
}
