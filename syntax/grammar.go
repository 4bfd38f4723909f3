package syntax

import "github.com/alecthomas/participle/lexer"

// The grammar below accepts the declaration subset of the language:
//
//	fn make_origin() -> Point { Point { x: 0.0, y: 0.0 } }
//	struct Point { x: f64, y: f64 }
//	fn main() { let origin = make_origin(); println!("({}, {})", origin.x, origin.y); }
//
// List separators are optional so that no rule needs more than one token of
// lookahead.

type file struct {
	Items []*item `@@*`
}

type item struct {
	Func   *funcDecl   `  @@`
	Struct *structDecl `| @@`
}

type ident struct {
	Pos   lexer.Position
	Value string `@Ident`
}

type funcDecl struct {
	Pos     lexer.Position
	Name    *ident   `"fn" @@`
	Params  []*param `"(" @@* ")"`
	Returns *typeRef `( "-" ">" @@ )?`
	Body    *block   `@@`
}

type param struct {
	Pos  lexer.Position
	Name string   `@Ident ":"`
	Type *typeRef `@@ ","?`
}

type typeRef struct {
	Pos  lexer.Position
	Unit bool   `(  @"(" ")"`
	Name string ` | @Ident )`
}

type structDecl struct {
	Pos    lexer.Position
	Name   *ident       `"struct" @@ "{"`
	Fields []*fieldDecl `@@* "}"`
}

type fieldDecl struct {
	Pos  lexer.Position
	Name string   `@Ident ":"`
	Type *typeRef `@@ ","?`
}

type block struct {
	Pos   lexer.Position
	Stmts []*stmt `"{" @@* "}"`
}

type stmt struct {
	Let  *letStmt  `  @@`
	Expr *exprStmt `| @@`
}

type letStmt struct {
	Pos     lexer.Position
	Mutable bool     `"let" @"mut"?`
	Name    *ident   `@@`
	Type    *typeRef `( ":" @@ )?`
	Value   *expr    `"=" @@ ";"`
}

type exprStmt struct {
	Expr      *expr `@@`
	Semicolon bool  `@";"?`
}

type expr struct {
	Pos       lexer.Position
	Primary   *primary    `@@`
	Selectors []*selector `@@*`
}

type selector struct {
	Pos  lexer.Position
	Name string `"." @Ident`
}

type primary struct {
	Pos    lexer.Position
	Float  *string `  @Float`
	Int    *string `| @Int`
	String *string `| @String`
	Bool   *string `| @( "true" | "false" )`
	Block  *block  `| @@`
	Named  *named  `| @@`
}

// named is anything that starts with an identifier: a variable, a call, a
// macro call or a struct literal.
type named struct {
	Pos     lexer.Position
	Name    string       `@Ident`
	Macro   bool         `@"!"?`
	Args    *arguments   `( @@`
	Literal *structInits ` | @@ )?`
}

type arguments struct {
	Values []*argument `"(" @@* ")"`
}

type argument struct {
	Value *expr `@@ ","?`
}

type structInits struct {
	Fields []*fieldInit `"{" @@* "}"`
}

type fieldInit struct {
	Pos   lexer.Position
	Name  string `@Ident ":"`
	Value *expr  `@@ ","?`
}
