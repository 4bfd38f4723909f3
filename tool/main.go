// adtGen turns sum type declarations into Go interfaces with marker
// methods.
//
//	type Item = | Function | Struct;
//	type Name = string;
//	type Lit = | Number of int | Text of string;
//
// A bare case names a struct declared elsewhere in the package; its pointer
// gets the marker method. A case with "of" declares a new type.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/alecthomas/participle"

	. "github.com/dave/jennifer/jen"
)

type TypeDecls struct {
	Declarations []*Declaration `@@*`
}

type TCase struct {
	Name string  `@Ident`
	Kind *string `( "of" (@Ident | @String | @RawString) )?`
}

type Declaration struct {
	Name  string   `"type" @Ident "="`
	Plain *string  `(  (@Ident | @String | @RawString)`
	Many  *[]TCase ` | ("|" (@@))*)`
	I     struct{} `";"`
}

func (t *TypeDecls) IsSumType(name string) bool {
	for _, decls := range t.Declarations {
		if decls.Name == name && decls.Many != nil {
			return true
		}
	}
	return false
}

func GenerateDecls(pkgname string, t *TypeDecls) string {
	f := NewFile(pkgname)
	f.HeaderComment("Code generated by adtGen. DO NOT EDIT.")

	for _, decl := range t.Declarations {
		if decl.Plain != nil {
			f.Type().Id(decl.Name).Id(*decl.Plain)
			continue
		}
		if decl.Many == nil {
			continue
		}

		f.Type().Id(decl.Name).Interface(
			Id("is_" + decl.Name).Params(),
		)

		for _, it := range *decl.Many {
			switch {
			case it.Kind == nil:
				f.Func().Params(Id("v").Op("*").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			case t.IsSumType(*it.Kind):
				f.Type().Id(it.Name).Struct(Id(*it.Kind))
				f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			default:
				f.Type().Id(it.Name).Id(*it.Kind)
				f.Func().Params(Id("v").Id(it.Name)).Id("is_" + decl.Name).Params().Block()
			}
		}
	}

	return fmt.Sprintf("%#v", f)
}

func main() {
	if len(os.Args) != 4 {
		fmt.Fprintln(os.Stderr, "usage: adtGen <input.adt> <output.go> <package>")
		os.Exit(2)
	}

	parser := participle.MustBuild(&TypeDecls{})

	in := os.Args[1]
	out := os.Args[2]
	pkgname := os.Args[3]

	inData, err := ioutil.ReadFile(in)
	if err != nil {
		panic(err)
	}

	ast := TypeDecls{}
	err = parser.ParseBytes(inData, &ast)
	if err != nil {
		panic(err)
	}

	err = ioutil.WriteFile(out, []byte(GenerateDecls(pkgname, &ast)), 0644)
	if err != nil {
		panic(err)
	}
}
