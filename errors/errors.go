// Package errors defines one type per resolution or type-checking problem.
// None of them are fatal; they are collected by diag.Reporter.
package errors

import (
	"fmt"

	"github.com/pontaoski/tawacheck/types"
)

type Kind string

const (
	KindDuplicateDeclaration Kind = "DuplicateDeclaration"
	KindUnresolvedName       Kind = "UnresolvedName"
	KindUnknownFunction      Kind = "UnknownFunction"
	KindArityMismatch        Kind = "ArityMismatch"
	KindMissingField         Kind = "MissingField"
	KindUnknownField         Kind = "UnknownField"
	KindDuplicateField       Kind = "DuplicateField"
	KindNoSuchField          Kind = "NoSuchField"
	KindNotAStruct           Kind = "NotAStruct"
	KindUnknownType          Kind = "UnknownType"
	KindTypeMismatch         Kind = "TypeMismatch"
	KindNotCallable          Kind = "NotCallable"
)

// Error is a diagnostic-producing problem found in a compilation unit.
type Error interface {
	error
	Kind() Kind
	At() types.Span
	// Message describes the problem without its location.
	Message() string
}

func located(e Error) string {
	return fmt.Sprintf("%s. %s", e.Message(), e.At())
}

type DuplicateDeclaration struct {
	Name     string
	Location types.Span
	Previous types.Span
}

func (e DuplicateDeclaration) Kind() Kind      { return KindDuplicateDeclaration }
func (e DuplicateDeclaration) At() types.Span  { return e.Location }
func (e DuplicateDeclaration) Error() string   { return located(e) }
func (e DuplicateDeclaration) Message() string {
	return fmt.Sprintf("%s is declared more than once (first declared at %s)", e.Name, e.Previous.From)
}

type UnresolvedName struct {
	Name     string
	Location types.Span
}

func (e UnresolvedName) Kind() Kind      { return KindUnresolvedName }
func (e UnresolvedName) At() types.Span  { return e.Location }
func (e UnresolvedName) Error() string   { return located(e) }
func (e UnresolvedName) Message() string { return fmt.Sprintf("cannot find %s in this scope", e.Name) }

type UnknownFunction struct {
	Name     string
	Location types.Span
}

func (e UnknownFunction) Kind() Kind      { return KindUnknownFunction }
func (e UnknownFunction) At() types.Span  { return e.Location }
func (e UnknownFunction) Error() string   { return located(e) }
func (e UnknownFunction) Message() string { return fmt.Sprintf("cannot find function %s", e.Name) }

type ArityMismatch struct {
	Function string
	Expected int
	Got      int
	Location types.Span
}

func (e ArityMismatch) Kind() Kind     { return KindArityMismatch }
func (e ArityMismatch) At() types.Span { return e.Location }
func (e ArityMismatch) Error() string  { return located(e) }
func (e ArityMismatch) Message() string {
	return fmt.Sprintf("function %s takes %d argument(s) but %d were supplied", e.Function, e.Expected, e.Got)
}

type MissingField struct {
	Struct   string
	Field    string
	Location types.Span
}

func (e MissingField) Kind() Kind     { return KindMissingField }
func (e MissingField) At() types.Span { return e.Location }
func (e MissingField) Error() string  { return located(e) }
func (e MissingField) Message() string {
	return fmt.Sprintf("missing field %s in initializer of %s", e.Field, e.Struct)
}

type UnknownField struct {
	Struct   string
	Field    string
	Location types.Span
}

func (e UnknownField) Kind() Kind     { return KindUnknownField }
func (e UnknownField) At() types.Span { return e.Location }
func (e UnknownField) Error() string  { return located(e) }
func (e UnknownField) Message() string {
	return fmt.Sprintf("struct %s has no field named %s", e.Struct, e.Field)
}

type DuplicateField struct {
	Struct   string
	Name     string
	Location types.Span
}

func (e DuplicateField) Kind() Kind     { return KindDuplicateField }
func (e DuplicateField) At() types.Span { return e.Location }
func (e DuplicateField) Error() string  { return located(e) }
func (e DuplicateField) Message() string {
	return fmt.Sprintf("field %s of %s specified more than once", e.Name, e.Struct)
}

type NoSuchField struct {
	Type     types.Type
	Field    string
	Location types.Span
}

func (e NoSuchField) Kind() Kind     { return KindNoSuchField }
func (e NoSuchField) At() types.Span { return e.Location }
func (e NoSuchField) Error() string  { return located(e) }
func (e NoSuchField) Message() string {
	return fmt.Sprintf("no field %s on type %s", e.Field, e.Type)
}

type NotAStruct struct {
	Type     types.Type
	Field    string
	Location types.Span
}

func (e NotAStruct) Kind() Kind     { return KindNotAStruct }
func (e NotAStruct) At() types.Span { return e.Location }
func (e NotAStruct) Error() string  { return located(e) }
func (e NotAStruct) Message() string {
	return fmt.Sprintf("tried to get field %s of non-struct type %s", e.Field, e.Type)
}

type UnknownType struct {
	Name     string
	Location types.Span
}

func (e UnknownType) Kind() Kind      { return KindUnknownType }
func (e UnknownType) At() types.Span  { return e.Location }
func (e UnknownType) Error() string   { return located(e) }
func (e UnknownType) Message() string { return fmt.Sprintf("cannot find type %s", e.Name) }

// TypeMismatch is reported when a value does not have the type its
// position requires. Context names that position, e.g. "field x of Point".
type TypeMismatch struct {
	Expected types.Type
	Got      types.Type
	Context  string
	Location types.Span
}

func (e TypeMismatch) Kind() Kind     { return KindTypeMismatch }
func (e TypeMismatch) At() types.Span { return e.Location }
func (e TypeMismatch) Error() string  { return located(e) }
func (e TypeMismatch) Message() string {
	return fmt.Sprintf("%s has type %s, not type %s", e.Context, e.Got, e.Expected)
}

type NotCallable struct {
	Name     string
	Type     types.Type
	Location types.Span
}

func (e NotCallable) Kind() Kind     { return KindNotCallable }
func (e NotCallable) At() types.Span { return e.Location }
func (e NotCallable) Error() string  { return located(e) }
func (e NotCallable) Message() string {
	return fmt.Sprintf("%s has type %s and cannot be called", e.Name, e.Type)
}
