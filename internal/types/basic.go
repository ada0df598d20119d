// Package types declares the MiniC type predicates and the scope
// stack used by the type checker.
//
// Types are syntax.Type nodes: declared types come straight from the
// AST, and the checker's own results use the shared basic types in Typ.
package types

import (
	"strconv"

	"github.com/you-not-fish/minic/internal/syntax"
)

// Typ contains the predeclared basic types, indexed by kind.
// Typ[syntax.Error] is the type of ill-typed expressions.
var Typ = [...]*syntax.BasicType{
	syntax.Error:  syntax.NewBasicType(syntax.Error),
	syntax.Int:    syntax.NewBasicType(syntax.Int),
	syntax.Float:  syntax.NewBasicType(syntax.Float),
	syntax.Bool:   syntax.NewBasicType(syntax.Bool),
	syntax.Void:   syntax.NewBasicType(syntax.Void),
	syntax.String: syntax.NewBasicType(syntax.String),
}

// NewArray returns an array type of n elems. n < 0 leaves the length
// unspecified.
func NewArray(elem syntax.Type, n int) *syntax.ArrayType {
	t := &syntax.ArrayType{Elem: elem}
	if n < 0 {
		t.Len = &syntax.EmptyExpr{}
	} else {
		SetLen(t, n)
	}
	return t
}

// SetLen fixes the length of t to n.
func SetLen(t *syntax.ArrayType, n int) {
	t.Len = &syntax.BasicLit{Kind: syntax.IntLit, Value: strconv.Itoa(n)}
}
