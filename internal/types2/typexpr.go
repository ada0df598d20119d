package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// arrayLen checks the length of an array type, if present.
func (c *Checker) arrayLen(t *syntax.ArrayType) {
	if !isEmpty(t.Len) {
		c.expr(t.Len)
	}
}

// varType reports a variable or parameter declared void, or as an
// array of void. span is the span of the whole declaration.
func (c *Checker) varType(typ syntax.Type, span syntax.Span) {
	switch t := typ.(type) {
	case *syntax.BasicType:
		if t.Kind == syntax.Void {
			c.errorf(_VoidVar, "", t.Span())
		}
	case *syntax.ArrayType:
		if types.IsVoid(t.Elem) {
			c.errorf(_VoidArray, "", span)
		}
	}
}
