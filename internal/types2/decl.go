package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// funcDecl checks a function definition. Parameters and the outermost
// block of the body share one scope.
func (c *Checker) funcDecl(d *syntax.FuncDecl) {
	c.declare(d.Name, d)
	if d.Name.Value == "main" && !types.IsInt(d.Result) {
		c.errorf(_MainResult, "", d.Name.Span())
	}

	c.fn = d
	c.stack.OpenScope("function " + d.Name.Value)

	for _, p := range d.Params {
		c.paramDecl(p)
	}
	if body, ok := d.Body.(*syntax.CompoundStmt); ok {
		c.block(body)
	}

	c.stack.CloseScope()
	c.fn = nil
}

// paramDecl checks a formal parameter. An array parameter may omit its
// length.
func (c *Checker) paramDecl(d *syntax.ParamDecl) {
	if t, ok := d.Type.(*syntax.ArrayType); ok {
		c.arrayLen(t)
	}
	c.declare(d.Name, d)
	c.varType(d.Type, d.Span())
}

// varDecl checks a global or local variable. The initializer is checked
// before the name is entered, so it cannot refer to the variable itself.
func (c *Checker) varDecl(d *syntax.VarDecl) {
	arr, isArray := d.Type.(*syntax.ArrayType)
	if isArray {
		c.arrayLen(arr)
	}

	switch {
	case !isEmpty(d.Init):
		if isArray {
			c.arrayInit(d, arr)
		} else {
			c.scalarInit(d)
		}
	case isArray && isEmpty(arr.Len):
		c.errorf(_MissingArraySize, "", arr.Span())
	}

	c.declare(d.Name, d)
	c.varType(d.Type, d.Span())
}

// arrayInit checks the initializer of an array variable. Elements are
// checked up to the declared length; an omitted length is taken from
// the initializer list.
func (c *Checker) arrayInit(d *syntax.VarDecl, arr *syntax.ArrayType) {
	list, ok := d.Init.(*syntax.ExprList)
	if !ok {
		c.expr(d.Init)
		c.errorf(_ScalarInitForArray, "", d.Init.Span())
		return
	}

	c.exprList(list)
	list.SetType(arr)

	n, ok := types.ArrayLen(arr)
	if isEmpty(arr.Len) {
		n = len(list.Elems)
		types.SetLen(arr, n)
		arr.Len.SetType(types.Typ[syntax.Int])
	} else if !ok {
		// not a usable length; check every element
		n = len(list.Elems)
	}

	for i, x := range list.Elems {
		if i == n {
			c.errorf(_TooManyElems, "", list.Span())
			break
		}
		if !types.AssignableTo(x.Type(), arr.Elem) {
			c.errorf(_WrongElemType, "", x.Span())
			continue
		}
		list.Elems[i] = convert(x, arr.Elem)
	}
}

// scalarInit checks the initializer of a scalar variable.
func (c *Checker) scalarInit(d *syntax.VarDecl) {
	if list, ok := d.Init.(*syntax.ExprList); ok {
		c.exprList(list)
		list.SetType(types.Typ[syntax.Error])
		c.errorf(_ArrayInitForScalar, "", list.Span())
		return
	}

	c.expr(d.Init)
	if !types.AssignableTo(d.Init.Type(), d.Type) {
		c.errorf(_IncompatibleAssign, "", d.Init.Span())
		return
	}
	d.Init = convert(d.Init, d.Type)
}

func isEmpty(x syntax.Expr) bool {
	_, ok := x.(*syntax.EmptyExpr)
	return ok
}
