package types2

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// litTypes maps literal kinds to their types.
var litTypes = [...]syntax.BasicKind{
	syntax.IntLit:    syntax.Int,
	syntax.FloatLit:  syntax.Float,
	syntax.BoolLit:   syntax.Bool,
	syntax.StringLit: syntax.String,
}

// expr checks an expression and sets its type. An omitted expression
// is left untyped.
func (c *Checker) expr(e syntax.Expr) {
	switch e := e.(type) {
	case *syntax.EmptyExpr:
		// Nothing to check

	case *syntax.BasicLit:
		e.SetType(types.Typ[litTypes[e.Kind]])

	case *syntax.VarExpr:
		c.varExpr(e)

	case *syntax.IndexExpr:
		c.index(e)

	case *syntax.BinaryExpr:
		c.binary(e)

	case *syntax.UnaryExpr:
		c.unary(e)

	case *syntax.AssignExpr:
		e.RHS = c.assignment(e.LHS, e.RHS)
		e.SetType(e.LHS.Type())

	case *syntax.CallExpr:
		c.call(e)

	case *syntax.ExprList:
		// the declaration decides the type of the list
		c.exprList(e)

	default:
		panic(fmt.Sprintf("types2: unexpected expression %T", e))
	}
}

// exprList checks the elements of an initializer list.
func (c *Checker) exprList(list *syntax.ExprList) {
	for _, x := range list.Elems {
		c.expr(x)
	}
}

// varExpr checks a use of a variable.
func (c *Checker) varExpr(e *syntax.VarExpr) {
	switch d := c.resolve(e.Name).(type) {
	case nil:
		e.SetType(types.Typ[syntax.Error])
	case *syntax.FuncDecl:
		c.errorf(_FuncAsScalar, "", e.Span())
		e.SetType(types.Typ[syntax.Error])
	default:
		e.SetType(declType(d))
	}
}

// index checks an array element reference x[i].
func (c *Checker) index(e *syntax.IndexExpr) {
	d := c.resolve(e.X.Name)

	c.expr(e.Index)
	if t := e.Index.Type(); !types.IsInt(t) && !types.IsError(t) {
		c.errorf(_NonIntSubscript, "", e.Index.Span())
	}

	e.SetType(types.Typ[syntax.Error])
	if d == nil {
		e.X.SetType(types.Typ[syntax.Error])
		return
	}
	if _, isFunc := d.(*syntax.FuncDecl); isFunc {
		e.X.SetType(types.Typ[syntax.Error])
		c.errorf(_NotArray, "", e.Span())
		return
	}

	typ := declType(d)
	e.X.SetType(typ)
	if !types.IsArray(typ) {
		c.errorf(_NotArray, "", e.Span())
		return
	}
	e.SetType(types.Elem(typ))
}

// binary checks a binary expression.
//
// Arithmetic and comparison operators take two ints or two floats, an
// int beside a float being converted; the operator is typed with the
// operand type. Logical operators take two bools and are typed int.
func (c *Checker) binary(e *syntax.BinaryExpr) {
	c.expr(e.X)
	c.expr(e.Y)

	op := e.Op.Value
	x, y := e.X.Type(), e.Y.Type()

	if isArithOrCompare(op) && types.IsNumeric(x) && types.IsNumeric(y) {
		operand := types.Typ[syntax.Int]
		if types.IsFloat(x) || types.IsFloat(y) {
			operand = types.Typ[syntax.Float]
			e.X = convert(e.X, operand)
			e.Y = convert(e.Y, operand)
		}
		e.Op.SetType(operand)
		if isComparison(op) {
			e.SetType(types.Typ[syntax.Bool])
		} else {
			e.SetType(operand)
		}
		return
	}

	if isLogical(op) && types.IsBool(x) && types.IsBool(y) {
		e.Op.SetType(types.Typ[syntax.Int])
		e.SetType(types.Typ[syntax.Bool])
		return
	}

	e.Op.SetType(types.Typ[syntax.Error])
	e.SetType(types.Typ[syntax.Error])
	if !types.IsError(x) && !types.IsError(y) {
		c.errorf(_IncompatibleBinary, "", e.Span())
	}
}

// unary checks a unary expression.
func (c *Checker) unary(e *syntax.UnaryExpr) {
	// conversions are typed when they are made
	if syntax.IsConversion(e) {
		return
	}

	c.expr(e.X)
	t := e.X.Type()

	switch op := e.Op.Value; {
	case (op == "+" || op == "-") && types.IsNumeric(t):
		e.Op.SetType(t)
		e.SetType(t)
	case op == "!" && types.IsBool(t):
		e.Op.SetType(types.Typ[syntax.Int])
		e.SetType(types.Typ[syntax.Bool])
	default:
		e.Op.SetType(types.Typ[syntax.Error])
		e.SetType(types.Typ[syntax.Error])
		if !types.IsError(t) {
			c.errorf(_IncompatibleUnary, "", e.Span())
		}
	}
}

func isArithOrCompare(op string) bool {
	switch op {
	case "+", "-", "*", "/", "<", "<=", ">", ">=", "==", "!=":
		return true
	}
	return false
}

func isComparison(op string) bool {
	switch op {
	case "<", "<=", ">", ">=", "==", "!=":
		return true
	}
	return false
}

func isLogical(op string) bool {
	switch op {
	case "&&", "||", "==":
		return true
	}
	return false
}
