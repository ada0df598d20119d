package types2

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// block checks the declarations and statements of a compound statement
// in the current scope.
func (c *Checker) block(s *syntax.CompoundStmt) {
	for _, d := range s.Decls {
		c.varDecl(d)
	}
	for _, st := range s.Stmts {
		c.stmt(st)
	}
}

// stmt checks a single statement.
func (c *Checker) stmt(s syntax.Stmt) {
	switch s := s.(type) {
	case *syntax.EmptyStmt, *syntax.EmptyCompoundStmt:
		// Nothing to check

	case *syntax.CompoundStmt:
		c.stack.OpenScope("block")
		c.block(s)
		c.stack.CloseScope()

	case *syntax.IfStmt:
		c.cond(s.Cond, _NonBoolIf)
		c.stmt(s.Then)
		c.stmt(s.Else)

	case *syntax.WhileStmt:
		c.cond(s.Cond, _NonBoolWhile)
		c.stmt(s.Body)

	case *syntax.ForStmt:
		c.expr(s.Init)
		// an omitted condition is always true
		if !isEmpty(s.Cond) {
			c.cond(s.Cond, _NonBoolFor)
		}
		c.expr(s.Post)
		c.stmt(s.Body)

	case *syntax.ReturnStmt:
		c.returnStmt(s)

	case *syntax.AssignStmt:
		s.RHS = c.assignment(s.LHS, s.RHS)

	case *syntax.CallStmt:
		c.call(s.Call)

	default:
		panic(fmt.Sprintf("types2: unexpected statement %T", s))
	}
}

// cond checks a loop or if condition, reporting code if it is not
// boolean.
func (c *Checker) cond(x syntax.Expr, code errorCode) {
	c.expr(x)
	if t := x.Type(); !types.IsBool(t) && !types.IsError(t) {
		c.errorf(code, "", x.Span())
	}
}

// returnStmt checks a return statement against the result type of the
// enclosing function.
func (c *Checker) returnStmt(s *syntax.ReturnStmt) {
	if isEmpty(s.Result) || c.fn == nil {
		return
	}

	c.expr(s.Result)
	if !types.AssignableTo(s.Result.Type(), c.fn.Result) {
		c.errorf(_IncompatibleReturn, "", s.Result.Span())
		return
	}
	s.Result = convert(s.Result, c.fn.Result)
}

// assignment checks lhs = rhs and returns rhs, converted if the
// assignment requires it.
func (c *Checker) assignment(lhs, rhs syntax.Expr) syntax.Expr {
	c.expr(lhs)
	c.expr(rhs)

	switch {
	case types.IsArray(lhs.Type()) && !types.IsError(rhs.Type()):
		// arrays are not copied as a whole
		c.errorf(_IncompatibleAssign, "", rhs.Span())
	case types.AssignableTo(rhs.Type(), lhs.Type()):
		rhs = convert(rhs, lhs.Type())
	default:
		c.errorf(_IncompatibleAssign, "", rhs.Span())
	}

	switch lhs.(type) {
	case *syntax.VarExpr, *syntax.IndexExpr:
	default:
		c.errorf(_InvalidLvalue, "", lhs.Span())
	}
	return rhs
}
