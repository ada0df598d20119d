package types2

import (
	"fmt"

	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// call checks a function call. The arguments are checked first; a call
// of something that is not a function is reported once and typed error.
func (c *Checker) call(e *syntax.CallExpr) {
	e.SetType(types.Typ[syntax.Error])

	for _, a := range e.Args {
		c.expr(a.X)
		a.SetType(a.X.Type())
	}

	d := c.resolve(e.Fun)
	if d == nil {
		return
	}
	fn, ok := d.(*syntax.FuncDecl)
	if !ok {
		c.errorf(_NotFunction, e.Fun.Value, e.Span())
		return
	}

	c.checkCallArgs(e, fn)
	e.SetType(fn.Result)
}

// checkCallArgs matches the actual parameters of e against the formal
// parameters of fn. A count mismatch is reported once; the arguments
// that have a formal counterpart are still checked.
func (c *Checker) checkCallArgs(e *syntax.CallExpr, fn *syntax.FuncDecl) {
	n := len(fn.Params)
	switch {
	case len(e.Args) > n:
		c.errorf(_TooManyArgs, fmt.Sprintf("needs %d parameter(s)", n), e.Span())
	case len(e.Args) < n:
		c.errorf(_TooFewArgs, fmt.Sprintf("needs %d parameter(s)", n), e.Span())
		n = len(e.Args)
	}

	for i := 0; i < n; i++ {
		a, formal := e.Args[i], fn.Params[i].Type
		if !types.AssignableTo(a.X.Type(), formal) {
			c.errorf(_WrongArgType, fmt.Sprintf("parameter %d", i+1), a.Span())
			continue
		}
		a.X = convert(a.X, formal)
		a.SetType(a.X.Type())
	}
}
