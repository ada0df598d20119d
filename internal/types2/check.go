package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// Checker is the semantic analyzer.
type Checker struct {
	conf  *Config
	stack *types.Stack

	// Function context
	fn *syntax.FuncDecl // function being checked; nil at top level

	// Error tracking
	errors int        // error count
	first  *TypeError // first error
}

// checkProgram checks the declarations in source order. Names are
// visible from their declaration onwards, so a function may call itself
// and any function declared above it.
func (c *Checker) checkProgram(prog *syntax.Program) {
	for _, d := range prog.Decls {
		switch d := d.(type) {
		case *syntax.FuncDecl:
			c.funcDecl(d)
		case *syntax.VarDecl:
			c.varDecl(d)
		}
	}

	if _, ok := c.stack.Root().Lookup("main").(*syntax.FuncDecl); !ok {
		c.errorf(_MissingMain, "", prog.Span())
	}
}

// declare enters d under name in the innermost scope.
// Reports an error if the name is already declared there.
func (c *Checker) declare(name *syntax.Ident, d syntax.Decl) {
	name.Decl = d
	name.SetType(declType(d))
	if !c.stack.Enter(name.Value, d) {
		c.errorf(_Redeclared, name.Value, name.Span())
	}
}

// resolve links an applied occurrence of a name to its declaration.
// It returns nil, after reporting, if the name is undeclared.
func (c *Checker) resolve(name *syntax.Ident) syntax.Decl {
	d := c.stack.Retrieve(name.Value)
	if d == nil {
		c.errorf(_Undeclared, name.Value, name.Span())
		name.SetType(types.Typ[syntax.Error])
		return nil
	}
	name.Decl = d
	name.SetType(declType(d))
	return d
}

// declType returns the type a declaration gives its name: the
// variable's type, or the function's result type.
func declType(d syntax.Decl) syntax.Type {
	switch d := d.(type) {
	case *syntax.VarDecl:
		return d.Type
	case *syntax.ParamDecl:
		return d.Type
	case *syntax.FuncDecl:
		return d.Result
	case *syntax.TypeDecl:
		return d.Type
	}
	return types.Typ[syntax.Error]
}

// convert returns x, wrapped in an int-to-float conversion if storing
// it in a location of type T requires one.
func convert(x syntax.Expr, T syntax.Type) syntax.Expr {
	if types.NeedsConversion(x.Type(), T) {
		return syntax.NewConversion(syntax.OpIntToFloat, x, types.Typ[syntax.Int], types.Typ[syntax.Float])
	}
	return x
}
