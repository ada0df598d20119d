package types2

import (
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
)

// Config specifies the configuration for type checking.
type Config struct {
	// Reporter receives each semantic error.
	// If nil, errors are only counted.
	Reporter syntax.Reporter
}

// Info holds the results of type checking that are not recorded on
// the AST itself.
type Info struct {
	// Scope is the root scope: the predeclared names and the top-level
	// declarations, with every function and block scope nested beneath.
	Scope *types.Scope
}

// Check type-checks a parsed program in a single traversal and
// decorates it in place:
//
//   - every expression, identifier and operator gets its type
//   - every identifier is linked to the declaration it resolves to
//   - int operands used where a float is expected are wrapped in an
//     int-to-float conversion
//
// Checking never stops early. It returns the first error encountered,
// if any. If info is not nil, it is filled in.
func Check(prog *syntax.Program, conf *Config, info *Info) error {
	if conf == nil {
		conf = &Config{}
	}

	c := &Checker{
		conf:  conf,
		stack: types.NewStack(),
	}

	c.checkProgram(prog)
	if info != nil {
		info.Scope = c.stack.Root()
	}

	if c.errors > 0 {
		return c.first
	}
	return nil
}
