// Package types2 implements semantic analysis for MiniC programs.
package types2

import (
	"fmt"
	"strings"

	"github.com/you-not-fish/minic/internal/syntax"
)

// An errorCode identifies an entry of the semantic error catalogue.
type errorCode int

const (
	_MissingMain errorCode = iota
	_MainResult
	_Redeclared
	_VoidVar
	_VoidArray
	_Undeclared
	_IncompatibleAssign
	_InvalidLvalue
	_IncompatibleReturn
	_IncompatibleBinary
	_IncompatibleUnary
	_FuncAsScalar
	_NotArray
	_WrongElemType
	_ArrayInitForScalar
	_ScalarInitForArray
	_TooManyElems
	_NonIntSubscript
	_MissingArraySize
	_NotFunction
	_NonBoolIf
	_NonBoolFor
	_NonBoolWhile
	_TooManyArgs
	_TooFewArgs
	_WrongArgType

	numErrorCodes
)

// errMsg holds the message template of each error code. A template
// contains at most one % which is replaced by the argument.
var errMsg = [numErrorCodes]string{
	_MissingMain: "#0: main function missing",
	_MainResult:  "#1: return type of main must be int",

	// defining occurrences
	_Redeclared: "#2: identifier redeclared: %",
	_VoidVar:    "#3: identifier declared void",
	_VoidArray:  "#4: identifier declared void[]",

	// applied occurrences
	_Undeclared: "#5: undeclared identifier: %",

	// assignments
	_IncompatibleAssign: "#6: incompatible types for =",
	_InvalidLvalue:      "#7: invalid lvalue in assignment",

	// expressions
	_IncompatibleReturn: "#8: incompatible type for return statement",
	_IncompatibleBinary: "#9: incompatible types for binary operator",
	_IncompatibleUnary:  "#10: incompatible type for unary operator",
	_FuncAsScalar:       "#11: attempt to use a function as a scalar",

	// arrays
	_NotArray:           "#12: attempt to use scalar/function as an array",
	_WrongElemType:      "#13: wrong type for element in array initializer",
	_ArrayInitForScalar: "#14: invalid initializer: array initializer for scalar",
	_ScalarInitForArray: "#15: invalid initializer: scalar initializer for array",
	_TooManyElems:       "#16: too many elements in array initializer",
	_NonIntSubscript:    "#17: array subscript is not an integer",
	_MissingArraySize:   "#18: array size missing",

	// calls and conditions
	_NotFunction:  "#19: attempt to reference a scalar/array as a function: %",
	_NonBoolIf:    `#20: "if" conditional is not of type boolean`,
	_NonBoolFor:   `#21: "for" conditional is not of type boolean`,
	_NonBoolWhile: `#22: "while" conditional is not of type boolean`,
	_TooManyArgs:  "#23: too many actual parameters: %",
	_TooFewArgs:   "#24: too few actual parameters: %",
	_WrongArgType: "#25: wrong type for actual parameter: %",
}

// TypeError represents a semantic error.
type TypeError struct {
	Span syntax.Span
	Msg  string
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span.Start, e.Msg)
}

// errorf reports error code at span, with arg substituted into its
// template.
func (c *Checker) errorf(code errorCode, arg string, span syntax.Span) {
	template := errMsg[code]
	if c.errors == 0 {
		c.first = &TypeError{Span: span, Msg: strings.Replace(template, "%", arg, 1)}
	}
	c.errors++

	if c.conf.Reporter != nil {
		c.conf.Reporter.ReportError(template, arg, span)
	}
}
