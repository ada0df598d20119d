package types

import "github.com/you-not-fish/minic/internal/syntax"

// PredeclaredTypes lists the type names bound in every root scope.
var PredeclaredTypes = []string{"int", "bool", "float", "void"}

// intrinsic describes a predeclared I/O function.
type intrinsic struct {
	name   string
	result syntax.BasicKind
	param  string // parameter name, "" if none
	ptype  syntax.BasicKind
}

var intrinsics = [...]intrinsic{
	{name: "getInt", result: syntax.Int},
	{name: "putInt", result: syntax.Void, param: "i", ptype: syntax.Int},
	{name: "getBool", result: syntax.Bool},
	{name: "putBool", result: syntax.Void, param: "b", ptype: syntax.Bool},
	{name: "getFloat", result: syntax.Float},
	{name: "putFloat", result: syntax.Void, param: "f", ptype: syntax.Float},
	{name: "getString", result: syntax.String},
	{name: "putString", result: syntax.Void, param: "s", ptype: syntax.String},
	{name: "putLn", result: syntax.Void},
}

// Intrinsics returns the names of the predeclared functions in
// declaration order.
func Intrinsics() []string {
	names := make([]string, len(intrinsics))
	for i, in := range intrinsics {
		names[i] = in.name
	}
	return names
}

// defPredeclared binds the predeclared types and functions in root.
// Every call creates fresh declarations.
func defPredeclared(root *Scope) {
	for _, name := range PredeclaredTypes {
		var kind syntax.BasicKind
		switch name {
		case "int":
			kind = syntax.Int
		case "bool":
			kind = syntax.Bool
		case "float":
			kind = syntax.Float
		case "void":
			kind = syntax.Void
		}
		root.Insert(name, syntax.NewTypeDecl(name, Typ[kind]))
	}

	for _, in := range intrinsics {
		var params []*syntax.ParamDecl
		if in.param != "" {
			params = append(params, syntax.NewParamDecl(Typ[in.ptype], in.param))
		}
		root.Insert(in.name, syntax.NewFuncDecl(Typ[in.result], in.name, params...))
	}
}
