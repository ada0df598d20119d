package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the AST to w. Checked types
// and resolved declarations are included once they have been set.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	m := map[string]interface{}{
		"type": NodeName(node),
		"span": node.Span().String(),
	}

	switch n := node.(type) {
	case *Program:
		m["decls"] = mapSlice(n.Decls, func(d Decl) interface{} { return toJSON(d) })

	case *FuncDecl:
		m["result"] = toJSON(n.Result)
		m["name"] = toJSON(n.Name)
		m["params"] = mapSlice(n.Params, func(p *ParamDecl) interface{} { return toJSON(p) })
		m["body"] = toJSON(n.Body)

	case *VarDecl:
		m["vartype"] = toJSON(n.Type)
		m["name"] = toJSON(n.Name)
		m["init"] = toJSON(n.Init)

	case *ParamDecl:
		m["vartype"] = toJSON(n.Type)
		m["name"] = toJSON(n.Name)

	case *TypeDecl:
		m["name"] = toJSON(n.Name)
		m["typedef"] = toJSON(n.Type)

	case *Ident:
		m["value"] = n.Value
		if n.Decl != nil {
			m["decl"] = DeclString(n.Decl)
		}

	case *Operator:
		m["value"] = n.Value

	case *BasicLit:
		m["kind"] = n.Kind.String()
		m["value"] = n.Value

	case *VarExpr:
		m["name"] = toJSON(n.Name)

	case *IndexExpr:
		m["x"] = toJSON(n.X)
		m["index"] = toJSON(n.Index)

	case *BinaryExpr:
		m["x"] = toJSON(n.X)
		m["op"] = toJSON(n.Op)
		m["y"] = toJSON(n.Y)

	case *UnaryExpr:
		m["op"] = toJSON(n.Op)
		m["x"] = toJSON(n.X)

	case *AssignExpr:
		m["lhs"] = toJSON(n.LHS)
		m["rhs"] = toJSON(n.RHS)

	case *CallExpr:
		m["fun"] = toJSON(n.Fun)
		m["args"] = mapSlice(n.Args, func(a *Arg) interface{} { return toJSON(a) })

	case *Arg:
		m["x"] = toJSON(n.X)

	case *ExprList:
		m["elems"] = mapSlice(n.Elems, func(e Expr) interface{} { return toJSON(e) })

	case *CompoundStmt:
		m["decls"] = mapSlice(n.Decls, func(d *VarDecl) interface{} { return toJSON(d) })
		m["stmts"] = mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) })

	case *IfStmt:
		m["cond"] = toJSON(n.Cond)
		m["then"] = toJSON(n.Then)
		m["else"] = toJSON(n.Else)

	case *WhileStmt:
		m["cond"] = toJSON(n.Cond)
		m["body"] = toJSON(n.Body)

	case *ForStmt:
		m["init"] = toJSON(n.Init)
		m["cond"] = toJSON(n.Cond)
		m["post"] = toJSON(n.Post)
		m["body"] = toJSON(n.Body)

	case *ReturnStmt:
		m["result"] = toJSON(n.Result)

	case *AssignStmt:
		m["lhs"] = toJSON(n.LHS)
		m["rhs"] = toJSON(n.RHS)

	case *CallStmt:
		m["call"] = toJSON(n.Call)

	case *BasicType:
		m["name"] = n.String()

	case *ArrayType:
		m["elem"] = toJSON(n.Elem)
		m["len"] = toJSON(n.Len)
	}

	var t Type
	switch n := node.(type) {
	case Expr:
		t = n.Type()
	case *Ident:
		t = n.Type()
	case *Operator:
		t = n.Type()
	}
	if t != nil {
		m["valueType"] = t.String()
	}
	return m
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
