package syntax

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order, children in source order.
// Resolved declarations (Ident.Decl) are references, not children, and
// are not followed.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, d := range n.Decls {
			Walk(d, v)
		}

	case *FuncDecl:
		Walk(n.Result, v)
		Walk(n.Name, v)
		for _, p := range n.Params {
			Walk(p, v)
		}
		Walk(n.Body, v)

	case *VarDecl:
		Walk(n.Type, v)
		Walk(n.Name, v)
		Walk(n.Init, v)

	case *ParamDecl:
		Walk(n.Type, v)
		Walk(n.Name, v)

	case *TypeDecl:
		Walk(n.Name, v)
		Walk(n.Type, v)

	case *CompoundStmt:
		for _, d := range n.Decls {
			Walk(d, v)
		}
		for _, s := range n.Stmts {
			Walk(s, v)
		}

	case *IfStmt:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)

	case *WhileStmt:
		Walk(n.Cond, v)
		Walk(n.Body, v)

	case *ForStmt:
		Walk(n.Init, v)
		Walk(n.Cond, v)
		Walk(n.Post, v)
		Walk(n.Body, v)

	case *ReturnStmt:
		Walk(n.Result, v)

	case *AssignStmt:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *CallStmt:
		Walk(n.Call, v)

	case *VarExpr:
		Walk(n.Name, v)

	case *IndexExpr:
		Walk(n.X, v)
		Walk(n.Index, v)

	case *BinaryExpr:
		Walk(n.X, v)
		Walk(n.Op, v)
		Walk(n.Y, v)

	case *UnaryExpr:
		Walk(n.Op, v)
		Walk(n.X, v)

	case *AssignExpr:
		Walk(n.LHS, v)
		Walk(n.RHS, v)

	case *CallExpr:
		Walk(n.Fun, v)
		for _, a := range n.Args {
			Walk(a, v)
		}

	case *Arg:
		Walk(n.X, v)

	case *ExprList:
		for _, e := range n.Elems {
			Walk(e, v)
		}

	case *ArrayType:
		Walk(n.Elem, v)
		Walk(n.Len, v)

	// Leaf nodes: Ident, Operator, BasicLit, EmptyExpr, EmptyStmt,
	// EmptyCompoundStmt, BasicType
	}
}

// Inspect traverses an AST and calls f for each node.
// Convenience wrapper around Walk.
func Inspect(node Node, f func(Node) bool) {
	Walk(node, Visitor(f))
}
