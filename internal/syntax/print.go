package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a textual representation of the AST to w, one node per
// line, children indented below their parent.
func Fprint(w io.Writer, node Node) {
	p := &printer{w: w}
	p.print(node)
}

// FprintTyped is like Fprint but also shows the type of every typed node
// and the declaration each identifier resolved to.
func FprintTyped(w io.Writer, node Node) {
	p := &printer{w: w, typed: true}
	p.print(node)
}

type printer struct {
	w      io.Writer
	indent int
	typed  bool
}

func (p *printer) printf(format string, args ...interface{}) {
	fmt.Fprintf(p.w, "%s%s", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *printer) print(node Node) {
	if node == nil {
		return
	}

	line := NodeName(node) + " " + node.Span().String()
	if detail := nodeDetail(node); detail != "" {
		line += " " + detail
	}
	if p.typed {
		line += typeSuffix(node)
	}
	p.printf("%s\n", line)

	p.indent++
	for _, c := range children(node) {
		p.print(c)
	}
	p.indent--
}

// children returns the direct children of n in source order.
func children(n Node) []Node {
	var kids []Node
	Walk(n, func(c Node) bool {
		if c == n {
			return true
		}
		kids = append(kids, c)
		return false
	})
	return kids
}

// NodeName returns the name of the node's variant.
func NodeName(n Node) string {
	switch n.(type) {
	case *Program:
		return "Program"
	case *FuncDecl:
		return "FuncDecl"
	case *VarDecl:
		return "VarDecl"
	case *ParamDecl:
		return "ParamDecl"
	case *TypeDecl:
		return "TypeDecl"
	case *Ident:
		return "Ident"
	case *Operator:
		return "Operator"
	case *EmptyExpr:
		return "EmptyExpr"
	case *BasicLit:
		return "BasicLit"
	case *VarExpr:
		return "VarExpr"
	case *IndexExpr:
		return "IndexExpr"
	case *BinaryExpr:
		return "BinaryExpr"
	case *UnaryExpr:
		return "UnaryExpr"
	case *AssignExpr:
		return "AssignExpr"
	case *CallExpr:
		return "CallExpr"
	case *Arg:
		return "Arg"
	case *ExprList:
		return "ExprList"
	case *EmptyStmt:
		return "EmptyStmt"
	case *CompoundStmt:
		return "CompoundStmt"
	case *EmptyCompoundStmt:
		return "EmptyCompoundStmt"
	case *IfStmt:
		return "IfStmt"
	case *WhileStmt:
		return "WhileStmt"
	case *ForStmt:
		return "ForStmt"
	case *ReturnStmt:
		return "ReturnStmt"
	case *AssignStmt:
		return "AssignStmt"
	case *CallStmt:
		return "CallStmt"
	case *BasicType:
		return "BasicType"
	case *ArrayType:
		return "ArrayType"
	}
	return fmt.Sprintf("%T", n)
}

// nodeDetail returns the leaf value shown after the node name.
func nodeDetail(n Node) string {
	switch n := n.(type) {
	case *Ident:
		return n.Value
	case *Operator:
		return n.Value
	case *BasicLit:
		if n.Kind == StringLit {
			return n.Kind.String() + ` "` + n.Value + `"`
		}
		return n.Kind.String() + " " + n.Value
	case *BasicType:
		return n.String()
	case *ArrayType:
		return n.String()
	}
	return ""
}

// typeSuffix describes the checked type of n and, for identifiers,
// their declaration.
func typeSuffix(n Node) string {
	var s string
	switch x := n.(type) {
	case Expr:
		s = typeString(x.Type())
	case *Ident:
		s = typeString(x.Type())
		if x.Decl != nil {
			s += " -> " + DeclString(x.Decl)
		}
	case *Operator:
		s = typeString(x.Type())
	}
	return s
}

func typeString(t Type) string {
	if t == nil {
		return ""
	}
	return " : " + t.String()
}

// DeclString describes a declaration by kind and position. Declarations
// without a position are predeclared.
func DeclString(d Decl) string {
	if !d.Pos().IsKnown() {
		return NodeName(d) + " <builtin>"
	}
	return NodeName(d) + " " + d.Pos().String()
}
