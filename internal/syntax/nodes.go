package syntax

// ----------------------------------------------------------------------------
// Interfaces
//
// Nodes fall into declarations, statements, expressions and types. Every node
// carries the span of the tokens it was built from. Expressions, identifiers
// and operators also carry a type, set by the type checker.

// Node is the interface implemented by all AST nodes.
type Node interface {
	Pos() Pos   // position of the first character of the node
	End() Pos   // position of the last character of the node
	Span() Span // Pos through End
	aNode()     // marker method to restrict implementations to this package
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	Type() Type
	SetType(Type)
	aExpr()
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	aStmt()
}

// Decl is the interface for all declaration nodes.
type Decl interface {
	Node
	aDecl()
}

// Type is the interface for type nodes.
type Type interface {
	Node
	String() string
	aType()
}

// ----------------------------------------------------------------------------
// Base node types

// node is the base struct embedded in all AST nodes.
type node struct {
	span Span
}

func (n *node) Pos() Pos   { return n.span.Start }
func (n *node) End() Pos   { return n.span.End }
func (n *node) Span() Span { return n.span }
func (n *node) aNode()     {}

// typed holds the type assigned by the checker.
type typed struct {
	typ Type
}

func (t *typed) Type() Type        { return t.typ }
func (t *typed) SetType(typ Type) { t.typ = typ }

// expr is embedded in all expression nodes.
type expr struct {
	node
	typed
}

func (*expr) aExpr() {}

// stmt is embedded in all statement nodes.
type stmt struct{ node }

func (*stmt) aStmt() {}

// decl is embedded in all declaration nodes.
type decl struct{ node }

func (*decl) aDecl() {}

// typeNode is embedded in all type nodes.
type typeNode struct{ node }

func (*typeNode) aType() {}

// ----------------------------------------------------------------------------
// Program and declarations

// Program is a complete compilation unit.
type Program struct {
	node
	Decls []Decl // *FuncDecl and *VarDecl in source order
}

// FuncDecl represents a function definition: Result Name(Params) Body
type FuncDecl struct {
	decl
	Result Type
	Name   *Ident
	Params []*ParamDecl
	Body   Stmt // *CompoundStmt or *EmptyCompoundStmt; *EmptyStmt for intrinsics
}

// VarDecl represents a global or local variable: Type Name [= Init]
type VarDecl struct {
	decl
	Type Type
	Name *Ident
	Init Expr // *EmptyExpr if absent
}

// ParamDecl represents a formal parameter.
type ParamDecl struct {
	decl
	Type Type
	Name *Ident
}

// TypeDecl binds a predeclared type name. It only appears in the
// root scope, never in parsed programs.
type TypeDecl struct {
	decl
	Name *Ident
	Type Type
}

// ----------------------------------------------------------------------------
// Identifiers and operators

// Ident is an occurrence of a name.
type Ident struct {
	node
	typed
	Value string
	Decl  Decl // declaration the name resolves to; set by the checker
}

// Operator is an occurrence of an operator. Its type is the type of the
// operands it acts on, which differs from the result type for comparisons.
type Operator struct {
	node
	typed
	Value string
}

// ----------------------------------------------------------------------------
// Expressions

// EmptyExpr stands for an omitted expression.
type EmptyExpr struct {
	expr
}

// LitKind classifies a BasicLit.
type LitKind uint8

const (
	IntLit LitKind = iota
	FloatLit
	BoolLit
	StringLit
)

var litKindNames = [...]string{
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	BoolLit:   "BoolLit",
	StringLit: "StringLit",
}

func (k LitKind) String() string {
	if int(k) < len(litKindNames) {
		return litKindNames[k]
	}
	return "LitKind(?)"
}

// BasicLit represents a literal. String values keep their escapes.
type BasicLit struct {
	expr
	Kind  LitKind
	Value string
}

// VarExpr is a use of a variable name.
type VarExpr struct {
	expr
	Name *Ident
}

// IndexExpr represents an array element: X[Index]
type IndexExpr struct {
	expr
	X     *VarExpr
	Index Expr
}

// BinaryExpr represents X Op Y.
type BinaryExpr struct {
	expr
	X  Expr
	Op *Operator
	Y  Expr
}

// UnaryExpr represents Op X. Conversions inserted by the checker are
// unary expressions too; see NewConversion.
type UnaryExpr struct {
	expr
	Op *Operator
	X  Expr
}

// AssignExpr represents an assignment used as an expression: LHS = RHS
type AssignExpr struct {
	expr
	LHS Expr
	RHS Expr
}

// CallExpr represents Fun(Args)
type CallExpr struct {
	expr
	Fun  *Ident
	Args []*Arg
}

// Arg is an actual parameter.
type Arg struct {
	expr
	X Expr
}

// ExprList is a brace-enclosed array initializer.
type ExprList struct {
	expr
	Elems []Expr
}

// Conversion operators.
const (
	OpIntToFloat = "i2f"
)

// NewConversion wraps x in a conversion op from type from to type to.
// The result has the span of x.
func NewConversion(op string, x Expr, from, to Type) *UnaryExpr {
	o := &Operator{Value: op}
	o.span = x.Span()
	o.SetType(from)

	u := &UnaryExpr{Op: o, X: x}
	u.span = x.Span()
	u.SetType(to)
	return u
}

// IsConversion reports whether e was inserted by NewConversion.
func IsConversion(e Expr) bool {
	u, ok := e.(*UnaryExpr)
	return ok && u.Op.Value == OpIntToFloat
}

// ----------------------------------------------------------------------------
// Statements

// EmptyStmt stands for an omitted statement, such as a missing else.
type EmptyStmt struct {
	stmt
}

// CompoundStmt represents { Decls Stmts }.
type CompoundStmt struct {
	stmt
	Decls []*VarDecl
	Stmts []Stmt
}

// EmptyCompoundStmt represents {} with neither declarations nor statements.
type EmptyCompoundStmt struct {
	stmt
}

// IfStmt represents if (Cond) Then else Else.
type IfStmt struct {
	stmt
	Cond Expr
	Then Stmt
	Else Stmt // *EmptyStmt if absent
}

// WhileStmt represents while (Cond) Body.
type WhileStmt struct {
	stmt
	Cond Expr
	Body Stmt
}

// ForStmt represents for (Init; Cond; Post) Body. Omitted clauses
// are *EmptyExpr.
type ForStmt struct {
	stmt
	Init Expr
	Cond Expr
	Post Expr
	Body Stmt
}

// ReturnStmt represents return [Result];
type ReturnStmt struct {
	stmt
	Result Expr // *EmptyExpr if absent
}

// AssignStmt represents LHS = RHS;
type AssignStmt struct {
	stmt
	LHS Expr
	RHS Expr
}

// CallStmt represents a call used as a statement.
type CallStmt struct {
	stmt
	Call *CallExpr
}

// ----------------------------------------------------------------------------
// Types

// BasicKind identifies a basic type.
type BasicKind uint8

const (
	Error BasicKind = iota // result of an ill-typed expression
	Int
	Float
	Bool
	Void
	String
)

var basicNames = [...]string{
	Error:  "error",
	Int:    "int",
	Float:  "float",
	Bool:   "bool",
	Void:   "void",
	String: "string",
}

// BasicType is one of the predeclared types.
type BasicType struct {
	typeNode
	Kind BasicKind
}

func (t *BasicType) String() string { return basicNames[t.Kind] }

// ArrayType represents Elem[Len].
type ArrayType struct {
	typeNode
	Elem Type
	Len  Expr // *BasicLit of kind IntLit, or *EmptyExpr if omitted
}

func (t *ArrayType) String() string {
	if lit, ok := t.Len.(*BasicLit); ok {
		return t.Elem.String() + "[" + lit.Value + "]"
	}
	return t.Elem.String() + "[]"
}

// ----------------------------------------------------------------------------
// Constructors for nodes that do not come from source text

// NewIdent returns an identifier with no position.
func NewIdent(name string) *Ident {
	return &Ident{Value: name}
}

// NewBasicType returns a basic type node with no position.
func NewBasicType(kind BasicKind) *BasicType {
	return &BasicType{Kind: kind}
}

// NewTypeDecl returns a declaration binding name to typ.
func NewTypeDecl(name string, typ Type) *TypeDecl {
	return &TypeDecl{Name: NewIdent(name), Type: typ}
}

// NewParamDecl returns a formal parameter declaration.
func NewParamDecl(typ Type, name string) *ParamDecl {
	return &ParamDecl{Type: typ, Name: NewIdent(name)}
}

// NewFuncDecl returns a function declaration with an empty body.
func NewFuncDecl(result Type, name string, params ...*ParamDecl) *FuncDecl {
	return &FuncDecl{Result: result, Name: NewIdent(name), Params: params, Body: &EmptyStmt{}}
}
