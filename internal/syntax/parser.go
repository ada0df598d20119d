package syntax

import "strings"

// Syntax error templates.
const (
	errExpected       = `"%" expected here`
	errNotExpectedEnd = `"%" not expected after end of program`
	errTypeSpecifier  = "Typespecifier expected"
)

// SyntaxError represents a syntax error.
type SyntaxError struct {
	Span  Span
	Msg   string
	AtEOF bool // the offending token was EOF
}

func (e *SyntaxError) Error() string {
	return e.Span.Start.String() + ": " + e.Msg
}

// bailout unwinds the parser after the first syntax error.
type bailout struct{}

// Parser performs syntax analysis on MiniC source code.
// It stops at the first syntax error.
type Parser struct {
	scanner *Scanner
	rep     Reporter

	tok     Token // current token
	prevEnd Pos   // end of the previously consumed token

	err *SyntaxError
}

// NewParser creates a Parser reading tokens from s. The syntax error,
// if any, is also reported to rep, which may be nil.
func NewParser(s *Scanner, rep Reporter) *Parser {
	p := &Parser{scanner: s, rep: rep}
	p.tok = s.Scan() // prime the parser with first token
	return p
}

// Parse parses a program. On a syntax error it returns nil and the
// *SyntaxError; no partial tree is returned.
func (p *Parser) Parse() (prog *Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}
			prog, err = nil, p.err
		}
	}()
	return p.program(), nil
}

// ----------------------------------------------------------------------------
// Token navigation

// next advances to the next token.
func (p *Parser) next() {
	p.prevEnd = p.tok.Span.End
	p.tok = p.scanner.Scan()
}

// got reports whether the current token is of kind k.
// If so, it consumes the token.
func (p *Parser) got(k Kind) bool {
	if p.tok.Kind == k {
		p.next()
		return true
	}
	return false
}

// want consumes the current token if it is of kind k.
// Otherwise it reports a syntax error.
func (p *Parser) want(k Kind) {
	if !p.got(k) {
		p.syntaxError(errExpected, k.String())
	}
}

// spanFrom returns the span from pos to the end of the last consumed token.
func (p *Parser) spanFrom(pos Pos) Span {
	return MakeSpan(pos, p.prevEnd)
}

// here is the zero-width span at the current token.
func (p *Parser) here() Span {
	return MakeSpan(p.tok.Span.Start, p.tok.Span.Start)
}

// ----------------------------------------------------------------------------
// Error handling

// syntaxError reports a syntax error at the current token and unwinds.
func (p *Parser) syntaxError(template, arg string) {
	p.err = &SyntaxError{
		Span:  p.tok.Span,
		Msg:   strings.Replace(template, "%", arg, 1),
		AtEOF: p.tok.Kind == _EOF,
	}
	if p.rep != nil {
		p.rep.ReportError(template, arg, p.tok.Span)
	}
	panic(bailout{})
}

// ----------------------------------------------------------------------------
// Program and declarations

// program ::= ( typespec ID ( function-def | variable-def ) )* EOF
func (p *Parser) program() *Program {
	prog := new(Program)
	pos := p.tok.Span.Start

	for p.tok.Kind.IsTypeSpec() {
		dpos := p.tok.Span.Start
		typ := p.typeSpec()
		name := p.ident()
		if p.tok.Kind == _Lparen {
			prog.Decls = append(prog.Decls, p.funcDecl(dpos, typ, name))
		} else {
			for _, d := range p.varDef(dpos, typ, name) {
				prog.Decls = append(prog.Decls, d)
			}
		}
	}

	if p.tok.Kind != _EOF {
		p.syntaxError(errNotExpectedEnd, p.tok.Lexeme)
	}

	if len(prog.Decls) == 0 {
		prog.span = MakeSpan(pos, pos)
	} else {
		prog.span = p.spanFrom(pos)
	}
	return prog
}

// typeSpec ::= "void" | "int" | "bool" | "float"
func (p *Parser) typeSpec() *BasicType {
	t := new(BasicType)
	t.span = p.tok.Span
	switch p.tok.Kind {
	case _Void:
		t.Kind = Void
	case _Int:
		t.Kind = Int
	case _Bool:
		t.Kind = Bool
	case _Float:
		t.Kind = Float
	default:
		p.syntaxError(errTypeSpecifier, "")
	}
	p.next()
	return t
}

// ident consumes an identifier.
func (p *Parser) ident() *Ident {
	if p.tok.Kind != _ID {
		p.syntaxError(errExpected, _ID.String())
	}
	id := &Ident{Value: p.tok.Lexeme}
	id.span = p.tok.Span
	p.next()
	return id
}

// funcDecl parses the rest of a function definition.
// function-def ::= "(" params? ")" compound
func (p *Parser) funcDecl(pos Pos, result *BasicType, name *Ident) *FuncDecl {
	d := &FuncDecl{Result: result, Name: name}

	p.want(_Lparen)
	if p.tok.Kind.IsTypeSpec() {
		d.Params = append(d.Params, p.paramDecl())
		for p.got(_Comma) {
			d.Params = append(d.Params, p.paramDecl())
		}
	}
	p.want(_Rparen)
	d.Body = p.compoundStmt()

	d.span = p.spanFrom(pos)
	return d
}

// param ::= typespec declarator
func (p *Parser) paramDecl() *ParamDecl {
	pos := p.tok.Span.Start
	base := p.typeSpec()
	d := &ParamDecl{Name: p.ident()}
	d.Type = p.declarator(base)
	d.span = p.spanFrom(pos)
	return d
}

// declarator parses the optional array suffix after a declared name
// and returns the declared type.
// declarator ::= ID ( "[" INTLITERAL? "]" )?
func (p *Parser) declarator(base *BasicType) Type {
	elem := &BasicType{Kind: base.Kind}
	elem.span = base.span

	if p.tok.Kind != _Lbrack {
		return elem
	}

	t := &ArrayType{Elem: elem}
	pos := p.tok.Span.Start
	p.next()
	if p.tok.Kind == _IntLit {
		t.Len = p.basicLit(IntLit)
	} else {
		t.Len = p.emptyExpr()
	}
	p.want(_Rbrack)
	t.span = p.spanFrom(pos)
	return t
}

// varDef parses the rest of a variable definition whose type and first
// name have been consumed. It returns one VarDecl per declarator.
// variable-def ::= ( "[" INTLITERAL? "]" )? ( "=" initializer )?
//                  ( "," declarator ( "=" initializer )? )* ";"
func (p *Parser) varDef(pos Pos, base *BasicType, name *Ident) []*VarDecl {
	decls := []*VarDecl{p.varDecl(pos, base, name)}
	for p.got(_Comma) {
		pos := p.tok.Span.Start
		decls = append(decls, p.varDecl(pos, base, p.ident()))
	}
	p.want(_Semi)
	return decls
}

func (p *Parser) varDecl(pos Pos, base *BasicType, name *Ident) *VarDecl {
	d := &VarDecl{Name: name}
	d.Type = p.declarator(base)
	if p.got(_Assign) {
		d.Init = p.initializer()
	} else {
		d.Init = p.emptyExpr()
	}
	d.span = p.spanFrom(pos)
	return d
}

// initializer ::= expr | "{" expr ( "," expr )* "}"
func (p *Parser) initializer() Expr {
	if p.tok.Kind != _Lbrace {
		return p.expr()
	}

	l := new(ExprList)
	pos := p.tok.Span.Start
	p.next()
	l.Elems = append(l.Elems, p.expr())
	for p.got(_Comma) {
		l.Elems = append(l.Elems, p.expr())
	}
	p.want(_Rbrace)
	l.span = p.spanFrom(pos)
	return l
}

// ----------------------------------------------------------------------------
// Statements

// isStmt reports whether the current token can start a statement.
func (p *Parser) isStmt() bool {
	switch p.tok.Kind {
	case _Lbrace, _If, _While, _For, _Return, _ID:
		return true
	}
	return false
}

// stmt ::= compound | if | while | for | return | simple
func (p *Parser) stmt() Stmt {
	switch p.tok.Kind {
	case _Lbrace:
		return p.compoundStmt()
	case _If:
		return p.ifStmt()
	case _While:
		return p.whileStmt()
	case _For:
		return p.forStmt()
	case _Return:
		return p.returnStmt()
	case _ID:
		return p.simpleStmt()
	}
	p.syntaxError(errExpected, _ID.String())
	return nil
}

// compound ::= "{" ( typespec ID variable-def )* stmt* "}"
func (p *Parser) compoundStmt() Stmt {
	pos := p.tok.Span.Start
	p.want(_Lbrace)

	var decls []*VarDecl
	for p.tok.Kind.IsTypeSpec() {
		dpos := p.tok.Span.Start
		typ := p.typeSpec()
		name := p.ident()
		decls = append(decls, p.varDef(dpos, typ, name)...)
	}

	var stmts []Stmt
	for p.isStmt() {
		stmts = append(stmts, p.stmt())
	}
	p.want(_Rbrace)

	if len(decls) == 0 && len(stmts) == 0 {
		s := new(EmptyCompoundStmt)
		s.span = p.spanFrom(pos)
		return s
	}
	s := &CompoundStmt{Decls: decls, Stmts: stmts}
	s.span = p.spanFrom(pos)
	return s
}

// if ::= "if" "(" expr ")" stmt ( "else" stmt )?
func (p *Parser) ifStmt() Stmt {
	s := new(IfStmt)
	pos := p.tok.Span.Start
	p.want(_If)
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Then = p.stmt()
	if p.got(_Else) {
		s.Else = p.stmt()
	} else {
		e := new(EmptyStmt)
		e.span = p.here()
		s.Else = e
	}
	s.span = p.spanFrom(pos)
	return s
}

// while ::= "while" "(" expr ")" stmt
func (p *Parser) whileStmt() Stmt {
	s := new(WhileStmt)
	pos := p.tok.Span.Start
	p.want(_While)
	p.want(_Lparen)
	s.Cond = p.expr()
	p.want(_Rparen)
	s.Body = p.stmt()
	s.span = p.spanFrom(pos)
	return s
}

// for ::= "for" "(" expr? ";" expr? ";" expr? ")" stmt
func (p *Parser) forStmt() Stmt {
	s := new(ForStmt)
	pos := p.tok.Span.Start
	p.want(_For)
	p.want(_Lparen)
	s.Init = p.optExpr()
	p.want(_Semi)
	s.Cond = p.optExpr()
	p.want(_Semi)
	s.Post = p.optExpr()
	p.want(_Rparen)
	s.Body = p.stmt()
	s.span = p.spanFrom(pos)
	return s
}

// return ::= "return" expr? ";"
func (p *Parser) returnStmt() Stmt {
	s := new(ReturnStmt)
	pos := p.tok.Span.Start
	p.want(_Return)
	s.Result = p.optExpr()
	p.want(_Semi)
	s.span = p.spanFrom(pos)
	return s
}

// simpleStmt parses an expression statement, which must be an
// assignment or a call.
// simple ::= expr ";"
func (p *Parser) simpleStmt() Stmt {
	pos := p.tok.Span.Start
	x := p.expr()

	var s Stmt
	switch x := x.(type) {
	case *AssignExpr:
		a := &AssignStmt{LHS: x.LHS, RHS: x.RHS}
		p.want(_Semi)
		a.span = p.spanFrom(pos)
		s = a
	case *CallExpr:
		c := &CallStmt{Call: x}
		p.want(_Semi)
		c.span = p.spanFrom(pos)
		s = c
	default:
		// neither an assignment nor a call
		p.syntaxError(errExpected, _Assign.String())
	}
	return s
}

// ----------------------------------------------------------------------------
// Expressions

// isExpr reports whether the current token can start an expression.
func (p *Parser) isExpr() bool {
	switch p.tok.Kind {
	case _Add, _Sub, _Not, _ID, _Lparen,
		_IntLit, _FloatLit, _BoolLit, _StringLit:
		return true
	}
	return false
}

// optExpr parses an expression if one starts here, or returns an
// EmptyExpr at the current token.
func (p *Parser) optExpr() Expr {
	if p.isExpr() {
		return p.expr()
	}
	return p.emptyExpr()
}

func (p *Parser) emptyExpr() *EmptyExpr {
	e := new(EmptyExpr)
	e.span = p.here()
	return e
}

// expr ::= or-expr ( "=" expr )?
func (p *Parser) expr() Expr {
	pos := p.tok.Span.Start
	x := p.orExpr()
	if p.got(_Assign) {
		a := &AssignExpr{LHS: x}
		a.RHS = p.expr()
		a.span = p.spanFrom(pos)
		return a
	}
	return x
}

// or-expr ::= and-expr ( "||" and-expr )*
func (p *Parser) orExpr() Expr {
	pos := p.tok.Span.Start
	x := p.andExpr()
	for p.tok.Kind == _Or {
		op := p.operator()
		x = p.binary(pos, x, op, p.andExpr())
	}
	return x
}

// and-expr ::= rel-expr ( "&&" rel-expr )*
func (p *Parser) andExpr() Expr {
	pos := p.tok.Span.Start
	x := p.relExpr()
	for p.tok.Kind == _And {
		op := p.operator()
		x = p.binary(pos, x, op, p.relExpr())
	}
	return x
}

// rel-expr ::= add-expr ( relop add-expr )?
func (p *Parser) relExpr() Expr {
	pos := p.tok.Span.Start
	x := p.addExpr()
	switch p.tok.Kind {
	case _Eq, _NotEq, _Less, _LessEq, _Greater, _GreaterEq:
		op := p.operator()
		x = p.binary(pos, x, op, p.addExpr())
	}
	return x
}

// add-expr ::= mul-expr ( ("+"|"-") mul-expr )*
func (p *Parser) addExpr() Expr {
	pos := p.tok.Span.Start
	x := p.mulExpr()
	for p.tok.Kind == _Add || p.tok.Kind == _Sub {
		op := p.operator()
		x = p.binary(pos, x, op, p.mulExpr())
	}
	return x
}

// mul-expr ::= unary ( ("*"|"/") unary )*
func (p *Parser) mulExpr() Expr {
	pos := p.tok.Span.Start
	x := p.unaryExpr()
	for p.tok.Kind == _Mul || p.tok.Kind == _Div {
		op := p.operator()
		x = p.binary(pos, x, op, p.unaryExpr())
	}
	return x
}

// unary ::= ("+"|"-"|"!") unary | primary
func (p *Parser) unaryExpr() Expr {
	switch p.tok.Kind {
	case _Add, _Sub, _Not:
		pos := p.tok.Span.Start
		u := &UnaryExpr{Op: p.operator()}
		u.X = p.unaryExpr()
		u.span = p.spanFrom(pos)
		return u
	}
	return p.primaryExpr()
}

// primary ::= ID ( "[" expr "]" | "(" args? ")" )? | "(" expr ")" | literal
func (p *Parser) primaryExpr() Expr {
	pos := p.tok.Span.Start

	switch p.tok.Kind {
	case _ID:
		name := p.ident()
		switch p.tok.Kind {
		case _Lbrack:
			v := &VarExpr{Name: name}
			v.span = name.span
			x := &IndexExpr{X: v}
			p.next()
			x.Index = p.expr()
			p.want(_Rbrack)
			x.span = p.spanFrom(pos)
			return x
		case _Lparen:
			return p.callExpr(pos, name)
		}
		v := &VarExpr{Name: name}
		v.span = name.span
		return v

	case _Lparen:
		p.next()
		x := p.expr()
		p.want(_Rparen)
		return x

	case _IntLit:
		return p.basicLit(IntLit)
	case _FloatLit:
		return p.basicLit(FloatLit)
	case _BoolLit:
		return p.basicLit(BoolLit)
	case _StringLit:
		return p.basicLit(StringLit)
	}

	p.syntaxError(errExpected, _ID.String())
	return nil
}

// callExpr parses the argument list of a call to fun.
// args ::= expr ( "," expr )*
func (p *Parser) callExpr(pos Pos, fun *Ident) *CallExpr {
	c := &CallExpr{Fun: fun}
	p.want(_Lparen)
	if p.isExpr() {
		c.Args = append(c.Args, p.arg())
		for p.got(_Comma) {
			c.Args = append(c.Args, p.arg())
		}
	}
	p.want(_Rparen)
	c.span = p.spanFrom(pos)
	return c
}

func (p *Parser) arg() *Arg {
	pos := p.tok.Span.Start
	a := &Arg{X: p.expr()}
	a.span = p.spanFrom(pos)
	return a
}

func (p *Parser) basicLit(kind LitKind) *BasicLit {
	lit := &BasicLit{Kind: kind, Value: p.tok.Lexeme}
	lit.span = p.tok.Span
	p.next()
	return lit
}

func (p *Parser) operator() *Operator {
	op := &Operator{Value: p.tok.Lexeme}
	op.span = p.tok.Span
	p.next()
	return op
}

func (p *Parser) binary(pos Pos, x Expr, op *Operator, y Expr) *BinaryExpr {
	b := &BinaryExpr{X: x, Op: op, Y: y}
	b.span = p.spanFrom(pos)
	return b
}
