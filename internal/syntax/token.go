// Package syntax implements lexical and syntactic analysis for MiniC.
package syntax

import "fmt"

// Kind classifies a lexeme.
type Kind uint

const (
	// Special tokens
	_EOF   Kind = iota // end of file
	_Error             // lexical error

	// Literals
	_IntLit    // 123
	_FloatLit  // 1.5, .5e3, 1e10
	_BoolLit   // true, false
	_StringLit // "hello"

	// Identifiers
	_ID

	// Keywords
	_Bool
	_Else
	_Float
	_For
	_If
	_Int
	_Return
	_Void
	_While

	// Operators
	_Add       // +
	_Sub       // -
	_Mul       // *
	_Div       // /
	_Assign    // =
	_Eq        // ==
	_NotEq     // !=
	_Less      // <
	_LessEq    // <=
	_Greater   // >
	_GreaterEq // >=
	_And       // &&
	_Or        // ||
	_Not       // !

	// Separators
	_Lbrace // {
	_Rbrace // }
	_Lbrack // [
	_Rbrack // ]
	_Lparen // (
	_Rparen // )
	_Comma  // ,
	_Semi   // ;

	kindCount
)

// kindNames maps kinds to their spelling in diagnostics.
var kindNames = [...]string{
	_EOF:   "EOF",
	_Error: "ERROR",

	_IntLit:    "INTLITERAL",
	_FloatLit:  "FLOATLITERAL",
	_BoolLit:   "BOOLLITERAL",
	_StringLit: "STRINGLITERAL",

	_ID: "ID",

	_Bool:   "bool",
	_Else:   "else",
	_Float:  "float",
	_For:    "for",
	_If:     "if",
	_Int:    "int",
	_Return: "return",
	_Void:   "void",
	_While:  "while",

	_Add:       "+",
	_Sub:       "-",
	_Mul:       "*",
	_Div:       "/",
	_Assign:    "=",
	_Eq:        "==",
	_NotEq:     "!=",
	_Less:      "<",
	_LessEq:    "<=",
	_Greater:   ">",
	_GreaterEq: ">=",
	_And:       "&&",
	_Or:        "||",
	_Not:       "!",

	_Lbrace: "{",
	_Rbrace: "}",
	_Lbrack: "[",
	_Rbrack: "]",
	_Lparen: "(",
	_Rparen: ")",
	_Comma:  ",",
	_Semi:   ";",
}

// String returns the spelling of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// IsKeyword reports whether k is a keyword.
func (k Kind) IsKeyword() bool {
	return k >= _Bool && k <= _While
}

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool {
	return k >= _IntLit && k <= _StringLit
}

// IsOperator reports whether k is an operator.
func (k Kind) IsOperator() bool {
	return k >= _Add && k <= _Not
}

// IsSeparator reports whether k is a separator.
func (k Kind) IsSeparator() bool {
	return k >= _Lbrace && k <= _Semi
}

// IsEOF reports whether k is the end-of-file kind.
func (k Kind) IsEOF() bool {
	return k == _EOF
}

// IsError reports whether k is the lexical error kind.
func (k Kind) IsError() bool {
	return k == _Error
}

// IsTypeSpec reports whether k starts a type specifier.
func (k Kind) IsTypeSpec() bool {
	switch k {
	case _Void, _Int, _Bool, _Float:
		return true
	}
	return false
}

// Token is a classified lexeme. Tokens are immutable once scanned.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span
}

// String returns a short description for token dumps.
func (t Token) String() string {
	return fmt.Sprintf("%s %s %q", t.Span, t.Kind, t.Lexeme)
}

// keywords maps keyword spellings to their kind.
// true and false fold into boolean literals.
var keywords = map[string]Kind{
	"bool":   _Bool,
	"else":   _Else,
	"float":  _Float,
	"for":    _For,
	"if":     _If,
	"int":    _Int,
	"return": _Return,
	"void":   _Void,
	"while":  _While,
	"true":   _BoolLit,
	"false":  _BoolLit,
}

// LookupKeyword returns the kind for an identifier-shaped lexeme:
// its keyword kind if it is one, _ID otherwise.
func LookupKeyword(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return _ID
}

// symbols maps operator and separator lexemes to their kind.
var symbols = map[string]Kind{
	"+":  _Add,
	"-":  _Sub,
	"*":  _Mul,
	"/":  _Div,
	"=":  _Assign,
	"==": _Eq,
	"!=": _NotEq,
	"<":  _Less,
	"<=": _LessEq,
	">":  _Greater,
	">=": _GreaterEq,
	"&&": _And,
	"||": _Or,
	"!":  _Not,
	"{":  _Lbrace,
	"}":  _Rbrace,
	"[":  _Lbrack,
	"]":  _Rbrack,
	"(":  _Lparen,
	")":  _Rparen,
	",":  _Comma,
	";":  _Semi,
}

// LookupSymbol returns the kind of an operator or separator lexeme,
// or _Error if the lexeme is neither.
func LookupSymbol(lexeme string) Kind {
	if k, ok := symbols[lexeme]; ok {
		return k
	}
	return _Error
}
