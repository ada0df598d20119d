package syntax

import (
	"strings"
	"testing"
)

// report is one diagnostic captured by recorder.
type report struct {
	template, arg string
	span          Span
}

// recorder is a Reporter that keeps everything it is given.
type recorder struct {
	reports []report
}

func (r *recorder) ReportError(template, arg string, span Span) {
	r.reports = append(r.reports, report{template, arg, span})
}

func (r *recorder) messages() []string {
	var msgs []string
	for _, rep := range r.reports {
		msgs = append(msgs, strings.Replace(rep.template, "%", rep.arg, 1))
	}
	return msgs
}

// scanAll tokenizes src up to and including EOF.
func scanAll(src string) ([]Token, *recorder) {
	rec := &recorder{}
	s := NewScanner(NewSourceReader(strings.NewReader(src)), rec)
	var toks []Token
	for {
		tok := s.Scan()
		toks = append(toks, tok)
		if tok.Kind == _EOF {
			return toks, rec
		}
		if len(toks) > 10000 {
			panic("scanner does not terminate")
		}
	}
}

func TestScanTokens(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		kinds []Kind
		lexes []string
	}{
		// Identifiers and keywords
		{"ident", "foo", []Kind{_ID}, []string{"foo"}},
		{"ident_underscore", "_bar9", []Kind{_ID}, []string{"_bar9"}},
		{"keyword_int", "int", []Kind{_Int}, []string{"int"}},
		{"keyword_prefix", "integer", []Kind{_ID}, []string{"integer"}},
		{"keywords", "if else while for return void bool float", []Kind{_If, _Else, _While, _For, _Return, _Void, _Bool, _Float},
			[]string{"if", "else", "while", "for", "return", "void", "bool", "float"}},
		{"bool_true", "true", []Kind{_BoolLit}, []string{"true"}},
		{"bool_false", "false", []Kind{_BoolLit}, []string{"false"}},

		// Numbers
		{"int", "123", []Kind{_IntLit}, []string{"123"}},
		{"int_zero", "0", []Kind{_IntLit}, []string{"0"}},
		{"float_frac", "3.14", []Kind{_FloatLit}, []string{"3.14"}},
		{"float_trailing_dot", "3.", []Kind{_FloatLit}, []string{"3."}},
		{"float_leading_dot", ".5", []Kind{_FloatLit}, []string{".5"}},
		{"float_exp", "1e10", []Kind{_FloatLit}, []string{"1e10"}},
		{"float_exp_upper", "1E10", []Kind{_FloatLit}, []string{"1E10"}},
		{"float_exp_sign", "2.5e-3", []Kind{_FloatLit}, []string{"2.5e-3"}},
		{"float_dot_exp", "1.e+5", []Kind{_FloatLit}, []string{"1.e+5"}},
		{"float_leading_dot_exp", ".5E2", []Kind{_FloatLit}, []string{".5E2"}},

		// Rollback after the last accepting state
		{"rollback_exp_sign", "1e+x", []Kind{_IntLit, _ID, _Add, _ID}, []string{"1", "e", "+", "x"}},
		{"rollback_exp", "1ex", []Kind{_IntLit, _ID}, []string{"1", "ex"}},
		{"rollback_frac_exp", "2.5e-", []Kind{_FloatLit, _ID, _Sub}, []string{"2.5", "e", "-"}},
		{"number_then_dot", "1..2", []Kind{_FloatLit, _FloatLit}, []string{"1.", ".2"}},

		// Operators
		{"arith", "+-*/", []Kind{_Add, _Sub, _Mul, _Div}, []string{"+", "-", "*", "/"}},
		{"assign", "=", []Kind{_Assign}, []string{"="}},
		{"eq", "==", []Kind{_Eq}, []string{"=="}},
		{"eq_assign", "===", []Kind{_Eq, _Assign}, []string{"==", "="}},
		{"not", "!", []Kind{_Not}, []string{"!"}},
		{"noteq", "!=", []Kind{_NotEq}, []string{"!="}},
		{"rel", "< <= > >=", []Kind{_Less, _LessEq, _Greater, _GreaterEq}, []string{"<", "<=", ">", ">="}},
		{"logical", "&& ||", []Kind{_And, _Or}, []string{"&&", "||"}},
		{"not_not", "!!x", []Kind{_Not, _Not, _ID}, []string{"!", "!", "x"}},

		// Separators
		{"separators", "(){}[],;", []Kind{_Lparen, _Rparen, _Lbrace, _Rbrace, _Lbrack, _Rbrack, _Comma, _Semi},
			[]string{"(", ")", "{", "}", "[", "]", ",", ";"}},

		// Strings keep escapes verbatim and drop the quotes
		{"string", `"hello"`, []Kind{_StringLit}, []string{"hello"}},
		{"string_empty", `""`, []Kind{_StringLit}, []string{""}},
		{"string_escape", `"a\nb"`, []Kind{_StringLit}, []string{`a\nb`}},
		{"string_spaces", `"a b // c"`, []Kind{_StringLit}, []string{"a b // c"}},

		// Whitespace and comments
		{"whitespace", " \t\r\f\n x \n", []Kind{_ID}, []string{"x"}},
		{"line_comment", "a // comment\nb", []Kind{_ID, _ID}, []string{"a", "b"}},
		{"line_comment_eof", "a // comment", []Kind{_ID}, []string{"a"}},
		{"block_comment", "a /* x\n * y **/ b", []Kind{_ID, _ID}, []string{"a", "b"}},
		{"block_comment_stars", "/***/x", []Kind{_ID}, []string{"x"}},
		{"div_not_comment", "a/b", []Kind{_ID, _Div, _ID}, []string{"a", "/", "b"}},

		// Statements
		{"decl", "int a[10] = {1, 2};", []Kind{_Int, _ID, _Lbrack, _IntLit, _Rbrack, _Assign, _Lbrace, _IntLit, _Comma, _IntLit, _Rbrace, _Semi},
			[]string{"int", "a", "[", "10", "]", "=", "{", "1", ",", "2", "}", ";"}},
		{"call", "putInt(x+1);", []Kind{_ID, _Lparen, _ID, _Add, _IntLit, _Rparen, _Semi},
			[]string{"putInt", "(", "x", "+", "1", ")", ";"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, rec := scanAll(tt.src)
			if len(rec.reports) != 0 {
				t.Errorf("unexpected errors: %v", rec.messages())
			}
			toks = toks[:len(toks)-1] // drop EOF
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.kinds))
			}
			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] {
					t.Errorf("token %d: kind = %v, want %v", i, tok.Kind, tt.kinds[i])
				}
				if tok.Lexeme != tt.lexes[i] {
					t.Errorf("token %d: lexeme = %q, want %q", i, tok.Lexeme, tt.lexes[i])
				}
			}
		})
	}
}

func TestScanSpans(t *testing.T) {
	src := "int main() {\n  x = 1.5e3; \"ab\"\n}"
	toks, _ := scanAll(src)

	want := []struct {
		lexeme string
		span   string
	}{
		{"int", "1:1-3"},
		{"main", "1:5-8"},
		{"(", "1:9"},
		{")", "1:10"},
		{"{", "1:12"},
		{"x", "2:3"},
		{"=", "2:5"},
		{"1.5e3", "2:7-11"},
		{";", "2:12"},
		{"ab", "2:14-17"}, // span includes the quotes
		{"}", "3:1"},
		{"", "3:2"}, // EOF
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(toks), len(want))
	}
	for i, w := range want {
		if toks[i].Lexeme != w.lexeme || toks[i].Span.String() != w.span {
			t.Errorf("token %d = %q@%s, want %q@%s", i, toks[i].Lexeme, toks[i].Span, w.lexeme, w.span)
		}
	}
}

func TestScanRollbackPositions(t *testing.T) {
	toks, _ := scanAll("1e+x")
	want := []string{"1:1", "1:2", "1:3", "1:4", "1:5"}
	for i, tok := range toks {
		if tok.Span.String() != want[i] {
			t.Errorf("token %d %q at %s, want %s", i, tok.Lexeme, tok.Span, want[i])
		}
	}
}

func TestScanErrors(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		kinds  []Kind
		lexes  []string
		errors []string
	}{
		{"illegal_char", "a # b", []Kind{_ID, _Error, _ID}, []string{"a", "#", "b"}, []string{"illegal character #"}},
		{"single_amp", "a&b", []Kind{_ID, _Error, _ID}, []string{"a", "&", "b"}, []string{"illegal character &"}},
		{"single_bar", "a|b", []Kind{_ID, _Error, _ID}, []string{"a", "|", "b"}, []string{"illegal character |"}},
		{"lone_dot", "a.b", []Kind{_ID, _Error, _ID}, []string{"a", ".", "b"}, []string{"illegal character ."}},
		{"illegal_escape", `"a\tb"`, []Kind{_StringLit}, []string{`a\tb`}, []string{"illegal escape sequence"}},
		{"two_illegal_escapes", `"\a\b"`, []Kind{_StringLit}, []string{`\a\b`}, []string{"illegal escape sequence", "illegal escape sequence"}},
		{"unterminated_string_newline", "\"abc\nx", []Kind{_StringLit, _ID}, []string{"abc", "x"}, []string{"unterminated string literal"}},
		{"unterminated_string_eof", `"abc`, []Kind{_StringLit}, []string{"abc"}, []string{"unterminated string literal"}},
		{"unterminated_block_comment", "a /* b c", []Kind{_ID}, []string{"a"}, []string{"unterminated multi-line comment"}},
		{"unterminated_block_comment_star", "/* b *", nil, nil, []string{"unterminated multi-line comment"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks, rec := scanAll(tt.src)
			if last := toks[len(toks)-1]; last.Kind != _EOF {
				t.Fatalf("last token = %v, want EOF", last)
			}
			toks = toks[:len(toks)-1]
			if len(toks) != len(tt.kinds) {
				t.Fatalf("got %d tokens %v, want %d", len(toks), toks, len(tt.kinds))
			}
			for i, tok := range toks {
				if tok.Kind != tt.kinds[i] || tok.Lexeme != tt.lexes[i] {
					t.Errorf("token %d = %v %q, want %v %q", i, tok.Kind, tok.Lexeme, tt.kinds[i], tt.lexes[i])
				}
			}
			msgs := rec.messages()
			if len(msgs) != len(tt.errors) {
				t.Fatalf("got errors %v, want %v", msgs, tt.errors)
			}
			for i := range msgs {
				if msgs[i] != tt.errors[i] {
					t.Errorf("error %d = %q, want %q", i, msgs[i], tt.errors[i])
				}
			}
		})
	}
}

func TestScanErrorSpans(t *testing.T) {
	_, rec := scanAll("x = \"a\\qb\";")
	if len(rec.reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(rec.reports))
	}
	if got := rec.reports[0].span.String(); got != "1:7-8" {
		t.Errorf("escape span = %s, want 1:7-8", got)
	}

	_, rec = scanAll("a\n  /* open")
	if len(rec.reports) != 1 {
		t.Fatalf("got %d reports, want 1", len(rec.reports))
	}
	if got := rec.reports[0].span.String(); got != "2:3-9" {
		t.Errorf("comment span = %s, want 2:3-9", got)
	}
}

func TestScanEOFRepeats(t *testing.T) {
	s := NewScanner(NewSourceReader(strings.NewReader("x")), nil)
	if tok := s.Scan(); tok.Kind != _ID {
		t.Fatalf("first token = %v, want ID", tok)
	}
	for i := 0; i < 3; i++ {
		if tok := s.Scan(); tok.Kind != _EOF {
			t.Fatalf("call %d: got %v, want EOF", i, tok)
		}
	}
}

// Re-scanning the lexemes of a token stream, separated by blanks,
// gives the same kinds back.
func TestScanIdempotent(t *testing.T) {
	src := `int main() { float f[3] = {1, 2.5, .5e1}; bool b = !true && f[0] <= 1e2;
	if (b || x != 2) putString("hi\n"); else { i = i - -1; } return 0; }`

	first, rec := scanAll(src)
	if len(rec.reports) != 0 {
		t.Fatalf("unexpected errors: %v", rec.messages())
	}

	var b strings.Builder
	for _, tok := range first[:len(first)-1] {
		if tok.Kind == _StringLit {
			b.WriteString(`"` + tok.Lexeme + `"`)
		} else {
			b.WriteString(tok.Lexeme)
		}
		b.WriteByte(' ')
	}
	second, _ := scanAll(b.String())

	if len(first) != len(second) {
		t.Fatalf("re-scan produced %d tokens, want %d", len(second), len(first))
	}
	for i := range first {
		if first[i].Kind != second[i].Kind || first[i].Lexeme != second[i].Lexeme {
			t.Errorf("token %d: %v %q, re-scanned as %v %q", i, first[i].Kind, first[i].Lexeme, second[i].Kind, second[i].Lexeme)
		}
	}
}

func FuzzScanner(f *testing.F) {
	seeds := []string{
		"int main() { return 0; }",
		"1e+x .5 1.e3 a&b",
		`"abc\q" /* open`,
		"// only a comment",
		"x = y == z != !w;",
		"\"unterminated\n",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, src string) {
		s := NewScanner(NewSourceReader(strings.NewReader(src)), &recorder{})
		for i := 0; i <= len(src)+1; i++ {
			tok := s.Scan()
			if tok.Kind == _EOF {
				return
			}
			if !tok.Span.IsKnown() {
				t.Fatalf("token %v has no position", tok)
			}
		}
		t.Fatalf("scanner did not reach EOF on %q", src)
	})
}
