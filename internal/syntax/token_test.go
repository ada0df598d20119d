package syntax

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{_EOF, "EOF"},
		{_Error, "ERROR"},
		{_IntLit, "INTLITERAL"},
		{_FloatLit, "FLOATLITERAL"},
		{_BoolLit, "BOOLLITERAL"},
		{_StringLit, "STRINGLITERAL"},
		{_ID, "ID"},
		{_Int, "int"},
		{_While, "while"},
		{_Assign, "="},
		{_Eq, "=="},
		{_NotEq, "!="},
		{_LessEq, "<="},
		{_And, "&&"},
		{_Or, "||"},
		{_Not, "!"},
		{_Lbrace, "{"},
		{_Semi, ";"},
		{kindCount + 3, "kind(41)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("Kind.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestKindNamesComplete(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestKindClassification(t *testing.T) {
	for k := Kind(0); k < kindCount; k++ {
		n := 0
		for _, is := range []bool{k.IsKeyword(), k.IsLiteral(), k.IsOperator(), k.IsSeparator()} {
			if is {
				n++
			}
		}
		switch k {
		case _EOF, _Error, _ID:
			if n != 0 {
				t.Errorf("%s should not be classified, got %d classes", k, n)
			}
		default:
			if n != 1 {
				t.Errorf("%s should be in exactly one class, got %d", k, n)
			}
		}
	}
}

func TestIsTypeSpec(t *testing.T) {
	for _, k := range []Kind{_Void, _Int, _Bool, _Float} {
		if !k.IsTypeSpec() {
			t.Errorf("%s should be a type specifier", k)
		}
	}
	for _, k := range []Kind{_ID, _While, _StringLit, _Return} {
		if k.IsTypeSpec() {
			t.Errorf("%s should not be a type specifier", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"int", _Int},
		{"float", _Float},
		{"bool", _Bool},
		{"void", _Void},
		{"if", _If},
		{"else", _Else},
		{"while", _While},
		{"for", _For},
		{"return", _Return},
		{"true", _BoolLit},
		{"false", _BoolLit},
		{"string", _ID},
		{"main", _ID},
		{"Int", _ID},
		{"getInt", _ID},
	}

	for _, tt := range tests {
		t.Run(tt.ident, func(t *testing.T) {
			if got := LookupKeyword(tt.ident); got != tt.want {
				t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
			}
		})
	}
}

func TestLookupSymbol(t *testing.T) {
	for lexeme, want := range symbols {
		if got := LookupSymbol(lexeme); got != want {
			t.Errorf("LookupSymbol(%q) = %v, want %v", lexeme, got, want)
		}
		if got := want.String(); got != lexeme {
			t.Errorf("%v spelled %q, want %q", want, got, lexeme)
		}
	}
	for _, lexeme := range []string{"&", "|", "%", ":=", ""} {
		if got := LookupSymbol(lexeme); got != _Error {
			t.Errorf("LookupSymbol(%q) = %v, want ERROR", lexeme, got)
		}
	}
}
