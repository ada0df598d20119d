package syntax

import "strings"

// Reporter receives diagnostics. The template holds at most one '%'
// which stands for arg.
type Reporter interface {
	ReportError(template, arg string, span Span)
}

// Lexical error templates.
const (
	errIllegalChar       = "illegal character %"
	errIllegalEscape     = "illegal escape sequence"
	errUnterminatedStr   = "unterminated string literal"
	errUnterminatedBlock = "unterminated multi-line comment"
)

// state is a state of the scanner's finite automaton.
type state uint8

const (
	stStuck state = iota // no transition

	stInit
	stSpace

	// identifiers and numbers
	stIdent
	stInt
	stDot       // "." with no digits yet
	stFrac      // digits "." digits*
	stExp       // mantissa followed by e or E
	stExpSign   // exponent sign
	stExpDigits // complete exponent

	// operators
	stArith  // + - *
	stDiv    // /
	stAssign // =
	stEq     // ==
	stNot    // !
	stNotEq  // !=
	stRel    // < >
	stRelEq  // <= >=
	stAmp    // &
	stAnd    // &&
	stBar    // |
	stOr     // ||
	stSep    // ( ) { } [ ] , ;

	// comments
	stLineComment
	stBlockComment
	stBlockStar
	stBlockEnd

	// strings
	stString
	stEscape
	stStringEnd

	stIllegal
)

// accepting reports whether the automaton may stop in st.
func (st state) accepting() bool {
	switch st {
	case stSpace, stIdent, stInt, stFrac, stExpDigits,
		stArith, stDiv, stAssign, stEq, stNot, stNotEq, stRel, stRelEq,
		stAnd, stOr, stSep,
		stLineComment, stBlockEnd, stStringEnd, stIllegal:
		return true
	}
	return false
}

// skipped reports whether a lexeme accepted in st is dropped.
func (st state) skipped() bool {
	return st == stSpace || st == stLineComment || st == stBlockEnd
}

// next returns the transition from st on ch, or stStuck.
func next(st state, ch rune) state {
	switch st {
	case stInit:
		switch {
		case isLetter(ch):
			return stIdent
		case isDigit(ch):
			return stInt
		case isWhitespace(ch):
			return stSpace
		case isSeparator(ch):
			return stSep
		}
		switch ch {
		case '.':
			return stDot
		case '+', '-', '*':
			return stArith
		case '/':
			return stDiv
		case '=':
			return stAssign
		case '!':
			return stNot
		case '<', '>':
			return stRel
		case '&':
			return stAmp
		case '|':
			return stBar
		case '"':
			return stString
		}
		return stIllegal

	case stSpace:
		if isWhitespace(ch) {
			return stSpace
		}

	case stIdent:
		if isLetter(ch) || isDigit(ch) {
			return stIdent
		}

	case stInt:
		switch {
		case isDigit(ch):
			return stInt
		case ch == '.':
			return stFrac
		case isExp(ch):
			return stExp
		}

	case stDot:
		if isDigit(ch) {
			return stFrac
		}

	case stFrac:
		switch {
		case isDigit(ch):
			return stFrac
		case isExp(ch):
			return stExp
		}

	case stExp:
		switch {
		case ch == '+' || ch == '-':
			return stExpSign
		case isDigit(ch):
			return stExpDigits
		}

	case stExpSign, stExpDigits:
		if isDigit(ch) {
			return stExpDigits
		}

	case stDiv:
		switch ch {
		case '/':
			return stLineComment
		case '*':
			return stBlockComment
		}

	case stAssign:
		if ch == '=' {
			return stEq
		}

	case stNot:
		if ch == '=' {
			return stNotEq
		}

	case stRel:
		if ch == '=' {
			return stRelEq
		}

	case stAmp:
		if ch == '&' {
			return stAnd
		}

	case stBar:
		if ch == '|' {
			return stOr
		}

	case stLineComment:
		if ch != '\n' && ch != 0 {
			return stLineComment
		}

	case stBlockComment:
		switch ch {
		case 0:
		case '*':
			return stBlockStar
		default:
			return stBlockComment
		}

	case stBlockStar:
		switch ch {
		case 0:
		case '/':
			return stBlockEnd
		case '*':
			return stBlockStar
		default:
			return stBlockComment
		}

	case stString:
		switch ch {
		case 0, '\n':
		case '"':
			return stStringEnd
		case '\\':
			return stEscape
		default:
			return stString
		}

	case stEscape:
		if ch != 0 && ch != '\n' {
			// only \n is legal; others are flagged by the scanner
			return stString
		}
	}
	return stStuck
}

// Scanner tokenizes MiniC source text.
//
// Each call to Scan runs the automaton from the current character,
// remembering the last accepting state it passed through. When the
// automaton gets stuck, every character consumed after that state is
// pushed back and scanned again by the next call.
type Scanner struct {
	*source
	rep Reporter

	buf []char // characters consumed by the current run
}

// NewScanner returns a Scanner reading from r. Lexical errors go to rep,
// which may be nil.
func NewScanner(r CharReader, rep Reporter) *Scanner {
	return &Scanner{source: newSource(r), rep: rep}
}

// Scan returns the next token. At end of input it returns EOF, and
// keeps returning EOF on later calls.
func (s *Scanner) Scan() Token {
	for {
		if s.ch == 0 {
			return Token{Kind: _EOF, Span: MakeSpan(s.pos, s.pos)}
		}
		if tok, ok := s.scan(); ok {
			return tok
		}
	}
}

// scan runs the automaton once. It reports false when the accepted
// lexeme is whitespace or a comment.
func (s *Scanner) scan() (Token, bool) {
	s.buf = s.buf[:0]
	st := stInit
	last, lastLen := stStuck, 0

	for {
		nst := next(st, s.ch)
		if nst == stStuck {
			break
		}
		if st == stEscape && s.ch != 'n' {
			backslash := s.buf[len(s.buf)-1]
			s.report(errIllegalEscape, "", MakeSpan(backslash.pos, s.pos))
		}
		s.buf = append(s.buf, s.current())
		s.nextch()
		st = nst
		if st.accepting() {
			last, lastLen = st, len(s.buf)
		}
		if st == stSep || st == stArith || st == stEq || st == stNotEq ||
			st == stRelEq || st == stAnd || st == stOr ||
			st == stBlockEnd || st == stStringEnd || st == stIllegal {
			// final states: nothing can follow
			break
		}
	}

	switch st {
	case stBlockComment, stBlockStar:
		// end of input inside a comment
		s.report(errUnterminatedBlock, "", s.bufSpan(len(s.buf)))
		return Token{}, false
	case stString, stEscape:
		// newline or end of input inside a string
		span := s.bufSpan(len(s.buf))
		s.report(errUnterminatedStr, "", span)
		return Token{Kind: _StringLit, Lexeme: s.text(1, len(s.buf)), Span: span}, true
	}

	if lastLen == 0 {
		// never accepted; at most one character was consumed
		span := s.bufSpan(len(s.buf))
		lexeme := s.text(0, len(s.buf))
		s.report(errIllegalChar, lexeme, span)
		return Token{Kind: _Error, Lexeme: lexeme, Span: span}, true
	}

	if lastLen < len(s.buf) {
		s.unread(s.buf[lastLen:])
		s.buf = s.buf[:lastLen]
	}
	if last.skipped() {
		return Token{}, false
	}

	span := s.bufSpan(lastLen)
	lexeme := s.text(0, lastLen)
	switch last {
	case stIdent:
		return Token{Kind: LookupKeyword(lexeme), Lexeme: lexeme, Span: span}, true
	case stInt:
		return Token{Kind: _IntLit, Lexeme: lexeme, Span: span}, true
	case stFrac, stExpDigits:
		return Token{Kind: _FloatLit, Lexeme: lexeme, Span: span}, true
	case stStringEnd:
		return Token{Kind: _StringLit, Lexeme: s.text(1, lastLen-1), Span: span}, true
	case stIllegal:
		s.report(errIllegalChar, lexeme, span)
		return Token{Kind: _Error, Lexeme: lexeme, Span: span}, true
	}
	return Token{Kind: LookupSymbol(lexeme), Lexeme: lexeme, Span: span}, true
}

// text returns the characters buf[i:j] as a string.
func (s *Scanner) text(i, j int) string {
	var b strings.Builder
	for _, c := range s.buf[i:j] {
		b.WriteRune(c.ch)
	}
	return b.String()
}

// bufSpan returns the span of the first n consumed characters.
func (s *Scanner) bufSpan(n int) Span {
	if n == 0 {
		return MakeSpan(s.pos, s.pos)
	}
	return MakeSpan(s.buf[0].pos, s.buf[n-1].pos)
}

func (s *Scanner) report(template, arg string, span Span) {
	if s.rep != nil {
		s.rep.ReportError(template, arg, span)
	}
}
