package syntax

import (
	"bufio"
	"io"
)

// CharReader supplies source characters one at a time.
// ReadChar returns 0 at end of input and keeps returning 0 on every
// later call.
type CharReader interface {
	ReadChar() rune
}

// SourceReader is a CharReader over an io.Reader.
type SourceReader struct {
	r    *bufio.Reader
	done bool
	err  error
}

// NewSourceReader returns a CharReader reading UTF-8 text from r.
func NewSourceReader(r io.Reader) *SourceReader {
	return &SourceReader{r: bufio.NewReader(r)}
}

// ReadChar implements CharReader.
func (s *SourceReader) ReadChar() rune {
	if s.done {
		return 0
	}
	ch, _, err := s.r.ReadRune()
	if err != nil {
		s.done = true
		if err != io.EOF {
			s.err = err
		}
		return 0
	}
	if ch == 0 {
		// An embedded NUL is indistinguishable from end of input.
		s.done = true
	}
	return ch
}

// Err returns the first read error other than io.EOF.
func (s *SourceReader) Err() error {
	return s.err
}

// char is a source character together with its position.
type char struct {
	ch  rune
	pos Pos
}

// source is a character reader with position tracking and a push-back
// queue. Characters pushed back with unread are delivered again, with
// their original positions, before anything new is read from in.
type source struct {
	in      CharReader
	pending []char

	ch  rune // current character, 0 at end of input
	pos Pos  // position of ch

	// position of the next character read from in
	line uint32
	col  uint32
}

// newSource creates a source positioned on the first character of in.
func newSource(in CharReader) *source {
	s := &source{in: in, line: 1, col: 1}
	s.nextch()
	return s
}

// nextch advances to the next character.
// At end of input ch stays 0 and pos stays on the end position.
func (s *source) nextch() {
	if len(s.pending) > 0 {
		c := s.pending[0]
		s.pending = s.pending[1:]
		s.ch, s.pos = c.ch, c.pos
		return
	}

	s.ch = s.in.ReadChar()
	s.pos = NewPos(s.line, s.col)
	switch s.ch {
	case 0:
	case '\n':
		s.line++
		s.col = 1
	default:
		s.col++
	}
}

// current returns the current character and its position.
func (s *source) current() char {
	return char{ch: s.ch, pos: s.pos}
}

// unread pushes cs back in front of the current character.
// Afterwards cs[0] is the current character.
func (s *source) unread(cs []char) {
	if len(cs) == 0 {
		return
	}
	q := make([]char, 0, len(cs)+len(s.pending))
	q = append(q, cs[1:]...)
	q = append(q, s.current())
	q = append(q, s.pending...)
	s.pending = q
	s.ch, s.pos = cs[0].ch, cs[0].pos
}

// Character classification helpers

// isLetter reports whether r is a letter (a-z, A-Z, or _).
func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

// isDigit reports whether r is a decimal digit (0-9).
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isExp reports whether r starts an exponent.
func isExp(r rune) bool {
	return r == 'e' || r == 'E'
}

// isWhitespace reports whether r is a whitespace character.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\f' || r == '\n'
}

// isSeparator reports whether r is a single-character separator.
func isSeparator(r rune) bool {
	switch r {
	case '(', ')', '{', '}', '[', ']', ',', ';':
		return true
	}
	return false
}
