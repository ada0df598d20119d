package syntax

import "fmt"

// Pos represents a position in a source file.
// The zero value is an unknown position; column 0 marks a position
// that has not been set yet.
type Pos struct {
	line uint32 // 1-based line number
	col  uint32 // 1-based column number
}

// NewPos creates a new Pos with the given line and column.
// Line and column numbers are 1-based.
func NewPos(line, col uint32) Pos {
	return Pos{line: line, col: col}
}

// String returns the position in the format "line:col".
func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.line, p.col)
}

// IsKnown reports whether the position has been set.
func (p Pos) IsKnown() bool {
	return p.line > 0 && p.col > 0
}

// Line returns the 1-based line number.
func (p Pos) Line() uint32 {
	return p.line
}

// Col returns the 1-based column number.
func (p Pos) Col() uint32 {
	return p.col
}

// Before reports whether p comes strictly before q.
func (p Pos) Before(q Pos) bool {
	return p.line < q.line || p.line == q.line && p.col < q.col
}

// Span is a range of source text. Start is the position of the first
// character and End the position of the last character (inclusive).
type Span struct {
	Start Pos
	End   Pos
}

// MakeSpan returns the span from start to end.
func MakeSpan(start, end Pos) Span {
	return Span{Start: start, End: end}
}

// StartLine returns the line of the first character.
func (s Span) StartLine() uint32 { return s.Start.line }

// StartCol returns the column of the first character.
func (s Span) StartCol() uint32 { return s.Start.col }

// EndLine returns the line of the last character.
func (s Span) EndLine() uint32 { return s.End.line }

// EndCol returns the column of the last character.
func (s Span) EndCol() uint32 { return s.End.col }

// IsKnown reports whether the span has a known start.
func (s Span) IsKnown() bool {
	return s.Start.IsKnown()
}

// String formats the span as "line:col" when it starts and ends at the same
// position, "line:col-col" on one line and "line:col-line:col" otherwise.
func (s Span) String() string {
	switch {
	case s.Start == s.End || !s.End.IsKnown():
		return s.Start.String()
	case s.Start.line == s.End.line:
		return fmt.Sprintf("%s-%d", s.Start, s.End.col)
	}
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}
