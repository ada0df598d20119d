package types

import "github.com/you-not-fish/minic/internal/syntax"

// Stack is the scope stack used while checking a program. Its root
// frame holds the predeclared names and the program's top-level
// declarations; every function and nested block pushes a frame on top.
type Stack struct {
	root *Scope
	top  *Scope
}

// NewStack returns a stack holding only the root frame, seeded with
// the predeclared types and intrinsic functions.
func NewStack() *Stack {
	root := NewScope(nil, "root")
	defPredeclared(root)
	return &Stack{root: root, top: root}
}

// OpenScope pushes a new, empty frame.
func (s *Stack) OpenScope(comment string) {
	s.top = NewScope(s.top, comment)
}

// CloseScope pops the innermost frame. The root frame is never popped.
func (s *Stack) CloseScope() {
	if s.top == s.root {
		panic("types: CloseScope on root frame")
	}
	s.top = s.top.parent
}

// Enter binds name to d in the innermost frame. It reports false, and
// leaves the frame unchanged, if name is already bound there.
func (s *Stack) Enter(name string, d syntax.Decl) bool {
	return s.top.Insert(name, d) == nil
}

// Retrieve returns the declaration name resolves to, searching from the
// innermost frame outwards, or nil.
func (s *Stack) Retrieve(name string) syntax.Decl {
	d, _ := s.top.LookupParent(name)
	return d
}

// Root returns the root frame. Frames that have been closed stay
// linked beneath it.
func (s *Stack) Root() *Scope {
	return s.root
}
