package types

import (
	"fmt"
	"sort"
	"strings"

	"github.com/you-not-fish/minic/internal/syntax"
)

// Scope is one frame of the scope stack: the names declared in one
// block, parameter list or the program's top level.
type Scope struct {
	parent   *Scope
	children []*Scope
	elems    map[string]syntax.Decl
	comment  string // debugging comment (e.g., "function main", "block")
}

// NewScope creates a new scope with the given parent.
func NewScope(parent *Scope, comment string) *Scope {
	s := &Scope{
		parent:  parent,
		elems:   make(map[string]syntax.Decl),
		comment: comment,
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

// Lookup returns the declaration of name in this scope only, or nil.
func (s *Scope) Lookup(name string) syntax.Decl {
	return s.elems[name]
}

// LookupParent returns the declaration of name by searching from s
// up through all parent scopes, along with the scope it was found in.
// Returns (nil, nil) if not found.
func (s *Scope) LookupParent(name string) (syntax.Decl, *Scope) {
	for scope := s; scope != nil; scope = scope.parent {
		if d := scope.elems[name]; d != nil {
			return d, scope
		}
	}
	return nil, nil
}

// Insert binds name to d in the scope.
// If name is already bound here, Insert returns the existing declaration
// and leaves the scope unchanged. Otherwise it returns nil.
func (s *Scope) Insert(name string, d syntax.Decl) syntax.Decl {
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = d
	return nil
}

// Names returns the names bound in the scope, sorted.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.elems))
	for name := range s.elems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns the scope and the scopes nested in it, one binding
// per line.
func (s *Scope) String() string {
	var buf strings.Builder
	s.writeTo(&buf, 0)
	return buf.String()
}

func (s *Scope) writeTo(buf *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.comment)
	for _, name := range s.Names() {
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, syntax.DeclString(s.elems[name]))
	}
	for _, child := range s.children {
		child.writeTo(buf, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
