// Package diag collects the diagnostics reported by the compiler phases
// and writes them out for the user.
package diag

import (
	"strings"

	"github.com/you-not-fish/minic/internal/syntax"
)

// Stage identifies the phase that reported a diagnostic.
type Stage uint8

const (
	Lexical Stage = iota
	Syntax
	Semantic

	numStages
)

var stageNames = [...]string{
	Lexical:  "lexical",
	Syntax:   "syntax",
	Semantic: "semantic",
}

func (s Stage) String() string {
	if s < numStages {
		return stageNames[s]
	}
	return "unknown"
}

// Diagnostic is one reported error.
type Diagnostic struct {
	Stage    Stage
	Span     syntax.Span
	Template string // message template as reported
	Arg      string // text substituted for % in Template
	Msg      string // final message
}

// Bag collects diagnostics in the order they are reported.
type Bag struct {
	diags  []Diagnostic
	counts [numStages]int
}

// Add appends a diagnostic for stage.
func (b *Bag) Add(stage Stage, template, arg string, span syntax.Span) {
	b.diags = append(b.diags, Diagnostic{
		Stage:    stage,
		Span:     span,
		Template: template,
		Arg:      arg,
		Msg:      strings.Replace(template, "%", arg, 1),
	})
	b.counts[stage]++
}

// Reporter returns a syntax.Reporter that adds to b under stage.
func (b *Bag) Reporter(stage Stage) syntax.Reporter {
	return &reporter{bag: b, stage: stage}
}

type reporter struct {
	bag   *Bag
	stage Stage
}

func (r *reporter) ReportError(template, arg string, span syntax.Span) {
	r.bag.Add(r.stage, template, arg, span)
}

// Len returns the number of diagnostics.
func (b *Bag) Len() int { return len(b.diags) }

// HasErrors reports whether anything was reported.
func (b *Bag) HasErrors() bool { return len(b.diags) > 0 }

// Count returns the number of diagnostics reported by stage.
func (b *Bag) Count(stage Stage) int {
	if stage >= numStages {
		return 0
	}
	return b.counts[stage]
}

// Diagnostics returns a copy of the diagnostics in report order.
func (b *Bag) Diagnostics() []Diagnostic {
	result := make([]Diagnostic, len(b.diags))
	copy(result, b.diags)
	return result
}
