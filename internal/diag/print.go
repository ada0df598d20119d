package diag

import (
	"encoding/json"
	"fmt"
	"io"
)

// ANSI escape sequences used for colored output.
const (
	reset = "\033[0m"
	bold  = "\033[1m"
	red   = "\033[31m"
)

// Options controls the text format.
type Options struct {
	Filename string // prefixed to each position if not empty
	Color    bool   // use ANSI colors
}

// Fprint writes one line per diagnostic:
//
//	file:line:col: stage error: message
func Fprint(w io.Writer, diags []Diagnostic, opts Options) {
	for _, d := range diags {
		pos := d.Span.Start.String()
		if opts.Filename != "" {
			pos = opts.Filename + ":" + pos
		}
		label := d.Stage.String() + " error:"
		if opts.Color {
			pos = bold + pos + reset
			label = bold + red + label + reset
		}
		fmt.Fprintf(w, "%s: %s %s\n", pos, label, d.Msg)
	}
}

// FprintSummary writes the closing line for n diagnostics, if any.
func FprintSummary(w io.Writer, n int, color bool) {
	if n == 0 {
		return
	}
	msg := fmt.Sprintf("%d error(s)", n)
	if color {
		msg = red + msg + reset
	}
	fmt.Fprintln(w, msg)
}

// FprintJSON writes the diagnostics as a JSON array.
func FprintJSON(w io.Writer, diags []Diagnostic) error {
	list := make([]map[string]interface{}, 0, len(diags))
	for _, d := range diags {
		list = append(list, map[string]interface{}{
			"stage":   d.Stage.String(),
			"span":    d.Span.String(),
			"line":    d.Span.Start.Line(),
			"col":     d.Span.Start.Col(),
			"message": d.Msg,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
