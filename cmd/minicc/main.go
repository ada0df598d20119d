// Package main implements the MiniC compiler front end.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types2"
)

// Compiler flags
var (
	emitTokens   = flag.Bool("emit-tokens", false, "Output token stream")
	emitAST      = flag.Bool("emit-ast", false, "Output AST")
	astFormat    = flag.String("ast-format", "text", "AST output format (text or json)")
	emitTypedAST = flag.Bool("emit-typed-ast", false, "Output typed AST")
	emitScopes   = flag.Bool("emit-scopes", false, "Output scope tree after type checking")
	diagFormat   = flag.String("diag-format", "text", "Diagnostic output format (text or json)")
	noColor      = flag.Bool("no-color", false, "Disable colored diagnostics")
	version      = flag.Bool("version", false, "Print version")
	repl         = flag.Bool("repl", false, "Start an interactive session")
)

// Version information
const Version = "0.1.0-dev"

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "MiniC Compiler %s\n\n", Version)
		fmt.Fprintf(os.Stderr, "Usage: minicc [options] <file.mc>\n")
		fmt.Fprintf(os.Stderr, "       minicc -repl\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Printf("minicc version %s\n", Version)
		fmt.Printf("go version %s\n", runtime.Version())
		os.Exit(0)
	}

	if *repl {
		os.Exit(runRepl())
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "error: no input file")
		fmt.Fprintln(os.Stderr, "usage: minicc [options] <file.mc>")
		os.Exit(1)
	}

	filename := args[0]

	// Handle -emit-tokens
	if *emitTokens {
		os.Exit(runEmitTokens(filename))
	}

	// Handle -emit-ast
	if *emitAST {
		os.Exit(runEmitAST(filename))
	}

	// Handle -emit-typed-ast
	if *emitTypedAST {
		os.Exit(runEmitTypedAST(filename))
	}

	// Handle -emit-scopes
	if *emitScopes {
		os.Exit(runEmitScopes(filename))
	}

	os.Exit(runCheck(filename))
}

// parse scans and parses r. Lexical and syntax errors go to bag; a
// syntax error is also returned, as is any read error.
func parse(r io.Reader, bag *diag.Bag) (*syntax.Program, error) {
	src := syntax.NewSourceReader(r)
	s := syntax.NewScanner(src, bag.Reporter(diag.Lexical))
	prog, err := syntax.NewParser(s, bag.Reporter(diag.Syntax)).Parse()
	if rerr := src.Err(); rerr != nil {
		return nil, rerr
	}
	return prog, err
}

// parseFile opens and parses filename.
func parseFile(filename string, bag *diag.Bag) (*syntax.Program, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parse(f, bag)
}

// check runs the front end over filename, filling in info if it is not
// nil. It returns nil and false if the file could not be read or did
// not parse.
func check(filename string, bag *diag.Bag, info *types2.Info) (*syntax.Program, bool) {
	prog, err := parseFile(filename, bag)
	if err != nil {
		var serr *syntax.SyntaxError
		if !errors.As(err, &serr) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return nil, false
	}
	types2.Check(prog, &types2.Config{Reporter: bag.Reporter(diag.Semantic)}, info)
	return prog, true
}

// printDiagnostics writes the collected diagnostics to stderr in the
// selected format.
func printDiagnostics(filename string, bag *diag.Bag) {
	if !bag.HasErrors() {
		return
	}
	if *diagFormat == "json" {
		if err := diag.FprintJSON(os.Stderr, bag.Diagnostics()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		return
	}
	color := useColor()
	diag.Fprint(os.Stderr, bag.Diagnostics(), diag.Options{Filename: filename, Color: color})
	diag.FprintSummary(os.Stderr, bag.Len(), color)
}

// useColor reports whether diagnostics should be colored: only on a
// terminal, and never with -no-color.
func useColor() bool {
	if *noColor {
		return false
	}
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// runCheck runs the whole front end and reports any diagnostics.
func runCheck(filename string) int {
	var bag diag.Bag
	_, ok := check(filename, &bag, nil)
	printDiagnostics(filename, &bag)
	if !ok || bag.HasErrors() {
		return 1
	}
	return 0
}

// runEmitTokens scans the input file and prints all tokens with positions.
func runEmitTokens(filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer f.Close()

	var bag diag.Bag
	src := syntax.NewSourceReader(f)
	s := syntax.NewScanner(src, bag.Reporter(diag.Lexical))

	// Print header
	fmt.Printf("%-20s %-14s %s\n", "POSITION", "TOKEN", "LEXEME")
	fmt.Printf("%-20s %-14s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 14), strings.Repeat("-", 20))

	for {
		tok := s.Scan()
		fmt.Printf("%-20s %-14s %s\n", tok.Span, tok.Kind, formatLexeme(tok.Lexeme))
		if tok.Kind.IsEOF() {
			break
		}
	}

	if err := src.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	// Print any errors
	if bag.Count(diag.Lexical) > 0 {
		printDiagnostics(filename, &bag)
		return 1
	}
	return 0
}

// formatLexeme formats a lexeme for display, escaping special characters.
func formatLexeme(lex string) string {
	if lex == "" {
		return "\"\""
	}

	var b strings.Builder
	b.WriteRune('"')
	for _, r := range lex {
		switch r {
		case '\n':
			b.WriteString("\\n")
		case '\t':
			b.WriteString("\\t")
		case '\r':
			b.WriteString("\\r")
		case '"':
			b.WriteString("\\\"")
		default:
			b.WriteRune(r)
		}
	}
	b.WriteRune('"')
	return b.String()
}

// runEmitAST parses the input file and outputs the AST.
func runEmitAST(filename string) int {
	var bag diag.Bag
	prog, err := parseFile(filename, &bag)
	if err != nil {
		var serr *syntax.SyntaxError
		if !errors.As(err, &serr) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		printDiagnostics(filename, &bag)
		return 1
	}

	// Print errors first
	printDiagnostics(filename, &bag)

	if err := printAST(prog, false); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if bag.HasErrors() {
		return 1
	}
	return 0
}

// runEmitTypedAST parses, type-checks, and outputs the typed AST.
func runEmitTypedAST(filename string) int {
	var bag diag.Bag
	prog, ok := check(filename, &bag, nil)
	printDiagnostics(filename, &bag)
	if !ok {
		return 1
	}

	if err := printAST(prog, true); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if bag.HasErrors() {
		return 1
	}
	return 0
}

// printAST writes prog to stdout in the format chosen by -ast-format.
func printAST(prog *syntax.Program, typed bool) error {
	switch *astFormat {
	case "json":
		return syntax.FprintJSON(os.Stdout, prog)
	case "text":
		if typed {
			syntax.FprintTyped(os.Stdout, prog)
		} else {
			syntax.Fprint(os.Stdout, prog)
		}
		return nil
	}
	return fmt.Errorf("unknown AST format %q", *astFormat)
}

// runEmitScopes type-checks the input file and prints its scope tree.
func runEmitScopes(filename string) int {
	var bag diag.Bag
	var info types2.Info
	_, ok := check(filename, &bag, &info)
	printDiagnostics(filename, &bag)
	if !ok {
		return 1
	}

	fmt.Print(info.Scope)

	if bag.HasErrors() {
		return 1
	}
	return 0
}
