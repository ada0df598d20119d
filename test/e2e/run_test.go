package e2e

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
	"github.com/you-not-fish/minic/internal/types2"
)

var update = flag.Bool("update", false, "rewrite .golden files")

// TestE2E runs end-to-end tests for all .mc files in testdata/.
// Each test:
//  1. Runs the front end: scan → parse → typecheck
//  2. Prints the collected diagnostics in text form
//  3. Compares them against the .golden file
//
// A program without diagnostics must also come out fully typed.
func TestE2E(t *testing.T) {
	testFiles, err := filepath.Glob("testdata/*.mc")
	if err != nil {
		t.Fatal(err)
	}
	if len(testFiles) == 0 {
		t.Fatal("no .mc test files found in testdata/")
	}

	for _, testFile := range testFiles {
		name := strings.TrimSuffix(filepath.Base(testFile), ".mc")
		t.Run(name, func(t *testing.T) {
			runE2ETest(t, testFile)
		})
	}
}

// runE2ETest runs a single end-to-end test.
func runE2ETest(t *testing.T, mcFile string) {
	t.Helper()

	goldenFile := strings.TrimSuffix(mcFile, ".mc") + ".golden"

	var bag diag.Bag
	prog := compile(t, mcFile, &bag)

	var b strings.Builder
	diag.Fprint(&b, bag.Diagnostics(), diag.Options{})
	got := b.String()

	if *update {
		if err := os.WriteFile(goldenFile, []byte(got), 0o644); err != nil {
			t.Fatalf("writing golden file: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(goldenFile)
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}
	if want := string(expected); got != want {
		t.Errorf("diagnostics mismatch:\ngot:\n%swant:\n%s", got, want)
	}

	if prog != nil && !bag.HasErrors() {
		checkTyped(t, prog)
	}
}

// compile runs the front end over mcFile, collecting diagnostics in bag.
// It returns nil if the file did not parse.
func compile(t *testing.T, mcFile string, bag *diag.Bag) *syntax.Program {
	t.Helper()

	f, err := os.Open(mcFile)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	src := syntax.NewSourceReader(f)
	s := syntax.NewScanner(src, bag.Reporter(diag.Lexical))
	prog, err := syntax.NewParser(s, bag.Reporter(diag.Syntax)).Parse()
	if rerr := src.Err(); rerr != nil {
		t.Fatalf("read: %v", rerr)
	}
	if err != nil {
		return nil
	}

	types2.Check(prog, &types2.Config{Reporter: bag.Reporter(diag.Semantic)}, nil)
	return prog
}

// checkTyped verifies that every value-producing expression of a
// well-typed program has a proper type.
func checkTyped(t *testing.T, prog *syntax.Program) {
	t.Helper()

	syntax.Inspect(prog, func(n syntax.Node) bool {
		switch e := n.(type) {
		case *syntax.BasicLit, *syntax.VarExpr, *syntax.IndexExpr,
			*syntax.BinaryExpr, *syntax.UnaryExpr, *syntax.CallExpr:
			typ := e.(syntax.Expr).Type()
			if typ == nil || types.IsError(typ) {
				t.Errorf("%s: %T has type %v", n.Pos(), n, typ)
			}
		}
		return true
	})
}
