package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/you-not-fish/minic/internal/diag"
	"github.com/you-not-fish/minic/internal/syntax"
	"github.com/you-not-fish/minic/internal/types"
	"github.com/you-not-fish/minic/internal/types2"
)

const (
	historyFile = ".minicc_history"
	promptMain  = "minic> "
	promptCont  = "  ...> "
	banner      = "MiniC " + Version + " (:help for commands)"
)

const replHelp = `Enter MiniC declarations. Each entry is checked together with
the declarations accepted so far; an entry with errors is discarded.
  :ast     print the typed AST of the session
  :scopes  print the scopes of the session
  :list    print the session source
  :reset   forget all declarations
  :quit    leave`

// session holds the declarations accepted so far.
type session struct {
	src   strings.Builder
	lines int
	color bool // color diagnostics
}

// eval checks entry appended to the session source. It writes the
// typed declarations of entry to out, or its diagnostics to errOut,
// and keeps entry only if it is error free.
func (s *session) eval(entry string, out, errOut io.Writer) bool {
	full := s.src.String() + entry + "\n"
	first := uint32(s.lines + 1)

	var bag diag.Bag
	prog, err := parse(strings.NewReader(full), &bag)
	if err == nil {
		types2.Check(prog, &types2.Config{Reporter: bag.Reporter(diag.Semantic)}, nil)
	}

	var fresh []diag.Diagnostic
	for _, d := range bag.Diagnostics() {
		// main is only required of a whole program
		if d.Stage == diag.Semantic && strings.HasPrefix(d.Msg, "#0:") {
			continue
		}
		fresh = append(fresh, d)
	}
	if len(fresh) > 0 {
		diag.Fprint(errOut, fresh, diag.Options{Color: s.color})
		return false
	}
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return false
	}

	for _, d := range prog.Decls {
		if d.Pos().Line() >= first {
			syntax.FprintTyped(out, d)
		}
	}
	s.src.WriteString(entry + "\n")
	s.lines += strings.Count(entry, "\n") + 1
	return true
}

// check re-checks the accepted session source. It returns nils if the
// source does not parse.
func (s *session) check() (*syntax.Program, *types2.Info) {
	prog, err := parse(strings.NewReader(s.src.String()), new(diag.Bag))
	if err != nil {
		return nil, nil
	}
	info := new(types2.Info)
	types2.Check(prog, nil, info)
	return prog, info
}

// runRepl runs an interactive session on the terminal.
func runRepl() (ret int) {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	stop := onTerminate(func() {
		ln.Close()
		os.Exit(130)
	})
	defer stop()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	s := &session{color: useColor()}
	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		cmd := strings.TrimSpace(code)
		if strings.HasPrefix(cmd, ":") {
			switch strings.ToLower(cmd) {
			case ":quit", ":q":
				return 0
			case ":help":
				fmt.Println(replHelp)
				fmt.Println("Intrinsics: " + strings.Join(types.Intrinsics(), ", "))
			case ":reset":
				s = &session{color: s.color}
			case ":list":
				fmt.Print(s.src.String())
			case ":ast":
				if prog, _ := s.check(); prog != nil {
					syntax.FprintTyped(os.Stdout, prog)
				}
			case ":scopes":
				if _, info := s.check(); info != nil {
					fmt.Print(info.Scope)
				}
			default:
				fmt.Println("unknown command. Type :help for commands.")
			}
			continue
		}

		if cmd == "" {
			continue
		}

		s.eval(code, os.Stdout, os.Stderr)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// onTerminate calls fn on SIGTERM or SIGHUP until stop is called. stop
// returns once the watching goroutine has finished.
func onTerminate(fn func()) (stop func()) {
	sigc := make(chan os.Signal, 1)
	done := make(chan struct{})
	finished := make(chan struct{})
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)

	go func() {
		defer close(finished)
		select {
		case <-sigc:
			fn()
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigc)
		close(done)
		<-finished
	}
}

// readByParseProbe reads lines until they form a complete entry: one
// that parses, or fails before reaching the end of the input.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl-C abandons the entry
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src fails to parse only because it ends
// too early.
func incomplete(src string) bool {
	_, err := parse(strings.NewReader(src), new(diag.Bag))
	var serr *syntax.SyntaxError
	return errors.As(err, &serr) && serr.AtEOF
}
