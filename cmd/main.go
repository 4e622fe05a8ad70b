package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/sync/errgroup"

	"github.com/kite-lang/kite/kite"
	"github.com/kite-lang/kite/kite/ast"
	"github.com/kite-lang/kite/kite/ir"
	"github.com/kite-lang/kite/kite/token"
	"github.com/kite-lang/kite/util"
)

const (
	historyFile = ".kite_history"
	promptMain  = "kite> "
	promptCont  = "...   "
	banner      = "kite REPL, Ctrl+C to cancel input, Ctrl+D to exit. Type :help for commands."
	helpText    = `REPL commands:
  :help            Show this help
  :quit / :exit    Exit the REPL
  :load <file>     Check a file and add it to the session
  :show            Print the session source
  :reset           Start a new empty session
`
)

// What to print for a checked program.
type output int

const (
	outNone output = iota
	outAST
	outIR
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kite: ")

	var (
		evalStr string
		showAST bool
		showIR  bool
	)

	flag.StringVar(&evalStr, "e", "", "Check the given snippet and exit")
	flag.BoolVar(&showAST, "ast", false, "Print the typed syntax tree")
	flag.BoolVar(&showIR, "ir", false, "Print the generated stack IR")
	flag.Parse()

	out := outNone
	if showAST {
		out = outAST
	}
	if showIR {
		out = outIR
	}

	args := flag.Args()

	switch {
	case evalStr != "":
		os.Exit(runEvalString(evalStr, out))
	case len(args) > 0:
		os.Exit(runFiles(args, out))
	default:
		os.Exit(runREPL(out))
	}
}

// Checks file and returns the printed result.
func compile(file *token.File, out output) (string, error) {
	if out == outIR {
		res, err := kite.GenerateIR(file)
		if err != nil {
			return "", err
		}
		return ir.IrFmt(res.Instructions), nil
	}

	prog, err := kite.Check(file)
	if err != nil {
		return "", err
	}

	if out == outAST {
		return typedString(prog.Tree), nil
	}
	return "", nil
}

func typedString(tree *ast.Block) string {
	d := ast.NewDebugVisitor(tree)
	d.Types = true
	return d.String()
}

func runEvalString(code string, out output) int {
	s, err := compile(token.NewFile("<eval>", code), out)
	if err != nil {
		fmt.Fprint(os.Stderr, err)
		return 1
	}

	fmt.Print(s)
	return 0
}

// Files are checked concurrently, results are printed in argument order.
func runFiles(paths []string, out output) int {
	results := make([]string, len(paths))
	errs := make([]error, len(paths))

	var (
		g      errgroup.Group
		failed util.ErrorList
	)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			results[i], errs[i] = compile(token.NewFile(path, nil), out)
			failed.Add(errs[i])
			return nil
		})
	}
	g.Wait()

	for i, path := range paths {
		if errs[i] != nil {
			fmt.Fprint(os.Stderr, errs[i])
			log.Print(summary(path, errs[i]))
			continue
		}

		if len(paths) > 1 && results[i] != "" {
			fmt.Printf("// %s\n", path)
		}
		fmt.Print(results[i])
	}

	if failed.Len() > 0 {
		return 1
	}
	return 0
}

func summary(path string, err error) string {
	var kerr *kite.Error
	if errors.As(err, &kerr) {
		return kerr.Summary()
	}
	return fmt.Sprintf("%s: %v", path, err)
}

// ---- REPL ------------------------------------------------------------------

// A REPL session is the source of every accepted entry so far. Each entry is
// checked together with the session so it can use earlier declarations.
type session struct {
	src   string
	stmts int
	out   output
}

// Checks entry in the session and returns the printed result for the new
// statements. The entry is only added if it checks without errors.
func (s *session) eval(entry string) (string, error) {
	src := entry
	if s.src != "" {
		src = s.src + "\n" + entry
	}

	file := token.NewFile("<repl>", src)
	prog, err := kite.Check(file)
	if err != nil {
		return "", err
	}

	added := &ast.Block{Stmts: prog.Tree.Stmts[s.stmts:]}
	s.src, s.stmts = src, len(prog.Tree.Stmts)

	switch s.out {
	case outIR:
		ins, err := ir.NewBuilder(prog.Tree, prog.Table).Build()
		if err != nil {
			return "", err
		}
		return ir.IrFmt(ins), nil
	default:
		return typedString(added), nil
	}
}

func runREPL(out output) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	sess := &session{out: out}

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			if done := handleReplCommand(sess, ln, code); done {
				break
			}
			continue
		}

		s, err := sess.eval(code)
		if err != nil {
			fmt.Print(err)
			continue
		}

		fmt.Print(s)
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	} else {
		log.Printf("could not save history: %v", err)
	}
	return 0
}

func handleReplCommand(sess *session, ln *liner.State, line string) (exit bool) {
	fields := strings.Fields(line)

	switch fields[0] {
	case ":quit", ":exit":
		return true

	case ":help":
		fmt.Print(helpText)

	case ":reset":
		*sess = session{out: sess.out}
		fmt.Println("session reset")

	case ":show":
		fmt.Println(sess.src)

	case ":load":
		if len(fields) < 2 {
			fmt.Println("usage: :load <file>")
			return false
		}

		src, err := os.ReadFile(fields[1])
		if err != nil {
			fmt.Printf("cannot read %s: %v\n", fields[1], err)
			return false
		}

		s, err := sess.eval(string(src))
		if err != nil {
			fmt.Print(err)
			return false
		}
		fmt.Print(s)
		ln.AppendHistory(fmt.Sprintf(":load %s", fields[1]))

	default:
		fmt.Printf("unknown command %s, type :help for commands\n", fields[0])
	}

	return false
}

// readByParseProbe reads lines until the buffer no longer ends inside an
// open block.
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
			// Ctrl+C aborts the current input
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if src := b.String(); !kite.Incomplete(src) {
			return src, true
		}
	}
}
