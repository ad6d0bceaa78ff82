// Package repl implements the interactive read-eval-print loop: a
// banner, a `>> ` prompt, line-by-line parse-and-evaluate with a
// persistent Evaluator across lines, and `exit`/`quit`/EOF as the only
// ways out.
//
// The Repl-struct-plus-readline-plus-colour-roles shape pairs a per-line
// evaluate function with a persistent evaluator/history across the loop,
// rendering diagnostics.Error values rather than raw strings. A Go panic
// during evaluation is not recovered; it ends the session.
package repl

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/Sosokker/pasathai/diagnostics"
	"github.com/Sosokker/pasathai/eval"
	"github.com/Sosokker/pasathai/lexer"
	"github.com/Sosokker/pasathai/object"
	"github.com/Sosokker/pasathai/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
	redColor    = color.New(color.FgRed)
)

const (
	banner = `ภาษาไทย — pasathai`
	line   = "----------------------------------------"
	prompt = ">> "
)

// Repl is one interactive session: a persistent Evaluator survives
// across lines so `ให้` bindings and function definitions from earlier
// input remain visible to later input.
type Repl struct {
	Version  string
	renderer *diagnostics.Renderer
}

// New builds a Repl reporting the given version string in its banner.
func New(version string) *Repl {
	return &Repl{Version: version, renderer: diagnostics.NewRenderer()}
}

// printBanner writes the startup banner to w.
func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "version %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "พิมพ์โค้ดแล้วกด Enter")
	cyanColor.Fprintln(w, "พิมพ์ exit หรือ quit เพื่อออก")
	cyanColor.Fprintln(w, "พิมพ์ :gcstats เพื่อดูสถิติ GC")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop until the user types exit/quit or sends EOF.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New(w)

	for {
		inputLine, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "ลาก่อน\n")
			return
		}

		inputLine = strings.TrimSpace(inputLine)
		if inputLine == "" {
			continue
		}
		if inputLine == "exit" || inputLine == "quit" {
			io.WriteString(w, "ลาก่อน\n")
			return
		}
		if inputLine == ":gcstats" {
			r.printGCStats(w, evaluator)
			continue
		}

		rl.SaveHistory(inputLine)
		r.evalLine(w, inputLine, evaluator)
	}
}

// printGCStats reports the persistent evaluator's collector totals, a
// REPL-only introspection line with no language-level counterpart.
func (r *Repl) printGCStats(w io.Writer, evaluator *eval.Evaluator) {
	stats := evaluator.GC.Stats()
	cyanColor.Fprintf(w, "gc: allocated=%d freed=%d collections=%d live=%d\n",
		stats.Allocated, stats.Freed, stats.Collections, evaluator.GC.Live())
}

// evalLine parses and evaluates one line against evaluator's persistent
// global environment, rendering parse diagnostics or the evaluated
// result's human-readable form.
func (r *Repl) evalLine(w io.Writer, src string, evaluator *eval.Evaluator) {
	l := lexer.New(src, "")
	p := parser.New(l, src, "")
	program := p.ParseProgram()

	if p.Errors.HasErrors() {
		r.renderer.RenderAll(w, &p.Errors)
		return
	}

	result := evaluator.Eval(program, evaluator.Global)
	if result == nil || result == evaluator.Null {
		return
	}
	if errVal, ok := result.(*object.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errVal.Inspect())
		return
	}
	yellowColor.Fprintf(w, "%s\n", result.Inspect())
}
