// Command pasathai is the language's command-line entry point:
//
//	pasathai              interactive REPL
//	pasathai -h|--help    usage text, exit 0
//	pasathai -v|--version version banner, exit 0
//	pasathai <file>       run a file, exit 0 on success, 1 on fatal failure
//
// More than one positional argument is a usage error (exit 1). There is
// no network server mode (see DESIGN.md).
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/Sosokker/pasathai/diagnostics"
	"github.com/Sosokker/pasathai/eval"
	"github.com/Sosokker/pasathai/lexer"
	"github.com/Sosokker/pasathai/object"
	"github.com/Sosokker/pasathai/parser"
	"github.com/Sosokker/pasathai/repl"
)

const version = "v0.1.0"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	args := os.Args[1:]

	switch {
	case len(args) == 0:
		repl.New(version).Start(os.Stdout)

	case args[0] == "-h" || args[0] == "--help":
		showHelp()
		os.Exit(0)

	case args[0] == "-v" || args[0] == "--version":
		showVersion()
		os.Exit(0)

	case len(args) == 1:
		os.Exit(runFile(args[0]))

	default:
		redColor.Fprintln(os.Stderr, "usage error: expected at most one file argument")
		os.Exit(1)
	}
}

func showHelp() {
	cyanColor.Println("pasathai - a Thai-keyword scripting language interpreter")
	cyanColor.Println("")
	cyanColor.Println("usage:")
	yellowColor.Println("  pasathai                 start the interactive REPL")
	yellowColor.Println("  pasathai <file>           run a source file")
	yellowColor.Println("  pasathai -h, --help       show this message")
	yellowColor.Println("  pasathai -v, --version    show version information")
}

func showVersion() {
	cyanColor.Printf("pasathai %s\n", version)
}

// runFile reads, parses, and evaluates a source file, returning the
// process exit code: 0 on success, 1 on a read failure, a parse error, or
// a runtime ERROR value.
func runFile(filename string) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not read file '%s': %v\n", filename, err)
		return 1
	}

	l := lexer.New(string(source), filename)
	p := parser.New(l, string(source), filename)
	program := p.ParseProgram()

	renderer := diagnostics.NewRenderer()
	if l.Errors.HasErrors() {
		renderer.RenderAll(os.Stderr, &l.Errors)
	}
	if p.Errors.HasErrors() {
		renderer.RenderAll(os.Stderr, &p.Errors)
	}
	if l.Errors.HasErrors() || p.Errors.HasErrors() {
		return 1
	}

	evaluator := eval.New(os.Stdout)
	result := evaluator.Eval(program, evaluator.Global)

	if errVal, ok := result.(*object.Error); ok {
		redColor.Fprintf(os.Stderr, "runtime error: %s\n", errVal.Message)
		return 1
	}
	return 0
}
