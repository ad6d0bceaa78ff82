// Package eval implements a recursive tree-walking evaluator: dispatch
// by AST node kind, RETURN_VALUE unwinding at function-call boundaries,
// the built-in functions, and GC root registration around every call and
// block frame.
//
// The Evaluator-holds-environment-and-writer shape, plus the
// one-file-per-construct split (eval_statements.go, eval_expressions.go,
// eval_loops.go, ...), keeps each statement/expression kind's semantics
// in its own file rather than one large switch body.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/object"
)

var runtimeErrorColor = color.New(color.FgRed, color.Bold)

// Evaluator ties together the GC, the global environment, and the output
// stream that `แสดง` (print) writes to. One Evaluator corresponds to one
// running program or one REPL session.
type Evaluator struct {
	GC     *object.GC
	Global *object.Environment
	Out    io.Writer

	True  *object.Boolean
	False *object.Boolean
	Null  *object.Null
}

// New builds an Evaluator with its singletons registered with the GC
// (never collectable) and the built-in functions bound in the global
// environment.
func New(out io.Writer) *Evaluator {
	e := &Evaluator{
		GC:     object.NewGC(),
		Global: object.NewEnvironment(),
		Out:    out,
		True:   &object.Boolean{Value: true},
		False:  &object.Boolean{Value: false},
		Null:   &object.Null{},
	}
	e.GC.RegisterSingleton(e.True)
	e.GC.RegisterSingleton(e.False)
	e.GC.RegisterSingleton(e.Null)
	e.GC.SetGlobalEnv(e.Global)

	e.registerBuiltins()
	return e
}

func (e *Evaluator) nativeBool(b bool) *object.Boolean {
	if b {
		return e.True
	}
	return e.False
}

// newError builds a runtime ERROR value and, at the moment of creation,
// prints it to stderr in bold red — every error is visible the instant
// it exists, not only if it happens to surface as a program's final
// result.
func (e *Evaluator) newError(format string, args ...any) *object.Error {
	message := fmt.Sprintf(format, args...)
	runtimeErrorColor.Fprintf(os.Stderr, "error[runtime]: %s\n", message)
	return e.GC.NewError(message)
}

func isError(v object.Value) bool {
	_, ok := v.(*object.Error)
	return ok
}

// Eval dispatches on node's concrete type and returns the runtime value
// it produces.
func (e *Evaluator) Eval(node ast.Node, env *object.Environment) object.Value {
	switch n := node.(type) {
	case *ast.Program:
		return e.evalProgram(n, env)
	case *ast.ExpressionStatement:
		return e.Eval(n.Expression, env)
	case *ast.BlockStatement:
		return e.evalBlockStatement(n, env)
	case *ast.LetStatement:
		return e.evalLetStatement(n, env)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(n, env)
	case *ast.WhileStatement:
		return e.evalWhileStatement(n, env)
	case *ast.ForStatement:
		return e.evalForStatement(n, env)

	case *ast.IntegerLiteral:
		return e.GC.NewInteger(n.Value)
	case *ast.StringLiteral:
		return e.GC.NewString(n.Value, false)
	case *ast.BooleanLiteral:
		return e.nativeBool(n.Value)
	case *ast.NullLiteral:
		return e.Null

	case *ast.PrefixExpression:
		return e.evalPrefixExpression(n, env)
	case *ast.InfixExpression:
		return e.evalInfixExpression(n, env)
	case *ast.IfExpression:
		return e.evalIfExpression(n, env)
	case *ast.Identifier:
		return e.evalIdentifier(n, env)
	case *ast.FunctionLiteral:
		return e.GC.NewFunction(n.Params, n.Body, env)
	case *ast.CallExpression:
		return e.evalCallExpression(n, env)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(n, env)
	case *ast.IndexExpression:
		return e.evalIndexExpression(n, env)
	}
	return e.Null
}
