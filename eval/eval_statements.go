package eval

import (
	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/object"
)

// evalProgram evaluates each top-level statement in order, in the global
// environment, unwrapping a top-level RETURN_VALUE (a `return` at the
// top level has nowhere else to unwind to) and short-circuiting on the
// first ERROR.
func (e *Evaluator) evalProgram(program *ast.Program, env *object.Environment) object.Value {
	var result object.Value = e.Null
	for _, stmt := range program.Statements {
		result = e.Eval(stmt, env)
		switch v := result.(type) {
		case *object.ReturnValue:
			return v.Inner
		case *object.Error:
			return v
		}
	}
	return result
}

// evalBlockStatement evaluates statements in the current environment,
// returning the last value; a RETURN_VALUE or ERROR stops evaluation and
// is forwarded upward as is. A RETURN_VALUE is NOT unwrapped here, only
// at the call boundary in callFunction (or by evalProgram at the top
// level), so nested blocks (if-inside-while-inside-function) forward it
// unchanged.
func (e *Evaluator) evalBlockStatement(block *ast.BlockStatement, env *object.Environment) object.Value {
	e.GC.PushEnv(env)
	defer e.GC.PopEnv()

	var result object.Value = e.Null
	for _, stmt := range block.Statements {
		result = e.Eval(stmt, env)
		if result != nil {
			switch result.Type() {
			case object.ReturnType, object.ErrorType:
				return result
			}
		}
	}
	return result
}

func (e *Evaluator) evalLetStatement(stmt *ast.LetStatement, env *object.Environment) object.Value {
	value := e.Eval(stmt.Value, env)
	if isError(value) {
		return value
	}
	env.Set(stmt.Name.Name, value)
	return value
}

func (e *Evaluator) evalReturnStatement(stmt *ast.ReturnStatement, env *object.Environment) object.Value {
	value := e.Eval(stmt.Value, env)
	if isError(value) {
		return value
	}
	return e.GC.NewReturnValue(value)
}
