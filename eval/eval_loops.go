package eval

import (
	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/object"
)

// evalWhileStatement loops while Condition is identity-equal to TRUE,
// forwarding a RETURN_VALUE or ERROR produced by the body immediately
// instead of continuing to the next iteration.
func (e *Evaluator) evalWhileStatement(stmt *ast.WhileStatement, env *object.Environment) object.Value {
	for {
		condition := e.Eval(stmt.Condition, env)
		if isError(condition) {
			return condition
		}
		if condition != e.True {
			return e.Null
		}

		result := e.Eval(stmt.Body, env)
		if result != nil {
			switch result.Type() {
			case object.ReturnType, object.ErrorType:
				return result
			}
		}
	}
}

// evalForStatement counts Var from Start to End, inclusive or exclusive
// per stmt.Inclusive, binding Var fresh in env on each iteration. Start
// and End must be INTEGER; any other type is a runtime ERROR.
func (e *Evaluator) evalForStatement(stmt *ast.ForStatement, env *object.Environment) object.Value {
	startVal := e.Eval(stmt.Start, env)
	if isError(startVal) {
		return startVal
	}
	start, ok := startVal.(*object.Integer)
	if !ok {
		return e.newError("type error: for loop start must be INTEGER, got %s", startVal.Type())
	}

	endVal := e.Eval(stmt.End, env)
	if isError(endVal) {
		return endVal
	}
	end, ok := endVal.(*object.Integer)
	if !ok {
		return e.newError("type error: for loop end must be INTEGER, got %s", endVal.Type())
	}

	i := start.Value
	for (stmt.Inclusive && i <= end.Value) || (!stmt.Inclusive && i < end.Value) {
		env.Set(stmt.Var.Name, e.GC.NewInteger(i))

		result := e.Eval(stmt.Body, env)
		if result != nil {
			switch result.Type() {
			case object.ReturnType, object.ErrorType:
				return result
			}
		}
		i++
	}
	return e.Null
}
