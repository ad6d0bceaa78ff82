package eval

import (
	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/object"
)

// evalIfExpression evaluates Then only when Condition is identity-equal
// to the TRUE singleton; any other value (including FALSE, NULL, or a
// non-boolean) falls through to Else, or NULL if there is none — only the
// exact TRUE singleton is truthy.
func (e *Evaluator) evalIfExpression(node *ast.IfExpression, env *object.Environment) object.Value {
	condition := e.Eval(node.Condition, env)
	if isError(condition) {
		return condition
	}

	if condition == e.True {
		return e.Eval(node.Then, env)
	}
	if node.Else != nil {
		return e.Eval(node.Else, env)
	}
	return e.Null
}
