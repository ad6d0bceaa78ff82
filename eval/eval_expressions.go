package eval

import (
	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/object"
)

func (e *Evaluator) evalPrefixExpression(node *ast.PrefixExpression, env *object.Environment) object.Value {
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch node.Operator {
	case "!":
		return e.evalBangOperator(right)
	case "-":
		return e.evalMinusOperator(right)
	default:
		return e.newError("unknown operator: %s%s", node.Operator, right.Type())
	}
}

// evalBangOperator maps TRUE->FALSE, FALSE->TRUE, NULL->TRUE, and any
// other value to FALSE.
func (e *Evaluator) evalBangOperator(right object.Value) object.Value {
	switch right {
	case e.True:
		return e.False
	case e.False:
		return e.True
	case e.Null:
		return e.True
	default:
		return e.False
	}
}

func (e *Evaluator) evalMinusOperator(right object.Value) object.Value {
	intVal, ok := right.(*object.Integer)
	if !ok {
		return e.newError("type error: cannot negate %s", right.Type())
	}
	return e.GC.NewInteger(-intVal.Value)
}

func (e *Evaluator) evalInfixExpression(node *ast.InfixExpression, env *object.Environment) object.Value {
	left := e.Eval(node.Left, env)
	if isError(left) {
		return left
	}
	right := e.Eval(node.Right, env)
	if isError(right) {
		return right
	}

	switch {
	case left.Type() == object.IntegerType && right.Type() == object.IntegerType:
		return e.evalIntegerInfix(node.Operator, left.(*object.Integer), right.(*object.Integer))
	case left.Type() == object.StringType && right.Type() == object.StringType:
		return e.evalStringInfix(node.Operator, left.(*object.String), right.(*object.String))
	case left.Type() == object.BooleanType && right.Type() == object.BooleanType:
		return e.evalBooleanInfix(node.Operator, left, right)
	case left.Type() == object.NullType || right.Type() == object.NullType:
		return e.evalNullInfix(node.Operator, left, right)
	case left.Type() != right.Type():
		return e.newError("type mismatch: %s %s %s", left.Type(), node.Operator, right.Type())
	default:
		return e.newError("unknown operator: %s %s %s", left.Type(), node.Operator, right.Type())
	}
}

func (e *Evaluator) evalIntegerInfix(op string, left, right *object.Integer) object.Value {
	switch op {
	case "+":
		return e.GC.NewInteger(left.Value + right.Value)
	case "-":
		return e.GC.NewInteger(left.Value - right.Value)
	case "*":
		return e.GC.NewInteger(left.Value * right.Value)
	case "/":
		if right.Value == 0 {
			return e.newError("division by zero")
		}
		return e.GC.NewInteger(left.Value / right.Value)
	case "%":
		if right.Value == 0 {
			return e.newError("division by zero in modulo operation")
		}
		return e.GC.NewInteger(left.Value % right.Value)
	case "<":
		return e.nativeBool(left.Value < right.Value)
	case ">":
		return e.nativeBool(left.Value > right.Value)
	case "==":
		return e.nativeBool(left.Value == right.Value)
	case "!=":
		return e.nativeBool(left.Value != right.Value)
	default:
		return e.newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
	}
}

func (e *Evaluator) evalStringInfix(op string, left, right *object.String) object.Value {
	switch op {
	case "+":
		return e.GC.NewString(left.Value+right.Value, true)
	case "==":
		return e.nativeBool(left.Value == right.Value)
	case "!=":
		return e.nativeBool(left.Value != right.Value)
	default:
		return e.newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
	}
}

// evalBooleanInfix compares operands by singleton identity.
func (e *Evaluator) evalBooleanInfix(op string, left, right object.Value) object.Value {
	switch op {
	case "==":
		return e.nativeBool(left == right)
	case "!=":
		return e.nativeBool(left != right)
	default:
		return e.newError("unknown operator: %s %s %s", left.Type(), op, right.Type())
	}
}

// evalNullInfix handles any infix where at least one operand is NULL:
// `==`/`!=` yield truth only when both sides are NULL, any other
// operator involving NULL is a type mismatch.
func (e *Evaluator) evalNullInfix(op string, left, right object.Value) object.Value {
	switch op {
	case "==":
		return e.nativeBool(left == e.Null && right == e.Null)
	case "!=":
		return e.nativeBool(!(left == e.Null && right == e.Null))
	default:
		return e.newError("type mismatch: %s %s %s", left.Type(), op, right.Type())
	}
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier, env *object.Environment) object.Value {
	if value, ok := env.Get(node.Name); ok {
		return value
	}
	return e.newError("undefined variable: '%s'", node.Name)
}

func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral, env *object.Environment) object.Value {
	elements, err := e.evalExpressions(node.Elements, env)
	if err != nil {
		return err
	}
	return e.GC.NewArray(elements)
}

// evalExpressions evaluates a list of expressions strictly left-to-right,
// stopping at the first ERROR.
func (e *Evaluator) evalExpressions(exprs []ast.Expression, env *object.Environment) ([]object.Value, object.Value) {
	values := make([]object.Value, 0, len(exprs))
	for _, expr := range exprs {
		v := e.Eval(expr, env)
		if isError(v) {
			return nil, v
		}
		values = append(values, v)
	}
	return values, nil
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression, env *object.Environment) object.Value {
	left := e.Eval(node.Array, env)
	if isError(left) {
		return left
	}
	arr, ok := left.(*object.Array)
	if !ok {
		return e.newError("type error: cannot index %s", left.Type())
	}

	indexVal := e.Eval(node.Index, env)
	if isError(indexVal) {
		return indexVal
	}
	idx, ok := indexVal.(*object.Integer)
	if !ok {
		return e.newError("type error: array index must be INTEGER, got %s", indexVal.Type())
	}

	if idx.Value < 0 || idx.Value >= int64(arr.Length) {
		return e.newError("array index out of bounds: index %d, length %d", idx.Value, arr.Length)
	}
	return arr.Elements[idx.Value]
}

func (e *Evaluator) evalCallExpression(node *ast.CallExpression, env *object.Environment) object.Value {
	callee := e.Eval(node.Callee, env)
	if isError(callee) {
		return callee
	}

	switch fn := callee.(type) {
	case *object.Builtin:
		args, err := e.evalExpressions(node.Args, env)
		if err != nil {
			return err
		}
		return fn.Fn(args)
	case *object.Function:
		return e.callFunction(fn, node.Args, env)
	default:
		return e.newError("not a function: %s", callee.Type())
	}
}

func (e *Evaluator) callFunction(fn *object.Function, argExprs []ast.Expression, env *object.Environment) object.Value {
	args, err := e.evalExpressions(argExprs, env)
	if err != nil {
		return err
	}
	if len(args) != len(fn.Params) {
		return e.newError("wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}

	extended := object.NewEnclosedEnvironment(fn.Env)
	for i, param := range fn.Params {
		extended.Set(param.Name, args[i])
	}

	e.GC.PushEnv(extended)
	defer e.GC.PopEnv()

	result := e.Eval(fn.Body, extended)
	if ret, ok := result.(*object.ReturnValue); ok {
		return ret.Inner
	}
	return result
}
