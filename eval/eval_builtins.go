package eval

import (
	"fmt"

	"github.com/Sosokker/pasathai/object"
)

// registerBuiltins binds the fixed host functions under their Thai or
// plain identifiers in the global environment. len/push/pop are this
// language's own array operations, alongside แสดง for printing.
func (e *Evaluator) registerBuiltins() {
	e.Global.Set("แสดง", e.GC.NewBuiltin(e.builtinPrint))
	e.Global.Set("len", e.GC.NewBuiltin(e.builtinLen))
	e.Global.Set("push", e.GC.NewBuiltin(e.builtinPush))
	e.Global.Set("pop", e.GC.NewBuiltin(e.builtinPop))
}

// builtinPrint writes each argument's human-readable form separated by
// single spaces, followed by a newline, and returns NULL.
func (e *Evaluator) builtinPrint(args []object.Value) object.Value {
	for i, arg := range args {
		if i > 0 {
			fmt.Fprint(e.Out, " ")
		}
		fmt.Fprint(e.Out, arg.Inspect())
	}
	fmt.Fprintln(e.Out)
	return e.Null
}

func (e *Evaluator) builtinLen(args []object.Value) object.Value {
	if len(args) != 1 {
		return e.newError("wrong number of arguments: expected 1, got %d", len(args))
	}
	switch v := args[0].(type) {
	case *object.String:
		return e.GC.NewInteger(int64(len(v.Value)))
	case *object.Array:
		return e.GC.NewInteger(int64(v.Length))
	default:
		return e.newError("type error: len() requires STRING or ARRAY, got %s", v.Type())
	}
}

func (e *Evaluator) builtinPush(args []object.Value) object.Value {
	if len(args) != 2 {
		return e.newError("wrong number of arguments: expected 2, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return e.newError("type error: push() requires ARRAY, got %s", args[0].Type())
	}

	if arr.Length == arr.Capacity {
		newCapacity := arr.Capacity * 2
		if newCapacity < 2 {
			newCapacity = 2
		}
		grown := make([]object.Value, arr.Length, newCapacity)
		copy(grown, arr.Elements)
		arr.Elements = grown
		arr.Capacity = newCapacity
	}
	arr.Elements = append(arr.Elements[:arr.Length], args[1])
	arr.Length++
	return arr
}

func (e *Evaluator) builtinPop(args []object.Value) object.Value {
	if len(args) != 1 {
		return e.newError("wrong number of arguments: expected 1, got %d", len(args))
	}
	arr, ok := args[0].(*object.Array)
	if !ok {
		return e.newError("type error: pop() requires ARRAY, got %s", args[0].Type())
	}
	if arr.Length == 0 {
		return e.newError("pop() called on empty array")
	}
	arr.Length--
	return arr.Elements[arr.Length]
}
