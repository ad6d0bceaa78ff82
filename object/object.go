// Package object implements the tagged runtime value model: a closed set
// of heap-allocated values (integer, boolean, string, null, array,
// function, builtin, error, return-value), a lexically-chained
// Environment, and the mark-sweep GC that tracks every value ever
// allocated through it.
//
// Every concrete value type embeds Header, giving it the mark bit and
// heap-list link the GC needs without each type having to repeat that
// bookkeeping.
package object

import (
	"strconv"
	"strings"

	"github.com/Sosokker/pasathai/ast"
)

// Type names a runtime value's kind.
type Type string

const (
	IntegerType  Type = "INTEGER"
	BooleanType  Type = "BOOLEAN"
	StringType   Type = "STRING"
	NullType     Type = "NULL"
	ArrayType    Type = "ARRAY"
	FunctionType Type = "FUNCTION"
	BuiltinType  Type = "BUILTIN"
	ErrorType    Type = "ERROR"
	ReturnType   Type = "RETURN_VALUE"
)

// Value is implemented by every runtime value. gcHeader is unexported so
// only this package's GC can walk and mark the heap list; Environment and
// the evaluator only ever see Type/Inspect.
type Value interface {
	Type() Type
	Inspect() string
	gcHeader() *Header
}

// Header carries the two GC bookkeeping fields every allocated value
// needs: its mark bit and its next-in-heap link.
type Header struct {
	marked bool
	next   Value
}

func (h *Header) gcHeader() *Header { return h }

// Integer is a signed 64-bit value.
type Integer struct {
	Header
	Value int64
}

func (*Integer) Type() Type          { return IntegerType }
func (i *Integer) Inspect() string   { return strconv.FormatInt(i.Value, 10) }

// Boolean is one of the TRUE/FALSE singletons. Truthiness in this language
// is decided by identity, not by this Value field — only the exact TRUE
// singleton is truthy — so callers compare pointers, not .Value.
type Boolean struct {
	Header
	Value bool
}

func (*Boolean) Type() Type { return BooleanType }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "จริง"
	}
	return "เท็จ"
}

// String holds a decoded string payload. Owned records whether this
// String's buffer was assembled by the evaluator (concatenation) rather
// than borrowed verbatim from a StringLiteral's AST payload, whose escapes
// the lexer has already decoded. Go's own runtime reclaims the backing
// array either way; Owned is kept purely to preserve that distinction for
// anything inspecting a value's provenance, not because this code frees
// it by hand.
type String struct {
	Header
	Value string
	Owned bool
}

func (*String) Type() Type        { return StringType }
func (s *String) Inspect() string { return s.Value }

// Null is the NULL singleton.
type Null struct{ Header }

func (*Null) Type() Type        { return NullType }
func (*Null) Inspect() string   { return "ว่างเปล่า" }

// Array is a mutable, growable sequence of values. Capacity tracks the
// backing slice's allocated length separately from Elements' logical
// length so Push can grow geometrically.
type Array struct {
	Header
	Elements []Value
	Length   int
	Capacity int
}

func (*Array) Type() Type { return ArrayType }

// Inspect renders `[e1, e2, ...]`: strings quoted, nested arrays collapsed
// to the literal text "[nested array]", everything else via its own
// Inspect.
func (a *Array) Inspect() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, el := range a.Elements[:a.Length] {
		if i > 0 {
			b.WriteString(", ")
		}
		switch v := el.(type) {
		case *String:
			b.WriteByte('"')
			b.WriteString(v.Value)
			b.WriteByte('"')
		case *Array:
			b.WriteString("[nested array]")
		default:
			b.WriteString(v.Inspect())
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Function is a closure: parameters, body, and the environment captured
// at the point of the FunctionLiteral's evaluation.
type Function struct {
	Header
	Params []*ast.Identifier
	Body   *ast.BlockStatement
	Env    *Environment
}

func (*Function) Type() Type { return FunctionType }
func (f *Function) Inspect() string {
	var b strings.Builder
	b.WriteString("ฟังก์ชัน(")
	for i, p := range f.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(p.Name)
	}
	b.WriteString(") { ... }")
	return b.String()
}

// BuiltinFunction is a host function exposed to the language under a
// fixed name (แสดง, len, push, pop).
type BuiltinFunction func(args []Value) Value

// Builtin wraps a BuiltinFunction as a runtime value so it can sit in an
// Environment binding exactly like any other callable.
type Builtin struct {
	Header
	Fn BuiltinFunction
}

func (*Builtin) Type() Type        { return BuiltinType }
func (*Builtin) Inspect() string   { return "<builtin function>" }

// Error is a first-class runtime error value: it propagates through
// evaluation like any other value and short-circuits composition, but is
// never raised as a host-language exception.
type Error struct {
	Header
	Message string
}

func (*Error) Type() Type        { return ErrorType }
func (e *Error) Inspect() string { return "ERROR: " + e.Message }

// ReturnValue is the control-flow-only sentinel produced by a
// ReturnStatement. It is never stored in a binding or array element — it
// exists solely to be forwarded unchanged up to the nearest
// function-call boundary, where it is unwrapped once.
type ReturnValue struct {
	Header
	Inner Value
}

func (*ReturnValue) Type() Type        { return ReturnType }
func (r *ReturnValue) Inspect() string { return r.Inner.Inspect() }
