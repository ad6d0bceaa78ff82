package eval

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sosokker/pasathai/lexer"
	"github.com/Sosokker/pasathai/object"
	"github.com/Sosokker/pasathai/parser"
)

func run(t *testing.T, src string) (string, object.Value) {
	t.Helper()
	l := lexer.New(src, "")
	p := parser.New(l, src, "")
	program := p.ParseProgram()
	require.False(t, p.Errors.HasErrors(), "unexpected parse errors: %+v", p.Errors.All())

	var out bytes.Buffer
	e := New(&out)
	result := e.Eval(program, e.Global)
	return out.String(), result
}

func TestIntegerAdditionEndToEnd(t *testing.T) {
	out, _ := run(t, `ให้ x = 5; ให้ y = 10; แสดง(x + y);`)
	assert.Equal(t, "15\n", out)
}

func TestStringConcatenationEndToEnd(t *testing.T) {
	out, _ := run(t, `แสดง("สวัสดี" + " " + "โลก");`)
	assert.Equal(t, "สวัสดี โลก\n", out)
}

func TestFactorialRecursionEndToEnd(t *testing.T) {
	out, _ := run(t, `ให้ fact = ฟังก์ชัน(n){ ถ้า (n < 2) { คืนค่า 1; } คืนค่า n * fact(n - 1); }; แสดง(fact(5));`)
	assert.Equal(t, "120\n", out)
}

func TestArrayPushLenIndexEndToEnd(t *testing.T) {
	out, _ := run(t, `ให้ a = [1,2,3]; push(a, 4); แสดง(len(a)); แสดง(a[3]);`)
	assert.Equal(t, "4\n4\n", out)
}

func TestForLoopInclusiveBoundsEndToEnd(t *testing.T) {
	out, _ := run(t, `สำหรับ i จาก 1 ถึง 3 { แสดง(i); }`)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestForLoopExclusiveBoundsEndToEnd(t *testing.T) {
	out, _ := run(t, `สำหรับ i จาก 1 ก่อนถึง 3 { แสดง(i); }`)
	assert.Equal(t, "1\n2\n", out)
}

func TestReturnLocalityDoesNotLeakOutOfFunction(t *testing.T) {
	_, result := run(t, `ฟังก์ชัน(){ ถ้า (จริง) { คืนค่า 1; } คืนค่า 2; }()`)
	intVal, ok := result.(*object.Integer)
	require.True(t, ok)
	assert.EqualValues(t, 1, intVal.Value)
}

func TestClosureCaptureSurvivesGC(t *testing.T) {
	l := lexer.New(`ให้ make = ฟังก์ชัน(x){ ฟังก์ชัน(y){ x + y } }; ให้ add5 = make(5);`, "")
	p := parser.New(l, "", "")
	program := p.ParseProgram()
	require.False(t, p.Errors.HasErrors())

	var out bytes.Buffer
	e := New(&out)
	e.Eval(program, e.Global)

	for i := 0; i < object.Threshold+10; i++ {
		e.GC.NewInteger(int64(i))
	}
	e.GC.Collect()

	call := parser.New(lexer.New(`add5(3);`, ""), "", "").ParseProgram()
	result := e.Eval(call, e.Global)
	intVal, ok := result.(*object.Integer)
	require.True(t, ok)
	assert.EqualValues(t, 8, intVal.Value)
}

func TestGCLivenessBoundedAfterManyThrowawayAllocations(t *testing.T) {
	var out bytes.Buffer
	e := New(&out)

	for i := 0; i < 10000; i++ {
		e.GC.NewInteger(int64(i))
	}
	e.GC.Collect()

	assert.Less(t, e.GC.Live(), 100)
}

func TestDivisionByZeroProducesErrorValue(t *testing.T) {
	_, result := run(t, `1 + 2 / 0;`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errVal.Message, "division by zero")
}

func TestLenOnWrongTypeProducesError(t *testing.T) {
	_, result := run(t, `len(1);`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errVal.Message, "INTEGER")
}

func TestUndefinedVariableProducesError(t *testing.T) {
	_, result := run(t, `missing;`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Equal(t, "undefined variable: 'missing'", errVal.Message)
}

func TestTypeMismatchIntPlusStringProducesError(t *testing.T) {
	_, result := run(t, `ให้ x = 1 + "a";`)
	errVal, ok := result.(*object.Error)
	require.True(t, ok)
	assert.Contains(t, errVal.Message, "type mismatch: INTEGER + STRING")
}
