package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sosokker/pasathai/ast"
	"github.com/Sosokker/pasathai/lexer"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	l := lexer.New(src, "")
	p := New(l, src, "")
	program := p.ParseProgram()
	require.False(t, p.Errors.HasErrors(), "unexpected parse errors: %+v", p.Errors.All())
	return program
}

func TestLetStatement(t *testing.T) {
	program := parse(t, `ให้ x = 5;`)
	require.Len(t, program.Statements, 1)
	stmt, ok := program.Statements[0].(*ast.LetStatement)
	require.True(t, ok)
	assert.Equal(t, "x", stmt.Name.Name)
	intLit, ok := stmt.Value.(*ast.IntegerLiteral)
	require.True(t, ok)
	assert.EqualValues(t, 5, intLit.Value)
}

func TestReturnStatement(t *testing.T) {
	program := parse(t, `คืนค่า 10;`)
	require.Len(t, program.Statements, 1)
	_, ok := program.Statements[0].(*ast.ReturnStatement)
	assert.True(t, ok)
}

func TestArithmeticPrecedence(t *testing.T) {
	program := parse(t, `1 + 2 * 3;`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	infix := stmt.Expression.(*ast.InfixExpression)
	assert.Equal(t, "+", infix.Operator)
	left := infix.Left.(*ast.IntegerLiteral)
	assert.EqualValues(t, 1, left.Value)
	right := infix.Right.(*ast.InfixExpression)
	assert.Equal(t, "*", right.Operator)
}

func TestPrefixBindsTighterThanProduct(t *testing.T) {
	program := parse(t, `-a * b;`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	infix := stmt.Expression.(*ast.InfixExpression)
	assert.Equal(t, "*", infix.Operator)
	prefix := infix.Left.(*ast.PrefixExpression)
	assert.Equal(t, "-", prefix.Operator)
}

func TestEqualsBindsLooserThanLessGreater(t *testing.T) {
	program := parse(t, `a == b < c;`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	outer := stmt.Expression.(*ast.InfixExpression)
	assert.Equal(t, "==", outer.Operator)
	_, ok := outer.Right.(*ast.InfixExpression)
	require.True(t, ok)
	assert.Equal(t, "<", outer.Right.(*ast.InfixExpression).Operator)
}

func TestCallThenIndexChain(t *testing.T) {
	program := parse(t, `f(1)(2)[3];`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	index := stmt.Expression.(*ast.IndexExpression)
	secondCall := index.Array.(*ast.CallExpression)
	firstCall := secondCall.Callee.(*ast.CallExpression)
	_, ok := firstCall.Callee.(*ast.Identifier)
	assert.True(t, ok)
}

func TestIfElseExpression(t *testing.T) {
	program := parse(t, `ถ้า (x) { 1 } ไม่งั้น { 2 }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	ifExpr := stmt.Expression.(*ast.IfExpression)
	require.NotNil(t, ifExpr.Then)
	require.NotNil(t, ifExpr.Else)
}

func TestFunctionLiteralParameters(t *testing.T) {
	program := parse(t, `ฟังก์ชัน(x, y) { x + y }`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	fn := stmt.Expression.(*ast.FunctionLiteral)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "x", fn.Params[0].Name)
	assert.Equal(t, "y", fn.Params[1].Name)
}

func TestForStatementInclusiveAndExclusive(t *testing.T) {
	program := parse(t, `สำหรับ i จาก 1 ถึง 3 { แสดง(i); }`)
	forStmt := program.Statements[0].(*ast.ForStatement)
	assert.True(t, forStmt.Inclusive)

	program2 := parse(t, `สำหรับ i จาก 1 ก่อนถึง 3 { แสดง(i); }`)
	forStmt2 := program2.Statements[0].(*ast.ForStatement)
	assert.False(t, forStmt2.Inclusive)
}

func TestArrayLiteralAndIndex(t *testing.T) {
	program := parse(t, `[1, 2, 3][0];`)
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	index := stmt.Expression.(*ast.IndexExpression)
	arr := index.Array.(*ast.ArrayLiteral)
	assert.Len(t, arr.Elements, 3)
}

func TestMissingPrefixParseFnRecordsError(t *testing.T) {
	l := lexer.New(`)`, "")
	p := New(l, `)`, "")
	p.ParseProgram()
	require.True(t, p.Errors.HasErrors())
	assert.Equal(t, "E202", p.Errors.All()[0].Code)
}

func TestMissingAssignInLetRecordsError(t *testing.T) {
	l := lexer.New(`ให้ x 5;`, "")
	p := New(l, `ให้ x 5;`, "")
	p.ParseProgram()
	require.True(t, p.Errors.HasErrors())
	assert.Equal(t, "E200", p.Errors.All()[0].Code)
}

func TestMissingClosingBracketRecordsDelimiterError(t *testing.T) {
	l := lexer.New(`[1, 2;`, "")
	p := New(l, `[1, 2;`, "")
	p.ParseProgram()
	require.True(t, p.Errors.HasErrors())
	assert.Equal(t, "E201", p.Errors.All()[0].Code)
}
