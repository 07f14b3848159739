/*
File    : go-slate/parser/parser_test.go
Project : go-slate
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpharomercoma/go-slate/objects"
)

func TestParser_Parse_NumberExpression(t *testing.T) {

	src := `12;`
	par := NewParser(src)
	root := par.Parse()
	require.NotNil(t, root)
	assert.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	// must: root has 1 statement
	require.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatementNode)
	require.True(t, can)
	exp, can := stmt.Expr.(*LiteralExpressionNode)
	require.True(t, can)
	assert.Equal(t, "12", exp.Literal())
	assert.Equal(t, &objects.Number{Value: 12}, exp.Value)
}

func TestParser_Parse_Precedence(t *testing.T) {

	// multiplication binds tighter than addition
	src := `28 - 13 * 2;`
	par := NewParser(src)
	root := par.Parse()
	require.NotNil(t, root)
	require.Equal(t, 1, len(root.Statements))

	stmt := root.Statements[0].(*ExpressionStatementNode)
	exp, can := stmt.Expr.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "-", exp.Operation.Lexeme)

	_, can = exp.Left.(*LiteralExpressionNode)
	assert.True(t, can)
	right, can := exp.Right.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "*", right.Operation.Lexeme)
}

func TestParser_Parse_PrecedenceLadder(t *testing.T) {

	// comparison binds tighter than equality, arithmetic tighter than both,
	// and 'and' tighter than 'or'
	src := `a == 1 < 2 + 3 or b and c;`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	require.Equal(t, 1, len(root.Statements))

	stmt := root.Statements[0].(*ExpressionStatementNode)
	or, can := stmt.Expr.(*LogicalExpressionNode)
	require.True(t, can)
	assert.Equal(t, "or", or.Operation.Lexeme)

	eq, can := or.Left.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "==", eq.Operation.Lexeme)

	less, can := eq.Right.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "<", less.Operation.Lexeme)

	plus, can := less.Right.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "+", plus.Operation.Lexeme)

	and, can := or.Right.(*LogicalExpressionNode)
	require.True(t, can)
	assert.Equal(t, "and", and.Operation.Lexeme)
}

func TestParser_Parse_UnaryAndGrouping(t *testing.T) {

	src := `-(1 + 2) * !x;`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	stmt := root.Statements[0].(*ExpressionStatementNode)
	mul, can := stmt.Expr.(*BinaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "*", mul.Operation.Lexeme)

	neg, can := mul.Left.(*UnaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "-", neg.Operation.Lexeme)
	_, can = neg.Right.(*GroupingExpressionNode)
	assert.True(t, can)

	not, can := mul.Right.(*UnaryExpressionNode)
	require.True(t, can)
	assert.Equal(t, "!", not.Operation.Lexeme)
}

func TestParser_Parse_AssignmentRightAssociative(t *testing.T) {

	src := `a = b = 5;`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	stmt := root.Statements[0].(*ExpressionStatementNode)
	outer, can := stmt.Expr.(*AssignmentExpressionNode)
	require.True(t, can)
	assert.Equal(t, "a", outer.Name.Lexeme)

	inner, can := outer.Value.(*AssignmentExpressionNode)
	require.True(t, can)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParser_Parse_InvalidAssignmentTarget(t *testing.T) {

	src := `1 + 2 = 3;`
	par := NewParser(src)
	par.Parse()
	require.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Invalid assignment target")
}

func TestParser_Parse_LetStatement(t *testing.T) {

	src := `let answer = 42; let empty;`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	require.Equal(t, 2, len(root.Statements))

	decl, can := root.Statements[0].(*LetStatementNode)
	require.True(t, can)
	assert.Equal(t, "answer", decl.Name.Lexeme)
	assert.NotNil(t, decl.Initializer)

	empty, can := root.Statements[1].(*LetStatementNode)
	require.True(t, can)
	assert.Equal(t, "empty", empty.Name.Lexeme)
	assert.Nil(t, empty.Initializer)
}

func TestParser_Parse_IfElse(t *testing.T) {

	src := `if (1 < 2) print "yes"; else print "no";`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	require.Equal(t, 1, len(root.Statements))

	ifStmt, can := root.Statements[0].(*IfStatementNode)
	require.True(t, can)
	_, can = ifStmt.Then.(*PrintStatementNode)
	assert.True(t, can)
	_, can = ifStmt.Else.(*PrintStatementNode)
	assert.True(t, can)
}

func TestParser_Parse_WhileLoop(t *testing.T) {

	src := `while (i < 3) { print i; i = i + 1; }`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	require.Equal(t, 1, len(root.Statements))

	loop, can := root.Statements[0].(*WhileStatementNode)
	require.True(t, can)
	body, can := loop.Body.(*BlockStatementNode)
	require.True(t, can)
	assert.Equal(t, 2, len(body.Statements))
}

func TestParser_Parse_ForDesugarsToWhile(t *testing.T) {

	src := `for (let i = 0; i < 3; i = i + 1) print i;`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	require.Equal(t, 1, len(root.Statements))

	// { let i = 0; while (i < 3) { print i; i = i + 1; } }
	outer, can := root.Statements[0].(*BlockStatementNode)
	require.True(t, can)
	require.Equal(t, 2, len(outer.Statements))

	_, can = outer.Statements[0].(*LetStatementNode)
	assert.True(t, can)

	loop, can := outer.Statements[1].(*WhileStatementNode)
	require.True(t, can)

	inner, can := loop.Body.(*BlockStatementNode)
	require.True(t, can)
	require.Equal(t, 2, len(inner.Statements))
	_, can = inner.Statements[0].(*PrintStatementNode)
	assert.True(t, can)
	incr, can := inner.Statements[1].(*ExpressionStatementNode)
	require.True(t, can)
	_, can = incr.Expr.(*AssignmentExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_ForWithoutCondition(t *testing.T) {

	src := `for (;;) print 1;`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	loop, can := root.Statements[0].(*WhileStatementNode)
	require.True(t, can)

	// the missing condition becomes a true literal
	cond, can := loop.Condition.(*LiteralExpressionNode)
	require.True(t, can)
	assert.Equal(t, &objects.Boolean{Value: true}, cond.Value)
}

func TestParser_Parse_FunctionDeclaration(t *testing.T) {

	src := `function sq(x) { return x * x; }`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())
	require.Equal(t, 1, len(root.Statements))

	fn, can := root.Statements[0].(*FunctionStatementNode)
	require.True(t, can)
	assert.Equal(t, "sq", fn.Name.Lexeme)
	require.Equal(t, 1, len(fn.Params))
	assert.Equal(t, "x", fn.Params[0].Lexeme)
	require.Equal(t, 1, len(fn.Body.Statements))

	ret, can := fn.Body.Statements[0].(*ReturnStatementNode)
	require.True(t, can)
	assert.NotNil(t, ret.Value)
}

func TestParser_Parse_BareReturn(t *testing.T) {

	src := `function f() { return; }`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	fn := root.Statements[0].(*FunctionStatementNode)
	ret := fn.Body.Statements[0].(*ReturnStatementNode)
	assert.Nil(t, ret.Value)
}

func TestParser_Parse_CallArguments(t *testing.T) {

	src := `f(10, 3 + 4, g());`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	stmt := root.Statements[0].(*ExpressionStatementNode)
	call, can := stmt.Expr.(*CallExpressionNode)
	require.True(t, can)
	require.Equal(t, 3, len(call.Arguments))

	callee, can := call.Callee.(*VariableExpressionNode)
	require.True(t, can)
	assert.Equal(t, "f", callee.Name.Lexeme)

	_, can = call.Arguments[2].(*CallExpressionNode)
	assert.True(t, can)
}

func TestParser_Parse_MissingSemicolon(t *testing.T) {

	src := `print 1`
	par := NewParser(src)
	par.Parse()
	require.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Error at end")
}

func TestParser_Parse_SynchronizeAfterError(t *testing.T) {

	// the first declaration is broken; the parser must recover and still
	// produce the following two statements
	src := `let = 1; let a = 2; print a;`
	par := NewParser(src)
	root := par.Parse()
	require.True(t, par.HasErrors())
	assert.Equal(t, 2, len(root.Statements))
}

func TestParser_Parse_ExpectExpression(t *testing.T) {

	src := `print ;`
	par := NewParser(src)
	par.Parse()
	require.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Expect expression")
}

func TestTreeVisitor_RendersProgram(t *testing.T) {

	src := `if (a < 1) print "low"; else print "high";`
	par := NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "errors: %v", par.GetErrors())

	visitor := &TreeVisitor{}
	root.Accept(visitor)
	out := visitor.String()

	assert.Contains(t, out, "If")
	assert.Contains(t, out, "Binary [<]")
	assert.Contains(t, out, "Variable [a]")
	assert.Contains(t, out, "Else")
}
