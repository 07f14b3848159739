/*
File    : go-slate/parser/parser_expressions.go
Project : go-slate
*/
package parser

import (
	"github.com/alpharomercoma/go-slate/lexer"
	"github.com/alpharomercoma/go-slate/objects"
)

// parseExpression is the entry point for parsing expressions.
// It delegates to parseInternal with minimum precedence, allowing
// all operators to be parsed.
//
// This uses the Pratt parsing algorithm, which handles operator
// precedence and associativity through the precedence ladder in
// parser_precedence.go.
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseInternal(MINIMUM_PRIORITY)
}

// parseInternal parses an expression whose operators all bind at least
// as tightly as currPrecedence.
//
// The algorithm: parse a prefix expression for the current token, then
// while the next token is an infix operator of sufficient precedence,
// advance onto it and let its binary function extend the left operand.
func (par *Parser) parseInternal(currPrecedence int) ExpressionNode {
	unary, has := par.UnaryFuncs[par.CurrToken.Type]
	if !has {
		par.errorAt(par.CurrToken, "Expect expression.")
		return nil
	}
	left := unary()
	if left == nil {
		return nil
	}
	for par.NextToken.Type != lexer.EOF && getPrecedence(&par.NextToken) >= currPrecedence {
		binary, has := par.BinaryFuncs[par.NextToken.Type]
		if !has {
			return left
		}
		par.advance()
		left = binary(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// parseGroupingExpression parses expressions enclosed in parentheses.
// Parentheses are used for grouping and overriding operator precedence.
//
// Syntax:
//
//	(expression)
//
// Examples:
//
//	(5 + 3) * 2  - Parentheses force addition before multiplication
//	(a and b) or c
func (par *Parser) parseGroupingExpression() ExpressionNode {
	// we are already at the LEFT_PAREN, so just advance
	par.advance()
	group := &GroupingExpressionNode{}
	group.Expr = par.parseExpression()
	if group.Expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "Expect ')' after expression.") {
		return nil
	}

	return group
}

// parseNumberLiteral parses a numeric literal expression.
// The lexer already decoded the value; this just wraps it in a node.
func (par *Parser) parseNumberLiteral() ExpressionNode {
	value, _ := par.CurrToken.Literal.(float64)
	return &LiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Number{Value: value},
	}
}

// parseStringLiteral parses a string literal expression.
// The decoded literal is the contents without the surrounding quotes.
func (par *Parser) parseStringLiteral() ExpressionNode {
	value, _ := par.CurrToken.Literal.(string)
	return &LiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.String{Value: value},
	}
}

// parseBooleanLiteral parses the 'true' and 'false' keywords.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &LiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Boolean{Value: par.CurrToken.Type == lexer.TRUE},
	}
}

// parseNilLiteral parses the 'nil' keyword.
func (par *Parser) parseNilLiteral() ExpressionNode {
	return &LiteralExpressionNode{
		Token: par.CurrToken,
		Value: &objects.Nil{},
	}
}

// parseVariableExpression parses a bare identifier as a variable
// reference. Whether the name is actually defined is a runtime question;
// the parser only records the reference.
func (par *Parser) parseVariableExpression() ExpressionNode {
	return &VariableExpressionNode{Name: par.CurrToken}
}

// parseUnaryExpression parses unary (prefix) expressions.
//
// Supported operators:
//
//	! (logical NOT)  - negates truthiness
//	- (unary minus)  - negates numbers
//
// Unary operators are right-associative: !!x parses as !(!x).
func (par *Parser) parseUnaryExpression() ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(PREFIX_PRIORITY)
	if right == nil {
		return nil
	}
	return &UnaryExpressionNode{
		Operation: op,
		Right:     right,
	}
}

// parseBinaryExpression parses infix arithmetic, comparison and equality
// expressions. All of these operators are left-associative, which the
// +1 on the recursion precedence enforces.
//
// Supported operators: + - * / == != < <= > >=
func (par *Parser) parseBinaryExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(getPrecedence(&op) + 1)
	if right == nil {
		return nil
	}
	return &BinaryExpressionNode{
		Left:      left,
		Operation: op,
		Right:     right,
	}
}

// parseLogicalExpression parses the short-circuit 'and' and 'or'
// operators. These get their own node type because the right operand
// must not be evaluated when the left already decides the result - the
// lowering pass turns them into conditional jumps, not plain operators.
func (par *Parser) parseLogicalExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	right := par.parseInternal(getPrecedence(&op) + 1)
	if right == nil {
		return nil
	}
	return &LogicalExpressionNode{
		Left:      left,
		Operation: op,
		Right:     right,
	}
}

// parseAssignmentExpression parses an assignment.
//
// Assignment is right-associative (a = b = 5 assigns 5 to both), which
// re-entering parseInternal at the same precedence level provides.
//
// An assignment is only valid when its left-hand side is a simple
// variable. Anything else - (a) = 1, f() = 2, 1 + 2 = 3 - is reported
// as "Invalid assignment target"; the right-hand side is still consumed
// and the left expression is returned as the value (recovery).
func (par *Parser) parseAssignmentExpression(left ExpressionNode) ExpressionNode {
	op := par.CurrToken
	par.advance()
	value := par.parseInternal(getPrecedence(&op))
	if value == nil {
		return nil
	}

	variable, ok := left.(*VariableExpressionNode)
	if !ok {
		par.errorAt(op, "Invalid assignment target.")
		return left
	}

	return &AssignmentExpressionNode{
		Name:  variable.Name,
		Value: value,
	}
}

// parseCallExpression parses a function call. The left operand is the
// callee; on entry CurrToken is the '(' at the call site.
//
// Arguments are parsed in source order, comma separated. At most 255
// arguments are allowed; exceeding the limit is reported but parsing
// continues (the call node is still built).
func (par *Parser) parseCallExpression(left ExpressionNode) ExpressionNode {
	paren := par.CurrToken
	args := make([]ExpressionNode, 0)

	if par.NextToken.Type != lexer.RIGHT_PAREN {
		for {
			par.advance()
			arg := par.parseExpression()
			if arg == nil {
				return nil
			}
			if len(args) >= 255 {
				par.errorAt(par.CurrToken, "Can't have more than 255 arguments.")
			}
			args = append(args, arg)
			if par.NextToken.Type != lexer.COMMA {
				break
			}
			par.advance()
		}
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN, "Expect ')' after arguments.") {
		return nil
	}

	return &CallExpressionNode{
		Callee:    left,
		Paren:     paren,
		Arguments: args,
	}
}
