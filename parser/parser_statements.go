/*
File    : go-slate/parser/parser_statements.go
Project : go-slate
*/
package parser

import (
	"github.com/alpharomercoma/go-slate/lexer"
	"github.com/alpharomercoma/go-slate/objects"
)

// parseDeclaration parses a single top-level declaration:
//
//	declaration := funDecl | varDecl | statement
//
// Returns nil when the declaration failed to parse; the caller discards
// it and synchronizes.
func (par *Parser) parseDeclaration() StatementNode {
	switch par.CurrToken.Type {
	case lexer.FUNCTION:
		return par.parseFunctionStatement()
	case lexer.LET:
		return par.parseLetStatement()
	default:
		return par.parseStatement()
	}
}

// parseStatement parses a single statement:
//
//	statement := exprStmt | forStmt | ifStmt | printStmt
//	           | returnStmt | whileStmt | block
//
// Every parse function leaves CurrToken on the last token of its
// construct; the caller advances past it.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.FOR:
		return par.parseForStatement()
	case lexer.IF:
		return par.parseIfStatement()
	case lexer.PRINT:
		return par.parsePrintStatement()
	case lexer.RETURN:
		return par.parseReturnStatement()
	case lexer.WHILE:
		return par.parseWhileStatement()
	case lexer.LEFT_BRACE:
		// a typed nil must not leak into the StatementNode interface
		block := par.parseBlockStatement()
		if block == nil {
			return nil
		}
		return block
	default:
		return par.parseExpressionStatement()
	}
}

// parseExpressionStatement parses an expression followed by ';'.
// The expression's value is discarded at runtime.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON, "Expect ';' after expression.") {
		return nil
	}
	return &ExpressionStatementNode{Expr: expr}
}

// parsePrintStatement parses a print statement.
//
// Syntax:
//
//	print expression;
func (par *Parser) parsePrintStatement() StatementNode {
	par.advance()
	expr := par.parseExpression()
	if expr == nil {
		return nil
	}
	if !par.expectAdvance(lexer.SEMICOLON, "Expect ';' after value.") {
		return nil
	}
	return &PrintStatementNode{Expr: expr}
}

// parseLetStatement parses a variable declaration.
//
// Syntax:
//
//	let identifier;
//	let identifier = expression;
//
// A declaration without initializer defaults the variable to 0.
func (par *Parser) parseLetStatement() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER, "Expect variable name.") {
		return nil
	}
	name := par.CurrToken

	var initializer ExpressionNode
	if par.NextToken.Type == lexer.EQUAL {
		par.advance()
		par.advance()
		initializer = par.parseExpression()
		if initializer == nil {
			return nil
		}
	}

	if !par.expectAdvance(lexer.SEMICOLON, "Expect ';' after variable declaration.") {
		return nil
	}

	return &LetStatementNode{
		Name:        name,
		Initializer: initializer,
	}
}

// parseBlockStatement parses a brace-delimited block of declarations.
//
// Syntax:
//
//	{ declaration* }
func (par *Parser) parseBlockStatement() *BlockStatementNode {
	block := &BlockStatementNode{}
	block.Statements = make([]StatementNode, 0)
	par.advance()
	for par.CurrToken.Type != lexer.RIGHT_BRACE && par.CurrToken.Type != lexer.EOF {
		stmt := par.parseDeclaration()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		} else {
			par.synchronize()
		}
		par.advance()
	}

	if par.CurrToken.Type != lexer.RIGHT_BRACE {
		par.errorAt(par.CurrToken, "Expect '}' after block.")
		return nil
	}

	return block
}

// parseIfStatement parses a conditional statement.
//
// Syntax:
//
//	if (condition) statement
//	if (condition) statement else statement
func (par *Parser) parseIfStatement() StatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN, "Expect '(' after 'if'.") {
		return nil
	}
	par.advance()
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "Expect ')' after if condition.") {
		return nil
	}

	par.advance()
	then := par.parseStatement()
	if then == nil {
		return nil
	}

	var elseStmt StatementNode
	if par.NextToken.Type == lexer.ELSE {
		par.advance()
		par.advance()
		elseStmt = par.parseStatement()
		if elseStmt == nil {
			return nil
		}
	}

	return &IfStatementNode{
		Condition: condition,
		Then:      then,
		Else:      elseStmt,
	}
}

// parseWhileStatement parses a while loop.
//
// Syntax:
//
//	while (condition) statement
func (par *Parser) parseWhileStatement() StatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN, "Expect '(' after 'while'.") {
		return nil
	}
	par.advance()
	condition := par.parseExpression()
	if condition == nil {
		return nil
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "Expect ')' after condition.") {
		return nil
	}

	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	return &WhileStatementNode{
		Condition: condition,
		Body:      body,
	}
}

// parseForStatement parses a for loop and desugars it into while form.
//
// Syntax:
//
//	for (initializer; condition; increment) statement
//
// where the initializer is a let declaration, an expression statement,
// or empty; condition and increment are optional expressions.
//
// The result is not a dedicated node: the loop becomes
//
//	{ initializer; while (condition) { body; increment; } }
//
// with a missing condition replaced by a true literal. The desugared
// tree shares no nodes with the surface syntax.
func (par *Parser) parseForStatement() StatementNode {
	if !par.expectAdvance(lexer.LEFT_PAREN, "Expect '(' after 'for'.") {
		return nil
	}

	// Initializer clause
	var initializer StatementNode
	switch par.NextToken.Type {
	case lexer.SEMICOLON:
		par.advance()
	case lexer.LET:
		par.advance()
		initializer = par.parseLetStatement()
		if initializer == nil {
			return nil
		}
	default:
		par.advance()
		initializer = par.parseExpressionStatement()
		if initializer == nil {
			return nil
		}
	}

	// Condition clause
	var condition ExpressionNode
	if par.NextToken.Type != lexer.SEMICOLON {
		par.advance()
		condition = par.parseExpression()
		if condition == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.SEMICOLON, "Expect ';' after loop condition.") {
		return nil
	}

	// Increment clause
	var increment ExpressionNode
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		par.advance()
		increment = par.parseExpression()
		if increment == nil {
			return nil
		}
	}
	if !par.expectAdvance(lexer.RIGHT_PAREN, "Expect ')' after for clauses.") {
		return nil
	}

	par.advance()
	body := par.parseStatement()
	if body == nil {
		return nil
	}

	// Desugar: append the increment to the body ...
	if increment != nil {
		body = &BlockStatementNode{
			Statements: []StatementNode{
				body,
				&ExpressionStatementNode{Expr: increment},
			},
		}
	}

	// ... wrap body in a while, defaulting the condition to true ...
	if condition == nil {
		condition = &LiteralExpressionNode{
			Token: lexer.NewToken(lexer.TRUE, "true"),
			Value: &objects.Boolean{Value: true},
		}
	}
	var loop StatementNode = &WhileStatementNode{
		Condition: condition,
		Body:      body,
	}

	// ... and prepend the initializer.
	if initializer != nil {
		loop = &BlockStatementNode{
			Statements: []StatementNode{initializer, loop},
		}
	}

	return loop
}
