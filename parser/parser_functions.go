/*
File    : go-slate/parser/parser_functions.go
Project : go-slate
*/
package parser

import "github.com/alpharomercoma/go-slate/lexer"

// parseFunctionStatement parses a named function declaration.
//
// Syntax:
//
//	function name(param1, param2, ...) { body }
//
// At most 255 parameters are allowed; exceeding the limit is reported
// but parsing continues. Parameters are plain identifiers - Slate has
// no parameter types or defaults.
func (par *Parser) parseFunctionStatement() StatementNode {
	if !par.expectAdvance(lexer.IDENTIFIER, "Expect function name.") {
		return nil
	}
	name := par.CurrToken

	if !par.expectAdvance(lexer.LEFT_PAREN, "Expect '(' after function name.") {
		return nil
	}

	params := make([]lexer.Token, 0)
	if par.NextToken.Type != lexer.RIGHT_PAREN {
		for {
			if !par.expectAdvance(lexer.IDENTIFIER, "Expect parameter name.") {
				return nil
			}
			if len(params) >= 255 {
				par.errorAt(par.CurrToken, "Can't have more than 255 parameters.")
			}
			params = append(params, par.CurrToken)
			if par.NextToken.Type != lexer.COMMA {
				break
			}
			par.advance()
		}
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN, "Expect ')' after parameters.") {
		return nil
	}
	if !par.expectAdvance(lexer.LEFT_BRACE, "Expect '{' before function body.") {
		return nil
	}

	body := par.parseBlockStatement()
	if body == nil {
		return nil
	}

	return &FunctionStatementNode{
		Name:   name,
		Params: params,
		Body:   body,
	}
}

// parseReturnStatement parses a return statement.
//
// Syntax:
//
//	return;
//	return expression;
//
// A bare return yields nil to the caller.
func (par *Parser) parseReturnStatement() StatementNode {
	keyword := par.CurrToken

	var value ExpressionNode
	if par.NextToken.Type == lexer.SEMICOLON {
		par.advance()
	} else {
		par.advance()
		value = par.parseExpression()
		if value == nil {
			return nil
		}
		if !par.expectAdvance(lexer.SEMICOLON, "Expect ';' after return value.") {
			return nil
		}
	}

	return &ReturnStatementNode{
		Keyword: keyword,
		Value:   value,
	}
}
