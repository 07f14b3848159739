/*
File    : go-slate/parser/parser_precedence.go
Project : go-slate
*/
package parser

import "github.com/alpharomercoma/go-slate/lexer"

// Operator precedence constants.
// Higher number = higher precedence (binds tighter).
//
// Precedence Hierarchy (lowest to highest):
//  1. Assignment (right-to-left associativity)
//  2. Logical OR
//  3. Logical AND
//  4. Equality operators
//  5. Comparison operators
//  6. Additive operators
//  7. Multiplicative operators
//  8. Unary/prefix operators
//  9. Call operator (postfix)
//
// Example: in "a + b * c", multiplication has higher precedence than
// addition, so it is parsed as "a + (b * c)" rather than "(a + b) * c".
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Assignment: = (lowest precedence, right-to-left associativity)
	// Example: a = b = 5 is parsed as a = (b = 5)
	ASSIGN_PRIORITY = 10

	// Logical or
	// Example: a or b or c is parsed left-to-right
	OR_PRIORITY = 20

	// Logical and
	// Example: a and b binds tighter than a or b
	AND_PRIORITY = 30

	// Equality operators: == !=
	EQUALITY_PRIORITY = 40

	// Comparison operators: < > <= >=
	COMPARISON_PRIORITY = 50

	// Additive operators: + -
	TERM_PRIORITY = 60

	// Multiplicative operators: * /
	FACTOR_PRIORITY = 70

	// Unary/prefix operators: ! -
	PREFIX_PRIORITY = 80

	// Call operator: f(...)
	// Highest: call binds tighter than unary
	CALL_PRIORITY = 90
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly infix operators bind to their operands.
//
// Returns -1 for tokens that are not infix operators, which stops the
// expression loop.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	case lexer.EQUAL:
		return ASSIGN_PRIORITY

	case lexer.OR:
		return OR_PRIORITY

	case lexer.AND:
		return AND_PRIORITY

	case lexer.EQUAL_EQUAL, lexer.BANG_EQUAL:
		return EQUALITY_PRIORITY

	case lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL:
		return COMPARISON_PRIORITY

	case lexer.PLUS, lexer.MINUS:
		return TERM_PRIORITY

	case lexer.STAR, lexer.SLASH:
		return FACTOR_PRIORITY

	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	default:
		return -1
	}
}
