/*
File    : go-slate/parser/parser.go
Project : go-slate
*/

/*
Package parser implements a Pratt parser (also known as top-down operator
precedence parser) for the Slate programming language.

The parser converts the token stream from the lexer into an Abstract
Syntax Tree (AST). It handles:
- Expressions (binary, logical, unary, literals, identifiers, calls)
- Statements (declarations, blocks, control flow, print, return)
- Operator precedence and associativity
- The 'for' loop, which is desugared into a while loop at parse time

Key Features:
  - Pratt parsing algorithm for efficient expression parsing
  - Error collection (doesn't panic on first error)
  - Panic-mode recovery: on a parse error the parser synchronizes at the
    next statement boundary and keeps going, so several errors can be
    reported from a single parse
*/
package parser

import (
	"fmt"

	"github.com/alpharomercoma/go-slate/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Slate source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix operators and literals
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix operators

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// unaryParseFunction parses a token that can begin an expression
// (a literal, an identifier, a grouping, or a prefix operator).
type unaryParseFunction func() ExpressionNode

// binaryParseFunction parses a token that continues an expression,
// given the already-parsed left operand.
type binaryParseFunction func(left ExpressionNode) ExpressionNode

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state: the Pratt function maps,
// the error sink, and the two-token lookahead.
//
// Registering a parsing function per token type establishes the grammar
// of the Slate language.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseGroupingExpression, lexer.LEFT_PAREN)

	// Literals: 42, "hello", true, false, nil
	par.registerUnaryFuncs(par.parseNumberLiteral, lexer.NUMBER)
	par.registerUnaryFuncs(par.parseStringLiteral, lexer.STRING)
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE, lexer.FALSE)
	par.registerUnaryFuncs(par.parseNilLiteral, lexer.NIL)

	// Identifiers: variable and function names
	par.registerUnaryFuncs(par.parseVariableExpression, lexer.IDENTIFIER)

	// Prefix operators: !, -
	par.registerUnaryFuncs(par.parseUnaryExpression, lexer.BANG, lexer.MINUS)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: +, -, *, /
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.PLUS, lexer.MINUS, lexer.STAR, lexer.SLASH)

	// Equality and comparison operators: ==, !=, <, <=, >, >=
	par.registerBinaryFuncs(par.parseBinaryExpression, lexer.EQUAL_EQUAL, lexer.BANG_EQUAL,
		lexer.LESS, lexer.LESS_EQUAL, lexer.GREATER, lexer.GREATER_EQUAL)

	// Short-circuit logical operators: and, or
	par.registerBinaryFuncs(par.parseLogicalExpression, lexer.AND, lexer.OR)

	// Assignment: =
	par.registerBinaryFuncs(par.parseAssignmentExpression, lexer.EQUAL)

	// Call operator: identifier(...)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// registerUnaryFuncs registers a prefix parsing function for one or more
// token types.
func (par *Parser) registerUnaryFuncs(fn unaryParseFunction, types ...lexer.TokenType) {
	for _, typ := range types {
		par.UnaryFuncs[typ] = fn
	}
}

// registerBinaryFuncs registers an infix parsing function for one or more
// token types.
func (par *Parser) registerBinaryFuncs(fn binaryParseFunction, types ...lexer.TokenType) {
	for _, typ := range types {
		par.BinaryFuncs[typ] = fn
	}
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
//
// The lexer keeps yielding EOF once the source is exhausted, so the
// parser can never read past the end of the token sequence.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectAdvance checks that the next token matches the expected type and
// advances onto it. On mismatch it reports msg at the offending token and
// returns false without advancing.
//
// This is the common "I expect a semicolon next, move past it" pattern.
func (par *Parser) expectAdvance(expected lexer.TokenType, msg string) bool {
	if par.NextToken.Type != expected {
		par.errorAt(par.NextToken, msg)
		return false
	}
	par.advance()
	return true
}

// errorAt records a parse error at the given token, in the user-visible
// format "Error at '<lexeme>': <message>", or "Error at end: <message>"
// when the offending token is EOF.
func (par *Parser) errorAt(tok lexer.Token, msg string) {
	if tok.Type == lexer.EOF {
		par.addError(fmt.Sprintf("Error at end: %s", msg))
		return
	}
	par.addError(fmt.Sprintf("Error at '%s': %s", tok.Lexeme, msg))
}

// addError adds an error message to the parser's error list.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if there are lexical or parsing errors.
// This should be checked after parsing to decide whether downstream
// stages may run.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0 || par.Lex.HasErrors()
}

// GetErrors returns all errors collected during scanning and parsing,
// lexical errors first.
func (par *Parser) GetErrors() []string {
	errs := make([]string, 0, len(par.Lex.Errors)+len(par.Errors))
	errs = append(errs, par.Lex.Errors...)
	errs = append(errs, par.Errors...)
	return errs
}

// Parse is the main parsing function that converts source code into an
// AST. It repeatedly parses declarations until reaching the end of the
// input, building up a RootNode that contains all the parsed statements.
//
// A declaration that fails to parse is dropped and the parser
// synchronizes to the next statement boundary, so one error does not
// cascade into dozens of bogus follow-up errors.
func (par *Parser) Parse() *RootNode {

	// Create the root node that will hold all statements
	root := &RootNode{}
	root.Statements = make([]StatementNode, 0)

	// Parse declarations until we reach the end of file
	for par.CurrToken.Type != lexer.EOF {
		stmt := par.parseDeclaration()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		} else {
			par.synchronize()
		}
		par.advance()
	}

	return root
}

// synchronize implements panic-mode error recovery. It advances tokens
// until it sits on a ';' (so the caller's advance moves past it) or the
// next token starts a statement, then returns so parsing can resume at
// a clean boundary.
func (par *Parser) synchronize() {
	for par.CurrToken.Type != lexer.EOF {
		if par.CurrToken.Type == lexer.SEMICOLON {
			return
		}
		switch par.NextToken.Type {
		case lexer.CLASS, lexer.FUNCTION, lexer.LET, lexer.FOR,
			lexer.IF, lexer.WHILE, lexer.PRINT, lexer.RETURN:
			return
		}
		par.advance()
	}
}
