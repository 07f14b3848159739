/*
File    : go-slate/lexer/lexer_utils.go
Project : go-slate
*/
package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// isWhitespace checks if the given byte is a whitespace character.
// Slate treats space, carriage return, tab and newline as whitespace;
// the newline case additionally advances the line counter in the caller.
func isWhitespace(curr byte) bool {
	return curr == ' ' || curr == '\r' || curr == '\t' || curr == '\n'
}

// isNumeric checks if the given byte is a decimal digit (0-9).
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte can start an identifier.
// Identifiers match [A-Za-z_][A-Za-z0-9_]*, so letters and underscore
// qualify here.
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z') || curr == '_'
}

// isAlphanumeric checks if the given byte can continue an identifier:
// a letter, a digit, or an underscore.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}

// readStringLiteral reads and tokenizes a string literal from the source.
// String literals are enclosed in double quotes and undergo no escape
// processing: the literal value is the raw contents without the quotes.
// Newlines inside a string are allowed and advance the line counter.
//
// An unterminated string is reported to the error sink and yields the
// EOF token, since the string ran to the end of the source.
func readStringLiteral(lex *Lexer) Token {
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	// Read characters until the closing quote
	for lex.Current != '"' {
		// Unterminated string: the source ended before the closing quote
		if lex.Current == 0 {
			lex.addError(fmt.Sprintf("[line %d] Error: Unterminated string.", lex.Line))
			return NewTokenWithLiteral(EOF, "", nil, lex.Line)
		}
		if lex.Current == '\n' {
			lex.Line++
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // Consume closing quote

	value := builder.String()
	return NewTokenWithLiteral(STRING, `"`+value+`"`, value, lex.Line)
}

// readNumber reads and tokenizes a numeric literal from the source.
// A number is one or more digits, optionally followed by a '.' and one
// or more digits. A trailing dot with no fractional digits is NOT part
// of the number: the '.' is left unread for the next token.
//
// The literal value is the decoded float64.
func readNumber(lex *Lexer) Token {
	var builder strings.Builder

	for isNumeric(lex.Current) {
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	// Consume a fractional part only if a digit follows the dot
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		builder.WriteByte(lex.Current)
		lex.Advance()
		for isNumeric(lex.Current) {
			builder.WriteByte(lex.Current)
			lex.Advance()
		}
	}

	lexeme := builder.String()
	value, _ := strconv.ParseFloat(lexeme, 64)
	return NewTokenWithLiteral(NUMBER, lexeme, value, lex.Line)
}

// readIdentifier reads an identifier or keyword from the source.
// Identifiers match [A-Za-z_][A-Za-z0-9_]*. If the scanned text exactly
// matches a reserved word it becomes the corresponding keyword token,
// otherwise an IDENTIFIER token.
func readIdentifier(lex *Lexer) Token {
	var builder strings.Builder

	for isAlphanumeric(lex.Current) {
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lexeme := builder.String()
	return NewTokenWithLiteral(lookupIdent(lexeme), lexeme, nil, lex.Line)
}

// lookupIdent determines the token type for an identifier string.
// It checks KEYWORDS_MAP to decide whether the identifier is a reserved
// keyword; anything else is a user-defined identifier.
func lookupIdent(ident string) TokenType {
	// Check if the identifier is a keyword
	if tok, ok := KEYWORDS_MAP[ident]; ok {
		return tok
	}
	// Not a keyword, so it's a user-defined identifier
	return IDENTIFIER
}
