/*
File    : go-slate/resolver/resolver.go
Project : go-slate
*/

// Package resolver implements a static defined-before-use check for
// Slate programs.
//
// The check mirrors the runtime's flat name table: a let declaration,
// an assignment, a function declaration or a parameter binding defines
// a name; reading a name that nothing defined earlier is reported.
// Because names in Slate come and go dynamically, the check is advisory
// - it runs only behind the check subcommand, never in the execute
// pipeline, and the runtime behavior stays authoritative.
package resolver

import (
	"fmt"

	"github.com/alpharomercoma/go-slate/parser"
)

// Resolver walks the AST tracking which names have been defined.
// It implements parser.NodeVisitor.
type Resolver struct {
	defined map[string]bool
	errors  []string
}

// NewResolver creates a resolver with the built-in functions predefined.
func NewResolver() *Resolver {
	return &Resolver{
		defined: map[string]bool{
			"print": true,
			"clock": true,
		},
		errors: make([]string, 0),
	}
}

// Check analyzes the program and returns the diagnostics, formatted as
// "Semantic Error at line <n>: <message>". An empty slice means the
// program passed.
func (res *Resolver) Check(root *parser.RootNode) []string {
	root.Accept(res)
	return res.errors
}

// addError records one diagnostic at a source line.
func (res *Resolver) addError(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	res.errors = append(res.errors, fmt.Sprintf("Semantic Error at line %d: %s", line, msg))
}

// VisitRootNode checks every top-level statement in order.
func (res *Resolver) VisitRootNode(node parser.RootNode) {
	for _, stmt := range node.Statements {
		stmt.Accept(res)
	}
}

// VisitLiteralExpressionNode: literals reference no names.
func (res *Resolver) VisitLiteralExpressionNode(node parser.LiteralExpressionNode) {}

// VisitVariableExpressionNode reports a read of an undefined name.
func (res *Resolver) VisitVariableExpressionNode(node parser.VariableExpressionNode) {
	if !res.defined[node.Name.Lexeme] {
		res.addError(node.Name.Line, "Undefined variable '%s'.", node.Name.Lexeme)
	}
}

// VisitGroupingExpressionNode checks the inner expression.
func (res *Resolver) VisitGroupingExpressionNode(node parser.GroupingExpressionNode) {
	node.Expr.Accept(res)
}

// VisitUnaryExpressionNode checks the operand.
func (res *Resolver) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	node.Right.Accept(res)
}

// VisitBinaryExpressionNode checks both operands.
func (res *Resolver) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	node.Left.Accept(res)
	node.Right.Accept(res)
}

// VisitLogicalExpressionNode checks both operands.
func (res *Resolver) VisitLogicalExpressionNode(node parser.LogicalExpressionNode) {
	node.Left.Accept(res)
	node.Right.Accept(res)
}

// VisitAssignmentExpressionNode checks the value, then defines the
// target: in the flat runtime model an assignment to a new name creates
// it.
func (res *Resolver) VisitAssignmentExpressionNode(node parser.AssignmentExpressionNode) {
	node.Value.Accept(res)
	res.defined[node.Name.Lexeme] = true
}

// VisitCallExpressionNode checks the callee name and the arguments.
func (res *Resolver) VisitCallExpressionNode(node parser.CallExpressionNode) {
	if callee, ok := node.Callee.(*parser.VariableExpressionNode); ok {
		if !res.defined[callee.Name.Lexeme] {
			res.addError(callee.Name.Line, "Undefined function '%s'.", callee.Name.Lexeme)
		}
	} else {
		node.Callee.Accept(res)
	}
	for _, arg := range node.Arguments {
		arg.Accept(res)
	}
}

// VisitExpressionStatementNode checks the expression.
func (res *Resolver) VisitExpressionStatementNode(node parser.ExpressionStatementNode) {
	node.Expr.Accept(res)
}

// VisitPrintStatementNode checks the printed expression.
func (res *Resolver) VisitPrintStatementNode(node parser.PrintStatementNode) {
	node.Expr.Accept(res)
}

// VisitLetStatementNode checks the initializer, then defines the name.
// The name is not visible inside its own initializer.
func (res *Resolver) VisitLetStatementNode(node parser.LetStatementNode) {
	if node.Initializer != nil {
		node.Initializer.Accept(res)
	}
	res.defined[node.Name.Lexeme] = true
}

// VisitBlockStatementNode checks the contained statements in order.
func (res *Resolver) VisitBlockStatementNode(node parser.BlockStatementNode) {
	for _, stmt := range node.Statements {
		stmt.Accept(res)
	}
}

// VisitIfStatementNode checks the condition and both branches.
func (res *Resolver) VisitIfStatementNode(node parser.IfStatementNode) {
	node.Condition.Accept(res)
	node.Then.Accept(res)
	if node.Else != nil {
		node.Else.Accept(res)
	}
}

// VisitWhileStatementNode checks the condition and the body.
func (res *Resolver) VisitWhileStatementNode(node parser.WhileStatementNode) {
	node.Condition.Accept(res)
	node.Body.Accept(res)
}

// VisitFunctionStatementNode defines the function name before checking
// the body, so recursive calls resolve. Parameters are defined for the
// body; like the runtime's flat table, they stay defined afterwards.
func (res *Resolver) VisitFunctionStatementNode(node parser.FunctionStatementNode) {
	res.defined[node.Name.Lexeme] = true
	for _, param := range node.Params {
		res.defined[param.Lexeme] = true
	}
	node.Body.Accept(res)
}

// VisitReturnStatementNode checks the returned value, if any.
func (res *Resolver) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	if node.Value != nil {
		node.Value.Accept(res)
	}
}
