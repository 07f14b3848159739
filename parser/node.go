/*
File    : go-slate/parser/node.go
Project : go-slate
*/
package parser

import (
	"strings"

	"github.com/alpharomercoma/go-slate/lexer"
	"github.com/alpharomercoma/go-slate/objects"
)

// NodeVisitor implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific node
// type, enabling operations like lowering, printing, or analysis without
// switching on node types at every call site.
type NodeVisitor interface {
	VisitRootNode(node RootNode) // Entry point for visiting the entire program

	// Expression visitors
	VisitLiteralExpressionNode(node LiteralExpressionNode)       // Literals: 42, "hi", true, nil
	VisitVariableExpressionNode(node VariableExpressionNode)     // Variable references: x, myVar
	VisitGroupingExpressionNode(node GroupingExpressionNode)     // Parenthesized expressions: (expr)
	VisitUnaryExpressionNode(node UnaryExpressionNode)           // Unary operations: -, !
	VisitBinaryExpressionNode(node BinaryExpressionNode)         // Binary operations: + - * / == != < <= > >=
	VisitLogicalExpressionNode(node LogicalExpressionNode)       // Short-circuit operations: and, or
	VisitAssignmentExpressionNode(node AssignmentExpressionNode) // Assignments: x = 10
	VisitCallExpressionNode(node CallExpressionNode)             // Function calls: f(a, b)

	// Statement visitors
	VisitExpressionStatementNode(node ExpressionStatementNode) // Expression statements: expr;
	VisitPrintStatementNode(node PrintStatementNode)           // Print statements: print expr;
	VisitLetStatementNode(node LetStatementNode)               // Variable declarations: let x = 10;
	VisitBlockStatementNode(node BlockStatementNode)           // Code blocks: { stmt1; stmt2; }
	VisitIfStatementNode(node IfStatementNode)                 // If-else conditionals
	VisitWhileStatementNode(node WhileStatementNode)           // While loops
	VisitFunctionStatementNode(node FunctionStatementNode)     // Function declarations
	VisitReturnStatementNode(node ReturnStatementNode)         // Return statements
}

// Node: base interface for all nodes of the AST
// Literal(): returns the string representation of the node
// Accept(): accepts a visitor
type Node interface {
	Literal() string
	Accept(visitor NodeVisitor)
}

// StatementNode: base interface for all statement nodes
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes.
// Expressions are not statements by themselves; an expression used in
// statement position is wrapped in an ExpressionStatementNode.
type ExpressionNode interface {
	Node
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of top-level declarations in the program
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var sb strings.Builder
	for _, stmt := range root.Statements {
		sb.WriteString(stmt.Literal())
	}
	return sb.String()
}

// RootNode.Accept(): accepts a visitor (e.g. TreeVisitor, ir.Generator)
func (root *RootNode) Accept(visitor NodeVisitor) {
	visitor.VisitRootNode(*root)
}

// LiteralExpressionNode: represents a literal value in the source.
// The Value is the already-decoded runtime object: a number, a string,
// a boolean, or nil.
// Example: 42, 3.14, "hello", true, nil
type LiteralExpressionNode struct {
	Token lexer.Token         // The literal token
	Value objects.SlateObject // The decoded runtime value
}

func (node *LiteralExpressionNode) Literal() string {
	return node.Token.Lexeme
}

func (node *LiteralExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLiteralExpressionNode(*node)
}

func (node *LiteralExpressionNode) Expression() {}

// VariableExpressionNode: a reference to a named variable.
// Example: x, counter, sq
type VariableExpressionNode struct {
	Name lexer.Token // The identifier token holding the name
}

func (node *VariableExpressionNode) Literal() string {
	return node.Name.Lexeme
}

func (node *VariableExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitVariableExpressionNode(*node)
}

func (node *VariableExpressionNode) Expression() {}

// GroupingExpressionNode: a parenthesized expression.
// Example: (a + b)
type GroupingExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

func (node *GroupingExpressionNode) Literal() string {
	return "(" + node.Expr.Literal() + ")"
}

func (node *GroupingExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitGroupingExpressionNode(*node)
}

func (node *GroupingExpressionNode) Expression() {}

// UnaryExpressionNode: a prefix operator applied to an operand.
// Example: -x, !done
type UnaryExpressionNode struct {
	Operation lexer.Token    // The operator token (- or !)
	Right     ExpressionNode // The operand
}

func (node *UnaryExpressionNode) Literal() string {
	return node.Operation.Lexeme + node.Right.Literal()
}

func (node *UnaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitUnaryExpressionNode(*node)
}

func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode: an infix operator with two operands.
// Covers arithmetic, comparison and equality operators.
// Example: a + b, x < 10, a == b
type BinaryExpressionNode struct {
	Left      ExpressionNode // Left operand
	Operation lexer.Token    // The operator token
	Right     ExpressionNode // Right operand
}

func (node *BinaryExpressionNode) Literal() string {
	return node.Left.Literal() + node.Operation.Lexeme + node.Right.Literal()
}

func (node *BinaryExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitBinaryExpressionNode(*node)
}

func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode: a short-circuit boolean operator.
// Distinct from BinaryExpressionNode because the right operand must not
// be evaluated when the left already decides the result.
// Example: a and b, ready or retry
type LogicalExpressionNode struct {
	Left      ExpressionNode // Left operand
	Operation lexer.Token    // The operator token (and / or)
	Right     ExpressionNode // Right operand
}

func (node *LogicalExpressionNode) Literal() string {
	return node.Left.Literal() + " " + node.Operation.Lexeme + " " + node.Right.Literal()
}

func (node *LogicalExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitLogicalExpressionNode(*node)
}

func (node *LogicalExpressionNode) Expression() {}

// AssignmentExpressionNode: assignment to a simple variable.
// Assignment is an expression: its value is the assigned value, which
// allows chains like a = b = 1.
// Example: x = 10
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The identifier being assigned
	Value ExpressionNode // The value expression
}

func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Lexeme + "=" + node.Value.Literal()
}

func (node *AssignmentExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignmentExpressionNode(*node)
}

func (node *AssignmentExpressionNode) Expression() {}

// CallExpressionNode: a function invocation.
// The callee is an expression, though lowering requires it to be a
// simple identifier. Paren is the '(' token, kept for diagnostics.
// Example: sq(5), f(10, 3)
type CallExpressionNode struct {
	Callee    ExpressionNode   // The expression being called
	Paren     lexer.Token      // The '(' token at the call site
	Arguments []ExpressionNode // Argument expressions, in source order
}

func (node *CallExpressionNode) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return node.Callee.Literal() + "(" + strings.Join(args, ",") + ")"
}

func (node *CallExpressionNode) Accept(visitor NodeVisitor) {
	visitor.VisitCallExpressionNode(*node)
}

func (node *CallExpressionNode) Expression() {}

// ExpressionStatementNode: an expression evaluated for its side effects,
// with the result discarded.
// Example: f(1); x = 2;
type ExpressionStatementNode struct {
	Expr ExpressionNode
}

func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

func (node *ExpressionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitExpressionStatementNode(*node)
}

func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode: prints the value of an expression.
// Example: print 1 + 2;
type PrintStatementNode struct {
	Expr ExpressionNode
}

func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

func (node *PrintStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitPrintStatementNode(*node)
}

func (node *PrintStatementNode) Statement() {}

// LetStatementNode: a variable declaration with an optional initializer.
// A let without initializer defaults the variable to 0.
// Example: let x = 10; let y;
type LetStatementNode struct {
	Name        lexer.Token    // The declared identifier
	Initializer ExpressionNode // Initializer expression, or nil if omitted
}

func (node *LetStatementNode) Literal() string {
	if node.Initializer == nil {
		return "let " + node.Name.Lexeme + ";"
	}
	return "let " + node.Name.Lexeme + "=" + node.Initializer.Literal() + ";"
}

func (node *LetStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitLetStatementNode(*node)
}

func (node *LetStatementNode) Statement() {}

// BlockStatementNode: a brace-delimited sequence of declarations.
// Example: { let x = 5; print x; }
type BlockStatementNode struct {
	Statements []StatementNode
}

func (node *BlockStatementNode) Literal() string {
	var sb strings.Builder
	sb.WriteString("{")
	for _, stmt := range node.Statements {
		sb.WriteString(stmt.Literal())
	}
	sb.WriteString("}")
	return sb.String()
}

func (node *BlockStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockStatementNode(*node)
}

func (node *BlockStatementNode) Statement() {}

// IfStatementNode: a conditional with an optional else branch.
// Example: if (a < b) print a; else print b;
type IfStatementNode struct {
	Condition ExpressionNode // The condition expression
	Then      StatementNode  // Statement executed when truthy
	Else      StatementNode  // Statement executed when falsy, or nil
}

func (node *IfStatementNode) Literal() string {
	res := "if(" + node.Condition.Literal() + ")" + node.Then.Literal()
	if node.Else != nil {
		res += "else " + node.Else.Literal()
	}
	return res
}

func (node *IfStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitIfStatementNode(*node)
}

func (node *IfStatementNode) Statement() {}

// WhileStatementNode: a pre-tested loop.
// The parser also produces these for 'for' loops, which are desugared
// into a block holding the initializer and a while.
// Example: while (i < 3) { print i; i = i + 1; }
type WhileStatementNode struct {
	Condition ExpressionNode // The loop condition
	Body      StatementNode  // The loop body
}

func (node *WhileStatementNode) Literal() string {
	return "while(" + node.Condition.Literal() + ")" + node.Body.Literal()
}

func (node *WhileStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitWhileStatementNode(*node)
}

func (node *WhileStatementNode) Statement() {}

// FunctionStatementNode: a named function declaration.
// Example: function sq(x) { return x * x; }
type FunctionStatementNode struct {
	Name   lexer.Token         // The function name
	Params []lexer.Token       // Parameter names, in declaration order
	Body   *BlockStatementNode // The function body
}

func (node *FunctionStatementNode) Literal() string {
	params := make([]string, 0, len(node.Params))
	for _, p := range node.Params {
		params = append(params, p.Lexeme)
	}
	return "function " + node.Name.Lexeme + "(" + strings.Join(params, ",") + ")" + node.Body.Literal()
}

func (node *FunctionStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitFunctionStatementNode(*node)
}

func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode: returns from the enclosing function.
// A bare 'return;' yields nil.
type ReturnStatementNode struct {
	Keyword lexer.Token    // The 'return' token, kept for diagnostics
	Value   ExpressionNode // Return value expression, or nil
}

func (node *ReturnStatementNode) Literal() string {
	if node.Value == nil {
		return "return;"
	}
	return "return " + node.Value.Literal() + ";"
}

func (node *ReturnStatementNode) Accept(visitor NodeVisitor) {
	visitor.VisitReturnStatementNode(*node)
}

func (node *ReturnStatementNode) Statement() {}
