/*
File    : go-slate/parser/tree_visitor.go
Project : go-slate
*/
package parser

import (
	"bytes"
	"fmt"
)

const INDENT_SIZE = 4

// TreeVisitor is a NodeVisitor that renders the AST as an indented
// outline. It backs the parse subcommand and is handy when debugging
// the parser or the lowering pass.
type TreeVisitor struct {
	Indent int
	Buf    bytes.Buffer
}

// indent writes the current indentation prefix
func (p *TreeVisitor) indent() {
	for i := 0; i < p.Indent; i++ {
		p.Buf.WriteString(" ")
	}
}

// write emits one indented line describing a node
func (p *TreeVisitor) write(format string, args ...any) {
	p.indent()
	p.Buf.WriteString(fmt.Sprintf(format, args...))
	p.Buf.WriteString("\n")
}

// nested visits a child subtree one indent level deeper
func (p *TreeVisitor) nested(nodes ...Node) {
	p.Indent += INDENT_SIZE
	for _, node := range nodes {
		if node != nil {
			node.Accept(p)
		}
	}
	p.Indent -= INDENT_SIZE
}

// VisitRootNode visits the root node
func (p *TreeVisitor) VisitRootNode(node RootNode) {
	p.write("Program")
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

// VisitLiteralExpressionNode visits a literal node
func (p *TreeVisitor) VisitLiteralExpressionNode(node LiteralExpressionNode) {
	p.write("Literal %s", node.Value.ToObject())
}

// VisitVariableExpressionNode visits a variable reference node
func (p *TreeVisitor) VisitVariableExpressionNode(node VariableExpressionNode) {
	p.write("Variable [%s]", node.Name.Lexeme)
}

// VisitGroupingExpressionNode visits a parenthesized expression node
func (p *TreeVisitor) VisitGroupingExpressionNode(node GroupingExpressionNode) {
	p.write("Grouping")
	p.nested(node.Expr)
}

// VisitUnaryExpressionNode visits a unary expression node
func (p *TreeVisitor) VisitUnaryExpressionNode(node UnaryExpressionNode) {
	p.write("Unary [%s]", node.Operation.Lexeme)
	p.nested(node.Right)
}

// VisitBinaryExpressionNode visits a binary expression node
func (p *TreeVisitor) VisitBinaryExpressionNode(node BinaryExpressionNode) {
	p.write("Binary [%s]", node.Operation.Lexeme)
	p.nested(node.Left, node.Right)
}

// VisitLogicalExpressionNode visits a logical expression node
func (p *TreeVisitor) VisitLogicalExpressionNode(node LogicalExpressionNode) {
	p.write("Logical [%s]", node.Operation.Lexeme)
	p.nested(node.Left, node.Right)
}

// VisitAssignmentExpressionNode visits an assignment node
func (p *TreeVisitor) VisitAssignmentExpressionNode(node AssignmentExpressionNode) {
	p.write("Assign [%s]", node.Name.Lexeme)
	p.nested(node.Value)
}

// VisitCallExpressionNode visits a call node
func (p *TreeVisitor) VisitCallExpressionNode(node CallExpressionNode) {
	p.write("Call")
	p.nested(node.Callee)
	for _, arg := range node.Arguments {
		p.nested(arg)
	}
}

// VisitExpressionStatementNode visits an expression statement node
func (p *TreeVisitor) VisitExpressionStatementNode(node ExpressionStatementNode) {
	p.write("ExpressionStatement")
	p.nested(node.Expr)
}

// VisitPrintStatementNode visits a print statement node
func (p *TreeVisitor) VisitPrintStatementNode(node PrintStatementNode) {
	p.write("Print")
	p.nested(node.Expr)
}

// VisitLetStatementNode visits a let declaration node
func (p *TreeVisitor) VisitLetStatementNode(node LetStatementNode) {
	p.write("Let [%s]", node.Name.Lexeme)
	if node.Initializer != nil {
		p.nested(node.Initializer)
	}
}

// VisitBlockStatementNode visits a block node
func (p *TreeVisitor) VisitBlockStatementNode(node BlockStatementNode) {
	p.write("Block")
	for _, stmt := range node.Statements {
		p.nested(stmt)
	}
}

// VisitIfStatementNode visits an if statement node
func (p *TreeVisitor) VisitIfStatementNode(node IfStatementNode) {
	p.write("If")
	p.nested(node.Condition, node.Then)
	if node.Else != nil {
		p.write("Else")
		p.nested(node.Else)
	}
}

// VisitWhileStatementNode visits a while statement node
func (p *TreeVisitor) VisitWhileStatementNode(node WhileStatementNode) {
	p.write("While")
	p.nested(node.Condition, node.Body)
}

// VisitFunctionStatementNode visits a function declaration node
func (p *TreeVisitor) VisitFunctionStatementNode(node FunctionStatementNode) {
	params := ""
	for i, param := range node.Params {
		if i > 0 {
			params += ","
		}
		params += param.Lexeme
	}
	p.write("Function [%s(%s)]", node.Name.Lexeme, params)
	p.nested(node.Body)
}

// VisitReturnStatementNode visits a return statement node
func (p *TreeVisitor) VisitReturnStatementNode(node ReturnStatementNode) {
	p.write("Return")
	if node.Value != nil {
		p.nested(node.Value)
	}
}

// String returns the rendered tree
func (p *TreeVisitor) String() string {
	return p.Buf.String()
}
