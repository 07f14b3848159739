/*
File    : go-slate/ir/generator.go
Project : go-slate
*/
package ir

import (
	"fmt"

	"github.com/alpharomercoma/go-slate/lexer"
	"github.com/alpharomercoma/go-slate/objects"
	"github.com/alpharomercoma/go-slate/parser"
)

// Generator lowers an AST into the flat IR instruction list.
// It implements parser.NodeVisitor, so lowering is a single Accept walk
// over the tree: each Visit method appends the instructions for its node,
// recursing into children where needed.
//
// Fresh labels are generated as monotonically increasing identifiers
// unique per Generator instance. A REPL session shares one Generator
// across inputs precisely so that labels stay unique across them.
type Generator struct {
	instructions []Instruction
	labelCounter int
	errors       []string
}

// NewGenerator creates a new, empty IR generator.
func NewGenerator() *Generator {
	return &Generator{
		instructions: make([]Instruction, 0),
		errors:       make([]string, 0),
	}
}

// Generate lowers the program rooted at root and returns the
// instruction list. The instruction buffer and error sink are reset per
// call; the label counter is not, so repeated Generate calls on one
// Generator never reuse a label.
func (gen *Generator) Generate(root *parser.RootNode) []Instruction {
	gen.instructions = make([]Instruction, 0)
	gen.errors = make([]string, 0)
	root.Accept(gen)
	return gen.instructions
}

// HasErrors returns true if lowering hit a construct it cannot compile
// (currently: a call whose callee is not a simple identifier).
func (gen *Generator) HasErrors() bool {
	return len(gen.errors) > 0
}

// GetErrors returns the lowering errors collected by the last Generate.
func (gen *Generator) GetErrors() []string {
	return gen.errors
}

// emit appends one instruction to the output list
func (gen *Generator) emit(op Opcode, operands ...any) {
	gen.instructions = append(gen.instructions, NewInstruction(op, operands...))
}

// newLabel returns a fresh symbolic label (L1, L2, ...)
func (gen *Generator) newLabel() string {
	gen.labelCounter++
	return fmt.Sprintf("L%d", gen.labelCounter)
}

// addError records a lowering error at the given token
func (gen *Generator) addError(tok lexer.Token, msg string) {
	gen.errors = append(gen.errors, fmt.Sprintf("Error at '%s': %s", tok.Lexeme, msg))
}

// VisitRootNode lowers every top-level statement in order.
func (gen *Generator) VisitRootNode(node parser.RootNode) {
	for _, stmt := range node.Statements {
		stmt.Accept(gen)
	}
}

// VisitLiteralExpressionNode lowers a literal to a CONST push.
func (gen *Generator) VisitLiteralExpressionNode(node parser.LiteralExpressionNode) {
	gen.emit(CONST, node.Value)
}

// VisitVariableExpressionNode lowers a variable reference to a LOAD.
func (gen *Generator) VisitVariableExpressionNode(node parser.VariableExpressionNode) {
	gen.emit(LOAD, node.Name.Lexeme)
}

// VisitGroupingExpressionNode lowers the inner expression; the
// parentheses themselves leave no trace in the IR.
func (gen *Generator) VisitGroupingExpressionNode(node parser.GroupingExpressionNode) {
	node.Expr.Accept(gen)
}

// VisitUnaryExpressionNode lowers the operand, then the operator.
func (gen *Generator) VisitUnaryExpressionNode(node parser.UnaryExpressionNode) {
	node.Right.Accept(gen)
	switch node.Operation.Type {
	case lexer.MINUS:
		gen.emit(NEG)
	case lexer.BANG:
		gen.emit(NOT)
	}
}

// VisitBinaryExpressionNode lowers left, then right, then the opcode for
// the operator.
func (gen *Generator) VisitBinaryExpressionNode(node parser.BinaryExpressionNode) {
	node.Left.Accept(gen)
	node.Right.Accept(gen)

	switch node.Operation.Type {
	case lexer.PLUS:
		gen.emit(ADD)
	case lexer.MINUS:
		gen.emit(SUB)
	case lexer.STAR:
		gen.emit(MUL)
	case lexer.SLASH:
		gen.emit(DIV)
	case lexer.EQUAL_EQUAL:
		gen.emit(EQUAL)
	case lexer.BANG_EQUAL:
		gen.emit(NOT_EQUAL)
	case lexer.GREATER:
		gen.emit(GREATER)
	case lexer.GREATER_EQUAL:
		gen.emit(GREATER_EQUAL)
	case lexer.LESS:
		gen.emit(LESS)
	case lexer.LESS_EQUAL:
		gen.emit(LESS_EQUAL)
	}
}

// VisitLogicalExpressionNode lowers the short-circuit operators into
// conditional jumps:
//
//	a or b:   a; DUP; JMP_TRUE end; POP; b; LABEL end
//	a and b:  a; DUP; JMP_FALSE end; POP; b; LABEL end
//
// When the left operand decides the result, its duplicated value is
// what remains on the stack and the right operand is never evaluated.
func (gen *Generator) VisitLogicalExpressionNode(node parser.LogicalExpressionNode) {
	end := gen.newLabel()

	node.Left.Accept(gen)
	gen.emit(DUP)
	if node.Operation.Type == lexer.OR {
		gen.emit(JMP_TRUE, end)
	} else {
		gen.emit(JMP_FALSE, end)
	}
	gen.emit(POP)
	node.Right.Accept(gen)
	gen.emit(LABEL, end)
}

// VisitAssignmentExpressionNode lowers an assignment. The DUP keeps the
// assigned value on the stack, which is what makes assignment an
// expression.
func (gen *Generator) VisitAssignmentExpressionNode(node parser.AssignmentExpressionNode) {
	node.Value.Accept(gen)
	gen.emit(DUP)
	gen.emit(STORE, node.Name.Lexeme)
}

// VisitCallExpressionNode lowers a function call. The callee must be a
// simple identifier - Slate functions are always called by name.
//
// Arguments are lowered in reverse source order, so at runtime the last
// argument is evaluated first and the first argument ends up on top of
// the stack, where the callee's first PARAM (which pops) binds it.
func (gen *Generator) VisitCallExpressionNode(node parser.CallExpressionNode) {
	callee, ok := node.Callee.(*parser.VariableExpressionNode)
	if !ok {
		gen.addError(node.Paren, "Can only call functions by name.")
		return
	}

	for i := len(node.Arguments) - 1; i >= 0; i-- {
		node.Arguments[i].Accept(gen)
	}
	gen.emit(CALL, callee.Name.Lexeme, len(node.Arguments))
}

// VisitExpressionStatementNode lowers the expression and discards its
// value, keeping the stack balanced across statement boundaries.
func (gen *Generator) VisitExpressionStatementNode(node parser.ExpressionStatementNode) {
	node.Expr.Accept(gen)
	gen.emit(POP)
}

// VisitPrintStatementNode lowers the expression and prints it.
func (gen *Generator) VisitPrintStatementNode(node parser.PrintStatementNode) {
	node.Expr.Accept(gen)
	gen.emit(PRINT)
}

// VisitLetStatementNode lowers a declaration. A missing initializer
// defaults the variable to 0.
func (gen *Generator) VisitLetStatementNode(node parser.LetStatementNode) {
	if node.Initializer != nil {
		node.Initializer.Accept(gen)
	} else {
		gen.emit(CONST, &objects.Number{Value: 0})
	}
	gen.emit(STORE, node.Name.Lexeme)
}

// VisitBlockStatementNode lowers the contained statements in order.
func (gen *Generator) VisitBlockStatementNode(node parser.BlockStatementNode) {
	for _, stmt := range node.Statements {
		stmt.Accept(gen)
	}
}

// VisitIfStatementNode lowers a conditional:
//
//	cond; JMP_FALSE else; then; JMP end; LABEL else; [else]; LABEL end
func (gen *Generator) VisitIfStatementNode(node parser.IfStatementNode) {
	elseLabel := gen.newLabel()
	endLabel := gen.newLabel()

	node.Condition.Accept(gen)
	gen.emit(JMP_FALSE, elseLabel)
	node.Then.Accept(gen)
	gen.emit(JMP, endLabel)

	gen.emit(LABEL, elseLabel)
	if node.Else != nil {
		node.Else.Accept(gen)
	}
	gen.emit(LABEL, endLabel)
}

// VisitWhileStatementNode lowers a loop:
//
//	LABEL start; cond; JMP_FALSE end; body; JMP start; LABEL end
func (gen *Generator) VisitWhileStatementNode(node parser.WhileStatementNode) {
	startLabel := gen.newLabel()
	endLabel := gen.newLabel()

	gen.emit(LABEL, startLabel)
	node.Condition.Accept(gen)
	gen.emit(JMP_FALSE, endLabel)

	node.Body.Accept(gen)
	gen.emit(JMP, startLabel)
	gen.emit(LABEL, endLabel)
}

// VisitFunctionStatementNode lowers a function declaration.
//
// The body is placed inline, jumped over by the surrounding code:
//
//	JMP end
//	LABEL start
//	FUNC name arity
//	PARAM p1 ... PARAM pn   (declaration order)
//	body
//	CONST nil; RETURN       (fallthrough return)
//	LABEL end
//	CONST <handle@start>; STORE name
//
// The function's runtime value is the handle for the start label, bound
// to its name like any other variable.
func (gen *Generator) VisitFunctionStatementNode(node parser.FunctionStatementNode) {
	startLabel := gen.newLabel()
	endLabel := gen.newLabel()

	gen.emit(JMP, endLabel)
	gen.emit(LABEL, startLabel)
	gen.emit(FUNC, node.Name.Lexeme, len(node.Params))
	for _, param := range node.Params {
		gen.emit(PARAM, param.Lexeme)
	}
	node.Body.Accept(gen)

	// Fallthrough return: every control-flow path through the body ends
	// in a RETURN
	gen.emit(CONST, &objects.Nil{})
	gen.emit(RETURN)
	gen.emit(LABEL, endLabel)

	gen.emit(CONST, &objects.Function{
		Name:  node.Name.Lexeme,
		Label: startLabel,
		Arity: len(node.Params),
	})
	gen.emit(STORE, node.Name.Lexeme)
}

// VisitReturnStatementNode lowers a return; a bare return yields nil.
func (gen *Generator) VisitReturnStatementNode(node parser.ReturnStatementNode) {
	if node.Value != nil {
		node.Value.Accept(gen)
	} else {
		gen.emit(CONST, &objects.Nil{})
	}
	gen.emit(RETURN)
}
