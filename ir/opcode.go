/*
File    : go-slate/ir/opcode.go
Project : go-slate
*/

// Package ir defines the intermediate representation the Slate toolchain
// lowers programs into, and the Generator that produces it from the AST.
//
// The IR is a flat list of stack-oriented instructions referencing
// symbolic labels. Structured control flow (if, while, short-circuit and/
// or) is rewritten into labels and conditional jumps; functions become a
// jump over the body plus a label constant bound to the function's name.
// Label positions are resolved to instruction indices by the VM at load
// time, so lowering never needs to back-patch.
package ir

// Opcode identifies an IR instruction operation.
// The set is closed: the VM dispatches on exactly these values.
type Opcode string

const (
	// === Stack operations ===

	// CONST pushes a literal value.
	// Operand: the value (number, string, boolean, nil or function handle)
	CONST Opcode = "CONST"

	// POP discards the top of the stack.
	// Emitted after every expression statement to keep the stack balanced.
	POP Opcode = "POP"

	// DUP duplicates the top of the stack.
	// Used by assignment (which is an expression) and the short-circuit
	// rewrites, where the tested value may also be the result.
	DUP Opcode = "DUP"

	// === Variable operations ===

	// LOAD pushes the value of a name. Operand: the name.
	LOAD Opcode = "LOAD"

	// STORE pops the top of the stack and assigns it to a name.
	// Operand: the name.
	STORE Opcode = "STORE"

	// === Arithmetic operations ===
	// Pop b, pop a, push a op b. ADD also concatenates two strings.

	ADD Opcode = "ADD"
	SUB Opcode = "SUB"
	MUL Opcode = "MUL"
	DIV Opcode = "DIV"

	// NEG negates the numeric top of the stack
	NEG Opcode = "NEG"

	// NOT replaces the top of the stack with the negation of its
	// truthiness
	NOT Opcode = "NOT"

	// === Comparison operations ===
	// Pop b, pop a, push a boolean.

	EQUAL         Opcode = "EQUAL"
	NOT_EQUAL     Opcode = "NOT_EQUAL"
	GREATER       Opcode = "GREATER"
	GREATER_EQUAL Opcode = "GREATER_EQUAL"
	LESS          Opcode = "LESS"
	LESS_EQUAL    Opcode = "LESS_EQUAL"

	// === Control flow ===

	// JMP branches unconditionally. Operand: a label.
	JMP Opcode = "JMP"

	// JMP_FALSE pops the top of the stack and branches when it is not
	// truthy. Operand: a label.
	JMP_FALSE Opcode = "JMP_FALSE"

	// JMP_TRUE pops the top of the stack and branches when it is truthy.
	// Operand: a label.
	JMP_TRUE Opcode = "JMP_TRUE"

	// LABEL marks a jump target. A runtime no-op: the VM collects label
	// positions in a single pass at load time.
	LABEL Opcode = "LABEL"

	// === Functions ===

	// FUNC marks the start of a function body. Operands: name, arity.
	// A runtime no-op kept as metadata for listings and sanity checks.
	FUNC Opcode = "FUNC"

	// PARAM pops the top of the stack and binds it to a parameter name.
	// Operand: the name.
	PARAM Opcode = "PARAM"

	// CALL invokes a function by name. Operands: name, argument count.
	// Arguments are on the stack, pushed in reverse source order so the
	// callee's first PARAM binds the first argument.
	CALL Opcode = "CALL"

	// RETURN pops the return value, pops a call frame and pushes the
	// value back for the caller. At top level it leaves the value pushed
	// and continues.
	RETURN Opcode = "RETURN"

	// PRINT pops and prints the top of the stack
	PRINT Opcode = "PRINT"
)
