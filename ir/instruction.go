/*
File    : go-slate/ir/instruction.go
Project : go-slate
*/
package ir

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alpharomercoma/go-slate/objects"
)

// Instruction is a single IR operation: an opcode plus its operands.
// Operands are either a literal value (objects.SlateObject), an
// identifier name (string), a symbolic label (string), or an argument
// count (int). Which of those apply is fixed per opcode.
type Instruction struct {
	Op       Opcode // The operation to perform
	Operands []any  // Operand list, possibly empty
}

// NewInstruction creates an instruction from an opcode and operands.
func NewInstruction(op Opcode, operands ...any) Instruction {
	return Instruction{Op: op, Operands: operands}
}

// String renders the instruction the way the listing shows it, e.g.
// "CONST 7", "JMP_FALSE L2", "CALL sq 1".
func (instr Instruction) String() string {
	if len(instr.Operands) == 0 {
		return string(instr.Op)
	}
	parts := make([]string, 0, len(instr.Operands)+1)
	parts = append(parts, string(instr.Op))
	for _, operand := range instr.Operands {
		parts = append(parts, formatOperand(operand))
	}
	return strings.Join(parts, " ")
}

// formatOperand renders a single operand for listings.
// String literals are quoted so they cannot be confused with names or
// labels; everything else uses its display form.
func formatOperand(operand any) string {
	switch op := operand.(type) {
	case *objects.String:
		return strconv.Quote(op.Value)
	case *objects.Function:
		return op.Label
	case objects.SlateObject:
		return op.ToString()
	default:
		return fmt.Sprintf("%v", op)
	}
}

// Dump writes an indexed instruction listing to w.
// This is the output of the ir subcommand and of run --dump-ir.
func Dump(w io.Writer, instructions []Instruction) {
	for i, instr := range instructions {
		fmt.Fprintf(w, "%3d: %s\n", i, instr.String())
	}
}
