/*
File    : go-slate/vm/vm.go
Project : go-slate
*/

// Package vm implements the stack virtual machine that executes Slate IR.
//
// The VM is the final stage of the pipeline:
//
//	Source -> Lexer -> Parser -> AST -> Generator -> IR -> VM
//
// Architecture:
//
//  1. Value stack: holds intermediate values during computation
//  2. Globals: a single flat name table for every variable and function
//  3. Call stack: (return ip, globals snapshot) frames
//  4. Labels: symbolic label -> instruction index, resolved at load time
//
// Execution fetches the instruction at ip, advances ip, and dispatches
// on the opcode. The machine halts when ip runs off the end of the
// program.
//
// Slate has no lexical scope chain at runtime: every name is looked up
// in the one active flat table. A call snapshots the caller's table; a
// return restores the snapshot but carries over names that did not exist
// at call time, which is what keeps top-level definitions made inside a
// function alive after it returns.
package vm

import (
	"fmt"
	"io"
	"os"

	"github.com/alpharomercoma/go-slate/ir"
	"github.com/alpharomercoma/go-slate/objects"
)

// Frame is a saved call context: where to resume, and the caller's
// globals snapshot to restore. RETURN is the only way a frame is popped.
type Frame struct {
	ReturnIP int                            // Instruction index to resume at
	Globals  map[string]objects.SlateObject // Caller's name table at call time
}

// VM represents the virtual machine that executes IR instruction lists.
//
// A VM is reusable: Load starts a fresh program while keeping the name
// table, which is what interactive mode relies on to preserve state
// across inputs.
type VM struct {
	instructions []ir.Instruction               // The loaded program
	labels       map[string]int                 // Label -> instruction index
	stack        []objects.SlateObject          // Value stack
	globals      map[string]objects.SlateObject // Flat name table
	callStack    []Frame                        // Call frames
	ip           int                            // Instruction pointer
	writer       io.Writer                      // Destination for print output
}

// NewVM creates a virtual machine with an empty program and name table.
// Output goes to stdout until SetWriter changes it.
func NewVM() *VM {
	return &VM{
		instructions: make([]ir.Instruction, 0),
		labels:       make(map[string]int),
		stack:        make([]objects.SlateObject, 0),
		globals:      make(map[string]objects.SlateObject),
		callStack:    make([]Frame, 0),
		writer:       os.Stdout,
	}
}

// SetWriter redirects print output, e.g. into a buffer under test.
func (m *VM) SetWriter(w io.Writer) {
	m.writer = w
}

// Load installs a new program: the label index is rebuilt in a single
// pass, and the instruction pointer, value stack and call stack are
// zeroed. The name table is deliberately kept, so a reused VM preserves
// globals from earlier runs.
func (m *VM) Load(instructions []ir.Instruction) {
	m.instructions = instructions
	m.labels = make(map[string]int)
	m.collectLabels(0)
	m.ip = 0
	m.stack = m.stack[:0]
	m.callStack = m.callStack[:0]
}

// Append extends the loaded program with more instructions and positions
// the instruction pointer at the start of the new chunk. Earlier
// instructions stay addressable, so function bodies defined by previous
// inputs remain callable. This is the interactive-mode loading path.
func (m *VM) Append(instructions []ir.Instruction) {
	start := len(m.instructions)
	m.instructions = append(m.instructions, instructions...)
	m.collectLabels(start)
	m.ip = start
	m.stack = m.stack[:0]
	m.callStack = m.callStack[:0]
}

// Reset clears the whole machine, name table included.
func (m *VM) Reset() {
	m.instructions = m.instructions[:0]
	m.labels = make(map[string]int)
	m.stack = m.stack[:0]
	m.globals = make(map[string]objects.SlateObject)
	m.callStack = m.callStack[:0]
	m.ip = 0
}

// collectLabels indexes LABEL instructions from position start onward.
func (m *VM) collectLabels(start int) {
	for i := start; i < len(m.instructions); i++ {
		if m.instructions[i].Op == ir.LABEL {
			m.labels[m.instructions[i].Operands[0].(string)] = i
		}
	}
}

// Globals exposes the name table for inspection (tests, diagnostics).
func (m *VM) Globals() map[string]objects.SlateObject {
	return m.globals
}

// Run executes the loaded program until the instruction pointer reaches
// the end. A runtime error (undefined name, type error, bad arity,
// division by zero, unknown label) terminates the run and is returned;
// the machine state is left as-is, which interactive mode relies on.
func (m *VM) Run() error {
	for m.ip < len(m.instructions) {
		instruction := m.instructions[m.ip]
		m.ip++
		if err := m.execute(instruction); err != nil {
			return err
		}
	}
	return nil
}

// execute dispatches a single instruction.
func (m *VM) execute(instruction ir.Instruction) error {
	switch instruction.Op {

	// Stack operations
	case ir.CONST:
		m.push(instruction.Operands[0].(objects.SlateObject))

	case ir.POP:
		if _, err := m.pop(); err != nil {
			return err
		}

	case ir.DUP:
		top, err := m.peek()
		if err != nil {
			return err
		}
		m.push(top)

	// Variable operations
	case ir.LOAD:
		name := instruction.Operands[0].(string)
		value, ok := m.globals[name]
		if !ok {
			return fmt.Errorf("Undefined variable '%s'.", name)
		}
		m.push(value)

	case ir.STORE:
		name := instruction.Operands[0].(string)
		value, err := m.pop()
		if err != nil {
			return err
		}
		m.globals[name] = value

	// Arithmetic operations
	case ir.ADD:
		b, a, err := m.popPair()
		if err != nil {
			return err
		}
		return m.executeAdd(a, b)

	case ir.SUB:
		return m.numericBinary(instruction.Op)

	case ir.MUL:
		return m.numericBinary(instruction.Op)

	case ir.DIV:
		return m.numericBinary(instruction.Op)

	case ir.NEG:
		value, err := m.pop()
		if err != nil {
			return err
		}
		num, ok := value.(*objects.Number)
		if !ok {
			return fmt.Errorf("Operand must be a number.")
		}
		m.push(&objects.Number{Value: -num.Value})

	case ir.NOT:
		value, err := m.pop()
		if err != nil {
			return err
		}
		m.push(&objects.Boolean{Value: !objects.IsTruthy(value)})

	// Comparison operations
	case ir.EQUAL:
		b, a, err := m.popPair()
		if err != nil {
			return err
		}
		m.push(&objects.Boolean{Value: objects.Equals(a, b)})

	case ir.NOT_EQUAL:
		b, a, err := m.popPair()
		if err != nil {
			return err
		}
		m.push(&objects.Boolean{Value: !objects.Equals(a, b)})

	case ir.GREATER, ir.GREATER_EQUAL, ir.LESS, ir.LESS_EQUAL:
		return m.numericBinary(instruction.Op)

	// Control flow
	case ir.JMP:
		return m.jump(instruction.Operands[0].(string))

	case ir.JMP_FALSE:
		condition, err := m.pop()
		if err != nil {
			return err
		}
		target, ok := m.labels[instruction.Operands[0].(string)]
		if !ok {
			return fmt.Errorf("Unknown label '%s'.", instruction.Operands[0])
		}
		if !objects.IsTruthy(condition) {
			m.ip = target
		}

	case ir.JMP_TRUE:
		condition, err := m.pop()
		if err != nil {
			return err
		}
		target, ok := m.labels[instruction.Operands[0].(string)]
		if !ok {
			return fmt.Errorf("Unknown label '%s'.", instruction.Operands[0])
		}
		if objects.IsTruthy(condition) {
			m.ip = target
		}

	// Functions
	case ir.CALL:
		name := instruction.Operands[0].(string)
		argc := instruction.Operands[1].(int)
		return m.executeCall(name, argc)

	case ir.RETURN:
		return m.executeReturn()

	case ir.PARAM:
		name := instruction.Operands[0].(string)
		value, err := m.pop()
		if err != nil {
			return err
		}
		m.globals[name] = value

	// Metadata: no-ops at runtime
	case ir.LABEL, ir.FUNC:

	case ir.PRINT:
		value, err := m.pop()
		if err != nil {
			return err
		}
		fmt.Fprintln(m.writer, value.ToString())

	default:
		return fmt.Errorf("Unknown instruction '%s'.", instruction.Op)
	}

	return nil
}

// jump sets the instruction pointer to a label's position.
func (m *VM) jump(label string) error {
	target, ok := m.labels[label]
	if !ok {
		return fmt.Errorf("Unknown label '%s'.", label)
	}
	m.ip = target
	return nil
}

// executeAdd implements ADD: numeric addition on two numbers, string
// concatenation on two strings, a type error on any other combination.
func (m *VM) executeAdd(a, b objects.SlateObject) error {
	if an, ok := a.(*objects.Number); ok {
		if bn, ok := b.(*objects.Number); ok {
			m.push(&objects.Number{Value: an.Value + bn.Value})
			return nil
		}
	}
	if as, ok := a.(*objects.String); ok {
		if bs, ok := b.(*objects.String); ok {
			m.push(&objects.String{Value: as.Value + bs.Value})
			return nil
		}
	}
	return fmt.Errorf("Operands must be two numbers or two strings.")
}

// numericBinary implements the arithmetic and comparison opcodes that
// require two numeric operands.
func (m *VM) numericBinary(op ir.Opcode) error {
	b, a, err := m.popPair()
	if err != nil {
		return err
	}
	an, aok := a.(*objects.Number)
	bn, bok := b.(*objects.Number)
	if !aok || !bok {
		return fmt.Errorf("Operands must be numbers.")
	}

	switch op {
	case ir.SUB:
		m.push(&objects.Number{Value: an.Value - bn.Value})
	case ir.MUL:
		m.push(&objects.Number{Value: an.Value * bn.Value})
	case ir.DIV:
		if bn.Value == 0 {
			return fmt.Errorf("Division by zero.")
		}
		m.push(&objects.Number{Value: an.Value / bn.Value})
	case ir.GREATER:
		m.push(&objects.Boolean{Value: an.Value > bn.Value})
	case ir.GREATER_EQUAL:
		m.push(&objects.Boolean{Value: an.Value >= bn.Value})
	case ir.LESS:
		m.push(&objects.Boolean{Value: an.Value < bn.Value})
	case ir.LESS_EQUAL:
		m.push(&objects.Boolean{Value: an.Value <= bn.Value})
	}
	return nil
}

// executeCall implements CALL.
//
// The name is looked up in the globals first: a bound function handle
// whose label exists transfers control after a frame push. Otherwise a
// recognized built-in (print, clock) is invoked directly. Anything else
// is fatal.
func (m *VM) executeCall(name string, argc int) error {
	if value, ok := m.globals[name]; ok {
		fn, isFn := value.(*objects.Function)
		if !isFn {
			return fmt.Errorf("'%s' is not a function.", name)
		}
		target, ok := m.labels[fn.Label]
		if !ok {
			return fmt.Errorf("Unknown label '%s'.", fn.Label)
		}
		if argc != fn.Arity {
			return fmt.Errorf("Expected %d arguments but got %d in call to '%s'.", fn.Arity, argc, name)
		}

		// Snapshot the caller's name table, push the frame, enter the body
		snapshot := make(map[string]objects.SlateObject, len(m.globals))
		for k, v := range m.globals {
			snapshot[k] = v
		}
		m.callStack = append(m.callStack, Frame{ReturnIP: m.ip, Globals: snapshot})
		m.ip = target
		return nil
	}

	if builtin := lookupBuiltin(name); builtin != nil {
		return m.invokeBuiltin(builtin, argc)
	}

	return fmt.Errorf("Undefined function '%s'.", name)
}

// executeReturn implements RETURN.
//
// The return value is popped first. With a frame on the call stack the
// caller's snapshot is restored - except that names created during the
// call and absent from the snapshot are carried over - and the value is
// pushed back for the caller. At top level the value is pushed back and
// execution simply continues.
func (m *VM) executeReturn() error {
	value, err := m.pop()
	if err != nil {
		return err
	}

	if len(m.callStack) > 0 {
		frame := m.callStack[len(m.callStack)-1]
		m.callStack = m.callStack[:len(m.callStack)-1]

		restored := frame.Globals
		for k, v := range m.globals {
			if _, existed := restored[k]; !existed {
				restored[k] = v
			}
		}
		m.globals = restored
		m.ip = frame.ReturnIP
	}

	m.push(value)
	return nil
}

// push adds a value to the top of the stack.
func (m *VM) push(value objects.SlateObject) {
	m.stack = append(m.stack, value)
}

// pop removes and returns the top of the stack.
func (m *VM) pop() (objects.SlateObject, error) {
	if len(m.stack) == 0 {
		return nil, fmt.Errorf("Stack underflow.")
	}
	value := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return value, nil
}

// popPair pops the two topmost values: first the right operand, then
// the left.
func (m *VM) popPair() (b, a objects.SlateObject, err error) {
	if b, err = m.pop(); err != nil {
		return nil, nil, err
	}
	if a, err = m.pop(); err != nil {
		return nil, nil, err
	}
	return b, a, nil
}

// peek returns the top of the stack without removing it.
func (m *VM) peek() (objects.SlateObject, error) {
	if len(m.stack) == 0 {
		return nil, fmt.Errorf("Stack underflow.")
	}
	return m.stack[len(m.stack)-1], nil
}
