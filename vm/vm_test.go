/*
File    : go-slate/vm/vm_test.go
Project : go-slate
*/
package vm

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpharomercoma/go-slate/ir"
	"github.com/alpharomercoma/go-slate/objects"
	"github.com/alpharomercoma/go-slate/parser"
)

// compile parses and lowers src, failing the test on any front-end error.
func compile(t *testing.T, src string) []ir.Instruction {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	require.False(t, par.HasErrors(), "parse errors: %v", par.GetErrors())

	gen := ir.NewGenerator()
	instructions := gen.Generate(root)
	require.False(t, gen.HasErrors(), "lowering errors: %v", gen.GetErrors())
	return instructions
}

// run executes src on a fresh VM and returns the print output and the
// runtime error, if any.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	machine := NewVM()
	machine.SetWriter(&out)
	machine.Load(compile(t, src))
	err := machine.Run()
	return out.String(), err
}

// TestVM_EndToEnd runs the canonical source-to-output scenarios.
func TestVM_EndToEnd(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print 1 + 2 * 3;`, "7\n"},
		{`let a = 2; let b = 3; print a * (a + b);`, "10\n"},
		{`let i = 0; while (i < 3) { print i; i = i + 1; }`, "0\n1\n2\n"},
		{`if (1 < 2) print "yes"; else print "no";`, "yes\n"},
		{`function sq(x) { return x * x; } print sq(5);`, "25\n"},
		{`function f(a,b){return a-b;} print f(10,3);`, "7\n"},
		{`for (let i = 0; i < 3; i = i + 1) print i;`, "0\n1\n2\n"},
		{`print "con" + "cat";`, "concat\n"},
		{`print -4 / 2;`, "-2\n"},
		{`print 7 / 2;`, "3.5\n"},
		{`print !nil;`, "true\n"},
		{`print 1 == 1; print 1 != 1;`, "true\nfalse\n"},
		{`print nil == nil; print nil == 0;`, "true\nfalse\n"},
		{`let a = 1; a = a + 1; print a;`, "2\n"},
		{`let a; print a;`, "0\n"},
		{`print(42);`, "42\n"},
		{`function f() { return; } print f();`, "nil\n"},
		{`function f() { print "ran"; } f();`, "ran\n"},
	}

	for _, test := range tests {
		out, err := run(t, test.src)
		assert.NoError(t, err, "source: %q", test.src)
		assert.Equal(t, test.expected, out, "source: %q", test.src)
	}
}

// TestVM_AssignmentIsExpression checks that an assignment leaves the
// assigned value behind, so it can be nested in a larger expression.
func TestVM_AssignmentIsExpression(t *testing.T) {
	out, err := run(t, `let a = 0; let b = 0; a = b = 5; print a; print b;`)
	assert.NoError(t, err)
	assert.Equal(t, "5\n5\n", out)

	out, err = run(t, `let a = 0; print a = 3;`)
	assert.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

// TestVM_ShortCircuit checks that the untaken operand has no observable
// side effects.
func TestVM_ShortCircuit(t *testing.T) {
	out, err := run(t, `function loud() { print "side"; return true; } print true or loud();`)
	assert.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, `function loud() { print "side"; return true; } print false and loud();`)
	assert.NoError(t, err)
	assert.Equal(t, "false\n", out)

	// when the left side doesn't decide, the right side runs and its
	// value is the result
	out, err = run(t, `function loud() { print "side"; return 9; } print false or loud();`)
	assert.NoError(t, err)
	assert.Equal(t, "side\n9\n", out)
}

// TestVM_TruthinessInConditions: 0 and "" are truthy, nil and false
// are falsy.
func TestVM_TruthinessInConditions(t *testing.T) {
	out, err := run(t, `if (0) print "zero truthy"; if ("") print "empty truthy"; if (nil) print "no"; if (false) print "no";`)
	assert.NoError(t, err)
	assert.Equal(t, "zero truthy\nempty truthy\n", out)
}

// TestVM_GlobalsSurviveCalls checks the name-table contract: a
// top-level let stays visible after a call that did not shadow it, a
// reassignment of an existing global inside a function is rolled back
// with the snapshot, and a genuinely new name created inside the call
// propagates out.
func TestVM_GlobalsSurviveCalls(t *testing.T) {
	// top-level let survives a call
	out, err := run(t, `let keep = 7; function f() { return 0; } f(); print keep;`)
	assert.NoError(t, err)
	assert.Equal(t, "7\n", out)

	// writes to names that existed at call time are rolled back
	out, err = run(t, `let a = 1; function g() { a = 2; return 0; } g(); print a;`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n", out)

	// new names created during the call propagate back
	out, err = run(t, `function def() { fresh = 99; return 0; } def(); print fresh;`)
	assert.NoError(t, err)
	assert.Equal(t, "99\n", out)
}

// TestVM_ParameterBindingOrder checks that the first parameter binds
// the first argument.
func TestVM_ParameterBindingOrder(t *testing.T) {
	out, err := run(t, `function pair(a, b) { print a; print b; return 0; } pair(1, 2);`)
	assert.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

// TestVM_ArityMismatch: calling a one-parameter function with two
// arguments is a runtime error, and nothing is printed.
func TestVM_ArityMismatch(t *testing.T) {
	out, err := run(t, `function g(x){return x;} print g(1,2);`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 1 arguments but got 2")
	assert.Equal(t, "", out)
}

// TestVM_RuntimeErrors covers the fatal error classes.
func TestVM_RuntimeErrors(t *testing.T) {
	tests := []struct {
		src      string
		expected string
	}{
		{`print missing;`, "Undefined variable 'missing'."},
		{`missing(1);`, "Undefined function 'missing'."},
		{`let x = 1; x(2);`, "'x' is not a function."},
		{`print 1 / 0;`, "Division by zero."},
		{`print 1 + "a";`, "Operands must be two numbers or two strings."},
		{`print "a" - "b";`, "Operands must be numbers."},
		{`print "a" < "b";`, "Operands must be numbers."},
		{`print -"a";`, "Operand must be a number."},
		{`print clock(1);`, "clock() takes exactly 0 argument(s) but got 1."},
	}

	for _, test := range tests {
		_, err := run(t, test.src)
		require.Error(t, err, "source: %q", test.src)
		assert.Equal(t, test.expected, err.Error(), "source: %q", test.src)
	}
}

// TestVM_PrintBuiltin exercises the print built-in through the CALL
// path directly. Surface programs reach print via the print statement,
// but the built-in stays callable at the instruction level.
func TestVM_PrintBuiltin(t *testing.T) {
	var out bytes.Buffer
	machine := NewVM()
	machine.SetWriter(&out)
	machine.Load([]ir.Instruction{
		ir.NewInstruction(ir.CONST, &objects.String{Value: "hi"}),
		ir.NewInstruction(ir.CALL, "print", 1),
		ir.NewInstruction(ir.POP),
	})
	require.NoError(t, machine.Run())
	assert.Equal(t, "hi\n", out.String())

	// wrong argument count is fatal
	machine = NewVM()
	machine.SetWriter(&bytes.Buffer{})
	machine.Load([]ir.Instruction{
		ir.NewInstruction(ir.CONST, &objects.Number{Value: 1}),
		ir.NewInstruction(ir.CONST, &objects.Number{Value: 2}),
		ir.NewInstruction(ir.CALL, "print", 2),
	})
	err := machine.Run()
	require.Error(t, err)
	assert.Equal(t, "print() takes exactly 1 argument(s) but got 2.", err.Error())
}

// TestVM_Clock checks that clock() yields a plausible number of
// wall-clock seconds.
func TestVM_Clock(t *testing.T) {
	var out bytes.Buffer
	machine := NewVM()
	machine.SetWriter(&out)
	machine.Load(compile(t, `let t = clock(); print t > 0;`))
	require.NoError(t, machine.Run())
	assert.Equal(t, "true\n", out.String())
}

// TestVM_TopLevelReturn: a return outside any call pushes its value and
// execution continues.
func TestVM_TopLevelReturn(t *testing.T) {
	machine := NewVM()
	machine.SetWriter(&bytes.Buffer{})
	machine.Load([]ir.Instruction{
		ir.NewInstruction(ir.CONST, &objects.Number{Value: 1}),
		ir.NewInstruction(ir.RETURN),
		ir.NewInstruction(ir.PRINT),
	})
	assert.NoError(t, machine.Run())
}

// TestVM_LoadPreservesGlobals: loading a new program keeps the name
// table, which interactive reuse depends on.
func TestVM_LoadPreservesGlobals(t *testing.T) {
	var out bytes.Buffer
	machine := NewVM()
	machine.SetWriter(&out)

	machine.Load(compile(t, `let a = 41;`))
	require.NoError(t, machine.Run())

	machine.Load(compile(t, `print a + 1;`))
	require.NoError(t, machine.Run())
	assert.Equal(t, "42\n", out.String())
}

// TestVM_AppendKeepsFunctionsCallable: the incremental loading path
// keeps function bodies from earlier inputs addressable, so a function
// defined on one line is callable on the next.
func TestVM_AppendKeepsFunctionsCallable(t *testing.T) {
	var out bytes.Buffer
	machine := NewVM()
	machine.SetWriter(&out)
	gen := ir.NewGenerator()

	for _, src := range []string{
		`function sq(x) { return x * x; }`,
		`print sq(6);`,
	} {
		par := parser.NewParser(src)
		root := par.Parse()
		require.False(t, par.HasErrors(), "parse errors: %v", par.GetErrors())
		machine.Append(gen.Generate(root))
		require.NoError(t, machine.Run())
	}

	assert.Equal(t, "36\n", out.String())
}

// TestVM_UnknownLabelIsFatal: a function handle whose label is not in
// the loaded program cannot be called.
func TestVM_UnknownLabelIsFatal(t *testing.T) {
	machine := NewVM()
	machine.SetWriter(&bytes.Buffer{})
	machine.Load([]ir.Instruction{
		ir.NewInstruction(ir.CONST, &objects.Function{Name: "ghost", Label: "L99", Arity: 0}),
		ir.NewInstruction(ir.STORE, "ghost"),
		ir.NewInstruction(ir.CALL, "ghost", 0),
	})
	err := machine.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown label 'L99'")
}

// TestVM_Reset clears the name table.
func TestVM_Reset(t *testing.T) {
	machine := NewVM()
	machine.SetWriter(&bytes.Buffer{})
	machine.Load(compile(t, `let a = 1;`))
	require.NoError(t, machine.Run())
	require.Contains(t, machine.Globals(), "a")

	machine.Reset()
	assert.NotContains(t, machine.Globals(), "a")
}

// TestVM_NestedCalls: calls within calls unwind correctly.
func TestVM_NestedCalls(t *testing.T) {
	out, err := run(t, `
function inc(n) { return n + 1; }
function twice(n) { return inc(inc(n)); }
print twice(40);
`)
	assert.NoError(t, err)
	assert.Equal(t, "42\n", out)
}
