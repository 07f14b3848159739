/*
File    : go-slate/script/script.go
Project : go-slate
*/

// Package script implements the batch-mode driver: it wires the
// pipeline stages together for a whole source file or an inline source
// string, from scanning to execution on a fresh VM.
package script

import (
	"fmt"
	"io"
	"os"

	"github.com/alpharomercoma/go-slate/ir"
	"github.com/alpharomercoma/go-slate/parser"
	"github.com/alpharomercoma/go-slate/vm"
)

// Runner executes Slate sources in batch mode.
// Program output and diagnostics can be directed to separate writers,
// which is how the tests capture them.
type Runner struct {
	Out    io.Writer // Program output (print)
	ErrOut io.Writer // Diagnostics
	DumpIR bool      // When set, the IR listing is printed before running
}

// NewRunner creates a batch runner writing to the given destinations.
func NewRunner(out, errOut io.Writer) *Runner {
	return &Runner{Out: out, ErrOut: errOut}
}

// RunFile reads and executes a script file. The returned error reports
// I/O problems only: language-level errors are printed to ErrOut and do
// not produce a nonzero result, preserving the driver's legacy contract.
func (r *Runner) RunFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("could not read file %s: %w", path, err)
	}
	r.RunSource(string(content))
	return nil
}

// RunSource executes a source string through the full pipeline:
// lex and parse, report diagnostics, lower to IR, execute on a fresh VM.
//
// Parse errors do not necessarily stop the run: downstream stages are
// suppressed only when the parser produced no statements at all.
// A runtime error prints a "Runtime Error:" diagnostic and ends the run.
func (r *Runner) RunSource(src string) {
	par := parser.NewParser(src)
	root := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			fmt.Fprintln(r.ErrOut, msg)
		}
	}
	if len(root.Statements) == 0 {
		return
	}

	gen := ir.NewGenerator()
	instructions := gen.Generate(root)
	if gen.HasErrors() {
		for _, msg := range gen.GetErrors() {
			fmt.Fprintln(r.ErrOut, msg)
		}
		return
	}

	if r.DumpIR {
		ir.Dump(r.ErrOut, instructions)
	}

	machine := vm.NewVM()
	machine.SetWriter(r.Out)
	machine.Load(instructions)
	if err := machine.Run(); err != nil {
		fmt.Fprintf(r.ErrOut, "Runtime Error: %v\n", err)
	}
}
