/*
File    : go-slate/repl/repl.go
Project : go-slate

Package repl implements the Read-Eval-Print Loop (REPL) for the Slate
toolchain. The REPL provides an interactive environment where users can:
- Enter Slate code line by line
- See immediate results of their code execution
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

The REPL uses the readline library for enhanced line editing and keeps
one virtual machine and one IR generator alive for the whole session, so
globals and function definitions persist across inputs.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/alpharomercoma/go-slate/ir"
	"github.com/alpharomercoma/go-slate/parser"
	"github.com/alpharomercoma/go-slate/vm"
)

// Color definitions for REPL output:
// - blueColor: decorative lines and separators
// - yellowColor: version info
// - redColor: error messages
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates the presentation configuration of an interactive
// session; the language state lives in the VM it creates on Start.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the toolchain
	Line    string // Separator line for visual formatting
	Prompt  string // Command prompt shown to the user (e.g. "slate> ")
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, line string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {

	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "An empty line or Ctrl+D exits")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
//  1. Displays the welcome banner
//  2. Sets up readline for line editing and history
//  3. Creates the session's VM and IR generator
//  4. Reads, lowers and executes lines until exit
//
// The loop ends on an empty line, end of input (Ctrl+D), or a readline
// error. Errors in the entered code are printed and the prompt resumes;
// they never terminate the session.
func (r *Repl) Start(writer io.Writer) {

	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// One VM and one generator for the whole session. The shared
	// generator keeps labels unique across inputs, and appending each
	// input's instructions to the same program keeps previously defined
	// function bodies addressable.
	machine := vm.NewVM()
	machine.SetWriter(writer)
	gen := ir.NewGenerator()

	// Main REPL loop - continues until user exits or error occurs
	for {
		// Read a line of input from the user
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Trim whitespace from the input
		line = strings.Trim(line, " \n\t\r")

		// An empty line exits the session
		if line == "" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Execute the input with panic recovery to keep the session alive
		r.executeWithRecovery(writer, line, machine, gen)
	}
}

// executeWithRecovery runs one input line through the pipeline with
// panic recovery:
//  1. Parse the line into an AST
//  2. Report parse errors, keeping the prompt alive
//  3. Lower the AST with the session generator
//  4. Append the instructions to the session VM and run them
//
// Unlike batch mode, the session VM is reused, so globals and functions
// defined on earlier lines stay available.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, machine *vm.VM, gen *ir.Generator) {
	// Recover from any panics that might occur during parsing or
	// execution - display the error and continue
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "Runtime Error: %v\n", recovered)
		}
	}()

	// Parse the input line into an AST
	par := parser.NewParser(line)
	root := par.Parse()

	// The parser collects errors instead of panicking
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return // Return to REPL prompt for user to try again
	}
	if len(root.Statements) == 0 {
		return
	}

	// Lower with the session generator so labels stay unique
	instructions := gen.Generate(root)
	if gen.HasErrors() {
		for _, msg := range gen.GetErrors() {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	// Execute on the session VM, preserving earlier definitions
	machine.Append(instructions)
	if err := machine.Run(); err != nil {
		redColor.Fprintf(writer, "Runtime Error: %v\n", err)
	}
}
