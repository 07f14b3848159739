/*
File    : go-slate/cmd/slate/cmd/root.go
Project : go-slate
*/

// Package cmd wires the Slate toolchain into a cobra command tree.
// The bare binary keeps the classic driver contract - no arguments
// starts the REPL, one argument runs a script, anything more is a usage
// error - while the subcommands expose the individual pipeline stages.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpharomercoma/go-slate/repl"
	"github.com/alpharomercoma/go-slate/script"
)

// Version information (set by build flags)
var Version = "0.1.0-dev"

// evalExpr holds the shared -e/--eval flag value used by the stage
// subcommands to accept inline source instead of a file.
var evalExpr string

var rootCmd = &cobra.Command{
	Use:   "slate [script]",
	Short: "Slate interpreter",
	Long: `go-slate is the toolchain for the Slate scripting language.

Slate is a small, dynamically-valued, statically-scoped language with
first-class functions. Source text is scanned, parsed, lowered to a
stack-oriented instruction stream and executed on a virtual machine.

Run without arguments for an interactive session, or pass a script:

  slate             # start the REPL
  slate prog.sl     # run a script file

The pipeline stages are also exposed individually: see the lex, parse,
ir, check and run subcommands.`,
	Version: Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			startRepl()
			return nil
		case 1:
			runner := script.NewRunner(os.Stdout, os.Stderr)
			return runner.RunFile(args[0])
		default:
			// Classic driver contract: too many arguments is a usage
			// error with exit code 64
			fmt.Fprintln(os.Stderr, "Usage: slate [script]")
			os.Exit(64)
			return nil
		}
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// startRepl opens an interactive session on the standard streams.
func startRepl() {
	session := repl.NewRepl(
		"Slate "+Version,
		Version,
		"----------------------------------------",
		"slate> ",
	)
	session.Start(os.Stdout)
}

// readInput resolves the source text for a stage subcommand: inline
// code from -e when given, otherwise the contents of the file argument.
func readInput(args []string) (src string, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}
