/*
File    : go-slate/cmd/slate/cmd/run.go
Project : go-slate
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/alpharomercoma/go-slate/script"
)

var dumpIR bool

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Slate file or expression",
	Long: `Execute a Slate program from a file or inline expression.

Examples:
  # Run a script file
  slate run prog.sl

  # Evaluate an inline expression
  slate run -e "print 1 + 2 * 3;"

  # Print the IR listing before running (for debugging)
  slate run --dump-ir prog.sl`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpIR, "dump-ir", false, "print the IR listing before executing (for debugging)")
}

func runScript(_ *cobra.Command, args []string) error {
	src, _, err := readInput(args)
	if err != nil {
		return err
	}

	runner := script.NewRunner(os.Stdout, os.Stderr)
	runner.DumpIR = dumpIR
	runner.RunSource(src)
	return nil
}
