/*
File    : go-slate/cmd/slate/cmd/repl.go
Project : go-slate
*/
package cmd

import (
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Slate session",
	Long: `Start a Read-Eval-Print Loop.

The session keeps one virtual machine alive, so variables and functions
defined on earlier lines remain available. An empty line or Ctrl+D
exits. Equivalent to running slate with no arguments.`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		startRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
