/*
File    : go-slate/cmd/slate/cmd/check.go
Project : go-slate
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpharomercoma/go-slate/parser"
	"github.com/alpharomercoma/go-slate/resolver"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Statically check a Slate file or expression",
	Long: `Parse a Slate program and run the defined-before-use check over it
without executing anything.

The check is advisory: Slate creates names dynamically, so a program
the check rejects can still run. It catches the common case of reading
a variable or calling a function that nothing defined earlier.

Examples:
  slate check prog.sl
  slate check -e "print undefined_thing;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: checkScript,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "check inline code instead of reading from file")
}

func checkScript(_ *cobra.Command, args []string) error {
	src, _, err := readInput(args)
	if err != nil {
		return err
	}

	par := parser.NewParser(src)
	root := par.Parse()
	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("parsing failed")
	}

	diags := resolver.NewResolver().Check(root)
	for _, msg := range diags {
		fmt.Fprintln(os.Stderr, msg)
	}
	if len(diags) > 0 {
		return fmt.Errorf("check failed")
	}

	fmt.Println("OK")
	return nil
}
