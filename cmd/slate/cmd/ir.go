/*
File    : go-slate/cmd/slate/cmd/ir.go
Project : go-slate
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpharomercoma/go-slate/ir"
	"github.com/alpharomercoma/go-slate/parser"
)

var irCmd = &cobra.Command{
	Use:   "ir [file]",
	Short: "Lower a Slate file or expression and dump the IR listing",
	Long: `Lower a Slate program to its intermediate representation and print
the instruction listing without executing it.

Examples:
  # Lower a script file
  slate ir prog.sl

  # Lower an inline expression
  slate ir -e "print 1 + 2 * 3;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: irScript,
}

func init() {
	rootCmd.AddCommand(irCmd)

	irCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "lower inline code instead of reading from file")
}

func irScript(_ *cobra.Command, args []string) error {
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

	gen := ir.NewGenerator()
	instructions := gen.Generate(root)
	if gen.HasErrors() {
		for _, msg := range gen.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return fmt.Errorf("lowering failed")
	}

	ir.Dump(os.Stdout, instructions)
	return nil
}
