/*
File    : go-slate/cmd/slate/cmd/parse.go
Project : go-slate
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpharomercoma/go-slate/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a Slate file or expression and dump the AST",
	Long: `Parse a Slate program and print the abstract syntax tree as an
indented outline.

Examples:
  # Parse a script file
  slate parse prog.sl

  # Parse an inline expression
  slate parse -e "if (a < b) print a;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
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
	}

	visitor := &parser.TreeVisitor{}
	root.Accept(visitor)
	fmt.Print(visitor.String())
	return nil
}
