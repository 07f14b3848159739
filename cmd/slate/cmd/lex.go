/*
File    : go-slate/cmd/slate/cmd/lex.go
Project : go-slate
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alpharomercoma/go-slate/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Slate file or expression",
	Long: `Tokenize (lex) a Slate program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how
Slate source code is tokenized.

Examples:
  # Tokenize a script file
  slate lex prog.sl

  # Tokenize an inline expression
  slate lex -e "let x = 42;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexScript(_ *cobra.Command, args []string) error {
	src, _, err := readInput(args)
	if err != nil {
		return err
	}

	lex := lexer.NewLexer(src)
	for _, tok := range lex.ConsumeTokens() {
		fmt.Println(tok.String())
	}

	if lex.HasErrors() {
		for _, msg := range lex.GetErrors() {
			fmt.Fprintln(os.Stderr, msg)
		}
	}
	return nil
}
