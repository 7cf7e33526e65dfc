package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/minic-lang/minic/pkg/compiler/lexer"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Print the token stream of a source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	toks, err := lexer.Scan(src)
	if err != nil {
		fmt.Println(rejectStyle.Render(err.Error()))
		os.Exit(1)
	}

	for _, t := range toks {
		fmt.Printf("%4d:%-4d %-16s %q\n", t.Line, t.Column, t.Category, t.Text)
	}
	return nil
}
