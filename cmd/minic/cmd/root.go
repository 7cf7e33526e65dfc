package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/minic-lang/minic/pkg/compiler/ast"
	"github.com/minic-lang/minic/pkg/compiler/lexer"
	"github.com/minic-lang/minic/pkg/compiler/parser"
	"github.com/minic-lang/minic/pkg/config"
)

var (
	grammarName string
	grammarFile string

	acceptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	rejectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

var rootCmd = &cobra.Command{
	Use:   "minic",
	Short: "Syntax checker for a small C-like language",
	Long: `minic tokenizes and parses a small C-like language and reports
an accept verdict or a syntax error with source position.

No semantic analysis or code generation is performed; the output is
the verdict, the diagnostic, and optionally the syntax tree.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&grammarName, "grammar", "full", "Grammar preset (full or reduced)")
	rootCmd.PersistentFlags().StringVar(&grammarFile, "grammar-file", "", "YAML grammar profile file (overrides --grammar)")
}

func loadProfile() (parser.Profile, error) {
	if grammarFile != "" {
		return config.LoadProfile(grammarFile)
	}
	return config.Preset(grammarName)
}

// report parses src and prints the verdict. It returns false on reject.
func report(src []byte, profile parser.Profile, dumpAST bool) bool {
	toks, err := lexer.Scan(src)
	if err != nil {
		fmt.Println(rejectStyle.Render(err.Error()))
		return false
	}

	prog, err := parser.New(toks, profile).Parse()
	if err != nil {
		fmt.Println(rejectStyle.Render(err.Error()))
		return false
	}

	fmt.Println(acceptStyle.Render("Accepted"))
	if dumpAST {
		ast.Dump(os.Stdout, prog)
	}
	return true
}
