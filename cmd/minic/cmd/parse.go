package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a source file and report the verdict",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&dumpAST, "ast", false, "Dump the syntax tree on accept")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	src, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	if !report(src, profile, dumpAST) {
		os.Exit(1)
	}
	return nil
}
