package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Read source from stdin and report the parse verdict",
	Long: `Reads lines from standard input until a blank line (or EOF),
concatenates them as source text, and prints the verdict.

The verdict is informational: the process exits normally whether the
input is accepted or rejected.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	profile, err := loadProfile()
	if err != nil {
		return err
	}

	fmt.Println("Type your code. Enter an empty line to finish:")
	var lines []string
	sc := bufio.NewScanner(os.Stdin)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			break
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	src := strings.Join(lines, "\n")
	if strings.TrimSpace(src) == "" {
		return nil
	}

	report([]byte(src), profile, false)
	return nil
}
