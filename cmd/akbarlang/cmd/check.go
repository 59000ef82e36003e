package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Itshossein128/akbarLangCompiler/pkg/akbarlang"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Run the lexer, parser and semantic analyzer without emitting C++",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]
	noColor, _ := cmd.Flags().GetBool("no-color")

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	diags := akbarlang.Check(string(src), path)
	if len(diags) > 0 {
		printDiagnostics(diags, !noColor)
		return fmt.Errorf("%d error(s)", len(diags))
	}

	fmt.Printf("%s: ok\n", path)
	return nil
}
