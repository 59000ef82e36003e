package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "akbarlang",
	Short: "AkbarLang compiler",
	Long: `akbarlang compiles the AkbarLang teaching language to C++.

AkbarLang is a small imperative language with Farsi-transliterated
keywords (sahih, ashar, harf, begir, benvis, age, vali, vagarna,
baraye, vaghti) covering variable declarations, input/output,
conditionals and loops. The compiler lowers source through a lexer,
parser, semantic analyzer, IR generator and optimizer, then emits a
standalone C++ translation unit.`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored diagnostics")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
