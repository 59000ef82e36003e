// Command akbarlang compiles AkbarLang source files to C++.
package main

import (
	"fmt"
	"os"

	"github.com/Itshossein128/akbarLangCompiler/cmd/akbarlang/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
