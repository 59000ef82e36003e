package cmd

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Itshossein128/akbarLangCompiler/internal/config"
	akerrors "github.com/Itshossein128/akbarLangCompiler/internal/errors"
	"github.com/Itshossein128/akbarLangCompiler/pkg/akbarlang"
)

var (
	buildOutput   string
	buildCC       string
	buildCCArgs   string
	buildRun      bool
	buildDumpAST  bool
	buildDumpIR   bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Compile an AkbarLang source file to C++",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output .cpp path (default: alongside input)")
	buildCmd.Flags().StringVar(&buildCC, "cc", "", "C++ compiler to invoke after emitting (default: g++, or akbarlang.yaml)")
	buildCmd.Flags().StringVar(&buildCCArgs, "cc-args", "", "extra space-separated flags to pass to the C++ compiler")
	buildCmd.Flags().BoolVar(&buildRun, "run", false, "run the compiled binary after a successful C++ build")
	buildCmd.Flags().BoolVar(&buildDumpAST, "dump-ast", false, "print the parsed AST as JSON and exit")
	buildCmd.Flags().BoolVar(&buildDumpIR, "dump-ir", false, "print the optimized IR as JSON and exit")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	path := args[0]
	noColor, _ := cmd.Flags().GetBool("no-color")
	verbose, _ := cmd.Flags().GetBool("verbose")

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	source := string(src)

	if buildDumpAST {
		return dumpAST(source, path, !noColor)
	}

	result, diags := akbarlang.Compile(source, path)
	if len(diags) > 0 {
		printDiagnostics(diags, !noColor)
		return fmt.Errorf("compilation failed with %d error(s)", len(diags))
	}

	if buildDumpIR {
		ir, err := akbarlang.DumpIR(result.Optimized)
		if err != nil {
			return err
		}
		fmt.Println(ir)
		return nil
	}

	cfg, err := config.Load(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("loading %s: %w", config.FileName, err)
	}

	outPath := buildOutput
	if outPath == "" {
		base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ".cpp"
		outDir := cfg.ResolveOutputDir("")
		if outDir == "" {
			outDir = filepath.Dir(path)
		}
		outPath = filepath.Join(outDir, base)
	}

	if err := os.WriteFile(outPath, []byte(result.CPP), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", outPath)

	cc := cfg.ResolveCC(buildCC)
	binPath := strings.TrimSuffix(outPath, filepath.Ext(outPath))
	ccArgs := append([]string{outPath, "-o", binPath}, cfg.ResolveCCArgs(buildCCArgs)...)

	if verbose {
		fmt.Fprintf(os.Stderr, "running %s %s\n", cc, strings.Join(ccArgs, " "))
	}

	ctx := context.Background()
	compile := exec.CommandContext(ctx, cc, ccArgs...)
	compile.Stdout = os.Stdout
	compile.Stderr = os.Stderr
	if err := compile.Run(); err != nil {
		return fmt.Errorf("%s failed: %w", cc, err)
	}

	if buildRun {
		run := exec.CommandContext(ctx, binPath)
		run.Stdin = os.Stdin
		run.Stdout = os.Stdout
		run.Stderr = os.Stderr
		if err := run.Run(); err != nil {
			return fmt.Errorf("running %s: %w", binPath, err)
		}
	}

	return nil
}

func dumpAST(source, path string, color bool) error {
	result, diags := akbarlang.Compile(source, path)
	if len(diags) > 0 {
		printDiagnostics(diags, color)
		return fmt.Errorf("compilation failed with %d error(s)", len(diags))
	}
	dump, err := akbarlang.DumpAST(result.Program)
	if err != nil {
		return err
	}
	fmt.Println(dump)
	return nil
}

func printDiagnostics(diags []*akerrors.CompilerError, color bool) {
	fmt.Fprint(os.Stderr, akerrors.FormatErrors(diags, color))
}
