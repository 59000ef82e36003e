// Package akbarlang is the public facade over the six AkbarLang pipeline
// stages: lexer, parser, semantic analyzer, IR generator, optimizer and
// emitter (§4).
package akbarlang

import (
	"encoding/json"
	"fmt"

	"github.com/Itshossein128/akbarLangCompiler/internal/ast"
	"github.com/Itshossein128/akbarLangCompiler/internal/emitter"
	akerrors "github.com/Itshossein128/akbarLangCompiler/internal/errors"
	"github.com/Itshossein128/akbarLangCompiler/internal/ir"
	"github.com/Itshossein128/akbarLangCompiler/internal/lexer"
	"github.com/Itshossein128/akbarLangCompiler/internal/parser"
	"github.com/Itshossein128/akbarLangCompiler/internal/semantic"
)

// Result is the successful outcome of a full Compile call.
type Result struct {
	Program   *ast.Program
	IR        []ir.Instruction
	Optimized []ir.Instruction
	CPP       string
}

// Compile runs the full pipeline over source, returning a batch of
// CompilerErrors on any failure. Lexical and syntactic failures are
// reported as a batch of exactly one error (§7); semantic failures may be
// a batch of many.
func Compile(source, filename string) (Result, []*akerrors.CompilerError) {
	prog, errs := parseOnly(source, filename)
	if len(errs) > 0 {
		return Result{}, errs
	}

	analyzer := semantic.NewAnalyzer()
	if semErrs := analyzer.Analyze(prog); len(semErrs) > 0 {
		return Result{}, toCompilerErrors(semErrs, source, filename)
	}

	instrs, err := ir.Generate(prog)
	if err != nil {
		return Result{}, []*akerrors.CompilerError{
			akerrors.NewCompilerError(akerrors.Internal, prog.Pos(), err.Error(), source, filename),
		}
	}

	optimized := ir.Optimize(instrs)
	cpp := emitter.Emit(optimized)

	return Result{Program: prog, IR: instrs, Optimized: optimized, CPP: cpp}, nil
}

// Check runs the lexer through semantic analysis only, without lowering
// to IR or emitting C++ — the engine behind the CLI's `check` subcommand.
func Check(source, filename string) []*akerrors.CompilerError {
	prog, errs := parseOnly(source, filename)
	if len(errs) > 0 {
		return errs
	}

	analyzer := semantic.NewAnalyzer()
	if semErrs := analyzer.Analyze(prog); len(semErrs) > 0 {
		return toCompilerErrors(semErrs, source, filename)
	}
	return nil
}

func parseOnly(source, filename string) (*ast.Program, []*akerrors.CompilerError) {
	l := lexer.New(source)
	p := parser.New(l)

	prog, err := p.ParseProgram()
	if err != nil {
		var pos = prog.Pos()
		if lexErr, ok := err.(*lexer.Error); ok {
			pos = lexErr.Pos
		} else if parseErr, ok := err.(*parser.Error); ok {
			pos = parseErr.Pos
		}
		stage := akerrors.Syntactic
		if _, ok := err.(*lexer.Error); ok {
			stage = akerrors.Lexical
		}
		return nil, []*akerrors.CompilerError{
			akerrors.NewCompilerError(stage, pos, err.Error(), source, filename),
		}
	}
	return prog, nil
}

// toCompilerErrors adapts a batch of semantic.Error into CompilerErrors.
func toCompilerErrors(semErrs []*semantic.Error, source, filename string) []*akerrors.CompilerError {
	out := make([]*akerrors.CompilerError, 0, len(semErrs))
	for _, e := range semErrs {
		out = append(out, akerrors.NewCompilerError(akerrors.Semantic, e.Pos, e.Message, source, filename))
	}
	return out
}

// DumpAST renders prog as indented JSON for debugging (§10.7).
func DumpAST(prog *ast.Program) (string, error) {
	b, err := json.MarshalIndent(astDump(prog), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DumpIR renders an instruction list as indented JSON for debugging (§10.7).
func DumpIR(instrs []ir.Instruction) (string, error) {
	type irLine struct {
		Op       string   `json:"op"`
		Operands []string `json:"operands"`
	}
	lines := make([]irLine, 0, len(instrs))
	for _, instr := range instrs {
		lines = append(lines, irLine{Op: instr.Op.String(), Operands: instr.Operands})
	}
	b, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// astDump flattens Program into a JSON-friendly shape using each node's
// String() rendering; the AST's interface-typed fields do not marshal
// usefully on their own.
func astDump(prog *ast.Program) map[string]any {
	stmts := make([]string, 0, len(prog.Statements))
	for _, s := range prog.Statements {
		stmts = append(stmts, fmt.Sprintf("%s @ %s", s.String(), s.Pos()))
	}
	return map[string]any{"statements": stmts}
}
