// Package errors formats AkbarLang compiler diagnostics with source
// context and a caret pointing at the offending column.
package errors

import (
	"fmt"
	"strings"

	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

// Stage identifies which pipeline stage raised a CompilerError, used both
// to pick the wording of the diagnostic line (§6) and the batching policy
// each stage is entitled to (§7).
type Stage int

const (
	Lexical Stage = iota
	Syntactic
	Semantic
	Internal
)

func (s Stage) String() string {
	switch s {
	case Lexical:
		return "lexical"
	case Syntactic:
		return "syntax"
	case Semantic:
		return "semantic"
	case Internal:
		return "internal"
	default:
		return "unknown"
	}
}

// CompilerError is a single diagnostic with enough context to render both
// the one-line stderr form and a source-annotated form.
type CompilerError struct {
	Stage   Stage
	Message string
	Pos     token.Position
	Source  string
	File    string
}

func NewCompilerError(stage Stage, pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Stage: stage, Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with the one-line form required by
// §6: "<stage> error at line L, column C: <message>".
func (e *CompilerError) Error() string {
	return fmt.Sprintf("%s error at line %d, column %d: %s", e.Stage, e.Pos.Line, e.Pos.Column, e.Message)
}

// Format renders the error with a source line and caret underneath it. If
// color is true, ANSI codes highlight the caret and message.
func (e *CompilerError) Format(color bool) string {
	var sb strings.Builder

	if e.File != "" {
		sb.WriteString(fmt.Sprintf("%s:%d:%d: ", e.File, e.Pos.Line, e.Pos.Column))
	}
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	sourceLine := e.getSourceLine(e.Pos.Line)
	if sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (e *CompilerError) getSourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a batch of errors. Semantic analysis is the only
// stage that ever produces more than one (§7); lexical and syntactic
// errors are always reported as a batch of exactly one.
func FormatErrors(errs []*CompilerError, color bool) string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		return errs[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("compilation failed with %d errors:\n\n", len(errs)))
	for i, err := range errs {
		sb.WriteString(fmt.Sprintf("[Error %d of %d]\n", i+1, len(errs)))
		sb.WriteString(err.Format(color))
		if i < len(errs)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
