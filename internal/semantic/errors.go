package semantic

import (
	"fmt"

	"github.com/Itshossein128/akbarLangCompiler/internal/token"
)

// Error is one semantic diagnostic. The analyzer collects every Error found
// during a single Analyze run and reports them together (§7: semantic
// errors are collected, not fail-fast).
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("semantic error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}
