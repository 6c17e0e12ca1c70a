package parser

import (
	"fmt"

	"github.com/leapstack-labs/modelsql/pkg/token"
)

// ParseError represents a parsing error with position information.
// It is the structural error family: raised while recognizing a statement
// or building its command, always before any catalog access.
type ParseError struct {
	Pos     token.Position
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// NewParseError creates a ParseError at the given position.
func NewParseError(pos token.Position, format string, args ...any) *ParseError {
	return &ParseError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Common error messages
const (
	ErrUnexpectedToken    = "unexpected token %s, expected %s"
	ErrExpectedModelName  = "expected model name"
	ErrExpectedURI        = "expected location string literal after USING"
	ErrTrailingInput      = "unexpected trailing input after statement: %s"
	ErrBadQualifiedName   = "invalid qualified name %q: expected [schema.]name"
	ErrNonReservedKeyword = "keyword %s is not supported as an identifier here"
)
