package msgconv

import (
	"fmt"

	"github.com/N1CEJAN/RossyDiac/core/errkind"
)

// ParseError reports a MSG syntax error together with the 1-based line
// and column at which it was detected.
type ParseError struct {
	Line   int
	Column int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Reason)
}

func (e *ParseError) Kind() errkind.Kind { return errkind.Format }

func (e *ParseError) Unwrap() error { return fmt.Errorf("%s", e.Reason) }

func newParseError(line, col int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Column: col, Reason: fmt.Sprintf(format, args...)}
}

// errf builds a plain error for helpers that don't know their own source
// position; callers attach position via newParseError at the call site
// that does know it.
func errf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

var _ errkind.Error = (*ParseError)(nil)
