package mapper

import (
	"fmt"

	"github.com/N1CEJAN/RossyDiac/core/errkind"
)

// ConvertError reports a mapping failure that is not a syntax problem in
// either format but a semantic mismatch between them (spec.md §7).
type ConvertError struct {
	Field  string
	Reason string
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ConvertError) Kind() errkind.Kind { return errkind.Semantic }

func (e *ConvertError) Unwrap() error { return fmt.Errorf("%s", e.Reason) }

func newConvertError(field, format string, args ...any) *ConvertError {
	return &ConvertError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

var _ errkind.Error = (*ConvertError)(nil)
