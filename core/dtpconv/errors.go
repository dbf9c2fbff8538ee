// Package dtpconv implements DtpReader and DtpWriter: the XML-DOM parser
// and writer for the DTP structured-type data description (spec.md §4.B,
// §4.W).
package dtpconv

import (
	"fmt"

	"github.com/N1CEJAN/RossyDiac/core/errkind"
)

// ParseError reports a DTP parse failure together with a breadcrumb
// locating it in the document, mirroring spec.md §4.B's
// ParseError{path,reason}.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Reason)
}

func (e *ParseError) Kind() errkind.Kind { return errkind.Format }

func (e *ParseError) Unwrap() error { return fmt.Errorf("%s", e.Reason) }

func newParseError(path, format string, args ...any) *ParseError {
	return &ParseError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

func errf(format string, args ...any) error {
	return fmt.Errorf(format, args...)
}

var _ errkind.Error = (*ParseError)(nil)
