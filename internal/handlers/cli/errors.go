package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/dirmarks/internal/handlers/ui"
)

// UsageError reports missing or conflicting command line options. It is
// always returned before any file is read or written.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}

// PrintError writes err to w in red. Usage errors get a pointer to --help.
func PrintError(w io.Writer, commandPath string, err error) {
	fmt.Fprintln(w, ui.ErrorColor(fmt.Sprintf("Error: %v", err)))

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintln(w, ui.DetailColor(fmt.Sprintf("Run '%s --help' for usage.", commandPath)))
	}
}
