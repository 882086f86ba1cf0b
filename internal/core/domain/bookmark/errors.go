package bookmark

import (
	"errors"
	"fmt"
)

// ErrUnknownDialect is returned when a dialect name is not supported.
var ErrUnknownDialect = errors.New("unknown dialect")

// MalformedLineError reports a non-comment, non-blank line that does not
// hold both a shortcut and a path.
type MalformedLineError struct {
	Line    int
	Content string
	Reason  string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed bookmark on line %d (%s): %q", e.Line, e.Reason, e.Content)
}

// InputReadError reports a bookmark file that could not be read as text.
type InputReadError struct {
	Path string
	Err  error
}

func (e *InputReadError) Error() string {
	return fmt.Sprintf("cannot read bookmark file %s: %v", e.Path, e.Err)
}

func (e *InputReadError) Unwrap() error { return e.Err }

// OutputWriteError reports an output file that could not be written.
type OutputWriteError struct {
	Path string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("cannot write output file %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error { return e.Err }
