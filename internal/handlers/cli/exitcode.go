package cli

import (
	"errors"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
)

// ExitCode is the process exit status of dirmarks.
type ExitCode int

const (
	// ExitSuccess is a normal exit.
	ExitSuccess ExitCode = 0
	// ExitGeneral is any error without a more specific code.
	ExitGeneral ExitCode = 1
	// ExitUsage is a missing or conflicting command line option.
	ExitUsage ExitCode = 2
	// ExitInputRead is an unreadable bookmark file.
	ExitInputRead ExitCode = 3
	// ExitMalformedLine is a bookmark line without a shortcut and path.
	ExitMalformedLine ExitCode = 4
	// ExitOutputWrite is an output file that could not be written.
	ExitOutputWrite ExitCode = 5
)

// MapExitCode returns the exit code matching the type of err.
func MapExitCode(err error) ExitCode {
	if err == nil {
		return ExitSuccess
	}

	var (
		usageErr     *UsageError
		readErr      *bookmark.InputReadError
		malformedErr *bookmark.MalformedLineError
		writeErr     *bookmark.OutputWriteError
	)
	switch {
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.As(err, &readErr):
		return ExitInputRead
	case errors.As(err, &malformedErr):
		return ExitMalformedLine
	case errors.As(err, &writeErr):
		return ExitOutputWrite
	default:
		return ExitGeneral
	}
}
