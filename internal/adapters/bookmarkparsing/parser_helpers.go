package bookmarkparsing

import (
	"strings"
	"unicode"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
)

// splitLines splits on '\n' and drops a trailing '\r', so LF and CRLF files
// parse the same way. Line i of the result is line i+1 of the file.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// parseEntry splits an already trimmed, non-comment line at its first run of
// whitespace. The path is kept verbatim, quotes included. When ok is false,
// reason describes what is missing.
func parseEntry(trimmedLine string) (entry bookmark.Entry, reason string, ok bool) {
	sep := strings.IndexFunc(trimmedLine, unicode.IsSpace)
	if sep < 0 {
		return bookmark.Entry{}, "missing path", false
	}

	shortcut := trimmedLine[:sep]
	path := strings.TrimSpace(trimmedLine[sep:])
	if path == "" {
		return bookmark.Entry{}, "missing path", false
	}

	return bookmark.Entry{Shortcut: shortcut, Path: path}, "", true
}
