package bookmarkparsing

import (
	"strings"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
)

const commentPrefix = "#"

// LineParser parses the line-oriented bookmark file format:
//
//	# comment
//	<shortcut> <path>
type LineParser struct{}

// NewLineParser creates a new LineParser.
func NewLineParser() ports.BookmarkParser {
	return &LineParser{}
}

// Parse converts the full text of a bookmark file into entries in file order.
// Blank lines and comment lines produce nothing. The first malformed line
// aborts parsing with a *bookmark.MalformedLineError.
func (p *LineParser) Parse(text string) (bookmark.List, error) {
	list := bookmark.List{}
	for i, rawLine := range splitLines(text) {
		trimmedLine := strings.TrimSpace(rawLine)
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}

		entry, reason, ok := parseEntry(trimmedLine)
		if !ok {
			return nil, &bookmark.MalformedLineError{
				Line:    i + 1,
				Content: rawLine,
				Reason:  reason,
			}
		}
		list = append(list, entry)
	}
	return list, nil
}
