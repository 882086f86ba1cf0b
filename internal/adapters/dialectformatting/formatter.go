package dialectformatting

import (
	"bytes"
	"fmt"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
)

// lineFormats holds the per-entry format string of each dialect. Each takes
// the shortcut then the path.
var lineFormats = map[bookmark.Dialect]string{
	bookmark.DialectLF:      "map g%s cd %s",
	bookmark.DialectZsh:     "hash -d %s=%s",
	bookmark.DialectCdAlias: `alias cd%s="%s"`,
}

// TemplateFormatter renders bookmark lists with a fixed line template per dialect.
type TemplateFormatter struct{}

// NewTemplateFormatter creates a new TemplateFormatter.
func NewTemplateFormatter() ports.BookmarkFormatter {
	return &TemplateFormatter{}
}

// Format writes one newline-terminated line per entry, in list order.
// Paths are never escaped; only the cd-alias dialect wraps them in quotes.
func (f *TemplateFormatter) Format(list bookmark.List, dialect bookmark.Dialect) ([]byte, error) {
	lineFormat, ok := lineFormats[dialect]
	if !ok {
		return nil, fmt.Errorf("%w: %q", bookmark.ErrUnknownDialect, string(dialect))
	}

	var buf bytes.Buffer
	for _, entry := range list {
		fmt.Fprintf(&buf, lineFormat, entry.Shortcut, entry.Path)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// Template returns the line template of dialect with placeholders, e.g.
// "hash -d <shortcut>=<path>".
func (f *TemplateFormatter) Template(dialect bookmark.Dialect) (string, error) {
	lineFormat, ok := lineFormats[dialect]
	if !ok {
		return "", fmt.Errorf("%w: %q", bookmark.ErrUnknownDialect, string(dialect))
	}
	return fmt.Sprintf(lineFormat, "<shortcut>", "<path>"), nil
}
