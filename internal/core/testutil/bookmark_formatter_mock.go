package testutil

import (
	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
)

// MockBookmarkFormatter is a mock implementation of ports.BookmarkFormatter.
type MockBookmarkFormatter struct {
	FormatFunc   func(list bookmark.List, dialect bookmark.Dialect) ([]byte, error)
	TemplateFunc func(dialect bookmark.Dialect) (string, error)

	FormatCalls int
}

// Format mocks the Format method and counts calls.
func (m *MockBookmarkFormatter) Format(list bookmark.List, dialect bookmark.Dialect) ([]byte, error) {
	m.FormatCalls++
	if m.FormatFunc != nil {
		return m.FormatFunc(list, dialect)
	}
	return nil, nil
}

// Template mocks the Template method.
func (m *MockBookmarkFormatter) Template(dialect bookmark.Dialect) (string, error) {
	if m.TemplateFunc != nil {
		return m.TemplateFunc(dialect)
	}
	return "", nil
}

var _ ports.BookmarkFormatter = (*MockBookmarkFormatter)(nil)
