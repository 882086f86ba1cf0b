package testutil

import (
	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
)

// MockBookmarkParser is a mock implementation of ports.BookmarkParser.
type MockBookmarkParser struct {
	ParseFunc func(text string) (bookmark.List, error)
}

// Parse mocks the Parse method.
func (m *MockBookmarkParser) Parse(text string) (bookmark.List, error) {
	if m.ParseFunc != nil {
		return m.ParseFunc(text)
	}
	return bookmark.List{}, nil
}

var _ ports.BookmarkParser = (*MockBookmarkParser)(nil)
