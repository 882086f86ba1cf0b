package testutil

import (
	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
)

// MockBookmarkExportService is a mock implementation of ports.BookmarkExportService.
type MockBookmarkExportService struct {
	ExportFunc        func(req ports.ExportRequest) (ports.ExportResult, error)
	ListBookmarksFunc func(inputPath string) (bookmark.List, error)

	ExportCalls []ports.ExportRequest
}

// Export mocks the Export method and records each request.
func (m *MockBookmarkExportService) Export(req ports.ExportRequest) (ports.ExportResult, error) {
	m.ExportCalls = append(m.ExportCalls, req)
	if m.ExportFunc != nil {
		return m.ExportFunc(req)
	}
	return ports.ExportResult{}, nil
}

// ListBookmarks mocks the ListBookmarks method.
func (m *MockBookmarkExportService) ListBookmarks(inputPath string) (bookmark.List, error) {
	if m.ListBookmarksFunc != nil {
		return m.ListBookmarksFunc(inputPath)
	}
	return bookmark.List{}, nil
}

var _ ports.BookmarkExportService = (*MockBookmarkExportService)(nil)
