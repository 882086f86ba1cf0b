package ports

import "github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"

// ExportRequest describes one generation run.
type ExportRequest struct {
	InputPath  string
	OutputPath string
	Dialect    bookmark.Dialect
}

// ExportResult summarizes a completed generation run.
type ExportResult struct {
	Entries      int
	BytesWritten int
}

// BookmarkExportService defines the contract for generating dialect files
// from a bookmark file.
type BookmarkExportService interface {
	// Export reads, parses, formats and writes. Nothing is written unless
	// every earlier step succeeded.
	Export(req ExportRequest) (ExportResult, error)

	// ListBookmarks reads and parses the bookmark file at inputPath.
	ListBookmarks(inputPath string) (bookmark.List, error)
}
