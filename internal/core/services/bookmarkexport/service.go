package bookmarkexport

import (
	"fmt"
	"log/slog"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
)

type service struct {
	parser    ports.BookmarkParser
	formatter ports.BookmarkFormatter
	store     ports.BookmarkFileStore
	logger    *slog.Logger
}

// NewService creates a new bookmark export service.
// It panics if parser, formatter, or store are nil. A nil logger discards logs.
func NewService(
	parser ports.BookmarkParser,
	formatter ports.BookmarkFormatter,
	store ports.BookmarkFileStore,
	logger *slog.Logger,
) ports.BookmarkExportService {
	if parser == nil {
		panic("parser cannot be nil")
	}
	if formatter == nil {
		panic("formatter cannot be nil")
	}
	if store == nil {
		panic("store cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &service{
		parser:    parser,
		formatter: formatter,
		store:     store,
		logger:    logger,
	}
}

// Export implements ports.BookmarkExportService.
func (s *service) Export(req ports.ExportRequest) (ports.ExportResult, error) {
	if !req.Dialect.Valid() {
		return ports.ExportResult{}, fmt.Errorf("%w: %q", bookmark.ErrUnknownDialect, string(req.Dialect))
	}

	list, err := s.ListBookmarks(req.InputPath)
	if err != nil {
		return ports.ExportResult{}, err
	}

	content, err := s.formatter.Format(list, req.Dialect)
	if err != nil {
		return ports.ExportResult{}, fmt.Errorf("failed to format bookmarks as %s: %w", req.Dialect, err)
	}

	if err := s.store.WriteOutput(req.OutputPath, content); err != nil {
		return ports.ExportResult{}, fmt.Errorf("failed to write %s output: %w", req.Dialect, err)
	}
	s.logger.Debug("wrote output file",
		slog.String("path", req.OutputPath),
		slog.String("dialect", string(req.Dialect)),
		slog.Int("bytes", len(content)))

	return ports.ExportResult{Entries: len(list), BytesWritten: len(content)}, nil
}

// ListBookmarks implements ports.BookmarkExportService.
func (s *service) ListBookmarks(inputPath string) (bookmark.List, error) {
	text, err := s.store.ReadInput(inputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookmarks: %w", err)
	}
	s.logger.Debug("read bookmark file", slog.String("path", inputPath), slog.Int("bytes", len(text)))

	list, err := s.parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", inputPath, err)
	}
	s.logger.Debug("parsed bookmarks", slog.String("path", inputPath), slog.Int("entries", len(list)))
	return list, nil
}
