package ports

import "github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"

// BookmarkFormatter renders a bookmark list in a single output dialect.
type BookmarkFormatter interface {
	Format(list bookmark.List, dialect bookmark.Dialect) ([]byte, error)
	// Template returns the per-entry line template for dialect, for display.
	Template(dialect bookmark.Dialect) (string, error)
}
