package ports

import "github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"

// BookmarkEncoder serializes a bookmark list into a structured document.
type BookmarkEncoder interface {
	Encode(list bookmark.List) ([]byte, error)
}
