package ports

import "github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"

/*
BookmarkParser defines the contract for turning the text of a bookmark file
into an ordered list of entries. This is a driven port.
*/
type BookmarkParser interface {
	// Parse returns the entries in file order, or a *bookmark.MalformedLineError
	// for the first line that is neither blank, a comment, nor a valid entry.
	Parse(text string) (bookmark.List, error)
}
