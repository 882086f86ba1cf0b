/*
Package bookmark defines the core domain entities for directory bookmarks
and the dialects they can be rendered in.
*/
package bookmark

/*
Entry is a single shortcut to directory mapping read from a bookmark file.
Path is kept exactly as written; it is never expanded or resolved.
*/
type Entry struct {
	Shortcut string `yaml:"shortcut"`
	Path     string `yaml:"path"`
}

// List is an ordered sequence of entries in bookmark file order.
type List []Entry

