package ports

/*
BookmarkFileStore defines the interface for reading bookmark files from and
writing generated files to the file system.
*/
type BookmarkFileStore interface {
	/*
	   ReadInput returns the text of the bookmark file at path.
	   Failures are reported as *bookmark.InputReadError.
	*/
	ReadInput(path string) (string, error)

	/*
	   WriteOutput replaces the file at path with content. The target is either
	   fully written or left untouched. Failures are reported as
	   *bookmark.OutputWriteError.
	*/
	WriteOutput(path string, content []byte) error
}
