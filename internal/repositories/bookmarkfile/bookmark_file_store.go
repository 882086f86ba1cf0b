package bookmarkfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/AntonioJCosta/dirmarks/internal/core/domain/bookmark"
	"github.com/AntonioJCosta/dirmarks/internal/core/ports"
)

const defaultOutputPerm os.FileMode = 0644

// ErrInvalidUTF8 is the cause of an InputReadError for files that are not UTF-8 text.
var ErrInvalidUTF8 = errors.New("file is not valid UTF-8 text")

// errTempUnavailable marks a directory that refuses the temporary file.
var errTempUnavailable = errors.New("cannot create temporary file")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BookmarkFileStore reads bookmark files from and writes generated files to
// the local file system.
type BookmarkFileStore struct{}

// NewBookmarkFileStore creates a new BookmarkFileStore.
func NewBookmarkFileStore() ports.BookmarkFileStore {
	return &BookmarkFileStore{}
}

// ReadInput implements the ports.BookmarkFileStore interface.
// A leading UTF-8 byte order mark is dropped.
func (s *BookmarkFileStore) ReadInput(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &bookmark.InputReadError{Path: path, Err: err}
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", &bookmark.InputReadError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(data), nil
}

// WriteOutput implements the ports.BookmarkFileStore interface.
// A symlink at path is followed and its target is replaced. The content goes
// to a temporary file next to that target which is then renamed over it, so
// readers never see a half-written file. When the directory does not allow
// creating the temporary file but the target itself is writable, the target
// is rewritten in place. The parent directory must already exist.
func (s *BookmarkFileStore) WriteOutput(path string, content []byte) error {
	target, err := resolveOutputPath(path)
	if err != nil {
		return &bookmark.OutputWriteError{Path: path, Err: err}
	}

	err = writeFileAtomically(target, content)
	if errors.Is(err, errTempUnavailable) {
		err = writeFileInPlace(target, content)
	}
	if err != nil {
		return &bookmark.OutputWriteError{Path: path, Err: err}
	}
	return nil
}

func writeFileAtomically(path string, content []byte) (err error) {
	perm, exists := outputPerm(path)

	tmp, err := createTempFile(filepath.Dir(path), filepath.Base(path), perm)
	if err != nil {
		if exists && errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %v", errTempUnavailable, err)
		}
		return err
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err = tmp.Write(content); err != nil {
		tmp.Close()
		return fmt.Errorf("writing temporary file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temporary file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temporary file: %w", err)
	}
	// New files keep the umask-filtered mode they were created with.
	if exists {
		if err = os.Chmod(tmpPath, perm); err != nil {
			return fmt.Errorf("setting permissions: %w", err)
		}
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return err
	}
	return nil
}

// writeFileInPlace truncates and rewrites an existing file.
func writeFileInPlace(path string, content []byte) error {
	perm, _ := outputPerm(path)
	return os.WriteFile(path, content, perm)
}
