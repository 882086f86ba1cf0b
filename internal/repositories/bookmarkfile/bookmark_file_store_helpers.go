package bookmarkfile

import (
	"errors"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
)

const maxTempAttempts = 10000

// outputPerm returns the permissions of an existing regular file at path and
// true, or defaultOutputPerm and false.
func outputPerm(path string) (os.FileMode, bool) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return defaultOutputPerm, false
	}
	return info.Mode().Perm(), true
}

// resolveOutputPath follows symlinks at path so the linked file is the one
// replaced. A path that does not exist yet is returned unchanged, as is a
// dangling link's own destination.
func resolveOutputPath(path string) (string, error) {
	resolved, err := filepath.EvalSymlinks(path)
	if err == nil {
		return resolved, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	dest, linkErr := os.Readlink(path)
	if linkErr != nil {
		return path, nil
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(filepath.Dir(path), dest)
	}
	return dest, nil
}

// createTempFile creates a hidden file next to base in dir with perm, so the
// process umask applies as it does for os.WriteFile.
func createTempFile(dir, base string, perm os.FileMode) (*os.File, error) {
	for range maxTempAttempts {
		name := filepath.Join(dir, "."+base+".tmp-"+strconv.FormatUint(rand.Uint64(), 36))
		f, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		return f, err
	}
	return nil, &fs.PathError{Op: "createtemp", Path: filepath.Join(dir, "."+base+".tmp-*"), Err: fs.ErrExist}
}
