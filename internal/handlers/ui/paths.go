package ui

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// FriendlyPath shortens paths under the current user's home directory to
// "~/..." for display. Other paths are returned unchanged.
func FriendlyPath(path string) string {
	usr, err := user.Current()
	if err != nil || usr.HomeDir == "" {
		return path
	}
	return friendlyPathFor(path, usr.HomeDir)
}

func friendlyPathFor(path, homeDir string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if absPath == homeDir {
		return "~"
	}
	if strings.HasPrefix(absPath, homeDir+string(os.PathSeparator)) {
		return filepath.Join("~", strings.TrimPrefix(absPath, homeDir+string(os.PathSeparator)))
	}
	return path
}
