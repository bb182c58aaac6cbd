package filesystem

import (
	"os"
	"path/filepath"
)

// UserHomeDir returns the user's home directory, or "." when it cannot be resolved.
func UserHomeDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "."
}

// ExpandPath resolves a leading "~/" against the home directory.
func ExpandPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if len(path) > 1 && path[:2] == "~/" {
		return filepath.Join(UserHomeDir(), path[2:])
	}
	return filepath.Clean(path)
}

// AppDir is ~/.termfolio.
func AppDir() string {
	return filepath.Join(UserHomeDir(), ".termfolio")
}
