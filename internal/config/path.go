package config

import (
	"os"
	"path/filepath"
	"strings"
)

// memoryPath is SQLite's name for a database that lives only in memory.
const memoryPath = ":memory:"

// ExpandPath resolves a leading ~ to the home directory and expands $VAR
// references. The in-memory database name is returned untouched.
func ExpandPath(path string) string {
	if path == "" || path == memoryPath {
		return path
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}

	return os.ExpandEnv(path)
}
