package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mtrost/ritual/internal/storage/sqlite"
)

// NewSQLiteStore creates a SQLite-backed Provider at the given path.
// A leading "~/" is expanded to the user's home directory.
func NewSQLiteStore(path string) Provider {
	return sqlite.NewStore(ExpandHome(path))
}

// ExpandHome resolves a leading "~/" in a filesystem path.
func ExpandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
