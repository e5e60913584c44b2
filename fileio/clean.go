package fileio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// EmptyDir removes every entry inside dir, leaving dir itself in place.
// It returns false when dir does not exist.
func EmptyDir(dir string) (bool, error) {
	exists, err := isDir(dir)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return true, err
	}
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		if err := os.RemoveAll(entryPath); err != nil {
			return true, fmt.Errorf("failed to remove %s: %w", entryPath, err)
		}
		log.Trace().Str("path", entryPath).Msg("Removed")
	}
	return true, nil
}
