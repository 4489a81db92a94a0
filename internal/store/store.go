package store

import (
	"fmt"
	"os"
)

const (
	DefaultDBFile = "fixture.db"
)

// CheckExists verifies if a fixture file exists at the given path.
// Returns true if the file exists, false otherwise.
func CheckExists(dbPath string) (bool, error) {
	info, err := os.Stat(dbPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check fixture existence: %w", err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("fixture path is a directory, expected file: %s", dbPath)
	}
	return true, nil
}

// Remove deletes a pre-existing fixture file so the build starts from
// nothing. A missing file is not an error.
func Remove(dbPath string) error {
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove fixture: %w", err)
	}
	return nil
}
