// Package imagefile writes decoded image bytes to disk.
package imagefile

import (
	"fmt"
	"os"
	"path/filepath"
)

// Save writes data to path, creating missing parent directories, and
// returns the path written. The write is not atomic.
func Save(path string, data []byte) (string, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path, nil
}
