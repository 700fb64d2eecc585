// Package storage is the I/O boundary for the corrector: whole-file
// reads via mmap, writes that create missing parent directories, and a
// pre-flight existence check.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/edsrzf/mmap-go"
)

// ReadText reads an entire file into a string. The file is mapped
// read-only and copied out, so large dictionaries never go through an
// intermediate buffer twice.
func ReadText(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	// mmap rejects zero-length files
	if fi.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return "", fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer m.Unmap()

	return string(m), nil
}

// WriteText writes content to path, creating parent directories as
// needed.
func WriteText(path, content string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
