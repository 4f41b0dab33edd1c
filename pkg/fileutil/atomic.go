// Package fileutil provides file system utilities including atomic write
// operations and size-limited reads.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/aikumo/baremp3/internal/errors"
)

// AtomicWrite creates path atomically: fn writes into a temp file in the
// same directory, which is renamed over path only after fn and close
// succeed. An interrupted or failed write leaves any existing file at
// path intact.
//
// The caller is responsible for ensuring the parent directory exists.
// Permissions are applied to the final file via the perm parameter.
func AtomicWrite(path string, perm os.FileMode, fn func(f *os.File) error) error {
	dir := filepath.Dir(path)

	// Create temp file in same directory for atomic rename (same filesystem required)
	tmp, err := os.CreateTemp(dir, ".baremp3-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	// Track temp file name for cleanup
	tmpName := tmp.Name()
	defer func() {
		// Only remove if rename failed (file still exists)
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if err := fn(tmp); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// AtomicWriteFile writes data to a file atomically using a temp file +
// rename pattern. This ensures interrupted writes leave the original
// file intact.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return AtomicWrite(path, perm, func(f *os.File) error {
		if _, err := f.Write(data); err != nil {
			return errors.Wrap(err, "writing temp file")
		}
		return nil
	})
}
