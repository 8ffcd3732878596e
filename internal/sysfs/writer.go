// Package sysfs writes integer values to sysfs-style control files.
package sysfs

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
)

// Writer abstracts the device write capability so renderers can be tested
// against a fake. Implementations must never panic on missing or
// unwritable paths, only report failure.
type Writer interface {
	// WriteInt writes value to the control file at path and reports success.
	WriteInt(path string, value int) bool

	// Exists reports whether the control file at path is present.
	Exists(path string) bool
}

// FS is a Writer backed by the real filesystem. Root is prepended to every
// path, so tests can point it at a temp directory tree.
type FS struct {
	root   string
	logger *slog.Logger
}

// New creates a filesystem writer rooted at root. An empty root writes to
// absolute paths directly.
func New(root string, logger *slog.Logger) *FS {
	return &FS{root: root, logger: logger}
}

// WriteInt writes the decimal representation of value to the control file.
// Failures are logged and reported, never raised.
func (f *FS) WriteInt(path string, value int) bool {
	full := f.resolve(path)
	if err := os.WriteFile(full, []byte(strconv.Itoa(value)), 0o644); err != nil {
		f.logger.Warn("Control file write failed", "path", full, "value", value, "error", err)
		return false
	}
	return true
}

// Exists reports whether the control file is present.
func (f *FS) Exists(path string) bool {
	_, err := os.Stat(f.resolve(path))
	return err == nil
}

func (f *FS) resolve(path string) string {
	if f.root == "" {
		return path
	}
	return filepath.Join(f.root, path)
}
