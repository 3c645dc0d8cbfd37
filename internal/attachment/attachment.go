// Package attachment stores generated remittance documents on disk.
package attachment

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes documents into Dir. Existing files are never
// overwritten.
type FileSink struct {
	Dir string

	// Paths lists every stored file, in order.
	Paths []string
}

// NewFileSink creates a sink writing into dir.
func NewFileSink(dir string) *FileSink {
	return &FileSink{Dir: dir}
}

// Store writes document to <Dir>/<name>. resourceRef is the payment group
// the document belongs to.
func (s *FileSink) Store(document []byte, name, resourceRef string) error {
	if name == "" || filepath.Base(name) != name {
		return fmt.Errorf("invalid attachment name %q for %s", name, resourceRef)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	path := filepath.Join(s.Dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	if _, err := f.Write(document); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", name, err)
	}

	s.Paths = append(s.Paths, path)
	return nil
}

// Last returns the most recently stored path, or "".
func (s *FileSink) Last() string {
	if len(s.Paths) == 0 {
		return ""
	}
	return s.Paths[len(s.Paths)-1]
}
