package export

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gorewood/journey2md/internal/output"
)

// Writer writes mapped entries under a target root, creating the
// YYYY/MM/DD directories as needed.
type Writer struct {
	root  string
	force bool
}

// NewWriter creates a Writer for root.
// If force is false, existing files are left alone and reported as conflicts.
func NewWriter(root string, force bool) *Writer {
	return &Writer{root: root, force: force}
}

// Root returns the target directory.
func (w *Writer) Root() string {
	return w.root
}

// Abs returns the filesystem path for a slash-separated relative path.
func (w *Writer) Abs(relPath string) string {
	return filepath.Join(w.root, filepath.FromSlash(relPath))
}

// Write stores content at relPath below the root.
// Directory creation is idempotent, so concurrent writers sharing a day are safe.
func (w *Writer) Write(relPath, content string) error {
	if err := ValidateRelPath(relPath); err != nil {
		return err
	}

	target := w.Abs(relPath)
	if !w.force {
		if _, err := os.Stat(target); err == nil {
			return output.NewConflictError("file already exists: " + target)
		}
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return output.NewSystemErrorWithCause("failed to create directory for "+relPath, err)
	}

	if err := atomicWrite(target, []byte(content)); err != nil {
		return output.NewSystemErrorWithCause("failed to write "+target, err)
	}
	return nil
}

// ValidateRelPath rejects paths that would escape the target root.
func ValidateRelPath(relPath string) error {
	if relPath == "" || path.IsAbs(relPath) || filepath.IsAbs(relPath) || strings.Contains(relPath, `\`) {
		return output.NewUserError("invalid destination path: " + relPath)
	}
	for _, segment := range strings.Split(relPath, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return output.NewUserError("invalid destination path: " + relPath)
		}
	}
	return nil
}

// atomicWrite writes data to target using write-to-temp-then-rename.
// The temp file is created in the same directory as target.
func atomicWrite(target string, data []byte) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(target), ".tmp-*"+Ext)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
