package workspace

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/output"
	"github.com/reactfaststart/cli/internal/templates"
)

// WriteFile writes f under projectRoot, creating parent directories and
// replacing any existing content. It never reads the existing file.
func WriteFile(projectRoot string, f templates.File) error {
	path := filepath.Join(projectRoot, filepath.FromSlash(f.Path))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return oerrors.WrapFS(err, "create directory", filepath.Dir(path))
	}
	if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
		return oerrors.WrapFS(err, "write", path)
	}

	output.Debug("wrote file", "path", path, "bytes", len(f.Content))
	return nil
}

// RemoveIfExists deletes the file at path and reports whether it existed.
// A missing file is not an error.
func RemoveIfExists(path string) (bool, error) {
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, oerrors.WrapFS(err, "remove", path)
	}

	output.Debug("removed file", "path", path)
	return true, nil
}
