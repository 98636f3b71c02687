// Package workspace prepares the target directory for a new project.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/output"
)

// Action describes what Resolve did to the target path.
type Action int

const (
	// ActionClean means nothing existed at the target path.
	ActionClean Action = iota

	// ActionOverwritten means an existing path was removed after confirmation.
	ActionOverwritten
)

func (a Action) String() string {
	switch a {
	case ActionClean:
		return "clean"
	case ActionOverwritten:
		return "overwritten"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(title string, defaultYes bool) (bool, error)
}

// Resolver makes sure a target path is free before scaffolding.
type Resolver struct {
	Confirmer Confirmer
}

// NewResolver creates a Resolver that asks c before destroying anything.
func NewResolver(c Confirmer) *Resolver {
	return &Resolver{Confirmer: c}
}

// Resolve returns ActionClean when path does not exist, without prompting.
// When it exists the user must confirm the overwrite; the default answer is
// no. On confirmation the path is removed recursively. On decline nothing
// is touched and the returned error wraps ErrCancelled.
func (r *Resolver) Resolve(ctx context.Context, path string) (Action, error) {
	if err := ctx.Err(); err != nil {
		return ActionClean, err
	}

	if _, err := os.Lstat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ActionClean, nil
		}
		return ActionClean, oerrors.WrapFS(err, "stat", path)
	}

	title := fmt.Sprintf("Directory '%s' already exists. Overwrite?", filepath.Base(path))
	overwrite, err := r.Confirmer.Confirm(title, false)
	if err != nil {
		return ActionClean, err
	}
	if !overwrite {
		return ActionClean, fmt.Errorf("keeping existing directory %s: %w", path, oerrors.ErrCancelled)
	}

	output.Debug("removing existing directory", "path", path)
	// RemoveAll treats a path that vanished in the meantime as success.
	if err := os.RemoveAll(path); err != nil {
		return ActionClean, oerrors.WrapFS(err, "remove", path)
	}

	return ActionOverwritten, nil
}
