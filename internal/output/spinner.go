package output

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner.
// Returns the action's error if any. When stderr is not a terminal the
// action runs directly without any animation.
//
// Never wrap an action that writes to the terminal itself (external tools
// streaming their output); the spinner would fight it for the cursor.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{
		title: "Working...",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() {
		return action()
	}

	errCh := make(chan error, 1)

	go func() {
		errCh <- action()
	}()

	var actionErr error
	spinnerErr := spinner.New().
		Title(cfg.title).
		Context(ctx).
		Action(func() {
			actionErr = <-errCh
		}).
		Run()

	if spinnerErr != nil {
		return spinnerError(spinnerErr)
	}

	return actionErr
}

// spinnerError maps a user abort (ctrl+c) to ErrCancelled and wraps
// anything else.
func spinnerError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, tea.ErrInterrupted) {
		return fmt.Errorf("spinner interrupted: %w", oerrors.ErrCancelled)
	}
	return fmt.Errorf("spinner error: %w", err)
}
