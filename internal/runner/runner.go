// Package runner executes external tools with their standard streams
// attached to the invoking terminal.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/output"
)

// Command is a single external tool invocation.
type Command struct {
	// Name is the executable, resolved through PATH.
	Name string

	// Args are passed to the executable in order.
	Args []string

	// Dir is the working directory. It must be set explicitly; the
	// process working directory is never changed.
	Dir string
}

// String returns the command line as the user would type it.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs external commands to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ToolError reports an external command that could not be launched or
// exited with a non-zero status.
type ToolError struct {
	// Command is the failing invocation.
	Command Command

	// ExitCode is the process exit code, or -1 when the process never started.
	ExitCode int

	// Err is the launch error, if any.
	Err error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("%s failed with exit code %d", e.Command, e.ExitCode)
	}
	return fmt.Sprintf("%s: %v", e.Command, e.Err)
}

// Unwrap exposes the sentinel classification and the launch error.
func (e *ToolError) Unwrap() []error {
	errs := []error{oerrors.ErrExternalTool}
	if errors.Is(e.Err, exec.ErrNotFound) || errors.Is(e.Err, os.ErrNotExist) {
		errs = append(errs, oerrors.ErrNotFound)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdin for the child process. If nil, os.Stdin is used.
	Stdin io.Reader

	// Stdout for the child process. If nil, os.Stdout is used.
	Stdout io.Writer

	// Stderr for the child process. If nil, os.Stderr is used.
	Stderr io.Writer
}

// NewExecRunner creates a runner attached to the process's own streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run executes cmd and waits for it to exit. No timeout is applied; the
// command runs until it finishes or ctx is cancelled by an interrupt.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	output.Debug("running external tool", "cmd", cmd.String(), "dir", cmd.Dir)

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = r.stdin()
	c.Stdout = r.stdout()
	c.Stderr = r.stderr()

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolError{Command: cmd, ExitCode: exitErr.ExitCode(), Err: err}
		}
		return &ToolError{Command: cmd, ExitCode: -1, Err: err}
	}

	return nil
}

func (r *ExecRunner) stdin() io.Reader {
	if r.Stdin != nil {
		return r.Stdin
	}
	return os.Stdin
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout != nil {
		return r.Stdout
	}
	return os.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr != nil {
		return r.Stderr
	}
	return os.Stderr
}
