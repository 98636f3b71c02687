// Package interaction provides the interactive prompts used by the
// scaffolding flow and selects an implementation for the current terminal.
package interaction

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Prompter asks the user for the answers the scaffolding flow needs.
type Prompter interface {
	// Input asks for free text. validate, when non-nil, is used for inline
	// feedback; callers still validate the returned value themselves.
	Input(title string, validate func(string) error) (string, error)

	// Confirm asks a yes/no question. Empty input yields defaultYes.
	Confirm(title string, defaultYes bool) (bool, error)

	// Select asks the user to pick one of options; def is preselected.
	Select(title string, options []string, def string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// New returns a HuhPrompter when both stdin and stdout are terminals and a
// line-based prompter reading in and writing to out otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if f, ok := out.(*os.File); ok && IsTerminal(in) && IsTerminal(f) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}
