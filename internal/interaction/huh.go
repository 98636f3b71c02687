package interaction

import (
	"errors"

	"github.com/charmbracelet/huh"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// HuhPrompter implements Prompter with the huh TUI library.
type HuhPrompter struct{}

func (HuhPrompter) Input(title string, validate func(string) error) (string, error) {
	var input string
	field := huh.NewInput().
		Title(title).
		Value(&input)
	if validate != nil {
		field = field.Validate(func(s string) error {
			// Keep the inline message to the first line; hints are long.
			if err := validate(s); err != nil {
				return errors.New(firstLine(err.Error()))
			}
			return nil
		})
	}

	if err := field.Run(); err != nil {
		return "", mapAbort(err)
	}
	return input, nil
}

func (HuhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	answer := defaultYes
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&answer).
		Run()
	if err != nil {
		return false, mapAbort(err)
	}
	return answer, nil
}

func (HuhPrompter) Select(title string, options []string, def string) (string, error) {
	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt, opt).Selected(opt == def)
	}

	selected := def
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", mapAbort(err)
	}
	return selected, nil
}

// mapAbort turns a user abort (ctrl+c, esc) into a cancellation.
func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return oerrors.ErrCancelled
	}
	return err
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
