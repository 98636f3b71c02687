package project

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// NameHint is shown whenever a project name is rejected.
const NameHint = "Project name must start with a letter and can only contain lowercase letters, numbers, and underscores."

// ErrUnsafeName indicates a name that could escape the target directory.
var ErrUnsafeName = errors.New("name contains a path separator or parent-directory reference")

var (
	namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
	whitespace  = regexp.MustCompile(`[\s\p{Zs}]+`)
)

// Normalize lower-cases raw and replaces each whitespace run with an underscore.
// Unicode space separators count as whitespace. Leading and trailing runs are
// replaced too, so " demo" becomes "_demo" and fails validation.
func Normalize(raw string) string {
	return whitespace.ReplaceAllString(strings.ToLower(raw), "_")
}

// Validate normalizes raw and checks it against the naming rules.
// The unsafe-path check runs on the raw input before any pattern matching.
// It has no side effects.
func Validate(raw string) (string, error) {
	if strings.ContainsAny(raw, `/\`) || strings.Contains(raw, "..") {
		return "", &oerrors.DetailError{
			Type:    "invalid project name",
			Message: fmt.Sprintf("%q: %s", raw, ErrUnsafeName),
			Hint:    NameHint,
			Cause:   errors.Join(ErrUnsafeName, oerrors.ErrValidation),
		}
	}

	name := Normalize(raw)
	if !namePattern.MatchString(name) {
		msg := fmt.Sprintf("%q is not a valid project name", name)
		if name == "" {
			msg = "project name is required"
		}
		return "", &oerrors.DetailError{
			Type:    "invalid project name",
			Message: msg,
			Hint:    NameHint,
			Cause:   oerrors.ErrValidation,
		}
	}

	return name, nil
}
