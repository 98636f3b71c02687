// Package project defines the scaffolding request and its naming rules.
package project

import (
	"fmt"
	"strings"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// Template identifies the generator template.
type Template string

const (
	// TemplateReact is the untyped JavaScript React skeleton.
	TemplateReact Template = "react"

	// TemplateReactTS is the TypeScript React skeleton.
	TemplateReactTS Template = "react-ts"
)

// DefaultTemplate is preselected in the template prompt.
const DefaultTemplate = TemplateReact

// ValidTemplates returns all template identifiers in prompt order.
func ValidTemplates() []string {
	return []string{string(TemplateReact), string(TemplateReactTS)}
}

// ParseTemplate converts a template identifier to a Template.
func ParseTemplate(s string) (Template, error) {
	switch Template(s) {
	case TemplateReact, TemplateReactTS:
		return Template(s), nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown template: %q", s), "", "template",
			"Valid templates: "+strings.Join(ValidTemplates(), ", "))
	}
}

// Typed reports whether the template produces a TypeScript project.
func (t Template) Typed() bool {
	return t == TemplateReactTS
}

// EntryFile returns the entry component path relative to the project root.
func (t Template) EntryFile() string {
	if t.Typed() {
		return "src/App.tsx"
	}
	return "src/App.jsx"
}

// Styling selects the optional post-scaffold setup.
type Styling string

const (
	// StylingNone keeps the generator defaults and runs a plain install.
	StylingNone Styling = "Default"

	// StylingTailwind installs and wires up Tailwind CSS.
	StylingTailwind Styling = "Tailwind CSS"
)

// ValidStylings returns all setup choices in prompt order.
func ValidStylings() []string {
	return []string{string(StylingNone), string(StylingTailwind)}
}

// ParseStyling converts a setup choice label to a Styling.
func ParseStyling(s string) (Styling, error) {
	switch Styling(s) {
	case StylingNone, StylingTailwind:
		return Styling(s), nil
	default:
		return "", oerrors.NewValidationError(
			fmt.Sprintf("unknown setup: %q", s), "", "setup",
			"Valid setups: "+strings.Join(ValidStylings(), ", "))
	}
}

// Enabled reports whether the styling stage runs.
func (s Styling) Enabled() bool {
	return s == StylingTailwind
}

// Request is the immutable description of a single scaffolding run.
type Request struct {
	// RawName is the name exactly as the user typed it.
	RawName string

	// Name is the normalized project identifier, used both as directory
	// name and as the generator argument.
	Name string

	Template Template
	Styling  Styling
}
