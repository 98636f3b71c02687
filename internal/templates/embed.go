// Package templates renders the files faststart writes into a generated
// project. Rendering is pure: callers perform all filesystem writes.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/reactfaststart/cli/internal/project"
)

//go:embed files/*
var filesFS embed.FS

var templateCache sync.Map

// File is a rendered file with its path relative to the project root.
type File struct {
	Path    string
	Content string
}

// entryData is the data available to entry component templates.
type entryData struct {
	// Typed adds TypeScript annotations.
	Typed bool

	// EntryFile is the component's own project-relative path.
	EntryFile string
}

// Render produces the entry component for a template. When styled is true
// the component uses Tailwind utility classes and a toggleable demo state;
// otherwise it is a near-empty placeholder.
func Render(tmpl project.Template, styled bool) (File, error) {
	name := "app-plain.tmpl"
	if styled {
		name = "app-tailwind.tmpl"
	}

	content, err := execute(name, entryData{
		Typed:     tmpl.Typed(),
		EntryFile: tmpl.EntryFile(),
	})
	if err != nil {
		return File{}, err
	}

	return File{Path: tmpl.EntryFile(), Content: content}, nil
}

// TailwindConfigPath is the framework config path relative to the project root.
const TailwindConfigPath = "tailwind.config.js"

// DefaultContentGlobs cover the markup and script files of a Vite React project.
var DefaultContentGlobs = []string{
	"./index.html",
	"./src/**/*.{js,ts,jsx,tsx}",
}

// RenderTailwindConfig produces the framework config. The content globs are
// its only variable part.
func RenderTailwindConfig(content []string) (File, error) {
	out, err := execute("tailwind.config.js.tmpl", struct{ Content []string }{content})
	if err != nil {
		return File{}, err
	}
	return File{Path: TailwindConfigPath, Content: out}, nil
}

// StylesheetPath is the CSS entry file relative to the project root.
const StylesheetPath = "src/index.css"

// TailwindDirectives is the complete content of the CSS entry file.
const TailwindDirectives = "@tailwind base;\n@tailwind components;\n@tailwind utilities;\n"

// RenderStylesheet produces the CSS entry file.
func RenderStylesheet() File {
	return File{Path: StylesheetPath, Content: TailwindDirectives}
}

func execute(name string, data any) (string, error) {
	tmpl, err := load(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return buf.String(), nil
}

func load(name string) (*template.Template, error) {
	if cached, ok := templateCache.Load(name); ok {
		return cached.(*template.Template), nil
	}

	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(filesFS, "files/"+name)
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}

	templateCache.Store(name, tmpl)
	return tmpl, nil
}
