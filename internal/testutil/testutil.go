// Package testutil provides test helpers that simulate the files external
// tools leave behind.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reactfaststart/cli/internal/project"
	"github.com/reactfaststart/cli/internal/runner"
)

// Generated file contents written by the fakes.
const (
	GeneratedEntry      = "export default function App() {}\n"
	GeneratedStylesheet = ":root { color: red; }\n"
	GeneratedAppCSS     = ".logo {}\n"
)

// WriteFile creates a file with the given content in the specified directory.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path or fails the test.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(b)
}

// layoutVite writes the subset of a generated Vite project the tool touches.
func layoutVite(root string, tmpl project.Template, withAppCSS bool) error {
	files := map[string]string{
		"src/index.css":   GeneratedStylesheet,
		tmpl.EntryFile(): GeneratedEntry,
	}
	if withAppCSS {
		files["src/App.css"] = GeneratedAppCSS
	}
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

// ViteProject lays out a generated project called name under a temp dir and
// returns its root.
func ViteProject(t *testing.T, name string, tmpl project.Template, withAppCSS bool) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), name)
	if err := layoutVite(root, tmpl, withAppCSS); err != nil {
		t.Fatalf("failed to lay out project %s: %v", root, err)
	}
	return root
}

// FakeTools returns a runner.Recorder handler that simulates the generator
// and the Tailwind initializer on disk. Other commands succeed silently.
func FakeTools(tmpl project.Template) func(runner.Command) error {
	return func(cmd runner.Command) error {
		args := cmd.Args
		// pnpm dlx carries a leading subcommand.
		if len(args) > 0 && args[0] == "dlx" {
			args = args[1:]
		}
		if len(args) == 0 {
			return nil
		}

		switch {
		case len(args) >= 4 && args[2] == "--template":
			return layoutVite(filepath.Join(cmd.Dir, args[1]), tmpl, true)
		case args[0] == "tailwindcss":
			if err := os.WriteFile(filepath.Join(cmd.Dir, "tailwind.config.js"), []byte("module.exports = {}\n"), 0o644); err != nil {
				return err
			}
			return os.WriteFile(filepath.Join(cmd.Dir, "postcss.config.js"), []byte("export default {}\n"), 0o644)
		}
		return nil
	}
}
