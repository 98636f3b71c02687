// Package scaffold drives the external project generator and the package
// manager's install step.
package scaffold

import (
	"context"
	"path/filepath"

	"github.com/reactfaststart/cli/internal/output"
	"github.com/reactfaststart/cli/internal/project"
	"github.com/reactfaststart/cli/internal/runner"
	"github.com/reactfaststart/cli/internal/toolchain"
)

// Invoker runs the generator and installer through a Runner.
type Invoker struct {
	Runner runner.Runner
	Tools  toolchain.Toolset
}

// NewInvoker creates an Invoker.
func NewInvoker(r runner.Runner, tools toolchain.Toolset) *Invoker {
	return &Invoker{Runner: r, Tools: tools}
}

// Scaffold runs the generator inside parentDir so that it creates a
// directory called name there, and returns that directory. All later
// stages use the returned path as their working root.
func (i *Invoker) Scaffold(ctx context.Context, name string, tmpl project.Template, parentDir string) (string, error) {
	output.Info("Creating Vite project",
		"project", name,
		"template", string(tmpl),
	)

	if err := i.Runner.Run(ctx, i.Tools.Generate(parentDir, name, string(tmpl))); err != nil {
		return "", err
	}

	return filepath.Join(parentDir, name), nil
}

// InstallDependencies runs the package manager's bare install in projectRoot.
func (i *Invoker) InstallDependencies(ctx context.Context, projectRoot string) error {
	output.Info("Installing dependencies", "dir", projectRoot)
	return i.Runner.Run(ctx, i.Tools.Install(projectRoot))
}
