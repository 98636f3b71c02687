// Package styling installs Tailwind CSS into a generated project and
// rewrites the handful of files that wire it up.
package styling

import (
	"context"
	"path/filepath"

	"github.com/reactfaststart/cli/internal/output"
	"github.com/reactfaststart/cli/internal/project"
	"github.com/reactfaststart/cli/internal/runner"
	"github.com/reactfaststart/cli/internal/templates"
	"github.com/reactfaststart/cli/internal/toolchain"
	"github.com/reactfaststart/cli/internal/workspace"
)

// LegacyStylesheetPath is the generator's default component stylesheet.
const LegacyStylesheetPath = "src/App.css"

// peerPackages are installed together with the framework, in this order.
var peerPackages = []string{"postcss", "autoprefixer"}

// ChangeKind says what happened to a file.
type ChangeKind string

const (
	ChangeWritten ChangeKind = "written"
	ChangeRemoved ChangeKind = "removed"
)

// Change records a single file this tool wrote or removed.
type Change struct {
	// Path is relative to the project root, slash separated.
	Path string
	Kind ChangeKind
}

// Configurator performs the styling stage.
type Configurator struct {
	Runner runner.Runner
	Tools  toolchain.Toolset

	// ContentGlobs override templates.DefaultContentGlobs when non-empty.
	ContentGlobs []string
}

// NewConfigurator creates a Configurator.
func NewConfigurator(r runner.Runner, tools toolchain.Toolset) *Configurator {
	return &Configurator{Runner: r, Tools: tools}
}

// Configure installs the framework and its peers, runs its initializer,
// then overwrites the config, the CSS entry file and the entry component.
// The first failing step aborts the rest; completed steps are not undone.
func (c *Configurator) Configure(ctx context.Context, projectRoot string, tmpl project.Template) ([]Change, error) {
	log := output.ProjectLogger(filepath.Base(projectRoot))

	log.Info("Installing Tailwind CSS...")
	pkgs := append([]string{c.Tools.TailwindPackage}, peerPackages...)
	if err := c.Runner.Run(ctx, c.Tools.AddDev(projectRoot, pkgs...)); err != nil {
		return nil, err
	}

	// The initializer writes tailwind.config.js and postcss.config.js itself.
	log.Info("Initializing Tailwind configuration...")
	if err := c.Runner.Run(ctx, c.Tools.Exec(projectRoot, "tailwindcss", "init", "-p")); err != nil {
		return nil, err
	}

	var changes []Change

	log.Info("Configuring Tailwind...")
	globs := c.ContentGlobs
	if len(globs) == 0 {
		globs = templates.DefaultContentGlobs
	}
	cfg, err := templates.RenderTailwindConfig(globs)
	if err != nil {
		return changes, err
	}
	if err := workspace.WriteFile(projectRoot, cfg); err != nil {
		return changes, err
	}
	changes = append(changes, Change{Path: cfg.Path, Kind: ChangeWritten})

	log.Info("Setting up Tailwind styles...")
	css := templates.RenderStylesheet()
	if err := workspace.WriteFile(projectRoot, css); err != nil {
		return changes, err
	}
	changes = append(changes, Change{Path: css.Path, Kind: ChangeWritten})

	removed, err := workspace.RemoveIfExists(filepath.Join(projectRoot, filepath.FromSlash(LegacyStylesheetPath)))
	if err != nil {
		return changes, err
	}
	if removed {
		log.Info("Deleted " + filepath.Base(LegacyStylesheetPath))
		changes = append(changes, Change{Path: LegacyStylesheetPath, Kind: ChangeRemoved})
	}

	entry, err := templates.Render(tmpl, true)
	if err != nil {
		return changes, err
	}
	log.Info("Resetting " + filepath.Base(entry.Path) + "...")
	if err := workspace.WriteFile(projectRoot, entry); err != nil {
		return changes, err
	}
	changes = append(changes, Change{Path: entry.Path, Kind: ChangeWritten})

	return changes, nil
}
