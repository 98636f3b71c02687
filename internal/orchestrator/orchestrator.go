// Package orchestrator runs the interactive scaffolding flow: it asks for a
// name, a template and a setup, then drives the generator and the styling
// stage against an explicit target directory.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/interaction"
	"github.com/reactfaststart/cli/internal/output"
	"github.com/reactfaststart/cli/internal/project"
	"github.com/reactfaststart/cli/internal/runner"
	"github.com/reactfaststart/cli/internal/scaffold"
	"github.com/reactfaststart/cli/internal/styling"
	"github.com/reactfaststart/cli/internal/templates"
	"github.com/reactfaststart/cli/internal/toolchain"
	"github.com/reactfaststart/cli/internal/workspace"
)

// Prompt titles.
const (
	PromptName     = "Enter the name of your project:"
	PromptTemplate = "Choose a template:"
	PromptSetup    = "Choose a setup:"
)

// Orchestrator wires the stages together. Every field is required except
// Preflight, which is skipped when nil, and Out, which defaults to stdout.
type Orchestrator struct {
	Prompter     interaction.Prompter
	Resolver     *workspace.Resolver
	Invoker      *scaffold.Invoker
	Configurator *styling.Configurator
	Tools        toolchain.Toolset

	// BaseDir is the directory the project is created in.
	BaseDir string

	// Preflight checks the environment before anything is asked.
	Preflight func(ctx context.Context) error

	// Out receives the completion summary.
	Out io.Writer
}

// New builds an Orchestrator whose stages share one prompter, runner and
// toolset.
func New(p interaction.Prompter, r runner.Runner, tools toolchain.Toolset, baseDir string) *Orchestrator {
	return &Orchestrator{
		Prompter:     p,
		Resolver:     workspace.NewResolver(p),
		Invoker:      scaffold.NewInvoker(r, tools),
		Configurator: styling.NewConfigurator(r, tools),
		Tools:        tools,
		BaseDir:      baseDir,
		Out:          os.Stdout,
	}
}

// Outcome describes a completed run.
type Outcome struct {
	Request     project.Request
	ProjectRoot string
	Action      workspace.Action
	Changes     []styling.Change
}

// Run executes the stages in order and returns the first error unchanged.
// A declined overwrite or an aborted prompt yields an error wrapping
// ErrCancelled.
func (o *Orchestrator) Run(ctx context.Context) (*Outcome, error) {
	if err := o.stagePreflight(ctx); err != nil {
		return nil, err
	}

	req, err := o.stageName(ctx)
	if err != nil {
		return nil, err
	}

	target := o.stageTarget(req.Name)

	action, err := o.Resolver.Resolve(ctx, target)
	if err != nil {
		return nil, err
	}

	if req.Template, err = o.stageTemplate(); err != nil {
		return nil, err
	}

	projectRoot, err := o.Invoker.Scaffold(ctx, req.Name, req.Template, o.BaseDir)
	if err != nil {
		return nil, err
	}

	if req.Styling, err = o.stageSetup(); err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Request:     req,
		ProjectRoot: projectRoot,
		Action:      action,
	}

	if req.Styling.Enabled() {
		outcome.Changes, err = o.Configurator.Configure(ctx, projectRoot, req.Template)
	} else {
		outcome.Changes, err = o.stageDefaultSetup(ctx, projectRoot, req.Template)
	}
	if err != nil {
		return nil, err
	}

	o.stageSummary(outcome)
	return outcome, nil
}

func (o *Orchestrator) stagePreflight(ctx context.Context) error {
	if o.Preflight == nil {
		output.Debug("preflight skipped")
		return nil
	}
	return o.Preflight(ctx)
}

// stageName asks until the answer passes validation.
func (o *Orchestrator) stageName(ctx context.Context) (project.Request, error) {
	for {
		if err := ctx.Err(); err != nil {
			return project.Request{}, err
		}

		raw, err := o.Prompter.Input(PromptName, func(s string) error {
			_, err := project.Validate(s)
			return err
		})
		if err != nil {
			return project.Request{}, err
		}

		name, err := project.Validate(raw)
		if err == nil {
			return project.Request{RawName: raw, Name: name}, nil
		}
		if !errors.Is(err, oerrors.ErrValidation) {
			return project.Request{}, err
		}

		var detail *oerrors.DetailError
		if errors.As(err, &detail) {
			output.Warn(detail.Message)
			output.Warn(detail.Hint)
		} else {
			output.Warn(err.Error())
		}
	}
}

func (o *Orchestrator) stageTarget(name string) string {
	target := filepath.Join(o.BaseDir, name)
	output.Debug("resolved target directory", "path", target)
	return target
}

func (o *Orchestrator) stageTemplate() (project.Template, error) {
	answer, err := o.Prompter.Select(PromptTemplate, project.ValidTemplates(), string(project.DefaultTemplate))
	if err != nil {
		return "", err
	}
	return project.ParseTemplate(answer)
}

func (o *Orchestrator) stageSetup() (project.Styling, error) {
	answer, err := o.Prompter.Select(PromptSetup, project.ValidStylings(), string(project.StylingNone))
	if err != nil {
		return "", err
	}
	return project.ParseStyling(answer)
}

// stageDefaultSetup installs dependencies and resets the entry component
// to the plain placeholder.
func (o *Orchestrator) stageDefaultSetup(ctx context.Context, projectRoot string, tmpl project.Template) ([]styling.Change, error) {
	if err := o.Invoker.InstallDependencies(ctx, projectRoot); err != nil {
		return nil, err
	}

	entry, err := templates.Render(tmpl, false)
	if err != nil {
		return nil, err
	}

	output.ProjectLogger(filepath.Base(projectRoot)).Info(fmt.Sprintf("Resetting %s...", filepath.Base(entry.Path)))
	if err := workspace.WriteFile(projectRoot, entry); err != nil {
		return nil, err
	}

	return []styling.Change{{Path: entry.Path, Kind: styling.ChangeWritten}}, nil
}

func (o *Orchestrator) stageSummary(outcome *Outcome) {
	w := o.Out
	if w == nil {
		w = os.Stdout
	}

	var sb strings.Builder
	sb.WriteString(output.FormatCheckmark(output.StyleSummary.Render("Setup complete!")) + "\n")

	if len(outcome.Changes) > 0 {
		files := make(map[string]string, len(outcome.Changes))
		for _, c := range outcome.Changes {
			files[c.Path] = string(c.Kind)
		}
		sb.WriteString("\n" + output.RenderFileTree(outcome.Request.Name, files))
	}

	sb.WriteString("\nNext steps:\n")
	sb.WriteString("  " + output.FormatCommand("cd "+outcome.Request.Name) + "\n")
	sb.WriteString("  " + output.FormatCommand(o.Tools.DevCommand()) + "\n")

	fmt.Fprint(w, sb.String())
}
