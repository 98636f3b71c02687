package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reactfaststart/cli/internal/config"
	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/interaction"
	"github.com/reactfaststart/cli/internal/orchestrator"
	"github.com/reactfaststart/cli/internal/output"
	"github.com/reactfaststart/cli/internal/runner"
	"github.com/reactfaststart/cli/internal/version"
)

// Seams for tests.
var (
	newPrompter = func(cmd *cobra.Command) interaction.Prompter {
		return interaction.New(os.Stdin, os.Stdout)
	}
	newRunner = func() runner.Runner {
		return runner.NewExecRunner()
	}
	checkNode = version.CheckNode
)

func runScaffold(cmd *cobra.Command, _ []string) error {
	orch, err := newOrchestrator(cmd)
	if err != nil {
		return reportError(cmd, err)
	}

	_, err = orch.Run(cmd.Context())
	if errors.Is(err, oerrors.ErrCancelled) {
		output.Debug("run cancelled", "reason", err)
		fmt.Fprintln(cmd.OutOrStdout(), "Operation cancelled.")
		return nil
	}
	if err != nil {
		return reportError(cmd, err)
	}
	return nil
}

func newOrchestrator(cmd *cobra.Command) (*orchestrator.Orchestrator, error) {
	resolved := GetResolvedConfig()
	if resolved == nil {
		var err error
		resolved, err = config.ResolveAll(config.ResolveAllOptions{})
		if err != nil {
			return nil, err
		}
	}

	tools, err := resolved.Toolset()
	if err != nil {
		return nil, err
	}

	baseDir, err := resolveBaseDir(dirFlag)
	if err != nil {
		return nil, err
	}

	orch := orchestrator.New(newPrompter(cmd), newRunner(), tools, baseDir)
	orch.Out = cmd.OutOrStdout()

	if !skipPreflightFlag {
		constraint := resolved.NodeConstraint.Value
		orch.Preflight = func(ctx context.Context) error {
			return output.RunWithSpinner(ctx, func() error {
				return checkNode(ctx, constraint)
			}, output.WithTitle("Checking Node.js version..."))
		}
	}

	return orch, nil
}

// resolveBaseDir returns the absolute parent directory for the project.
// An empty dir means the current working directory.
func resolveBaseDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", oerrors.WrapFS(err, "getwd", ".")
		}
		return wd, nil
	}

	expanded, err := config.ExpandPath(dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", oerrors.WrapFS(err, "resolve", dir)
	}

	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &oerrors.DetailError{
				Type:     "not found",
				Message:  "target directory does not exist",
				Location: abs,
				Hint:     "Create it first or pass an existing directory to --dir",
				Cause:    oerrors.ErrNotFound,
			}
		}
		return "", oerrors.WrapFS(err, "stat", abs)
	}
	if !info.IsDir() {
		return "", oerrors.NewValidationError("target is not a directory", abs, "dir", "")
	}
	return abs, nil
}

// reportError prints the single top-level failure line and marks the
// error as printed.
func reportError(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), output.StyleError.Render("An error occurred: "+err.Error()))
	return &oerrors.ExitError{
		Code:    oerrors.ExitCodeFromError(err),
		Err:     err,
		Printed: true,
	}
}
