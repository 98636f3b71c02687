package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/reactfaststart/cli/internal/config"
)

// isolate points HOME and the config path at a temp dir so no test reads
// the developer's real configuration.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfig, "")
	for _, env := range []string{
		"FASTSTART_PACKAGE_MANAGER",
		"FASTSTART_GENERATOR",
		"FASTSTART_TAILWIND_PACKAGE",
		"FASTSTART_PREFLIGHT_NODE",
		"FASTSTART_LOG_TIMESTAMPS",
	} {
		t.Setenv(env, "")
	}
	t.Cleanup(func() { resolvedConfig = nil })
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func findCommand(t *testing.T, root *cobra.Command, args ...string) *cobra.Command {
	t.Helper()
	cmd, _, err := root.Find(args)
	require.NoError(t, err)
	return cmd
}
