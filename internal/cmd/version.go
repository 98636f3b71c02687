package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/reactfaststart/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show faststart version information.

Displays:
  - faststart version, commit, and build date
  - the Node.js binary found on PATH and whether it meets the configured minimum`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	constraint := version.DefaultNodeConstraint
	if resolved := GetResolvedConfig(); resolved != nil {
		constraint = resolved.NodeConstraint.Value
	}

	node, err := version.DetectNode(cmd.Context(), constraint)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), version.FullVersionString(info, node))
	return nil
}
