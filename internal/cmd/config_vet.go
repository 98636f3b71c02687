package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/reactfaststart/cli/internal/config"
	oerrors "github.com/reactfaststart/cli/internal/errors"
	"github.com/reactfaststart/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the faststart configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Config matches the configuration schema
  4. preflight.node is a valid semver constraint

The config path is resolved using precedence:
  --config flag > FASTSTART_CONFIG env > ~/.faststart/config.yaml

Examples:
  # Validate default configuration
  faststart config vet

  # Validate custom config path
  faststart config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: GetConfigPath(),
	})
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}

	configPath, err := config.ExpandPath(pathResult.ConfigPath)
	if err != nil {
		return err
	}

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'faststart config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	if err := config.ValidateFile(configPath); err != nil {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Cause:    err,
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid: "+configPath)
	return nil
}
