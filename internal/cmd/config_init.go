package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/reactfaststart/cli/internal/config"
	oerrors "github.com/reactfaststart/cli/internal/errors"
)

const configHeader = `# faststart configuration
# Values here are overridden by FASTSTART_* environment variables and flags.
`

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the faststart configuration.

Writes the default configuration to ~/.faststart/config.yaml, or to the
path given by --config or FASTSTART_CONFIG.

Examples:
  # Initialize configuration
  faststart config init

  # Overwrite existing configuration
  faststart config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return err
	}
	if configPath == "" {
		paths, err := config.DefaultPaths()
		if err != nil {
			return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
		}
		configPath = paths.ConfigFile
	}

	if _, err := os.Stat(configPath); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return oerrors.WrapFS(err, "stat", configPath)
	}

	data, err := yaml.Marshal(config.DefaultConfig())
	if err != nil {
		return fmt.Errorf("marshaling default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o700); err != nil {
		return oerrors.WrapFS(err, "create directory", filepath.Dir(configPath))
	}
	if err := os.WriteFile(configPath, append([]byte(configHeader), data...), 0o600); err != nil {
		return oerrors.WrapFS(err, "write", configPath)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration initialized at "+configPath)
	fmt.Fprintln(out, "Validate with: faststart config vet")

	return nil
}
