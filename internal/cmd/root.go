// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/reactfaststart/cli/internal/config"
	"github.com/reactfaststart/cli/internal/output"
)

var (
	// Global flags
	configFlag         string
	verboseFlag        bool
	timestampsFlag     bool
	packageManagerFlag string

	// Root flags
	dirFlag           string
	skipPreflightFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the faststart CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "faststart",
		Short: "Scaffold a React project with optional Tailwind CSS",
		Long: `faststart creates a new React project with Vite and optionally wires up
Tailwind CSS.

It asks for a project name, a template (react or react-ts) and a setup
(Default or Tailwind CSS), then runs the generator and package manager in
the chosen directory.

Examples:
  # Create a project in the current directory
  faststart

  # Create a project under ~/src using pnpm
  faststart --dir ~/src --package-manager pnpm`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runScaffold,
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: FASTSTART_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")
	rootCmd.PersistentFlags().StringVar(&packageManagerFlag, "package-manager", "", "Package manager: npm, pnpm, bun (env: FASTSTART_PACKAGE_MANAGER)")

	rootCmd.Flags().StringVarP(&dirFlag, "dir", "C", "", "Directory to create the project in (default: current directory)")
	rootCmd.Flags().BoolVar(&skipPreflightFlag, "skip-preflight", false, "Skip the Node.js version check")

	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{FlagValue: configFlag})
	if err != nil {
		return err
	}

	// A broken config file must not block `config vet`, which reports it.
	loaded, loadErr := config.NewLoader().Load(pathResult.ConfigPath)

	resolved, err := config.ResolveAll(config.ResolveAllOptions{
		ConfigFlag:         configFlag,
		PackageManagerFlag: packageManagerFlag,
		Loaded:             loaded,
	})
	if err != nil {
		return err
	}
	resolvedConfig = resolved

	// Resolve timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{Verbose: verboseFlag}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if resolved.Timestamps != nil {
		logCfg.Timestamps = resolved.Timestamps
	}
	output.SetupLogging(logCfg)

	if loadErr != nil {
		output.Warn("ignoring config file", "error", loadErr)
	}

	if verboseFlag {
		config.LogResolvedValues(resolved)
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.ResolvedConfig {
	return resolvedConfig
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath.Value
	}
	return configFlag
}
