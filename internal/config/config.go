// Package config provides configuration loading and management.
package config

import (
	"github.com/reactfaststart/cli/internal/toolchain"
	"github.com/reactfaststart/cli/internal/version"
)

// TailwindConfig contains settings for the Tailwind CSS setup path.
type TailwindConfig struct {
	// Package is the framework package specifier installed as a dev dependency.
	// Env: FASTSTART_TAILWIND_PACKAGE, Default: "tailwindcss@3"
	Package string `mapstructure:"package" yaml:"package,omitempty" json:"package,omitempty"`
}

// PreflightConfig contains settings for the runtime check.
type PreflightConfig struct {
	// Node is the semver constraint the node binary must satisfy.
	// Env: FASTSTART_PREFLIGHT_NODE, Default: ">=17"
	Node string `mapstructure:"node" yaml:"node,omitempty" json:"node,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" yaml:"timestamps,omitempty" json:"timestamps,omitempty"`
}

// Config represents the faststart configuration.
// Loaded from ~/.faststart/config.yaml, validated against an embedded JSON schema.
type Config struct {
	// PackageManager drives the generator, installs, and package execution.
	// Env: FASTSTART_PACKAGE_MANAGER, Default: "npm"
	PackageManager string `mapstructure:"packageManager" yaml:"packageManager,omitempty" json:"packageManager,omitempty"`

	// Generator is the project generator package.
	// Env: FASTSTART_GENERATOR, Default: "create-vite@latest"
	Generator string `mapstructure:"generator" yaml:"generator,omitempty" json:"generator,omitempty"`

	Tailwind  TailwindConfig  `mapstructure:"tailwind" yaml:"tailwind,omitempty" json:"tailwind,omitempty"`
	Preflight PreflightConfig `mapstructure:"preflight" yaml:"preflight,omitempty" json:"preflight,omitempty"`
	Log       LogConfig       `mapstructure:"log" yaml:"log,omitempty" json:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `faststart config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		PackageManager: string(toolchain.DefaultPackageManager),
		Generator:      toolchain.DefaultGenerator,
		Tailwind: TailwindConfig{
			Package: toolchain.DefaultTailwindPackage,
		},
		Preflight: PreflightConfig{
			Node: version.DefaultNodeConstraint,
		},
	}
}
