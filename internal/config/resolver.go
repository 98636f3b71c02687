package config

import (
	"os"

	"github.com/reactfaststart/cli/internal/output"
	"github.com/reactfaststart/cli/internal/toolchain"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedField is one configuration value and its origin.
type ResolvedField struct {
	// Key is the config file key, e.g. "tailwind.package".
	Key string
	// Value is the resolved value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolvedConfig holds every configuration value after applying
// precedence: flag > env > config > default.
type ResolvedConfig struct {
	ConfigPath      ResolvedField
	PackageManager  ResolvedField
	Generator       ResolvedField
	TailwindPackage ResolvedField
	NodeConstraint  ResolvedField

	// Timestamps is nil unless the config file or environment sets it.
	// The --timestamps flag is applied by the command layer.
	Timestamps *bool
}

// Fields returns the string-valued fields in display order.
func (r *ResolvedConfig) Fields() []ResolvedField {
	return []ResolvedField{
		r.ConfigPath,
		r.PackageManager,
		r.Generator,
		r.TailwindPackage,
		r.NodeConstraint,
	}
}

// Toolset builds the command toolset for the resolved values.
func (r *ResolvedConfig) Toolset() (toolchain.Toolset, error) {
	pm, err := toolchain.ParsePackageManager(r.PackageManager.Value)
	if err != nil {
		return toolchain.Toolset{}, err
	}

	tools := toolchain.New(pm)
	tools.Generator = r.Generator.Value
	tools.TailwindPackage = r.TailwindPackage.Value
	return tools, nil
}

// ResolveAllOptions contains inputs for ResolveAll.
type ResolveAllOptions struct {
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string
	// PackageManagerFlag is the --package-manager flag value (empty if not set).
	PackageManagerFlag string
	// Loaded is the file and environment configuration; nil means none.
	Loaded *Loaded
}

// ResolveAll resolves every configuration value.
func ResolveAll(opts ResolveAllOptions) (*ResolvedConfig, error) {
	pathResult, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}

	loaded := opts.Loaded
	cfg := &Config{}
	if loaded != nil && loaded.Config != nil {
		cfg = loaded.Config
	}
	defaults := DefaultConfig()

	return &ResolvedConfig{
		ConfigPath: ResolvedField{
			Key:      "config",
			Value:    pathResult.ConfigPath,
			Source:   pathResult.Source,
			Shadowed: pathResult.Shadowed,
		},
		PackageManager: resolveField("packageManager", opts.PackageManagerFlag,
			cfg.PackageManager, loaded.Source("packageManager"), defaults.PackageManager),
		Generator: resolveField("generator", "",
			cfg.Generator, loaded.Source("generator"), defaults.Generator),
		TailwindPackage: resolveField("tailwind.package", "",
			cfg.Tailwind.Package, loaded.Source("tailwind.package"), defaults.Tailwind.Package),
		NodeConstraint: resolveField("preflight.node", "",
			cfg.Preflight.Node, loaded.Source("preflight.node"), defaults.Preflight.Node),
		Timestamps: cfg.Log.Timestamps,
	}, nil
}

// resolveField applies flag > loaded (env or config) > default.
func resolveField(key, flag, loadedValue string, loadedSource ConfigSource, def string) ResolvedField {
	result := ResolvedField{
		Key:      key,
		Shadowed: make(map[ConfigSource]string),
	}

	if loadedValue != "" && loadedSource == "" {
		loadedSource = SourceConfig
	}

	switch {
	case flag != "":
		result.Value = flag
		result.Source = SourceFlag
		if loadedValue != "" {
			result.Shadowed[loadedSource] = loadedValue
		}
	case loadedValue != "":
		result.Value = loadedValue
		result.Source = loadedSource
	default:
		result.Value = def
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) FASTSTART_CONFIG env, (3) ~/.faststart/config.yaml
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(r *ResolvedConfig) {
	for _, v := range r.Fields() {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
