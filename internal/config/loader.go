package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"

	oerrors "github.com/reactfaststart/cli/internal/errors"
)

// Environment variable prefix for faststart configuration.
const envPrefix = "FASTSTART"

// Environment variables read directly rather than through a config key.
const (
	EnvConfig = envPrefix + "_CONFIG"
)

// setting binds one config key to its environment variable.
type setting struct {
	key string
	env string
}

var settings = []setting{
	{"packageManager", envPrefix + "_PACKAGE_MANAGER"},
	{"generator", envPrefix + "_GENERATOR"},
	{"tailwind.package", envPrefix + "_TAILWIND_PACKAGE"},
	{"preflight.node", envPrefix + "_PREFLIGHT_NODE"},
	{"log.timestamps", envPrefix + "_LOG_TIMESTAMPS"},
}

// Loaded is a configuration read from a file and the environment, before
// flags and defaults are applied.
type Loaded struct {
	// Config holds file values with environment overrides applied.
	Config *Config

	// Path is the config file that was consulted.
	Path string

	// Found reports whether Path existed.
	Found bool

	// Sources maps each config key that has a value to where it came from.
	Sources map[string]ConfigSource
}

// Source returns where key's value came from, or "" when it is unset.
func (l *Loaded) Source(key string) ConfigSource {
	if l == nil {
		return ""
	}
	return l.Sources[key]
}

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, s := range settings {
		_ = v.BindEnv(s.key, s.env)
	}

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error. Environment variables take precedence
// over file values.
func (l *Loader) Load(configFile string) (*Loaded, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	found := true
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, &oerrors.DetailError{
				Type:     "config error",
				Message:  "reading config file",
				Location: expandedPath,
				Hint:     "Run 'faststart config vet' for details",
				Cause:    errors.Join(oerrors.ErrValidation, err),
			}
		}
		found = false
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, &oerrors.DetailError{
			Type:     "config error",
			Message:  "decoding config values",
			Location: expandedPath,
			Cause:    errors.Join(oerrors.ErrValidation, err),
		}
	}

	loaded := &Loaded{
		Config:  &cfg,
		Path:    expandedPath,
		Found:   found,
		Sources: make(map[string]ConfigSource),
	}
	for _, s := range settings {
		switch {
		case os.Getenv(s.env) != "":
			loaded.Sources[s.key] = SourceEnv
		case found && l.v.InConfig(s.key):
			loaded.Sources[s.key] = SourceConfig
		}
	}

	return loaded, nil
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	_, err = os.Stat(expandedPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
