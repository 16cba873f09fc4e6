// SPDX-License-Identifier: MPL-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/torwald-sergesson/runtests/internal/issue"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "runtests"
	// ConfigFileName is the name of the config file (without extension).
	ConfigFileName = "config"
	// ConfigFileExt is the config file extension.
	ConfigFileExt = "toml"
	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. RUNTESTS_ENVS_ROOT, RUNTESTS_TOOLS_LINT).
	EnvPrefix = "RUNTESTS"
)

// configDirOverride allows tests to redirect config lookup.
var configDirOverride = ""

// SetConfigDirOverride redirects config directory lookup. Pass "" to reset.
// Intended for tests.
func SetConfigDirOverride(dir string) { configDirOverride = dir }

// ConfigDir returns the runtests configuration directory using
// platform-specific conventions: Windows uses %APPDATA%, macOS uses
// ~/Library/Application Support, and Linux/others use $XDG_CONFIG_HOME
// (defaulting to ~/.config).
//
//nolint:revive // ConfigDir is more descriptive than Dir for external callers
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}

	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, "Library", "Application Support")
	default: // Linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("failed to get home directory: %w", err)
			}
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, AppName), nil
}

// LoadOptions defines explicit configuration loading inputs.
type LoadOptions struct {
	// ConfigFilePath forces loading from a specific config file when set.
	ConfigFilePath string
}

// Load resolves configuration from defaults, the config file (if present),
// and RUNTESTS_* environment variables.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("envs_root", defaults.EnvsRoot)
	v.SetDefault("coverage", defaults.Coverage)
	v.SetDefault("tools.unit", defaults.Tools.Unit)
	v.SetDefault("tools.integration", defaults.Tools.Integration)
	v.SetDefault("tools.style", defaults.Tools.Style)
	v.SetDefault("tools.lint", defaults.Tools.Lint)
	v.SetDefault("tools.convention", defaults.Tools.Convention)
	v.SetDefault("tools.stats", defaults.Tools.Stats)
	v.SetDefault("tools.python", defaults.Tools.Python)
	v.SetDefault("targets.unit", defaults.Targets.Unit)
	v.SetDefault("targets.integration", defaults.Targets.Integration)
	v.SetDefault("targets.style", defaults.Targets.Style)
	v.SetDefault("targets.lint", defaults.Targets.Lint)
	v.SetDefault("targets.stats", defaults.Targets.Stats)
	v.SetDefault("targets.cover_package", defaults.Targets.CoverPackage)
	v.SetDefault("provision.tool", defaults.Provision.Tool)
	v.SetDefault("provision.requirements", defaults.Provision.Requirements)
	v.SetDefault("ui.verbose", defaults.UI.Verbose)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		if !fileExists(opts.ConfigFilePath) {
			return nil, issue.NewErrorContext().
				WithOperation("load configuration").
				WithResource(opts.ConfigFilePath).
				WithSuggestion("Verify the file path is correct").
				WithSuggestion("Check that the file exists and is readable").
				Wrap(fmt.Errorf("config file not found: %s", opts.ConfigFilePath)).
				BuildError()
		}
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, wrapReadError(err, opts.ConfigFilePath)
		}
	} else {
		cfgDir, err := ConfigDir()
		if err != nil {
			return nil, err
		}
		cfgPath := filepath.Join(cfgDir, ConfigFileName+"."+ConfigFileExt)
		if fileExists(cfgPath) {
			v.SetConfigFile(cfgPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, wrapReadError(err, cfgPath)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, issue.WrapWithOperation(err, "decode configuration")
	}

	return cfg, nil
}

func wrapReadError(err error, path string) error {
	return issue.NewErrorContext().
		WithOperation("load configuration").
		WithResource(path).
		WithSuggestion("Check that the file contains valid TOML syntax").
		WithSuggestion("Remove the file to fall back to built-in defaults").
		Wrap(err).
		BuildError()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
