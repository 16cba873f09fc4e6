// SPDX-License-Identifier: MPL-2.0

package config

import (
	"os"
	"path/filepath"
)

type (
	// Config is the root configuration for runtests.
	Config struct {
		// EnvsRoot is the directory that holds the isolated environments,
		// one subdirectory per environment identifier.
		EnvsRoot string `mapstructure:"envs_root"`
		// Coverage enables coverage reporting for the unit check.
		// The --no-coverage flag overrides it per invocation.
		Coverage bool `mapstructure:"coverage"`

		Tools     ToolsConfig     `mapstructure:"tools"`
		Targets   TargetsConfig   `mapstructure:"targets"`
		Provision ProvisionConfig `mapstructure:"provision"`
		UI        UIConfig        `mapstructure:"ui"`
	}

	// ToolsConfig names the external executables each check shells out to.
	ToolsConfig struct {
		Unit        string `mapstructure:"unit"`
		Integration string `mapstructure:"integration"`
		Style       string `mapstructure:"style"`
		Lint        string `mapstructure:"lint"`
		Convention  string `mapstructure:"convention"`
		Stats       string `mapstructure:"stats"`
		// Python is the interpreter binary used by '--switch' to report
		// the identity of the active environment.
		Python string `mapstructure:"python"`
	}

	// TargetsConfig holds the default target each check runs against when
	// no free-form argument is given on the command line.
	TargetsConfig struct {
		Unit        string `mapstructure:"unit"`
		Integration string `mapstructure:"integration"`
		Style       string `mapstructure:"style"`
		Lint        string `mapstructure:"lint"`
		Stats       string `mapstructure:"stats"`
		// CoverPackage is the package measured when coverage is enabled.
		CoverPackage string `mapstructure:"cover_package"`
	}

	// ProvisionConfig controls how '--install' creates environments.
	ProvisionConfig struct {
		// Tool is the environment creation executable (virtualenv-compatible:
		// it is invoked as 'tool --python <interpreter> <dir>').
		Tool string `mapstructure:"tool"`
		// Requirements lists requirements files installed into a fresh
		// environment. Missing files are skipped.
		Requirements []string `mapstructure:"requirements"`
	}

	// UIConfig holds terminal output settings.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose"`
	}
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		EnvsRoot: defaultEnvsRoot(),
		Coverage: true,
		Tools: ToolsConfig{
			Unit:        "pytest",
			Integration: "pytest",
			Style:       "pycodestyle",
			Lint:        "pylint",
			Convention:  "gitlint",
			Stats:       "radon",
			Python:      "python",
		},
		Targets: TargetsConfig{
			Unit:         "tests",
			Integration:  "qa",
			Style:        ".",
			Lint:         ".",
			Stats:        ".",
			CoverPackage: ".",
		},
		Provision: ProvisionConfig{
			Tool:         "virtualenv",
			Requirements: []string{"requirements.txt", "test-requirements.txt"},
		},
		UI: UIConfig{Verbose: false},
	}
}

// defaultEnvsRoot is ~/.runtests/envs, falling back to a relative path
// when the home directory cannot be determined.
func defaultEnvsRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".runtests", "envs")
	}
	return filepath.Join(home, ".runtests", "envs")
}
