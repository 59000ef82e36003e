// Package config loads an optional per-directory akbarlang.yaml project
// file that pins CLI defaults (§10.6).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
)

// Config holds the subset of CLI flags that a project file may default.
// A zero Config means "no overrides"; absence of the file is not an error.
type Config struct {
	CC        string   `yaml:"cc"`
	CCArgs    []string `yaml:"cc_args"`
	OutputDir string   `yaml:"output_dir"`
}

const FileName = "akbarlang.yaml"

// Load reads FileName from dir. It returns a zero Config, not an error,
// when the file does not exist.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveCC returns the C++ compiler to invoke: an explicit flag value
// wins, then the config file's cc, then the built-in default "g++".
func (c Config) ResolveCC(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c.CC != "" {
		return c.CC
	}
	return "g++"
}

// ResolveOutputDir returns the directory to write generated C++ into: an
// explicit flag value wins, then the config file's output_dir, then "" to
// mean "next to the input file".
func (c Config) ResolveOutputDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return c.OutputDir
}

// ResolveCCArgs returns the extra flags to pass to the C++ compiler: an
// explicit --cc-args flag value wins, then the config file's cc_args.
func (c Config) ResolveCCArgs(flagValue string) []string {
	if flagValue != "" {
		return strings.Fields(flagValue)
	}
	return c.CCArgs
}
