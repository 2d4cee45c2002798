package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Healthire/wasm-bin/internal/tools"
)

// Config captures the toolchain and bundling configuration. Tool names are
// configurable so tests and unusual environments can substitute executables;
// they are still fixed names, never shell expressions.
type Config struct {
	Version int          `yaml:"version"`
	Tools   ToolsConfig  `yaml:"tools"`
	Bundle  BundleConfig `yaml:"bundle"`
}

// ToolsConfig names the external executables the pipeline drives.
type ToolsConfig struct {
	PackageManager string `yaml:"package_manager"`
	Bundler        string `yaml:"bundler"`
	BundlerCLI     string `yaml:"bundler_cli"`
}

// BundleConfig controls bundler invocation.
type BundleConfig struct {
	Mode string `yaml:"mode"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Version: 1,
		Tools: ToolsConfig{
			PackageManager: "yarn",
			Bundler:        "webpack",
			BundlerCLI:     "webpack-cli",
		},
		Bundle: BundleConfig{
			Mode: "development",
		},
	}
}

// Load reads the YAML configuration from disk if it exists, otherwise returns
// the default configuration.
func Load(path string) (Config, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg := Default()
			cfg.ApplyDefaults()
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults ensures fields fall back to sensible defaults when the YAML
// omits them.
func (c *Config) ApplyDefaults() {
	defaults := Default()

	if c.Version == 0 {
		c.Version = defaults.Version
	}
	if c.Tools.PackageManager == "" {
		c.Tools.PackageManager = defaults.Tools.PackageManager
	}
	if c.Tools.Bundler == "" {
		c.Tools.Bundler = defaults.Tools.Bundler
	}
	if c.Tools.BundlerCLI == "" {
		c.Tools.BundlerCLI = defaults.Tools.BundlerCLI
	}
	if c.Bundle.Mode == "" {
		c.Bundle.Mode = defaults.Bundle.Mode
	}
}

// Toolchain maps the configuration onto tool definitions.
func (c Config) Toolchain() tools.Toolchain {
	return tools.Toolchain{
		PackageManager: tools.Definition{Name: c.Tools.PackageManager, VersionSwitch: "-v"},
		Bundler:        tools.Definition{Name: c.Tools.Bundler, VersionSwitch: "-v"},
		BundlerCLI:     c.Tools.BundlerCLI,
	}
}
