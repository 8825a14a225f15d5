// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is embedded with //go:embed; values missing from it fall
// back to the hard defaults below.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:     "skeleton",
			DisplayName: "phpBB Skeleton Extension",
			Description: "Generates installable phpBB extension skeletons",
			HomeDir:     ".skeleton",
			EnvPrefix:   "SKELETON",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "skeleton").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".skeleton").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SKELETON").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// EnvVar returns the env var overriding a config key, e.g.,
// EnvVar("defaults.php_version") → "SKELETON_DEFAULTS_PHP_VERSION".
func EnvVar(key string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}
