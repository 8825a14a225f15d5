package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bipolarmorgan/phpbb-ext-skeleton/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Config keys.
const (
	KeyStagingDir       = "staging_dir"
	KeyTemplatesDir     = "templates_dir"
	KeyCatalogFile      = "catalog_file"
	KeyLanguage         = "language"
	KeyPHPVersion       = "defaults.php_version"
	KeyPHPBBVersionMin  = "defaults.phpbb_version_min"
	KeyPHPBBVersionMax  = "defaults.phpbb_version_max"
	KeyExtensionVersion = "defaults.extension_version"
)

// Keys lists every config key in display order.
var Keys = []string{
	KeyStagingDir,
	KeyTemplatesDir,
	KeyCatalogFile,
	KeyLanguage,
	KeyPHPVersion,
	KeyPHPBBVersionMin,
	KeyPHPBBVersionMax,
	KeyExtensionVersion,
}

// Defaults holds the values pre-filled by the input dialog.
type Defaults struct {
	PHPVersion       string
	PHPBBVersionMin  string
	PHPBBVersionMax  string
	ExtensionVersion string
}

// Dir returns the path to the config directory (~/.skeleton/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.skeleton/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

func setDefaults() {
	viper.SetDefault(KeyStagingDir, "")
	viper.SetDefault(KeyTemplatesDir, "")
	viper.SetDefault(KeyCatalogFile, "")
	viper.SetDefault(KeyLanguage, "en")
	viper.SetDefault(KeyPHPVersion, ">=5.3.3")
	viper.SetDefault(KeyPHPBBVersionMin, ">=3.1.4")
	viper.SetDefault(KeyPHPBBVersionMax, "<3.2.0@dev")
	viper.SetDefault(KeyExtensionVersion, "1.0.0-dev")
}

// Load initializes Viper to read from the config file and environment.
// An empty path selects the default config file. A missing default file is
// not an error; a missing explicit file is. Each call starts from a clean
// state.
func Load(path string) error {
	viper.Reset()
	setDefaults()

	explicit := path != ""
	if !explicit {
		path = FilePath()
	}

	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !explicit && (errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// StagingDir returns the configured staging root, or "" for a per-request
// temporary directory.
func StagingDir() string { return viper.GetString(KeyStagingDir) }

// TemplatesDir returns the directory overriding the embedded templates, if any.
func TemplatesDir() string { return viper.GetString(KeyTemplatesDir) }

// CatalogFile returns the YAML file replacing the embedded catalog, if any.
func CatalogFile() string { return viper.GetString(KeyCatalogFile) }

// Language returns the BCP 47 tag used for validation messages.
func Language() string { return viper.GetString(KeyLanguage) }

// DialogDefaults returns the defaults offered by the input dialog.
func DialogDefaults() Defaults {
	return Defaults{
		PHPVersion:       viper.GetString(KeyPHPVersion),
		PHPBBVersionMin:  viper.GetString(KeyPHPBBVersionMin),
		PHPBBVersionMax:  viper.GetString(KeyPHPBBVersionMax),
		ExtensionVersion: viper.GetString(KeyExtensionVersion),
	}
}
