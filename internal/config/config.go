// Package config handles loading of the proxylists settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/NikitaCOEUR/proxylists/internal/derrors"
)

const (
	// AppName names the settings directory under the XDG config home
	AppName = "proxylists"
	// DefaultFileName is the settings file looked up when none is given
	DefaultFileName = "config.yml"
)

// SupportedExtensions lists the settings formats, in order of preference
var SupportedExtensions = []string{".yml", ".yaml", ".toml", ".json"}

// Settings controls where lists live and which historical behaviors are on
type Settings struct {
	// StorageRoot is the directory holding list files. Empty means $HOME/proxylists.
	// Expanded as a template, see Expand.
	StorageRoot string `koanf:"storage_root"`
	// Confirmations echoes "Added ..." after add and allow
	Confirmations bool `koanf:"confirmations"`
	// CatSelector lets cat take a [pending|allowed] argument
	CatSelector bool `koanf:"cat_selector"`
	LogLevel    string `koanf:"log_level"`

	// Path is the file the settings were read from, empty for defaults
	Path string `koanf:"-"`
}

// Defaults returns the settings used when no file is present
func Defaults() *Settings {
	return &Settings{
		Confirmations: true,
		CatSelector:   true,
		LogLevel:      "warn",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/proxylists/config.yml,
// falling back to ~/.config when XDG_CONFIG_HOME is unset.
// It returns "" when neither XDG_CONFIG_HOME nor HOME is set.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName, DefaultFileName)
}

// Load reads settings from path on top of Defaults.
// A missing file is only an error when required is set.
func Load(path string, required bool) (*Settings, error) {
	settings := Defaults()
	if path == "" {
		return settings, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return settings, nil
		}
		return nil, derrors.NewConfigurationError(path, "failed to read config", err)
	}

	result, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to validate config", err)
	}
	if !result.Valid {
		return nil, derrors.NewConfigurationError(path, "invalid config", result)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	if err := k.Unmarshal("", settings); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	settings.Path = path

	return settings, nil
}

// parserFor picks a koanf parser from the file extension
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}
