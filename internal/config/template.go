package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/NikitaCOEUR/proxylists/internal/derrors"
)

// templateData is the data available to storage_root templates
type templateData struct {
	HOME            string
	XDG_CONFIG_HOME string //nolint:revive // matches the environment variable name
	CONFIG_DIR      string //nolint:revive // matches the documented template variable
}

// Expand renders value as a Go template with the sprig function map.
// A leading "~/" is replaced by the home directory afterwards.
func (s *Settings) Expand(value string) (string, error) {
	if value == "" {
		return "", nil
	}

	data := templateData{
		HOME:            os.Getenv("HOME"),
		XDG_CONFIG_HOME: os.Getenv("XDG_CONFIG_HOME"),
	}
	if s.Path != "" {
		data.CONFIG_DIR = filepath.Dir(s.Path)
	}

	out := value
	if strings.Contains(value, "{{") {
		tmpl, err := template.New("setting").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(value)
		if err != nil {
			return "", derrors.NewConfigurationError(s.Path, "invalid template "+value, err)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", derrors.NewConfigurationError(s.Path, "failed to expand template "+value, err)
		}
		out = buf.String()
	}

	if out == "~" || strings.HasPrefix(out, "~/") {
		out = data.HOME + out[1:]
	}

	return out, nil
}

// ResolveStorageRoot returns the expanded storage root, or an empty
// string when none is configured
func (s *Settings) ResolveStorageRoot() (string, error) {
	return s.Expand(s.StorageRoot)
}
