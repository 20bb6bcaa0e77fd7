package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand_Plain(t *testing.T) {
	s := Defaults()

	result, err := s.Expand("/srv/proxylists")
	require.NoError(t, err)
	assert.Equal(t, "/srv/proxylists", result)
}

func TestExpand_Empty(t *testing.T) {
	result, err := Defaults().Expand("")
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestExpand_Tilde(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	result, err := Defaults().Expand("~/lists")
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/lists", result)
}

func TestExpand_Variables(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("XDG_CONFIG_HOME", "/home/tester/.cfg")

	s := Defaults()
	s.Path = "/etc/proxylists/config.yml"

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"home", "{{.HOME}}/proxylists", "/home/tester/proxylists"},
		{"xdg", "{{.XDG_CONFIG_HOME}}/lists", "/home/tester/.cfg/lists"},
		{"config dir", "{{.CONFIG_DIR}}/lists", "/etc/proxylists/lists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Expand(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpand_WithSprigFunctions(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("PROXYLISTS_TEST_DIR", "/data")

	s := Defaults()

	tests := []struct {
		name     string
		template string
		expected string
	}{
		{"env function", `{{ env "PROXYLISTS_TEST_DIR" }}/lists`, "/data/lists"},
		{"default function", `{{ env "PROXYLISTS_UNSET_VAR" | default "/fallback" }}`, "/fallback"},
		{"base function", "{{ .HOME | base }}", "tester"},
		{"lower function", `{{ "LISTS" | lower }}`, "lists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := s.Expand(tt.template)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExpand_InvalidTemplate(t *testing.T) {
	_, err := Defaults().Expand("{{ .HOME ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid template")
}

func TestExpand_ExecutionError(t *testing.T) {
	_, err := Defaults().Expand("{{ .NOPE }}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to expand template")
}

func TestResolveStorageRoot(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	s := Defaults()
	root, err := s.ResolveStorageRoot()
	require.NoError(t, err)
	assert.Empty(t, root)

	s.StorageRoot = "{{ .HOME }}/lists"
	root, err = s.ResolveStorageRoot()
	require.NoError(t, err)
	assert.Equal(t, "/home/tester/lists", root)
}
