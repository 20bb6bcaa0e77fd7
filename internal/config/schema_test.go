package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSchemaJSON(t *testing.T) {
	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(GetSchemaJSON()), &schema))

	assert.Equal(t, "proxylists Configuration", schema["title"])
	props, ok := schema["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"storage_root", "confirmations", "cat_selector", "log_level"} {
		assert.Contains(t, props, key)
	}
}

func TestValidateWithSchema_ValidYAML(t *testing.T) {
	content := []byte(`
storage_root: '{{ .HOME }}/lists'
confirmations: true
cat_selector: false
log_level: info
`)

	result, err := ValidateWithSchema("config.yml", content)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Errors)
}

func TestValidateWithSchema_InvalidLogLevel(t *testing.T) {
	result, err := ValidateWithSchema("config.yml", []byte("log_level: verbose\n"))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "log_level", result.Errors[0].Field)
}

func TestValidateWithSchema_EmptyStorageRoot(t *testing.T) {
	result, err := ValidateWithSchema("config.json", []byte(`{"storage_root": ""}`))
	require.NoError(t, err)
	assert.False(t, result.Valid)
}

func TestValidateWithSchema_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		format  string
	}{
		{"yaml", "config.yml", "confirmations: [unclosed", "YAML"},
		{"json", "config.json", "{not json", "JSON"},
		{"toml", "config.toml", "confirmations = = true", "TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ValidateWithSchema(tt.path, []byte(tt.content))
			require.NoError(t, err)
			assert.False(t, result.Valid)
			require.Len(t, result.Errors, 1)
			assert.Equal(t, "syntax", result.Errors[0].Field)
			assert.Contains(t, result.Errors[0].Message, tt.format)
			assert.Contains(t, result.Error(), "syntax")
		})
	}
}

func TestValidateWithSchema_UnsupportedFormat(t *testing.T) {
	_, err := ValidateWithSchema("config.ini", []byte(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}
