package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema of the settings file
func GetSchemaJSON() string {
	return schemaJSON
}

// ValidationError is one schema violation
type ValidationError struct {
	Field   string
	Message string
}

// ValidationResult contains the results of settings validation
type ValidationResult struct {
	Valid  bool
	Errors []ValidationError
}

// Error joins every violation so a result can be used as an error cause
func (r *ValidationResult) Error() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}
	return strings.Join(msgs, "; ")
}

// ValidateWithSchema validates settings content against the JSON Schema.
// Syntax errors are reported in the result, not returned.
func ValidateWithSchema(path string, content []byte) (*ValidationResult, error) {
	result := &ValidationResult{
		Valid:  true,
		Errors: []ValidationError{},
	}

	var data interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return invalidSyntax(result, "YAML", err), nil
		}
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			return invalidSyntax(result, "JSON", err), nil
		}
	case ".toml":
		m, err := koanftoml.Parser().Unmarshal(content)
		if err != nil {
			return invalidSyntax(result, "TOML", err), nil
		}
		data = m
	default:
		return nil, fmt.Errorf("unsupported file format")
	}

	// An empty YAML document decodes to nil
	if data == nil {
		data = map[string]interface{}{}
	}

	schemaLoader := gojsonschema.NewStringLoader(GetSchemaJSON())
	documentLoader := gojsonschema.NewGoLoader(data)

	validationResult, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation error: %w", err)
	}

	if !validationResult.Valid() {
		result.Valid = false
		for _, err := range validationResult.Errors() {
			result.Errors = append(result.Errors, ValidationError{
				Field:   err.Field(),
				Message: err.Description(),
			})
		}
	}

	return result, nil
}

func invalidSyntax(result *ValidationResult, format string, err error) *ValidationResult {
	result.Valid = false
	result.Errors = append(result.Errors, ValidationError{
		Field:   "syntax",
		Message: fmt.Sprintf("Invalid %s syntax: %v", format, err),
	})
	return result
}
