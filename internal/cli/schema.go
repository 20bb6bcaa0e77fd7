package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/proxylists/internal/config"
	"github.com/NikitaCOEUR/proxylists/internal/derrors"
)

// Schema displays or exports the JSON Schema of the settings file
func Schema(out io.Writer, outputPath string) error {
	schemaJSON := config.GetSchemaJSON()

	// If output path is provided, write to file
	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(schemaJSON), 0644); err != nil {
			return derrors.NewStorageError(outputPath, "failed to write schema to "+outputPath, err)
		}
		_, _ = fmt.Fprintf(out, "JSON Schema written to: %s\n", outputPath)
		return nil
	}

	// Otherwise, print to stdout
	_, err := fmt.Fprintln(out, schemaJSON)
	return err
}

// Validate checks a settings file against the schema and loads it
func Validate(out io.Writer, configPath string) error {
	if configPath == "" {
		configPath = config.DefaultPath()
	}

	_, _ = fmt.Fprintf(out, "Validating: %s\n\n", configPath)

	content, err := os.ReadFile(configPath)
	if err != nil {
		return derrors.NewConfigurationError(configPath, "failed to read config file", err)
	}

	result, err := config.ValidateWithSchema(configPath, content)
	if err != nil {
		return derrors.NewConfigurationError(configPath, "failed to validate config", err)
	}

	if result.Valid {
		// Templates are only checked once the file is known to be well formed
		settings, err := config.Load(configPath, true)
		if err != nil {
			return err
		}
		if _, err := settings.ResolveStorageRoot(); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, config.ValidationError{
				Field:   "storage_root",
				Message: err.Error(),
			})
		}
	}

	if result.Valid {
		_, _ = fmt.Fprintln(out, "✅ Configuration is valid!")
		return nil
	}

	_, _ = fmt.Fprintln(out, "❌ Configuration has errors:")
	for i, validationErr := range result.Errors {
		_, _ = fmt.Fprintf(out, "%d. [%s] %s\n", i+1, validationErr.Field, validationErr.Message)
	}
	_, _ = fmt.Fprintf(out, "\nFound %d error(s)\n", len(result.Errors))

	return derrors.NewConfigurationError(configPath, "validation failed", nil)
}
