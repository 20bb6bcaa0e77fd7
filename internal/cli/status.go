package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/proxylists/internal/status"
)

// StatusParams contains parameters for the Status command
type StatusParams struct {
	// ListName restricts the report to one list, empty for all
	ListName string
}

// Status displays entry counts for the proxy lists
func Status(c *components, params StatusParams) error {
	// Collect all status data
	data, err := status.Collect(c.store, c.settings, params.ListName)
	if err != nil {
		return fmt.Errorf("failed to collect status data: %w", err)
	}

	// Render and display
	_, err = fmt.Fprintln(c.out, status.Render(data))
	return err
}
