// Package status collects and renders the state of proxy lists.
package status

import "github.com/NikitaCOEUR/proxylists/internal/store"

// Data contains all the information to display in status
type Data struct {
	// Header
	Version     string
	StorageRoot string
	ConfigPath  string

	// Settings
	Confirmations bool
	CatSelector   bool

	// Lists, sorted by name
	Lists []*store.Stats
	// Requested is the list asked for on the command line, empty for all
	Requested string
}

// TotalPending sums pending entries over all lists
func (d *Data) TotalPending() int {
	total := 0
	for _, l := range d.Lists {
		total += l.Pending
	}
	return total
}

// TotalAllowed sums allowed entries over all lists
func (d *Data) TotalAllowed() int {
	total := 0
	for _, l := range d.Lists {
		total += l.Allowed
	}
	return total
}
