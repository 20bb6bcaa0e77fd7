package cli

import (
	"fmt"

	"github.com/NikitaCOEUR/proxylists/internal/config"
	"github.com/NikitaCOEUR/proxylists/internal/derrors"
	"github.com/NikitaCOEUR/proxylists/internal/entry"
	"github.com/NikitaCOEUR/proxylists/internal/store"
)

// AddParams contains parameters for the Add command
type AddParams struct {
	ListName string
	Sites    string
}

// Add normalizes a comma separated site list and appends it to the pending list
func Add(c *components, params AddParams) error {
	entries := entry.Normalize(params.Sites)
	payload := entry.Join(entries)

	if err := c.store.Append(params.ListName, payload); err != nil {
		return err
	}

	c.log.Info().List(params.ListName).Int("entries", len(entries)).Msg("sites added to pending list")
	c.confirm("Added pending: %s\n", payload)
	return nil
}

// AllowParams contains parameters for the Allow command
type AllowParams struct {
	ListName string
}

// Allow moves every pending site of a list to its allowed list
func Allow(c *components, params AllowParams) error {
	promoted, err := c.store.Promote(params.ListName)
	if err != nil {
		return err
	}

	c.log.Info().List(params.ListName).Int("entries", len(entry.Split(promoted))).Msg("pending list promoted")
	c.confirm("Added allowed: %s\n", promoted)
	return nil
}

// CatParams contains parameters for the Cat command
type CatParams struct {
	ListName string
	// ListType is "pending", "allowed" or empty for pending
	ListType string
	// HasListType is set when a list type argument was given at all
	HasListType bool
}

// catKind checks the list type argument against the cat_selector setting
func catKind(settings *config.Settings, params CatParams) (store.Kind, error) {
	kind, err := store.ParseKind(params.ListType)
	if err != nil {
		return "", err
	}
	if params.HasListType && !settings.CatSelector {
		return "", derrors.NewUsageError("cat", fmt.Sprintf("unexpected argument %q: cat only prints the pending list", params.ListType))
	}
	return kind, nil
}

// Cat prints one file of a list
func Cat(c *components, params CatParams) error {
	kind, err := catKind(c.settings, params)
	if err != nil {
		return err
	}

	content, err := c.store.Read(params.ListName, kind)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(c.out, content)
	return err
}
