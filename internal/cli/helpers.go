package cli

import (
	"fmt"
	"io"

	"github.com/NikitaCOEUR/proxylists/internal/config"
	"github.com/NikitaCOEUR/proxylists/internal/derrors"
	"github.com/NikitaCOEUR/proxylists/internal/logger"
	"github.com/NikitaCOEUR/proxylists/internal/store"
	"github.com/urfave/cli/v3"
)

const (
	msgMissingSubcommand = `You must specify a subcommand. Use "help" to see available commands.`
	msgMissingListName   = "You must specify a list name. See help for details."
	msgMissingSiteList   = "You must specify a site list. See help for details."
)

// components holds initialized proxylists components
type components struct {
	settings *config.Settings
	store    *store.Store
	log      *logger.Logger
	out      io.Writer
}

// confirm prints a confirmation line unless confirmations are off
func (c *components) confirm(format string, args ...interface{}) {
	if !c.settings.Confirmations {
		return
	}
	_, _ = fmt.Fprintf(c.out, format, args...)
}

// initializeComponents loads settings and opens the store for a command.
// Precedence is flag or environment, then settings file, then defaults.
func initializeComponents(cmd *cli.Command) (*components, error) {
	settings, err := loadSettings(cmd)
	if err != nil {
		return nil, err
	}
	return newComponents(cmd, settings)
}

// loadSettings reads the --config file, or the default one when present
func loadSettings(cmd *cli.Command) (*config.Settings, error) {
	configPath := cmd.String("config")
	required := configPath != ""
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	return config.Load(configPath, required)
}

// newComponents applies flag overrides to settings and opens the store
func newComponents(cmd *cli.Command, settings *config.Settings) (*components, error) {
	level := settings.LogLevel
	if cmd.IsSet("log-level") {
		level = cmd.String("log-level")
	}
	log := logger.New(level, cmd.Root().ErrWriter)

	if cmd.Bool("quiet") {
		settings.Confirmations = false
	}

	root, err := resolveRoot(cmd.String("root"), settings)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("config", settings.Path).
		Str("root", root).
		Bool("confirmations", settings.Confirmations).
		Bool("cat_selector", settings.CatSelector).
		Msg("components initialized")

	return &components{
		settings: settings,
		store:    store.New(root, log),
		log:      log,
		out:      cmd.Root().Writer,
	}, nil
}

// resolveRoot picks the storage root: the flag value, the settings value,
// or $HOME/proxylists. Flag and settings values are template expanded.
func resolveRoot(flagValue string, settings *config.Settings) (string, error) {
	if flagValue != "" {
		return settings.Expand(flagValue)
	}

	root, err := settings.ResolveStorageRoot()
	if err != nil {
		return "", err
	}
	if root != "" {
		return root, nil
	}

	return store.DefaultRoot()
}

// requireListName returns the first positional argument or a usage error
func requireListName(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() < 1 {
		return "", derrors.NewUsageError(cmd.Name, msgMissingListName)
	}
	return cmd.Args().Get(0), nil
}
