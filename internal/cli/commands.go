// Package cli implements the proxylists commands.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/NikitaCOEUR/proxylists/internal/derrors"
	"github.com/NikitaCOEUR/proxylists/internal/store"
	"github.com/NikitaCOEUR/proxylists/pkg/version"
	"github.com/urfave/cli/v3"
)

// HelpMessage is printed by the help command
const HelpMessage = `Available commands:
    help                                    Show the help.
    add <list_name> <site_list>             Add sites to a proxy list. site_list is a comma separated list of urls or domains to add to the list.
    allow <list_name>                       Move all sites in that list to the "allowed" list. Also available as "complete".
    cat <list_name> [pending|allowed]       Print out the given pending list or allowed list
    status [list_name]                      Show entry counts for one list or every list
    schema [output-file]                    Print or write the JSON Schema of the settings file
    validate [config-file]                  Validate a settings file

Global flags:
    --config <file>                         Settings file (default $XDG_CONFIG_HOME/proxylists/config.yml)
    --root <dir>                            Storage directory (default $HOME/proxylists)
    --log-level <level>                     Log level (debug, info, warn, error)
    --quiet, -q                             Do not print confirmation messages`

// NewApp builds the root command writing to stdout and stderr
func NewApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "proxylists",
		Usage:     "Maintain pending and allowed proxy lists",
		Version:   version.Version,
		Writer:    stdout,
		ErrWriter: stderr,
		// help is a regular command printing HelpMessage
		HideHelp: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("PROXYLISTS_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "Settings file (yml, yaml, toml or json)",
				Sources: cli.EnvVars("PROXYLISTS_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "root",
				Usage:   "Storage directory for list files",
				Sources: cli.EnvVars("PROXYLISTS_ROOT"),
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Do not print confirmation messages",
				Sources: cli.EnvVars("PROXYLISTS_QUIET"),
			},
		},
		OnUsageError: onUsageError,
		// Reached only when the first argument is not a known command
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return derrors.NewUsageError("", msgMissingSubcommand)
			}
			name := cmd.Args().First()
			return derrors.NewUsageError(name, fmt.Sprintf("unrecognized command %q", name))
		},
		Commands: []*cli.Command{
			{
				Name:         "help",
				Usage:        "Show the help",
				OnUsageError: onUsageError,
				Action: func(_ context.Context, cmd *cli.Command) error {
					_, err := fmt.Fprintln(cmd.Root().Writer, HelpMessage)
					return err
				},
			},
			{
				Name:            "add",
				Usage:           "Add comma separated sites to the pending list",
				ArgsUsage:       "<list_name> <site_list>",
				OnUsageError:    onUsageError,
				SkipFlagParsing: true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					name, err := requireListName(cmd)
					if err != nil {
						return err
					}
					if cmd.Args().Len() < 2 {
						return derrors.NewUsageError(cmd.Name, msgMissingSiteList)
					}

					c, err := initializeComponents(cmd)
					if err != nil {
						return err
					}
					return Add(c, AddParams{
						ListName: name,
						Sites:    cmd.Args().Get(1),
					})
				},
			},
			{
				Name:            "allow",
				Aliases:         []string{"complete"},
				Usage:           "Move all pending sites of a list to the allowed list",
				ArgsUsage:       "<list_name>",
				OnUsageError:    onUsageError,
				SkipFlagParsing: true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					name, err := requireListName(cmd)
					if err != nil {
						return err
					}

					c, err := initializeComponents(cmd)
					if err != nil {
						return err
					}
					return Allow(c, AllowParams{ListName: name})
				},
			},
			{
				Name:            "cat",
				Usage:           "Print the pending or allowed list",
				ArgsUsage:       "<list_name> [pending|allowed]",
				OnUsageError:    onUsageError,
				SkipFlagParsing: true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					name, err := requireListName(cmd)
					if err != nil {
						return err
					}

					params := CatParams{
						ListName:    name,
						ListType:    cmd.Args().Get(1),
						HasListType: cmd.Args().Len() > 1,
					}
					// Argument errors are reported before touching settings or storage
					if _, err := store.ParseKind(params.ListType); err != nil {
						return err
					}
					settings, err := loadSettings(cmd)
					if err != nil {
						return err
					}
					if _, err := catKind(settings, params); err != nil {
						return err
					}

					c, err := newComponents(cmd, settings)
					if err != nil {
						return err
					}
					return Cat(c, params)
				},
			},
			{
				Name:         "status",
				Usage:        "Show entry counts for one list or every list",
				ArgsUsage:    "[list_name]",
				OnUsageError: onUsageError,
				Action: func(_ context.Context, cmd *cli.Command) error {
					c, err := initializeComponents(cmd)
					if err != nil {
						return err
					}
					return Status(c, StatusParams{ListName: cmd.Args().Get(0)})
				},
			},
			{
				Name:         "schema",
				Usage:        "Display or export the JSON Schema of the settings file",
				ArgsUsage:    "[output-file]",
				OnUsageError: onUsageError,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return Schema(cmd.Root().Writer, outputPath)
				},
			},
			{
				Name:         "validate",
				Usage:        "Validate a settings file",
				ArgsUsage:    "[config-file]",
				OnUsageError: onUsageError,
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := cmd.String("config")
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return Validate(cmd.Root().Writer, configPath)
				},
			},
		},
	}
}

// onUsageError turns flag parsing failures into usage errors
func onUsageError(_ context.Context, cmd *cli.Command, err error, _ bool) error {
	return derrors.NewUsageError(cmd.Name, err.Error())
}

// Run executes the command line and returns the process exit status.
// Errors are printed to stderr as "Error: <message>".
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := NewApp(stdout, stderr)

	if err := app.Run(ctx, args); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return derrors.ExitCode(err)
	}
	return 0
}
