package cli

import (
	"github.com/spf13/cobra"

	"github.com/tolvera-labs/tolvera-sketch/internal/branding"
	"github.com/tolvera-labs/tolvera-sketch/internal/clierr"
	"github.com/tolvera-labs/tolvera-sketch/internal/config"
	"github.com/tolvera-labs/tolvera-sketch/internal/logging"
)

// NewRootCmd builds the command tree around app.
func NewRootCmd(app *App) *cobra.Command {
	var (
		logLevel  string
		logFormat string
	)

	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` creates sketchbook folders pre-populated with a README, a
pyproject.toml and a main.py that lists and runs the sketches kept in sketches/.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Config == nil {
				cfg, err := config.Load()
				if err != nil {
					return clierr.Wrap(clierr.InvalidConfig, "loading config", err)
				}
				app.Config = cfg
			}
			if app.Logger == nil {
				level, format := app.Config.LogLevel(), app.Config.LogFormat()
				if cmd.Flags().Changed("log-level") {
					level = logLevel
				}
				if cmd.Flags().Changed("log-format") {
					format = logFormat
				}
				app.Logger = logging.New(level, format, app.Err)
			}
			app.Logger.Debug("config loaded", "file", app.Config.Path())
			return nil
		},
	}
	root.SetOut(app.Out)
	root.SetErr(app.Err)

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")

	root.AddCommand(
		newInitCmd(app),
		newListSketchesCmd(app),
		newListCmd(app),
		newConfigCmd(app),
		newVersionCmd(app),
	)
	classifyErrors(root)
	return root
}

// classifyErrors marks any unclassified error returned from a command's RunE
// as Internal. Flag and argument errors are raised by cobra before RunE and
// keep the default exit status.
func classifyErrors(cmd *cobra.Command) {
	if run := cmd.RunE; run != nil {
		cmd.RunE = func(c *cobra.Command, args []string) error {
			err := run(c, args)
			if err == nil || clierr.CodeOf(err) != "" {
				return err
			}
			return clierr.Wrap(clierr.Internal, "internal error", err)
		}
	}
	for _, sub := range cmd.Commands() {
		classifyErrors(sub)
	}
}
