package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tolvera-labs/tolvera-sketch/internal/clierr"
	"github.com/tolvera-labs/tolvera-sketch/internal/config"
	"github.com/tolvera-labs/tolvera-sketch/internal/scaffold"
	"github.com/tolvera-labs/tolvera-sketch/internal/sketchbook"
	"github.com/tolvera-labs/tolvera-sketch/internal/ui"
)

func newInitCmd(app *App) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "init <name>",
		Short: "Create a new sketchbook",
		Long: `Create a new sketchbook folder, with template files unless --no-template is given.

The sketchbook is created at <path>/<name>, where <path> defaults to the current
directory. An existing folder is never touched.

Examples:
  tolvera-sketch init "My Cool Sketchbook"
  tolvera-sketch init flock --path ~/sketchbooks --no-manifest
  tolvera-sketch init scratch --no-template`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()

			template, err := resolveToggle(flags, "template", app.Config.InitTemplate())
			if err != nil {
				return err
			}
			withManifest, err := resolveToggle(flags, "manifest", app.Config.InitManifest())
			if err != nil {
				return err
			}
			if !flags.Changed("path") {
				path = app.Config.InitPath()
			}
			if template && withManifest {
				if err := config.ValidatePython(app.Config.Python()); err != nil {
					return clierr.Wrap(clierr.InvalidConfig, "config key "+config.KeyPython, err)
				}
			}

			req := sketchbook.Request{
				Name:       args[0],
				Dir:        path,
				Template:   template,
				NoManifest: !withManifest,
			}
			result, err := app.scaffolder().Create(req)
			if err != nil {
				return err
			}

			printCreated(app, req, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "Directory to create the sketchbook in (default: current directory)")
	cmd.Flags().BoolP("template", "t", true, "Create the sketchbook with template files")
	cmd.Flags().Bool("no-template", false, "Create an empty sketchbook folder only")
	cmd.Flags().Bool("manifest", true, "Write pyproject.toml with the template files")
	cmd.Flags().Bool("no-manifest", false, "Skip pyproject.toml")
	return cmd
}

// resolveToggle reads a --name/--no-name flag pair, falling back to def
// when neither is given.
func resolveToggle(flags *pflag.FlagSet, name string, def bool) (bool, error) {
	neg := "no-" + name
	if flags.Changed(name) && flags.Changed(neg) {
		return false, clierr.Newf(clierr.InvalidConfig, "--%s and --%s cannot be used together", name, neg)
	}
	if flags.Changed(neg) {
		v, err := flags.GetBool(neg)
		return !v, err
	}
	if flags.Changed(name) {
		return flags.GetBool(name)
	}
	return def, nil
}

func printCreated(app *App, req sketchbook.Request, result *sketchbook.Result) {
	ui.Success(app.Out, "Created %s at: %s", req.Name, result.Path)
	if !req.Template {
		return
	}

	for _, f := range result.Files {
		fmt.Fprintf(app.Out, "  %s\n", f)
	}
	if len(result.Warnings) > 0 {
		fmt.Fprintln(app.Out)
		for _, w := range result.Warnings {
			ui.Warning(app.Out, "%s", w)
		}
	}

	fmt.Fprintln(app.Out, "\nNext steps:")
	fmt.Fprintf(app.Out, "  1. Add sketches to %s/\n", scaffold.SketchesDir)
	fmt.Fprintf(app.Out, "  2. Run 'python %s' inside the sketchbook to pick one\n", scaffold.EntryPoint)
}
