package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tolvera-labs/tolvera-sketch/internal/clierr"
	"github.com/tolvera-labs/tolvera-sketch/internal/sketchbook"
	"github.com/tolvera-labs/tolvera-sketch/internal/ui"
)

func newListCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list [dir]",
		Short: "List the sketchbooks in a directory",
		Long:  `List the sketchbooks (folders with a sketches/ sub-folder) directly inside dir, or the current directory.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var dir string
			if len(args) == 1 {
				dir = args[0]
			} else {
				wd, err := app.getwd()
				if err != nil {
					return clierr.Wrap(clierr.ReadFailure, "resolving current directory", err)
				}
				dir = wd
			}

			books, err := sketchbook.Discover(dir)
			if err != nil {
				return err
			}
			app.logger().Debug("discovered sketchbooks", "dir", dir, "count", len(books))

			if asJSON {
				data, err := json.MarshalIndent(books, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(app.Out, string(data))
				return err
			}

			if len(books) == 0 {
				fmt.Fprintf(app.Out, "No sketchbooks found in %s\n", dir)
				return nil
			}

			w := tabwriter.NewWriter(app.Out, 0, 0, 3, ' ', 0)
			fmt.Fprintln(w, "NAME\tSKETCHES\tPATH")
			for _, b := range books {
				if b.Error != "" {
					fmt.Fprintf(w, "%s\t?\t%s\n", b.Name, b.Path)
					continue
				}
				fmt.Fprintf(w, "%s\t%d\t%s\n", b.Name, b.Sketches, b.Path)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			for _, b := range books {
				if b.Error != "" {
					ui.Warning(app.Err, "%s: %s", b.Name, b.Error)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
