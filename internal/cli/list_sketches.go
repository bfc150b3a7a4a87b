package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tolvera-labs/tolvera-sketch/internal/sketchbook"
)

func newListSketchesCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list-sketches <sketchbook_path>",
		Short: "List the sketches in a sketchbook",
		Long: `Print the Python sketches in <sketchbook_path>/sketches/, sorted by name.

Nothing is printed when the sketchbook has no sketches folder or it is empty.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sketches, err := sketchbook.ListSketches(args[0])
			if err != nil {
				return err
			}
			app.logger().Debug("listed sketches", "path", args[0], "count", len(sketches))

			if asJSON {
				data, err := json.Marshal(sketches)
				if err != nil {
					return fmt.Errorf("marshaling sketches: %w", err)
				}
				_, err = fmt.Fprintln(app.Out, string(data))
				return err
			}
			for _, s := range sketches {
				fmt.Fprintln(app.Out, s)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output a JSON array")
	return cmd
}
