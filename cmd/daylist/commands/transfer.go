package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daylist-app/daylist/internal/csvio"
	"github.com/daylist-app/daylist/internal/models"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var recurringOnly bool

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export tasks to a CSV file",
		Long:  "Export the full collection (default todos.csv), or only the recurring templates with --recurring (default recurring_templates.csv). Use '-' to write to stdout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			out := csvio.Export(a.store.Tasks())
			path := "todos.csv"
			if recurringOnly {
				out = csvio.ExportTemplates(a.store.Tasks())
				path = "recurring_templates.csv"
			}
			if len(args) == 1 {
				path = args[0]
			}

			if path == "-" {
				fmt.Print(out)
				return nil
			}
			if err := os.WriteFile(path, []byte(out), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&recurringOnly, "recurring", false, "export only recurring templates")
	return cmd
}

// NewImportCmd creates the import command
func NewImportCmd() *cobra.Command {
	var mergeRecurring bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks from a CSV file",
		Long:  "Import a CSV export. By default the whole collection is replaced; with --merge-recurring every row is added as a recurring template and existing tasks are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			// Read failure or a malformed header aborts before any state
			// changes.
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			mode := csvio.ImportModeReplace
			if mergeRecurring {
				mode = csvio.ImportModeRecurringMerge
			}
			parsed, err := csvio.Parse(string(data), mode, models.NowMillis())
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", args[0], err)
			}

			ctx := cmd.Context()
			if mergeRecurring {
				a.store.Append(ctx, parsed)
				fmt.Printf("Added %d recurring template(s)\n", len(parsed))
			} else {
				a.store.Replace(ctx, parsed)
				fmt.Printf("Replaced collection with %d task(s)\n", len(parsed))
			}
			a.logger.Debug("import_complete",
				zap.String("file", args[0]),
				zap.String("mode", string(mode)),
				zap.Int("rows", len(parsed)),
			)
			return nil
		},
	}

	cmd.Flags().BoolVar(&mergeRecurring, "merge-recurring", false, "append rows as recurring templates instead of replacing the collection")
	return cmd
}
