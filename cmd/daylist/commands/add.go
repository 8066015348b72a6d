package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewAddCmd creates the add command
func NewAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a new task to the backlog",
		Long:  "Add a new task. Words starting with # become tags, e.g. 'daylist add \"water plants #home\"'",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			task := a.store.Add(cmd.Context(), strings.Join(args, " "))
			fmt.Printf("Added %s: %s\n", task.ID, task.Text)
			return nil
		},
	}
}
