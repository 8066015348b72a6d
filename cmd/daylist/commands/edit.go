package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

// NewEditCmd creates the edit command
func NewEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Replace a task's text",
		Long:  "Replace a task's text; its tags are re-derived from the new text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			a.store.Edit(cmd.Context(), args[0], strings.Join(args[1:], " "))
			return nil
		},
	}
}
