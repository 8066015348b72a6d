package commands

import (
	"github.com/spf13/cobra"
)

// NewRemoveCmd creates the rm command
func NewRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			a.store.Delete(cmd.Context(), args[0])
			return nil
		},
	}
}

// NewDoneCmd creates the done command
func NewDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completed state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			a.store.ToggleComplete(cmd.Context(), args[0])
			return nil
		},
	}
}

// NewTodayCmd creates the today command
func NewTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today <id>",
		Short: "Move a task in or out of today",
		Long:  "Move a task in or out of the today set. On a recurring template this creates a fresh today instance and leaves the template in place",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			a.store.ToggleToday(cmd.Context(), args[0])
			return nil
		},
	}
}

// NewRecurCmd creates the recur command
func NewRecurCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recur <id>",
		Short: "Toggle a task's recurring template state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			a.store.ToggleRecurring(cmd.Context(), args[0])
			return nil
		},
	}
}
