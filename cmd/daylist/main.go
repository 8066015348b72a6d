package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/cmd/daylist/commands"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "daylist",
		Short: "Personal task tracker",
		Long:  "Track tasks across a today working set and a backlog, with recurring templates, #tags, and CSV backup",
	}

	rootCmd.AddCommand(commands.NewAddCmd())
	rootCmd.AddCommand(commands.NewEditCmd())
	rootCmd.AddCommand(commands.NewRemoveCmd())
	rootCmd.AddCommand(commands.NewDoneCmd())
	rootCmd.AddCommand(commands.NewTodayCmd())
	rootCmd.AddCommand(commands.NewRecurCmd())
	rootCmd.AddCommand(commands.NewListCmd())
	rootCmd.AddCommand(commands.NewTagsCmd())
	rootCmd.AddCommand(commands.NewExportCmd())
	rootCmd.AddCommand(commands.NewImportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
