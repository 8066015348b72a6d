package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daylist-app/daylist/internal/models"
	"github.com/daylist-app/daylist/internal/views"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var filterTag string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the today set and the backlog",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			p := views.Project(a.store.Tasks(), filterTag)

			fmt.Printf("Today (%d/%d done)\n", p.TodayCompleted, p.TodayTotal)
			for _, t := range p.Today {
				printTask(t)
			}
			for _, g := range p.CompletedGroups {
				if g.Count > 1 {
					fmt.Printf("  [x] %s  ×%d  (%s)\n", g.Representative.Text, g.Count, g.Representative.ID)
				} else {
					fmt.Printf("  [x] %s  (%s)\n", g.Representative.Text, g.Representative.ID)
				}
			}

			fmt.Println("\nBacklog")
			for _, t := range p.Backlog {
				printTask(t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filterTag, "tag", "", "only show tasks carrying this tag")
	return cmd
}

func printTask(t models.Task) {
	mark := " "
	if t.Completed {
		mark = "x"
	}
	suffix := ""
	if t.IsTemplate() {
		suffix = "  ↻"
	}
	fmt.Printf("  [%s] %s%s  (%s)\n", mark, t.Text, suffix, t.ID)
}

// NewTagsCmd creates the tags command
func NewTagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.close()

			for _, tag := range views.AllTags(a.store.Tasks()) {
				fmt.Printf("#%s\n", tag)
			}
			return nil
		},
	}
}
