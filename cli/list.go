package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tSTART\tDESCRIPTION")
				for _, e := range a.catalog.Entries() {
					start := e.Start
					if start == "" {
						start = "-"
					}
					fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, start, e.Description)
				}
				return w.Flush()
			})
		},
	}
}
