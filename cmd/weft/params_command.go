package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"weft/internal/appearance/vparams"
)

func newParamsCommand() *cobra.Command {
	var publishedOnly bool

	cmd := &cobra.Command{
		Use:   "params",
		Short: "List the visual parameter catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := vparams.Get()
			params := catalog.All()
			if publishedOnly {
				params = catalog.GroupZero()
			}

			rows := make([][]string, 0, len(params))
			for _, p := range params {
				traits := ""
				if p.Color != nil {
					traits += "color "
				}
				if p.Alpha != nil {
					traits += "alpha "
				}
				if p.Bump {
					traits += "bump "
				}
				if len(p.Drivers) > 0 {
					traits += "drives"
				}
				rows = append(rows, []string{
					strconv.Itoa(p.ID),
					p.Name,
					strconv.Itoa(p.Group),
					formatFloat(p.Min),
					formatFloat(p.Max),
					formatFloat(p.Default),
					traits,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Name", "Group", "Min", "Max", "Default", "Traits"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft},
			))
			fmt.Fprintf(out, "%d parameters (%d published)\n", len(params), len(catalog.GroupZero()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&publishedOnly, "published", false, "Show only group-0 parameters")
	return cmd
}

func formatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}
