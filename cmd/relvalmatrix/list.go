package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
)

func newListCmd() *cobra.Command {
	var year int

	listCmd := &cobra.Command{
		Use:       "list workflows|scenarios|fragments|numbers",
		Short:     "Print one of the catalog tables",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"workflows", "scenarios", "fragments", "numbers"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			years := c.Years()
			if year != 0 {
				if _, ok := c.Keys[year]; !ok {
					return fmt.Errorf("no upgrade scenarios for year %d", year)
				}
				years = []int{year}
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			switch args[0] {
			case "workflows":
				listWorkflows(tw, c)
			case "scenarios":
				listScenarios(tw, c, years)
			case "fragments":
				listFragments(tw, c)
			case "numbers":
				listNumbers(tw, c, years)
			}
			return tw.Flush()
		},
	}
	listCmd.Flags().IntVar(&year, "year", 0, "restrict scenarios and numbers to one year")
	return listCmd
}

func listWorkflows(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(w, "ID\tNAME\tSTEPS")
	for _, wf := range c.Workflows.Entries() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", wf.ID, wf.DisplayName(), strings.Join(wf.Steps, ","))
	}
}

func listScenarios(w io.Writer, c *catalog.Catalog, years []int) {
	fmt.Fprintln(w, "YEAR\tKEY\tGEOMETRY\tGLOBALTAG\tERA\tBEAMSPOT\tSTEPS")
	for _, y := range years {
		for _, s := range c.Scenarios(y) {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", s.Year, s.Key, s.Geom, s.GT, s.Era, s.BeamSpot, strings.Join(s.ScenToRun, ","))
		}
	}
}

func listFragments(w io.Writer, c *catalog.Catalog) {
	fmt.Fprintln(w, "#\tFRAGMENT\tDATASET\tEVENTS")
	for i, f := range c.Fragments() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i, f.Name, f.Dataset, f.Events.RelvalOption())
	}
}

func listNumbers(w io.Writer, c *catalog.Catalog, years []int) {
	fmt.Fprintln(w, "YEAR\tKEY\tNUMBER")
	for _, y := range years {
		for i, n := range c.Numbers(y) {
			fmt.Fprintf(w, "%d\t%s\t%d\n", y, c.Keys[y][i], n)
		}
	}
}
