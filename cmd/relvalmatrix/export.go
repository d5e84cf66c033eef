package main

import (
	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
)

func newExportCmd() *cobra.Command {
	var format string
	var expanded bool

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := catalog.Export(catalog.Default(), expanded)
			return catalog.Write(cmd.OutOrStdout(), doc, format)
		},
	}
	exportCmd.Flags().StringVar(&format, "format", catalog.FormatJSON, "output format: json or yaml")
	exportCmd.Flags().BoolVar(&expanded, "expanded", false, "include the expanded upgrade workflows")
	return exportCmd
}
