package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/relvalmatrix/internal/catalog"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the catalog invariants",
		Long: `Checks workflow id uniqueness, scenario keys against their properties, the
upgrade numbering against the reserved intervals, fragment table symmetry and the
expanded upgrade workflows. Every violation is reported.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := catalog.Default()
			if err := catalog.Validate(c); err != nil {
				return err
			}
			fingerprint, err := catalog.Fingerprint(c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "catalog ok: %d workflows, %d upgrade keys, %d fragments, fingerprint %s\n",
				c.Workflows.Len(), len(c.UpgradeNumbers()), len(c.FragmentOrder), fingerprint)
			return nil
		},
	}
}
