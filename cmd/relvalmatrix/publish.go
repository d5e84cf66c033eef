package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix"
)

func newPublishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "publish",
		Short: "Write the catalog to the configured database",
		Long: `Validates the catalog and writes it to the database selected by RVM_DATABASE_TYPE.
Publishing an unchanged catalog is a no-op. Publishing is refused when a scenario key
that was already published would receive a different workflow number.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := relvalmatrix.OpenDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			pub, created, err := relvalmatrix.NewCatalogManager(db).Publish(cmd.Context())
			if err != nil {
				return err
			}
			state := "already published"
			if created {
				state = "published"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d workflows, fingerprint %s)\n", state, pub.ID, pub.WorkflowCount, pub.Fingerprint)
			return nil
		},
	}
}
