package main

import (
	"github.com/spf13/cobra"

	"github.com/RealZimboGuy/relvalmatrix/internal/config"
	"github.com/RealZimboGuy/relvalmatrix/pkg/relvalmatrix"
)

func newRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "relvalmatrix",
		Short: "Release-validation workflow catalog",
		Long: `Inspects, validates, exports and publishes the release-validation workflow
catalog: the extended-generator workflows, the upgrade scenario keys with their numbers
and properties, and the upgrade fragments.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadFile(configFile); err != nil {
				return err
			}
			relvalmatrix.SetupLogger()
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "settings file (yaml); environment variables take precedence")

	rootCmd.AddCommand(
		newListCmd(),
		newValidateCmd(),
		newExportCmd(),
		newPublishCmd(),
		newServeCmd(),
	)
	return rootCmd
}
