// Package cli holds the tinnie command tree.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tinnie",
		Short: "Tinnie House Records content API and catalog tools",
		Long: `tinnie serves the Tinnie House Records content API and ships the
tools the label uses to look after its catalog: reconciled release listings,
snapshot exports for the edge deployment, and preview audio audits.

Configuration comes from the environment; a .env file in the working
directory is loaded first when present.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().Bool("json", false, "Force JSON output even on a terminal")

	cmd.AddCommand(
		newServeCmd(),
		newMapCmd(),
		newExportCmd(),
		newAuditCmd(),
		newSpotlightCmd(),
	)
	return cmd
}
