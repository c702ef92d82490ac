package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSpotlightCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spotlight",
		Short: "Inspect or change the release flagged as latest",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the spotlight bundle id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rt.spotlight.BundleID())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <bundle-id>",
		Short: "Persist a new spotlight bundle id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			previous := rt.spotlight.BundleID()
			if err := rt.spotlight.Save(cmd.Context(), rt.settings, args[0]); err != nil {
				return err
			}
			rt.log.Info("Spotlight updated", "from", previous, "to", rt.spotlight.BundleID())

			latest, err := rt.content.LatestRelease(cmd.Context())
			if err != nil {
				rt.log.Warn("No release matches the new spotlight", "bundle_id", rt.spotlight.BundleID(), "error", err)
				return nil
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s - %s\n", latest.Artist, latest.Title)
			return err
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted spotlight and use SPOTLIGHT_BUNDLE_ID again",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			previous := rt.spotlight.BundleID()
			if err := rt.spotlight.Reset(cmd.Context(), rt.settings, rt.cfg.SpotlightBundleID); err != nil {
				return err
			}
			rt.log.Info("Spotlight reset", "from", previous, "to", rt.spotlight.BundleID())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rt.spotlight.BundleID())
			return err
		},
	})
	return cmd
}
