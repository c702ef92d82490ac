package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

func newMapCmd() *cobra.Command {
	var artists bool
	cmd := &cobra.Command{
		Use:   "map",
		Short: "Show catalog content after overrides are applied",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			if artists {
				list, err := rt.content.Artists(cmd.Context())
				if err != nil {
					return err
				}
				if !wantTable(cmd) {
					return writeJSON(cmd, list)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), artistTable(list))
				return err
			}

			releases, err := rt.content.Releases(cmd.Context())
			if err != nil {
				return err
			}
			if !wantTable(cmd) {
				return writeJSON(cmd, releases)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), releaseTable(releases))
			return err
		},
	}
	cmd.Flags().BoolVar(&artists, "artists", false, "List artists instead of releases")
	return cmd
}

func releaseTable(releases []domain.Release) string {
	rows := make([][]string, 0, len(releases))
	for _, r := range releases {
		latest := ""
		if r.IsLatestRelease() {
			latest = "★"
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			r.Title,
			r.Artist,
			orDash(r.DigitalReleaseDate),
			orDash(r.InternalReference),
			orDash(r.AudioFilePath),
			latest,
		})
	}
	return renderTable([]string{"ID", "Title", "Artist", "Date", "Ref", "Audio", "Latest"}, rows, 0)
}

func artistTable(artists []domain.Artist) string {
	rows := make([][]string, 0, len(artists))
	for _, a := range artists {
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Slug,
			orDash(a.Genre),
			strconv.Itoa(len(a.SocialLinks)),
		})
	}
	return renderTable([]string{"ID", "Name", "Slug", "Genre", "Links"}, rows, 0, 4)
}
