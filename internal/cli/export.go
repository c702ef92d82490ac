package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LXMachado/tinnie-house-revamp/internal/app"
	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
	"github.com/LXMachado/tinnie-house-revamp/internal/publish"
	"github.com/LXMachado/tinnie-house-revamp/internal/static"
)

func newExportCmd() *cobra.Command {
	var out, credentials string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write artists.json and releases.json snapshots",
		Long: `Export fetches the raw artist and release rows from the configured
source and writes them as snapshots. The snapshots back DATA_SOURCE=static
and the read fallback, and are what the edge deployment serves.

--out takes a local directory or gs://bucket/prefix.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := publish.ParseTarget(out)
			if err != nil {
				return err
			}

			rt, err := newRuntime(cmd.Context(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer rt.Close()

			pub, err := publish.Open(cmd.Context(), target, credentials)
			if err != nil {
				return err
			}
			defer pub.Close()

			n, err := exportSnapshots(cmd.Context(), rt.source, pub)
			if err != nil {
				return err
			}
			rt.log.Info("Snapshots exported", "target", target.String(), "artists", n.artists, "releases", n.releases)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Output directory or gs://bucket/prefix")
	cmd.Flags().StringVar(&credentials, "credentials", os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"), "Service account file for gs:// targets")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

type exportCounts struct {
	artists  int
	releases int
}

func exportSnapshots(ctx context.Context, src app.Source, pub publish.Publisher) (exportCounts, error) {
	var (
		artists  []domain.ArtistRecord
		releases []domain.ReleaseRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		artists, err = src.ListArtists(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		releases, err = src.ListReleases(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return exportCounts{}, fmt.Errorf("failed to fetch content: %w", err)
	}

	files := map[string]any{
		constants.ArtistsSnapshot:  artists,
		constants.ReleasesSnapshot: releases,
	}

	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(constants.DefaultExportConcurrency)
	for name, v := range files {
		g.Go(func() error {
			data, err := static.Encode(v)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", name, err)
			}
			return pub.Publish(gctx, name, data)
		})
	}
	if err := g.Wait(); err != nil {
		return exportCounts{}, err
	}
	return exportCounts{artists: len(artists), releases: len(releases)}, nil
}
