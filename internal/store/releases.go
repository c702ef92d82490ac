package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

const releaseColumns = `id, bundle_id, title, artist, artist_id, label_id, label, ean, bundle_type,
	music_style, digital_release_date, published, cover_file_name, cover_image_url, img_url,
	internal_reference, cover_file_hash, track_count, beatport_sale_url, purchase_link, share_link,
	audio_file_url, featured, upcoming, description, release_date, created_at, update_date`

func (db *DB) ListReleases(ctx context.Context) ([]domain.ReleaseRecord, error) {
	query := `SELECT ` + releaseColumns + ` FROM releases
		ORDER BY COALESCE(digital_release_date, created_at) DESC, id DESC`

	releases := []domain.ReleaseRecord{}
	if err := db.SelectContext(ctx, &releases, query); err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}
	return releases, nil
}

func (db *DB) GetRelease(ctx context.Context, id int64) (*domain.ReleaseRecord, error) {
	query := `SELECT ` + releaseColumns + ` FROM releases WHERE id = ?`

	release := &domain.ReleaseRecord{}
	err := db.GetContext(ctx, release, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get release %d: %w", id, err)
	}
	return release, nil
}

func (db *DB) CreateRelease(ctx context.Context, r domain.NewRelease) (*domain.ReleaseRecord, error) {
	applyReleaseDefaults(&r)

	query := `INSERT INTO releases (
			bundle_id, title, artist, artist_id, label, bundle_type, music_style,
			digital_release_date, cover_image_url, img_url, internal_reference, track_count,
			beatport_sale_url, purchase_link, share_link, audio_file_url, featured, upcoming, description
		) VALUES (
			:bundle_id, :title, :artist, :artist_id, :label, :bundle_type, :music_style,
			:digital_release_date, :cover_image_url, :img_url, :internal_reference, :track_count,
			:beatport_sale_url, :purchase_link, :share_link, :audio_file_url, :featured, :upcoming, :description
		)`

	res, err := db.NamedExecContext(ctx, query, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create release: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read release id: %w", err)
	}
	return db.GetRelease(ctx, id)
}

// applyReleaseDefaults fills the columns the releases table defaults, since
// a named insert binds NULL for every unset field.
func applyReleaseDefaults(r *domain.NewRelease) {
	if r.Label == nil {
		label := constants.DefaultLabel
		r.Label = &label
	}
	if r.BundleType == nil {
		bundleType := constants.DefaultBundleType
		r.BundleType = &bundleType
	}
	if r.MusicStyle == nil {
		style := constants.DefaultMusicStyle
		r.MusicStyle = &style
	}
	if r.TrackCount == nil {
		count := constants.DefaultTrackCount
		r.TrackCount = &count
	}
}
