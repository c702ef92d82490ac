package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

const artistColumns = `id, name, bio, genre, image_url, social_links, created_at`

func (db *DB) ListArtists(ctx context.Context) ([]domain.ArtistRecord, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY created_at DESC, id DESC`

	artists := []domain.ArtistRecord{}
	if err := db.SelectContext(ctx, &artists, query); err != nil {
		return nil, fmt.Errorf("failed to list artists: %w", err)
	}
	return artists, nil
}

func (db *DB) GetArtist(ctx context.Context, id int64) (*domain.ArtistRecord, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = ?`

	artist := &domain.ArtistRecord{}
	err := db.GetContext(ctx, artist, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artist %d: %w", id, err)
	}
	return artist, nil
}

func (db *DB) CreateArtist(ctx context.Context, a domain.NewArtist) (*domain.ArtistRecord, error) {
	query := `INSERT INTO artists (name, bio, genre, image_url, social_links)
		VALUES (:name, :bio, :genre, :image_url, :social_links)`

	res, err := db.NamedExecContext(ctx, query, a)
	if err != nil {
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read artist id: %w", err)
	}
	return db.GetArtist(ctx, id)
}
