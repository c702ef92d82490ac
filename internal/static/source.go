// Package static serves catalog content from JSON snapshots exported by the
// export command. It is read-only.
package static

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

// Snapshot is the full set of exported wire records.
type Snapshot struct {
	Artists  []domain.ArtistRecord
	Releases []domain.ReleaseRecord
}

// Source answers reads from a snapshot loaded once at startup.
type Source struct {
	snap Snapshot
}

// LoadDir reads a snapshot from a directory on disk.
func LoadDir(dir string) (*Source, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("snapshot path %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads artists.json and releases.json from fsys. A missing file is an
// empty list.
func Load(fsys fs.FS) (*Source, error) {
	var snap Snapshot
	if err := readJSON(fsys, constants.ArtistsSnapshot, &snap.Artists); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, constants.ReleasesSnapshot, &snap.Releases); err != nil {
		return nil, err
	}
	return New(snap), nil
}

// New wraps an in-memory snapshot.
func New(snap Snapshot) *Source {
	if snap.Artists == nil {
		snap.Artists = []domain.ArtistRecord{}
	}
	if snap.Releases == nil {
		snap.Releases = []domain.ReleaseRecord{}
	}
	return &Source{snap: snap}
}

func readJSON(fsys fs.FS, name string, out any) error {
	data, err := fs.ReadFile(fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", name, err)
	}
	return nil
}

// Encode renders records the way Load expects to read them back.
func Encode(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

func (s *Source) ListArtists(ctx context.Context) ([]domain.ArtistRecord, error) {
	return append([]domain.ArtistRecord(nil), s.snap.Artists...), ctx.Err()
}

func (s *Source) GetArtist(ctx context.Context, id int64) (*domain.ArtistRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range s.snap.Artists {
		if s.snap.Artists[i].ID == id {
			a := s.snap.Artists[i]
			return &a, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Source) ListReleases(ctx context.Context) ([]domain.ReleaseRecord, error) {
	return append([]domain.ReleaseRecord(nil), s.snap.Releases...), ctx.Err()
}

func (s *Source) GetRelease(ctx context.Context, id int64) (*domain.ReleaseRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for i := range s.snap.Releases {
		if s.snap.Releases[i].ID == id {
			r := s.snap.Releases[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *Source) CreateArtist(context.Context, domain.NewArtist) (*domain.ArtistRecord, error) {
	return nil, domain.ErrReadOnly
}

func (s *Source) CreateRelease(context.Context, domain.NewRelease) (*domain.ReleaseRecord, error) {
	return nil, domain.ErrReadOnly
}

func (s *Source) CreateContactSubmission(context.Context, domain.NewContactSubmission) (*domain.ContactSubmission, error) {
	return nil, domain.ErrReadOnly
}

// ListContactSubmissions is always empty; snapshots never carry contact data.
func (s *Source) ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	return []domain.ContactSubmission{}, ctx.Err()
}
