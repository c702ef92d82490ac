package app

import (
	"context"
	"errors"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
	"github.com/LXMachado/tinnie-house-revamp/internal/logger"
)

var (
	ErrNotFound = domain.ErrNotFound
	ErrReadOnly = domain.ErrReadOnly
)

// Source is a backing store for catalog rows. store.DB, supabase.Client and
// static.Source all satisfy it.
type Source interface {
	ListArtists(ctx context.Context) ([]domain.ArtistRecord, error)
	GetArtist(ctx context.Context, id int64) (*domain.ArtistRecord, error)
	CreateArtist(ctx context.Context, a domain.NewArtist) (*domain.ArtistRecord, error)

	ListReleases(ctx context.Context) ([]domain.ReleaseRecord, error)
	GetRelease(ctx context.Context, id int64) (*domain.ReleaseRecord, error)
	CreateRelease(ctx context.Context, r domain.NewRelease) (*domain.ReleaseRecord, error)

	CreateContactSubmission(ctx context.Context, s domain.NewContactSubmission) (*domain.ContactSubmission, error)
	ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error)
}

// FallbackSource reads from Primary and answers from Fallback when Primary
// fails. A not-found answer from Primary is final. Writes only go to Primary.
type FallbackSource struct {
	Primary  Source
	Fallback Source
	Logger   *logger.Logger
}

func NewFallbackSource(primary, fallback Source, log *logger.Logger) *FallbackSource {
	if log == nil {
		log = logger.Discard()
	}
	return &FallbackSource{
		Primary:  primary,
		Fallback: fallback,
		Logger:   log.WithComponent("source"),
	}
}

func (s *FallbackSource) useFallback(ctx context.Context, op string, err error) bool {
	if err == nil || errors.Is(err, ErrNotFound) || ctx.Err() != nil {
		return false
	}
	s.Logger.Warn("Primary source failed, serving snapshot", "op", op, "error", err)
	return true
}

func (s *FallbackSource) ListArtists(ctx context.Context) ([]domain.ArtistRecord, error) {
	artists, err := s.Primary.ListArtists(ctx)
	if s.useFallback(ctx, "list_artists", err) {
		return s.Fallback.ListArtists(ctx)
	}
	return artists, err
}

func (s *FallbackSource) GetArtist(ctx context.Context, id int64) (*domain.ArtistRecord, error) {
	artist, err := s.Primary.GetArtist(ctx, id)
	if s.useFallback(ctx, "get_artist", err) {
		return s.Fallback.GetArtist(ctx, id)
	}
	return artist, err
}

func (s *FallbackSource) ListReleases(ctx context.Context) ([]domain.ReleaseRecord, error) {
	releases, err := s.Primary.ListReleases(ctx)
	if s.useFallback(ctx, "list_releases", err) {
		return s.Fallback.ListReleases(ctx)
	}
	return releases, err
}

func (s *FallbackSource) GetRelease(ctx context.Context, id int64) (*domain.ReleaseRecord, error) {
	release, err := s.Primary.GetRelease(ctx, id)
	if s.useFallback(ctx, "get_release", err) {
		return s.Fallback.GetRelease(ctx, id)
	}
	return release, err
}

func (s *FallbackSource) ListContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	return s.Primary.ListContactSubmissions(ctx)
}

func (s *FallbackSource) CreateArtist(ctx context.Context, a domain.NewArtist) (*domain.ArtistRecord, error) {
	return s.Primary.CreateArtist(ctx, a)
}

func (s *FallbackSource) CreateRelease(ctx context.Context, r domain.NewRelease) (*domain.ReleaseRecord, error) {
	return s.Primary.CreateRelease(ctx, r)
}

func (s *FallbackSource) CreateContactSubmission(ctx context.Context, sub domain.NewContactSubmission) (*domain.ContactSubmission, error) {
	return s.Primary.CreateContactSubmission(ctx, sub)
}
