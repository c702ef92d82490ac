package app

import (
	"context"
	"fmt"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
	"github.com/LXMachado/tinnie-house-revamp/internal/logger"
	"github.com/LXMachado/tinnie-house-revamp/internal/reconcile"
)

// ContentService serves reconciled catalog content. Reads go through the
// reconciler; creates return the stored row untouched.
type ContentService struct {
	Source     Source
	Reconciler *reconcile.Reconciler
	Logger     *logger.Logger
}

func NewContentService(src Source, rec *reconcile.Reconciler, log *logger.Logger) *ContentService {
	if log == nil {
		log = logger.Discard()
	}
	if rec == nil {
		rec = reconcile.New(nil, nil)
	}
	return &ContentService{
		Source:     src,
		Reconciler: rec,
		Logger:     log.WithComponent("content"),
	}
}

func (s *ContentService) Artists(ctx context.Context) ([]domain.Artist, error) {
	rows, err := s.Source.ListArtists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artists: %w", err)
	}
	return s.Reconciler.Artists(rows), nil
}

func (s *ContentService) Artist(ctx context.Context, id int64) (*domain.Artist, error) {
	row, err := s.Source.GetArtist(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artist %d: %w", id, err)
	}
	artist := s.Reconciler.Artist(*row)
	return &artist, nil
}

// Releases returns every release, newest first.
func (s *ContentService) Releases(ctx context.Context) ([]domain.Release, error) {
	rows, err := s.Source.ListReleases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch releases: %w", err)
	}
	releases := s.Reconciler.Releases(rows)
	reconcile.SortReleasesByDate(releases)
	return releases, nil
}

// FeaturedReleases filters after the merge so curated flags apply.
func (s *ContentService) FeaturedReleases(ctx context.Context) ([]domain.Release, error) {
	return s.filterReleases(ctx, func(r *domain.Release) bool { return r.IsFeatured() })
}

// CatalogReleases returns everything that is already out.
func (s *ContentService) CatalogReleases(ctx context.Context) ([]domain.Release, error) {
	return s.filterReleases(ctx, func(r *domain.Release) bool { return !r.IsUpcoming() })
}

// LatestRelease returns the spotlight release, or ErrNotFound.
func (s *ContentService) LatestRelease(ctx context.Context) (*domain.Release, error) {
	releases, err := s.Releases(ctx)
	if err != nil {
		return nil, err
	}
	for i := range releases {
		if releases[i].IsLatestRelease() {
			return &releases[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *ContentService) Release(ctx context.Context, id int64) (*domain.Release, error) {
	row, err := s.Source.GetRelease(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch release %d: %w", id, err)
	}
	release := s.Reconciler.Release(*row)
	return &release, nil
}

func (s *ContentService) filterReleases(ctx context.Context, keep func(*domain.Release) bool) ([]domain.Release, error) {
	releases, err := s.Releases(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Release, 0, len(releases))
	for i := range releases {
		if keep(&releases[i]) {
			out = append(out, releases[i])
		}
	}
	return out, nil
}

func (s *ContentService) CreateArtist(ctx context.Context, a domain.NewArtist) (*domain.ArtistRecord, error) {
	created, err := s.Source.CreateArtist(ctx, a)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Artist created", "artist_id", created.ID, "name", a.Name)
	return created, nil
}

func (s *ContentService) CreateRelease(ctx context.Context, r domain.NewRelease) (*domain.ReleaseRecord, error) {
	created, err := s.Source.CreateRelease(ctx, r)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Release created", "release_id", created.ID, "title", r.Title)
	return created, nil
}

func (s *ContentService) SubmitContact(ctx context.Context, sub domain.NewContactSubmission) (*domain.ContactSubmission, error) {
	created, err := s.Source.CreateContactSubmission(ctx, sub)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("Contact form submitted", "submission_id", created.ID, "type", created.Type)
	return created, nil
}

func (s *ContentService) ContactSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	return s.Source.ListContactSubmissions(ctx)
}
