package reconcile

import (
	"slices"
	"time"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

// Spotlight supplies the bundle id of the label's current flagship release.
type Spotlight interface {
	BundleID() string
}

// Reconciler maps remote rows and merges overrides. It holds no mutable
// state of its own and is safe for concurrent use.
type Reconciler struct {
	index     *Index
	spotlight Spotlight
}

// New creates a Reconciler. Either argument may be nil.
func New(index *Index, spotlight Spotlight) *Reconciler {
	return &Reconciler{index: index, spotlight: spotlight}
}

func (r *Reconciler) spotlightID() string {
	if r.spotlight == nil {
		return ""
	}
	return r.spotlight.BundleID()
}

// Artist maps and merges a single artist row.
func (r *Reconciler) Artist(w domain.ArtistRecord) domain.Artist {
	a := MapArtist(w)
	o, _ := r.index.Artist(a)
	return MergeArtist(a, o)
}

// Artists maps and merges rows, preserving their order.
func (r *Reconciler) Artists(ws []domain.ArtistRecord) []domain.Artist {
	out := make([]domain.Artist, len(ws))
	for i, w := range ws {
		out[i] = r.Artist(w)
	}
	return out
}

// Release maps and merges a single release row.
func (r *Reconciler) Release(w domain.ReleaseRecord) domain.Release {
	return r.release(w, r.spotlightID())
}

// Releases maps and merges rows, preserving their order. The spotlight is
// read once so a batch never mixes two flagship ids.
func (r *Reconciler) Releases(ws []domain.ReleaseRecord) []domain.Release {
	spotlightID := r.spotlightID()
	out := make([]domain.Release, len(ws))
	for i, w := range ws {
		out[i] = r.release(w, spotlightID)
	}
	return out
}

// release maps and merges one row, then derives isLatest from the merged
// bundle id unless the override pins it. A containment match only lends
// curated content; the row keeps its own identity.
func (r *Reconciler) release(w domain.ReleaseRecord, spotlightID string) domain.Release {
	rel := MapRelease(w, spotlightID)
	o, tier := r.index.Release(rel)
	m := MergeRelease(rel, o)

	if tier == MatchContains {
		m.Slug = rel.Slug
		m.Title = rel.Title
		m.BundleID = rel.BundleID
	}
	if o == nil || o.IsLatest == nil || tier == MatchContains {
		latest := isSpotlight(m.BundleID, spotlightID)
		m.IsLatest = &latest
	}
	return m
}

func isSpotlight(bundleID *string, spotlightID string) bool {
	return spotlightID != "" && deref(bundleID) == spotlightID
}

var releaseDateLayouts = []string{
	"2006-01-02",
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ReleaseTime parses a release date. Missing or unparsable dates sort as the
// Unix epoch.
func ReleaseTime(date *string) time.Time {
	if date == nil || *date == "" {
		return time.Unix(0, 0).UTC()
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, *date); err == nil {
			return t
		}
	}
	return time.Unix(0, 0).UTC()
}

// SortReleasesByDate orders releases newest first by digital release date.
// Releases with equal dates keep their relative order.
func SortReleasesByDate(releases []domain.Release) {
	slices.SortStableFunc(releases, func(a, b domain.Release) int {
		return ReleaseTime(b.DigitalReleaseDate).Compare(ReleaseTime(a.DigitalReleaseDate))
	})
}
