package reconcile

import (
	"maps"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

// MergeRelease overlays o onto c field by field: a set override field wins,
// an unset one keeps the canonical value. A nil override returns c as is.
func MergeRelease(c domain.Release, o *ReleaseOverride) domain.Release {
	if o == nil {
		return c
	}
	m := c
	m.Slug = coalesceValue(o.Slug, c.Slug)
	m.Title = coalesceValue(o.Title, c.Title)
	m.Artist = coalesceValue(o.Artist, c.Artist)
	m.ArtistSlug = coalesce(o.ArtistSlug, c.ArtistSlug)
	m.BundleID = coalesce(o.BundleID, c.BundleID)
	m.Label = coalesce(o.Label, c.Label)
	m.BundleType = coalesce(o.BundleType, c.BundleType)
	m.MusicStyle = coalesce(o.MusicStyle, c.MusicStyle)
	m.DigitalReleaseDate = coalesce(o.DigitalReleaseDate, c.DigitalReleaseDate)
	m.InternalReference = coalesce(o.InternalReference, c.InternalReference)
	m.TrackCount = coalesce(o.TrackCount, c.TrackCount)
	m.CoverImageURL = coalesce(o.CoverImageURL, c.CoverImageURL)
	m.ImgURL = coalesce(o.ImgURL, c.ImgURL)
	m.BeatportSaleURL = coalesce(o.BeatportSaleURL, c.BeatportSaleURL)
	m.PurchaseLink = coalesce(o.PurchaseLink, c.PurchaseLink)
	m.ShareLink = coalesce(o.ShareLink, c.ShareLink)
	m.AudioFilePath = coalesce(o.AudioFilePath, c.AudioFilePath)
	m.Featured = coalesce(o.Featured, c.Featured)
	m.Upcoming = coalesce(o.Upcoming, c.Upcoming)
	m.IsLatest = coalesce(o.IsLatest, c.IsLatest)
	m.Description = coalesce(o.Description, c.Description)
	return m
}

// MergeArtist overlays o onto c with the same rule as MergeRelease.
func MergeArtist(c domain.Artist, o *ArtistOverride) domain.Artist {
	if o == nil {
		return c
	}
	m := c
	m.Slug = coalesceValue(o.Slug, c.Slug)
	m.Name = coalesceValue(o.Name, c.Name)
	m.Genre = coalesce(o.Genre, c.Genre)
	m.ImageURL = coalesce(o.ImageURL, c.ImageURL)
	m.Bio = coalesce(o.Bio, c.Bio)
	if o.SocialLinks != nil {
		m.SocialLinks = maps.Clone(o.SocialLinks)
	}
	return m
}

// coalesce copies the override value so merged records never alias the index.
func coalesce[T any](override, canonical *T) *T {
	if override == nil {
		return canonical
	}
	v := *override
	return &v
}

func coalesceValue[T any](override *T, canonical T) T {
	if override == nil {
		return canonical
	}
	return *override
}
