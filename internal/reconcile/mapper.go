package reconcile

import (
	"encoding/json"
	"strings"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

// ParseSocialLinks decodes a JSON object of platform to URL. Anything that
// is not such an object yields nil.
func ParseSocialLinks(s string) domain.SocialLinks {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var links domain.SocialLinks
	if err := json.Unmarshal([]byte(s), &links); err != nil {
		return nil
	}
	if len(links) == 0 {
		return nil
	}
	return links
}

// MapArtist converts a stored artist row into its canonical form.
func MapArtist(w domain.ArtistRecord) domain.Artist {
	name := deref(w.Name)
	a := domain.Artist{
		ID:       w.ID,
		Slug:     DeriveSlug(name),
		Name:     orDefault(name, constants.UnknownArtist),
		Genre:    w.Genre,
		ImageURL: w.ImageURL,
		Bio:      w.Bio,
	}
	if w.SocialLinks != nil {
		a.SocialLinks = ParseSocialLinks(*w.SocialLinks)
	}
	return a
}

// MapRelease converts a stored release row into its canonical form.
// spotlightID is the bundle id of the current flagship release.
func MapRelease(w domain.ReleaseRecord, spotlightID string) domain.Release {
	title := deref(w.Title)
	artist := deref(w.Artist)

	r := domain.Release{
		ID:                 w.ID,
		Slug:               DeriveSlug(title),
		Title:              orDefault(title, constants.UntitledRelease),
		Artist:             orDefault(artist, constants.UnknownArtist),
		BundleID:           w.BundleID,
		Label:              w.Label,
		BundleType:         w.BundleType,
		MusicStyle:         w.MusicStyle,
		DigitalReleaseDate: w.DigitalReleaseDate,
		InternalReference:  w.InternalReference,
		TrackCount:         w.TrackCount,
		CoverImageURL:      w.CoverImageURL,
		ImgURL:             w.ImgURL,
		BeatportSaleURL:    w.BeatportSaleURL,
		PurchaseLink:       w.PurchaseLink,
		ShareLink:          w.ShareLink,
		Featured:           w.Featured,
		Upcoming:           w.Upcoming,
		Description:        w.Description,
	}

	if strings.TrimSpace(artist) != "" {
		slug := DeriveSlug(artist)
		r.ArtistSlug = &slug
	}

	if w.AudioFileURL != nil {
		if p := NormalizeAudioPath(*w.AudioFileURL, artist); p != "" {
			r.AudioFilePath = &p
		}
	}

	if deref(r.ImgURL) == "" {
		r.ImgURL = r.CoverImageURL
	}

	latest := isSpotlight(w.BundleID, spotlightID)
	r.IsLatest = &latest

	return r
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
