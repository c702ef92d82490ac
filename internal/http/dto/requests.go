package dto

import (
	"strings"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (r *ContactRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateRequired("name", r.Name)...)
	errs = append(errs, validateRequired("email", r.Email)...)
	errs = append(errs, validateRequired("subject", r.Subject)...)
	errs = append(errs, validateRequired("message", r.Message)...)
	errs = append(errs, validateEmail(strings.TrimSpace(r.Email))...)

	return errs
}

func (r *ContactRequest) ToDomain() domain.NewContactSubmission {
	return domain.NewContactSubmission{
		Name:    strings.TrimSpace(r.Name),
		Email:   strings.TrimSpace(r.Email),
		Subject: strings.TrimSpace(r.Subject),
		Message: r.Message,
		Type:    strings.TrimSpace(r.Type),
	}
}

type ArtistRequest struct {
	Name        string  `json:"name"`
	Bio         *string `json:"bio"`
	Genre       *string `json:"genre"`
	ImageURL    *string `json:"image_url"`
	SocialLinks *string `json:"social_links"`
}

func (r *ArtistRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateRequired("name", r.Name)...)
	errs = append(errs, validateURL("image_url", r.ImageURL)...)
	errs = append(errs, validateSocialLinks(r.SocialLinks)...)

	return errs
}

func (r *ArtistRequest) ToDomain() domain.NewArtist {
	return domain.NewArtist{
		Name:        strings.TrimSpace(r.Name),
		Bio:         r.Bio,
		Genre:       r.Genre,
		ImageURL:    r.ImageURL,
		SocialLinks: r.SocialLinks,
	}
}

type ReleaseRequest struct {
	BundleID           *string `json:"bundle_id"`
	Title              string  `json:"title"`
	Artist             string  `json:"artist"`
	ArtistID           *int64  `json:"artist_id"`
	Label              *string `json:"label"`
	BundleType         *string `json:"bundle_type"`
	MusicStyle         *string `json:"music_style"`
	DigitalReleaseDate *string `json:"digital_release_date"`
	CoverImageURL      *string `json:"cover_image_url"`
	ImgURL             *string `json:"img_url"`
	InternalReference  *string `json:"internal_reference"`
	TrackCount         *int    `json:"track_count"`
	BeatportSaleURL    *string `json:"beatport_sale_url"`
	PurchaseLink       *string `json:"purchase_link"`
	ShareLink          *string `json:"share_link"`
	AudioFileURL       *string `json:"audio_file_url"`
	Featured           bool    `json:"featured"`
	Upcoming           bool    `json:"upcoming"`
	Description        *string `json:"description"`
}

func (r *ReleaseRequest) Validate() []ValidationError {
	var errs []ValidationError

	errs = append(errs, validateRequired("title", r.Title)...)
	errs = append(errs, validateRequired("artist", r.Artist)...)
	errs = append(errs, validateReleaseDate("digital_release_date", r.DigitalReleaseDate)...)
	errs = append(errs, validateTrackCount(r.TrackCount)...)
	errs = append(errs, validateURL("cover_image_url", r.CoverImageURL)...)
	errs = append(errs, validateURL("img_url", r.ImgURL)...)
	errs = append(errs, validateURL("beatport_sale_url", r.BeatportSaleURL)...)
	errs = append(errs, validateURL("purchase_link", r.PurchaseLink)...)
	errs = append(errs, validateURL("share_link", r.ShareLink)...)
	errs = append(errs, validateURL("audio_file_url", r.AudioFileURL)...)

	return errs
}

func (r *ReleaseRequest) ToDomain() domain.NewRelease {
	return domain.NewRelease{
		BundleID:           r.BundleID,
		Title:              strings.TrimSpace(r.Title),
		Artist:             strings.TrimSpace(r.Artist),
		ArtistID:           r.ArtistID,
		Label:              r.Label,
		BundleType:         r.BundleType,
		MusicStyle:         r.MusicStyle,
		DigitalReleaseDate: r.DigitalReleaseDate,
		CoverImageURL:      r.CoverImageURL,
		ImgURL:             r.ImgURL,
		InternalReference:  r.InternalReference,
		TrackCount:         r.TrackCount,
		BeatportSaleURL:    r.BeatportSaleURL,
		PurchaseLink:       r.PurchaseLink,
		ShareLink:          r.ShareLink,
		AudioFileURL:       r.AudioFileURL,
		Featured:           r.Featured,
		Upcoming:           r.Upcoming,
		Description:        r.Description,
	}
}
