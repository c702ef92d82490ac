package domain

// SocialLinks maps a platform name (instagram, soundcloud, ...) to a profile URL.
type SocialLinks map[string]string

// Artist is the canonical, application-facing artist served by the API.
type Artist struct {
	ID          int64       `json:"id"`
	Slug        string      `json:"slug"`
	Name        string      `json:"name"`
	Genre       *string     `json:"genre,omitempty"`
	ImageURL    *string     `json:"imageUrl,omitempty"`
	Bio         *string     `json:"bio,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks,omitempty"`
}

// Release is the canonical, application-facing release served by the API.
type Release struct { //nolint:govet // field ordering follows the public JSON shape
	ID                 int64   `json:"id"`
	Slug               string  `json:"slug"`
	Title              string  `json:"title"`
	Artist             string  `json:"artist"`
	ArtistSlug         *string `json:"artistSlug,omitempty"`
	BundleID           *string `json:"bundleId,omitempty"`
	Label              *string `json:"label,omitempty"`
	BundleType         *string `json:"bundleType,omitempty"`
	MusicStyle         *string `json:"musicStyle,omitempty"`
	DigitalReleaseDate *string `json:"digitalReleaseDate,omitempty"`
	InternalReference  *string `json:"internalReference,omitempty"`
	TrackCount         *int    `json:"trackCount,omitempty"`
	CoverImageURL      *string `json:"coverImageUrl,omitempty"`
	ImgURL             *string `json:"imgUrl,omitempty"`
	BeatportSaleURL    *string `json:"beatportSaleUrl,omitempty"`
	PurchaseLink       *string `json:"purchaseLink,omitempty"`
	ShareLink          *string `json:"shareLink,omitempty"`
	AudioFilePath      *string `json:"audioFilePath,omitempty"`
	Featured           *bool   `json:"featured,omitempty"`
	Upcoming           *bool   `json:"upcoming,omitempty"`
	IsLatest           *bool   `json:"isLatest,omitempty"`
	Description        *string `json:"description,omitempty"`
}

// IsFeatured reports the featured flag, treating absence as false.
func (r *Release) IsFeatured() bool {
	return r.Featured != nil && *r.Featured
}

// IsUpcoming reports the upcoming flag, treating absence as false.
func (r *Release) IsUpcoming() bool {
	return r.Upcoming != nil && *r.Upcoming
}

// IsLatestRelease reports whether the release is the current spotlight release.
func (r *Release) IsLatestRelease() bool {
	return r.IsLatest != nil && *r.IsLatest
}

// ArtistRecord is the snake_case artist row as stored in the remote store.
type ArtistRecord struct {
	ID          int64   `json:"id" db:"id"`
	Name        *string `json:"name" db:"name"`
	Bio         *string `json:"bio,omitempty" db:"bio"`
	Genre       *string `json:"genre,omitempty" db:"genre"`
	ImageURL    *string `json:"image_url,omitempty" db:"image_url"`
	SocialLinks *string `json:"social_links,omitempty" db:"social_links"`
	CreatedAt   *string `json:"created_at,omitempty" db:"created_at"`
}

// ReleaseRecord is the snake_case release row as stored in the remote store.
type ReleaseRecord struct { //nolint:govet // mirrors the releases table column order
	ID                 int64   `json:"id" db:"id"`
	BundleID           *string `json:"bundle_id,omitempty" db:"bundle_id"`
	Title              *string `json:"title" db:"title"`
	Artist             *string `json:"artist" db:"artist"`
	ArtistID           *int64  `json:"artist_id,omitempty" db:"artist_id"`
	LabelID            *string `json:"label_id,omitempty" db:"label_id"`
	Label              *string `json:"label,omitempty" db:"label"`
	EAN                *string `json:"ean,omitempty" db:"ean"`
	BundleType         *string `json:"bundle_type,omitempty" db:"bundle_type"`
	MusicStyle         *string `json:"music_style,omitempty" db:"music_style"`
	DigitalReleaseDate *string `json:"digital_release_date,omitempty" db:"digital_release_date"`
	Published          *string `json:"published,omitempty" db:"published"`
	CoverFileName      *string `json:"cover_file_name,omitempty" db:"cover_file_name"`
	CoverImageURL      *string `json:"cover_image_url,omitempty" db:"cover_image_url"`
	ImgURL             *string `json:"img_url,omitempty" db:"img_url"`
	InternalReference  *string `json:"internal_reference,omitempty" db:"internal_reference"`
	CoverFileHash      *string `json:"cover_file_hash,omitempty" db:"cover_file_hash"`
	TrackCount         *int    `json:"track_count,omitempty" db:"track_count"`
	BeatportSaleURL    *string `json:"beatport_sale_url,omitempty" db:"beatport_sale_url"`
	PurchaseLink       *string `json:"purchase_link,omitempty" db:"purchase_link"`
	ShareLink          *string `json:"share_link,omitempty" db:"share_link"`
	AudioFileURL       *string `json:"audio_file_url,omitempty" db:"audio_file_url"`
	Featured           *bool   `json:"featured,omitempty" db:"featured"`
	Upcoming           *bool   `json:"upcoming,omitempty" db:"upcoming"`
	Description        *string `json:"description,omitempty" db:"description"`
	ReleaseDate        *string `json:"release_date,omitempty" db:"release_date"`
	CreatedAt          *string `json:"created_at,omitempty" db:"created_at"`
	UpdateDate         *string `json:"update_date,omitempty" db:"update_date"`
}

// ContactSubmission is a message sent through the website contact form.
type ContactSubmission struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	Email     string `json:"email" db:"email"`
	Subject   string `json:"subject" db:"subject"`
	Message   string `json:"message" db:"message"`
	Type      string `json:"type" db:"type"`
	Status    string `json:"status" db:"status"`
	CreatedAt string `json:"created_at" db:"created_at"`
}

// NewArtist holds the columns accepted when creating an artist.
type NewArtist struct {
	Name        string  `json:"name" db:"name"`
	Bio         *string `json:"bio,omitempty" db:"bio"`
	Genre       *string `json:"genre,omitempty" db:"genre"`
	ImageURL    *string `json:"image_url,omitempty" db:"image_url"`
	SocialLinks *string `json:"social_links,omitempty" db:"social_links"`
}

// NewRelease holds the columns accepted when creating a release.
type NewRelease struct { //nolint:govet // mirrors the releases table column order
	BundleID           *string `json:"bundle_id,omitempty" db:"bundle_id"`
	Title              string  `json:"title" db:"title"`
	Artist             string  `json:"artist" db:"artist"`
	ArtistID           *int64  `json:"artist_id,omitempty" db:"artist_id"`
	Label              *string `json:"label,omitempty" db:"label"`
	BundleType         *string `json:"bundle_type,omitempty" db:"bundle_type"`
	MusicStyle         *string `json:"music_style,omitempty" db:"music_style"`
	DigitalReleaseDate *string `json:"digital_release_date,omitempty" db:"digital_release_date"`
	CoverImageURL      *string `json:"cover_image_url,omitempty" db:"cover_image_url"`
	ImgURL             *string `json:"img_url,omitempty" db:"img_url"`
	InternalReference  *string `json:"internal_reference,omitempty" db:"internal_reference"`
	TrackCount         *int    `json:"track_count,omitempty" db:"track_count"`
	BeatportSaleURL    *string `json:"beatport_sale_url,omitempty" db:"beatport_sale_url"`
	PurchaseLink       *string `json:"purchase_link,omitempty" db:"purchase_link"`
	ShareLink          *string `json:"share_link,omitempty" db:"share_link"`
	AudioFileURL       *string `json:"audio_file_url,omitempty" db:"audio_file_url"`
	Featured           bool    `json:"featured" db:"featured"`
	Upcoming           bool    `json:"upcoming" db:"upcoming"`
	Description        *string `json:"description,omitempty" db:"description"`
}

// NewContactSubmission holds the fields accepted from the contact form.
type NewContactSubmission struct {
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Subject string `json:"subject" db:"subject"`
	Message string `json:"message" db:"message"`
	Type    string `json:"type" db:"type"`
}
