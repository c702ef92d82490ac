package reconcile

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"gopkg.in/yaml.v3"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

//go:embed overrides.yaml
var defaultOverridesYAML []byte

// ReleaseOverride is a curated release. Nil fields leave the remote value alone.
type ReleaseOverride struct {
	Slug               *string `yaml:"slug"`
	Title              *string `yaml:"title"`
	Artist             *string `yaml:"artist"`
	ArtistSlug         *string `yaml:"artist_slug"`
	BundleID           *string `yaml:"bundle_id"`
	Label              *string `yaml:"label"`
	BundleType         *string `yaml:"bundle_type"`
	MusicStyle         *string `yaml:"music_style"`
	DigitalReleaseDate *string `yaml:"digital_release_date"`
	InternalReference  *string `yaml:"internal_reference"`
	TrackCount         *int    `yaml:"track_count"`
	CoverImageURL      *string `yaml:"cover_image_url"`
	ImgURL             *string `yaml:"img_url"`
	BeatportSaleURL    *string `yaml:"beatport_sale_url"`
	PurchaseLink       *string `yaml:"purchase_link"`
	ShareLink          *string `yaml:"share_link"`
	AudioFilePath      *string `yaml:"audio_file_path"`
	Featured           *bool   `yaml:"featured"`
	Upcoming           *bool   `yaml:"upcoming"`
	IsLatest           *bool   `yaml:"is_latest"`
	Description        *string `yaml:"description"`
}

// ArtistOverride is a curated artist. Nil fields leave the remote value alone.
type ArtistOverride struct {
	Slug        *string            `yaml:"slug"`
	Name        *string            `yaml:"name"`
	Genre       *string            `yaml:"genre"`
	ImageURL    *string            `yaml:"image_url"`
	Bio         *string            `yaml:"bio"`
	SocialLinks domain.SocialLinks `yaml:"social_links"`
}

// Overrides is the on-disk override document.
type Overrides struct {
	Releases []ReleaseOverride `yaml:"releases"`
	Artists  []ArtistOverride  `yaml:"artists"`
}

// ParseOverrides decodes an override document.
func ParseOverrides(data []byte) (*Overrides, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse overrides: %w", err)
	}
	return &o, nil
}

// LoadOverrides reads an override document from path.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides: %w", err)
	}
	return ParseOverrides(data)
}

// DefaultOverrides returns the override set bundled with the binary.
func DefaultOverrides() *Overrides {
	o, err := ParseOverrides(defaultOverridesYAML)
	if err != nil {
		panic(err)
	}
	return o
}

// MatchTier records which rule paired a record with its override.
type MatchTier int

const (
	NoMatch MatchTier = iota
	MatchSlug
	MatchTitle
	MatchContains
	MatchBundleID
	MatchName
)

func (t MatchTier) String() string {
	switch t {
	case MatchSlug:
		return "slug"
	case MatchTitle:
		return "title"
	case MatchContains:
		return "contains"
	case MatchBundleID:
		return "bundle_id"
	case MatchName:
		return "name"
	default:
		return "none"
	}
}

// Index is a read-only lookup structure over an override set. It is safe
// for concurrent use once built.
type Index struct {
	releases []ReleaseOverride
	artists  []ArtistOverride

	releaseSlugs    []string
	releaseBySlug   map[string]int
	releaseByTitle  map[string]int
	releaseByBundle map[string]int

	artistBySlug map[string]int
	artistByName map[string]int
}

// NewIndex builds an index. When two overrides share a key the earlier one wins.
func NewIndex(o *Overrides) *Index {
	idx := &Index{
		releaseBySlug:   make(map[string]int),
		releaseByTitle:  make(map[string]int),
		releaseByBundle: make(map[string]int),
		artistBySlug:    make(map[string]int),
		artistByName:    make(map[string]int),
	}
	if o == nil {
		return idx
	}

	idx.releases = o.Releases
	idx.artists = o.Artists

	idx.releaseSlugs = make([]string, len(o.Releases))
	for i, r := range o.Releases {
		slug := releaseOverrideSlug(r)
		idx.releaseSlugs[i] = slug
		putFirst(idx.releaseBySlug, slug, i)
		if r.Title != nil {
			putFirst(idx.releaseByTitle, DeriveSlug(*r.Title), i)
		}
		if r.BundleID != nil {
			putFirst(idx.releaseByBundle, *r.BundleID, i)
		}
	}

	for i, a := range o.Artists {
		switch {
		case a.Slug != nil && *a.Slug != "":
			putFirst(idx.artistBySlug, *a.Slug, i)
		case a.Name != nil:
			putFirst(idx.artistBySlug, DeriveSlug(*a.Name), i)
		}
		if a.Name != nil {
			putFirst(idx.artistByName, foldName(*a.Name), i)
		}
	}

	return idx
}

// Release finds the override for a canonical release. Tiers are tried in
// order: exact slug, title-derived slug, slug containment, bundle id.
// Containment compares whole hyphen-separated words and ignores slugs
// shorter than minContainsLen. It is still a loose heuristic and can pair
// unrelated releases that share a word.
func (idx *Index) Release(r domain.Release) (*ReleaseOverride, MatchTier) {
	if idx == nil || len(idx.releases) == 0 {
		return nil, NoMatch
	}

	if i, ok := idx.releaseBySlug[r.Slug]; ok {
		return &idx.releases[i], MatchSlug
	}
	if i, ok := idx.releaseByTitle[DeriveSlug(r.Title)]; ok {
		return &idx.releases[i], MatchTitle
	}
	if r.Slug != "" {
		for i, slug := range idx.releaseSlugs {
			if slug == "" {
				continue
			}
			if containsWords(r.Slug, slug) || containsWords(slug, r.Slug) {
				return &idx.releases[i], MatchContains
			}
		}
	}
	if r.BundleID != nil && *r.BundleID != "" {
		if i, ok := idx.releaseByBundle[*r.BundleID]; ok {
			return &idx.releases[i], MatchBundleID
		}
	}
	return nil, NoMatch
}

// Artist finds the override for a canonical artist by slug, then by
// case-insensitive name.
func (idx *Index) Artist(a domain.Artist) (*ArtistOverride, MatchTier) {
	if idx == nil || len(idx.artists) == 0 {
		return nil, NoMatch
	}
	if i, ok := idx.artistBySlug[a.Slug]; ok {
		return &idx.artists[i], MatchSlug
	}
	if i, ok := idx.artistByName[foldName(a.Name)]; ok {
		return &idx.artists[i], MatchName
	}
	return nil, NoMatch
}

// Len returns the number of release and artist overrides.
func (idx *Index) Len() (releases, artists int) {
	if idx == nil {
		return 0, 0
	}
	return len(idx.releases), len(idx.artists)
}

// minContainsLen keeps one and two letter slugs out of the containment tier.
const minContainsLen = 3

// containsWords reports whether the words of sub appear as a contiguous run
// of the words of slug.
func containsWords(slug, sub string) bool {
	if len(sub) < minContainsLen {
		return false
	}
	return strings.Contains("-"+slug+"-", "-"+sub+"-")
}

func releaseOverrideSlug(r ReleaseOverride) string {
	if r.Slug != nil && *r.Slug != "" {
		return *r.Slug
	}
	if r.Title != nil {
		return DeriveSlug(*r.Title)
	}
	return ""
}

// foldName builds a fresh Caser per call since a Caser is not safe to share.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func putFirst(m map[string]int, key string, i int) {
	if key == "" {
		return
	}
	if _, exists := m[key]; !exists {
		m[key] = i
	}
}
