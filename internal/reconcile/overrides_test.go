package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

func TestDefaultOverrides(t *testing.T) {
	o := DefaultOverrides()
	require.NotNil(t, o)

	idx := NewIndex(o)
	releases, artists := idx.Len()
	assert.Equal(t, 5, releases)
	assert.Equal(t, 2, artists)

	match, tier := idx.Release(domain.Release{Slug: "stormdrifter", Title: "Stormdrifter"})
	require.NotNil(t, match)
	assert.Equal(t, MatchSlug, tier)
	assert.Equal(t, "TH019", *match.InternalReference)
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "overrides.yaml")
	content := `
releases:
  - slug: night-drive
    featured: true
artists:
  - name: Luna
    bio: Curated bio
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	o, err := LoadOverrides(path)
	require.NoError(t, err)
	require.Len(t, o.Releases, 1)
	assert.True(t, *o.Releases[0].Featured)
	require.Len(t, o.Artists, 1)
	assert.Equal(t, "Curated bio", *o.Artists[0].Bio)
}

func TestLoadOverridesErrors(t *testing.T) {
	_, err := LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = ParseOverrides([]byte("releases: [unclosed"))
	assert.Error(t, err)
}

func TestIndexReleaseTiers(t *testing.T) {
	idx := NewIndex(&Overrides{Releases: []ReleaseOverride{
		{Slug: strPtr("exact-one"), Description: strPtr("slug")},
		{Slug: strPtr("nd-special"), Title: strPtr("Night Drive"), Description: strPtr("title")},
		{Slug: strPtr("aurora"), Description: strPtr("contains")},
		{Slug: strPtr("zzz-unrelated"), BundleID: strPtr("555"), Description: strPtr("bundle")},
	}})

	tests := []struct {
		name    string
		release domain.Release
		want    string
		tier    MatchTier
	}{
		{"exact slug", domain.Release{Slug: "exact-one", Title: "Exact One"}, "slug", MatchSlug},
		{"normalized title", domain.Release{Slug: "night-drive", Title: "Night Drive!"}, "title", MatchTitle},
		{"canonical contains override", domain.Release{Slug: "aurora-ep-remastered", Title: "Aurora EP Remastered"}, "contains", MatchContains},
		{"override contains canonical", domain.Release{Slug: "zzz", Title: "ZZZ"}, "bundle", MatchContains},
		{"bundle id", domain.Release{Slug: "something", Title: "Something", BundleID: strPtr("555")}, "bundle", MatchBundleID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, tier := idx.Release(tt.release)
			require.NotNil(t, match)
			assert.Equal(t, tt.want, *match.Description)
			assert.Equal(t, tt.tier, tier)
		})
	}

	match, tier := idx.Release(domain.Release{Slug: "different", Title: "Different", BundleID: strPtr("999")})
	assert.Nil(t, match)
	assert.Equal(t, NoMatch, tier)
}

func TestIndexReleaseFirstMatchWins(t *testing.T) {
	idx := NewIndex(&Overrides{Releases: []ReleaseOverride{
		{Slug: strPtr("ritual"), Description: strPtr("first")},
		{Slug: strPtr("ritual"), Description: strPtr("second")},
	}})

	match, _ := idx.Release(domain.Release{Slug: "ritual", Title: "Ritual"})
	require.NotNil(t, match)
	assert.Equal(t, "first", *match.Description)
}

// Containment is best effort: an override for "ritual" attaches to any
// release whose slug carries the whole word.
func TestIndexReleaseContainmentIsLoose(t *testing.T) {
	idx := NewIndex(&Overrides{Releases: []ReleaseOverride{{Slug: strPtr("ritual")}}})

	match, tier := idx.Release(domain.Release{Slug: "ritual-live-in-lisbon", Title: "Ritual (Live in Lisbon)"})
	assert.NotNil(t, match)
	assert.Equal(t, MatchContains, tier)
}

func TestIndexReleaseContainmentWholeWords(t *testing.T) {
	idx := NewIndex(DefaultOverrides())

	tests := []struct {
		name string
		slug string
	}{
		{"single letter", "a"},
		{"two letters", "ep"},
		{"word fragment", "spiritual-journey"},
		{"prefix of a word", "storm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, tier := idx.Release(domain.Release{Slug: tt.slug, Title: tt.slug})
			assert.Nil(t, match)
			assert.Equal(t, NoMatch, tier)
		})
	}
}

func TestIndexArtistTiers(t *testing.T) {
	idx := NewIndex(&Overrides{Artists: []ArtistOverride{
		{Slug: strPtr("rafa-kao"), Bio: strPtr("by slug")},
		{Slug: strPtr("guri-official"), Name: strPtr("GURI"), Bio: strPtr("by name")},
		{Name: strPtr("Luna Park"), Bio: strPtr("derived slug")},
	}})

	match, tier := idx.Artist(domain.Artist{Slug: "rafa-kao", Name: "Rafa Kao"})
	require.NotNil(t, match)
	assert.Equal(t, MatchSlug, tier)
	assert.Equal(t, "by slug", *match.Bio)

	match, tier = idx.Artist(domain.Artist{Slug: "guri", Name: "Guri"})
	require.NotNil(t, match)
	assert.Equal(t, MatchName, tier)
	assert.Equal(t, "by name", *match.Bio)

	match, tier = idx.Artist(domain.Artist{Slug: "luna-park", Name: "Luna Park"})
	require.NotNil(t, match)
	assert.Equal(t, MatchSlug, tier)

	match, tier = idx.Artist(domain.Artist{Slug: "nobody", Name: "Nobody"})
	assert.Nil(t, match)
	assert.Equal(t, NoMatch, tier)
}

func TestNilIndex(t *testing.T) {
	var idx *Index
	match, tier := idx.Release(domain.Release{Slug: "x"})
	assert.Nil(t, match)
	assert.Equal(t, NoMatch, tier)

	empty := NewIndex(nil)
	artist, _ := empty.Artist(domain.Artist{Slug: "x", Name: "X"})
	assert.Nil(t, artist)
}

func TestMatchTierString(t *testing.T) {
	assert.Equal(t, "slug", MatchSlug.String())
	assert.Equal(t, "contains", MatchContains.String())
	assert.Equal(t, "none", NoMatch.String())
}
