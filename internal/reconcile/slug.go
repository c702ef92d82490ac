// Package reconcile maps remote catalog records into the canonical content
// model and merges curated overrides into them.
package reconcile

import (
	"regexp"
	"strings"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
)

var (
	nonSlugChars  = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRun = regexp.MustCompile(`\s+`)
)

// DeriveSlug lowercases s, drops everything outside [a-z0-9] and whitespace,
// and joins the remaining words with single hyphens. Input that leaves no
// word characters yields "untitled".
func DeriveSlug(s string) string {
	stripped := nonSlugChars.ReplaceAllString(strings.ToLower(s), "")
	slug := whitespaceRun.ReplaceAllString(strings.TrimSpace(stripped), "-")
	if slug == "" {
		return constants.UntitledSlug
	}
	return slug
}
