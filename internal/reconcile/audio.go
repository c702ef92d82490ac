package reconcile

import (
	"path"
	"regexp"
	"strings"

	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
)

var schemeHost = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.\-]*://[^/?#]*`)

const audioPrefix = "audio/"

// NormalizeAudioPath turns a remote audio URL into a path relative to the
// client's audio base. The scheme and host are dropped, then leading slashes,
// then a single "audio/" segment. When nothing is left, the filename of the
// original URL is used as "<artist-slug>/<filename>" if it looks like audio.
// An empty result means no playable path could be derived.
func NormalizeAudioPath(rawURL, artist string) string {
	raw := strings.TrimSpace(rawURL)
	if raw == "" {
		return ""
	}

	p := stripQuery(schemeHost.ReplaceAllString(raw, ""))
	p = strings.TrimLeft(p, "/")
	p = strings.TrimPrefix(p, audioPrefix)
	if p != "" {
		return p
	}

	return fallbackAudioPath(raw, artist)
}

func fallbackAudioPath(raw, artist string) string {
	trimmed := stripQuery(raw)
	filename := trimmed[strings.LastIndex(trimmed, "/")+1:]
	if filename == "" || !hasAudioExt(filename) {
		return ""
	}
	if strings.TrimSpace(artist) == "" {
		return filename
	}
	return DeriveSlug(artist) + "/" + filename
}

func stripQuery(s string) string {
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		return s[:i]
	}
	return s
}

func hasAudioExt(filename string) bool {
	ext := strings.ToLower(path.Ext(filename))
	for _, candidate := range constants.AudioExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
