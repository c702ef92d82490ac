package audio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
)

// Finding is the audit result for one release.
type Finding struct {
	ReleaseID int64  `json:"releaseId"`
	Title     string `json:"title"`
	Path      string `json:"path,omitempty"`
	Exists    bool   `json:"exists"`
	Info      *Info  `json:"info,omitempty"`
	Problem   string `json:"problem,omitempty"`
}

// OK reports whether the release has a readable preview whose tags agree
// with the catalog.
func (f Finding) OK() bool {
	return f.Problem == ""
}

// Audit checks that every release's audioFilePath resolves to a file under
// dir and that its tags look right.
func Audit(releases []domain.Release, dir string) []Finding {
	findings := make([]Finding, 0, len(releases))
	for _, r := range releases {
		findings = append(findings, auditRelease(r, dir))
	}
	return findings
}

func auditRelease(r domain.Release, dir string) Finding {
	f := Finding{ReleaseID: r.ID, Title: r.Title}
	if r.AudioFilePath == nil || *r.AudioFilePath == "" {
		f.Problem = "no audio path"
		return f
	}

	full, err := resolve(dir, *r.AudioFilePath)
	if err != nil {
		f.Problem = err.Error()
		return f
	}
	f.Path = full

	if !exists(full) {
		f.Problem = "file missing"
		return f
	}
	f.Exists = true

	info, err := Probe(full)
	switch {
	case errors.Is(err, ErrUnsupportedFormat):
		return f
	case err != nil:
		f.Problem = fmt.Sprintf("unreadable: %v", err)
		return f
	}
	f.Info = info

	if info.Title != "" && !strings.EqualFold(info.Title, r.Title) {
		f.Problem = fmt.Sprintf("tag title %q does not match %q", info.Title, r.Title)
	}
	return f
}

// resolve joins rel onto dir and rejects paths that escape it.
func resolve(dir, rel string) (string, error) {
	full := filepath.Join(dir, filepath.FromSlash(rel))
	back, err := filepath.Rel(dir, full)
	if err != nil || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the audio directory", rel)
	}
	return full, nil
}
