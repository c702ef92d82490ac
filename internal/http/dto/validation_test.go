package dto

import (
	"strings"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{Field: "title", Message: "title is required"}
	if err.Error() != "title: title is required" {
		t.Errorf("Error() = %q, want %q", err.Error(), "title: title is required")
	}
}

func TestValidationError_ToMap(t *testing.T) {
	err := ValidationError{Field: "email", Message: "Invalid email format"}
	m := err.ToMap()
	if m["email"] != "Invalid email format" {
		t.Errorf("ToMap() = %v, want {email: Invalid email format}", m)
	}
}

func TestToMap(t *testing.T) {
	errs := []ValidationError{
		{Field: "title", Message: "title is required"},
		{Field: "track_count", Message: "must be between 0 and 999"},
	}
	m := ToMap(errs)
	if len(m) != 2 {
		t.Errorf("ToMap() returned %d items, want 2", len(m))
	}
	if m["track_count"] != "must be between 0 and 999" {
		t.Errorf("ToMap()[track_count] = %q", m["track_count"])
	}
}

func TestToResponse(t *testing.T) {
	errs := []ValidationError{
		{Field: "title", Message: "title is required"},
		{Field: "artist", Message: "artist is required"},
	}
	resp := ToResponse(errs)
	expected := "title: title is required; artist: artist is required"
	if resp != expected {
		t.Errorf("ToResponse() = %q, want %q", resp, expected)
	}
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email    string
		name     string
		wantErrs int
	}{
		{"", "empty email is left to the required check", 0},
		{"ana@example.com", "valid email", 0},
		{"a.b+demo@label.co.uk", "valid email with subdomains", 0},
		{"ana@example", "missing tld", 1},
		{"ana example@x.com", "contains space", 1},
		{"@example.com", "missing local part", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateEmail(tt.email)
			if len(errs) != tt.wantErrs {
				t.Errorf("validateEmail() returned %d errors, want %d", len(errs), tt.wantErrs)
			}
		})
	}
}

func TestValidateReleaseDate(t *testing.T) {
	tests := []struct {
		date     *string
		name     string
		wantErrs int
	}{
		{nil, "nil date", 0},
		{strPtr(""), "empty date", 0},
		{strPtr("2025-06-30"), "valid YYYY-MM-DD", 0},
		{strPtr("2025"), "invalid - year only", 1},
		{strPtr("2025-06-30T10:30:00Z"), "invalid - full ISO", 1},
		{strPtr("30-06-2025"), "invalid - wrong order", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateReleaseDate("digital_release_date", tt.date)
			if len(errs) != tt.wantErrs {
				t.Errorf("validateReleaseDate() returned %d errors, want %d", len(errs), tt.wantErrs)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url      *string
		name     string
		wantErrs int
	}{
		{nil, "nil url", 0},
		{strPtr(""), "empty url", 0},
		{strPtr("https://www.beatport.com/release/stormdrifter/1"), "valid https", 0},
		{strPtr("not a url"), "invalid url", 1},
		{strPtr("example.com/cover.jpg"), "invalid - missing scheme", 1},
		{strPtr("/audio/guri/ritual.mp3"), "invalid - path only", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateURL("share_link", tt.url)
			if len(errs) != tt.wantErrs {
				t.Errorf("validateURL() returned %d errors, want %d", len(errs), tt.wantErrs)
			}
		})
	}
}

func TestValidateTrackCount(t *testing.T) {
	tests := []struct {
		count    *int
		name     string
		wantErrs int
	}{
		{nil, "nil count", 0},
		{intPtr(1), "single", 0},
		{intPtr(12), "album", 0},
		{intPtr(-1), "negative", 1},
		{intPtr(1000), "too many", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := validateTrackCount(tt.count)
			if len(errs) != tt.wantErrs {
				t.Errorf("validateTrackCount() returned %d errors, want %d", len(errs), tt.wantErrs)
			}
		})
	}
}

func TestContactRequest_Validate(t *testing.T) {
	valid := ContactRequest{Name: "Ana", Email: "ana@example.com", Subject: "Demo", Message: "Listen"}
	if errs := valid.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	missing := ContactRequest{Name: "Ana", Email: "ana@example.com", Message: "Listen"}
	errs := missing.Validate()
	if len(errs) != 1 || errs[0].Message != "subject is required" {
		t.Errorf("Expected subject is required, got %v", errs)
	}

	badEmail := valid
	badEmail.Email = "ana-at-example.com"
	errs = badEmail.Validate()
	if len(errs) != 1 || errs[0].Message != "Invalid email format" {
		t.Errorf("Expected Invalid email format, got %v", errs)
	}

	blank := ContactRequest{Name: "  "}
	if errs := blank.Validate(); len(errs) != 4 {
		t.Errorf("Expected 4 required errors, got %d", len(errs))
	}
}

func TestContactRequest_ToDomain(t *testing.T) {
	req := ContactRequest{Name: " Ana ", Email: " ana@example.com ", Subject: "Demo", Message: "Listen\n", Type: "demo"}
	sub := req.ToDomain()
	if sub.Name != "Ana" || sub.Email != "ana@example.com" {
		t.Errorf("Expected trimmed name and email, got %q %q", sub.Name, sub.Email)
	}
	if sub.Message != "Listen\n" {
		t.Errorf("Expected message untouched, got %q", sub.Message)
	}
}

func TestArtistRequest_Validate(t *testing.T) {
	req := ArtistRequest{Name: "GURI", SocialLinks: strPtr(`{"instagram":"https://instagram.com/guri"}`)}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	req = ArtistRequest{SocialLinks: strPtr(`["not","an","object"]`), ImageURL: strPtr("guri.jpg")}
	errs := req.Validate()
	fields := ToMap(errs)
	for _, f := range []string{"name", "social_links", "image_url"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("Expected an error for %s, got %v", f, fields)
		}
	}
}

func TestReleaseRequest_Validate(t *testing.T) {
	req := ReleaseRequest{
		Title:              "Stormdrifter",
		Artist:             "Rafa Kao",
		DigitalReleaseDate: strPtr("2025-06-30"),
		AudioFileURL:       strPtr("https://host/audio/rafa-kao/stormdrifter.mp3"),
		TrackCount:         intPtr(2),
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("Expected no errors, got %v", errs)
	}

	req = ReleaseRequest{DigitalReleaseDate: strPtr("June 30"), PurchaseLink: strPtr("buy here")}
	resp := ToResponse(req.Validate())
	for _, want := range []string{"title is required", "artist is required", "digital_release_date", "purchase_link"} {
		if !strings.Contains(resp, want) {
			t.Errorf("Expected %q in %q", want, resp)
		}
	}
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2025, 6, 30, 12, 0, 0, 5_000_000, time.FixedZone("CEST", 2*3600))
	if got := Timestamp(ts); got != "2025-06-30T10:00:00.005Z" {
		t.Errorf("Timestamp() = %q", got)
	}
}
