package httpapp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/LXMachado/tinnie-house-revamp/internal/app"
	"github.com/LXMachado/tinnie-house-revamp/internal/domain"
	"github.com/LXMachado/tinnie-house-revamp/internal/logger"
	"github.com/LXMachado/tinnie-house-revamp/internal/reconcile"
	"github.com/LXMachado/tinnie-house-revamp/internal/spotlight"
	"github.com/LXMachado/tinnie-house-revamp/internal/static"
	"github.com/LXMachado/tinnie-house-revamp/internal/store"
)

func strPtr(s string) *string { return &s }

func setupHandler(t *testing.T, src app.Source) *Handler {
	t.Helper()
	rec := reconcile.New(reconcile.NewIndex(reconcile.DefaultOverrides()), spotlight.NewHolder("10341902"))
	h := NewHandler(app.NewContentService(src, rec, logger.Discard()), logger.Discard())
	h.Version = "9.9.9"
	return h
}

func setupDBHandler(t *testing.T) (*Handler, *store.DB) {
	t.Helper()
	db, err := store.NewSQLiteDB(filepath.Join(t.TempDir(), "test_http.db"))
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return setupHandler(t, db), db
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealthAndInfo(t *testing.T) {
	router := setupHandler(t, static.New(static.Snapshot{})).Router()

	rec := do(t, router, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	health := decode[map[string]string](t, rec)
	if health["status"] != "healthy" || health["version"] != "9.9.9" || health["timestamp"] == "" {
		t.Errorf("Unexpected health payload: %v", health)
	}

	rec = do(t, router, http.MethodGet, "/api", nil)
	info := decode[map[string]string](t, rec)
	if info["message"] != "Tinnie House Records API" {
		t.Errorf("Unexpected info payload: %v", info)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := setupHandler(t, static.New(static.Snapshot{})).Router()

	rec := do(t, router, http.MethodOptions, "/api/releases", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("Expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("Expected wildcard origin")
	}
	if rec.Header().Get("Access-Control-Max-Age") != "86400" {
		t.Errorf("Expected 24h max age, got %q", rec.Header().Get("Access-Control-Max-Age"))
	}
}

func TestReleaseEndpoints(t *testing.T) {
	snap := static.Snapshot{
		Releases: []domain.ReleaseRecord{
			{ID: 19, BundleID: strPtr("10341902"), Title: strPtr("Stormdrifter"), Artist: strPtr("Rafa Kao"),
				AudioFileURL: strPtr("https://host/audio/rafa-kao/stormdrifter.mp3")},
			{ID: 30, Title: strPtr("Next Wave"), Artist: strPtr("GURI"), Upcoming: func() *bool { b := true; return &b }()},
		},
	}
	router := setupHandler(t, static.New(snap)).Router()

	rec := do(t, router, http.MethodGet, "/api/releases", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	releases := decode[[]domain.Release](t, rec)
	if len(releases) != 2 {
		t.Fatalf("Expected 2 releases, got %d", len(releases))
	}

	rec = do(t, router, http.MethodGet, "/api/releases/latest", nil)
	latest := decode[domain.Release](t, rec)
	if latest.ID != 19 || !latest.IsLatestRelease() {
		t.Errorf("Expected Stormdrifter as latest, got %+v", latest)
	}
	if latest.AudioFilePath == nil || *latest.AudioFilePath != "rafa-kao/stormdrifter.mp3" {
		t.Errorf("Expected normalized audio path, got %v", latest.AudioFilePath)
	}

	rec = do(t, router, http.MethodGet, "/api/releases/catalog", nil)
	catalog := decode[[]domain.Release](t, rec)
	if len(catalog) != 1 || catalog[0].ID != 19 {
		t.Errorf("Expected only released titles in catalog, got %+v", catalog)
	}

	rec = do(t, router, http.MethodGet, "/api/releases/featured", nil)
	if featured := decode[[]domain.Release](t, rec); len(featured) != 0 {
		t.Errorf("Expected no featured releases, got %d", len(featured))
	}

	rec = do(t, router, http.MethodGet, "/api/releases/30", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", rec.Code)
	}
}

func TestReleaseErrors(t *testing.T) {
	router := setupHandler(t, static.New(static.Snapshot{})).Router()

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{"bad release id", "/api/releases/abc", http.StatusBadRequest, "Invalid release ID"},
		{"missing release", "/api/releases/404", http.StatusNotFound, "Release not found"},
		{"no latest", "/api/releases/latest", http.StatusNotFound, "No latest release found"},
		{"bad artist id", "/api/artists/-1", http.StatusBadRequest, "Invalid artist ID"},
		{"missing artist", "/api/artists/7", http.StatusNotFound, "Artist not found"},
		{"unknown route", "/api/labels", http.StatusNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, router, http.MethodGet, tt.path, nil)
			if rec.Code != tt.status {
				t.Errorf("Expected %d, got %d", tt.status, rec.Code)
			}
			body := decode[map[string]any](t, rec)
			if body["error"] != tt.message {
				t.Errorf("Expected error %q, got %v", tt.message, body["error"])
			}
			if body["timestamp"] == "" {
				t.Error("Expected a timestamp")
			}
		})
	}
}

func TestCreateRelease(t *testing.T) {
	h, db := setupDBHandler(t)
	router := h.Router()

	rec := do(t, router, http.MethodPost, "/api/releases", map[string]any{
		"title":          "Stormdrifter",
		"artist":         "Rafa Kao",
		"bundle_id":      "10341902",
		"audio_file_url": "https://host/audio/rafa-kao/stormdrifter.mp3",
		"featured":       true,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[domain.ReleaseRecord](t, rec)
	if created.AudioFileURL == nil || *created.AudioFileURL != "https://host/audio/rafa-kao/stormdrifter.mp3" {
		t.Errorf("Expected raw row back, got %v", created.AudioFileURL)
	}

	stored, err := db.GetRelease(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetRelease failed: %v", err)
	}
	if stored.Featured == nil || !*stored.Featured {
		t.Error("Expected featured flag to be stored")
	}

	rec = do(t, router, http.MethodPost, "/api/releases", map[string]any{
		"title": "Duplicate", "artist": "Rafa Kao", "bundle_id": "10341902",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for constraint violation, got %d", rec.Code)
	}

	rec = do(t, router, http.MethodPost, "/api/releases", map[string]any{"artist": "Rafa Kao"})
	body := decode[map[string]any](t, rec)
	if rec.Code != http.StatusBadRequest || body["error"] != "title is required" {
		t.Errorf("Expected title is required, got %d %v", rec.Code, body)
	}
}

func TestCreateArtist(t *testing.T) {
	h, _ := setupDBHandler(t)
	router := h.Router()

	rec := do(t, router, http.MethodPost, "/api/artists", map[string]any{
		"name":         "GURI",
		"social_links": `{"instagram":"https://instagram.com/guri"}`,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = do(t, router, http.MethodGet, "/api/artists", nil)
	artists := decode[[]domain.Artist](t, rec)
	if len(artists) != 1 || artists[0].Slug != "guri" {
		t.Errorf("Expected reconciled artist guri, got %+v", artists)
	}

	rec = do(t, router, http.MethodPost, "/api/artists", "{broken")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid JSON, got %d", rec.Code)
	}
}

func TestContactEndpoints(t *testing.T) {
	h, _ := setupDBHandler(t)
	router := h.Router()

	rec := do(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name": "Ana", "email": "ana@example.com", "subject": "Demo", "message": "Please listen",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	created := decode[map[string]any](t, rec)
	if created["message"] != "Contact form submitted successfully" || created["id"] == nil {
		t.Errorf("Unexpected payload: %v", created)
	}

	rec = do(t, router, http.MethodPost, "/api/contact", map[string]string{
		"name": "Ana", "email": "not-an-email", "subject": "Demo", "message": "Hi",
	})
	body := decode[map[string]any](t, rec)
	if rec.Code != http.StatusBadRequest || body["error"] != "Invalid email format" {
		t.Errorf("Expected Invalid email format, got %d %v", rec.Code, body)
	}

	rec = do(t, router, http.MethodPost, "/api/contact", map[string]string{"email": "ana@example.com"})
	body = decode[map[string]any](t, rec)
	if body["error"] != "name is required" {
		t.Errorf("Expected name is required first, got %v", body["error"])
	}

	rec = do(t, router, http.MethodGet, "/api/contact", nil)
	subs := decode[[]domain.ContactSubmission](t, rec)
	if len(subs) != 1 || subs[0].Status != "pending" {
		t.Errorf("Expected one pending submission, got %+v", subs)
	}
}

func TestWritesOnReadOnlySource(t *testing.T) {
	router := setupHandler(t, static.New(static.Snapshot{})).Router()

	rec := do(t, router, http.MethodPost, "/api/artists", map[string]string{"name": "GURI"})
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", rec.Code)
	}
}

func TestAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "rafa-kao"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "rafa-kao", "stormdrifter.mp3"), []byte("ID3"), 0o644); err != nil {
		t.Fatal(err)
	}

	h := setupHandler(t, static.New(static.Snapshot{}))
	h.AudioDir = dir
	router := h.Router()

	rec := do(t, router, http.MethodGet, "/assets/rafa-kao/stormdrifter.mp3", nil)
	if rec.Code != http.StatusOK || rec.Body.String() != "ID3" {
		t.Errorf("Expected audio file, got %d %q", rec.Code, rec.Body.String())
	}
}
