package httpapp

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/LXMachado/tinnie-house-revamp/internal/app"
	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/http/dto"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.HealthResponse{
		Status:    "healthy",
		Timestamp: dto.Timestamp(time.Now()),
		Env:       h.Env,
		Version:   h.Version,
	})
}

func (h *Handler) APIInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dto.APIInfoResponse{
		Message: constants.APIMessage,
		Version: h.Version,
	})
}

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Content.Artists(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch artists", err)
		return
	}
	writeJSON(w, http.StatusOK, artists)
}

func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid artist ID", nil)
		return
	}
	artist, err := h.Content.Artist(r.Context(), id)
	if errors.Is(err, app.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Artist not found", nil)
		return
	}
	if err != nil {
		h.serverError(w, r, "Failed to fetch artist", err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}

func (h *Handler) ListReleases(w http.ResponseWriter, r *http.Request) {
	releases, err := h.Content.Releases(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch releases", err)
		return
	}
	writeJSON(w, http.StatusOK, releases)
}

func (h *Handler) FeaturedReleases(w http.ResponseWriter, r *http.Request) {
	releases, err := h.Content.FeaturedReleases(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch featured releases", err)
		return
	}
	writeJSON(w, http.StatusOK, releases)
}

func (h *Handler) CatalogReleases(w http.ResponseWriter, r *http.Request) {
	releases, err := h.Content.CatalogReleases(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch catalog releases", err)
		return
	}
	writeJSON(w, http.StatusOK, releases)
}

func (h *Handler) LatestRelease(w http.ResponseWriter, r *http.Request) {
	release, err := h.Content.LatestRelease(r.Context())
	if errors.Is(err, app.ErrNotFound) {
		writeError(w, http.StatusNotFound, "No latest release found", nil)
		return
	}
	if err != nil {
		h.serverError(w, r, "Failed to fetch latest release", err)
		return
	}
	writeJSON(w, http.StatusOK, release)
}

func (h *Handler) GetRelease(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid release ID", nil)
		return
	}
	release, err := h.Content.Release(r.Context(), id)
	if errors.Is(err, app.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Release not found", nil)
		return
	}
	if err != nil {
		h.serverError(w, r, "Failed to fetch release", err)
		return
	}
	writeJSON(w, http.StatusOK, release)
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var req dto.ArtistRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	created, err := h.Content.CreateArtist(r.Context(), req.ToDomain())
	if err != nil {
		h.createError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) CreateRelease(w http.ResponseWriter, r *http.Request) {
	var req dto.ReleaseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	created, err := h.Content.CreateRelease(r.Context(), req.ToDomain())
	if err != nil {
		h.createError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		writeValidation(w, errs)
		return
	}
	created, err := h.Content.SubmitContact(r.Context(), req.ToDomain())
	if err != nil {
		if errors.Is(err, app.ErrReadOnly) {
			writeError(w, http.StatusServiceUnavailable, "Contact form is unavailable", nil)
			return
		}
		h.serverError(w, r, "Failed to submit contact form", err)
		return
	}
	writeJSON(w, http.StatusCreated, dto.ContactCreatedResponse{
		Message: "Contact form submitted successfully",
		ID:      created.ID,
	})
}

func (h *Handler) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := h.Content.ContactSubmissions(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch contact submissions", err)
		return
	}
	writeJSON(w, http.StatusOK, submissions)
}

// createError reports a failed raw insert. Store rejections (constraint
// violations, remote API errors) are the caller's problem and get a 400.
func (h *Handler) createError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, app.ErrReadOnly) {
		writeError(w, http.StatusServiceUnavailable, "Content source is read-only", nil)
		return
	}
	h.Logger.WithRequest(r.Method, r.URL.Path).Warn("Create rejected", "error", err)
	writeError(w, http.StatusBadRequest, err.Error(), nil)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	h.Logger.WithRequest(r.Method, r.URL.Path).Error(msg, "error", err)
	var details map[string]string
	if h.Env != constants.EnvProduction {
		details = map[string]string{"cause": err.Error()}
	}
	writeError(w, http.StatusInternalServerError, msg, details)
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body", nil)
		return false
	}
	return true
}

func writeValidation(w http.ResponseWriter, errs []dto.ValidationError) {
	writeError(w, http.StatusBadRequest, errs[0].Message, dto.ToMap(errs))
}

func writeError(w http.ResponseWriter, status int, msg string, details map[string]string) {
	writeJSON(w, status, dto.NewErrorResponse(msg, details))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", constants.MimeTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
