package httpapp

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/LXMachado/tinnie-house-revamp/internal/app"
	"github.com/LXMachado/tinnie-house-revamp/internal/constants"
	"github.com/LXMachado/tinnie-house-revamp/internal/logger"
)

type Handler struct {
	Content      *app.ContentService
	Logger       *logger.Logger
	Env          string
	Version      string
	AudioDir     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func NewHandler(content *app.ContentService, log *logger.Logger) *Handler {
	if log == nil {
		log = logger.Default()
	}
	return &Handler{
		Content:      content,
		Logger:       log.WithComponent("http"),
		Env:          constants.DefaultEnv,
		Version:      constants.DefaultAPIVersion,
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
	}
}

// Router builds the full HTTP surface: health, the JSON API and audio assets.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors)

	r.Get("/health", h.Health)
	h.RegisterRoutes(r)

	if h.AudioDir != "" {
		fs := http.StripPrefix("/assets/", http.FileServer(http.Dir(h.AudioDir)))
		r.Handle("/assets/*", fs)
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed", nil)
	})
	return r
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Use(h.requestLogger)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(h.ReadTimeout))

			r.Get("/", h.APIInfo)
			r.Get("/artists", h.ListArtists)
			r.Get("/artists/{id}", h.GetArtist)
			r.Get("/releases", h.ListReleases)
			r.Get("/releases/featured", h.FeaturedReleases)
			r.Get("/releases/catalog", h.CatalogReleases)
			r.Get("/releases/latest", h.LatestRelease)
			r.Get("/releases/{id}", h.GetRelease)
			r.Get("/contact", h.ListContactSubmissions)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(h.WriteTimeout))

			r.Post("/artists", h.CreateArtist)
			r.Post("/releases", h.CreateRelease)
			r.Post("/contact", h.SubmitContact)
		})
	})
}
