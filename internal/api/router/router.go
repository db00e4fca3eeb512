package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lyrixdigital/lyrix-api/internal/contact"
	"github.com/lyrixdigital/lyrix-api/internal/content"
	httpmiddleware "github.com/lyrixdigital/lyrix-api/internal/http/middleware"
	"github.com/lyrixdigital/lyrix-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	ContactHandler     *contact.Handler
	ContentHandler     *content.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.ContactHandler != nil {
			rps := cfg.RateLimitRPS
			burst := cfg.RateLimitBurst
			if rps <= 0 {
				rps = 0.5
			}
			if burst <= 0 {
				burst = 5
			}
			api.With(httpmiddleware.RateLimit(rps, burst)).Post("/contact", cfg.ContactHandler.Submit)
		}
		if cfg.ContentHandler != nil {
			api.Route("/content", func(c chi.Router) {
				c.Get("/projects", cfg.ContentHandler.GetProjects)
				c.Get("/pricing", cfg.ContentHandler.GetPricing)
				c.Get("/reviews", cfg.ContentHandler.GetReviews)
				c.Get("/faq", cfg.ContentHandler.GetFAQ)
			})
		}
	})

	return r
}
