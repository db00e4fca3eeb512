package content

import (
	"encoding/json"
	"net/http"

	"github.com/lyrixdigital/lyrix-api/internal/i18n"
	"github.com/lyrixdigital/lyrix-api/pkg/logging"
)

// Handler serves the compiled-in site content as localized JSON.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a content handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

// GetProjects handles GET /api/content/projects
func (h *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r)
	writeJSON(w, map[string]any{
		"label":    i18n.T(lang, "content.projects.label"),
		"projects": Projects(lang),
	})
}

// GetPricing handles GET /api/content/pricing
func (h *Handler) GetPricing(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r)
	writeJSON(w, map[string]any{
		"label": i18n.T(lang, "content.pricing.label"),
		"tiers": Pricing(lang),
	})
}

// GetReviews handles GET /api/content/reviews
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r)
	writeJSON(w, map[string]any{
		"label":   i18n.T(lang, "content.reviews.label"),
		"reviews": Reviews(lang),
	})
}

// GetFAQ handles GET /api/content/faq
func (h *Handler) GetFAQ(w http.ResponseWriter, r *http.Request) {
	lang := langFrom(r)
	writeJSON(w, map[string]any{
		"label": i18n.T(lang, "content.faq.label"),
		"items": FAQ(lang),
	})
}

func langFrom(r *http.Request) i18n.Lang {
	return i18n.Parse(r.URL.Query().Get("lang"))
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "public, max-age=300")
	json.NewEncoder(w).Encode(body)
}
