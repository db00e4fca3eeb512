package contact

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/lyrixdigital/lyrix-api/internal/captcha"
	"github.com/lyrixdigital/lyrix-api/internal/notify"
	"github.com/lyrixdigital/lyrix-api/internal/observability/metrics"
	"github.com/lyrixdigital/lyrix-api/pkg/logging"
)

const maxBodyBytes = 64 << 10

// Handler orchestrates the server-side trust boundary for contact form
// submissions: validate, filter bots, verify proof-of-humanity, dispatch the
// lead notification email. Each request is processed independently; the
// handler holds no mutable state.
type Handler struct {
	sender       notify.EmailSender
	verifier     captcha.Verifier // nil disables CAPTCHA enforcement
	inbox        string
	emailTimeout time.Duration
	metrics      *metrics.ContactMetrics
	logger       *logging.Logger
	now          func() time.Time
}

// HandlerConfig holds the handler's collaborators and settings.
type HandlerConfig struct {
	Sender       notify.EmailSender
	Verifier     captcha.Verifier
	InboxEmail   string
	EmailTimeout time.Duration
	Metrics      *metrics.ContactMetrics
}

// NewHandler creates a contact submission handler.
func NewHandler(cfg HandlerConfig, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.EmailTimeout <= 0 {
		cfg.EmailTimeout = 10 * time.Second
	}
	return &Handler{
		sender:       cfg.Sender,
		verifier:     cfg.Verifier,
		inbox:        cfg.InboxEmail,
		emailTimeout: cfg.EmailTimeout,
		metrics:      cfg.Metrics,
		logger:       logger,
		now:          time.Now,
	}
}

type errorResponse struct {
	Error  string  `json:"error"`
	Issues []Issue `json:"issues,omitempty"`
}

type successResponse struct {
	Success bool `json:"success"`
}

// Submit handles POST /api/contact.
//
// Steps run strictly in order so cheap gates short-circuit before any network
// call: parse, validate, honeypot, CAPTCHA, email build, dispatch.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		h.metrics.ObserveSubmission(metrics.OutcomeMalformed)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	sub, err := ParseAndValidate(raw)
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			h.metrics.ObserveSubmission(metrics.OutcomeInvalid)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed.", Issues: verr.Issues})
			return
		}
		h.metrics.ObserveSubmission(metrics.OutcomeMalformed)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid request body."})
		return
	}

	// A populated honeypot means automation. Fake success so the bot never
	// learns it was detected; no CAPTCHA call, no email.
	if sub.IsBot() {
		h.metrics.ObserveSubmission(metrics.OutcomeBot)
		h.logger.Info("honeypot triggered, faking success", "remote_ip", remoteIP(r))
		writeJSON(w, http.StatusOK, successResponse{Success: true})
		return
	}

	if h.verifier != nil {
		if sub.CaptchaToken == "" {
			h.metrics.ObserveSubmission(metrics.OutcomeCaptchaFailed)
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "Security verification required."})
			return
		}
		ok, err := h.verifier.Verify(r.Context(), sub.CaptchaToken, remoteIP(r))
		if err != nil {
			h.metrics.ObserveSubmission(metrics.OutcomeCaptchaError)
			h.logger.Error("captcha verification errored", "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Unexpected server error."})
			return
		}
		if !ok {
			h.metrics.ObserveSubmission(metrics.OutcomeCaptchaFailed)
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "Security verification failed."})
			return
		}
	}

	if h.sender == nil {
		h.metrics.ObserveSubmission(metrics.OutcomeMisconfigured)
		h.logger.Error("email sender not configured, dropping lead")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Server configuration error."})
		return
	}

	lead := BuildLeadEmail(sub, h.now())

	ctx, cancel := context.WithTimeout(r.Context(), h.emailTimeout)
	defer cancel()

	start := time.Now()
	sendErr := h.sender.Send(ctx, notify.EmailMessage{
		To:      h.inbox,
		ReplyTo: sub.Email,
		Subject: lead.Subject,
		HTML:    lead.HTML,
	})
	h.metrics.ObserveEmailSend(time.Since(start).Seconds())

	if sendErr != nil {
		// No retry queue: a failed dispatch loses the lead unless the
		// visitor resubmits.
		h.metrics.ObserveSubmission(metrics.OutcomeEmailFailed)
		h.logger.Error("lead email dispatch failed", "error", sendErr)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Failed to send email."})
		return
	}

	h.metrics.ObserveSubmission(metrics.OutcomeAccepted)
	h.logger.Info("lead captured", "name", sub.Name, "sector", sub.Sector, "lang", sub.Lang)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func remoteIP(r *http.Request) string {
	// chi's RealIP middleware rewrites RemoteAddr from X-Forwarded-For /
	// X-Real-Ip, usually leaving no port behind.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
