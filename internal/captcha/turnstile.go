// Package captcha verifies proof-of-humanity tokens against Cloudflare
// Turnstile's siteverify API.
package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lyrixdigital/lyrix-api/pkg/logging"
)

// DefaultVerifyURL is Cloudflare Turnstile's production siteverify endpoint.
const DefaultVerifyURL = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

const defaultTimeout = 10 * time.Second

// Verifier checks a CAPTCHA token issued to the browser widget.
// Verify returns (false, nil) when the service cleanly rejects the token and
// a non-nil error only for transport or protocol failures.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) (bool, error)
}

// TurnstileVerifier verifies tokens against Cloudflare Turnstile.
type TurnstileVerifier struct {
	secret    string
	verifyURL string
	client    *http.Client
	logger    *logging.Logger
}

// TurnstileConfig holds configuration for the Turnstile verifier.
type TurnstileConfig struct {
	Secret    string
	VerifyURL string // defaults to DefaultVerifyURL
	Timeout   time.Duration
}

// NewTurnstileVerifier creates a Turnstile verifier. Returns nil when no
// secret is configured, which disables CAPTCHA enforcement entirely.
func NewTurnstileVerifier(cfg TurnstileConfig, logger *logging.Logger) *TurnstileVerifier {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.VerifyURL == "" {
		cfg.VerifyURL = DefaultVerifyURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &TurnstileVerifier{
		secret:    cfg.Secret,
		verifyURL: cfg.VerifyURL,
		client:    &http.Client{Timeout: cfg.Timeout},
		logger:    logger,
	}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify submits the token and the caller's IP to siteverify.
func (v *TurnstileVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
		"remoteip": {remoteIP},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return false, fmt.Errorf("captcha: build siteverify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("captcha: siteverify request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("captcha: siteverify returned status %d", resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, fmt.Errorf("captcha: decode siteverify response: %w", err)
	}

	if !result.Success {
		v.logger.Warn("turnstile verification failed", "error_codes", result.ErrorCodes)
		return false, nil
	}
	return true, nil
}

var _ Verifier = (*TurnstileVerifier)(nil)
