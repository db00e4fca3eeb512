package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lyrixdigital/lyrix-api/cmd/mainconfig"
	"github.com/lyrixdigital/lyrix-api/internal/api/router"
	"github.com/lyrixdigital/lyrix-api/internal/captcha"
	appconfig "github.com/lyrixdigital/lyrix-api/internal/config"
	"github.com/lyrixdigital/lyrix-api/internal/contact"
	"github.com/lyrixdigital/lyrix-api/internal/content"
	"github.com/lyrixdigital/lyrix-api/internal/notify"
	"github.com/lyrixdigital/lyrix-api/internal/observability/metrics"
	"github.com/lyrixdigital/lyrix-api/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting lyrix-api server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	sender := buildEmailSender(cfg, logger)
	if sender == nil {
		// The handler returns 500 per request; flag it loudly at startup too.
		logger.Error("no email sender configured, contact submissions will fail")
	}

	verifier := captcha.NewTurnstileVerifier(captcha.TurnstileConfig{
		Secret:    cfg.TurnstileSecretKey,
		VerifyURL: cfg.TurnstileVerifyURL,
		Timeout:   cfg.CaptchaTimeout,
	}, logger)
	if verifier == nil && cfg.Env != "development" {
		// Fail-open is a deliberate deployment toggle, but it needs to be
		// visible to the operator.
		logger.Warn("TURNSTILE_SECRET_KEY not set, CAPTCHA enforcement disabled")
	}

	contactMetrics := metrics.NewContactMetrics(prometheus.DefaultRegisterer)

	contactHandler := contact.NewHandler(contact.HandlerConfig{
		Sender:       sender,
		Verifier:     verifierOrNil(verifier),
		InboxEmail:   cfg.LeadInboxEmail,
		EmailTimeout: cfg.EmailTimeout,
		Metrics:      contactMetrics,
	}, logger)
	contentHandler := content.NewHandler(logger)

	r := router.New(&router.Config{
		Logger:             logger,
		ContactHandler:     contactHandler,
		ContentHandler:     contentHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitRPS:       cfg.RateLimitRPS,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildEmailSender picks the configured provider. SendGrid is the default;
// EMAIL_PROVIDER=ses switches to AWS SES, and development environments fall
// back to a logging stub so the form can be exercised without credentials.
func buildEmailSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	if cfg.EmailProvider == "ses" {
		awsCfg, err := mainconfig.LoadAWSConfig(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to load AWS config for SES", "error", err)
			return nil
		}
		sender := notify.NewSESSender(sesv2.NewFromConfig(awsCfg), notify.SESConfig{
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender == nil {
			return nil
		}
		return sender
	}

	sender := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger)
	if sender != nil {
		return sender
	}
	if cfg.Env == "development" {
		return notify.NewStubEmailSender(logger)
	}
	return nil
}

// verifierOrNil keeps a nil *TurnstileVerifier from becoming a non-nil interface.
func verifierOrNil(v *captcha.TurnstileVerifier) captcha.Verifier {
	if v == nil {
		return nil
	}
	return v
}
