package metrics

import "github.com/prometheus/client_golang/prometheus"

// ContactMetrics exposes counters/histograms for the contact-form pipeline.
type ContactMetrics struct {
	submissionsTotal *prometheus.CounterVec
	emailSendSeconds prometheus.Histogram
}

// Submission outcomes recorded on the submissions_total counter.
const (
	OutcomeAccepted      = "accepted"
	OutcomeMalformed     = "malformed"
	OutcomeInvalid       = "invalid"
	OutcomeBot           = "bot"
	OutcomeCaptchaFailed = "captcha_failed"
	OutcomeCaptchaError  = "captcha_error"
	OutcomeMisconfigured = "misconfigured"
	OutcomeEmailFailed   = "email_failed"
)

func NewContactMetrics(reg prometheus.Registerer) *ContactMetrics {
	m := &ContactMetrics{
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lyrix",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Total contact form submissions by outcome",
		}, []string{"outcome"}),
		emailSendSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "lyrix",
			Subsystem: "contact",
			Name:      "email_send_seconds",
			Help:      "Latency of lead email dispatch",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.submissionsTotal, m.emailSendSeconds)
	return m
}

func (m *ContactMetrics) ObserveSubmission(outcome string) {
	if m == nil {
		return
	}
	m.submissionsTotal.WithLabelValues(outcome).Inc()
}

func (m *ContactMetrics) ObserveEmailSend(seconds float64) {
	if m == nil {
		return
	}
	m.emailSendSeconds.Observe(seconds)
}
