package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lyrixdigital/lyrix-api/internal/notify"
)

// recordingSender captures every dispatched email instead of sending it.
type recordingSender struct {
	messages []notify.EmailMessage
	err      error
}

func (s *recordingSender) Send(ctx context.Context, msg notify.EmailMessage) error {
	if s.err != nil {
		return s.err
	}
	s.messages = append(s.messages, msg)
	return nil
}

// fakeVerifier returns canned verification results and records tokens.
type fakeVerifier struct {
	ok     bool
	err    error
	tokens []string
}

func (v *fakeVerifier) Verify(ctx context.Context, token, remoteIP string) (bool, error) {
	v.tokens = append(v.tokens, token)
	return v.ok, v.err
}

func newTestHandler(sender notify.EmailSender, verifier *fakeVerifier) *Handler {
	cfg := HandlerConfig{
		Sender:       sender,
		InboxEmail:   "lyrixdigitals@gmail.com",
		EmailTimeout: time.Second,
	}
	if verifier != nil {
		cfg.Verifier = verifier
	}
	h := NewHandler(cfg, nil)
	h.now = func() time.Time { return testClock }
	return h
}

func postSubmission(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.RemoteAddr = "203.0.113.7:51234"
	w := httptest.NewRecorder()
	h.Submit(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var resp errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

const validBody = `{
	"name": "Ana López",
	"email": "ana@example.com",
	"sector": "Business",
	"budget": "$3K–$5K",
	"message": "Need a new site",
	"lang": "es",
	"_honeypot": "",
	"turnstileToken": "valid-token"
}`

func TestSubmit_EndToEndSuccess(t *testing.T) {
	sender := &recordingSender{}
	verifier := &fakeVerifier{ok: true}
	h := newTestHandler(sender, verifier)

	w := postSubmission(t, h, validBody)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	require.Len(t, sender.messages, 1)
	msg := sender.messages[0]
	assert.Equal(t, "lyrixdigitals@gmail.com", msg.To)
	assert.Equal(t, "ana@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "Ana López")
	assert.Contains(t, msg.Subject, "Business")

	assert.Equal(t, []string{"valid-token"}, verifier.tokens)
}

func TestSubmit_MalformedBody(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(sender, nil)

	w := postSubmission(t, h, `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Invalid request body.", resp.Error)
	assert.Empty(t, resp.Issues)
	assert.Empty(t, sender.messages)
}

func TestSubmit_ValidationFailureHasFieldIssues(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(sender, nil)

	w := postSubmission(t, h, `{"name":"Ana López","email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Validation failed.", resp.Error)
	require.NotEmpty(t, resp.Issues)
	found := false
	for _, issue := range resp.Issues {
		if issue.Field == "email" {
			found = true
		}
	}
	assert.True(t, found, "expected an issue for field email")
	assert.Empty(t, sender.messages, "email provider must never be called")
}

func TestSubmit_HoneypotFakesSuccess(t *testing.T) {
	sender := &recordingSender{}
	verifier := &fakeVerifier{ok: true}
	h := newTestHandler(sender, verifier)

	body := strings.Replace(validBody, `"_honeypot": ""`, `"_honeypot": "http://spam.example"`, 1)
	w := postSubmission(t, h, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	assert.Empty(t, sender.messages, "no email for bot traffic")
	assert.Empty(t, verifier.tokens, "no CAPTCHA call for bot traffic")
}

func TestSubmit_MissingCaptchaTokenForbidden(t *testing.T) {
	sender := &recordingSender{}
	verifier := &fakeVerifier{ok: true}
	h := newTestHandler(sender, verifier)

	body := strings.Replace(validBody, `"turnstileToken": "valid-token"`, `"turnstileToken": ""`, 1)
	w := postSubmission(t, h, body)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Security verification required.", decodeError(t, w).Error)
	assert.Empty(t, sender.messages)
	assert.Empty(t, verifier.tokens)
}

func TestSubmit_CaptchaRejectionForbidden(t *testing.T) {
	sender := &recordingSender{}
	verifier := &fakeVerifier{ok: false}
	h := newTestHandler(sender, verifier)

	w := postSubmission(t, h, validBody)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Security verification failed.", decodeError(t, w).Error)
	assert.Empty(t, sender.messages)
}

func TestSubmit_CaptchaTransportErrorIsServerError(t *testing.T) {
	sender := &recordingSender{}
	verifier := &fakeVerifier{err: errors.New("siteverify unreachable")}
	h := newTestHandler(sender, verifier)

	w := postSubmission(t, h, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, sender.messages)
}

func TestSubmit_NoCaptchaConfiguredSkipsVerification(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(sender, nil)

	body := strings.Replace(validBody, `"turnstileToken": "valid-token"`, `"turnstileToken": ""`, 1)
	w := postSubmission(t, h, body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, sender.messages, 1)
}

func TestSubmit_MissingSenderIsMisconfiguration(t *testing.T) {
	h := newTestHandler(nil, nil)

	w := postSubmission(t, h, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Server configuration error.", decodeError(t, w).Error)
}

func TestSubmit_DeliveryFailureIsServerError(t *testing.T) {
	sender := &recordingSender{err: errors.New("provider outage")}
	h := newTestHandler(sender, nil)

	w := postSubmission(t, h, validBody)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send email.", decodeError(t, w).Error)
}

func TestSubmit_EmailBodyEscaped(t *testing.T) {
	sender := &recordingSender{}
	h := newTestHandler(sender, nil)

	w := postSubmission(t, h, `{"name":"Ana López","email":"ana@example.com","message":"<script>alert(1)</script>"}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.messages, 1)
	assert.NotContains(t, sender.messages[0].HTML, "<script>")
	assert.Contains(t, sender.messages[0].HTML, "&lt;script&gt;")
}
