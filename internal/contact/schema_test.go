package contact

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() map[string]any {
	return map[string]any{
		"name":  "Ana López",
		"email": "ana@example.com",
	}
}

func mustValidate(t *testing.T, payload map[string]any) *Submission {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	sub, err := ParseAndValidate(raw)
	require.NoError(t, err)
	return sub
}

func mustFail(t *testing.T, payload map[string]any) *ValidationError {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	_, err = ParseAndValidate(raw)
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	return verr
}

func TestParseAndValidate_MinimalValid(t *testing.T) {
	sub := mustValidate(t, validPayload())
	assert.Equal(t, "Ana López", sub.Name)
	assert.Equal(t, "ana@example.com", sub.Email)
}

func TestParseAndValidate_DefaultsApplied(t *testing.T) {
	sub := mustValidate(t, validPayload())
	assert.Equal(t, "undecided", sub.Maintenance)
	assert.False(t, sub.Cinematic)
	assert.Equal(t, "en", sub.Lang)
	assert.Equal(t, "", sub.Sector)
	assert.Equal(t, "", sub.Budget)
}

func TestParseAndValidate_NameBoundaries(t *testing.T) {
	p := validPayload()

	p["name"] = "Al"
	mustValidate(t, p)

	p["name"] = "A"
	verr := mustFail(t, p)
	assert.Equal(t, "Name must be at least 2 characters", verr.FieldErrors()["name"])

	p["name"] = strings.Repeat("a", 100)
	mustValidate(t, p)

	p["name"] = strings.Repeat("a", 101)
	verr = mustFail(t, p)
	assert.Equal(t, "Name must be under 100 characters", verr.FieldErrors()["name"])
}

func TestParseAndValidate_NameCharacterClass(t *testing.T) {
	p := validPayload()
	for _, name := range []string{"Ana López", "O'Brien", "Jean-Luc", "Dr. Smith", "María José"} {
		p["name"] = name
		mustValidate(t, p)
	}
	for _, name := range []string{"Ana<script>", "name@domain", "12 34", "under_score"} {
		p["name"] = name
		verr := mustFail(t, p)
		assert.Equal(t, "Name contains invalid characters", verr.FieldErrors()["name"], "name %q", name)
	}
}

func TestParseAndValidate_EmailBoundaries(t *testing.T) {
	p := validPayload()

	// Exactly 254 characters, syntactically valid.
	local := strings.Repeat("a", 254-len("@example.com"))
	p["email"] = local + "@example.com"
	mustValidate(t, p)

	p["email"] = local + "a@example.com" // 255
	verr := mustFail(t, p)
	assert.Equal(t, "Email is too long", verr.FieldErrors()["email"])

	p["email"] = "not-an-email"
	verr = mustFail(t, p)
	assert.Equal(t, "Invalid email address", verr.FieldErrors()["email"])

	p["email"] = "a b@example.com"
	mustFail(t, p)
}

func TestParseAndValidate_Phone(t *testing.T) {
	p := validPayload()

	p["phone"] = "+1 (555) 123-4567"
	mustValidate(t, p)

	p["phone"] = "" // optional
	mustValidate(t, p)

	p["phone"] = strings.Repeat("1", 21)
	verr := mustFail(t, p)
	assert.Equal(t, "Phone number is too long", verr.FieldErrors()["phone"])

	p["phone"] = "555-CALL-NOW"
	verr = mustFail(t, p)
	assert.Equal(t, "Invalid phone format", verr.FieldErrors()["phone"])
}

func TestParseAndValidate_Enums(t *testing.T) {
	p := validPayload()

	for _, sector := range []string{"", "Industry", "Creative", "Personal", "Business"} {
		p["sector"] = sector
		mustValidate(t, p)
	}
	p["sector"] = "Government"
	mustFail(t, p)
	delete(p, "sector")

	for _, m := range []string{"managed", "handover", "undecided"} {
		p["maintenance"] = m
		sub := mustValidate(t, p)
		assert.Equal(t, m, sub.Maintenance)
	}
	p["maintenance"] = ""
	mustFail(t, p)
	delete(p, "maintenance")

	for _, budget := range []string{"", "$1K–$3K", "$3K–$5K", "$5K–$10K", "$10K+"} {
		p["budget"] = budget
		mustValidate(t, p)
	}
	p["budget"] = "$100"
	mustFail(t, p)
	delete(p, "budget")

	p["lang"] = "fr"
	mustFail(t, p)
}

func TestParseAndValidate_MessageBoundaries(t *testing.T) {
	p := validPayload()

	p["message"] = strings.Repeat("x", 2000)
	mustValidate(t, p)

	p["message"] = strings.Repeat("x", 2001)
	verr := mustFail(t, p)
	assert.Equal(t, "Message must be under 2,000 characters", verr.FieldErrors()["message"])
}

func TestParseAndValidate_HoneypotIsNotAValidationError(t *testing.T) {
	p := validPayload()
	p["_honeypot"] = "gotcha"
	sub := mustValidate(t, p)
	assert.True(t, sub.IsBot())
}

func TestParseAndValidate_AllOrNothing(t *testing.T) {
	p := validPayload()
	p["name"] = "A"
	p["email"] = "bad"
	p["message"] = strings.Repeat("x", 2001)
	verr := mustFail(t, p)
	assert.Len(t, verr.Issues, 3)

	fields := verr.FieldErrors()
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "message")
}

func TestParseAndValidate_RoundTripIdempotent(t *testing.T) {
	p := validPayload()
	p["phone"] = "+34 600 000 000"
	p["sector"] = "Business"
	p["maintenance"] = "managed"
	p["budget"] = "$3K–$5K"
	p["cinematic"] = true
	p["message"] = "Need a new site"
	p["lang"] = "es"

	first := mustValidate(t, p)

	raw, err := json.Marshal(first)
	require.NoError(t, err)
	second, err := ParseAndValidate(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestParseAndValidate_MalformedJSON(t *testing.T) {
	_, err := ParseAndValidate([]byte(`{"name": "Ana"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedBody))
}

func TestParseAndValidate_TypeMismatchIsFieldIssue(t *testing.T) {
	_, err := ParseAndValidate([]byte(`{"name":"Ana López","email":"ana@example.com","cinematic":"yes"}`))
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.FieldErrors(), "cinematic")
}

func TestFieldErrors_FirstViolationWins(t *testing.T) {
	verr := &ValidationError{Issues: []Issue{
		{Field: "name", Message: "first"},
		{Field: "name", Message: "second"},
		{Field: "email", Message: "only"},
	}}
	fields := verr.FieldErrors()
	assert.Equal(t, "first", fields["name"])
	assert.Equal(t, "only", fields["email"])
}
