package i18n

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want Lang
	}{
		{"en", EN},
		{"es", ES},
		{"", EN},
		{"fr", EN},
		{"ES", EN}, // case-sensitive, matches the wire format
	}
	for _, c := range cases {
		if got := Parse(c.in); got != c.want {
			t.Errorf("Parse(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTFallsBackToDefaultLang(t *testing.T) {
	if got := T(ES, "content.pricing.label"); got != "Asignacion de Recursos" {
		t.Errorf("unexpected ES translation: %q", got)
	}
	if got := T(Lang("fr"), "content.pricing.label"); got != "System Resource Allocation" {
		t.Errorf("expected fallback to EN, got %q", got)
	}
	if got := T(EN, "no.such.key"); got != "no.such.key" {
		t.Errorf("expected key echo for missing translation, got %q", got)
	}
}

func TestDisplayName(t *testing.T) {
	if EN.DisplayName() != "English" || ES.DisplayName() != "Espanol" {
		t.Error("unexpected display names")
	}
}
