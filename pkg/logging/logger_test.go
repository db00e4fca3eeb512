package logging

import (
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, c := range cases {
		if got := parseLevel(c.in); got != c.want {
			t.Errorf("parseLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNewReturnsLogger(t *testing.T) {
	l := New("debug")
	if l == nil || l.Logger == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestWithCarriesAttributes(t *testing.T) {
	l := Default().With("component", "test")
	if l == nil || l.Logger == nil {
		t.Fatal("expected non-nil derived logger")
	}
}
