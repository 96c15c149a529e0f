package cmd

import (
	"testing"
	"time"
)

func TestParseTimeFlag(t *testing.T) {
	if v, err := parseTimeFlag(""); err != nil || !v.IsZero() {
		t.Errorf("empty flag: got %v, %v", v, err)
	}

	v, err := parseTimeFlag("24h")
	if err != nil {
		t.Fatalf("duration: %v", err)
	}
	if d := time.Since(v); d < 23*time.Hour || d > 25*time.Hour {
		t.Errorf("24h ago = %v", v)
	}

	v, err = parseTimeFlag("2024-01-31")
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	if v.Year() != 2024 || v.Month() != time.January || v.Day() != 31 {
		t.Errorf("date = %v", v)
	}

	if _, err := parseTimeFlag("yesterday-ish"); err == nil {
		t.Error("expected error for unparseable value")
	}
}
