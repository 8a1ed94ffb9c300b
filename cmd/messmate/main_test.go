package main

import (
	"testing"
	"time"
)

func TestGetEnvFallsBackWhenUnset(t *testing.T) {
	t.Setenv("MESSMATE_TEST_KEY", "")
	if got := getEnv("MESSMATE_TEST_KEY", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}

	t.Setenv("MESSMATE_TEST_KEY", "value")
	if got := getEnv("MESSMATE_TEST_KEY", "fallback"); got != "value" {
		t.Fatalf("expected value, got %q", got)
	}
}

func TestGetEnvDurationAcceptsSecondsAndDurations(t *testing.T) {
	t.Setenv("MESSMATE_TEST_INTERVAL", "")
	if got := getEnvDuration("MESSMATE_TEST_INTERVAL", time.Hour); got != time.Hour {
		t.Fatalf("expected fallback hour, got %v", got)
	}

	t.Setenv("MESSMATE_TEST_INTERVAL", "90")
	if got := getEnvDuration("MESSMATE_TEST_INTERVAL", time.Hour); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}

	t.Setenv("MESSMATE_TEST_INTERVAL", "15m")
	if got := getEnvDuration("MESSMATE_TEST_INTERVAL", time.Hour); got != 15*time.Minute {
		t.Fatalf("expected 15m, got %v", got)
	}

	t.Setenv("MESSMATE_TEST_INTERVAL", "not-a-duration")
	if got := getEnvDuration("MESSMATE_TEST_INTERVAL", time.Hour); got != time.Hour {
		t.Fatalf("expected fallback for invalid value, got %v", got)
	}

	t.Setenv("MESSMATE_TEST_INTERVAL", "-5m")
	if got := getEnvDuration("MESSMATE_TEST_INTERVAL", time.Hour); got != time.Hour {
		t.Fatalf("expected fallback for negative duration, got %v", got)
	}
}

func TestMustLoadLocationFallsBackToUTC(t *testing.T) {
	if got := mustLoadLocation("Not/AZone"); got != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", got)
	}
	kolkata := mustLoadLocation("Asia/Kolkata")
	if kolkata.String() != "Asia/Kolkata" {
		t.Fatalf("expected Asia/Kolkata, got %v", kolkata)
	}
}
