package services

import (
	"testing"
	"time"
)

func TestDateAtLocationTruncatesInRequestedZone(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 2026-03-04 22:30 UTC is already 2026-03-05 04:00 in Kolkata.
	value := time.Date(2026, time.March, 4, 22, 30, 0, 0, time.UTC)
	truncated := DateAtLocation(value, kolkata)
	if got := truncated.Format("2006-01-02 15:04:05"); got != "2026-03-05 00:00:00" {
		t.Fatalf("expected Kolkata midnight of the 5th, got %s", got)
	}
	if truncated.Location() != kolkata {
		t.Fatalf("expected Kolkata location, got %v", truncated.Location())
	}
}

func TestDayRangeIsHalfOpen(t *testing.T) {
	value := time.Date(2026, time.March, 5, 13, 45, 0, 0, time.UTC)
	start, end := DayRange(value, time.UTC)

	if got := start.Format("2006-01-02 15:04:05"); got != "2026-03-05 00:00:00" {
		t.Fatalf("unexpected start: %s", got)
	}
	if got := end.Format("2006-01-02 15:04:05"); got != "2026-03-06 00:00:00" {
		t.Fatalf("unexpected end: %s", got)
	}
	if !start.Before(end) {
		t.Fatalf("expected start before end")
	}
}

func TestDayRangeNilLocationFallsBackToUTC(t *testing.T) {
	value := time.Date(2026, time.March, 5, 23, 59, 0, 0, time.UTC)
	start, _ := DayRange(value, nil)
	if start.Location() != time.UTC {
		t.Fatalf("expected UTC fallback, got %v", start.Location())
	}
}
