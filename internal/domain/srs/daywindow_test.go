package srs

import (
	"testing"
	"time"
)

func TestLearningDayWindow(t *testing.T) {
	t.Parallel()

	// 2025-03-10 20:00 UTC is 2025-03-11 04:00 in UTC+8, so the window
	// covers the 11th in UTC+8, which starts at 16:00 UTC on the 10th.
	now := time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)
	start, end := LearningDayWindow(now)

	wantStart := time.Date(2025, 3, 10, 16, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2025, 3, 11, 15, 59, 59, 0, time.UTC)

	if !start.Equal(wantStart) {
		t.Errorf("Expected window start %v, got %v", wantStart, start)
	}

	if !end.Equal(wantEnd) {
		t.Errorf("Expected window end %v, got %v", wantEnd, end)
	}
}

func TestLearningDayWindowSameLocalDay(t *testing.T) {
	t.Parallel()

	// 2025-03-10 02:00 UTC is 10:00 in UTC+8: still the 10th locally.
	now := time.Date(2025, 3, 10, 2, 0, 0, 0, time.UTC)
	start, end := LearningDayWindow(now)

	if !start.Equal(time.Date(2025, 3, 9, 16, 0, 0, 0, time.UTC)) {
		t.Errorf("Unexpected window start %v", start)
	}

	if !now.After(start) || !now.Before(end) {
		t.Errorf("Expected now %v inside window [%v, %v]", now, start, end)
	}
}

func TestLearningDayWindowContainsInstant(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	start, end := LearningDayWindow(now)

	if now.Before(start) || now.After(end) {
		t.Errorf("Expected now %v inside window [%v, %v]", now, start, end)
	}

	if got := end.Sub(start); got != 23*time.Hour+59*time.Minute+59*time.Second {
		t.Errorf("Expected window span 23h59m59s, got %v", got)
	}
}
