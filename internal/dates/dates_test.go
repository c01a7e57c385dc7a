package dates

import (
	"testing"
	"time"
)

// 2026-08-27 is a Thursday.
var thursday = time.Date(2026, time.August, 27, 12, 0, 0, 0, time.UTC)

func TestNextOrSame(t *testing.T) {
	monday := NextOrSame(time.Monday, thursday)
	if monday.Weekday() != time.Monday {
		t.Fatalf("got %v", monday.Weekday())
	}
	if got := monday.Day(); got != 31 {
		t.Errorf("got day %d, want 31", got)
	}

	// Same weekday returns the same date, not a week later.
	same := NextOrSame(time.Thursday, thursday)
	if same.Day() != thursday.Day() {
		t.Errorf("got day %d, want %d", same.Day(), thursday.Day())
	}
}

func TestFormatFull(t *testing.T) {
	got := FormatFull(thursday)
	want := "jueves 27 de agosto"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatShort(t *testing.T) {
	got := FormatShort(thursday)
	want := "27 de agosto"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDynamaxMonday(t *testing.T) {
	got := DynamaxMonday(thursday)
	want := "lunes 31 de agosto"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSpotlightTuesday(t *testing.T) {
	got := SpotlightTuesday(thursday)
	want := "martes 1 de septiembre"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestLegendaryHour(t *testing.T) {
	got, err := LegendaryHour(3, thursday)
	if err != nil {
		t.Fatalf("formatting: %v", err)
	}
	want := "miércoles 2 de septiembre"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	// 7 maps to Sunday.
	got, err = LegendaryHour(7, thursday)
	if err != nil {
		t.Fatalf("formatting: %v", err)
	}
	want = "domingo 30 de agosto"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for _, bad := range []int{0, 8, -1} {
		if _, err := LegendaryHour(bad, thursday); err == nil {
			t.Errorf("day choice %d should be rejected", bad)
		}
	}
}

func TestWeekendEvent(t *testing.T) {
	got, err := WeekendEvent(1, thursday)
	if err != nil {
		t.Fatalf("formatting: %v", err)
	}
	if want := "sábado 29 de agosto"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	got, err = WeekendEvent(2, thursday)
	if err != nil {
		t.Fatalf("formatting: %v", err)
	}
	if want := "domingo 30 de agosto"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if _, err := WeekendEvent(3, thursday); err == nil {
		t.Error("day choice 3 should be rejected")
	}
}
