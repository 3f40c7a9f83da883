package dateutil

import (
	"testing"
	"time"
)

func utcCal() Calendar {
	return New(time.UTC, time.Sunday)
}

func TestDayKeyRoundTrip(t *testing.T) {
	cal := utcCal()
	keys := []string{"2024-01-01", "2024-02-29", "2024-12-31", "1999-06-15"}
	for _, key := range keys {
		d, err := cal.ParseKey(key)
		if err != nil {
			t.Fatalf("ParseKey(%q): %v", key, err)
		}
		if got := cal.DayKey(d); got != key {
			t.Fatalf("DayKey(ParseKey(%q))=%q", key, got)
		}
	}
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	cal := utcCal()
	for _, key := range []string{"", "2024-13-01", "not-a-date", "2024/01/01"} {
		if _, err := cal.ParseKey(key); err == nil {
			t.Fatalf("ParseKey(%q): expected error", key)
		}
	}
}

func TestWeekBounds(t *testing.T) {
	cal := utcCal()
	// 2024-01-07 is a Sunday; the whole week maps to the same bounds.
	for day := 7; day <= 13; day++ {
		ref := time.Date(2024, 1, day, 15, 30, 0, 0, time.UTC)
		start, end := cal.WeekStartKey(ref), cal.WeekEndKey(ref)
		if start != "2024-01-07" {
			t.Fatalf("WeekStartKey(jan %d)=%q, want 2024-01-07", day, start)
		}
		if end != "2024-01-13" {
			t.Fatalf("WeekEndKey(jan %d)=%q, want 2024-01-13", day, end)
		}
		key := cal.DayKey(ref)
		if !(start <= key && key <= end) {
			t.Fatalf("day %q outside week [%q, %q]", key, start, end)
		}
	}
}

func TestWeekSpansSixDays(t *testing.T) {
	cal := utcCal()
	refs := []time.Time{
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
		time.Date(2023, 12, 31, 12, 0, 0, 0, time.UTC),
	}
	for _, ref := range refs {
		start, err := cal.ParseKey(cal.WeekStartKey(ref))
		if err != nil {
			t.Fatalf("parse week start: %v", err)
		}
		end, err := cal.ParseKey(cal.WeekEndKey(ref))
		if err != nil {
			t.Fatalf("parse week end: %v", err)
		}
		if got := end.Sub(start); got != 6*24*time.Hour {
			t.Fatalf("week span for %s = %v, want 144h", ref, got)
		}
	}
}

func TestWeekStartConvention(t *testing.T) {
	// Same instant, Monday-start weeks.
	cal := New(time.UTC, time.Monday)
	ref := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC) // Wednesday
	if got := cal.WeekStartKey(ref); got != "2024-01-08" {
		t.Fatalf("monday WeekStartKey=%q, want 2024-01-08", got)
	}
	if got := cal.WeekEndKey(ref); got != "2024-01-14" {
		t.Fatalf("monday WeekEndKey=%q, want 2024-01-14", got)
	}
	if !cal.IsWeekStart(time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected 2024-01-08 to be a week start")
	}
}

func TestPrevDayKeyBoundaries(t *testing.T) {
	cal := utcCal()
	cases := []struct{ in, want string }{
		{"2024-01-06", "2024-01-05"},
		{"2024-03-01", "2024-02-29"}, // leap year
		{"2023-03-01", "2023-02-28"},
		{"2024-01-01", "2023-12-31"},
		{"garbage", ""},
	}
	for _, c := range cases {
		if got := cal.PrevDayKey(c.in); got != c.want {
			t.Fatalf("PrevDayKey(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestDayKeyUsesCalendarZone(t *testing.T) {
	// 03:00 UTC on Jan 10 is still Jan 9 five hours west, and already
	// Jan 10 nine hours east.
	ref := time.Date(2024, 1, 10, 3, 0, 0, 0, time.UTC)

	east := New(time.FixedZone("UTC+9", 9*3600), time.Sunday)
	west := New(time.FixedZone("UTC-5", -5*3600), time.Sunday)

	if got := east.DayKey(ref); got != "2024-01-10" {
		t.Fatalf("east DayKey=%q, want 2024-01-10", got)
	}
	if got := west.DayKey(ref); got != "2024-01-09" {
		t.Fatalf("west DayKey=%q, want 2024-01-09", got)
	}
}

func TestKeyComparisonIsChronological(t *testing.T) {
	cal := utcCal()
	prev := ""
	d := time.Date(2023, 11, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 90; i++ {
		key := cal.DayKey(d)
		if prev != "" && !(prev < key) {
			t.Fatalf("keys out of order: %q then %q", prev, key)
		}
		prev = key
		d = d.AddDate(0, 0, 1)
	}
}
