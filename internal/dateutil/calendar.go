package dateutil

import (
	"fmt"
	"time"
)

// Calendar fixes the time zone and week-start weekday used for every
// day-key computation. Callers construct one Calendar and thread it
// through, so date behavior never depends on ambient process state.
type Calendar struct {
	loc       *time.Location
	weekStart time.Weekday
}

func New(loc *time.Location, weekStart time.Weekday) Calendar {
	if loc == nil {
		loc = time.Local
	}
	return Calendar{loc: loc, weekStart: weekStart}
}

// Local returns the default calendar: system zone, weeks starting Sunday.
func Local() Calendar {
	return New(time.Local, time.Sunday)
}

func (c Calendar) Location() *time.Location { return c.loc }
func (c Calendar) WeekStartDay() time.Weekday { return c.weekStart }

// DayKey returns the YYYY-MM-DD key for the calendar day containing t.
// Keys are fixed-width and zero-padded, so lexicographic comparison of
// two keys is chronological comparison.
func (c Calendar) DayKey(t time.Time) string {
	return t.In(c.loc).Format(time.DateOnly)
}

// ParseKey parses a day key back to local midnight of that day.
func (c Calendar) ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(time.DateOnly, key, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day key %q: %w", key, err)
	}
	return t, nil
}

// PrevDayKey returns the key of the calendar day before key.
// Invalid keys yield "" (which never equals a valid key).
func (c Calendar) PrevDayKey(key string) string {
	t, err := c.ParseKey(key)
	if err != nil {
		return ""
	}
	return c.DayKey(t.AddDate(0, 0, -1))
}

// WeekStartKey returns the key of the first day of the week containing t.
func (c Calendar) WeekStartKey(t time.Time) string {
	d := t.In(c.loc)
	back := (int(d.Weekday()) - int(c.weekStart) + 7) % 7
	return c.DayKey(d.AddDate(0, 0, -back))
}

// WeekEndKey returns the key of the last day of the week containing t,
// six days after WeekStartKey, inclusive.
func (c Calendar) WeekEndKey(t time.Time) string {
	start, err := c.ParseKey(c.WeekStartKey(t))
	if err != nil {
		// WeekStartKey only emits keys it formatted itself.
		panic(err)
	}
	return c.DayKey(start.AddDate(0, 0, 6))
}

// IsWeekStart reports whether t falls on the calendar's week-start weekday.
func (c Calendar) IsWeekStart(t time.Time) bool {
	return t.In(c.loc).Weekday() == c.weekStart
}
