package tracker

import (
	"context"
	"strings"
	"time"

	"smallbrave/internal/storage"
)

// WeeklyStats summarizes the reflections falling in one calendar week.
// Derived on demand, never persisted.
type WeeklyStats struct {
	WeekStart         string
	WeekEnd           string
	TotalChallenges   int
	MostCommonFeeling Feeling
	FeelingCounts     map[Feeling]int
	CategoryBreakdown map[string]int
	NotesCount        int
	DaysActive        int
}

// ComputeWeeklyStats filters log to the week containing now and derives
// the summary. Returns nil when no entry falls in the week, so callers
// can tell "no data" apart from all-zero stats. Entries without a
// feeling count toward TotalChallenges but not FeelingCounts. Ties for
// the most common feeling go to the feeling encountered first in the
// log's own (newest-first) order.
func (s *Service) ComputeWeeklyStats(log []storage.Reflection, now time.Time) *WeeklyStats {
	weekStart := s.cal.WeekStartKey(now)
	weekEnd := s.cal.WeekEndKey(now)

	var week []storage.Reflection
	for _, r := range log {
		// Day keys compare lexicographically in date order.
		if r.Date >= weekStart && r.Date <= weekEnd {
			week = append(week, r)
		}
	}
	if len(week) == 0 {
		return nil
	}

	stats := &WeeklyStats{
		WeekStart:         weekStart,
		WeekEnd:           weekEnd,
		TotalChallenges:   len(week),
		FeelingCounts:     map[Feeling]int{},
		CategoryBreakdown: map[string]int{},
	}

	days := map[string]bool{}
	var feelingOrder []Feeling
	for _, r := range week {
		days[r.Date] = true

		if f := Feeling(r.Feeling); f != FeelingNone {
			if stats.FeelingCounts[f] == 0 {
				feelingOrder = append(feelingOrder, f)
			}
			stats.FeelingCounts[f]++
		}

		stats.CategoryBreakdown[r.ChallengeCategory]++

		if strings.TrimSpace(r.Note) != "" {
			stats.NotesCount++
		}
	}
	stats.DaysActive = len(days)

	// First-seen order breaks ties, so the pick is reproducible.
	best := 0
	for _, f := range feelingOrder {
		if stats.FeelingCounts[f] > best {
			best = stats.FeelingCounts[f]
			stats.MostCommonFeeling = f
		}
	}
	return stats
}

// ShouldShowWeeklyReport is the once-per-week display gate: true only
// on the calendar's week-start weekday, at most once per day, and only
// when the current week has any data. Stateless beyond the persisted
// last-shown day.
func (s *Service) ShouldShowWeeklyReport(ctx context.Context, now time.Time) bool {
	if !s.cal.IsWeekStart(now) {
		return false
	}
	if s.reports.LastShown(ctx) == s.cal.DayKey(now) {
		return false
	}
	return s.ComputeWeeklyStats(s.reflections.Load(ctx), now) != nil
}

// MarkReportShown records that the report was displayed today.
func (s *Service) MarkReportShown(ctx context.Context, now time.Time) error {
	return s.reports.MarkShown(ctx, s.cal.DayKey(now))
}
