package tracker

import (
	"strings"

	"smallbrave/internal/storage"
)

// TotalStats are all-time counts over the full log, for the status view.
type TotalStats struct {
	Reflections       int
	DaysActive        int
	NotesCount        int
	FeelingCounts     map[Feeling]int
	CategoryBreakdown map[string]int
}

func Totals(log []storage.Reflection) TotalStats {
	t := TotalStats{
		Reflections:       len(log),
		FeelingCounts:     map[Feeling]int{},
		CategoryBreakdown: map[string]int{},
	}
	days := map[string]bool{}
	for _, r := range log {
		days[r.Date] = true
		if f := Feeling(r.Feeling); f != FeelingNone {
			t.FeelingCounts[f]++
		}
		t.CategoryBreakdown[r.ChallengeCategory]++
		if strings.TrimSpace(r.Note) != "" {
			t.NotesCount++
		}
	}
	t.DaysActive = len(days)
	return t
}
