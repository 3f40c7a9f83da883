package tracker

import (
	"context"
	"time"

	"smallbrave/internal/challenge"
	"smallbrave/internal/storage"
)

// TodayView is everything a session start needs: the day's challenge
// and where the streak stands.
type TodayView struct {
	Day         string
	Challenge   challenge.Challenge
	Streak      storage.StreakState
	AlreadyDone bool
}

func (s *Service) Today(ctx context.Context, now time.Time) TodayView {
	day := s.cal.DayKey(now)
	st := s.states.Load(ctx)
	return TodayView{
		Day:         day,
		Challenge:   challenge.Select(day, s.table),
		Streak:      st,
		AlreadyDone: st.LastCompleted == day,
	}
}

type CompleteResult struct {
	Day         string
	Streak      storage.StreakState
	AlreadyDone bool
	// Warning is set when the new state could not be persisted. The
	// in-memory state is still advanced so the session stays correct.
	Warning string
}

// CompleteToday runs the streak transition for the day containing now:
// a repeat of the last completed day is a no-op, the day after it
// extends the streak by one, and anything else (first completion, or a
// gap of two or more days) restarts the streak at one.
func (s *Service) CompleteToday(ctx context.Context, now time.Time) *CompleteResult {
	day := s.cal.DayKey(now)
	st := s.states.Load(ctx)

	if st.LastCompleted == day {
		return &CompleteResult{Day: day, Streak: st, AlreadyDone: true}
	}

	if st.LastCompleted == s.cal.PrevDayKey(day) {
		st.Count++
	} else {
		st.Count = 1
	}
	st.LastCompleted = day

	res := &CompleteResult{Day: day, Streak: st}
	if err := s.states.Save(ctx, st); err != nil {
		res.Warning = "streak not saved: " + err.Error()
	}
	return res
}
