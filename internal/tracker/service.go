package tracker

import (
	"context"

	"smallbrave/internal/challenge"
	"smallbrave/internal/dateutil"
	"smallbrave/internal/storage"
)

// Service is the practice-tracking engine: one deterministic challenge
// per day, a contiguous-day streak, a reflection log, and weekly
// summaries. Every operation takes the reference time explicitly, so
// behavior is reproducible under a fixed clock.
type Service struct {
	cal         dateutil.Calendar
	table       []challenge.Challenge
	states      *storage.StateRepo
	reflections *storage.ReflectionRepo
	reports     *storage.ReportRepo
}

func NewService(kv storage.KV, cal dateutil.Calendar, table []challenge.Challenge) *Service {
	return &Service{
		cal:         cal,
		table:       table,
		states:      storage.NewStateRepo(kv),
		reflections: storage.NewReflectionRepo(kv),
		reports:     storage.NewReportRepo(kv),
	}
}

func (s *Service) Calendar() dateutil.Calendar   { return s.cal }
func (s *Service) StateRepo() *storage.StateRepo { return s.states }

// Reflections returns a snapshot of the full log, newest-first.
// Missing or corrupt storage yields an empty log.
func (s *Service) Reflections(ctx context.Context) []storage.Reflection {
	return s.reflections.Load(ctx)
}
