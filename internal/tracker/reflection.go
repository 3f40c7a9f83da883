package tracker

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"smallbrave/internal/challenge"
	"smallbrave/internal/storage"
)

// Feeling is the post-challenge mood. The zero value means the user
// skipped the question.
type Feeling string

const (
	FeelingNone          Feeling = ""
	FeelingGood          Feeling = "good"
	FeelingNeutral       Feeling = "neutral"
	FeelingUncomfortable Feeling = "uncomfortable"
)

func (f Feeling) IsValid() bool {
	switch f {
	case FeelingNone, FeelingGood, FeelingNeutral, FeelingUncomfortable:
		return true
	default:
		return false
	}
}

func (f Feeling) Label() string {
	switch f {
	case FeelingGood:
		return "Good"
	case FeelingNeutral:
		return "Neutral"
	case FeelingUncomfortable:
		return "Uncomfortable"
	default:
		return "—"
	}
}

// ParseFeeling parses user input to a Feeling. Empty input means skipped.
func ParseFeeling(input string) (Feeling, error) {
	f := Feeling(strings.TrimSpace(strings.ToLower(input)))
	if !f.IsValid() {
		return "", fmt.Errorf("invalid feeling: %q (good|neutral|uncomfortable)", input)
	}
	return f, nil
}

type ReflectionInput struct {
	Feeling Feeling
	Note    string
}

type SaveResult struct {
	Reflection storage.Reflection
	// Warning is set when the log could not be persisted; the entry is
	// still returned so the current flow can render it.
	Warning string
}

// SaveReflection records one reflection against the day containing now,
// stamped with that day's challenge. The new entry is prepended, so the
// log stays newest-first, and the full log is persisted. IDs combine
// the day key with a ULID nonce so several entries on one day stay
// unique.
func (s *Service) SaveReflection(ctx context.Context, now time.Time, in ReflectionInput) *SaveResult {
	day := s.cal.DayKey(now)
	ch := challenge.Select(day, s.table)

	entry := storage.Reflection{
		ID:                fmt.Sprintf("%s-%s", day, ulid.Make()),
		Date:              day,
		ChallengeText:     ch.Text,
		ChallengeCategory: string(ch.Category),
		Feeling:           string(in.Feeling),
		Note:              in.Note,
		Timestamp:         now.UnixMilli(),
	}

	updated := append([]storage.Reflection{entry}, s.reflections.Load(ctx)...)

	res := &SaveResult{Reflection: entry}
	if err := s.reflections.Save(ctx, updated); err != nil {
		res.Warning = "reflection not saved: " + err.Error()
	}
	return res
}
