package storage

import (
	"context"
	"testing"
)

func TestStateRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewStateRepo(NewMemKV())

	if got := repo.Load(ctx); got != (StreakState{}) {
		t.Fatalf("empty store Load=%+v, want zero", got)
	}

	st := StreakState{Count: 4, LastCompleted: "2024-01-05"}
	if err := repo.Save(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	if got := repo.Load(ctx); got != st {
		t.Fatalf("Load=%+v, want %+v", got, st)
	}

	// A zero state round-trips through a null last-completed date.
	if err := repo.Save(ctx, StreakState{}); err != nil {
		t.Fatalf("save zero: %v", err)
	}
	if got := repo.Load(ctx); got != (StreakState{}) {
		t.Fatalf("zero Load=%+v", got)
	}
}

func TestStateRepoMalformedFallsBack(t *testing.T) {
	ctx := context.Background()
	raws := []string{
		"not json",
		`{"streakCount":"four"}`,
		`{"streakCount":-1,"lastCompletedDate":"2024-01-05"}`,
		// Invariant violations: count and date must be set together.
		`{"streakCount":3,"lastCompletedDate":null}`,
		`{"streakCount":0,"lastCompletedDate":"2024-01-05"}`,
	}
	for _, raw := range raws {
		kv := NewMemKV()
		if err := kv.Set(ctx, "streak-state", raw); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if got := NewStateRepo(kv).Load(ctx); got != (StreakState{}) {
			t.Fatalf("raw %q: Load=%+v, want zero", raw, got)
		}
	}
}

func TestReflectionRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewReflectionRepo(NewMemKV())

	if got := repo.Load(ctx); len(got) != 0 {
		t.Fatalf("empty store Load len=%d", len(got))
	}

	list := []Reflection{
		{ID: "2024-01-08-b", Date: "2024-01-08", ChallengeText: "B", ChallengeCategory: "warm", Feeling: "good", Note: "n2", Timestamp: 2},
		{ID: "2024-01-07-a", Date: "2024-01-07", ChallengeText: "A", ChallengeCategory: "connection", Note: "n1", Timestamp: 1},
	}
	if err := repo.Save(ctx, list); err != nil {
		t.Fatalf("save: %v", err)
	}
	got := repo.Load(ctx)
	if len(got) != 2 || got[0].ID != "2024-01-08-b" || got[1].Feeling != "" {
		t.Fatalf("Load=%+v", got)
	}
}

func TestReflectionRepoMalformedFallsBack(t *testing.T) {
	ctx := context.Background()
	// Not JSON, not an array, and entries missing id or date.
	raws := []string{
		"not json",
		`{"id":"x"}`,
		`[{"date":"2024-01-07"}]`,
		`[{"id":"x","note":"hi"}]`,
	}
	for _, raw := range raws {
		kv := NewMemKV()
		if err := kv.Set(ctx, "reflection-log", raw); err != nil {
			t.Fatalf("seed: %v", err)
		}
		if got := NewReflectionRepo(kv).Load(ctx); len(got) != 0 {
			t.Fatalf("raw %q: Load len=%d, want 0", raw, len(got))
		}
	}
}

func TestReportRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewReportRepo(NewMemKV())

	if got := repo.LastShown(ctx); got != "" {
		t.Fatalf("empty LastShown=%q", got)
	}
	if err := repo.MarkShown(ctx, "2024-01-07"); err != nil {
		t.Fatalf("mark shown: %v", err)
	}
	if got := repo.LastShown(ctx); got != "2024-01-07" {
		t.Fatalf("LastShown=%q", got)
	}
}
