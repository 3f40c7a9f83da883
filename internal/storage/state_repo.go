package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

const stateKey = "streak-state"

// StateRepo persists the streak state under a single KV key.
type StateRepo struct {
	kv KV
}

func NewStateRepo(kv KV) *StateRepo {
	return &StateRepo{kv: kv}
}

// streakStateJSON is the wire shape. LastCompleted is a pointer so an
// empty state round-trips as null rather than "".
type streakStateJSON struct {
	Count         int     `json:"streakCount"`
	LastCompleted *string `json:"lastCompletedDate"`
}

// Load returns the stored streak state. A missing key, an unreadable
// store, or a value that fails to parse or violates the state invariant
// all yield the zero state; corrupt storage never blocks a session.
func (r *StateRepo) Load(ctx context.Context) StreakState {
	raw, ok, err := r.kv.Get(ctx, stateKey)
	if err != nil || !ok {
		return StreakState{}
	}

	var wire streakStateJSON
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return StreakState{}
	}

	st := StreakState{Count: wire.Count}
	if wire.LastCompleted != nil {
		st.LastCompleted = *wire.LastCompleted
	}
	// Count and LastCompleted are set together or not at all.
	if st.Count < 0 || (st.Count == 0) != (st.LastCompleted == "") {
		return StreakState{}
	}
	return st
}

func (r *StateRepo) Save(ctx context.Context, st StreakState) error {
	wire := streakStateJSON{Count: st.Count}
	if st.LastCompleted != "" {
		wire.LastCompleted = &st.LastCompleted
	}
	data, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("marshal streak state: %w", err)
	}
	return r.kv.Set(ctx, stateKey, string(data))
}
