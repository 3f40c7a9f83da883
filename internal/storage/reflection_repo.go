package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

const reflectionsKey = "reflection-log"

// ReflectionRepo persists the full reflection log, newest-first, as one
// JSON array under a single KV key.
type ReflectionRepo struct {
	kv KV
}

func NewReflectionRepo(kv KV) *ReflectionRepo {
	return &ReflectionRepo{kv: kv}
}

// Load returns the stored log, newest-first. A missing key, an
// unreadable store, or a malformed value yields an empty log.
func (r *ReflectionRepo) Load(ctx context.Context) []Reflection {
	raw, ok, err := r.kv.Get(ctx, reflectionsKey)
	if err != nil || !ok {
		return nil
	}

	var list []Reflection
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil
	}
	for i := range list {
		if list[i].ID == "" || list[i].Date == "" {
			return nil
		}
	}
	return list
}

// Save replaces the stored log with list.
func (r *ReflectionRepo) Save(ctx context.Context, list []Reflection) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("marshal reflections: %w", err)
	}
	return r.kv.Set(ctx, reflectionsKey, string(data))
}
