package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestKV(t *testing.T) *SQLiteKV {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteKV(db)
}

func TestSQLiteKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("missing key: ok=%v err=%v", ok, err)
	}

	if err := kv.Set(ctx, "greeting", "hello"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := kv.Get(ctx, "greeting")
	if err != nil || !ok || v != "hello" {
		t.Fatalf("get: v=%q ok=%v err=%v", v, ok, err)
	}

	// Set replaces.
	if err := kv.Set(ctx, "greeting", "hi"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = kv.Get(ctx, "greeting")
	if v != "hi" {
		t.Fatalf("after overwrite: %q", v)
	}
}

func TestMemKVFailWrites(t *testing.T) {
	ctx := context.Background()
	kv := NewMemKV()
	kv.FailWrites = true

	if err := kv.Set(ctx, "k", "v"); err == nil {
		t.Fatalf("expected write failure")
	}
	if _, ok, err := kv.Get(ctx, "k"); err != nil || ok {
		t.Fatalf("failed write should not store: ok=%v err=%v", ok, err)
	}
}
