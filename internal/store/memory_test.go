package store

import (
	"context"
	"errors"
	"testing"

	"freshbasket/internal/domain"
)

func TestMemoryRoundTrip(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	if _, err := kv.Load(ctx, "s", KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Save(ctx, "s", KeyCart, []byte(`[{"id":1,"qty":2}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := kv.Load(ctx, "s", KeyCart)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"id":1,"qty":2}]` {
		t.Fatalf("unexpected value %s", got)
	}

	// Overwrite wins.
	if err := kv.Save(ctx, "s", KeyCart, []byte(`[]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err = kv.Load(ctx, "s", KeyCart)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[]` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := kv.Delete(ctx, "s", KeyCart); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Load(ctx, "s", KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemorySessionsAreIsolated(t *testing.T) {
	kv := NewMemory()
	ctx := context.Background()

	if err := kv.Save(ctx, "a", KeyUser, []byte(`{"name":"Asha","email":""}`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := kv.Load(ctx, "b", KeyUser); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected other session to be empty, got %v", err)
	}
}
