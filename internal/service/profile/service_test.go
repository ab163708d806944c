package profile

import (
	"context"
	"encoding/json"
	"testing"

	"freshbasket/internal/domain"
	"freshbasket/internal/store"
)

const sid = "session-1"

func TestLoadMissingDefaultsToGuest(t *testing.T) {
	svc := New(store.NewMemory(), nil)
	p := svc.Load(context.Background(), sid)
	if p.Name != domain.GuestName || p.Email != "" {
		t.Fatalf("unexpected default profile %+v", p)
	}
}

func TestLoadUnparsableDefaultsToGuest(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Save(context.Background(), sid, store.KeyUser, []byte("{broken")); err != nil {
		t.Fatalf("save: %v", err)
	}
	svc := New(kv, nil)
	p := svc.Load(context.Background(), sid)
	if p.Name != domain.GuestName || p.Email != "" {
		t.Fatalf("unexpected profile %+v", p)
	}
}

func TestSaveTrimsFields(t *testing.T) {
	svc := New(store.NewMemory(), nil)
	p, err := svc.Save(context.Background(), sid, "  Ravi  ", "  ravi@example.com ")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if p.Name != "Ravi" || p.Email != "ravi@example.com" {
		t.Fatalf("unexpected stored profile %+v", p)
	}
}

func TestSaveBlankNamePersistsGuest(t *testing.T) {
	kv := store.NewMemory()
	svc := New(kv, nil)
	ctx := context.Background()

	if _, err := svc.Save(ctx, sid, "  ", "someone@example.com"); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := kv.Load(ctx, sid, store.KeyUser)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	var stored domain.Profile
	if err := json.Unmarshal(raw, &stored); err != nil {
		t.Fatalf("unmarshal record: %v", err)
	}
	if stored.Name != domain.GuestName {
		t.Fatalf("persisted name = %q, want %q", stored.Name, domain.GuestName)
	}

	if p := svc.LoadForEdit(ctx, sid); p.Name != "" {
		t.Fatalf("edit name = %q, want empty", p.Name)
	}
}

func TestLoadForEditKeepsRealName(t *testing.T) {
	svc := New(store.NewMemory(), nil)
	ctx := context.Background()

	if _, err := svc.Save(ctx, sid, "Asha", "asha@example.com"); err != nil {
		t.Fatalf("save: %v", err)
	}
	p := svc.LoadForEdit(ctx, sid)
	if p.Name != "Asha" || p.Email != "asha@example.com" {
		t.Fatalf("unexpected profile %+v", p)
	}
}
