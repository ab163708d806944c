package store

import (
	"context"
	"errors"
	"os"
	"testing"

	"freshbasket/internal/domain"
	"freshbasket/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

func TestPostgres_RoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := testPool(ctx, t)
	defer pool.Close()

	if err := migrate.Apply(ctx, pool); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	resetTable(ctx, t, pool)

	kv := NewPostgres(pool, nil)
	const session = "itest-session"

	if _, err := kv.Load(ctx, session, KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := kv.Save(ctx, session, KeyCart, []byte(`[{"id":1,"qty":2}]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := kv.Load(ctx, session, KeyCart)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `[{"id":1,"qty":2}]` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := kv.Save(ctx, session, KeyCart, []byte(`[{"id":1,"qty":3}]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = kv.Load(ctx, session, KeyCart)
	if err != nil {
		t.Fatalf("load after overwrite: %v", err)
	}
	if string(got) != `[{"id":1,"qty":3}]` {
		t.Fatalf("unexpected value %s", got)
	}

	if err := kv.Delete(ctx, session, KeyCart); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := kv.Load(ctx, session, KeyCart); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func testPool(ctx context.Context, t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return pool
}

func resetTable(ctx context.Context, t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(ctx, `TRUNCATE kv_records`); err != nil {
		t.Fatalf("truncate kv_records: %v", err)
	}
}
