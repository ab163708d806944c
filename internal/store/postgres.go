package store

import (
	"context"
	"errors"
	"io"
	"log"

	"freshbasket/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresKV struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a KV backed by the kv_records table.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) KV {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresKV{pool: pool, logger: logger}
}

func (s *postgresKV) Load(ctx context.Context, sessionID, key string) ([]byte, error) {
	const q = `
SELECT value
FROM kv_records
WHERE session_id = $1 AND key = $2
`
	var value []byte
	err := s.pool.QueryRow(ctx, q, sessionID, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		s.logger.Printf("kv store: load session=%s key=%s error=%v", sessionID, key, err)
		return nil, err
	}
	return value, nil
}

func (s *postgresKV) Save(ctx context.Context, sessionID, key string, value []byte) error {
	const q = `
INSERT INTO kv_records (session_id, key, value, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (session_id, key) DO UPDATE
SET value = EXCLUDED.value,
    updated_at = now()
`
	if _, err := s.pool.Exec(ctx, q, sessionID, key, value); err != nil {
		s.logger.Printf("kv store: save session=%s key=%s error=%v", sessionID, key, err)
		return err
	}
	return nil
}

func (s *postgresKV) Delete(ctx context.Context, sessionID, key string) error {
	const q = `
DELETE FROM kv_records
WHERE session_id = $1 AND key = $2
`
	if _, err := s.pool.Exec(ctx, q, sessionID, key); err != nil {
		s.logger.Printf("kv store: delete session=%s key=%s error=%v", sessionID, key, err)
		return err
	}
	return nil
}
