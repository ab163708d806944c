package store

import "context"

// Record names used by the storefront. Each holds one JSON document
// per visitor session.
const (
	KeyUser = "user"
	KeyCart = "cart"
)

// KV persists raw JSON records keyed by visitor session and record
// name. Load returns domain.ErrNotFound for keys that were never
// written or were deleted.
//
// There are no cross-key transactions and no locking: a load-mutate-save
// sequence is not atomic, and concurrent writers to the same key follow
// last-write-wins. That matches the single-visitor usage this store is
// built for.
type KV interface {
	Load(ctx context.Context, sessionID, key string) ([]byte, error)
	Save(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}
