package seed

import (
	"context"
	"fmt"
	"log"

	"freshbasket/internal/catalog"
	"freshbasket/internal/domain"
	cartsvc "freshbasket/internal/service/cart"
	profilesvc "freshbasket/internal/service/profile"
	"freshbasket/internal/store"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoSessionID is the fixed session seeded for manual testing. Set a
// fb_session cookie to this value to browse the seeded state.
const DemoSessionID = "00000000-0000-0000-0000-000000000001"

// Apply preloads a demo session with a profile and a two-line cart. It
// is idempotent: rerunning overwrites the same records.
func Apply(ctx context.Context, pool *pgxpool.Pool, logger *log.Logger) error {
	kv := store.NewPostgres(pool, logger)

	profiles := profilesvc.New(kv, logger)
	if _, err := profiles.Save(ctx, DemoSessionID, "Asha", "asha@example.com"); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	if err := kv.Delete(ctx, DemoSessionID, store.KeyCart); err != nil {
		return fmt.Errorf("reset cart: %w", err)
	}
	carts := cartsvc.New(kv, catalog.Fixed(), logger)
	for _, line := range []domain.CartLine{
		{ProductID: 1, Quantity: 2},
		{ProductID: 6, Quantity: 1},
	} {
		for i := 0; i < line.Quantity; i++ {
			if err := carts.Add(ctx, DemoSessionID, line.ProductID); err != nil {
				return fmt.Errorf("seed cart line %d: %w", line.ProductID, err)
			}
		}
	}
	return nil
}
