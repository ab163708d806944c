package cart

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"freshbasket/internal/catalog"
	"freshbasket/internal/domain"
	"freshbasket/internal/store"
)

// Checkout outcome messages.
const (
	MsgCartEmpty = "Cart is empty!"
	MsgThankYou  = "Thank you for your purchase! Your farm-fresh goods are on the way."
)

// Service owns the persisted cart record. Every mutation re-fetches the
// cart before writing, so no in-memory copy survives across calls.
type Service struct {
	kv       kvStore
	products productLookup
	logger   *log.Logger
}

type kvStore interface {
	Load(ctx context.Context, sessionID, key string) ([]byte, error)
	Save(ctx context.Context, sessionID, key string, value []byte) error
	Delete(ctx context.Context, sessionID, key string) error
}

type productLookup interface {
	ByID(id int64) (domain.Product, bool)
}

func New(kv store.KV, products *catalog.Catalog, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{kv: kv, products: products, logger: logger}
}

// Line is a cart line resolved against the catalog.
type Line struct {
	Product       domain.Product
	Quantity      int
	SubtotalPaise int64
}

// Result reports a checkout outcome.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// Load returns the persisted cart. Missing or unparsable data yields an
// empty cart; load failures are logged, never surfaced.
func (s *Service) Load(ctx context.Context, sessionID string) domain.Cart {
	raw, err := s.kv.Load(ctx, sessionID, store.KeyCart)
	if err != nil {
		return nil
	}
	var cart domain.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		s.logger.Printf("cart: session=%s discarding unparsable record: %v", sessionID, err)
		return nil
	}
	return cart
}

// Add increments the quantity of an existing line for productID or
// appends a new line with quantity 1. The id is not validated against
// the catalog; unknown ids are accepted and skipped at render time.
func (s *Service) Add(ctx context.Context, sessionID string, productID int64) error {
	cart := s.Load(ctx, sessionID)
	found := false
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity++
			found = true
			break
		}
	}
	if !found {
		cart = append(cart, domain.CartLine{ProductID: productID, Quantity: 1})
	}
	return s.save(ctx, sessionID, cart)
}

// Remove drops every line for productID. Removing an id that is not in
// the cart is a no-op.
func (s *Service) Remove(ctx context.Context, sessionID string, productID int64) error {
	cart := s.Load(ctx, sessionID)
	kept := cart[:0]
	for _, line := range cart {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	return s.save(ctx, sessionID, kept)
}

// ItemCount is the sum of all line quantities, 0 for an empty cart.
func (s *Service) ItemCount(ctx context.Context, sessionID string) int {
	total := 0
	for _, line := range s.Load(ctx, sessionID) {
		total += line.Quantity
	}
	return total
}

// Resolve maps cart lines to catalog products. Lines referencing
// unknown products are dropped silently.
func (s *Service) Resolve(cart domain.Cart) []Line {
	var lines []Line
	for _, l := range cart {
		product, ok := s.products.ByID(l.ProductID)
		if !ok {
			continue
		}
		lines = append(lines, Line{
			Product:       product,
			Quantity:      l.Quantity,
			SubtotalPaise: product.PricePaise * int64(l.Quantity),
		})
	}
	return lines
}

// TotalPaise sums unit price times quantity over resolvable lines.
// Unknown products contribute 0.
func (s *Service) TotalPaise(cart domain.Cart) int64 {
	var total int64
	for _, l := range cart {
		product, ok := s.products.ByID(l.ProductID)
		if !ok {
			continue
		}
		total += product.PricePaise * int64(l.Quantity)
	}
	return total
}

// Checkout clears a non-empty cart and reports the outcome. An empty
// cart fails without touching the store. The error return covers store
// failures only; business outcomes live in the Result.
func (s *Service) Checkout(ctx context.Context, sessionID string) (Result, error) {
	if len(s.Load(ctx, sessionID)) == 0 {
		return Result{OK: false, Message: MsgCartEmpty}, nil
	}
	if err := s.kv.Delete(ctx, sessionID, store.KeyCart); err != nil {
		return Result{}, err
	}
	return Result{OK: true, Message: MsgThankYou}, nil
}

func (s *Service) save(ctx context.Context, sessionID string, cart domain.Cart) error {
	if cart == nil {
		cart = domain.Cart{}
	}
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.kv.Save(ctx, sessionID, store.KeyCart, raw)
}
