package catalog

import "freshbasket/internal/domain"

// Catalog is the fixed list of purchasable products. It is read-only
// after construction; lookups never mutate it.
type Catalog struct {
	products []domain.Product
	byID     map[int64]int
}

// New builds a catalog from the given products, preserving order.
func New(products []domain.Product) *Catalog {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &Catalog{products: products, byID: byID}
}

// Fixed returns the built-in storefront catalog.
func Fixed() *Catalog {
	return New(fixedProducts)
}

// All returns every product in catalog order. Callers must not modify
// the returned slice.
func (c *Catalog) All() []domain.Product {
	return c.products
}

// ByID resolves a product id. The second return is false for unknown
// ids; callers are expected to skip those silently.
func (c *Catalog) ByID(id int64) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

var fixedProducts = []domain.Product{
	{
		ID:         1,
		Name:       "Fresh Tomatoes",
		PricePaise: 2900,
		Image:      "basket-full-tomatoes.jpg",
		Tags:       []string{"Vegetable", "Organic"},
		Rating:     4.5,
	},
	{
		ID:         2,
		Name:       "Organic Carrots",
		PricePaise: 1900,
		Image:      "fresh-carrots-old-wooden-surface.jpg",
		Tags:       []string{"Vegetable", "Organic"},
		Rating:     4.2,
	},
	{
		ID:         3,
		Name:       "Green Broccoli",
		PricePaise: 2500,
		Image:      "white-plate-healthy-fresh-broccoli-stone-background.jpg",
		Tags:       []string{"Vegetable", "Fresh"},
		Rating:     4.7,
	},
	{
		ID:         4,
		Name:       "Sweet Corn",
		PricePaise: 2000,
		Image:      "seeds-sweet-corn-wooden-table.jpg",
		Tags:       []string{"Grain", "Seasonal"},
		Rating:     4.6,
	},
	{
		ID:         5,
		Name:       "Golden Potatoes",
		PricePaise: 1800,
		Image:      "natural-potatoes-table.jpg",
		Tags:       []string{"Vegetable"},
		Rating:     4.3,
	},
	{
		ID:         6,
		Name:       "Red Apples",
		PricePaise: 3500,
		Image:      "delicious-red-apples-isolated-white-table.jpg",
		Tags:       []string{"Fruit", "Organic"},
		Rating:     4.8,
	},
	{
		ID:         7,
		Name:       "Juicy Oranges",
		PricePaise: 3000,
		Image:      "oranges-market-stall.jpg",
		Tags:       []string{"Fruit", "Fresh"},
		Rating:     4.4,
	},
	{
		ID:         8,
		Name:       "Fresh Spinach",
		PricePaise: 2200,
		Image:      "fresh-green-baby-spinach-leaves-natural-background.jpg",
		Tags:       []string{"Vegetable", "Leafy"},
		Rating:     4.1,
	},
	{
		ID:         9,
		Name:       "Farm Eggs (Dozen)",
		PricePaise: 4000,
		Image:      "front-view-white-chicken-eggs-inside-basket-with-towel-dark-surface.jpg",
		Tags:       []string{"Eggs", "Farm Fresh"},
		Rating:     4.9,
	},
	{
		ID:         10,
		Name:       "Raw Honey",
		PricePaise: 5900,
		Image:      "front-view-honey-dipper-dripping-honey-honeycomb.jpg",
		Tags:       []string{"Honey", "Organic"},
		Rating:     5.0,
	},
}
