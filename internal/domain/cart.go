package domain

// CartLine references a product by id with a quantity of at least 1.
// A cart holds at most one line per product id; repeat adds increment
// the existing line's quantity. The JSON shape matches the persisted
// "cart" record exactly.
type CartLine struct {
	ProductID int64 `json:"id"`
	Quantity  int   `json:"qty"`
}

// Cart is the ordered line sequence persisted under the "cart" record.
// Order is insertion order.
type Cart []CartLine
