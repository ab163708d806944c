package domain

// Product is one catalog entry. The catalog is fixed at process start
// and never mutated, so products carry no version or timestamps.
// Prices are stored as integer paise; formatting happens at render time.
type Product struct {
	ID         int64    `json:"id"`
	Name       string   `json:"name"`
	PricePaise int64    `json:"pricePaise"`
	Image      string   `json:"image"`
	Tags       []string `json:"tags"`
	Rating     float64  `json:"rating"`
}
