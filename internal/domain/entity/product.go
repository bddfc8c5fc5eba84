package entity

import (
	"encoding/json"

	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/pkg/money"
)

// Product is one item of the catalog snapshot fetched from the bakery
// backend. The snapshot is immutable; carts copy what they need at add time.
type Product struct {
	ID         int64
	Name       string
	Price      money.Cents
	CategoryID enum.Category
}

// MarshalJSON exposes the price both as a decimal and as the exact
// two-decimal string the tiles display.
func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID           int64   `json:"product_id"`
		Name         string  `json:"product_name"`
		Price        float64 `json:"price"`
		PriceDisplay string  `json:"price_display"`
	}{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price.Float64(),
		PriceDisplay: p.Price.String(),
	})
}
