package response

import (
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
)

// CartItem is one cart line with display amounts.
type CartItem struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"product_name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

// TotalsResponse is the payment panel. Total and change are floored at zero
// the way the screen displays them; the discount and paid fields echo the
// parsed values of the raw inputs.
type TotalsResponse struct {
	Subtotal      float64 `json:"subtotal"`
	Discount      float64 `json:"discount"`
	Total         float64 `json:"total"`
	TotalDisplay  string  `json:"total_display"`
	AmountPaid    float64 `json:"amount_paid"`
	Change        float64 `json:"change"`
	ChangeDisplay string  `json:"change_display"`
}

// CartResponse is the full order screen state for a session.
type CartResponse struct {
	Items         []CartItem     `json:"items"`
	Discount      string         `json:"discount"`
	AmountPaid    string         `json:"amount_paid"`
	PaymentMethod string         `json:"payment_method"`
	Totals        TotalsResponse `json:"totals"`
}

// NewCartResponse builds the cart payload from the cart and its totals.
func NewCartResponse(cart *entity.Cart, totals entity.Totals) *CartResponse {
	items := make([]CartItem, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, CartItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice.Float64(),
			LineTotal: l.Total().Float64(),
		})
	}
	return &CartResponse{
		Items:         items,
		Discount:      cart.Discount,
		AmountPaid:    cart.AmountPaid,
		PaymentMethod: cart.Method.String(),
		Totals:        NewTotalsResponse(totals),
	}
}

// NewTotalsResponse builds the payment panel payload.
func NewTotalsResponse(t entity.Totals) TotalsResponse {
	return TotalsResponse{
		Subtotal:      t.Subtotal.Float64(),
		Discount:      t.Discount.Float64(),
		Total:         t.DisplayTotal().Float64(),
		TotalDisplay:  t.DisplayTotal().String(),
		AmountPaid:    t.Paid.Float64(),
		Change:        t.DisplayChange().Float64(),
		ChangeDisplay: t.DisplayChange().String(),
	}
}
