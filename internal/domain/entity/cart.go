package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/pkg/money"
)

// CartLine is one row of the in-progress order: one per distinct product,
// carrying a quantity. The name and unit price are copied from the catalog
// when the line is created, so a catalog reload never reprices a cart.
type CartLine struct {
	ProductID int64       `json:"product_id"`
	Name      string      `json:"product_name"`
	UnitPrice money.Cents `json:"-"`
	Quantity  int         `json:"quantity"`
}

// Total returns quantity times unit price.
func (l CartLine) Total() money.Cents {
	return l.UnitPrice.MulQty(l.Quantity)
}

// Cart holds the order screen's state for one counter session: the lines,
// the raw payment inputs, and the idempotency key for the current checkout.
// It lives only as long as the session and is discarded on success.
type Cart struct {
	SessionID  uuid.UUID
	Username   string
	Lines      []CartLine
	Discount   string
	AmountPaid string
	Method     enum.PaymentMethod
	// CheckoutKey is generated on the first checkout attempt for this cart
	// and reused on retries, so the backend can deduplicate a resubmission
	// after an ambiguous failure.
	CheckoutKey string
	UpdatedAt   time.Time
}

// NewCart creates an empty cart for a session.
func NewCart(sessionID uuid.UUID, username string) *Cart {
	return &Cart{
		SessionID: sessionID,
		Username:  username,
		Method:    enum.PaymentMethodCash,
		UpdatedAt: time.Now(),
	}
}

// Add puts a product in the cart: an existing line gets its quantity
// incremented by one, otherwise a new line with quantity 1 is appended.
// There is no upper bound on quantity.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	})
}

// Remove deletes the whole line for a product. Removing a product that is
// not in the cart is a no-op, not an error.
func (c *Cart) Remove(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Subtotal sums quantity times unit price over all lines.
func (c *Cart) Subtotal() money.Cents {
	var sum money.Cents
	for _, l := range c.Lines {
		sum += l.Total()
	}
	return sum
}

// Reset clears lines, payment inputs and the checkout key after a completed
// sale, leaving the cart ready for the next customer.
func (c *Cart) Reset() {
	c.Lines = nil
	c.Discount = ""
	c.AmountPaid = ""
	c.Method = enum.PaymentMethodCash
	c.CheckoutKey = ""
	c.UpdatedAt = time.Now()
}
