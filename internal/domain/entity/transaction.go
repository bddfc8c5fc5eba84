package entity

import (
	"time"

	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/pkg/money"
)

// TransactionItem is one line item of a submitted transaction.
type TransactionItem struct {
	ProductID int64
	Quantity  int
	Price     money.Cents
}

// TransactionRequest is the write-only payload submitted to the bakery
// backend when a checkout completes. TotalCost carries the subtotal and
// DiscountedPrice the flat discount, matching what the backend records.
type TransactionRequest struct {
	EmployeeID      int64
	ScheduleID      int64
	TotalCost       money.Cents
	DiscountedPrice money.Cents
	TransactionDate time.Time
	CashPayment     money.Cents
	PaymentMethod   enum.PaymentMethod
	Items           []TransactionItem
}

// NewTransactionRequest assembles the payload from the cart and its totals.
func NewTransactionRequest(employeeID, scheduleID int64, c *Cart, t Totals, at time.Time) *TransactionRequest {
	items := make([]TransactionItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, TransactionItem{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			Price:     l.UnitPrice,
		})
	}
	return &TransactionRequest{
		EmployeeID:      employeeID,
		ScheduleID:      scheduleID,
		TotalCost:       t.Subtotal,
		DiscountedPrice: t.Discount,
		TransactionDate: at,
		CashPayment:     t.Paid,
		PaymentMethod:   c.Method,
		Items:           items,
	}
}
