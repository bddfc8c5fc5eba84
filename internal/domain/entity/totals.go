package entity

import "github.com/jpmanalo/bakepos-counter/pkg/money"

// Totals is the pure derivation of the payment panel from the cart and the
// raw discount / amount-paid inputs. All values are internal (unclamped);
// the display accessors apply the screen's floor-at-zero rules.
type Totals struct {
	Subtotal money.Cents
	Discount money.Cents
	Total    money.Cents
	Paid     money.Cents
	Change   money.Cents
}

// ComputeTotals recomputes the panel from current state. Unparseable or
// empty inputs count as zero; sanitizing makes negatives impossible.
func ComputeTotals(c *Cart) Totals {
	discount, err := money.Parse(c.Discount)
	if err != nil {
		discount = 0
	}
	paid, err := money.Parse(c.AmountPaid)
	if err != nil {
		paid = 0
	}

	subtotal := c.Subtotal()
	total := subtotal - discount
	return Totals{
		Subtotal: subtotal,
		Discount: discount,
		Total:    total,
		Paid:     paid,
		Change:   paid - total,
	}
}

// DisplayTotal is the total floored at zero, so an oversized discount never
// shows a negative amount due.
func (t Totals) DisplayTotal() money.Cents {
	return t.Total.ClampZero()
}

// DisplayChange is the change floored at zero; an underpayment shows 0.00
// and is instead rejected by checkout validation.
func (t Totals) DisplayChange() money.Cents {
	return t.Change.ClampZero()
}
