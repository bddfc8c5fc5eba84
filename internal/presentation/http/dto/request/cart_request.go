package request

// AddItemRequest adds one unit of a product to the cart.
type AddItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
}

// PaymentRequest carries the payment panel fields as typed. Discount and
// amount paid are free-text; the server sanitizes them. Method is one of the
// selector labels and may be omitted to keep the current selection.
type PaymentRequest struct {
	Discount   string `json:"discount"`
	AmountPaid string `json:"amount_paid"`
	Method     string `json:"payment_method"`
}
