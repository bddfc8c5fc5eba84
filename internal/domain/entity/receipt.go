package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"gorm.io/gorm"
)

// SaleReceipt is the locally journaled record of a completed checkout. The
// transaction stored by the bakery backend stays authoritative; the journal
// lets the counter list and reprint its own sales.
type SaleReceipt struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TransactionID   int64              `gorm:"not null;index" json:"transaction_id"`
	EmployeeID      int64              `gorm:"not null" json:"employee_id"`
	Cashier         string             `gorm:"size:255" json:"cashier"`
	SubTotal        int64              `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Discount        int64              `gorm:"default:0" json:"-"`
	Total           int64              `gorm:"not null" json:"-"`
	AmountPaid      int64              `gorm:"not null" json:"-"`
	Change          int64              `gorm:"default:0" json:"-"`
	PaymentMethod   enum.PaymentMethod `gorm:"default:0" json:"payment_method"`
	TransactionDate time.Time          `gorm:"not null" json:"transaction_date"`
	CreatedAt       time.Time          `json:"created_at"`

	Lines []SaleReceiptLine `gorm:"foreignKey:ReceiptID" json:"lines,omitempty"`
}

// MarshalJSON converts the cent amounts to decimals for API responses.
func (r SaleReceipt) MarshalJSON() ([]byte, error) {
	type Alias SaleReceipt
	return json.Marshal(&struct {
		Alias
		SubTotal   float64 `json:"sub_total"`
		Discount   float64 `json:"discount"`
		Total      float64 `json:"total"`
		AmountPaid float64 `json:"amount_paid"`
		Change     float64 `json:"change"`
	}{
		Alias:      Alias(r),
		SubTotal:   float64(r.SubTotal) / 100,
		Discount:   float64(r.Discount) / 100,
		Total:      float64(r.Total) / 100,
		AmountPaid: float64(r.AmountPaid) / 100,
		Change:     float64(r.Change) / 100,
	})
}

// BeforeCreate generates a UUID before inserting a new receipt
func (r *SaleReceipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleReceipt model
func (SaleReceipt) TableName() string {
	return "sale_receipts"
}

// SaleReceiptLine is one journaled line item of a completed sale.
type SaleReceiptLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID uuid.UUID `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ProductID int64     `gorm:"not null" json:"product_id"`
	Name      string    `gorm:"size:255;not null" json:"product_name"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	UnitPrice int64     `gorm:"not null" json:"-"` // Stored in cents, excluded from JSON
	Total     int64     `gorm:"not null" json:"-"`
}

// MarshalJSON converts the cent amounts to decimals for API responses.
func (l SaleReceiptLine) MarshalJSON() ([]byte, error) {
	type Alias SaleReceiptLine
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unit_price"`
		Total     float64 `json:"total"`
	}{
		Alias:     Alias(l),
		UnitPrice: float64(l.UnitPrice) / 100,
		Total:     float64(l.Total) / 100,
	})
}

// BeforeCreate generates a UUID before inserting a new receipt line
func (l *SaleReceiptLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleReceiptLine model
func (SaleReceiptLine) TableName() string {
	return "sale_receipt_lines"
}

// NewSaleReceipt journals a completed checkout.
func NewSaleReceipt(transactionID, employeeID int64, c *Cart, t Totals, at time.Time) *SaleReceipt {
	r := &SaleReceipt{
		TransactionID:   transactionID,
		EmployeeID:      employeeID,
		Cashier:         c.Username,
		SubTotal:        int64(t.Subtotal),
		Discount:        int64(t.Discount),
		Total:           int64(t.DisplayTotal()),
		AmountPaid:      int64(t.Paid),
		Change:          int64(t.DisplayChange()),
		PaymentMethod:   c.Method,
		TransactionDate: at,
	}
	for _, l := range c.Lines {
		r.Lines = append(r.Lines, SaleReceiptLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: int64(l.UnitPrice),
			Total:     int64(l.Total()),
		})
	}
	return r
}
