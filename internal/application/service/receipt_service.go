package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/config"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/repository"
	"github.com/jpmanalo/bakepos-counter/pkg/apperror"
	"github.com/jpmanalo/bakepos-counter/pkg/money"
	"github.com/jpmanalo/bakepos-counter/pkg/pagination"
	"github.com/jpmanalo/bakepos-counter/pkg/printer"
)

// ReceiptService serves the journal of completed sales and reprints them on
// the thermal printer.
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	printer     printer.Printer
	store       config.StoreConfig
	printerType string
	width       int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	p printer.Printer,
	store config.StoreConfig,
	printerCfg config.PrinterConfig,
) *ReceiptService {
	return &ReceiptService{
		receiptRepo: receiptRepo,
		printer:     p,
		store:       store,
		printerType: printerCfg.Type,
		width:       printerCfg.Width,
	}
}

// Get returns one journaled sale with its lines.
func (s *ReceiptService) Get(ctx context.Context, id uuid.UUID) (*entity.SaleReceipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// List returns journaled sales newest first.
func (s *ReceiptService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SaleReceipt], error) {
	params.Validate()
	receipts, total, err := s.receiptRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(receipts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// Print renders a journaled sale as ESC/POS and sends it to the printer.
func (s *ReceiptService) Print(ctx context.Context, id uuid.UUID) error {
	receipt, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.printer.Print(s.render(receipt)); err != nil {
		return fmt.Errorf("print receipt %s: %w", id, err)
	}
	return nil
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// Status returns printer connection status.
func (s *ReceiptService) Status() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

func (s *ReceiptService) render(r *entity.SaleReceipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).SetFontSize(printer.FontDouble).
		Text(s.store.Name).
		SetFontSize(printer.FontNormal).SetBold(false)
	if s.store.Address != "" {
		doc.Text(s.store.Address)
	}
	if s.store.Phone != "" {
		doc.Text(s.store.Phone)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-').
		KeyValue("Receipt", fmt.Sprintf("#%d", r.TransactionID)).
		KeyValue("Date", r.TransactionDate.Format("2006-01-02 15:04")).
		KeyValue("Cashier", r.Cashier).
		Separator('-')

	for _, line := range r.Lines {
		doc.ItemLine(line.Quantity, line.Name, money.Cents(line.Total).String())
	}

	doc.Separator('-').
		KeyValue("Subtotal", money.Cents(r.SubTotal).String()).
		KeyValue("Discount", money.Cents(r.Discount).String()).
		SetBold(true).
		KeyValue("TOTAL", money.Cents(r.Total).String()).
		SetBold(false).
		KeyValue("Paid", money.Cents(r.AmountPaid).String()).
		KeyValue("Change", money.Cents(r.Change).String()).
		KeyValue("Payment", r.PaymentMethod.String()).
		Separator('-')

	doc.SetAlign(printer.AlignCenter).
		Text("Thank you!").
		FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
