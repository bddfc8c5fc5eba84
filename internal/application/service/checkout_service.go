package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/internal/domain/repository"
	"github.com/jpmanalo/bakepos-counter/pkg/apperror"
	"go.uber.org/zap"
)

// CheckoutService runs the checkout sequence: validate the cart, resolve the
// cashier and the active shift at the backend, submit the transaction, then
// journal the sale and clear the cart.
type CheckoutService struct {
	cartRepo    repository.CartRepository
	receiptRepo repository.ReceiptRepository
	gateway     repository.BakeryGateway
	log         *zap.Logger
	now         func() time.Time
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	cartRepo repository.CartRepository,
	receiptRepo repository.ReceiptRepository,
	gateway repository.BakeryGateway,
	log *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		cartRepo:    cartRepo,
		receiptRepo: receiptRepo,
		gateway:     gateway,
		log:         log,
		now:         time.Now,
	}
}

// CheckoutResult is returned to the handler when a checkout completes.
type CheckoutResult struct {
	TransactionID int64
	Receipt       *entity.SaleReceipt
	Totals        entity.Totals
}

// Checkout validates the cart and submits the sale. The backend calls run
// strictly in order and the first failure aborts the rest; nothing is rolled
// back because nothing before the final submission writes anything.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID uuid.UUID, username string) (*CheckoutResult, error) {
	cart, err := s.cartRepo.GetOrCreate(ctx, sessionID, username)
	if err != nil {
		return nil, err
	}

	totals, err := s.validate(cart)
	if err != nil {
		return nil, err
	}

	// The checkout key is minted on the first attempt for this cart and
	// reused on retries, so the backend can deduplicate a resubmission
	// after an ambiguous failure.
	if cart.CheckoutKey == "" {
		cart.CheckoutKey = uuid.NewString()
		if err := s.cartRepo.Save(ctx, cart); err != nil {
			return nil, err
		}
	}

	employeeID, err := s.gateway.FindEmployee(ctx, cart.Username)
	if err != nil {
		return nil, s.fail(enum.StageResolvingEmployee, cart, err)
	}
	if employeeID == 0 {
		s.log.Warn("checkout aborted: cashier unknown to backend",
			zap.String("username", cart.Username))
		return nil, apperror.ErrEmployeeNotFound
	}

	scheduleID, err := s.gateway.CurrentScheduleID(ctx)
	if err != nil {
		return nil, s.fail(enum.StageResolvingSchedule, cart, err)
	}
	if scheduleID == 0 {
		s.log.Warn("checkout aborted: no active schedule",
			zap.String("username", cart.Username))
		return nil, apperror.ErrCheckoutFailed
	}

	at := s.now()
	req := entity.NewTransactionRequest(employeeID, scheduleID, cart, totals, at)
	transactionID, err := s.gateway.SubmitTransaction(ctx, req, cart.CheckoutKey)
	if err != nil {
		return nil, s.fail(enum.StageSubmitting, cart, err)
	}

	receipt := entity.NewSaleReceipt(transactionID, employeeID, cart, totals, at)
	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		// The backend already recorded the sale; a journal failure must not
		// turn a completed checkout into an error.
		s.log.Warn("failed to journal completed sale",
			zap.Int64("transaction_id", transactionID), zap.Error(err))
	}

	s.log.Info("checkout completed",
		zap.Int64("transaction_id", transactionID),
		zap.Int64("employee_id", employeeID),
		zap.String("total", totals.DisplayTotal().String()))

	cart.Reset()
	if err := s.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return &CheckoutResult{
		TransactionID: transactionID,
		Receipt:       receipt,
		Totals:        totals,
	}, nil
}

// validate applies the screen's pre-flight checks in their fixed order:
// empty cart, oversized discount, then insufficient payment.
func (s *CheckoutService) validate(cart *entity.Cart) (entity.Totals, error) {
	if cart.IsEmpty() {
		return entity.Totals{}, apperror.ErrEmptyCart
	}

	totals := entity.ComputeTotals(cart)
	if totals.Discount > totals.Subtotal {
		return entity.Totals{}, apperror.ErrInvalidDiscount
	}
	if totals.Paid < totals.Total {
		return entity.Totals{}, apperror.ErrInsufficientPayment
	}
	return totals, nil
}

// fail logs the failing stage and maps any backend error to the generic
// checkout failure shown on screen. The checkout key stays on the cart so a
// retry reuses it.
func (s *CheckoutService) fail(stage enum.CheckoutStage, cart *entity.Cart, err error) error {
	s.log.Error("checkout failed",
		zap.String("stage", stage.String()),
		zap.String("username", cart.Username),
		zap.String("subtotal", cart.Subtotal().String()),
		zap.Error(err))
	return apperror.ErrCheckoutFailed
}
