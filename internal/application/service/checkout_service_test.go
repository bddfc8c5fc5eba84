package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	infraRepo "github.com/jpmanalo/bakepos-counter/internal/infrastructure/repository"
	"github.com/jpmanalo/bakepos-counter/pkg/apperror"
	"github.com/jpmanalo/bakepos-counter/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockGateway struct {
	employeeID    int64
	employeeErr   error
	scheduleID    int64
	scheduleErr   error
	transactionID int64
	submitErr     error

	calls       []string
	lastRequest *entity.TransactionRequest
	lastKeys    []string
}

func (m *mockGateway) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	m.calls = append(m.calls, "products")
	return nil, nil
}

func (m *mockGateway) FindEmployee(ctx context.Context, username string) (int64, error) {
	m.calls = append(m.calls, "employee")
	return m.employeeID, m.employeeErr
}

func (m *mockGateway) CurrentScheduleID(ctx context.Context) (int64, error) {
	m.calls = append(m.calls, "schedule")
	return m.scheduleID, m.scheduleErr
}

func (m *mockGateway) SubmitTransaction(ctx context.Context, req *entity.TransactionRequest, key string) (int64, error) {
	m.calls = append(m.calls, "submit")
	m.lastRequest = req
	m.lastKeys = append(m.lastKeys, key)
	return m.transactionID, m.submitErr
}

type mockReceiptStore struct {
	created   []*entity.SaleReceipt
	createErr error
}

func (m *mockReceiptStore) Create(ctx context.Context, r *entity.SaleReceipt) error {
	m.created = append(m.created, r)
	return m.createErr
}

func (m *mockReceiptStore) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleReceipt, error) {
	for _, r := range m.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockReceiptStore) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SaleReceipt, int64, error) {
	out := make([]entity.SaleReceipt, 0, len(m.created))
	for _, r := range m.created {
		out = append(out, *r)
	}
	return out, int64(len(out)), nil
}

type checkoutFixture struct {
	svc       *CheckoutService
	gateway   *mockGateway
	receipts  *mockReceiptStore
	sessionID uuid.UUID
}

func newCheckoutFixture(t *testing.T, gw *mockGateway) *checkoutFixture {
	t.Helper()
	carts := infraRepo.NewMemoryCartRepository(time.Hour)
	receipts := &mockReceiptStore{}
	return &checkoutFixture{
		svc:       NewCheckoutService(carts, receipts, gw, zap.NewNop()),
		gateway:   gw,
		receipts:  receipts,
		sessionID: uuid.New(),
	}
}

func (f *checkoutFixture) loadCart(t *testing.T, discount, paid string) {
	t.Helper()
	cart, err := f.svc.cartRepo.GetOrCreate(context.Background(), f.sessionID, "ana")
	require.NoError(t, err)
	cart.Add(entity.Product{ID: 1, Name: "Choco Chip", Price: 1000, CategoryID: enum.CategoryCookies})
	cart.Add(entity.Product{ID: 1, Name: "Choco Chip", Price: 1000, CategoryID: enum.CategoryCookies})
	cart.Discount = discount
	cart.AmountPaid = paid
	require.NoError(t, f.svc.cartRepo.Save(context.Background(), cart))
}

func TestCheckoutEmptyCartMakesNoBackendCalls(t *testing.T) {
	f := newCheckoutFixture(t, &mockGateway{})

	_, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	assert.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Empty(t, f.gateway.calls)
}

func TestCheckoutInsufficientPaymentMakesNoBackendCalls(t *testing.T) {
	f := newCheckoutFixture(t, &mockGateway{})
	f.loadCart(t, "", "10")

	_, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	assert.ErrorIs(t, err, apperror.ErrInsufficientPayment)
	assert.Empty(t, f.gateway.calls)
}

func TestCheckoutOversizedDiscountRejected(t *testing.T) {
	f := newCheckoutFixture(t, &mockGateway{})
	f.loadCart(t, "25", "100")

	_, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	assert.ErrorIs(t, err, apperror.ErrInvalidDiscount)
	assert.Empty(t, f.gateway.calls)
}

func TestCheckoutUnknownEmployeeStopsSequence(t *testing.T) {
	f := newCheckoutFixture(t, &mockGateway{employeeID: 0})
	f.loadCart(t, "", "20")

	_, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	assert.ErrorIs(t, err, apperror.ErrEmployeeNotFound)
	assert.Equal(t, []string{"employee"}, f.gateway.calls)
}

func TestCheckoutSuccess(t *testing.T) {
	gw := &mockGateway{employeeID: 42, scheduleID: 7, transactionID: 1001}
	f := newCheckoutFixture(t, gw)
	f.loadCart(t, "5", "20")

	result, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), result.TransactionID)
	assert.Equal(t, []string{"employee", "schedule", "submit"}, gw.calls)

	// The submitted payload carries the subtotal, the flat discount and the
	// raw amount paid.
	require.NotNil(t, gw.lastRequest)
	assert.Equal(t, int64(42), gw.lastRequest.EmployeeID)
	assert.Equal(t, int64(7), gw.lastRequest.ScheduleID)
	assert.EqualValues(t, 2000, gw.lastRequest.TotalCost)
	assert.EqualValues(t, 500, gw.lastRequest.DiscountedPrice)
	assert.EqualValues(t, 2000, gw.lastRequest.CashPayment)
	require.Len(t, gw.lastRequest.Items, 1)
	assert.Equal(t, 2, gw.lastRequest.Items[0].Quantity)

	// The sale was journaled with computed change.
	require.Len(t, f.receipts.created, 1)
	assert.Equal(t, int64(1001), f.receipts.created[0].TransactionID)
	assert.EqualValues(t, 500, f.receipts.created[0].Change)

	// The cart is ready for the next customer.
	cart, err := f.svc.cartRepo.GetOrCreate(context.Background(), f.sessionID, "ana")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Discount)
	assert.Empty(t, cart.CheckoutKey)
}

func TestCheckoutBackendFailureMapsToGenericError(t *testing.T) {
	gw := &mockGateway{employeeID: 42, scheduleErr: errors.New("connection refused")}
	f := newCheckoutFixture(t, gw)
	f.loadCart(t, "", "20")

	_, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	assert.ErrorIs(t, err, apperror.ErrCheckoutFailed)
	assert.Equal(t, []string{"employee", "schedule"}, gw.calls)
}

func TestCheckoutRetriesReuseIdempotencyKey(t *testing.T) {
	gw := &mockGateway{employeeID: 42, scheduleID: 7, submitErr: errors.New("timeout")}
	f := newCheckoutFixture(t, gw)
	f.loadCart(t, "", "20")

	_, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	assert.ErrorIs(t, err, apperror.ErrCheckoutFailed)

	// Retry the same cart; the submission must carry the same key.
	gw.submitErr = nil
	gw.transactionID = 1002
	result, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1002), result.TransactionID)

	require.Len(t, gw.lastKeys, 2)
	assert.NotEmpty(t, gw.lastKeys[0])
	assert.Equal(t, gw.lastKeys[0], gw.lastKeys[1])
}

func TestCheckoutJournalFailureDoesNotFailCheckout(t *testing.T) {
	gw := &mockGateway{employeeID: 42, scheduleID: 7, transactionID: 1003}
	f := newCheckoutFixture(t, gw)
	f.receipts.createErr = errors.New("db down")
	f.loadCart(t, "", "20")

	result, err := f.svc.Checkout(context.Background(), f.sessionID, "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(1003), result.TransactionID)
}
