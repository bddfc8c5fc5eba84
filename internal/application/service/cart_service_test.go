package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	infraRepo "github.com/jpmanalo/bakepos-counter/internal/infrastructure/repository"
	"github.com/jpmanalo/bakepos-counter/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T, products ...entity.Product) *CartService {
	t.Helper()
	catalog := infraRepo.NewMemoryCatalogRepository()
	require.NoError(t, catalog.Replace(context.Background(), products))
	return NewCartService(infraRepo.NewMemoryCartRepository(time.Hour), catalog)
}

func TestAddItemCopiesCatalogAttributes(t *testing.T) {
	svc := newCartService(t,
		entity.Product{ID: 1, Name: "Choco Chip", Price: 1250, CategoryID: enum.CategoryCookies},
	)
	sessionID := uuid.New()

	cart, totals, err := svc.AddItem(context.Background(), sessionID, "ana", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "Choco Chip", cart.Lines[0].Name)
	assert.EqualValues(t, 1250, cart.Lines[0].UnitPrice)
	assert.EqualValues(t, 1250, totals.Subtotal)

	// A second add increments the same line.
	cart, totals, err = svc.AddItem(context.Background(), sessionID, "ana", 1)
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.EqualValues(t, 2500, totals.Subtotal)
}

func TestAddItemUnknownProduct(t *testing.T) {
	svc := newCartService(t)

	_, _, err := svc.AddItem(context.Background(), uuid.New(), "ana", 99)
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	assert.Equal(t, 404, appErr.Code)
}

func TestRemoveItemDeletesWholeLine(t *testing.T) {
	svc := newCartService(t,
		entity.Product{ID: 1, Name: "Choco Chip", Price: 1250, CategoryID: enum.CategoryCookies},
	)
	sessionID := uuid.New()

	_, _, err := svc.AddItem(context.Background(), sessionID, "ana", 1)
	require.NoError(t, err)
	_, _, err = svc.AddItem(context.Background(), sessionID, "ana", 1)
	require.NoError(t, err)

	cart, totals, err := svc.RemoveItem(context.Background(), sessionID, "ana", 1)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Zero(t, totals.Subtotal)

	// Removing again is a no-op, not an error.
	_, _, err = svc.RemoveItem(context.Background(), sessionID, "ana", 1)
	assert.NoError(t, err)
}

func TestSetPaymentSanitizesInputs(t *testing.T) {
	svc := newCartService(t,
		entity.Product{ID: 1, Name: "Choco Chip", Price: 1000, CategoryID: enum.CategoryCookies},
	)
	sessionID := uuid.New()
	_, _, err := svc.AddItem(context.Background(), sessionID, "ana", 1)
	require.NoError(t, err)

	cart, totals, err := svc.SetPayment(context.Background(), sessionID, "ana", PaymentInput{
		Discount:   "-2.5",
		AmountPaid: "1.2.3",
		Method:     "Digital Wallet",
	})
	require.NoError(t, err)
	assert.Equal(t, "2.5", cart.Discount)
	assert.Equal(t, "1.2", cart.AmountPaid)
	assert.Equal(t, enum.PaymentMethodDigitalWallet, cart.Method)
	assert.EqualValues(t, 250, totals.Discount)
	assert.EqualValues(t, 120, totals.Paid)
}

func TestSetPaymentUnknownMethodRejected(t *testing.T) {
	svc := newCartService(t)

	_, _, err := svc.SetPayment(context.Background(), uuid.New(), "ana", PaymentInput{Method: "Barter"})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestSetPaymentEmptyMethodKeepsSelection(t *testing.T) {
	svc := newCartService(t)
	sessionID := uuid.New()

	_, _, err := svc.SetPayment(context.Background(), sessionID, "ana", PaymentInput{Method: "Digital Wallet"})
	require.NoError(t, err)

	cart, _, err := svc.SetPayment(context.Background(), sessionID, "ana", PaymentInput{Discount: "5"})
	require.NoError(t, err)
	assert.Equal(t, enum.PaymentMethodDigitalWallet, cart.Method)
}
