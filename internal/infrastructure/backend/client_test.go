package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/pkg/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, zap.NewNop()), srv
}

func TestFetchProductsNormalizesPrices(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// Prices arrive both as numbers and as numeric strings.
		w.Write([]byte(`[
			{"ProductID":1,"ProductName":"Choco Chip","Price":12.5,"CategoryID":1},
			{"ProductID":2,"ProductName":"Fudge Bar","Price":"30.00","CategoryID":2},
			{"ProductID":3,"ProductName":"Mystery","Price":"oops","CategoryID":3},
			{"ProductID":4,"ProductName":"Sample Pack","Price":"5","CategoryID":9}
		]`))
	}))

	products, err := client.FetchProducts(context.Background())
	require.NoError(t, err)

	// The malformed price is dropped; the unknown category is kept (the
	// catalog store decides visibility).
	require.Len(t, products, 3)
	assert.Equal(t, money.Cents(1250), products[0].Price)
	assert.Equal(t, money.Cents(3000), products[1].Price)
	assert.Equal(t, enum.Category(9), products[2].CategoryID)
}

func TestFindEmployee(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "ana", r.URL.Query().Get("username"))
		w.Write([]byte(`{"EmployeeID":42}`))
	}))

	id, err := client.FindEmployee(context.Background(), "ana")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestFindEmployeeAbsentIDIsZero(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))

	id, err := client.FindEmployee(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Zero(t, id)
}

func TestCurrentScheduleID(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/schedule/top", r.URL.Path)
		w.Write([]byte(`{"ScheduleID":7}`))
	}))

	id, err := client.CurrentScheduleID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestSubmitTransaction(t *testing.T) {
	var got transactionDTO
	var gotKey string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/transactions", r.URL.Path)
		gotKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"TransactionID":1001}`))
	}))

	when := time.Date(2026, 9, 1, 14, 30, 5, 0, time.UTC)
	req := &entity.TransactionRequest{
		EmployeeID:      42,
		ScheduleID:      7,
		TotalCost:       2000,
		DiscountedPrice: 500,
		TransactionDate: when,
		CashPayment:     2000,
		PaymentMethod:   enum.PaymentMethodCash,
		Items: []entity.TransactionItem{
			{ProductID: 1, Quantity: 2, Price: 1000},
		},
	}

	id, err := client.SubmitTransaction(context.Background(), req, "key-123")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), id)

	assert.Equal(t, "key-123", gotKey)
	assert.Equal(t, int64(42), got.EmployeeID)
	assert.Equal(t, int64(7), got.ScheduleID)
	assert.Equal(t, 20.0, got.TotalCost)
	assert.Equal(t, 5.0, got.DiscountedPrice)
	assert.Equal(t, "2026-09-01 14:30:05", got.TransactionDate)
	assert.Equal(t, 20.0, got.CashPayment)
	assert.Equal(t, "Cash", got.PaymentMethod)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.Equal(t, 10.0, got.Items[0].Price)
}

func TestUpstreamErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	_, err := client.CurrentScheduleID(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
