package repository

import (
	"context"

	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
)

// BakeryGateway is the port to the upstream bakery backend. Each method is
// one round trip; the checkout sequence calls them strictly in order and
// stops at the first failure.
type BakeryGateway interface {
	// FetchProducts retrieves the full product list with prices normalized
	// to cents. Products whose price cannot be parsed are omitted.
	FetchProducts(ctx context.Context) ([]entity.Product, error)

	// FindEmployee resolves the employee id for a username. A response that
	// carries no employee id yields (0, nil); the caller decides how to
	// surface that.
	FindEmployee(ctx context.Context, username string) (int64, error)

	// CurrentScheduleID returns the id of the active shift the sale is
	// recorded under.
	CurrentScheduleID(ctx context.Context) (int64, error)

	// SubmitTransaction posts the completed sale and returns the backend's
	// transaction id. The idempotency key is echoed on retries of the same
	// cart so the backend can deduplicate.
	SubmitTransaction(ctx context.Context, req *entity.TransactionRequest, idempotencyKey string) (int64, error)
}
