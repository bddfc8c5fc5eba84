package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
)

// CartRepository stores the per-session carts of the counter. Carts are
// session-scoped working state, not durable data: an implementation may
// discard carts that have been idle past its TTL.
type CartRepository interface {
	// GetOrCreate returns the session's cart, creating an empty one if the
	// session has none yet.
	GetOrCreate(ctx context.Context, sessionID uuid.UUID, username string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
}
