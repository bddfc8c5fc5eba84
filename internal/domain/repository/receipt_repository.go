package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/pkg/pagination"
)

// ReceiptRepository persists the counter's journal of completed sales.
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.SaleReceipt) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleReceipt, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SaleReceipt, int64, error)
}
