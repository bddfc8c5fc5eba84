package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	domainRepo "github.com/jpmanalo/bakepos-counter/internal/domain/repository"
	"github.com/jpmanalo/bakepos-counter/pkg/pagination"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new sale receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *entity.SaleReceipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleReceipt, error) {
	var receipt entity.SaleReceipt
	err := r.db.WithContext(ctx).
		Preload("Lines").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SaleReceipt, int64, error) {
	var receipts []entity.SaleReceipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SaleReceipt{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Lines").
		Order("transaction_date DESC").
		Find(&receipts).Error

	return receipts, total, err
}
