package repository

import (
	"context"

	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
)

// CatalogRepository holds the read-only product snapshot the screen sells
// from. Replace swaps the whole snapshot atomically; everything else reads.
type CatalogRepository interface {
	Replace(ctx context.Context, products []entity.Product) error
	ByCategory(ctx context.Context, category enum.Category) ([]entity.Product, error)
	Get(ctx context.Context, productID int64) (*entity.Product, error)
	Count(ctx context.Context) (int, error)
}
