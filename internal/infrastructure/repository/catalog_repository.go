package repository

import (
	"context"
	"sync"

	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	domainRepo "github.com/jpmanalo/bakepos-counter/internal/domain/repository"
)

// memoryCatalogRepository holds the product snapshot the counter sells from.
// Replace swaps the whole snapshot under the write lock so a refresh never
// exposes a half-loaded catalog.
type memoryCatalogRepository struct {
	mu         sync.RWMutex
	byID       map[int64]entity.Product
	byCategory map[enum.Category][]entity.Product
}

// NewMemoryCatalogRepository creates an empty in-memory catalog store.
func NewMemoryCatalogRepository() domainRepo.CatalogRepository {
	return &memoryCatalogRepository{
		byID:       make(map[int64]entity.Product),
		byCategory: make(map[enum.Category][]entity.Product),
	}
}

func (r *memoryCatalogRepository) Replace(ctx context.Context, products []entity.Product) error {
	byID := make(map[int64]entity.Product, len(products))
	byCategory := make(map[enum.Category][]entity.Product)
	for _, p := range products {
		byID[p.ID] = p
		byCategory[p.CategoryID] = append(byCategory[p.CategoryID], p)
	}

	r.mu.Lock()
	r.byID = byID
	r.byCategory = byCategory
	r.mu.Unlock()
	return nil
}

func (r *memoryCatalogRepository) ByCategory(ctx context.Context, category enum.Category) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := r.byCategory[category]
	out := make([]entity.Product, len(products))
	copy(out, products)
	return out, nil
}

func (r *memoryCatalogRepository) Get(ctx context.Context, productID int64) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[productID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *memoryCatalogRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID), nil
}
