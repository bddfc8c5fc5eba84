package service

import (
	"context"

	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/jpmanalo/bakepos-counter/internal/domain/repository"
	"go.uber.org/zap"
)

// CatalogService loads the product list from the bakery backend and serves
// it grouped into the order screen's sections.
type CatalogService struct {
	gateway     repository.BakeryGateway
	catalogRepo repository.CatalogRepository
	log         *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	gateway repository.BakeryGateway,
	catalogRepo repository.CatalogRepository,
	log *zap.Logger,
) *CatalogService {
	return &CatalogService{
		gateway:     gateway,
		catalogRepo: catalogRepo,
		log:         log,
	}
}

// CatalogSection is one displayed category with its products.
type CatalogSection struct {
	CategoryID enum.Category    `json:"category_id"`
	Category   string           `json:"category"`
	Products   []entity.Product `json:"products"`
}

// Load fetches the product list and replaces the catalog snapshot. A fetch
// failure leaves the previous snapshot in place, so the screen keeps selling
// from what it last had (possibly nothing).
func (s *CatalogService) Load(ctx context.Context) error {
	products, err := s.gateway.FetchProducts(ctx)
	if err != nil {
		s.log.Warn("failed to load product catalog", zap.Error(err))
		return err
	}
	if err := s.catalogRepo.Replace(ctx, products); err != nil {
		return err
	}
	s.log.Info("product catalog loaded", zap.Int("products", len(products)))
	return nil
}

// Sections returns the three displayed categories in fixed order. Products
// in any other category are held in the catalog but never displayed.
func (s *CatalogService) Sections(ctx context.Context) ([]CatalogSection, error) {
	sections := make([]CatalogSection, 0, 3)
	for _, cat := range enum.Sections() {
		products, err := s.catalogRepo.ByCategory(ctx, cat)
		if err != nil {
			return nil, err
		}
		if products == nil {
			products = []entity.Product{}
		}
		sections = append(sections, CatalogSection{
			CategoryID: cat,
			Category:   cat.String(),
			Products:   products,
		})
	}
	return sections, nil
}

// ProductCount returns the number of products in the current snapshot,
// including ones outside the displayed sections.
func (s *CatalogService) ProductCount(ctx context.Context) (int, error) {
	return s.catalogRepo.Count(ctx)
}
