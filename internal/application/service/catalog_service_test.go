package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	infraRepo "github.com/jpmanalo/bakepos-counter/internal/infrastructure/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubProductGateway struct {
	mockGateway
	products []entity.Product
	fetchErr error
}

func (s *stubProductGateway) FetchProducts(ctx context.Context) ([]entity.Product, error) {
	return s.products, s.fetchErr
}

func TestCatalogSectionsFixedOrder(t *testing.T) {
	gw := &stubProductGateway{products: []entity.Product{
		{ID: 1, Name: "Pan de Sal", Price: 500, CategoryID: enum.CategoryBread},
		{ID: 2, Name: "Choco Chip", Price: 1250, CategoryID: enum.CategoryCookies},
		{ID: 3, Name: "Fudge Bar", Price: 3000, CategoryID: enum.CategoryBars},
		{ID: 4, Name: "Gift Box", Price: 9900, CategoryID: 9},
	}}
	svc := NewCatalogService(gw, infraRepo.NewMemoryCatalogRepository(), zap.NewNop())
	require.NoError(t, svc.Load(context.Background()))

	sections, err := svc.Sections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 3)
	assert.Equal(t, "Cookies", sections[0].Category)
	assert.Equal(t, "Bars", sections[1].Category)
	assert.Equal(t, "Bread", sections[2].Category)

	// The unknown category is loaded but never displayed.
	count, err := svc.ProductCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	for _, sec := range sections {
		for _, p := range sec.Products {
			assert.NotEqual(t, int64(4), p.ID)
		}
	}
}

func TestCatalogLoadFailureKeepsSnapshot(t *testing.T) {
	gw := &stubProductGateway{products: []entity.Product{
		{ID: 1, Name: "Pan de Sal", Price: 500, CategoryID: enum.CategoryBread},
	}}
	svc := NewCatalogService(gw, infraRepo.NewMemoryCatalogRepository(), zap.NewNop())
	require.NoError(t, svc.Load(context.Background()))

	gw.fetchErr = errors.New("backend down")
	assert.Error(t, svc.Load(context.Background()))

	sections, err := svc.Sections(context.Background())
	require.NoError(t, err)
	assert.Len(t, sections[2].Products, 1)
}

func TestCatalogEmptySectionsWhenNothingLoaded(t *testing.T) {
	gw := &stubProductGateway{fetchErr: errors.New("backend down")}
	svc := NewCatalogService(gw, infraRepo.NewMemoryCatalogRepository(), zap.NewNop())
	assert.Error(t, svc.Load(context.Background()))

	sections, err := svc.Sections(context.Background())
	require.NoError(t, err)
	require.Len(t, sections, 3)
	for _, sec := range sections {
		assert.Empty(t, sec.Products)
	}
}
