package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jpmanalo/bakepos-counter/internal/domain/entity"
	"github.com/jpmanalo/bakepos-counter/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCartRepositoryGetOrCreate(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour)
	ctx := context.Background()
	sessionID := uuid.New()

	cart, err := repo.GetOrCreate(ctx, sessionID, "ana")
	require.NoError(t, err)
	assert.Equal(t, "ana", cart.Username)
	assert.True(t, cart.IsEmpty())

	cart.Add(entity.Product{ID: 1, Name: "Pan de Sal", Price: 500, CategoryID: enum.CategoryBread})
	require.NoError(t, repo.Save(ctx, cart))

	// Same session gets the same cart back.
	again, err := repo.GetOrCreate(ctx, sessionID, "ana")
	require.NoError(t, err)
	require.Len(t, again.Lines, 1)

	// A different session starts fresh.
	other, err := repo.GetOrCreate(ctx, uuid.New(), "ben")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}

func TestMemoryCartRepositoryDelete(t *testing.T) {
	repo := NewMemoryCartRepository(time.Hour)
	ctx := context.Background()
	sessionID := uuid.New()

	cart, err := repo.GetOrCreate(ctx, sessionID, "ana")
	require.NoError(t, err)
	cart.Add(entity.Product{ID: 1, Name: "Pan de Sal", Price: 500, CategoryID: enum.CategoryBread})
	require.NoError(t, repo.Save(ctx, cart))
	require.NoError(t, repo.Delete(ctx, sessionID))

	fresh, err := repo.GetOrCreate(ctx, sessionID, "ana")
	require.NoError(t, err)
	assert.True(t, fresh.IsEmpty())
}

func TestMemoryCatalogRepository(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx := context.Background()

	products := []entity.Product{
		{ID: 1, Name: "Choco Chip", Price: 1250, CategoryID: enum.CategoryCookies},
		{ID: 2, Name: "Oatmeal", Price: 1000, CategoryID: enum.CategoryCookies},
		{ID: 3, Name: "Fudge Bar", Price: 3000, CategoryID: enum.CategoryBars},
	}
	require.NoError(t, repo.Replace(ctx, products))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	cookies, err := repo.ByCategory(ctx, enum.CategoryCookies)
	require.NoError(t, err)
	assert.Len(t, cookies, 2)

	bread, err := repo.ByCategory(ctx, enum.CategoryBread)
	require.NoError(t, err)
	assert.Empty(t, bread)

	p, err := repo.Get(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Fudge Bar", p.Name)

	missing, err := repo.Get(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryCatalogRepositoryReplaceSwapsSnapshot(t *testing.T) {
	repo := NewMemoryCatalogRepository()
	ctx := context.Background()

	require.NoError(t, repo.Replace(ctx, []entity.Product{
		{ID: 1, Name: "Choco Chip", Price: 1250, CategoryID: enum.CategoryCookies},
	}))
	require.NoError(t, repo.Replace(ctx, []entity.Product{
		{ID: 2, Name: "Fudge Bar", Price: 3000, CategoryID: enum.CategoryBars},
	}))

	old, err := repo.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, old)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
