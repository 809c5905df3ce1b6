package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avyukov/itemdash/internal/models"
	"github.com/avyukov/itemdash/internal/repository"
)

func TestItemService_EndToEnd(t *testing.T) {
	svc := NewItemService(repository.NewMemoryItemRepository(models.SeedItems()))
	ctx := context.Background()

	require.Len(t, svc.List(ctx), 4)

	created := svc.Create(ctx, "X")
	assert.Equal(t, models.Item{ID: 5, Name: "X"}, created)

	updated, err := svc.Update(ctx, 5, "Y")
	require.NoError(t, err)
	assert.Equal(t, "Y", updated.Name)

	require.NoError(t, svc.Delete(ctx, 5))
	assert.Len(t, svc.List(ctx), 4)
}

func TestItemService_NotFoundPassthrough(t *testing.T) {
	svc := NewItemService(repository.NewMemoryItemRepository(nil))
	ctx := context.Background()

	_, err := svc.Update(ctx, 99, "x")
	assert.ErrorIs(t, err, repository.ErrItemNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 99), repository.ErrItemNotFound)
}
