package service

import (
	"context"

	"github.com/avyukov/itemdash/internal/models"
)

// ItemRepository defines the operations the item service needs from the
// underlying collection.
type ItemRepository interface {
	List(ctx context.Context) []models.Item
	Create(ctx context.Context, name string) models.Item
	// Update replaces the item's name. Returns repository.ErrItemNotFound
	// if no item has the given id.
	Update(ctx context.Context, id int, name string) (models.Item, error)
	// Delete removes the item. Returns repository.ErrItemNotFound if no
	// item has the given id.
	Delete(ctx context.Context, id int) error
}

// ItemService implements CRUD operations over the item collection.
type ItemService struct {
	repo ItemRepository
}

// NewItemService constructs an ItemService with the provided repository.
func NewItemService(repo ItemRepository) *ItemService {
	return &ItemService{repo: repo}
}

// List returns all current items in insertion order.
func (s *ItemService) List(ctx context.Context) []models.Item {
	return s.repo.List(ctx)
}

// Create appends a new item with the given name and returns it.
func (s *ItemService) Create(ctx context.Context, name string) models.Item {
	return s.repo.Create(ctx, name)
}

// Update renames the item with the given id and returns it.
func (s *ItemService) Update(ctx context.Context, id int, name string) (models.Item, error) {
	return s.repo.Update(ctx, id, name)
}

// Delete removes the item with the given id.
func (s *ItemService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
