package repository

import (
	"context"
	"errors"
	"sync"

	"github.com/avyukov/itemdash/internal/models"
)

// ErrItemNotFound indicates that no item with the requested id exists.
var ErrItemNotFound = errors.New("item not found")

// MemoryItemRepository holds the process-local ordered item collection.
// Ids come from a counter of items ever created, so deleting an item never
// frees its id for reuse. All operations take the mutex, so no two mutations
// interleave.
type MemoryItemRepository struct {
	mu      sync.Mutex
	items   []models.Item
	created int
}

// NewMemoryItemRepository creates an item store pre-populated with the given
// seed items. Seed ids are assumed to be 1..len(seed).
func NewMemoryItemRepository(seed []models.Item) *MemoryItemRepository {
	items := make([]models.Item, len(seed))
	copy(items, seed)
	return &MemoryItemRepository{items: items, created: len(items)}
}

// List returns the current items in insertion order.
func (r *MemoryItemRepository) List(ctx context.Context) []models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Item, len(r.items))
	copy(out, r.items)
	return out
}

// Create appends a new item with the given name and a freshly assigned id,
// and returns it. The name is not validated; empty names are allowed.
func (r *MemoryItemRepository) Create(ctx context.Context, name string) models.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.created++
	item := models.Item{ID: r.created, Name: name}
	r.items = append(r.items, item)
	return item
}

// Update replaces the name of the item with the given id and returns the
// updated item. Returns ErrItemNotFound if no such item exists.
func (r *MemoryItemRepository) Update(ctx context.Context, id int, name string) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Name = name
			return r.items[i], nil
		}
	}
	return models.Item{}, ErrItemNotFound
}

// Delete removes the item with the given id.
// Returns ErrItemNotFound if no such item exists.
func (r *MemoryItemRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}
