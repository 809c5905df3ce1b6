package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/avyukov/itemdash/internal/models"
)

// ItemService defines the interface for item collection operations
// required by the ItemHandler.
type ItemService interface {
	List(ctx context.Context) []models.Item
	Create(ctx context.Context, name string) models.Item
	Update(ctx context.Context, id int, name string) (models.Item, error)
	Delete(ctx context.Context, id int) error
}

// ItemHandler handles HTTP requests for the item collection CRUD API.
type ItemHandler struct {
	ItemService ItemService
}

// ItemRequest represents the JSON payload for creating or renaming an item.
type ItemRequest struct {
	Name string `json:"name"`
}

// List handles GET /api/items and returns all current items.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ItemService.List(r.Context()))
}

// Create handles POST /api/items. The name is not validated; an empty name
// creates an item with an empty name.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item := h.ItemService.Create(r.Context(), req.Name)
	writeJSON(w, http.StatusCreated, item)
}

// Update handles PUT /api/items/{id}. A non-numeric or unknown id gets 404.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Item not found.")
		return
	}

	var req ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.ItemService.Update(r.Context(), id, req.Name)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Item not found.")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// Delete handles DELETE /api/items/{id}. A non-numeric or unknown id gets 404.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Item not found.")
		return
	}

	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		writeMessage(w, http.StatusNotFound, "Item not found.")
		return
	}

	writeMessage(w, http.StatusOK, "Item deleted.")
}
