package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/isdelr/rocket-be/internal/services"
	"github.com/rs/zerolog/log"
)

// ItemHandler handles HTTP requests related to items.
type ItemHandler struct {
	service services.ItemServiceProvider
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service services.ItemServiceProvider) *ItemHandler {
	return &ItemHandler{service: service}
}

// GetAll handles the request to get all items.
func (h *ItemHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.GetAllItems(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve items")
		writeInternal(w)
		return
	}
	writeOK(w, "All items found!", envelope{"items": items})
}

// Get handles the request to get a single item by its ID.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return
	}

	item, err := h.service.GetItemByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			writeFail(w, http.StatusNotFound, "Item not found!")
			return
		}
		log.Error().Err(err).Int64("item_id", id).Msg("Failed to get item by ID")
		writeInternal(w)
		return
	}
	writeOK(w, "Item found!", envelope{"item": item})
}

// Create handles the request to create a new item.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeBody(w, r, &payload); err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	name := strings.TrimSpace(payload.Name)
	if name == "" {
		writeFail(w, http.StatusBadRequest, "Item name is required")
		return
	}

	item, err := h.service.CreateItem(r.Context(), name)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create item")
		writeInternal(w)
		return
	}
	writeOK(w, "Item posted!", envelope{"item": item})
}

// Delete handles the request to delete an item.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeFail(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.service.DeleteItem(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			writeFail(w, http.StatusNotFound, "Item not found!")
			return
		}
		log.Error().Err(err).Int64("item_id", id).Msg("Failed to delete item")
		writeInternal(w)
		return
	}
	writeOK(w, "Item deleted!", nil)
}
