package http

import (
	"errors"
	"net/http"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/logger"
	"council-rental-backend/internal/repository"
	"council-rental-backend/internal/service"
)

// ItemHandler serves the equipment catalog
type ItemHandler struct {
	itemSvc service.ItemService
}

func NewItemHandler(itemSvc service.ItemService) *ItemHandler {
	return &ItemHandler{itemSvc: itemSvc}
}

func (h *ItemHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	q := r.URL.Query()

	items, total, err := h.itemSvc.ListItems(r.Context(), q.Get("campus"), q.Get("category"), q.Get("status"), page, pageSize)
	if err != nil {
		logger.Error("Failed to list items", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list items")
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: items, TotalCount: total, Page: page, PageSize: pageSize})
}

func (h *ItemHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.itemSvc.GetItem(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		logger.Error("Failed to get item", "item_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item domain.Item
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.itemSvc.AddItem(r.Context(), &item); err != nil {
		logger.Error("Failed to create item", "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var item domain.Item
	if err := decodeJSON(r, &item); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	item.ID = id

	err := h.itemSvc.UpdateItem(r.Context(), &item)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		logger.Error("Failed to update item", "item_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	err := h.itemSvc.DeleteItem(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		logger.Error("Failed to delete item", "item_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete item")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
