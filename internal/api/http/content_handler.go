package http

import (
	"errors"
	"net/http"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/logger"
	"council-rental-backend/internal/repository"
	"council-rental-backend/internal/service"
)

// ContentHandler serves public notices and events plus their admin CRUD
type ContentHandler struct {
	contentSvc service.ContentService
}

func NewContentHandler(contentSvc service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

func (h *ContentHandler) ListNotices(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	category := r.URL.Query().Get("category")

	notices, total, err := h.contentSvc.ListNotices(r.Context(), category, page, pageSize)
	if err != nil {
		logger.Error("Failed to list notices", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list notices")
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: notices, TotalCount: total, Page: page, PageSize: pageSize})
}

func (h *ContentHandler) GetNotice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid notice id")
		return
	}

	notice, err := h.contentSvc.GetNotice(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "notice not found")
		return
	}
	if err != nil {
		logger.Error("Failed to get notice", "notice_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get notice")
		return
	}
	respondJSON(w, http.StatusOK, notice)
}

func (h *ContentHandler) CreateNotice(w http.ResponseWriter, r *http.Request) {
	var notice domain.Notice
	if err := decodeJSON(r, &notice); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if claims, ok := AdminFromContext(r.Context()); ok {
		notice.Author = claims.Username
	}

	if err := h.contentSvc.CreateNotice(r.Context(), &notice); err != nil {
		logger.Error("Failed to create notice", "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, notice)
}

func (h *ContentHandler) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid notice id")
		return
	}

	var notice domain.Notice
	if err := decodeJSON(r, &notice); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	notice.ID = id

	err := h.contentSvc.UpdateNotice(r.Context(), &notice)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "notice not found")
		return
	}
	if err != nil {
		logger.Error("Failed to update notice", "notice_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update notice")
		return
	}
	respondJSON(w, http.StatusOK, notice)
}

func (h *ContentHandler) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid notice id")
		return
	}

	err := h.contentSvc.DeleteNotice(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "notice not found")
		return
	}
	if err != nil {
		logger.Error("Failed to delete notice", "notice_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete notice")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *ContentHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	events, total, err := h.contentSvc.ListEvents(r.Context(), page, pageSize)
	if err != nil {
		logger.Error("Failed to list events", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list events")
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: events, TotalCount: total, Page: page, PageSize: pageSize})
}

func (h *ContentHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := h.contentSvc.GetEvent(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		logger.Error("Failed to get event", "event_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get event")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *ContentHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var event domain.Event
	if err := decodeJSON(r, &event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.contentSvc.CreateEvent(r.Context(), &event); err != nil {
		logger.Error("Failed to create event", "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func (h *ContentHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	var event domain.Event
	if err := decodeJSON(r, &event); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	event.ID = id

	err := h.contentSvc.UpdateEvent(r.Context(), &event)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		logger.Error("Failed to update event", "event_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to update event")
		return
	}
	respondJSON(w, http.StatusOK, event)
}

func (h *ContentHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	err := h.contentSvc.DeleteEvent(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "event not found")
		return
	}
	if err != nil {
		logger.Error("Failed to delete event", "event_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to delete event")
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
