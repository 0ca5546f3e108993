package http

import (
	"errors"
	"net/http"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/logger"
	"council-rental-backend/internal/repository"
	"council-rental-backend/internal/service"
)

const maxPickupPhotoBytes = 10 << 20

// RentalHandler drives the checkout, pickup and return workflow
type RentalHandler struct {
	rentalSvc  service.RentalService
	penaltySvc service.PenaltyService
}

func NewRentalHandler(rentalSvc service.RentalService, penaltySvc service.PenaltyService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, penaltySvc: penaltySvc}
}

type checkoutRequest struct {
	UserID int32 `json:"user_id"`
	ItemID int32 `json:"item_id"`
	Days   int32 `json:"days"`
}

type checkoutResponse struct {
	Rental  *domain.Rental  `json:"rental"`
	Lockbox *domain.Lockbox `json:"lockbox,omitempty"`
}

func (h *RentalHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.UserID <= 0 || req.ItemID <= 0 {
		respondError(w, http.StatusBadRequest, "user_id and item_id are required")
		return
	}

	rental, lockbox, err := h.rentalSvc.Checkout(r.Context(), req.UserID, req.ItemID, req.Days)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "item not found")
		return
	}
	if err != nil {
		logger.Warn("Checkout rejected", "user_id", req.UserID, "item_id", req.ItemID, "error", err)
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, checkoutResponse{Rental: rental, Lockbox: lockbox})
}

// VerifyPickup accepts a multipart form with the tag id and a photo of the
// picked-up item.
func (h *RentalHandler) VerifyPickup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	if err := r.ParseMultipartForm(maxPickupPhotoBytes); err != nil {
		respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	tagID := r.FormValue("tag_id")
	if tagID == "" {
		respondError(w, http.StatusBadRequest, "tag_id is required")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		respondError(w, http.StatusBadRequest, "photo file is required")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType != "image/jpeg" && contentType != "image/png" {
		respondError(w, http.StatusBadRequest, "photo must be a JPEG or PNG image")
		return
	}

	photo, err := h.rentalSvc.VerifyPickup(r.Context(), id, tagID, header.Filename, contentType, file)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "rental not found")
		return
	}
	if err != nil {
		logger.Warn("Pickup verification failed", "rental_id", id, "error", err)
		respondError(w, http.StatusConflict, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, photo)
}

type returnRequest struct {
	Condition domain.ItemCondition `json:"condition"`
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req returnRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.Return(r.Context(), id, req.Condition)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "rental not found")
		return
	}
	if err != nil {
		logger.Warn("Return rejected", "rental_id", id, "error", err)
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

type reportRequest struct {
	Reason string `json:"reason"`
	Major  bool   `json:"major"`
}

func (h *RentalHandler) ReportLost(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.ReportLost(r.Context(), id, req.Reason)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "rental not found")
		return
	}
	if err != nil {
		logger.Warn("Lost report rejected", "rental_id", id, "error", err)
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ReportDamaged(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	var req reportRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rental, err := h.rentalSvc.ReportDamaged(r.Context(), id, req.Major, req.Reason)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "rental not found")
		return
	}
	if err != nil {
		logger.Warn("Damage report rejected", "rental_id", id, "error", err)
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid rental id")
		return
	}

	rental, err := h.rentalSvc.GetRental(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "rental not found")
		return
	}
	if err != nil {
		logger.Error("Failed to get rental", "rental_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get rental")
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListUserRentals(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	page, pageSize := pagination(r)

	rentals, total, err := h.rentalSvc.ListByUser(r.Context(), userID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		logger.Error("Failed to list rentals", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list rentals")
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: rentals, TotalCount: total, Page: page, PageSize: pageSize})
}

// CheckEligibility answers whether a user may start a new rental. A denial
// is a 200 with eligible=false, not an error status.
func (h *RentalHandler) CheckEligibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	eligibility, err := h.penaltySvc.CheckEligibility(r.Context(), userID)
	if err != nil {
		logger.Error("Eligibility check failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "eligibility check failed")
		return
	}
	respondJSON(w, http.StatusOK, eligibility)
}
