package http

import (
	"errors"
	"net/http"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/logger"
	"council-rental-backend/internal/notify"
	"council-rental-backend/internal/repository"
	"council-rental-backend/internal/service"
)

// AdminHandler covers the dashboard operations: user management, penalty
// administration, lockbox rotation and the manual sweep trigger.
type AdminHandler struct {
	userSvc    service.UserService
	penaltySvc service.PenaltyService
	lockboxSvc service.LockboxService
	notifier   service.Notifier
}

func NewAdminHandler(userSvc service.UserService, penaltySvc service.PenaltyService, lockboxSvc service.LockboxService, notifier service.Notifier) *AdminHandler {
	return &AdminHandler{
		userSvc:    userSvc,
		penaltySvc: penaltySvc,
		lockboxSvc: lockboxSvc,
		notifier:   notifier,
	}
}

func (h *AdminHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := decodeJSON(r, &user); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.userSvc.Register(r.Context(), &user); err != nil {
		logger.Warn("User registration rejected", "student_id", user.StudentID, "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

func (h *AdminHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := h.userSvc.GetUser(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		logger.Error("Failed to get user", "user_id", id, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get user")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	users, total, err := h.userSvc.ListUsers(r.Context(), page, pageSize)
	if err != nil {
		logger.Error("Failed to list users", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list users")
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: users, TotalCount: total, Page: page, PageSize: pageSize})
}

type applyPenaltyRequest struct {
	Type     domain.PenaltyType `json:"type"`
	Days     int32              `json:"days"`
	RentalID *int32             `json:"rental_id,omitempty"`
	Reason   string             `json:"reason"`
}

func (h *AdminHandler) ApplyPenalty(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req applyPenaltyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	issuedBy := domain.IssuedBySystem
	if claims, ok := AdminFromContext(r.Context()); ok {
		issuedBy = claims.Username
	}

	user, err := h.penaltySvc.ApplyPenalty(r.Context(), userID, req.Type, req.Days, req.RentalID, req.Reason, issuedBy)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		logger.Warn("Penalty application rejected", "user_id", userID, "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

type reducePenaltyRequest struct {
	Points int32  `json:"points"`
	Reason string `json:"reason"`
}

func (h *AdminHandler) ReducePenalty(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req reducePenaltyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	adminUsername := ""
	if claims, ok := AdminFromContext(r.Context()); ok {
		adminUsername = claims.Username
	}

	user, err := h.penaltySvc.ReducePenalty(r.Context(), userID, req.Points, req.Reason, adminUsername)
	if errors.Is(err, repository.ErrNotFound) {
		respondError(w, http.StatusNotFound, "user not found")
		return
	}
	if err != nil {
		logger.Warn("Penalty reduction rejected", "user_id", userID, "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *AdminHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "id")
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	page, pageSize := pagination(r)

	records, total, err := h.penaltySvc.GetLedger(r.Context(), userID, page, pageSize)
	if err != nil {
		logger.Error("Failed to get penalty ledger", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to get penalty ledger")
		return
	}
	respondJSON(w, http.StatusOK, listResponse{Items: records, TotalCount: total, Page: page, PageSize: pageSize})
}

// RunSweep triggers the overdue sweep outside its nightly schedule
func (h *AdminHandler) RunSweep(w http.ResponseWriter, r *http.Request) {
	report, err := h.penaltySvc.RunOverdueSweep(r.Context(), time.Now().UTC())
	if err != nil {
		logger.Error("Manual sweep failed", "error", err)
		respondError(w, http.StatusInternalServerError, "sweep failed")
		return
	}
	respondJSON(w, http.StatusOK, report)
}

func (h *AdminHandler) SetLockbox(w http.ResponseWriter, r *http.Request) {
	var box domain.Lockbox
	if err := decodeJSON(r, &box); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if claims, ok := AdminFromContext(r.Context()); ok {
		box.UpdatedBy = claims.Username
	}

	if err := h.lockboxSvc.SetLockbox(r.Context(), &box); err != nil {
		logger.Warn("Lockbox update rejected", "campus", box.Campus, "error", err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, box)
}

func (h *AdminHandler) ListLockboxes(w http.ResponseWriter, r *http.Request) {
	boxes, err := h.lockboxSvc.ListLockboxes(r.Context())
	if err != nil {
		logger.Error("Failed to list lockboxes", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to list lockboxes")
		return
	}
	respondJSON(w, http.StatusOK, boxes)
}

// TestNotification posts a test message to the configured webhook so admins
// can verify the channel wiring.
func (h *AdminHandler) TestNotification(w http.ResponseWriter, r *http.Request) {
	sent, err := h.notifier.Send(r.Context(), notify.Message{
		Title:       "Test notification",
		Description: "The webhook channel is configured correctly.",
		Color:       notify.ColorInfo,
	})
	if err != nil {
		respondJSON(w, http.StatusOK, map[string]interface{}{"sent": false, "error": err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, map[string]bool{"sent": sent})
}
