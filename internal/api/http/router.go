package http

import (
	"net/http"

	"council-rental-backend/internal/metrics"
	"council-rental-backend/internal/security"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Auth    *AuthHandler
	Content *ContentHandler
	Item    *ItemHandler
	Rental  *RentalHandler
	Admin   *AdminHandler
	// File is nil when photos are served directly from cloud storage
	File *FileHandler
}

// NewRouter builds the full route table. Public routes carry no auth;
// everything under /api/v1/admin requires a valid dashboard token.
func NewRouter(h Handlers, tokens security.TokenManager, m *metrics.Metrics) *mux.Router {
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public content
	api.HandleFunc("/notices", h.Content.ListNotices).Methods("GET")
	api.HandleFunc("/notices/{id}", h.Content.GetNotice).Methods("GET")
	api.HandleFunc("/events", h.Content.ListEvents).Methods("GET")
	api.HandleFunc("/events/{id}", h.Content.GetEvent).Methods("GET")

	// Public catalog
	api.HandleFunc("/items", h.Item.ListItems).Methods("GET")
	api.HandleFunc("/items/{id}", h.Item.GetItem).Methods("GET")

	// Rental workflow (student-facing)
	api.HandleFunc("/rentals", h.Rental.Checkout).Methods("POST")
	api.HandleFunc("/rentals/{id}", h.Rental.GetRental).Methods("GET")
	api.HandleFunc("/rentals/{id}/pickup", h.Rental.VerifyPickup).Methods("POST")
	api.HandleFunc("/rentals/{id}/return", h.Rental.Return).Methods("POST")
	api.HandleFunc("/rentals/{id}/lost", h.Rental.ReportLost).Methods("POST")
	api.HandleFunc("/rentals/{id}/damaged", h.Rental.ReportDamaged).Methods("POST")
	api.HandleFunc("/users/{id}/rentals", h.Rental.ListUserRentals).Methods("GET")
	api.HandleFunc("/users/{id}/eligibility", h.Rental.CheckEligibility).Methods("GET")

	// Pickup photos, local storage only
	if h.File != nil {
		api.HandleFunc("/files/{key:.+}", h.File.Download).Methods("GET")
	}

	// Dashboard
	api.HandleFunc("/admin/login", h.Auth.Login).Methods("POST")

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(AuthMiddleware(tokens))

	admin.HandleFunc("/notices", h.Content.CreateNotice).Methods("POST")
	admin.HandleFunc("/notices/{id}", h.Content.UpdateNotice).Methods("PUT")
	admin.HandleFunc("/notices/{id}", h.Content.DeleteNotice).Methods("DELETE")
	admin.HandleFunc("/events", h.Content.CreateEvent).Methods("POST")
	admin.HandleFunc("/events/{id}", h.Content.UpdateEvent).Methods("PUT")
	admin.HandleFunc("/events/{id}", h.Content.DeleteEvent).Methods("DELETE")

	admin.HandleFunc("/items", h.Item.CreateItem).Methods("POST")
	admin.HandleFunc("/items/{id}", h.Item.UpdateItem).Methods("PUT")
	admin.HandleFunc("/items/{id}", h.Item.DeleteItem).Methods("DELETE")

	admin.HandleFunc("/users", h.Admin.RegisterUser).Methods("POST")
	admin.HandleFunc("/users", h.Admin.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id}", h.Admin.GetUser).Methods("GET")
	admin.HandleFunc("/users/{id}/penalties", h.Admin.ApplyPenalty).Methods("POST")
	admin.HandleFunc("/users/{id}/penalties/reduce", h.Admin.ReducePenalty).Methods("POST")
	admin.HandleFunc("/users/{id}/ledger", h.Admin.GetLedger).Methods("GET")

	admin.HandleFunc("/sweep", h.Admin.RunSweep).Methods("POST")

	admin.HandleFunc("/lockboxes", h.Admin.SetLockbox).Methods("PUT")
	admin.HandleFunc("/lockboxes", h.Admin.ListLockboxes).Methods("GET")

	admin.HandleFunc("/test-notification", h.Admin.TestNotification).Methods("POST")

	return r
}
