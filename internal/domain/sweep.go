package domain

import "time"

// PenaltyApplication is one charge made during a sweep, kept in the report
// for auditing.
type PenaltyApplication struct {
	UserID   int32       `json:"user_id"`
	RentalID *int32      `json:"rental_id,omitempty"`
	Type     PenaltyType `json:"type"`
	Points   int32       `json:"points"`
	Reason   string      `json:"reason"`
}

// SweepReport summarizes one pass over the active rentals. Re-running a sweep
// with no time elapsed produces a report with no penalties applied.
type SweepReport struct {
	StartedOn         time.Time            `json:"started_on"`
	ScannedCount      int32                `json:"scanned_count"`
	NewlyOverdue      []Rental             `json:"newly_overdue"`
	PenaltiesApplied  []PenaltyApplication `json:"penalties_applied"`
	NotificationsSent int32                `json:"notifications_sent"`
	Errors            []string             `json:"errors"`
}
