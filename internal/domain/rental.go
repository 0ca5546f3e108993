package domain

import (
	"fmt"
	"time"
)

type RentalStatus string

const (
	RentalStatusRented   RentalStatus = "RENTED"
	RentalStatusOverdue  RentalStatus = "OVERDUE"
	RentalStatusReturned RentalStatus = "RETURNED"
	RentalStatusLost     RentalStatus = "LOST"
	RentalStatusDamaged  RentalStatus = "DAMAGED"
)

// Active reports whether the rental still has an item out. RETURNED, LOST and
// DAMAGED are terminal.
func (s RentalStatus) Active() bool {
	return s == RentalStatusRented || s == RentalStatusOverdue
}

type Rental struct {
	ID         int32        `json:"id"`
	UserID     int32        `json:"user_id"`
	ItemID     int32        `json:"item_id"`
	Status     RentalStatus `json:"status"`
	RentedOn   time.Time    `json:"rented_on"`
	DueOn      time.Time    `json:"due_on"`
	ReturnedOn *time.Time   `json:"returned_on,omitempty"`
	// OverdueDaysCharged counts the full overdue days already penalized.
	// Sweeps only charge the delta above this value.
	OverdueDaysCharged int32 `json:"overdue_days_charged"`
	// PenaltyPoints is the total attributed to this rental across all sweeps
	// and loss/damage reports.
	PenaltyPoints int32  `json:"penalty_points"`
	Reason        string `json:"reason,omitempty"`
	PickupTagID   string `json:"pickup_tag_id,omitempty"`
	PickupPhotoID *int32 `json:"pickup_photo_id,omitempty"`
	CreatedOn     string `json:"created_on"`
	UpdatedOn     string `json:"updated_on"`
}

var rentalTransitions = map[RentalStatus][]RentalStatus{
	RentalStatusRented:  {RentalStatusOverdue, RentalStatusReturned, RentalStatusLost, RentalStatusDamaged},
	RentalStatusOverdue: {RentalStatusReturned, RentalStatusLost, RentalStatusDamaged},
}

// Transition moves the rental to the target status or fails if the move is
// not legal from the current status.
func (r *Rental) Transition(to RentalStatus) error {
	for _, allowed := range rentalTransitions[r.Status] {
		if allowed == to {
			r.Status = to
			return nil
		}
	}
	return fmt.Errorf("illegal rental transition %s -> %s", r.Status, to)
}

type PickupPhoto struct {
	ID        int32     `json:"id"`
	RentalID  int32     `json:"rental_id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	URL       string    `json:"url"`
	FileSize  int64     `json:"file_size"`
	MimeType  string    `json:"mime_type"`
	CreatedOn time.Time `json:"created_on"`
}
