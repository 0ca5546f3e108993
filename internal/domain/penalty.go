package domain

import "time"

type PenaltyType string

const (
	PenaltyTypeOverdue         PenaltyType = "OVERDUE"
	PenaltyTypeReturnDelay     PenaltyType = "RETURN_DELAY"
	PenaltyTypeDamageMinor     PenaltyType = "DAMAGE_MINOR"
	PenaltyTypeDamageMajor     PenaltyType = "DAMAGE_MAJOR"
	PenaltyTypeLoss            PenaltyType = "LOSS"
	PenaltyTypeMultipleOverdue PenaltyType = "MULTIPLE_OVERDUE"
	PenaltyTypeReduction       PenaltyType = "REDUCTION"
)

type PenaltyRecordStatus string

const (
	PenaltyRecordStatusActive  PenaltyRecordStatus = "ACTIVE"
	PenaltyRecordStatusRevoked PenaltyRecordStatus = "REVOKED"
)

// IssuedBySystem is the issuer recorded on penalties applied by sweeps and
// lifecycle transitions, as opposed to an admin username.
const IssuedBySystem = "system"

// PenaltyRecord is an append-only ledger entry. Points are negative for
// reductions.
type PenaltyRecord struct {
	ID        int32               `json:"id"`
	UserID    int32               `json:"user_id"`
	RentalID  *int32              `json:"rental_id,omitempty"`
	Type      PenaltyType         `json:"type"`
	Points    int32               `json:"points"`
	Reason    string              `json:"reason"`
	IssuedBy  string              `json:"issued_by"`
	Status    PenaltyRecordStatus `json:"status"`
	CreatedOn time.Time           `json:"created_on"`
}
