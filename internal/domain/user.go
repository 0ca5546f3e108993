package domain

import "time"

type SanctionType string

const (
	SanctionWarning          SanctionType = "WARNING"
	SanctionSuspension1Month SanctionType = "SUSPENSION_1_MONTH"
	SanctionSuspension3Month SanctionType = "SUSPENSION_3_MONTHS"
	SanctionPermanentBan     SanctionType = "PERMANENT_BAN"
)

type User struct {
	ID            int32         `json:"id"`
	StudentID     string        `json:"student_id"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	PhoneNumber   string        `json:"phone_number"`
	PenaltyPoints int32         `json:"penalty_points"`
	Sanction      *SanctionType `json:"sanction,omitempty"`
	// SanctionEndDate is nil for indefinite sanctions (warning, permanent ban).
	SanctionEndDate   *time.Time `json:"sanction_end_date,omitempty"`
	SanctionAppliedOn *time.Time `json:"sanction_applied_on,omitempty"`
	CreatedOn         string     `json:"created_on"`
	UpdatedOn         string     `json:"updated_on"`
}

type AdminRole string

const (
	AdminRoleManager AdminRole = "MANAGER"
	AdminRoleStaff   AdminRole = "STAFF"
)

// Admin is a dashboard account, separate from borrower records.
type Admin struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Role         AdminRole `json:"role"`
	CreatedOn    string    `json:"created_on"`
}

// Eligibility is the result of the new-rental gate. A denial is a normal
// negative result, not an error.
type Eligibility struct {
	Eligible        bool    `json:"eligible"`
	Reason          string  `json:"reason,omitempty"`
	SanctionEndDate *string `json:"sanction_end_date,omitempty"`
}
