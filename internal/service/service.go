package service

import (
	"context"
	"io"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/notify"
)

type PenaltyService interface {
	// ApplyPenalty appends a ledger entry, adjusts the cumulative total and
	// re-runs sanction classification against the new total. days applies
	// only to per-day penalty types.
	ApplyPenalty(ctx context.Context, userID int32, penaltyType domain.PenaltyType, days int32, rentalID *int32, reason, issuedBy string) (*domain.User, error)

	// ReducePenalty is administrative: appends a negative ledger entry,
	// floors the total at zero and clears the sanction entirely when the
	// total drops below the warning threshold.
	ReducePenalty(ctx context.Context, userID, points int32, reason, adminUsername string) (*domain.User, error)

	// RunOverdueSweep scans all active rentals and charges incremental
	// overdue penalties relative to now. Safe to re-run; a sweep with no
	// elapsed time charges nothing.
	RunOverdueSweep(ctx context.Context, now time.Time) (*domain.SweepReport, error)

	// CheckEligibility gates new rentals. Expired sanctions are cleared as a
	// side effect.
	CheckEligibility(ctx context.Context, userID int32) (*domain.Eligibility, error)

	GetLedger(ctx context.Context, userID, page, pageSize int32) ([]domain.PenaltyRecord, int32, error)
}

type RentalService interface {
	Checkout(ctx context.Context, userID, itemID, days int32) (*domain.Rental, *domain.Lockbox, error)
	VerifyPickup(ctx context.Context, rentalID int32, tagID, fileName, mimeType string, photo io.Reader) (*domain.PickupPhoto, error)
	Return(ctx context.Context, rentalID int32, condition domain.ItemCondition) (*domain.Rental, error)
	ReportLost(ctx context.Context, rentalID int32, reason string) (*domain.Rental, error)
	ReportDamaged(ctx context.Context, rentalID int32, major bool, reason string) (*domain.Rental, error)
	GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
}

type ItemService interface {
	AddItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int32) (*domain.Item, error)
	UpdateItem(ctx context.Context, item *domain.Item) error
	DeleteItem(ctx context.Context, id int32) error
	ListItems(ctx context.Context, campus, category, status string, page, pageSize int32) ([]domain.Item, int32, error)
}

type ContentService interface {
	CreateNotice(ctx context.Context, notice *domain.Notice) error
	GetNotice(ctx context.Context, id int32) (*domain.Notice, error)
	UpdateNotice(ctx context.Context, notice *domain.Notice) error
	DeleteNotice(ctx context.Context, id int32) error
	ListNotices(ctx context.Context, category string, page, pageSize int32) ([]domain.Notice, int32, error)

	CreateEvent(ctx context.Context, event *domain.Event) error
	GetEvent(ctx context.Context, id int32) (*domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) error
	DeleteEvent(ctx context.Context, id int32) error
	ListEvents(ctx context.Context, page, pageSize int32) ([]domain.Event, int32, error)
}

type UserService interface {
	Register(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id int32) (*domain.User, error)
	GetUserByStudentID(ctx context.Context, studentID string) (*domain.User, error)
	ListUsers(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
}

type LockboxService interface {
	SetLockbox(ctx context.Context, box *domain.Lockbox) error
	ListLockboxes(ctx context.Context) ([]domain.Lockbox, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
}

// Notifier is the outbound webhook sink. Send reports whether the message
// went out; an unconfigured sink returns (false, nil) while a delivery
// failure returns the error, so callers can tell the two apart.
type Notifier interface {
	Send(ctx context.Context, msg notify.Message) (bool, error)
}

type EmailService interface {
	SendSanctionNotification(ctx context.Context, email, name string, sanction domain.SanctionType, endDate *time.Time) error
	SendOverdueReminder(ctx context.Context, email, name, itemName string, overdueDays int32) error
}
