package repository

import (
	"context"
	"errors"
	"time"

	"council-rental-backend/internal/domain"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("record not found")

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByStudentID(ctx context.Context, studentID string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error)
	SetSanction(ctx context.Context, userID int32, sanction domain.SanctionType, endDate *time.Time, appliedOn time.Time) error
	ClearSanction(ctx context.Context, userID int32) error
}

type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByUsername(ctx context.Context, username string) (*domain.Admin, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	GetByTagID(ctx context.Context, tagID string) (*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	SetStatus(ctx context.Context, id int32, status domain.ItemStatus) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, campus, category, status string, page, pageSize int32) ([]domain.Item, int32, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	ListActive(ctx context.Context) ([]domain.Rental, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error)
	CountOverdueByUser(ctx context.Context, userID int32) (int32, error)

	// ChargeOverdue transitions the rental to OVERDUE and records the charged
	// day count, but only when overdueDays exceeds what was already charged.
	// Returns false when the rental was already fully charged, which makes
	// repeated sweeps within the same day no-ops.
	ChargeOverdue(ctx context.Context, rentalID, overdueDays, deltaPoints int32) (bool, error)
}

type PenaltyRepository interface {
	// Apply appends the ledger record and adjusts the user's cumulative total
	// in a single transaction, flooring the total at zero. Returns the new
	// total.
	Apply(ctx context.Context, rec *domain.PenaltyRecord) (int32, error)
	ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.PenaltyRecord, int32, error)
	SumPointsByUser(ctx context.Context, userID int32) (int32, error)
}

type NoticeRepository interface {
	Create(ctx context.Context, notice *domain.Notice) error
	GetByID(ctx context.Context, id int32) (*domain.Notice, error)
	Update(ctx context.Context, notice *domain.Notice) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, category string, page, pageSize int32) ([]domain.Notice, int32, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int32) (*domain.Event, error)
	Update(ctx context.Context, event *domain.Event) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, page, pageSize int32) ([]domain.Event, int32, error)
}

type LockboxRepository interface {
	Upsert(ctx context.Context, box *domain.Lockbox) error
	GetByCampus(ctx context.Context, campus string) (*domain.Lockbox, error)
	List(ctx context.Context) ([]domain.Lockbox, error)
}

type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.PickupPhoto) error
	GetByID(ctx context.Context, id int32) (*domain.PickupPhoto, error)
	ListByRental(ctx context.Context, rentalID int32) ([]domain.PickupPhoto, error)
}
