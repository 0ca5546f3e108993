package postgres

import (
	"database/sql"

	"council-rental-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.AdminRepository
	repository.ItemRepository
	repository.RentalRepository
	repository.PenaltyRepository
	repository.NoticeRepository
	repository.EventRepository
	repository.LockboxRepository
	repository.PhotoRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		AdminRepository:   NewAdminRepository(db),
		ItemRepository:    NewItemRepository(db),
		RentalRepository:  NewRentalRepository(db),
		PenaltyRepository: NewPenaltyRepository(db),
		NoticeRepository:  NewNoticeRepository(db),
		EventRepository:   NewEventRepository(db),
		LockboxRepository: NewLockboxRepository(db),
		PhotoRepository:   NewPhotoRepository(db),
	}
}
