package service

import (
	"context"
	"errors"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type lockboxService struct {
	lockboxRepo repository.LockboxRepository
}

func NewLockboxService(lockboxRepo repository.LockboxRepository) LockboxService {
	return &lockboxService{lockboxRepo: lockboxRepo}
}

func (s *lockboxService) SetLockbox(ctx context.Context, box *domain.Lockbox) error {
	if box.Campus == "" || box.Password == "" {
		return errors.New("campus and password are required")
	}
	return s.lockboxRepo.Upsert(ctx, box)
}

func (s *lockboxService) ListLockboxes(ctx context.Context) ([]domain.Lockbox, error) {
	return s.lockboxRepo.List(ctx)
}
