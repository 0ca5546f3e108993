package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/logger"
	"council-rental-backend/internal/notify"
	"council-rental-backend/internal/repository"
	"council-rental-backend/internal/storage"

	"github.com/google/uuid"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	lockboxRepo repository.LockboxRepository
	photoRepo   repository.PhotoRepository
	penaltySvc  PenaltyService
	notifier    Notifier
	store       storage.Storage
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	lockboxRepo repository.LockboxRepository,
	photoRepo repository.PhotoRepository,
	penaltySvc PenaltyService,
	notifier Notifier,
	store storage.Storage,
) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		lockboxRepo: lockboxRepo,
		photoRepo:   photoRepo,
		penaltySvc:  penaltySvc,
		notifier:    notifier,
		store:       store,
	}
}

// Checkout creates a rental after the eligibility gate passes, flips the item
// to RENTED and returns the lockbox for the item's campus so the borrower can
// pick up.
func (s *rentalService) Checkout(ctx context.Context, userID, itemID, days int32) (*domain.Rental, *domain.Lockbox, error) {
	if days <= 0 {
		return nil, nil, errors.New("rental period must be at least one day")
	}

	eligibility, err := s.penaltySvc.CheckEligibility(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if !eligibility.Eligible {
		return nil, nil, fmt.Errorf("not eligible to rent: %s", eligibility.Reason)
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, nil, err
	}
	if item.Status != domain.ItemStatusAvailable {
		return nil, nil, fmt.Errorf("item %q is not available", item.Name)
	}

	now := time.Now()
	rental := &domain.Rental{
		UserID:   userID,
		ItemID:   itemID,
		Status:   domain.RentalStatusRented,
		RentedOn: now,
		DueOn:    now.AddDate(0, 0, int(days)),
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, nil, err
	}
	if err := s.itemRepo.SetStatus(ctx, itemID, domain.ItemStatusRented); err != nil {
		return nil, nil, err
	}

	lockbox, err := s.lockboxRepo.GetByCampus(ctx, item.Campus)
	if errors.Is(err, repository.ErrNotFound) {
		logger.Warn("No lockbox configured for campus", "campus", item.Campus)
		lockbox = nil
	} else if err != nil {
		return nil, nil, err
	}

	logger.Info("Rental created", "rental_id", rental.ID, "user_id", userID, "item_id", itemID, "due_on", rental.DueOn.Format("2006-01-02"))
	return rental, lockbox, nil
}

// VerifyPickup matches the physical tag against the rented item and stores
// the pickup photo as evidence.
func (s *rentalService) VerifyPickup(ctx context.Context, rentalID int32, tagID, fileName, mimeType string, photo io.Reader) (*domain.PickupPhoto, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if !rental.Status.Active() {
		return nil, fmt.Errorf("rental %d is closed", rentalID)
	}

	item, err := s.itemRepo.GetByID(ctx, rental.ItemID)
	if err != nil {
		return nil, err
	}
	if item.TagID != tagID {
		return nil, fmt.Errorf("tag %q does not match the rented item", tagID)
	}

	key := fmt.Sprintf("pickups/%d/%s-%s", rentalID, uuid.New().String(), fileName)
	result, err := s.store.Upload(ctx, key, mimeType, photo, func(written int64) {
		logger.Debug("Pickup photo upload progress", "rental_id", rentalID, "bytes", written)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to store pickup photo: %w", err)
	}

	record := &domain.PickupPhoto{
		RentalID: rentalID,
		FileName: fileName,
		FilePath: key,
		URL:      result.URL,
		FileSize: result.Size,
		MimeType: result.ContentType,
	}
	if err := s.photoRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	rental.PickupTagID = tagID
	rental.PickupPhotoID = &record.ID
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Pickup verified", "rental_id", rentalID, "tag_id", tagID, "photo_id", record.ID)
	return record, nil
}

func (s *rentalService) Return(ctx context.Context, rentalID int32, condition domain.ItemCondition) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if err := rental.Transition(domain.RentalStatusReturned); err != nil {
		return nil, err
	}

	now := time.Now()
	rental.ReturnedOn = &now
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, rental.ItemID)
	if err != nil {
		return nil, err
	}
	if condition != "" {
		item.Condition = condition
	}
	item.Status = domain.ItemStatusAvailable
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	if _, err := s.notifier.Send(ctx, notify.Message{
		Title:       "Item returned",
		Description: fmt.Sprintf("%s returned on rental #%d", item.Name, rental.ID),
		Color:       notify.ColorSuccess,
	}); err != nil {
		logger.Warn("Failed to send return notification", "rental_id", rental.ID, "error", err)
	}

	logger.Info("Rental returned", "rental_id", rentalID, "condition", condition)
	return rental, nil
}

func (s *rentalService) ReportLost(ctx context.Context, rentalID int32, reason string) (*domain.Rental, error) {
	return s.closeWithPenalty(ctx, rentalID, domain.RentalStatusLost, domain.PenaltyTypeLoss, reason)
}

func (s *rentalService) ReportDamaged(ctx context.Context, rentalID int32, major bool, reason string) (*domain.Rental, error) {
	penaltyType := domain.PenaltyTypeDamageMinor
	if major {
		penaltyType = domain.PenaltyTypeDamageMajor
	}
	return s.closeWithPenalty(ctx, rentalID, domain.RentalStatusDamaged, penaltyType, reason)
}

func (s *rentalService) closeWithPenalty(ctx context.Context, rentalID int32, status domain.RentalStatus, penaltyType domain.PenaltyType, reason string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if err := rental.Transition(status); err != nil {
		return nil, err
	}

	rental.Reason = reason
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	// A lost item leaves inventory; a damaged one returns flagged for repair.
	if status == domain.RentalStatusLost {
		if err := s.itemRepo.SetStatus(ctx, rental.ItemID, domain.ItemStatusRetired); err != nil {
			return nil, err
		}
	} else {
		item, err := s.itemRepo.GetByID(ctx, rental.ItemID)
		if err != nil {
			return nil, err
		}
		item.Status = domain.ItemStatusAvailable
		item.Condition = domain.ItemConditionDamaged
		if err := s.itemRepo.Update(ctx, item); err != nil {
			return nil, err
		}
	}

	if _, err := s.penaltySvc.ApplyPenalty(ctx, rental.UserID, penaltyType, 0, &rental.ID, reason, domain.IssuedBySystem); err != nil {
		return nil, err
	}

	logger.Info("Rental closed", "rental_id", rentalID, "status", status, "penalty", penaltyType)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, rentalID int32) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, rentalID)
}

func (s *rentalService) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	return s.rentalRepo.ListByUser(ctx, userID, status, page, pageSize)
}
