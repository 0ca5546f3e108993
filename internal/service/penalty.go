package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/logger"
	"council-rental-backend/internal/notify"
	"council-rental-backend/internal/penalty"
	"council-rental-backend/internal/repository"
)

type penaltyService struct {
	penaltyRepo repository.PenaltyRepository
	userRepo    repository.UserRepository
	rentalRepo  repository.RentalRepository
	itemRepo    repository.ItemRepository
	notifier    Notifier
	emailSvc    EmailService
}

func NewPenaltyService(
	penaltyRepo repository.PenaltyRepository,
	userRepo repository.UserRepository,
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	notifier Notifier,
	emailSvc EmailService,
) PenaltyService {
	return &penaltyService{
		penaltyRepo: penaltyRepo,
		userRepo:    userRepo,
		rentalRepo:  rentalRepo,
		itemRepo:    itemRepo,
		notifier:    notifier,
		emailSvc:    emailSvc,
	}
}

func (s *penaltyService) ApplyPenalty(ctx context.Context, userID int32, penaltyType domain.PenaltyType, days int32, rentalID *int32, reason, issuedBy string) (*domain.User, error) {
	points := penalty.PointsFor(penaltyType, days)
	if points <= 0 {
		return nil, fmt.Errorf("penalty type %s with %d day(s) yields no points", penaltyType, days)
	}

	rec := &domain.PenaltyRecord{
		UserID:   userID,
		RentalID: rentalID,
		Type:     penaltyType,
		Points:   points,
		Reason:   reason,
		IssuedBy: issuedBy,
		Status:   domain.PenaltyRecordStatusActive,
	}
	if _, err := s.applyRecord(ctx, rec, time.Now()); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, userID)
}

func (s *penaltyService) ReducePenalty(ctx context.Context, userID, points int32, reason, adminUsername string) (*domain.User, error) {
	if points <= 0 {
		return nil, errors.New("reduction must be a positive point amount")
	}

	rec := &domain.PenaltyRecord{
		UserID:   userID,
		Type:     domain.PenaltyTypeReduction,
		Points:   -points,
		Reason:   reason,
		IssuedBy: adminUsername,
		Status:   domain.PenaltyRecordStatusActive,
	}
	newTotal, err := s.penaltyRepo.Apply(ctx, rec)
	if err != nil {
		return nil, err
	}

	// A reduction below the warning threshold clears the sanction entirely;
	// it never merely steps down one tier.
	if newTotal < penalty.ThresholdWarning {
		if err := s.userRepo.ClearSanction(ctx, userID); err != nil {
			return nil, err
		}
	}

	logger.Info("Penalty reduced", "user_id", userID, "points", points, "admin", adminUsername, "new_total", newTotal)
	return s.userRepo.GetByID(ctx, userID)
}

func (s *penaltyService) RunOverdueSweep(ctx context.Context, now time.Time) (*domain.SweepReport, error) {
	report := &domain.SweepReport{StartedOn: now}

	rentals, err := s.rentalRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active rentals: %w", err)
	}
	report.ScannedCount = int32(len(rentals))

	// Rentals charged in this sweep, grouped by borrower for the flat
	// multi-overdue charge.
	chargedByUser := make(map[int32][]domain.Rental)

	for _, rt := range rentals {
		overdueDays := penalty.OverdueDays(rt.DueOn, now)
		if overdueDays <= 0 {
			continue
		}
		if overdueDays <= rt.OverdueDaysCharged {
			// Already fully charged for this many days; re-sweeps within the
			// same day land here.
			continue
		}

		delta := overdueDays - rt.OverdueDaysCharged
		points := penalty.PointsFor(domain.PenaltyTypeOverdue, delta)

		charged, err := s.rentalRepo.ChargeOverdue(ctx, rt.ID, overdueDays, points)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("rental %d: %v", rt.ID, err))
			continue
		}
		if !charged {
			// Lost the race to a concurrent sweep; nothing owed.
			continue
		}

		rentalID := rt.ID
		rec := &domain.PenaltyRecord{
			UserID:   rt.UserID,
			RentalID: &rentalID,
			Type:     domain.PenaltyTypeOverdue,
			Points:   points,
			Reason:   fmt.Sprintf("%d day(s) overdue", delta),
			IssuedBy: domain.IssuedBySystem,
			Status:   domain.PenaltyRecordStatusActive,
		}
		if _, err := s.applyRecord(ctx, rec, now); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("rental %d: %v", rt.ID, err))
			continue
		}
		report.PenaltiesApplied = append(report.PenaltiesApplied, domain.PenaltyApplication{
			UserID:   rt.UserID,
			RentalID: &rentalID,
			Type:     domain.PenaltyTypeOverdue,
			Points:   points,
			Reason:   rec.Reason,
		})

		wasRented := rt.Status == domain.RentalStatusRented
		rt.Status = domain.RentalStatusOverdue
		rt.OverdueDaysCharged = overdueDays
		if wasRented {
			report.NewlyOverdue = append(report.NewlyOverdue, rt)
			sent, err := s.notifyOverdue(ctx, rt, overdueDays)
			if err != nil {
				// Non-fatal: the penalty is already committed, only the
				// delivery failed. An unconfigured webhook reports
				// (false, nil) and is not an error.
				report.Errors = append(report.Errors, fmt.Sprintf("rental %d: notification failed: %v", rt.ID, err))
			}
			if sent {
				report.NotificationsSent++
			}
		}
		chargedByUser[rt.UserID] = append(chargedByUser[rt.UserID], rt)
	}

	// One flat charge per borrower per sweep, regardless of how many items
	// beyond the second are overdue.
	for userID, userRentals := range chargedByUser {
		if len(userRentals) < 2 {
			continue
		}
		rec := &domain.PenaltyRecord{
			UserID:   userID,
			Type:     domain.PenaltyTypeMultipleOverdue,
			Points:   penalty.PointsFor(domain.PenaltyTypeMultipleOverdue, 0),
			Reason:   fmt.Sprintf("%d items simultaneously overdue", len(userRentals)),
			IssuedBy: domain.IssuedBySystem,
			Status:   domain.PenaltyRecordStatusActive,
		}
		if _, err := s.applyRecord(ctx, rec, now); err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("user %d: %v", userID, err))
			continue
		}
		report.PenaltiesApplied = append(report.PenaltiesApplied, domain.PenaltyApplication{
			UserID: userID,
			Type:   domain.PenaltyTypeMultipleOverdue,
			Points: rec.Points,
			Reason: rec.Reason,
		})
	}

	logger.Info("Overdue sweep completed",
		"scanned", report.ScannedCount,
		"newly_overdue", len(report.NewlyOverdue),
		"penalties", len(report.PenaltiesApplied),
		"notifications", report.NotificationsSent,
		"errors", len(report.Errors))
	return report, nil
}

func (s *penaltyService) CheckEligibility(ctx context.Context, userID int32) (*domain.Eligibility, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.Eligibility{Eligible: false, Reason: "user is not registered"}, nil
	}
	if err != nil {
		return nil, err
	}

	if user.Sanction != nil {
		switch {
		case *user.Sanction == domain.SanctionPermanentBan:
			return &domain.Eligibility{Eligible: false, Reason: "permanently banned from equipment rental"}, nil
		case user.SanctionEndDate != nil && user.SanctionEndDate.After(time.Now()):
			end := user.SanctionEndDate.Format("2006-01-02")
			return &domain.Eligibility{
				Eligible:        false,
				Reason:          fmt.Sprintf("rentals suspended until %s", end),
				SanctionEndDate: &end,
			}, nil
		case user.SanctionEndDate != nil:
			// Suspension expired; clear and keep evaluating.
			if err := s.userRepo.ClearSanction(ctx, userID); err != nil {
				return nil, err
			}
			logger.Info("Expired sanction cleared", "user_id", userID, "sanction", *user.Sanction)
		default:
			// Warning carries no restriction.
		}
	}

	overdueCount, err := s.rentalRepo.CountOverdueByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if overdueCount > 0 {
		return &domain.Eligibility{
			Eligible: false,
			Reason:   fmt.Sprintf("return %d overdue item(s) first", overdueCount),
		}, nil
	}

	return &domain.Eligibility{Eligible: true}, nil
}

func (s *penaltyService) GetLedger(ctx context.Context, userID, page, pageSize int32) ([]domain.PenaltyRecord, int32, error) {
	return s.penaltyRepo.ListByUser(ctx, userID, page, pageSize)
}

// applyRecord commits the ledger entry and re-runs sanction classification
// against the new total. A large point jump can escalate through several
// tiers in one call because the tier is always recomputed from the total.
func (s *penaltyService) applyRecord(ctx context.Context, rec *domain.PenaltyRecord, now time.Time) (int32, error) {
	newTotal, err := s.penaltyRepo.Apply(ctx, rec)
	if err != nil {
		return 0, err
	}

	user, err := s.userRepo.GetByID(ctx, rec.UserID)
	if err != nil {
		return newTotal, err
	}

	sanction := penalty.Classify(newTotal, now)
	if sanction == nil {
		if user.Sanction != nil {
			if err := s.userRepo.ClearSanction(ctx, rec.UserID); err != nil {
				return newTotal, err
			}
		}
		return newTotal, nil
	}

	if user.Sanction != nil && *user.Sanction == sanction.Type {
		// Same tier, but a dated suspension restarts from this evaluation.
		if sanction.EndDate != nil {
			if err := s.userRepo.SetSanction(ctx, rec.UserID, sanction.Type, sanction.EndDate, now); err != nil {
				return newTotal, err
			}
			logger.Info("Sanction end date refreshed", "user_id", rec.UserID, "sanction", sanction.Type, "until", sanction.EndDate.Format("2006-01-02"))
		}
		return newTotal, nil
	}

	if err := s.userRepo.SetSanction(ctx, rec.UserID, sanction.Type, sanction.EndDate, now); err != nil {
		return newTotal, err
	}
	logger.Info("Sanction applied", "user_id", rec.UserID, "sanction", sanction.Type, "total_points", newTotal)

	s.notifySanction(ctx, user, sanction, newTotal)
	return newTotal, nil
}

// notifySanction is best-effort; failures are logged inside the notifier and
// the email service and never surface here.
func (s *penaltyService) notifySanction(ctx context.Context, user *domain.User, sanction *penalty.Sanction, total int32) {
	fields := []notify.Field{
		{Name: "Student", Value: fmt.Sprintf("%s (%s)", user.Name, user.StudentID), Inline: true},
		{Name: "Total points", Value: fmt.Sprintf("%d", total), Inline: true},
	}
	if sanction.EndDate != nil {
		fields = append(fields, notify.Field{Name: "Until", Value: sanction.EndDate.Format("2006-01-02"), Inline: true})
	}
	if _, err := s.notifier.Send(ctx, notify.Message{
		Title:       "Sanction applied",
		Description: string(sanction.Type),
		Color:       notify.ColorDanger,
		Fields:      fields,
	}); err != nil {
		logger.Warn("Failed to send sanction notification", "user_id", user.ID, "error", err)
	}

	if user.Email != "" {
		if err := s.emailSvc.SendSanctionNotification(ctx, user.Email, user.Name, sanction.Type, sanction.EndDate); err != nil {
			logger.Warn("Failed to send sanction email", "user_id", user.ID, "error", err)
		}
	}
}

func (s *penaltyService) notifyOverdue(ctx context.Context, rt domain.Rental, overdueDays int32) (bool, error) {
	itemName := fmt.Sprintf("item %d", rt.ItemID)
	if item, err := s.itemRepo.GetByID(ctx, rt.ItemID); err == nil {
		itemName = item.Name
	}

	return s.notifier.Send(ctx, notify.Message{
		Title:       "Rental overdue",
		Description: fmt.Sprintf("%s is %d day(s) overdue", itemName, overdueDays),
		Color:       notify.ColorWarning,
		Fields: []notify.Field{
			{Name: "Rental", Value: fmt.Sprintf("#%d", rt.ID), Inline: true},
			{Name: "Due", Value: rt.DueOn.Format("2006-01-02"), Inline: true},
		},
	})
}
