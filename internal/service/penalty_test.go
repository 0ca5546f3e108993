package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/penalty"
	"council-rental-backend/internal/repository"
	"council-rental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPenaltyService(penaltyRepo *MockPenaltyRepo, userRepo *MockUserRepo, rentalRepo *MockRentalRepo, itemRepo *MockItemRepo, notifier *MockNotifier, emailSvc *MockEmailService) service.PenaltyService {
	return service.NewPenaltyService(penaltyRepo, userRepo, rentalRepo, itemRepo, notifier, emailSvc)
}

func TestPenaltyService_ApplyPenalty(t *testing.T) {
	ctx := context.Background()

	t.Run("minor damage below warning threshold", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		notifier := new(MockNotifier)
		emailSvc := new(MockEmailService)
		svc := newPenaltyService(penaltyRepo, userRepo, nil, nil, notifier, emailSvc)

		user := &domain.User{ID: 1, StudentID: "S100", Name: "Kim", PenaltyPoints: 0}
		penaltyRepo.On("Apply", ctx, mock.MatchedBy(func(rec *domain.PenaltyRecord) bool {
			return rec.UserID == 1 && rec.Type == domain.PenaltyTypeDamageMinor && rec.Points == 5
		})).Return(int32(5), nil).Once()
		userRepo.On("GetByID", ctx, int32(1)).Return(user, nil)

		result, err := svc.ApplyPenalty(ctx, 1, domain.PenaltyTypeDamageMinor, 0, nil, "cracked casing", "admin1")
		assert.NoError(t, err)
		assert.NotNil(t, result)

		// Total stays below the warning tier, so no sanction calls happen.
		userRepo.AssertNotCalled(t, "SetSanction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		penaltyRepo.AssertExpectations(t)
	})

	t.Run("loss escalates straight to three month suspension", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		notifier := new(MockNotifier)
		emailSvc := new(MockEmailService)
		svc := newPenaltyService(penaltyRepo, userRepo, nil, nil, notifier, emailSvc)

		user := &domain.User{ID: 2, StudentID: "S200", Name: "Lee", Email: "lee@test.com", PenaltyPoints: 5}
		penaltyRepo.On("Apply", ctx, mock.MatchedBy(func(rec *domain.PenaltyRecord) bool {
			return rec.Type == domain.PenaltyTypeLoss && rec.Points == 30
		})).Return(int32(35), nil).Once()
		userRepo.On("GetByID", ctx, int32(2)).Return(user, nil)
		userRepo.On("SetSanction", ctx, int32(2), domain.SanctionSuspension3Month, mock.MatchedBy(func(end *time.Time) bool {
			return end != nil && end.After(time.Now())
		}), mock.Anything).Return(nil).Once()
		notifier.On("Send", ctx, mock.Anything).Return(true, nil).Once()
		emailSvc.On("SendSanctionNotification", ctx, "lee@test.com", "Lee", domain.SanctionSuspension3Month, mock.Anything).Return(nil).Once()

		_, err := svc.ApplyPenalty(ctx, 2, domain.PenaltyTypeLoss, 0, nil, "item never returned", domain.IssuedBySystem)
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		notifier.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("unchanged tier does not reapply the sanction", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		notifier := new(MockNotifier)
		emailSvc := new(MockEmailService)
		svc := newPenaltyService(penaltyRepo, userRepo, nil, nil, notifier, emailSvc)

		warning := domain.SanctionWarning
		user := &domain.User{ID: 3, StudentID: "S300", Name: "Park", PenaltyPoints: 11, Sanction: &warning}
		penaltyRepo.On("Apply", ctx, mock.Anything).Return(int32(16), nil).Once()
		userRepo.On("GetByID", ctx, int32(3)).Return(user, nil)

		_, err := svc.ApplyPenalty(ctx, 3, domain.PenaltyTypeDamageMinor, 0, nil, "scratches", "admin1")
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "SetSanction", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repeat offense in the same suspension tier restarts the clock", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		notifier := new(MockNotifier)
		emailSvc := new(MockEmailService)
		svc := newPenaltyService(penaltyRepo, userRepo, nil, nil, notifier, emailSvc)

		susp := domain.SanctionSuspension3Month
		oldEnd := time.Now().AddDate(0, 1, 0)
		user := &domain.User{ID: 5, StudentID: "S500", Name: "Choi", PenaltyPoints: 30, Sanction: &susp, SanctionEndDate: &oldEnd}
		penaltyRepo.On("Apply", ctx, mock.Anything).Return(int32(35), nil).Once()
		userRepo.On("GetByID", ctx, int32(5)).Return(user, nil)
		userRepo.On("SetSanction", ctx, int32(5), domain.SanctionSuspension3Month, mock.MatchedBy(func(end *time.Time) bool {
			return end != nil && end.After(oldEnd)
		}), mock.Anything).Return(nil).Once()

		_, err := svc.ApplyPenalty(ctx, 5, domain.PenaltyTypeDamageMinor, 0, nil, "second incident", "admin1")
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
		// The tier itself did not change, so no fresh sanction notice goes out.
		notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("rejects a zero point charge", func(t *testing.T) {
		svc := newPenaltyService(new(MockPenaltyRepo), new(MockUserRepo), nil, nil, new(MockNotifier), new(MockEmailService))

		_, err := svc.ApplyPenalty(ctx, 1, domain.PenaltyTypeOverdue, 0, nil, "", "admin1")
		assert.Error(t, err)
	})
}

func TestPenaltyService_ReducePenalty(t *testing.T) {
	ctx := context.Background()

	t.Run("reduction below warning threshold clears the sanction", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		svc := newPenaltyService(penaltyRepo, userRepo, nil, nil, new(MockNotifier), new(MockEmailService))

		penaltyRepo.On("Apply", ctx, mock.MatchedBy(func(rec *domain.PenaltyRecord) bool {
			return rec.Type == domain.PenaltyTypeReduction && rec.Points == -10 && rec.IssuedBy == "admin1"
		})).Return(int32(5), nil).Once()
		userRepo.On("ClearSanction", ctx, int32(1)).Return(nil).Once()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, PenaltyPoints: 5}, nil)

		_, err := svc.ReducePenalty(ctx, 1, 10, "appeal accepted", "admin1")
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("reduction that stays above the warning threshold keeps the sanction", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		svc := newPenaltyService(penaltyRepo, userRepo, nil, nil, new(MockNotifier), new(MockEmailService))

		penaltyRepo.On("Apply", ctx, mock.Anything).Return(int32(12), nil).Once()
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, PenaltyPoints: 12}, nil)

		_, err := svc.ReducePenalty(ctx, 1, 5, "partial appeal", "admin1")
		assert.NoError(t, err)
		userRepo.AssertNotCalled(t, "ClearSanction", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		svc := newPenaltyService(new(MockPenaltyRepo), new(MockUserRepo), nil, nil, new(MockNotifier), new(MockEmailService))

		_, err := svc.ReducePenalty(ctx, 1, 0, "", "admin1")
		assert.Error(t, err)
		_, err = svc.ReducePenalty(ctx, 1, -3, "", "admin1")
		assert.Error(t, err)
	})
}

func TestPenaltyService_RunOverdueSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)

	t.Run("nothing due yields an empty report", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), new(MockUserRepo), rentalRepo, new(MockItemRepo), new(MockNotifier), new(MockEmailService))

		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 1, UserID: 1, Status: domain.RentalStatusRented, DueOn: now.AddDate(0, 0, 3)},
		}, nil).Once()

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int32(1), report.ScannedCount)
		assert.Empty(t, report.PenaltiesApplied)
		assert.Empty(t, report.NewlyOverdue)
	})

	t.Run("one day overdue charges one point and notifies", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		itemRepo := new(MockItemRepo)
		notifier := new(MockNotifier)
		svc := newPenaltyService(penaltyRepo, userRepo, rentalRepo, itemRepo, notifier, new(MockEmailService))

		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 10, UserID: 4, ItemID: 7, Status: domain.RentalStatusRented, DueOn: now.AddDate(0, 0, -1)},
		}, nil).Once()
		rentalRepo.On("ChargeOverdue", ctx, int32(10), int32(1), int32(1)).Return(true, nil).Once()
		penaltyRepo.On("Apply", ctx, mock.MatchedBy(func(rec *domain.PenaltyRecord) bool {
			return rec.UserID == 4 && rec.Type == domain.PenaltyTypeOverdue && rec.Points == 1 && rec.IssuedBy == domain.IssuedBySystem
		})).Return(int32(1), nil).Once()
		userRepo.On("GetByID", ctx, int32(4)).Return(&domain.User{ID: 4, PenaltyPoints: 1}, nil)
		itemRepo.On("GetByID", ctx, int32(7)).Return(&domain.Item{ID: 7, Name: "Projector"}, nil)
		notifier.On("Send", ctx, mock.Anything).Return(true, nil).Once()

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		assert.Len(t, report.PenaltiesApplied, 1)
		assert.Len(t, report.NewlyOverdue, 1)
		assert.Equal(t, int32(1), report.NotificationsSent)
		assert.Empty(t, report.Errors)
	})

	t.Run("notification delivery failure lands in the report errors", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		itemRepo := new(MockItemRepo)
		notifier := new(MockNotifier)
		svc := newPenaltyService(penaltyRepo, userRepo, rentalRepo, itemRepo, notifier, new(MockEmailService))

		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 14, UserID: 4, ItemID: 7, Status: domain.RentalStatusRented, DueOn: now.AddDate(0, 0, -1)},
		}, nil).Once()
		rentalRepo.On("ChargeOverdue", ctx, int32(14), int32(1), int32(1)).Return(true, nil).Once()
		penaltyRepo.On("Apply", ctx, mock.Anything).Return(int32(1), nil).Once()
		userRepo.On("GetByID", ctx, int32(4)).Return(&domain.User{ID: 4, PenaltyPoints: 1}, nil)
		itemRepo.On("GetByID", ctx, int32(7)).Return(&domain.Item{ID: 7, Name: "Projector"}, nil)
		notifier.On("Send", ctx, mock.Anything).Return(false, errors.New("webhook returned status 429")).Once()

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		// The penalty itself is committed; only the delivery failed.
		assert.Len(t, report.PenaltiesApplied, 1)
		assert.Equal(t, int32(0), report.NotificationsSent)
		require.Len(t, report.Errors, 1)
		assert.Contains(t, report.Errors[0], "rental 14: notification failed")
	})

	t.Run("unconfigured webhook is not a sweep error", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		itemRepo := new(MockItemRepo)
		notifier := new(MockNotifier)
		svc := newPenaltyService(penaltyRepo, userRepo, rentalRepo, itemRepo, notifier, new(MockEmailService))

		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 15, UserID: 4, ItemID: 7, Status: domain.RentalStatusRented, DueOn: now.AddDate(0, 0, -1)},
		}, nil).Once()
		rentalRepo.On("ChargeOverdue", ctx, int32(15), int32(1), int32(1)).Return(true, nil).Once()
		penaltyRepo.On("Apply", ctx, mock.Anything).Return(int32(1), nil).Once()
		userRepo.On("GetByID", ctx, int32(4)).Return(&domain.User{ID: 4, PenaltyPoints: 1}, nil)
		itemRepo.On("GetByID", ctx, int32(7)).Return(&domain.Item{ID: 7, Name: "Projector"}, nil)
		notifier.On("Send", ctx, mock.Anything).Return(false, nil).Once()

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), report.NotificationsSent)
		assert.Empty(t, report.Errors)
	})

	t.Run("already charged days are not recharged", func(t *testing.T) {
		rentalRepo := new(MockRentalRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), new(MockUserRepo), rentalRepo, new(MockItemRepo), new(MockNotifier), new(MockEmailService))

		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 11, UserID: 4, Status: domain.RentalStatusOverdue, DueOn: now.AddDate(0, 0, -3), OverdueDaysCharged: 3},
		}, nil).Once()

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		assert.Empty(t, report.PenaltiesApplied)
		rentalRepo.AssertNotCalled(t, "ChargeOverdue", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("only the delta above charged days is billed", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newPenaltyService(penaltyRepo, userRepo, rentalRepo, new(MockItemRepo), new(MockNotifier), new(MockEmailService))

		// 5 days overdue, 3 already charged: bill 2 points, record 5 total.
		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 12, UserID: 5, Status: domain.RentalStatusOverdue, DueOn: now.AddDate(0, 0, -5), OverdueDaysCharged: 3},
		}, nil).Once()
		rentalRepo.On("ChargeOverdue", ctx, int32(12), int32(5), int32(2)).Return(true, nil).Once()
		penaltyRepo.On("Apply", ctx, mock.MatchedBy(func(rec *domain.PenaltyRecord) bool {
			return rec.Points == 2
		})).Return(int32(5), nil).Once()
		userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5, PenaltyPoints: 5}, nil)

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		assert.Len(t, report.PenaltiesApplied, 1)
		// Rental was already OVERDUE, so no fresh notification goes out.
		assert.Empty(t, report.NewlyOverdue)
	})

	t.Run("losing the charge race skips the rental", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newPenaltyService(penaltyRepo, new(MockUserRepo), rentalRepo, new(MockItemRepo), new(MockNotifier), new(MockEmailService))

		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 13, UserID: 6, Status: domain.RentalStatusRented, DueOn: now.AddDate(0, 0, -1)},
		}, nil).Once()
		rentalRepo.On("ChargeOverdue", ctx, int32(13), int32(1), int32(1)).Return(false, nil).Once()

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		assert.Empty(t, report.PenaltiesApplied)
		penaltyRepo.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
	})

	t.Run("two overdue items add one flat multi-overdue charge", func(t *testing.T) {
		penaltyRepo := new(MockPenaltyRepo)
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		itemRepo := new(MockItemRepo)
		notifier := new(MockNotifier)
		svc := newPenaltyService(penaltyRepo, userRepo, rentalRepo, itemRepo, notifier, new(MockEmailService))

		rentalRepo.On("ListActive", ctx).Return([]domain.Rental{
			{ID: 20, UserID: 7, ItemID: 1, Status: domain.RentalStatusRented, DueOn: now.AddDate(0, 0, -1)},
			{ID: 21, UserID: 7, ItemID: 2, Status: domain.RentalStatusRented, DueOn: now.AddDate(0, 0, -2)},
		}, nil).Once()
		rentalRepo.On("ChargeOverdue", ctx, int32(20), int32(1), int32(1)).Return(true, nil).Once()
		rentalRepo.On("ChargeOverdue", ctx, int32(21), int32(2), int32(2)).Return(true, nil).Once()
		penaltyRepo.On("Apply", ctx, mock.MatchedBy(func(rec *domain.PenaltyRecord) bool {
			return rec.Type == domain.PenaltyTypeOverdue
		})).Return(int32(3), nil).Twice()
		penaltyRepo.On("Apply", ctx, mock.MatchedBy(func(rec *domain.PenaltyRecord) bool {
			return rec.Type == domain.PenaltyTypeMultipleOverdue && rec.Points == 5 && rec.RentalID == nil
		})).Return(int32(8), nil).Once()
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, PenaltyPoints: 8}, nil)
		itemRepo.On("GetByID", ctx, mock.Anything).Return(&domain.Item{Name: "Tent"}, nil)
		notifier.On("Send", ctx, mock.Anything).Return(true, nil)

		report, err := svc.RunOverdueSweep(ctx, now)
		assert.NoError(t, err)
		assert.Len(t, report.PenaltiesApplied, 3)
		penaltyRepo.AssertExpectations(t)
	})
}

func TestPenaltyService_CheckEligibility(t *testing.T) {
	ctx := context.Background()

	t.Run("unregistered user is ineligible", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), userRepo, new(MockRentalRepo), nil, new(MockNotifier), new(MockEmailService))

		userRepo.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		elig, err := svc.CheckEligibility(ctx, 99)
		assert.NoError(t, err)
		assert.False(t, elig.Eligible)
		assert.Equal(t, "user is not registered", elig.Reason)
	})

	t.Run("permanent ban is always ineligible", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), userRepo, new(MockRentalRepo), nil, new(MockNotifier), new(MockEmailService))

		ban := domain.SanctionPermanentBan
		userRepo.On("GetByID", ctx, int32(1)).Return(&domain.User{ID: 1, Sanction: &ban, PenaltyPoints: 60}, nil)

		elig, err := svc.CheckEligibility(ctx, 1)
		assert.NoError(t, err)
		assert.False(t, elig.Eligible)
	})

	t.Run("active suspension reports its end date", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), userRepo, new(MockRentalRepo), nil, new(MockNotifier), new(MockEmailService))

		susp := domain.SanctionSuspension1Month
		end := time.Now().AddDate(0, 0, 10)
		userRepo.On("GetByID", ctx, int32(2)).Return(&domain.User{ID: 2, Sanction: &susp, SanctionEndDate: &end}, nil)

		elig, err := svc.CheckEligibility(ctx, 2)
		assert.NoError(t, err)
		assert.False(t, elig.Eligible)
		assert.NotNil(t, elig.SanctionEndDate)
		assert.Equal(t, end.Format("2006-01-02"), *elig.SanctionEndDate)
	})

	t.Run("expired suspension is cleared and user becomes eligible", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), userRepo, rentalRepo, nil, new(MockNotifier), new(MockEmailService))

		susp := domain.SanctionSuspension3Month
		end := time.Now().AddDate(0, 0, -1)
		userRepo.On("GetByID", ctx, int32(3)).Return(&domain.User{ID: 3, Sanction: &susp, SanctionEndDate: &end}, nil)
		userRepo.On("ClearSanction", ctx, int32(3)).Return(nil).Once()
		rentalRepo.On("CountOverdueByUser", ctx, int32(3)).Return(int32(0), nil)

		elig, err := svc.CheckEligibility(ctx, 3)
		assert.NoError(t, err)
		assert.True(t, elig.Eligible)
		userRepo.AssertExpectations(t)
	})

	t.Run("a warning does not block rentals", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), userRepo, rentalRepo, nil, new(MockNotifier), new(MockEmailService))

		warning := domain.SanctionWarning
		userRepo.On("GetByID", ctx, int32(4)).Return(&domain.User{ID: 4, Sanction: &warning, PenaltyPoints: 12}, nil)
		rentalRepo.On("CountOverdueByUser", ctx, int32(4)).Return(int32(0), nil)

		elig, err := svc.CheckEligibility(ctx, 4)
		assert.NoError(t, err)
		assert.True(t, elig.Eligible)
	})

	t.Run("outstanding overdue items block new rentals", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		rentalRepo := new(MockRentalRepo)
		svc := newPenaltyService(new(MockPenaltyRepo), userRepo, rentalRepo, nil, new(MockNotifier), new(MockEmailService))

		userRepo.On("GetByID", ctx, int32(5)).Return(&domain.User{ID: 5}, nil)
		rentalRepo.On("CountOverdueByUser", ctx, int32(5)).Return(int32(2), nil)

		elig, err := svc.CheckEligibility(ctx, 5)
		assert.NoError(t, err)
		assert.False(t, elig.Eligible)
		assert.Equal(t, "return 2 overdue item(s) first", elig.Reason)
	})
}

func TestClassifyThresholdsMatchEligibilityGate(t *testing.T) {
	now := time.Now()

	// The eligibility gate treats a warning as non-blocking, so the first
	// blocking tier must start at the one month suspension.
	s := penalty.Classify(penalty.ThresholdWarning, now)
	assert.NotNil(t, s)
	assert.Equal(t, domain.SanctionWarning, s.Type)

	s = penalty.Classify(penalty.ThresholdSuspension1Month, now)
	assert.NotNil(t, s)
	assert.Equal(t, domain.SanctionSuspension1Month, s.Type)
}
