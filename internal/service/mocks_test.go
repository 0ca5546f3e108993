package service_test

import (
	"context"
	"io"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/notify"
	"council-rental-backend/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	args := m.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	args := m.Called(ctx, page, pageSize)
	return args.Get(0).([]domain.User), args.Get(1).(int32), args.Error(2)
}

func (m *MockUserRepo) SetSanction(ctx context.Context, userID int32, sanction domain.SanctionType, endDate *time.Time, appliedOn time.Time) error {
	return m.Called(ctx, userID, sanction, endDate, appliedOn).Error(0)
}

func (m *MockUserRepo) ClearSanction(ctx context.Context, userID int32) error {
	return m.Called(ctx, userID).Error(0)
}

type MockItemRepo struct{ mock.Mock }

func (m *MockItemRepo) Create(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepo) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepo) GetByTagID(ctx context.Context, tagID string) (*domain.Item, error) {
	args := m.Called(ctx, tagID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemRepo) Update(ctx context.Context, item *domain.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *MockItemRepo) SetStatus(ctx context.Context, id int32, status domain.ItemStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockItemRepo) Delete(ctx context.Context, id int32) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockItemRepo) List(ctx context.Context, campus, category, status string, page, pageSize int32) ([]domain.Item, int32, error) {
	args := m.Called(ctx, campus, category, status, page, pageSize)
	return args.Get(0).([]domain.Item), args.Get(1).(int32), args.Error(2)
}

type MockRentalRepo struct{ mock.Mock }

func (m *MockRentalRepo) Create(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) Update(ctx context.Context, rental *domain.Rental) error {
	return m.Called(ctx, rental).Error(0)
}

func (m *MockRentalRepo) ListActive(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	return args.Get(0).([]domain.Rental), args.Get(1).(int32), args.Error(2)
}

func (m *MockRentalRepo) CountOverdueByUser(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockRentalRepo) ChargeOverdue(ctx context.Context, rentalID, overdueDays, deltaPoints int32) (bool, error) {
	args := m.Called(ctx, rentalID, overdueDays, deltaPoints)
	return args.Bool(0), args.Error(1)
}

type MockPenaltyRepo struct{ mock.Mock }

func (m *MockPenaltyRepo) Apply(ctx context.Context, rec *domain.PenaltyRecord) (int32, error) {
	args := m.Called(ctx, rec)
	return args.Get(0).(int32), args.Error(1)
}

func (m *MockPenaltyRepo) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.PenaltyRecord, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.PenaltyRecord), args.Get(1).(int32), args.Error(2)
}

func (m *MockPenaltyRepo) SumPointsByUser(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

type MockLockboxRepo struct{ mock.Mock }

func (m *MockLockboxRepo) Upsert(ctx context.Context, box *domain.Lockbox) error {
	return m.Called(ctx, box).Error(0)
}

func (m *MockLockboxRepo) GetByCampus(ctx context.Context, campus string) (*domain.Lockbox, error) {
	args := m.Called(ctx, campus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lockbox), args.Error(1)
}

func (m *MockLockboxRepo) List(ctx context.Context) ([]domain.Lockbox, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Lockbox), args.Error(1)
}

type MockPhotoRepo struct{ mock.Mock }

func (m *MockPhotoRepo) Create(ctx context.Context, photo *domain.PickupPhoto) error {
	return m.Called(ctx, photo).Error(0)
}

func (m *MockPhotoRepo) GetByID(ctx context.Context, id int32) (*domain.PickupPhoto, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PickupPhoto), args.Error(1)
}

func (m *MockPhotoRepo) ListByRental(ctx context.Context, rentalID int32) ([]domain.PickupPhoto, error) {
	args := m.Called(ctx, rentalID)
	return args.Get(0).([]domain.PickupPhoto), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, msg notify.Message) (bool, error) {
	args := m.Called(ctx, msg)
	return args.Bool(0), args.Error(1)
}

type MockEmailService struct{ mock.Mock }

func (m *MockEmailService) SendSanctionNotification(ctx context.Context, email, name string, sanction domain.SanctionType, endDate *time.Time) error {
	return m.Called(ctx, email, name, sanction, endDate).Error(0)
}

func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, name, itemName string, overdueDays int32) error {
	return m.Called(ctx, email, name, itemName, overdueDays).Error(0)
}

type MockPenaltyService struct{ mock.Mock }

func (m *MockPenaltyService) ApplyPenalty(ctx context.Context, userID int32, penaltyType domain.PenaltyType, days int32, rentalID *int32, reason, issuedBy string) (*domain.User, error) {
	args := m.Called(ctx, userID, penaltyType, days, rentalID, reason, issuedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPenaltyService) ReducePenalty(ctx context.Context, userID, points int32, reason, adminUsername string) (*domain.User, error) {
	args := m.Called(ctx, userID, points, reason, adminUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockPenaltyService) RunOverdueSweep(ctx context.Context, now time.Time) (*domain.SweepReport, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SweepReport), args.Error(1)
}

func (m *MockPenaltyService) CheckEligibility(ctx context.Context, userID int32) (*domain.Eligibility, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Eligibility), args.Error(1)
}

func (m *MockPenaltyService) GetLedger(ctx context.Context, userID, page, pageSize int32) ([]domain.PenaltyRecord, int32, error) {
	args := m.Called(ctx, userID, page, pageSize)
	return args.Get(0).([]domain.PenaltyRecord), args.Get(1).(int32), args.Error(2)
}

type MockStorage struct{ mock.Mock }

func (m *MockStorage) Upload(ctx context.Context, key, contentType string, r io.Reader, progress storage.ProgressFunc) (*storage.UploadResult, error) {
	args := m.Called(ctx, key, contentType, r, progress)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*storage.UploadResult), args.Error(1)
}

func (m *MockStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}
