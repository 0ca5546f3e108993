package postgres

import (
	"context"
	"testing"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRentalRepository_ChargeOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("charges when more days are owed than recorded", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals").
			WithArgs(int32(10), int32(3), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		charged, err := repo.ChargeOverdue(ctx, 10, 3, 2)
		assert.NoError(t, err)
		assert.True(t, charged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no-op when the day count was already charged", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals").
			WithArgs(int32(10), int32(3), int32(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		charged, err := repo.ChargeOverdue(ctx, 10, 3, 2)
		assert.NoError(t, err)
		assert.False(t, charged)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRentalRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "user_id", "item_id", "status", "rented_on", "due_on", "returned_on",
			"overdue_days_charged", "penalty_points", "reason", "pickup_tag_id", "pickup_photo_id",
			"created_on", "updated_on",
		}).AddRow(10, 1, 3, "OVERDUE", now.AddDate(0, 0, -8), now.AddDate(0, 0, -1), nil, 1, 1, "", "TAG-003", nil, now, now)

		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id").
			WithArgs(int32(10)).
			WillReturnRows(rows)

		rental, err := repo.GetByID(ctx, 10)
		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusOverdue, rental.Status)
		assert.Equal(t, int32(1), rental.OverdueDaysCharged)
		assert.Equal(t, "TAG-003", rental.PickupTagID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestRentalRepository_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRentalRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "item_id", "status", "rented_on", "due_on", "returned_on",
		"overdue_days_charged", "penalty_points", "reason", "pickup_tag_id", "pickup_photo_id",
		"created_on", "updated_on",
	}).
		AddRow(1, 1, 1, "RENTED", now, now.AddDate(0, 0, 3), nil, 0, 0, "", "", nil, now, now).
		AddRow(2, 2, 2, "OVERDUE", now.AddDate(0, 0, -5), now.AddDate(0, 0, -2), nil, 2, 2, "", "", nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM rentals WHERE status IN").
		WillReturnRows(rows)

	rentals, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rentals, 2)
	assert.Equal(t, domain.RentalStatusOverdue, rentals[1].Status)
}
