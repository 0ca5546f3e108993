package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, user_id, item_id, status, rented_on, due_on, returned_on, overdue_days_charged, penalty_points, COALESCE(reason, ''), COALESCE(pickup_tag_id, ''), pickup_photo_id, created_on, updated_on`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (user_id, item_id, status, rented_on, due_on, overdue_days_charged, penalty_points, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, 0, 0, NOW(), NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.UserID, rt.ItemID, rt.Status, rt.RentedOn, rt.DueOn).Scan(&rt.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	err := scanRental(r.db.QueryRowContext(ctx, query, id), rt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET status=$1, returned_on=$2, overdue_days_charged=$3, penalty_points=$4, reason=$5, pickup_tag_id=$6, pickup_photo_id=$7, updated_on=NOW() WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, rt.Status, rt.ReturnedOn, rt.OverdueDaysCharged, rt.PenaltyPoints, rt.Reason, rt.PickupTagID, rt.PickupPhotoID, rt.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE status IN ('RENTED', 'OVERDUE') ORDER BY due_on`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Rental, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE user_id = $1`

	args := []interface{}{userID}
	argIdx := 2
	if status != "" {
		query += " AND status = $2"
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY created_on DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := scanRental(rows, &rt); err != nil {
			return nil, 0, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, count, rows.Err()
}

func (r *rentalRepository) CountOverdueByUser(ctx context.Context, userID int32) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE user_id = $1 AND status = 'OVERDUE'`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

// ChargeOverdue is a single conditional statement so two sweeps racing on the
// same rental cannot both charge: the loser matches zero rows.
func (r *rentalRepository) ChargeOverdue(ctx context.Context, rentalID, overdueDays, deltaPoints int32) (bool, error) {
	query := `UPDATE rentals
	          SET status = 'OVERDUE',
	              overdue_days_charged = $2,
	              penalty_points = penalty_points + $3,
	              updated_on = NOW()
	          WHERE id = $1
	            AND status IN ('RENTED', 'OVERDUE')
	            AND overdue_days_charged < $2`
	res, err := r.db.ExecContext(ctx, query, rentalID, overdueDays, deltaPoints)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner, rt *domain.Rental) error {
	var createdOn, updatedOn sql.NullTime
	err := row.Scan(&rt.ID, &rt.UserID, &rt.ItemID, &rt.Status, &rt.RentedOn, &rt.DueOn, &rt.ReturnedOn,
		&rt.OverdueDaysCharged, &rt.PenaltyPoints, &rt.Reason, &rt.PickupTagID, &rt.PickupPhotoID, &createdOn, &updatedOn)
	if err != nil {
		return err
	}
	if createdOn.Valid {
		rt.CreatedOn = createdOn.Time.Format("2006-01-02")
	}
	if updatedOn.Valid {
		rt.UpdatedOn = updatedOn.Time.Format("2006-01-02")
	}
	return nil
}
