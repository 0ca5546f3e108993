package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type penaltyRepository struct {
	db *sql.DB
}

func NewPenaltyRepository(db *sql.DB) repository.PenaltyRepository {
	return &penaltyRepository{db: db}
}

// Apply writes the ledger row and the user's cumulative total in one
// transaction. The total is adjusted with an atomic in-database increment and
// floored at zero, so concurrent applications serialize on the row instead of
// losing updates.
func (r *penaltyRepository) Apply(ctx context.Context, rec *domain.PenaltyRecord) (int32, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	insert := `INSERT INTO penalty_records (user_id, rental_id, type, points, reason, issued_by, status, created_on)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id, created_on`
	if rec.Status == "" {
		rec.Status = domain.PenaltyRecordStatusActive
	}
	err = tx.QueryRowContext(ctx, insert,
		rec.UserID, rec.RentalID, rec.Type, rec.Points, rec.Reason, rec.IssuedBy, rec.Status).
		Scan(&rec.ID, &rec.CreatedOn)
	if err != nil {
		return 0, fmt.Errorf("failed to append penalty record: %w", err)
	}

	var newTotal int32
	update := `UPDATE users
	           SET penalty_points = GREATEST(penalty_points + $1, 0),
	               updated_on = NOW()
	           WHERE id = $2
	           RETURNING penalty_points`
	err = tx.QueryRowContext(ctx, update, rec.Points, rec.UserID).Scan(&newTotal)
	if err == sql.ErrNoRows {
		return 0, repository.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to update penalty total: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return newTotal, nil
}

func (r *penaltyRepository) ListByUser(ctx context.Context, userID int32, page, pageSize int32) ([]domain.PenaltyRecord, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM penalty_records WHERE user_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, userID).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, user_id, rental_id, type, points, COALESCE(reason, ''), issued_by, status, created_on
	          FROM penalty_records WHERE user_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, userID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.PenaltyRecord
	for rows.Next() {
		var rec domain.PenaltyRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.RentalID, &rec.Type, &rec.Points, &rec.Reason, &rec.IssuedBy, &rec.Status, &rec.CreatedOn); err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}
	return records, count, rows.Err()
}

// SumPointsByUser derives the total from the ledger. Used for reconciliation
// against the cached column on users.
func (r *penaltyRepository) SumPointsByUser(ctx context.Context, userID int32) (int32, error) {
	var sum int32
	query := `SELECT COALESCE(SUM(points), 0) FROM penalty_records WHERE user_id = $1 AND status = 'ACTIVE'`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&sum)
	return sum, err
}
