package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type lockboxRepository struct {
	db *sql.DB
}

func NewLockboxRepository(db *sql.DB) repository.LockboxRepository {
	return &lockboxRepository{db: db}
}

func (r *lockboxRepository) Upsert(ctx context.Context, box *domain.Lockbox) error {
	query := `INSERT INTO lockboxes (campus, location, password, updated_by, updated_on)
	          VALUES ($1, $2, $3, $4, NOW())
	          ON CONFLICT (campus) DO UPDATE
	          SET location = EXCLUDED.location,
	              password = EXCLUDED.password,
	              updated_by = EXCLUDED.updated_by,
	              updated_on = NOW()
	          RETURNING id`
	return r.db.QueryRowContext(ctx, query, box.Campus, box.Location, box.Password, box.UpdatedBy).Scan(&box.ID)
}

func (r *lockboxRepository) GetByCampus(ctx context.Context, campus string) (*domain.Lockbox, error) {
	box := &domain.Lockbox{}
	var updatedOn time.Time
	query := `SELECT id, campus, location, password, COALESCE(updated_by, ''), updated_on FROM lockboxes WHERE campus = $1`
	err := r.db.QueryRowContext(ctx, query, campus).Scan(&box.ID, &box.Campus, &box.Location, &box.Password, &box.UpdatedBy, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	box.UpdatedOn = updatedOn.Format("2006-01-02")
	return box, nil
}

func (r *lockboxRepository) List(ctx context.Context) ([]domain.Lockbox, error) {
	query := `SELECT id, campus, location, password, COALESCE(updated_by, ''), updated_on FROM lockboxes ORDER BY campus`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var boxes []domain.Lockbox
	for rows.Next() {
		var box domain.Lockbox
		var updatedOn time.Time
		if err := rows.Scan(&box.ID, &box.Campus, &box.Location, &box.Password, &box.UpdatedBy, &updatedOn); err != nil {
			return nil, err
		}
		box.UpdatedOn = updatedOn.Format("2006-01-02")
		boxes = append(boxes, box)
	}
	return boxes, rows.Err()
}
