package postgres

import (
	"context"
	"database/sql"
	"errors"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type photoRepository struct {
	db *sql.DB
}

func NewPhotoRepository(db *sql.DB) repository.PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, p *domain.PickupPhoto) error {
	query := `INSERT INTO pickup_photos (rental_id, file_name, file_path, url, file_size, mime_type, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, NOW()) RETURNING id, created_on`
	return r.db.QueryRowContext(ctx, query, p.RentalID, p.FileName, p.FilePath, p.URL, p.FileSize, p.MimeType).Scan(&p.ID, &p.CreatedOn)
}

func (r *photoRepository) GetByID(ctx context.Context, id int32) (*domain.PickupPhoto, error) {
	p := &domain.PickupPhoto{}
	query := `SELECT id, rental_id, file_name, file_path, url, file_size, mime_type, created_on FROM pickup_photos WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.RentalID, &p.FileName, &p.FilePath, &p.URL, &p.FileSize, &p.MimeType, &p.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *photoRepository) ListByRental(ctx context.Context, rentalID int32) ([]domain.PickupPhoto, error) {
	query := `SELECT id, rental_id, file_name, file_path, url, file_size, mime_type, created_on FROM pickup_photos WHERE rental_id = $1 ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, rentalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var photos []domain.PickupPhoto
	for rows.Next() {
		var p domain.PickupPhoto
		if err := rows.Scan(&p.ID, &p.RentalID, &p.FileName, &p.FilePath, &p.URL, &p.FileSize, &p.MimeType, &p.CreatedOn); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}
