package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type adminRepository struct {
	db *sql.DB
}

func NewAdminRepository(db *sql.DB) repository.AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) Create(ctx context.Context, a *domain.Admin) error {
	query := `INSERT INTO admins (username, password_hash, name, role, created_on)
	          VALUES ($1, $2, $3, $4, NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, a.Username, a.PasswordHash, a.Name, a.Role).Scan(&a.ID)
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	a := &domain.Admin{}
	var createdOn time.Time
	query := `SELECT id, username, password_hash, name, role, created_on FROM admins WHERE username = $1`
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.Name, &a.Role, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	a.CreatedOn = createdOn.Format("2006-01-02")
	return a, nil
}
