package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (student_id, name, email, phone_number, penalty_points, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, 0, NOW(), NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, u.StudentID, u.Name, u.Email, u.PhoneNumber).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *userRepository) GetByStudentID(ctx context.Context, studentID string) (*domain.User, error) {
	return r.getOne(ctx, `WHERE student_id = $1`, studentID)
}

func (r *userRepository) getOne(ctx context.Context, where string, arg interface{}) (*domain.User, error) {
	u := &domain.User{}
	query := `SELECT id, student_id, name, email, COALESCE(phone_number, ''), penalty_points, sanction, sanction_end_date, sanction_applied_on, created_on, updated_on
	          FROM users ` + where
	var sanction sql.NullString
	var createdOn, updatedOn time.Time
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.StudentID, &u.Name, &u.Email, &u.PhoneNumber, &u.PenaltyPoints,
		&sanction, &u.SanctionEndDate, &u.SanctionAppliedOn, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if sanction.Valid {
		s := domain.SanctionType(sanction.String)
		u.Sanction = &s
	}
	u.CreatedOn = createdOn.Format("2006-01-02")
	u.UpdatedOn = updatedOn.Format("2006-01-02")
	return u, nil
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET name=$1, email=$2, phone_number=$3, updated_on=NOW() WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, u.Name, u.Email, u.PhoneNumber, u.ID)
	return err
}

func (r *userRepository) List(ctx context.Context, page, pageSize int32) ([]domain.User, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, student_id, name, email, COALESCE(phone_number, ''), penalty_points, sanction, sanction_end_date, sanction_applied_on, created_on, updated_on
	          FROM users ORDER BY penalty_points DESC, id LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		var sanction sql.NullString
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&u.ID, &u.StudentID, &u.Name, &u.Email, &u.PhoneNumber, &u.PenaltyPoints,
			&sanction, &u.SanctionEndDate, &u.SanctionAppliedOn, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		if sanction.Valid {
			s := domain.SanctionType(sanction.String)
			u.Sanction = &s
		}
		u.CreatedOn = createdOn.Format("2006-01-02")
		u.UpdatedOn = updatedOn.Format("2006-01-02")
		users = append(users, u)
	}
	return users, count, rows.Err()
}

func (r *userRepository) SetSanction(ctx context.Context, userID int32, sanction domain.SanctionType, endDate *time.Time, appliedOn time.Time) error {
	query := `UPDATE users SET sanction=$1, sanction_end_date=$2, sanction_applied_on=$3, updated_on=NOW() WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, string(sanction), endDate, appliedOn, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *userRepository) ClearSanction(ctx context.Context, userID int32) error {
	query := `UPDATE users SET sanction=NULL, sanction_end_date=NULL, sanction_applied_on=NULL, updated_on=NOW() WHERE id=$1`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}
