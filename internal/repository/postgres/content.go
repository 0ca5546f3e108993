package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type noticeRepository struct {
	db *sql.DB
}

func NewNoticeRepository(db *sql.DB) repository.NoticeRepository {
	return &noticeRepository{db: db}
}

func (r *noticeRepository) Create(ctx context.Context, n *domain.Notice) error {
	query := `INSERT INTO notices (title, content, category, pinned, author, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, n.Title, n.Content, n.Category, n.Pinned, n.Author).Scan(&n.ID)
}

func (r *noticeRepository) GetByID(ctx context.Context, id int32) (*domain.Notice, error) {
	n := &domain.Notice{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, title, content, COALESCE(category, ''), pinned, COALESCE(author, ''), created_on, updated_on FROM notices WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.Pinned, &n.Author, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	n.CreatedOn = createdOn.Format("2006-01-02")
	n.UpdatedOn = updatedOn.Format("2006-01-02")
	return n, nil
}

func (r *noticeRepository) Update(ctx context.Context, n *domain.Notice) error {
	query := `UPDATE notices SET title=$1, content=$2, category=$3, pinned=$4, updated_on=NOW() WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, n.Title, n.Content, n.Category, n.Pinned, n.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *noticeRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notices WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *noticeRepository) List(ctx context.Context, category string, page, pageSize int32) ([]domain.Notice, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, title, content, COALESCE(category, ''), pinned, COALESCE(author, ''), created_on, updated_on FROM notices`
	countQuery := `SELECT count(*) FROM notices`
	args := []interface{}{}
	if category != "" {
		query += ` WHERE category = $1`
		countQuery += ` WHERE category = $1`
		args = append(args, category)
	}

	var count int32
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	if category != "" {
		query += ` ORDER BY pinned DESC, created_on DESC LIMIT $2 OFFSET $3`
	} else {
		query += ` ORDER BY pinned DESC, created_on DESC LIMIT $1 OFFSET $2`
	}
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notices []domain.Notice
	for rows.Next() {
		var n domain.Notice
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Category, &n.Pinned, &n.Author, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		n.CreatedOn = createdOn.Format("2006-01-02")
		n.UpdatedOn = updatedOn.Format("2006-01-02")
		notices = append(notices, n)
	}
	return notices, count, rows.Err()
}

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (title, description, location, starts_on, ends_on, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, NOW(), NOW()) RETURNING id`
	return r.db.QueryRowContext(ctx, query, e.Title, e.Description, e.Location, e.StartsOn, e.EndsOn).Scan(&e.ID)
}

func (r *eventRepository) GetByID(ctx context.Context, id int32) (*domain.Event, error) {
	e := &domain.Event{}
	var createdOn, updatedOn time.Time
	query := `SELECT id, title, COALESCE(description, ''), COALESCE(location, ''), starts_on, ends_on, created_on, updated_on FROM events WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsOn, &e.EndsOn, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e.CreatedOn = createdOn.Format("2006-01-02")
	e.UpdatedOn = updatedOn.Format("2006-01-02")
	return e, nil
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events SET title=$1, description=$2, location=$3, starts_on=$4, ends_on=$5, updated_on=NOW() WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, e.Title, e.Description, e.Location, e.StartsOn, e.EndsOn, e.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *eventRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM events WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *eventRepository) List(ctx context.Context, page, pageSize int32) ([]domain.Event, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	if err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM events`).Scan(&count); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, title, COALESCE(description, ''), COALESCE(location, ''), starts_on, ends_on, created_on, updated_on
	          FROM events ORDER BY starts_on DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Location, &e.StartsOn, &e.EndsOn, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		e.CreatedOn = createdOn.Format("2006-01-02")
		e.UpdatedOn = updatedOn.Format("2006-01-02")
		events = append(events, e)
	}
	return events, count, rows.Err()
}
