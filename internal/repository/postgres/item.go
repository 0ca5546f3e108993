package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"council-rental-backend/internal/domain"
	"council-rental-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, category, COALESCE(description, ''), condition, campus, tag_id, status, created_on, updated_on`

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (name, category, description, condition, campus, tag_id, status, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW()) RETURNING id`
	if it.Status == "" {
		it.Status = domain.ItemStatusAvailable
	}
	return r.db.QueryRowContext(ctx, query, it.Name, it.Category, it.Description, it.Condition, it.Campus, it.TagID, it.Status).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	return r.getOne(ctx, `WHERE id = $1`, id)
}

func (r *itemRepository) GetByTagID(ctx context.Context, tagID string) (*domain.Item, error) {
	return r.getOne(ctx, `WHERE tag_id = $1`, tagID)
}

func (r *itemRepository) getOne(ctx context.Context, where string, arg interface{}) (*domain.Item, error) {
	it := &domain.Item{}
	var createdOn, updatedOn time.Time
	query := `SELECT ` + itemColumns + ` FROM items ` + where
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&it.ID, &it.Name, &it.Category, &it.Description, &it.Condition, &it.Campus, &it.TagID, &it.Status, &createdOn, &updatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	it.CreatedOn = createdOn.Format("2006-01-02")
	it.UpdatedOn = updatedOn.Format("2006-01-02")
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name=$1, category=$2, description=$3, condition=$4, campus=$5, tag_id=$6, status=$7, updated_on=NOW() WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query, it.Name, it.Category, it.Description, it.Condition, it.Campus, it.TagID, it.Status, it.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *itemRepository) SetStatus(ctx context.Context, id int32, status domain.ItemStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET status=$1, updated_on=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *itemRepository) List(ctx context.Context, campus, category, status string, page, pageSize int32) ([]domain.Item, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`

	args := []interface{}{}
	argIdx := 1
	if campus != "" {
		query += fmt.Sprintf(" AND campus = $%d", argIdx)
		args = append(args, campus)
		argIdx++
	}
	if category != "" {
		query += fmt.Sprintf(" AND category = $%d", argIdx)
		args = append(args, category)
		argIdx++
	}
	if status != "" {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, status)
		argIdx++
	}

	var count int32
	countQuery := "SELECT count(*) FROM (" + query + ") as sub"
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, err
	}

	query += fmt.Sprintf(" ORDER BY name LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		var createdOn, updatedOn time.Time
		if err := rows.Scan(&it.ID, &it.Name, &it.Category, &it.Description, &it.Condition, &it.Campus, &it.TagID, &it.Status, &createdOn, &updatedOn); err != nil {
			return nil, 0, err
		}
		it.CreatedOn = createdOn.Format("2006-01-02")
		it.UpdatedOn = updatedOn.Format("2006-01-02")
		items = append(items, it)
	}
	return items, count, rows.Err()
}
