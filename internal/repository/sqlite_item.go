package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/cadence/internal/domain"
)

// itemColumns is the canonical SELECT column list for scheduled_items.
const itemColumns = `id, title, start_time, duration_min, category, status, created_at, updated_at`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db *sql.DB
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo.
func NewSQLiteItemRepo(db *sql.DB) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: db}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, item *domain.ScheduledItem) error {
	query := `INSERT INTO scheduled_items (id, title, start_time, duration_min, category, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Title,
		item.StartTime.UTC().Format(time.RFC3339),
		item.DurationMin,
		string(item.Category),
		string(item.Status),
		item.CreatedAt.UTC().Format(time.RFC3339),
		item.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting scheduled item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (*domain.ScheduledItem, error) {
	query := `SELECT ` + itemColumns + ` FROM scheduled_items WHERE id = ?`
	item, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("scheduled item %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading scheduled item: %w", err)
	}
	return item, nil
}

func (r *SQLiteItemRepo) ListByDay(ctx context.Context, day time.Time) ([]*domain.ScheduledItem, error) {
	from, to := dayBounds(day)
	query := `SELECT ` + itemColumns + ` FROM scheduled_items
		WHERE start_time >= ? AND start_time < ?
		ORDER BY start_time, id`
	rows, err := r.db.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("listing scheduled items: %w", err)
	}
	defer rows.Close()

	var items []*domain.ScheduledItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning scheduled item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *SQLiteItemRepo) Update(ctx context.Context, item *domain.ScheduledItem) error {
	query := `UPDATE scheduled_items
		SET title = ?, start_time = ?, duration_min = ?, category = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.StartTime.UTC().Format(time.RFC3339),
		item.DurationMin,
		string(item.Category),
		string(item.Status),
		nowUTC(),
		item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating scheduled item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("scheduled item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scheduled_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting scheduled item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("scheduled item %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*domain.ScheduledItem, error) {
	var item domain.ScheduledItem
	var start, category, status, created, updated string
	if err := row.Scan(&item.ID, &item.Title, &start, &item.DurationMin, &category, &status, &created, &updated); err != nil {
		return nil, err
	}

	var err error
	if item.StartTime, err = time.Parse(time.RFC3339, start); err != nil {
		return nil, fmt.Errorf("parsing start_time: %w", err)
	}
	if item.CreatedAt, err = time.Parse(time.RFC3339, created); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if item.UpdatedAt, err = time.Parse(time.RFC3339, updated); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	item.Category = domain.AttentionCategory(category)
	item.Status = domain.ItemStatus(status)
	return &item, nil
}
