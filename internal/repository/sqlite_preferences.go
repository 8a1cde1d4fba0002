package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/cadence/internal/domain"
)

// SQLitePreferenceRepo implements PreferenceRepo using a SQLite database.
// Preferences are a singleton row plus a budgets table; a missing row
// yields default preferences rather than an error.
type SQLitePreferenceRepo struct {
	db *sql.DB
}

// NewSQLitePreferenceRepo creates a new SQLitePreferenceRepo.
func NewSQLitePreferenceRepo(db *sql.DB) *SQLitePreferenceRepo {
	return &SQLitePreferenceRepo{db: db}
}

func (r *SQLitePreferenceRepo) Get(ctx context.Context) (*domain.AttentionPreferences, error) {
	prefs := &domain.AttentionPreferences{
		Role:    domain.RoleMaker,
		Budgets: make(map[domain.AttentionCategory]int),
	}

	var role, peakStart, peakEnd string
	var switchLimit sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT role, peak_start, peak_end, switch_limit FROM preferences WHERE id = 1`,
	).Scan(&role, &peakStart, &peakEnd, &switchLimit)
	switch {
	case err == sql.ErrNoRows:
		// Never configured: defaults.
	case err != nil:
		return nil, fmt.Errorf("loading preferences: %w", err)
	default:
		prefs.Role = domain.RoleMode(role)
		prefs.PeakStart = peakStart
		prefs.PeakEnd = peakEnd
		if switchLimit.Valid {
			limit := int(switchLimit.Int64)
			prefs.SwitchLimit = &limit
		}
	}

	rows, err := r.db.QueryContext(ctx, `SELECT category, limit_min FROM attention_budgets`)
	if err != nil {
		return nil, fmt.Errorf("loading attention budgets: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var category string
		var limit int
		if err := rows.Scan(&category, &limit); err != nil {
			return nil, fmt.Errorf("scanning attention budget: %w", err)
		}
		prefs.Budgets[domain.AttentionCategory(category)] = limit
	}
	return prefs, rows.Err()
}

func (r *SQLitePreferenceRepo) Save(ctx context.Context, prefs *domain.AttentionPreferences) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting preferences transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT OR REPLACE INTO preferences (id, role, peak_start, peak_end, switch_limit)
		VALUES (1, ?, ?, ?, ?)`,
		string(prefs.Role),
		prefs.PeakStart,
		prefs.PeakEnd,
		nullableIntToValue(prefs.SwitchLimit),
	)
	if err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM attention_budgets`); err != nil {
		return fmt.Errorf("clearing attention budgets: %w", err)
	}
	for _, cat := range domain.Categories() {
		limit, ok := prefs.Budgets[cat]
		if !ok {
			continue
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO attention_budgets (category, limit_min) VALUES (?, ?)`,
			string(cat), limit,
		)
		if err != nil {
			return fmt.Errorf("saving budget for %s: %w", cat, err)
		}
	}

	return tx.Commit()
}
