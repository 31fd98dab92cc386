package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db *sql.DB
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db *sql.DB) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

func (r *SQLiteActivityRepo) Create(ctx context.Context, a *domain.Activity) error {
	query := `INSERT INTO activities (id, name, weekly_minutes, category, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		a.WeeklyMinutes,
		a.Category,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting activity: %w", err)
	}
	return nil
}

func (r *SQLiteActivityRepo) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	query := `SELECT id, name, weekly_minutes, category, created_at, updated_at
		FROM activities WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanActivity(row.Scan)
}

func (r *SQLiteActivityRepo) List(ctx context.Context) ([]*domain.Activity, error) {
	query := `SELECT id, name, weekly_minutes, category, created_at, updated_at
		FROM activities ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var activities []*domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows.Scan)
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return activities, nil
}

func (r *SQLiteActivityRepo) Update(ctx context.Context, a *domain.Activity) error {
	query := `UPDATE activities SET name = ?, weekly_minutes = ?, category = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		a.WeeklyMinutes,
		a.Category,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

func (r *SQLiteActivityRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM activities WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting activity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return domain.ErrActivityNotFound
	}
	return nil
}

// scanActivity scans one activity row through the given scan function,
// shared by QueryRow and Rows paths.
func scanActivity(scan func(dest ...any) error) (*domain.Activity, error) {
	var a domain.Activity
	var createdAtStr, updatedAtStr string

	err := scan(&a.ID, &a.Name, &a.WeeklyMinutes, &a.Category, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrActivityNotFound
		}
		return nil, fmt.Errorf("scanning activity: %w", err)
	}

	var parseErr error
	a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	a.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return &a, nil
}
