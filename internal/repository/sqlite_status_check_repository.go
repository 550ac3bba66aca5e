package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/frontier/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

type sqliteStatusCheckRow struct {
	ID         string `db:"id"`
	ClientName string `db:"client_name"`
	CreatedAt  int64  `db:"created_at"`
}

type sqliteStatusCheckRepository struct {
	db *sqlx.DB
}

// NewSqliteStatusCheckRepository returns a SQLite-backed StatusCheckRepository.
func NewSqliteStatusCheckRepository(db *sqlx.DB) StatusCheckRepository {
	return &sqliteStatusCheckRepository{db: db}
}

func (r *sqliteStatusCheckRepository) Save(ctx context.Context, check *model.StatusCheck) error {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO status_checks (id, client_name, created_at) VALUES (?, ?, ?)`,
		check.ID, check.ClientName, check.Timestamp.UnixMilli())
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotSaved
	}
	return nil
}

func (r *sqliteStatusCheckRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	var rows []sqliteStatusCheckRow
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT id, client_name, created_at FROM status_checks LIMIT ?`, limit); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}

	checks := make([]*model.StatusCheck, 0, len(rows))
	for _, row := range rows {
		checks = append(checks, &model.StatusCheck{
			ID:         row.ID,
			ClientName: row.ClientName,
			Timestamp:  time.UnixMilli(row.CreatedAt).UTC(),
		})
	}
	return checks, nil
}
