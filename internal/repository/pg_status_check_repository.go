package repository

import (
	"context"
	"fmt"

	"github.com/frontier/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pgStatusCheckRepository struct {
	pool *pgxpool.Pool
}

// NewPgStatusCheckRepository returns a PostgreSQL-backed StatusCheckRepository.
func NewPgStatusCheckRepository(pool *pgxpool.Pool) StatusCheckRepository {
	return &pgStatusCheckRepository{pool: pool}
}

func (r *pgStatusCheckRepository) Save(ctx context.Context, check *model.StatusCheck) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO status_checks (id, client_name, created_at) VALUES ($1, $2, $3)`,
		check.ID, check.ClientName, check.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert status check: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotSaved
	}
	return nil
}

// List returns up to limit status checks in no particular order.
func (r *pgStatusCheckRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, client_name, created_at FROM status_checks LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	defer rows.Close()

	var checks []*model.StatusCheck
	for rows.Next() {
		c, err := scanStatusCheck(rows)
		if err != nil {
			return nil, err
		}
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list status checks: %w", err)
	}
	return checks, nil
}

func scanStatusCheck(row pgx.Row) (*model.StatusCheck, error) {
	var c model.StatusCheck
	if err := row.Scan(&c.ID, &c.ClientName, &c.Timestamp); err != nil {
		return nil, fmt.Errorf("scan status check: %w", err)
	}
	c.Timestamp = c.Timestamp.UTC()
	return &c, nil
}
