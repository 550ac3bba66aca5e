package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/frontier/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_messages row. The id and timestamp are assigned
// by the caller, not by the database.
func (r *PgContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO contact_messages (id, name, email, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		msg.ID, msg.Name, msg.Email, msg.Message, msg.Status, msg.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotSaved
	}
	return nil
}

// List returns the newest contact messages first, at most opts.Limit of them.
func (r *PgContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, message, status, created_at, updated_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT $1`,
		opts.Limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*model.ContactMessage
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return messages, nil
}

func scanContactMessage(row pgx.Row) (*model.ContactMessage, error) {
	var m model.ContactMessage
	if err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Status, &m.Timestamp, &m.UpdatedAt); err != nil {
		return nil, fmt.Errorf("scan contact message: %w", err)
	}
	m.Timestamp = m.Timestamp.UTC()
	if m.UpdatedAt != nil {
		t := m.UpdatedAt.UTC()
		m.UpdatedAt = &t
	}
	return &m, nil
}

// UpdateStatus sets status and updated_at. A missing id yields ErrNotFound.
func (r *PgContactRepository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE contact_messages SET status = $1, updated_at = $2 WHERE id = $3`,
		status, updatedAt, id,
	)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of messages matching filter.
func (r *PgContactRepository) Count(ctx context.Context, filter model.ContactCountFilter) (int64, error) {
	var conditions []string
	var args []any

	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, "status = $"+strconv.Itoa(len(args)))
	}
	if !filter.Since.IsZero() {
		args = append(args, filter.Since)
		conditions = append(conditions, "created_at >= $"+strconv.Itoa(len(args)))
	}

	query := `SELECT COUNT(*) FROM contact_messages`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var n int64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return n, nil
}
