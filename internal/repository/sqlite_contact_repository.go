package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/frontier/backend/internal/model"
	"github.com/jmoiron/sqlx"
)

// sqliteContactRow mirrors contact_messages in SQLite, where timestamps are
// stored as Unix milliseconds so ordering and range filters compare integers.
type sqliteContactRow struct {
	ID        string        `db:"id"`
	Name      string        `db:"name"`
	Email     string        `db:"email"`
	Message   string        `db:"message"`
	Status    string        `db:"status"`
	CreatedAt int64         `db:"created_at"`
	UpdatedAt sql.NullInt64 `db:"updated_at"`
}

func (row sqliteContactRow) toModel() *model.ContactMessage {
	m := &model.ContactMessage{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Message:   row.Message,
		Status:    row.Status,
		Timestamp: time.UnixMilli(row.CreatedAt).UTC(),
	}
	if row.UpdatedAt.Valid {
		t := time.UnixMilli(row.UpdatedAt.Int64).UTC()
		m.UpdatedAt = &t
	}
	return m
}

// SqliteContactRepository is the SQLite implementation of ContactRepository.
type SqliteContactRepository struct {
	db *sqlx.DB
}

// NewSqliteContactRepository creates a SqliteContactRepository.
func NewSqliteContactRepository(db *sqlx.DB) *SqliteContactRepository {
	return &SqliteContactRepository{db: db}
}

var _ ContactRepository = (*SqliteContactRepository)(nil)

func (r *SqliteContactRepository) Save(ctx context.Context, msg *model.ContactMessage) error {
	row := sqliteContactRow{
		ID:        msg.ID,
		Name:      msg.Name,
		Email:     msg.Email,
		Message:   msg.Message,
		Status:    msg.Status,
		CreatedAt: msg.Timestamp.UnixMilli(),
	}
	res, err := r.db.NamedExecContext(ctx,
		`INSERT INTO contact_messages (id, name, email, message, status, created_at)
		 VALUES (:id, :name, :email, :message, :status, :created_at)`, row)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotSaved
	}
	return nil
}

func (r *SqliteContactRepository) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	var rows []sqliteContactRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT id, name, email, message, status, created_at, updated_at
		 FROM contact_messages
		 ORDER BY created_at DESC
		 LIMIT ?`, opts.Limit)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}

	messages := make([]*model.ContactMessage, 0, len(rows))
	for _, row := range rows {
		messages = append(messages, row.toModel())
	}
	return messages, nil
}

func (r *SqliteContactRepository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE contact_messages SET status = ?, updated_at = ? WHERE id = ?`,
		status, updatedAt.UnixMilli(), id)
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update contact status: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *SqliteContactRepository) Count(ctx context.Context, filter model.ContactCountFilter) (int64, error) {
	var conditions []string
	var args []any

	if filter.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, filter.Status)
	}
	if !filter.Since.IsZero() {
		conditions = append(conditions, "created_at >= ?")
		args = append(args, filter.Since.UnixMilli())
	}

	query := `SELECT COUNT(*) FROM contact_messages`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	var n int64
	if err := r.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return n, nil
}
