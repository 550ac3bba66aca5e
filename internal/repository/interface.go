package repository

import (
	"context"
	"time"

	"github.com/frontier/backend/internal/model"
)

// DB reports whether the underlying store connection is alive.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Save(ctx context.Context, msg *model.ContactMessage) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)
	// UpdateStatus returns ErrNotFound when no message has the given id.
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error
	Count(ctx context.Context, filter model.ContactCountFilter) (int64, error)
}

// StatusCheckRepository handles persistence for legacy status checks.
type StatusCheckRepository interface {
	Save(ctx context.Context, check *model.StatusCheck) error
	List(ctx context.Context, limit int) ([]*model.StatusCheck, error)
}
