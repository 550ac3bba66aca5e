package service

import (
	"context"

	"github.com/frontier/backend/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit stores a new contact message. The id, timestamp and status are
	// assigned here, never taken from the client.
	Submit(ctx context.Context, in model.ContactMessageCreate) (*model.ContactMessage, error)

	// List returns the newest messages first. A non-positive limit falls back
	// to model.DefaultContactListLimit.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error)

	// UpdateStatus changes the status of a message. It returns
	// repository.ErrNotFound when the id is unknown.
	UpdateStatus(ctx context.Context, id, status string) error
}
