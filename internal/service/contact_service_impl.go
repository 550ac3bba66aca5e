package service

import (
	"context"
	"time"

	"github.com/frontier/backend/internal/model"
	"github.com/frontier/backend/internal/repository"
	"github.com/google/uuid"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo  repository.ContactRepository
	now   func() time.Time
	newID func() string
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo, now: utcNow, newID: uuid.NewString}
}

// Submit builds a ContactMessage with a fresh UUID, the current time and
// status "new", then persists it.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactMessageCreate) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:        s.newID(),
		Name:      model.StringValue(in.Name),
		Email:     model.StringValue(in.Email),
		Message:   model.StringValue(in.Message),
		Timestamp: s.now(),
		Status:    model.StatusNew,
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactMessage, error) {
	if opts.Limit <= 0 {
		opts.Limit = model.DefaultContactListLimit
	}
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	return s.repo.UpdateStatus(ctx, id, status, s.now())
}

// utcNow returns the current UTC time at millisecond precision, the
// resolution both stores keep.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
