package service

import (
	"context"
	"time"

	"github.com/frontier/backend/internal/model"
	"github.com/frontier/backend/internal/repository"
	"github.com/google/uuid"
)

// StatusCheckService backs the legacy /status endpoints.
type StatusCheckService interface {
	Create(ctx context.Context, in model.StatusCheckCreate) (*model.StatusCheck, error)
	List(ctx context.Context) ([]*model.StatusCheck, error)
}

type statusCheckService struct {
	repo  repository.StatusCheckRepository
	now   func() time.Time
	newID func() string
}

// NewStatusCheckService creates a StatusCheckService.
func NewStatusCheckService(repo repository.StatusCheckRepository) StatusCheckService {
	return &statusCheckService{repo: repo, now: utcNow, newID: uuid.NewString}
}

func (s *statusCheckService) Create(ctx context.Context, in model.StatusCheckCreate) (*model.StatusCheck, error) {
	check := &model.StatusCheck{
		ID:         s.newID(),
		ClientName: model.StringValue(in.ClientName),
		Timestamp:  s.now(),
	}
	if err := s.repo.Save(ctx, check); err != nil {
		return nil, err
	}
	return check, nil
}

func (s *statusCheckService) List(ctx context.Context) ([]*model.StatusCheck, error) {
	return s.repo.List(ctx, model.MaxStatusChecks)
}
