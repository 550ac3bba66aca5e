package service

import (
	"context"
	"fmt"
	"time"

	"github.com/frontier/backend/internal/model"
	"github.com/frontier/backend/internal/repository"
)

// AnalyticsService computes message counts. Nothing is cached; every call
// queries the store.
type AnalyticsService interface {
	Summary(ctx context.Context) (*model.Analytics, error)
}

type analyticsService struct {
	repo repository.ContactRepository
	now  func() time.Time
}

// NewAnalyticsService creates an AnalyticsService.
func NewAnalyticsService(repo repository.ContactRepository) AnalyticsService {
	return &analyticsService{repo: repo, now: utcNow}
}

func (s *analyticsService) Summary(ctx context.Context) (*model.Analytics, error) {
	now := s.now()

	total, err := s.repo.Count(ctx, model.ContactCountFilter{})
	if err != nil {
		return nil, fmt.Errorf("total messages: %w", err)
	}
	unread, err := s.repo.Count(ctx, model.ContactCountFilter{Status: model.StatusNew})
	if err != nil {
		return nil, fmt.Errorf("new messages: %w", err)
	}
	recent, err := s.repo.Count(ctx, model.ContactCountFilter{Since: now.Add(-model.RecentWindow)})
	if err != nil {
		return nil, fmt.Errorf("recent messages: %w", err)
	}

	return &model.Analytics{
		TotalMessages:  total,
		NewMessages:    unread,
		RecentMessages: recent,
		Timestamp:      now,
	}, nil
}
