package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/frontier/backend/internal/model"
)

type mockStatusCheckRepository struct {
	saveFunc func(ctx context.Context, check *model.StatusCheck) error
	listFunc func(ctx context.Context, limit int) ([]*model.StatusCheck, error)
}

func (m *mockStatusCheckRepository) Save(ctx context.Context, check *model.StatusCheck) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, check)
	}
	return nil
}

func (m *mockStatusCheckRepository) List(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit)
	}
	return nil, nil
}

func TestStatusCheckService_Create(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	var saved *model.StatusCheck
	svc := &statusCheckService{
		repo: &mockStatusCheckRepository{
			saveFunc: func(ctx context.Context, check *model.StatusCheck) error {
				saved = check
				return nil
			},
		},
		now:   func() time.Time { return now },
		newID: func() string { return "fixed-id" },
	}

	got, err := svc.Create(context.Background(), model.StatusCheckCreate{ClientName: strPtr("monitor")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != got {
		t.Error("expected the saved check to be returned")
	}
	if got.ID != "fixed-id" || got.ClientName != "monitor" || !got.Timestamp.Equal(now) {
		t.Errorf("unexpected check: %+v", got)
	}
}

func TestStatusCheckService_Create_RepoError(t *testing.T) {
	repoErr := errors.New("db down")
	svc := NewStatusCheckService(&mockStatusCheckRepository{
		saveFunc: func(ctx context.Context, check *model.StatusCheck) error {
			return repoErr
		},
	})

	if _, err := svc.Create(context.Background(), model.StatusCheckCreate{ClientName: strPtr("monitor")}); !errors.Is(err, repoErr) {
		t.Errorf("expected repo error, got %v", err)
	}
}

func TestStatusCheckService_List_Caps(t *testing.T) {
	var gotLimit int
	svc := NewStatusCheckService(&mockStatusCheckRepository{
		listFunc: func(ctx context.Context, limit int) ([]*model.StatusCheck, error) {
			gotLimit = limit
			return []*model.StatusCheck{{ID: "a"}}, nil
		},
	})

	got, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotLimit != 1000 {
		t.Errorf("expected limit=1000, got %d", gotLimit)
	}
	if len(got) != 1 {
		t.Errorf("expected 1 check, got %d", len(got))
	}
}
