package service

import (
	"context"
	"time"

	"github.com/alexanderramin/semainier/internal/domain"
	"github.com/alexanderramin/semainier/internal/repository"
	"github.com/google/uuid"
)

type activityService struct {
	activities repository.ActivityRepo
}

func NewActivityService(activities repository.ActivityRepo) ActivityService {
	return &activityService{activities: activities}
}

func (s *activityService) Create(ctx context.Context, a *domain.Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.activities.Create(ctx, a)
}

func (s *activityService) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	return s.activities.GetByID(ctx, id)
}

func (s *activityService) List(ctx context.Context) ([]*domain.Activity, error) {
	return s.activities.List(ctx)
}

func (s *activityService) Update(ctx context.Context, a *domain.Activity) error {
	if err := a.Validate(); err != nil {
		return err
	}
	a.UpdatedAt = time.Now().UTC()
	return s.activities.Update(ctx, a)
}

func (s *activityService) Delete(ctx context.Context, id string) error {
	return s.activities.Delete(ctx, id)
}
