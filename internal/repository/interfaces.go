package repository

import (
	"context"

	"github.com/alexanderramin/semainier/internal/domain"
)

type ActivityRepo interface {
	Create(ctx context.Context, a *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	List(ctx context.Context) ([]*domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) error
	Delete(ctx context.Context, id string) error
}
