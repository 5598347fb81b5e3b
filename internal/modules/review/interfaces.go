package review

import (
	"context"

	"motorhub/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, rv *domain.Review) error
	GetByOwnerAndWorkshop(ctx context.Context, ownerID, workshopID int64) (*domain.Review, error)
	Update(ctx context.Context, rv *domain.Review) error
	GetByWorkshop(ctx context.Context, workshopID int64, limit, offset int) ([]domain.Review, error)
	AverageForWorkshop(ctx context.Context, workshopID int64) (float64, int64, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type WorkshopGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Workshop, error)
}
