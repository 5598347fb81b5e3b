package admin

import (
	"context"

	"motorhub/internal/domain"
)

type UserAccounts interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
}

type WorkshopAccounts interface {
	GetByID(ctx context.Context, id int64) (*domain.Workshop, error)
	Update(ctx context.Context, w *domain.Workshop) error
	FindPendingPaginated(ctx context.Context, offset, limit int) ([]domain.Workshop, int64, error)
}

type StatsSource interface {
	CountOwners(ctx context.Context) (int64, error)
	CountVerifiedWorkshops(ctx context.Context) (int64, error)
	CountPendingWorkshops(ctx context.Context) (int64, error)
	CountBookings(ctx context.Context) (int64, error)
	CountBookingsOnDay(ctx context.Context, day string) (int64, error)
}
