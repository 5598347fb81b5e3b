package booking

import (
	"context"
	"time"

	"motorhub/internal/domain"
)

// BookingRepository defines the storage operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error)
	HasConflicting(ctx context.Context, ownerID, workshopID int64, dayStart, dayEnd time.Time, slot string) (bool, error)
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, isCancelled bool) error
	Delete(ctx context.Context, bookingID string) (int64, error)
	GetByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error)
	GetByWorkshop(ctx context.Context, workshopID int64) ([]domain.Booking, error)
}

type UserGate interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type WorkshopGate interface {
	GetByID(ctx context.Context, id int64) (*domain.Workshop, error)
}
