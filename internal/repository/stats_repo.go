package repository

import (
	"context"

	"motorhub/internal/domain"

	"gorm.io/gorm"
)

// StatsRepository serves the admin dashboard counters with direct aggregate
// queries over the other repositories' tables.
type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) CountOwners(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("role = ?", string(domain.RoleVehicleOwner)).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountVerifiedWorkshops(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&workshopModel{}).
		Where("account_verified = ?", true).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountPendingWorkshops(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&workshopModel{}).
		Where("account_verified = ?", false).
		Count(&n).Error
	return n, err
}

func (r *StatsRepository) CountBookings(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&n).Error
	return n, err
}

// CountBookingsOnDay matches the day-bucket column, so "today" means the
// service date, not the creation timestamp.
func (r *StatsRepository) CountBookingsOnDay(ctx context.Context, day string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booking_day = ?", day).
		Count(&n).Error
	return n, err
}
