package admin

import (
	"context"
	"errors"
	"time"

	"motorhub/internal/domain"
	"motorhub/internal/pkg/logger"

	"gorm.io/gorm"
)

type Service struct {
	users     UserAccounts
	workshops WorkshopAccounts
	stats     StatsSource
}

func NewService(users UserAccounts, workshops WorkshopAccounts, stats StatsSource) *Service {
	return &Service{users: users, workshops: workshops, stats: stats}
}

// ToggleAccountActive flips the active flag on either account collection.
// Returns the resulting active state.
func (s *Service) ToggleAccountActive(ctx context.Context, accountID int64, accountType string) (bool, error) {
	switch accountType {
	case string(domain.RoleVehicleOwner):
		u, err := s.users.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrAccountNotFound
			}
			return false, err
		}
		u.IsActive = !u.IsActive
		if err := s.users.Update(ctx, u); err != nil {
			return false, err
		}
		logger.InfoLogger.Infof("owner account toggled: id=%d active=%v", u.ID, u.IsActive)
		return u.IsActive, nil

	case string(domain.RoleWorkshop):
		w, err := s.workshops.GetByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, ErrAccountNotFound
			}
			return false, err
		}
		w.IsActive = !w.IsActive
		if err := s.workshops.Update(ctx, w); err != nil {
			return false, err
		}
		logger.InfoLogger.Infof("workshop account toggled: id=%d active=%v", w.ID, w.IsActive)
		return w.IsActive, nil

	default:
		return false, ErrInvalidAccountType
	}
}

func (s *Service) GetPendingWorkshops(ctx context.Context, page, limit int) ([]domain.Workshop, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.workshops.FindPendingPaginated(ctx, (page-1)*limit, limit)
}

func (s *Service) GetStatistics(ctx context.Context) (*Statistics, error) {
	out := &Statistics{}
	var err error

	if out.VehicleOwners, err = s.stats.CountOwners(ctx); err != nil {
		return nil, err
	}
	if out.Workshops, err = s.stats.CountVerifiedWorkshops(ctx); err != nil {
		return nil, err
	}
	if out.PendingWorkshops, err = s.stats.CountPendingWorkshops(ctx); err != nil {
		return nil, err
	}
	if out.Bookings, err = s.stats.CountBookings(ctx); err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	if out.BookingsToday, err = s.stats.CountBookingsOnDay(ctx, today); err != nil {
		return nil, err
	}
	return out, nil
}
