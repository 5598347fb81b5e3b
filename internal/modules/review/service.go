package review

import (
	"context"
	"errors"

	"motorhub/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reviews   ReviewRepository
	users     UserGate
	workshops WorkshopGate
}

func NewService(reviews ReviewRepository, users UserGate, workshops WorkshopGate) *Service {
	return &Service{reviews: reviews, users: users, workshops: workshops}
}

// Submit upserts the single review an owner holds for a workshop. The bool
// reports whether a new review was created (true) or an existing one was
// replaced (false).
func (s *Service) Submit(ctx context.Context, ownerID, workshopID int64, req SubmitReviewRequest) (*domain.Review, bool, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, false, ErrValidation
	}

	if _, err := s.users.GetByID(ctx, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrOwnerNotFound
		}
		return nil, false, err
	}
	if _, err := s.workshops.GetByID(ctx, workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrWorkshopNotFound
		}
		return nil, false, err
	}

	existing, err := s.reviews.GetByOwnerAndWorkshop(ctx, ownerID, workshopID)
	switch {
	case err == nil:
		existing.Rating = req.Rating
		existing.Comment = req.Comment
		if err := s.reviews.Update(ctx, existing); err != nil {
			return nil, false, err
		}
		return existing, false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to create
	default:
		return nil, false, err
	}

	rv := &domain.Review{
		ReviewID:   uuid.NewString(),
		OwnerID:    ownerID,
		WorkshopID: workshopID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		// A concurrent first review for the same pair lands on the unique
		// index; retry as an update.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			existing, gerr := s.reviews.GetByOwnerAndWorkshop(ctx, ownerID, workshopID)
			if gerr != nil {
				return nil, false, gerr
			}
			existing.Rating = req.Rating
			existing.Comment = req.Comment
			if uerr := s.reviews.Update(ctx, existing); uerr != nil {
				return nil, false, uerr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return rv, true, nil
}

func (s *Service) GetByWorkshop(ctx context.Context, workshopID int64, limit, offset int) ([]domain.Review, error) {
	if _, err := s.workshops.GetByID(ctx, workshopID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}
	return s.reviews.GetByWorkshop(ctx, workshopID, limit, offset)
}

type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

func (s *Service) RatingForWorkshop(ctx context.Context, workshopID int64) (*RatingSummary, error) {
	avg, count, err := s.reviews.AverageForWorkshop(ctx, workshopID)
	if err != nil {
		return nil, err
	}
	return &RatingSummary{Average: avg, Count: count}, nil
}
