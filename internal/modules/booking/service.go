package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"motorhub/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	bookings  BookingRepository
	users     UserGate
	workshops WorkshopGate

	// strictTransitions: adjacency-checked transitions when true,
	// membership-only when false.
	strictTransitions bool
}

func NewService(bookings BookingRepository, users UserGate, workshops WorkshopGate, strictTransitions bool) *Service {
	return &Service{
		bookings:          bookings,
		users:             users,
		workshops:         workshops,
		strictTransitions: strictTransitions,
	}
}

const bookingDateLayout = "2006-01-02"

// Create validates the request, rejects double bookings for the same
// (owner, workshop, day, slot), snapshots the parties' display fields and
// persists the booking in status pending.
func (s *Service) Create(ctx context.Context, ownerID, workshopID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if !domain.IsValidTimeSlot(req.TimeSlot) {
		return nil, ErrValidation
	}
	if len(req.Services) == 0 {
		return nil, ErrValidation
	}
	if req.PickupRequired && strings.TrimSpace(req.PickupAddress) == "" {
		return nil, ErrValidation
	}

	bookingDate, err := time.Parse(bookingDateLayout, req.BookingDate)
	if err != nil {
		return nil, ErrValidation
	}

	owner, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	workshop, err := s.workshops.GetByID(ctx, workshopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkshopNotFound
		}
		return nil, err
	}

	// Day-bucket comparison: any stored time inside the requested calendar
	// day counts, not just an exact timestamp match.
	dayStart := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	taken, err := s.bookings.HasConflicting(ctx, ownerID, workshopID, dayStart, dayEnd, req.TimeSlot)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSlotTaken
	}

	pickupAddress := ""
	if req.PickupRequired {
		pickupAddress = strings.TrimSpace(req.PickupAddress)
	}

	b := &domain.Booking{
		BookingID:       uuid.NewString(),
		OwnerID:         owner.ID,
		WorkshopID:      workshop.ID,
		OwnerName:       owner.Name,
		OwnerEmail:      owner.Email,
		OwnerPhone:      owner.Phone,
		OwnerImage:      owner.ImagePath,
		WorkshopName:    workshop.Name,
		WorkshopAddress: workshop.Address,
		WorkshopImage:   workshop.ImagePath,
		VehicleType:     req.VehicleType,
		VehicleNumber:   req.VehicleNumber,
		Services:        req.Services,
		Description:     req.Description,
		BookingDate:     dayStart,
		TimeSlot:        req.TimeSlot,
		PickupRequired:  req.PickupRequired,
		PickupAddress:   pickupAddress,
		Status:          domain.BookingPending,
		IsCancelled:     false,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		// Two requests can pass the pre-check concurrently; the composite
		// unique index decides the loser.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	return b, nil
}

// UpdateStatus moves a booking to the target status, keeping isCancelled in
// lock-step (true iff the target is cancelled).
func (s *Service) UpdateStatus(ctx context.Context, bookingID, target string) (*domain.Booking, error) {
	status, ok := domain.ParseBookingStatus(target)
	if !ok {
		return nil, ErrInvalidStatus
	}

	b, err := s.bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if s.strictTransitions && !domain.CanTransition(b.Status, status) {
		return nil, ErrIllegalTransition
	}

	isCancelled := status == domain.BookingCancelled
	if err := s.bookings.UpdateStatus(ctx, bookingID, status, isCancelled); err != nil {
		return nil, err
	}

	b.Status = status
	b.IsCancelled = isCancelled
	return b, nil
}

// Delete hard-deletes by public id. Any caller holding the id may delete;
// there is no ownership check on this path.
func (s *Service) Delete(ctx context.Context, bookingID string) error {
	affected, err := s.bookings.Delete(ctx, bookingID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func (s *Service) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	b, err := s.bookings.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	return s.bookings.GetByOwner(ctx, ownerID)
}

func (s *Service) GetByWorkshop(ctx context.Context, workshopID int64) ([]domain.Booking, error) {
	return s.bookings.GetByWorkshop(ctx, workshopID)
}
