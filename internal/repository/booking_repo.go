package repository

import (
	"context"
	"encoding/json"
	"time"

	"motorhub/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64  `gorm:"column:id;primaryKey"`
	BookingID string `gorm:"column:booking_id;uniqueIndex"`

	OwnerID    int64 `gorm:"column:owner_id;index;uniqueIndex:idx_no_double_booking,priority:1"`
	WorkshopID int64 `gorm:"column:workshop_id;index;uniqueIndex:idx_no_double_booking,priority:2"`

	OwnerName       string  `gorm:"column:owner_name"`
	OwnerEmail      string  `gorm:"column:owner_email"`
	OwnerPhone      *string `gorm:"column:owner_phone"`
	OwnerImage      *string `gorm:"column:owner_image"`
	WorkshopName    string  `gorm:"column:workshop_name"`
	WorkshopAddress string  `gorm:"column:workshop_address"`
	WorkshopImage   *string `gorm:"column:workshop_image"`

	VehicleType   string  `gorm:"column:vehicle_type"`
	VehicleNumber string  `gorm:"column:vehicle_number"`
	Services      string  `gorm:"column:services;type:text"`
	Description   *string `gorm:"column:description"`

	BookingDate time.Time `gorm:"column:booking_date"`
	// BookingDay is the calendar-day bucket of BookingDate, set at creation.
	// It backs idx_no_double_booking so two racing requests for the same
	// owner/workshop/day/slot cannot both insert.
	BookingDay string `gorm:"column:booking_day;uniqueIndex:idx_no_double_booking,priority:3"`
	TimeSlot   string `gorm:"column:time_slot;uniqueIndex:idx_no_double_booking,priority:4"`

	PickupRequired bool    `gorm:"column:pickup_required"`
	PickupAddress  *string `gorm:"column:pickup_address"`

	Status      string `gorm:"column:status"`
	IsCancelled bool   `gorm:"column:is_cancelled"`

	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

const bookingDayLayout = "2006-01-02"

func toDomainBooking(m bookingModel) *domain.Booking {
	var ownerPhone, ownerImage, workshopImage, description, pickupAddress string
	if m.OwnerPhone != nil {
		ownerPhone = *m.OwnerPhone
	}
	if m.OwnerImage != nil {
		ownerImage = *m.OwnerImage
	}
	if m.WorkshopImage != nil {
		workshopImage = *m.WorkshopImage
	}
	if m.Description != nil {
		description = *m.Description
	}
	if m.PickupAddress != nil {
		pickupAddress = *m.PickupAddress
	}

	var services []string
	if m.Services != "" {
		_ = json.Unmarshal([]byte(m.Services), &services)
	}

	return &domain.Booking{
		ID:              m.ID,
		BookingID:       m.BookingID,
		OwnerID:         m.OwnerID,
		WorkshopID:      m.WorkshopID,
		OwnerName:       m.OwnerName,
		OwnerEmail:      m.OwnerEmail,
		OwnerPhone:      ownerPhone,
		OwnerImage:      ownerImage,
		WorkshopName:    m.WorkshopName,
		WorkshopAddress: m.WorkshopAddress,
		WorkshopImage:   workshopImage,
		VehicleType:     m.VehicleType,
		VehicleNumber:   m.VehicleNumber,
		Services:        services,
		Description:     description,
		BookingDate:     m.BookingDate,
		TimeSlot:        m.TimeSlot,
		PickupRequired:  m.PickupRequired,
		PickupAddress:   pickupAddress,
		Status:          domain.BookingStatus(m.Status),
		IsCancelled:     m.IsCancelled,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	nullable := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}

	services, _ := json.Marshal(b.Services)

	return bookingModel{
		ID:              b.ID,
		BookingID:       b.BookingID,
		OwnerID:         b.OwnerID,
		WorkshopID:      b.WorkshopID,
		OwnerName:       b.OwnerName,
		OwnerEmail:      b.OwnerEmail,
		OwnerPhone:      nullable(b.OwnerPhone),
		OwnerImage:      nullable(b.OwnerImage),
		WorkshopName:    b.WorkshopName,
		WorkshopAddress: b.WorkshopAddress,
		WorkshopImage:   nullable(b.WorkshopImage),
		VehicleType:     b.VehicleType,
		VehicleNumber:   b.VehicleNumber,
		Services:        string(services),
		Description:     nullable(b.Description),
		BookingDate:     b.BookingDate,
		BookingDay:      b.BookingDate.Format(bookingDayLayout),
		TimeSlot:        b.TimeSlot,
		PickupRequired:  b.PickupRequired,
		PickupAddress:   nullable(b.PickupAddress),
		Status:          string(b.Status),
		IsCancelled:     b.IsCancelled,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByBookingID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// HasConflicting reports whether a booking for the same owner, workshop and
// slot already exists with a booking date inside the given day window. The
// comparison is the day-bucket one, not timestamp equality.
func (r *BookingRepository) HasConflicting(ctx context.Context, ownerID, workshopID int64, dayStart, dayEnd time.Time, slot string) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("owner_id = ? AND workshop_id = ? AND time_slot = ?", ownerID, workshopID, slot).
		Where("booking_date BETWEEN ? AND ?", dayStart, dayEnd).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus, isCancelled bool) error {
	return r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booking_id = ?", bookingID).
		Updates(map[string]any{
			"status":       string(status),
			"is_cancelled": isCancelled,
		}).Error
}

func (r *BookingRepository) Delete(ctx context.Context, bookingID string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).Delete(&bookingModel{})
	return tx.RowsAffected, tx.Error
}

func (r *BookingRepository) GetByOwner(ctx context.Context, ownerID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("booking_date DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) GetByWorkshop(ctx context.Context, workshopID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("booking_date DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}
