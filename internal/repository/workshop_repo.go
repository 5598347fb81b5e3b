package repository

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"motorhub/internal/domain"

	"gorm.io/gorm"
)

type WorkshopRepository struct {
	db *gorm.DB
}

func NewWorkshopRepository(db *gorm.DB) *WorkshopRepository {
	return &WorkshopRepository{db: db}
}

type workshopModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Name            string    `gorm:"column:name"`
	Email           string    `gorm:"column:email;uniqueIndex"`
	Phone           string    `gorm:"column:phone;uniqueIndex"`
	Address         string    `gorm:"column:address"`
	Latitude        float64   `gorm:"column:latitude"`
	Longitude       float64   `gorm:"column:longitude"`
	LicenseNumber   string    `gorm:"column:license_number;uniqueIndex"`
	Services        string    `gorm:"column:services;type:text"`
	Password        string    `gorm:"column:password"`
	ImagePath       *string   `gorm:"column:image_path"`
	Description     *string   `gorm:"column:description"`
	WorkingHours    []byte    `gorm:"column:working_hours;type:json"`
	IsOpen          bool      `gorm:"column:is_open"`
	AccountVerified bool      `gorm:"column:account_verified"`
	IsActive        bool      `gorm:"column:is_active"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (workshopModel) TableName() string { return "workshops" }

func toDomainWorkshop(m workshopModel) *domain.Workshop {
	var image, description string
	if m.ImagePath != nil {
		image = *m.ImagePath
	}
	if m.Description != nil {
		description = *m.Description
	}

	var services []string
	if m.Services != "" {
		_ = json.Unmarshal([]byte(m.Services), &services)
	}

	return &domain.Workshop{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Address:         m.Address,
		Latitude:        m.Latitude,
		Longitude:       m.Longitude,
		LicenseNumber:   m.LicenseNumber,
		Services:        services,
		Password:        m.Password,
		ImagePath:       image,
		Description:     description,
		WorkingHours:    json.RawMessage(m.WorkingHours),
		IsOpen:          m.IsOpen,
		AccountVerified: m.AccountVerified,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toWorkshopModel(w *domain.Workshop) workshopModel {
	var image, description *string
	if w.ImagePath != "" {
		v := w.ImagePath
		image = &v
	}
	if w.Description != "" {
		v := w.Description
		description = &v
	}

	services, _ := json.Marshal(w.Services)

	return workshopModel{
		ID:              w.ID,
		Name:            w.Name,
		Email:           strings.TrimSpace(strings.ToLower(w.Email)),
		Phone:           w.Phone,
		Address:         w.Address,
		Latitude:        w.Latitude,
		Longitude:       w.Longitude,
		LicenseNumber:   w.LicenseNumber,
		Services:        string(services),
		Password:        w.Password,
		ImagePath:       image,
		Description:     description,
		WorkingHours:    []byte(w.WorkingHours),
		IsOpen:          w.IsOpen,
		AccountVerified: w.AccountVerified,
		IsActive:        w.IsActive,
		CreatedAt:       w.CreatedAt,
		UpdatedAt:       w.UpdatedAt,
	}
}

func (r *WorkshopRepository) Create(ctx context.Context, w *domain.Workshop) error {
	m := toWorkshopModel(w)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*w = *toDomainWorkshop(m)
	return nil
}

func (r *WorkshopRepository) GetByID(ctx context.Context, id int64) (*domain.Workshop, error) {
	var m workshopModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainWorkshop(m), nil
}

func (r *WorkshopRepository) GetByEmail(ctx context.Context, email string) (*domain.Workshop, error) {
	var m workshopModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainWorkshop(m), nil
}

func (r *WorkshopRepository) Update(ctx context.Context, w *domain.Workshop) error {
	m := toWorkshopModel(w)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*w = *toDomainWorkshop(m)
	return nil
}

// Delete removes the row entirely. Rejection of a pending registration is
// destructive, not a soft state.
func (r *WorkshopRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&workshopModel{}, id).Error
}

func (r *WorkshopRepository) FindPendingPaginated(ctx context.Context, offset, limit int) ([]domain.Workshop, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&workshopModel{}).
		Where("account_verified = ?", false).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []workshopModel
	if err := r.db.WithContext(ctx).
		Where("account_verified = ?", false).
		Order("created_at ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Workshop, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainWorkshop(m))
	}
	return out, total, nil
}

func (r *WorkshopRepository) ListVerified(ctx context.Context, offset, limit int) ([]domain.Workshop, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&workshopModel{}).
		Where("account_verified = ? AND is_active = ?", true, true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []workshopModel
	if err := r.db.WithContext(ctx).
		Where("account_verified = ? AND is_active = ?", true, true).
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]domain.Workshop, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainWorkshop(m))
	}
	return out, total, nil
}
