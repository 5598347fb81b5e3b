package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// IdentityRepository is the single uniqueness check consulted by both
// registration paths. Email and phone must be unique across the union of
// users and workshops; license numbers live on workshops only.
type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) EmailTaken(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("LOWER(email) = ?", email).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	if cnt > 0 {
		return true, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&workshopModel{}).
		Where("LOWER(email) = ?", email).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *IdentityRepository) PhoneTaken(ctx context.Context, phone string) (bool, error) {
	phone = strings.TrimSpace(phone)

	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("phone = ?", phone).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	if cnt > 0 {
		return true, nil
	}

	if err := r.db.WithContext(ctx).
		Model(&workshopModel{}).
		Where("phone = ?", phone).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *IdentityRepository) LicenseTaken(ctx context.Context, license string) (bool, error) {
	var cnt int64
	if err := r.db.WithContext(ctx).
		Model(&workshopModel{}).
		Where("license_number = ?", strings.TrimSpace(license)).
		Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}
