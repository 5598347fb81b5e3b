package repository

import "gorm.io/gorm"

// AutoMigrate creates the schema, including idx_no_double_booking and
// idx_one_review_per_pair which close the read-then-write races at the
// storage layer.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&workshopModel{},
		&bookingModel{},
		&reviewModel{},
	)
}
