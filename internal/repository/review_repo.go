package repository

import (
	"context"
	"time"

	"motorhub/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ReviewID   string    `gorm:"column:review_id;uniqueIndex"`
	OwnerID    int64     `gorm:"column:owner_id;uniqueIndex:idx_one_review_per_pair,priority:1"`
	WorkshopID int64     `gorm:"column:workshop_id;uniqueIndex:idx_one_review_per_pair,priority:2"`
	Rating     int       `gorm:"column:rating"`
	Comment    *string   `gorm:"column:comment"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	return &domain.Review{
		ID:         m.ID,
		ReviewID:   m.ReviewID,
		OwnerID:    m.OwnerID,
		WorkshopID: m.WorkshopID,
		Rating:     m.Rating,
		Comment:    comment,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func toReviewModel(r *domain.Review) reviewModel {
	var comment *string
	if r.Comment != "" {
		v := r.Comment
		comment = &v
	}

	return reviewModel{
		ID:         r.ID,
		ReviewID:   r.ReviewID,
		OwnerID:    r.OwnerID,
		WorkshopID: r.WorkshopID,
		Rating:     r.Rating,
		Comment:    comment,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByOwnerAndWorkshop(ctx context.Context, ownerID, workshopID int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).
		Where("owner_id = ? AND workshop_id = ?", ownerID, workshopID).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) Update(ctx context.Context, rv *domain.Review) error {
	m := toReviewModel(rv)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rv = *toDomainReview(m)
	return nil
}

func (r *ReviewRepository) GetByWorkshop(ctx context.Context, workshopID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}

// AverageForWorkshop computes the aggregate on read, so an upsert that
// replaces a prior rating is reflected without any running counter.
func (r *ReviewRepository) AverageForWorkshop(ctx context.Context, workshopID int64) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	tx := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS count").
		Where("workshop_id = ?", workshopID).
		Scan(&result)
	if tx.Error != nil {
		return 0, 0, tx.Error
	}
	return result.Avg, result.Count, nil
}
