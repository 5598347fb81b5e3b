package domain

import "time"

// Review is keyed logically by (owner, workshop): at most one per pair,
// overwritten in place on resubmission.
type Review struct {
	ID         int64     `json:"-"`
	ReviewID   string    `json:"review_id"`
	OwnerID    int64     `json:"owner_id"`
	WorkshopID int64     `json:"workshop_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
