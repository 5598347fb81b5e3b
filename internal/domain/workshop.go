package domain

import (
	"encoding/json"
	"time"
)

// Workshop covers both lifecycle stages of the same record: a pending
// registration (AccountVerified=false, password still plaintext at rest) and
// a verified workshop (AccountVerified=true, password bcrypt-hashed). The
// promotion happens in place on admin acceptance; rejection deletes the row.
type Workshop struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	Phone         string   `json:"phone" validate:"required"`
	Address       string   `json:"address" validate:"required"`
	Latitude      float64  `json:"latitude"`
	Longitude     float64  `json:"longitude"`
	LicenseNumber string   `json:"license_number" validate:"required"`
	Services      []string `json:"services" validate:"required,min=1"`
	Password      string   `json:"-"`
	ImagePath     string   `json:"image,omitempty"`

	// Populated after promotion via the profile-update path.
	Description  string          `json:"description,omitempty"`
	WorkingHours json.RawMessage `json:"working_hours,omitempty"`
	IsOpen       bool            `json:"is_open"`

	AccountVerified bool      `json:"account_verified"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
