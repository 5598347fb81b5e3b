package onboarding

import "encoding/json"

type RegisterWorkshopRequest struct {
	Name          string   `form:"name" validate:"required"`
	Email         string   `form:"email" validate:"required,email"`
	Phone         string   `form:"phone" validate:"required"`
	Address       string   `form:"address" validate:"required"`
	Latitude      float64  `form:"latitude"`
	Longitude     float64  `form:"longitude"`
	LicenseNumber string   `form:"license_number" validate:"required"`
	Services      []string `form:"services" validate:"required,min=1"`
	Password      string   `form:"password" validate:"required,min=8"`

	// Set by the handler after a successful image save.
	ImagePath string `form:"-"`
}

type DecisionRequest struct {
	Status string `json:"status" binding:"required"` // accepted | rejected
}

type UpdateProfileRequest struct {
	Description  *string         `json:"description"`
	WorkingHours json.RawMessage `json:"working_hours"`
	IsOpen       *bool           `json:"is_open"`
	Services     []string        `json:"services"`
}
