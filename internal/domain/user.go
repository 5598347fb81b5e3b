package domain

import "time"

type UserRole string

const (
	RoleVehicleOwner UserRole = "vehicleOwner"
	RoleWorkshop     UserRole = "workshop"
	RoleAdmin        UserRole = "admin"
)

// Actor is the resolved identity making a request. It is threaded into
// operations explicitly instead of being read from ambient request state.
type Actor struct {
	ID   int64
	Role UserRole
}

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Phone        string    `json:"phone" validate:"required"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	ImagePath    string    `json:"image,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
