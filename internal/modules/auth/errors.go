package auth

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrDuplicateIdentity  = errors.New("email or phone already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account pending verification")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrInvalidPortal      = errors.New("invalid login portal")
	ErrAccountNotFound    = errors.New("account not found")
)
