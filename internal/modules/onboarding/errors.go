package onboarding

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrDuplicateIdentity = errors.New("email, phone or license already registered")
	ErrWorkshopNotFound  = errors.New("workshop not found")
	ErrInvalidDecision   = errors.New("invalid decision")
	ErrAlreadyVerified   = errors.New("workshop already verified")
	ErrForbidden         = errors.New("not the profile owner")
)
