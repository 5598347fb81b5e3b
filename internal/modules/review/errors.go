package review

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrOwnerNotFound    = errors.New("vehicle owner not found")
	ErrWorkshopNotFound = errors.New("workshop not found")
)
