package booking

import "errors"

var (
	ErrValidation        = errors.New("validation error")
	ErrOwnerNotFound     = errors.New("owner not found")
	ErrWorkshopNotFound  = errors.New("workshop not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrSlotTaken         = errors.New("slot already booked")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("illegal status transition")
)
