package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotFound                = errors.New("booking not found")
	ErrSlotTaken               = errors.New("time slot is already booked")
	ErrPricingUnavailable      = errors.New("no pricing for requested booking")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
