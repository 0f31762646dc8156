package booking

import "errors"

var (
	ErrInvalidTimeSlot     = errors.New("invalid time slot")
	ErrEndNotAfterStart    = errors.New("end time must be after start time")
	ErrInvalidStatus       = errors.New("invalid booking status")
	ErrInvalidCustomerName = errors.New("customer name is required")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidPartySize    = errors.New("number of people must be between 1 and 20")
	ErrNoteTooLong         = errors.New("admin notes exceed maximum length")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
)
