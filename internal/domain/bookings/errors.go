package bookings

import "errors"

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrDuplicateBooking = errors.New("customer already has an active booking for this ticket type")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
	ErrPaidBooking      = errors.New("booking has a successful payment and must be refunded instead")
)
