package tickets

import "errors"

var (
	ErrTicketTypeNotFound    = errors.New("ticket type not found")
	ErrInvalidName           = errors.New("name must not be empty")
	ErrInvalidPrice          = errors.New("price must not be negative")
	ErrInvalidQuantity       = errors.New("quantity must be at least 1")
	ErrInsufficientInventory = errors.New("not enough tickets available")
)
