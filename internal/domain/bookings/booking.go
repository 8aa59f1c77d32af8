package bookings

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Booking struct {
	ID           uuid.UUID `json:"id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	TicketTypeID uuid.UUID `json:"ticket_type_id"`
	Quantity     int       `json:"quantity"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// CanTransitionTo encodes the booking lifecycle: pending settles into
// confirmed or cancelled, confirmed leaves only through the refund path,
// cancelled is terminal.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	}
	return false
}

func (b *Booking) IsPending() bool {
	return b.Status == StatusPending
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
