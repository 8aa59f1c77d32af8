package bookings

import (
	"time"

	"github.com/google/uuid"
)

type EventHeader struct {
	Id             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

// NewEventHeader stamps the header with the caller's clock so event
// timestamps stay deterministic in tests.
func NewEventHeader(idempotencyKey string, publishedAt time.Time) EventHeader {
	return EventHeader{
		Id:             uuid.NewString(),
		PublishedAt:    publishedAt.UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

// BookingConfirmed_v1 is published through the outbox in the same transaction
// that confirms the booking, and leaves the process only after that
// transaction commits.
type BookingConfirmed_v1 struct {
	Header       EventHeader `json:"header"`
	BookingID    uuid.UUID   `json:"booking_id"`
	CustomerID   uuid.UUID   `json:"customer_id"`
	TicketTypeID uuid.UUID   `json:"ticket_type_id"`
	Quantity     int         `json:"quantity"`
	Amount       string      `json:"amount"`
	ConfirmedAt  time.Time   `json:"confirmed_at"`
}

type BookingRefunded_v1 struct {
	Header       EventHeader `json:"header"`
	BookingID    uuid.UUID   `json:"booking_id"`
	PaymentID    uuid.UUID   `json:"payment_id"`
	TicketTypeID uuid.UUID   `json:"ticket_type_id"`
	Quantity     int         `json:"quantity"`
	Amount       string      `json:"amount"`
	RefundedAt   time.Time   `json:"refunded_at"`
}
