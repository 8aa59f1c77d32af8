package tickets

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TicketType is a priced category of admission with a finite remaining
// quantity. Quantity is mutated only by settlement (decrement) and refund
// (increment), never by booking creation or cancellation.
type TicketType struct {
	ID       uuid.UUID       `json:"id"`
	EventID  uuid.UUID       `json:"event_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (t *TicketType) IsAvailable(requested int) bool {
	return t.Quantity >= requested
}
