package payments

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusRefunded Status = "refunded"
)

// Payment records the single settlement outcome of a booking. Amount is
// fixed at settlement time and never changes afterwards.
type Payment struct {
	ID        uuid.UUID       `json:"id"`
	BookingID uuid.UUID       `json:"booking_id"`
	Amount    decimal.Decimal `json:"amount"`
	Status    Status          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}

func (p *Payment) IsSuccess() bool {
	return p.Status == StatusSuccess
}

func (p *Payment) IsRefunded() bool {
	return p.Status == StatusRefunded
}
