package events

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	StartsAt  time.Time `json:"starts_at"`
	CreatedBy uuid.UUID `json:"created_by"`
}

// HasStarted reports whether the event date has elapsed; bookings are only
// accepted for events that have not started yet.
func (e *Event) HasStarted(now time.Time) bool {
	return !e.StartsAt.After(now)
}
