package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEventHeader(t *testing.T) {
	publishedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.FixedZone("CEST", 2*60*60))

	header := NewEventHeader("payment-1", publishedAt)

	assert.NotEmpty(t, header.Id)
	assert.Equal(t, "payment-1", header.IdempotencyKey)
	assert.Equal(t, publishedAt.UTC(), header.PublishedAt, "timestamp comes from the caller, normalized to UTC")
}
