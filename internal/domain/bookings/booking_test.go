package bookings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"pending to pending", StatusPending, StatusPending, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}
