package events_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/internal/domain/bookings"
	"ticketing/internal/interfaces/events"
	"ticketing/internal/interfaces/events/mocks"
)

func TestBookingConfirmedNotificationHandler(t *testing.T) {
	ctx := context.Background()

	event := &bookings.BookingConfirmed_v1{
		Header:     bookings.NewEventHeader(uuid.NewString(), time.Now()),
		BookingID:  uuid.New(),
		CustomerID: uuid.New(),
		Quantity:   2,
		Amount:     "50",
	}

	t.Run("delivers the confirmation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		notifier.EXPECT().NotifyConfirmed(gomock.Any(), event).Return(nil)

		handler := events.BookingConfirmedNotificationHandler(notifier)
		require.NoError(t, handler.Handle(ctx, event))
	})

	t.Run("propagates delivery failures for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		notifier.EXPECT().NotifyConfirmed(gomock.Any(), event).Return(errors.New("webhook unreachable"))

		handler := events.BookingConfirmedNotificationHandler(notifier)
		assert.Error(t, handler.Handle(ctx, event))
	})
}

func TestBookingRefundedAuditHandler(t *testing.T) {
	handler := events.BookingRefundedAuditHandler()

	err := handler.Handle(context.Background(), &bookings.BookingRefunded_v1{
		Header:    bookings.NewEventHeader(uuid.NewString(), time.Now()),
		BookingID: uuid.New(),
		PaymentID: uuid.New(),
		Quantity:  2,
		Amount:    "50",
	})
	assert.NoError(t, err)
}
