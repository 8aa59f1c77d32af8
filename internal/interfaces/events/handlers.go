package events

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"

	domain "ticketing/internal/domain/bookings"
	"ticketing/internal/logctx"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock_handlers.go -package=mocks

// Notifier delivers the booking confirmation to the customer. Delivery is
// best-effort: a failed handler is retried by the router middleware and
// never affects the already-committed settlement.
type Notifier interface {
	NotifyConfirmed(ctx context.Context, event *domain.BookingConfirmed_v1) error
}

func BookingConfirmedNotificationHandler(notifier Notifier) cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"booking_confirmed_notification_handler",
		func(ctx context.Context, event *domain.BookingConfirmed_v1) error {
			return notifier.NotifyConfirmed(ctx, event)
		},
	)
}

func BookingRefundedAuditHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"booking_refunded_audit_handler",
		func(ctx context.Context, event *domain.BookingRefunded_v1) error {
			logctx.FromContext(ctx).
				WithField("booking_id", event.BookingID).
				WithField("payment_id", event.PaymentID).
				WithField("amount", event.Amount).
				Info("Booking refunded")
			return nil
		},
	)
}
