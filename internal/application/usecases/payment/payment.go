package payment

import (
	"context"
	"errors"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"ticketing/internal/clock"
	"ticketing/internal/domain/actors"
	"ticketing/internal/domain/bookings"
	"ticketing/internal/domain/events"
	"ticketing/internal/domain/payments"
	"ticketing/internal/domain/tickets"
	"ticketing/internal/infrastructure/gateway"
)

//go:generate mockgen -source=payment.go -destination=mocks/mock_payment.go -package=mocks

type BookingsRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*bookings.Booking, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*bookings.Booking, error)
	GetByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*bookings.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status bookings.Status) error
}

type PaymentsRepo interface {
	Create(ctx context.Context, p *payments.Payment) error
	GetByID(ctx context.Context, id uuid.UUID) (*payments.Payment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*payments.Payment, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*payments.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status payments.Status) error
}

type TicketTypesRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*tickets.TicketType, error)
	DecrementQuantity(ctx context.Context, id uuid.UUID, amount int) error
	IncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error
}

type EventsRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*events.Event, error)
}

type Gateway interface {
	Charge(ctx context.Context, in gateway.Input) (gateway.Result, error)
}

// EventPublisher publishes into the transactional outbox; events it accepts
// leave the process only after the surrounding transaction commits.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// Usecase is the payment settlement engine: it resolves a pending booking to
// exactly one terminal outcome and commits payment, booking transition and
// inventory effect as a single unit.
type Usecase struct {
	logger      *logrus.Logger
	bookings    BookingsRepo
	payments    PaymentsRepo
	ticketTypes TicketTypesRepo
	events      EventsRepo
	trManager   trm.Manager
	gateway     Gateway
	publisher   EventPublisher
	clock       clock.Clock
}

func NewUsecase(
	logger *logrus.Logger,
	bookingsRepo BookingsRepo,
	paymentsRepo PaymentsRepo,
	ticketTypesRepo TicketTypesRepo,
	eventsRepo EventsRepo,
	trManager trm.Manager,
	gw Gateway,
	publisher EventPublisher,
	clk clock.Clock,
) *Usecase {
	return &Usecase{
		logger:      logger,
		bookings:    bookingsRepo,
		payments:    paymentsRepo,
		ticketTypes: ticketTypesRepo,
		events:      eventsRepo,
		trManager:   trManager,
		gateway:     gw,
		publisher:   publisher,
		clock:       clk,
	}
}

// Settle charges the gateway for a pending booking and atomically records the
// outcome: on success the booking is confirmed and inventory decremented, on
// failure the booking is cancelled and inventory stays untouched. The gateway
// call happens before the transaction so no row lock is held through the
// simulator's processing delay.
func (u *Usecase) Settle(ctx context.Context, actor actors.Actor, bookingID uuid.UUID, in gateway.Input) (*payments.Payment, *bookings.Booking, error) {
	b, err := u.bookings.GetByIDAndCustomer(ctx, bookingID, actor.ID)
	if err != nil {
		return nil, nil, err
	}

	if _, err := u.payments.GetByBookingID(ctx, b.ID); err == nil {
		return nil, nil, payments.ErrPaymentExists
	} else if !errors.Is(err, payments.ErrPaymentNotFound) {
		return nil, nil, err
	}

	if !b.IsPending() {
		return nil, nil, payments.ErrInvalidState
	}

	tt, err := u.ticketTypes.GetByID(ctx, b.TicketTypeID)
	if err != nil {
		return nil, nil, err
	}
	amount := tt.Price.Mul(decimal.NewFromInt(int64(b.Quantity)))

	result, err := u.gateway.Charge(ctx, in)
	if err != nil {
		return nil, nil, err
	}

	now := u.clock.Now()
	p := &payments.Payment{
		ID:        uuid.New(),
		BookingID: b.ID,
		Amount:    amount,
		Status:    payments.StatusFailed,
		CreatedAt: now,
	}
	if result.Success {
		p.Status = payments.StatusSuccess
	}

	err = u.trManager.Do(ctx, func(ctx context.Context) error {
		locked, err := u.bookings.GetByIDForUpdate(ctx, b.ID)
		if err != nil {
			return err
		}
		if !locked.IsPending() {
			return payments.ErrInvalidState
		}

		if err := u.payments.Create(ctx, p); err != nil {
			return err
		}

		if !result.Success {
			return u.bookings.UpdateStatus(ctx, b.ID, bookings.StatusCancelled)
		}

		if err := u.bookings.UpdateStatus(ctx, b.ID, bookings.StatusConfirmed); err != nil {
			return err
		}
		if err := u.ticketTypes.DecrementQuantity(ctx, tt.ID, b.Quantity); err != nil {
			return err
		}

		return u.publisher.Publish(ctx, &bookings.BookingConfirmed_v1{
			Header:       bookings.NewEventHeader(p.ID.String(), now),
			BookingID:    b.ID,
			CustomerID:   b.CustomerID,
			TicketTypeID: tt.ID,
			Quantity:     b.Quantity,
			Amount:       amount.String(),
			ConfirmedAt:  now,
		})
	})
	if err != nil {
		return nil, nil, err
	}

	if result.Success {
		b.Status = bookings.StatusConfirmed
	} else {
		b.Status = bookings.StatusCancelled
	}

	u.logger.WithFields(logrus.Fields{
		"booking_id": b.ID,
		"payment_id": p.ID,
		"amount":     amount.String(),
		"status":     p.Status,
	}).Info("Payment settled")

	return p, b, nil
}

// Refund reverses a successful payment: payment becomes refunded, the booking
// cancelled and inventory restored by the original quantity, all in one
// transaction. This is the only path that returns inventory for a confirmed
// booking.
func (u *Usecase) Refund(ctx context.Context, actor actors.Actor, paymentID uuid.UUID) (*payments.Payment, *bookings.Booking, error) {
	var (
		refunded *payments.Payment
		booking  *bookings.Booking
	)
	err := u.trManager.Do(ctx, func(ctx context.Context) error {
		p, err := u.payments.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}

		b, err := u.bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			return err
		}
		if actor.Role == actors.RoleCustomer && b.CustomerID != actor.ID {
			return payments.ErrPaymentNotFound
		}

		if !p.IsSuccess() {
			return payments.ErrNotSuccessfulPayment
		}

		if err := u.payments.UpdateStatus(ctx, p.ID, payments.StatusRefunded); err != nil {
			return err
		}
		if err := u.bookings.UpdateStatus(ctx, b.ID, bookings.StatusCancelled); err != nil {
			return err
		}
		if err := u.ticketTypes.IncrementQuantity(ctx, b.TicketTypeID, b.Quantity); err != nil {
			return err
		}

		now := u.clock.Now()
		err = u.publisher.Publish(ctx, &bookings.BookingRefunded_v1{
			Header:       bookings.NewEventHeader(p.ID.String(), now),
			BookingID:    b.ID,
			PaymentID:    p.ID,
			TicketTypeID: b.TicketTypeID,
			Quantity:     b.Quantity,
			Amount:       p.Amount.String(),
			RefundedAt:   now,
		})
		if err != nil {
			return err
		}

		p.Status = payments.StatusRefunded
		b.Status = bookings.StatusCancelled
		refunded = p
		booking = b
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	u.logger.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"payment_id": refunded.ID,
	}).Info("Payment refunded")

	return refunded, booking, nil
}

// Status assembles the payment view returned to clients. Customers see only
// their own payments; organizers and admins see all.
type Status struct {
	Payment    payments.Payment
	Booking    bookings.Booking
	TicketType tickets.TicketType
	EventTitle string
}

func (u *Usecase) Status(ctx context.Context, actor actors.Actor, paymentID uuid.UUID) (*Status, error) {
	p, err := u.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	b, err := u.bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != actor.ID && !actor.CanViewAnyPayment() {
		return nil, actors.ErrForbidden
	}

	tt, err := u.ticketTypes.GetByID(ctx, b.TicketTypeID)
	if err != nil {
		return nil, err
	}

	ev, err := u.events.GetByID(ctx, tt.EventID)
	if err != nil {
		return nil, err
	}

	return &Status{
		Payment:    *p,
		Booking:    *b,
		TicketType: *tt,
		EventTitle: ev.Title,
	}, nil
}
