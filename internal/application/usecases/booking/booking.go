package booking

import (
	"context"
	"database/sql"
	"errors"

	trmsql "github.com/avito-tech/go-transaction-manager/drivers/sql/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/settings"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ticketing/internal/clock"
	"ticketing/internal/domain/actors"
	"ticketing/internal/domain/bookings"
	"ticketing/internal/domain/events"
	"ticketing/internal/domain/payments"
	"ticketing/internal/domain/tickets"
	"ticketing/internal/repository"
)

//go:generate mockgen -source=booking.go -destination=mocks/mock_booking.go -package=mocks

type BookingsRepo interface {
	Create(ctx context.Context, b *bookings.Booking) error
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*bookings.Booking, error)
	GetByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*bookings.Booking, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]bookings.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status bookings.Status) error
}

type TicketTypesRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*tickets.TicketType, error)
}

type EventsRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*events.Event, error)
}

type PaymentsRepo interface {
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*payments.Payment, error)
}

// Usecase drives the booking lifecycle: creation behind the double-booking
// guard and cancellation of unsettled bookings. Inventory is never touched
// here; only settlement decrements it and only refund restores it.
type Usecase struct {
	logger      *logrus.Logger
	bookings    BookingsRepo
	ticketTypes TicketTypesRepo
	events      EventsRepo
	payments    PaymentsRepo
	trManager   trm.Manager
	clock       clock.Clock
}

func NewUsecase(
	logger *logrus.Logger,
	bookingsRepo BookingsRepo,
	ticketTypesRepo TicketTypesRepo,
	eventsRepo EventsRepo,
	paymentsRepo PaymentsRepo,
	trManager trm.Manager,
	clk clock.Clock,
) *Usecase {
	return &Usecase{
		logger:      logger,
		bookings:    bookingsRepo,
		ticketTypes: ticketTypesRepo,
		events:      eventsRepo,
		payments:    paymentsRepo,
		trManager:   trManager,
		clock:       clk,
	}
}

const createAttempts = 3

// Create places a pending booking for the actor. The inventory check here is
// advisory; the authoritative one runs inside the settlement transaction.
func (u *Usecase) Create(ctx context.Context, actor actors.Actor, ticketTypeID uuid.UUID, quantity int) (*bookings.Booking, error) {
	if quantity < 1 {
		return nil, bookings.ErrInvalidQuantity
	}

	var created *bookings.Booking
	err := u.withSerializableRetry(ctx, createAttempts, func(ctx context.Context) error {
		tt, err := u.ticketTypes.GetByID(ctx, ticketTypeID)
		if err != nil {
			return err
		}

		ev, err := u.events.GetByID(ctx, tt.EventID)
		if err != nil {
			return err
		}
		if ev.HasStarted(u.clock.Now()) {
			return events.ErrEventPast
		}

		if !tt.IsAvailable(quantity) {
			return tickets.ErrInsufficientInventory
		}

		b := &bookings.Booking{
			ID:           uuid.New(),
			CustomerID:   actor.ID,
			TicketTypeID: ticketTypeID,
			Quantity:     quantity,
			Status:       bookings.StatusPending,
			CreatedAt:    u.clock.Now(),
		}
		if err := u.bookings.Create(ctx, b); err != nil {
			return err
		}

		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.WithFields(logrus.Fields{
		"booking_id":     created.ID,
		"ticket_type_id": ticketTypeID,
		"quantity":       quantity,
	}).Info("Booking created")

	return created, nil
}

// Cancel cancels an unsettled booking owned by the actor. A pending booking
// never decremented inventory, so there is nothing to restore; paid bookings
// must go through the refund path instead.
func (u *Usecase) Cancel(ctx context.Context, actor actors.Actor, bookingID uuid.UUID) (*bookings.Booking, error) {
	var cancelled *bookings.Booking
	err := u.trManager.Do(ctx, func(ctx context.Context) error {
		b, err := u.bookings.GetByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}
		if b.CustomerID != actor.ID {
			return bookings.ErrBookingNotFound
		}

		if b.IsCancelled() {
			return bookings.ErrAlreadyCancelled
		}

		p, err := u.payments.GetByBookingID(ctx, b.ID)
		if err != nil && !errors.Is(err, payments.ErrPaymentNotFound) {
			return err
		}
		if p != nil && p.IsSuccess() {
			return bookings.ErrPaidBooking
		}

		if err := u.bookings.UpdateStatus(ctx, b.ID, bookings.StatusCancelled); err != nil {
			return err
		}

		b.Status = bookings.StatusCancelled
		cancelled = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.logger.WithField("booking_id", cancelled.ID).Info("Booking cancelled")

	return cancelled, nil
}

func (u *Usecase) Get(ctx context.Context, actor actors.Actor, bookingID uuid.UUID) (*bookings.Booking, error) {
	return u.bookings.GetByIDAndCustomer(ctx, bookingID, actor.ID)
}

func (u *Usecase) ListByCustomer(ctx context.Context, actor actors.Actor) ([]bookings.Booking, error) {
	return u.bookings.ListByCustomer(ctx, actor.ID)
}

// withSerializableRetry runs fn in a serializable transaction, retrying a
// bounded number of times on serialization conflicts.
func (u *Usecase) withSerializableRetry(ctx context.Context, attempts int, fn func(context.Context) error) error {
	var lastErr error
	for i := 0; i < attempts; i++ {
		err := u.trManager.DoWithSettings(
			ctx,
			trmsql.MustSettings(
				settings.Must(settings.WithCancelable(true)),
				trmsql.WithTxOptions(&sql.TxOptions{Isolation: sql.LevelSerializable}),
			),
			fn,
		)
		if err == nil {
			return nil
		}

		if repository.IsSerializationFailure(err) {
			u.logger.WithError(err).WithField("attempt", i+1).Warn("Serialization conflict, retrying")
			lastErr = err
			continue
		}

		return err
	}
	return lastErr
}
