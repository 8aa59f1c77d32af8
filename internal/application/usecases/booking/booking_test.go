package booking_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/internal/application/usecases/booking"
	"ticketing/internal/application/usecases/booking/mocks"
	"ticketing/internal/clock"
	"ticketing/internal/domain/actors"
	"ticketing/internal/domain/bookings"
	domainEvents "ticketing/internal/domain/events"
	"ticketing/internal/domain/payments"
	"ticketing/internal/domain/tickets"
)

// trManagerStub runs the closure without a real transaction.
type trManagerStub struct{}

func (trManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (trManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// conflictingManagerStub fails the first n transactions with a
// serialization conflict before letting the closure run.
type conflictingManagerStub struct {
	conflicts int
}

func (s *conflictingManagerStub) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (s *conflictingManagerStub) DoWithSettings(ctx context.Context, _ trm.Settings, fn func(ctx context.Context) error) error {
	if s.conflicts > 0 {
		s.conflicts--
		return &pq.Error{Code: "40001"}
	}
	return fn(ctx)
}

type fixture struct {
	bookings    *mocks.MockBookingsRepo
	ticketTypes *mocks.MockTicketTypesRepo
	events      *mocks.MockEventsRepo
	payments    *mocks.MockPaymentsRepo
	now         time.Time
}

func newFixture(t *testing.T) (*fixture, *booking.Usecase) {
	ctrl := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	f := &fixture{
		bookings:    mocks.NewMockBookingsRepo(ctrl),
		ticketTypes: mocks.NewMockTicketTypesRepo(ctrl),
		events:      mocks.NewMockEventsRepo(ctrl),
		payments:    mocks.NewMockPaymentsRepo(ctrl),
		now:         time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	usecase := booking.NewUsecase(
		logger,
		f.bookings,
		f.ticketTypes,
		f.events,
		f.payments,
		trManagerStub{},
		clock.NewFixed(f.now),
	)
	return f, usecase
}

func (f *fixture) ticketType(eventID uuid.UUID, quantity int) *tickets.TicketType {
	return &tickets.TicketType{
		ID:       uuid.New(),
		EventID:  eventID,
		Name:     "General Admission",
		Quantity: quantity,
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	actor := actors.Actor{ID: uuid.New(), Role: actors.RoleCustomer}

	t.Run("creates a pending booking", func(t *testing.T) {
		f, usecase := newFixture(t)

		eventID := uuid.New()
		tt := f.ticketType(eventID, 10)

		f.ticketTypes.EXPECT().GetByID(gomock.Any(), tt.ID).Return(tt, nil)
		f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(&domainEvents.Event{
			ID:       eventID,
			StartsAt: f.now.Add(24 * time.Hour),
		}, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		b, err := usecase.Create(ctx, actor, tt.ID, 2)
		require.NoError(t, err)

		assert.Equal(t, actor.ID, b.CustomerID)
		assert.Equal(t, tt.ID, b.TicketTypeID)
		assert.Equal(t, 2, b.Quantity)
		assert.Equal(t, bookings.StatusPending, b.Status)
		assert.Equal(t, f.now, b.CreatedAt)
	})

	t.Run("rejects quantity below one", func(t *testing.T) {
		_, usecase := newFixture(t)

		_, err := usecase.Create(ctx, actor, uuid.New(), 0)
		assert.ErrorIs(t, err, bookings.ErrInvalidQuantity)
	})

	t.Run("rejects bookings for started events", func(t *testing.T) {
		f, usecase := newFixture(t)

		eventID := uuid.New()
		tt := f.ticketType(eventID, 10)

		f.ticketTypes.EXPECT().GetByID(gomock.Any(), tt.ID).Return(tt, nil)
		f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(&domainEvents.Event{
			ID:       eventID,
			StartsAt: f.now.Add(-time.Hour),
		}, nil)

		_, err := usecase.Create(ctx, actor, tt.ID, 2)
		assert.ErrorIs(t, err, domainEvents.ErrEventPast)
	})

	t.Run("rejects requests above remaining inventory", func(t *testing.T) {
		f, usecase := newFixture(t)

		eventID := uuid.New()
		tt := f.ticketType(eventID, 1)

		f.ticketTypes.EXPECT().GetByID(gomock.Any(), tt.ID).Return(tt, nil)
		f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(&domainEvents.Event{
			ID:       eventID,
			StartsAt: f.now.Add(24 * time.Hour),
		}, nil)

		_, err := usecase.Create(ctx, actor, tt.ID, 2)
		assert.ErrorIs(t, err, tickets.ErrInsufficientInventory)
	})

	t.Run("propagates the duplicate booking guard", func(t *testing.T) {
		f, usecase := newFixture(t)

		eventID := uuid.New()
		tt := f.ticketType(eventID, 10)

		f.ticketTypes.EXPECT().GetByID(gomock.Any(), tt.ID).Return(tt, nil)
		f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(&domainEvents.Event{
			ID:       eventID,
			StartsAt: f.now.Add(24 * time.Hour),
		}, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(bookings.ErrDuplicateBooking)

		_, err := usecase.Create(ctx, actor, tt.ID, 2)
		assert.ErrorIs(t, err, bookings.ErrDuplicateBooking)
	})

	t.Run("retries serialization conflicts", func(t *testing.T) {
		f, _ := newFixture(t)

		logger := logrus.New()
		logger.SetOutput(io.Discard)

		usecase := booking.NewUsecase(
			logger,
			f.bookings,
			f.ticketTypes,
			f.events,
			f.payments,
			&conflictingManagerStub{conflicts: 2},
			clock.NewFixed(f.now),
		)

		eventID := uuid.New()
		tt := f.ticketType(eventID, 10)

		f.ticketTypes.EXPECT().GetByID(gomock.Any(), tt.ID).Return(tt, nil)
		f.events.EXPECT().GetByID(gomock.Any(), eventID).Return(&domainEvents.Event{
			ID:       eventID,
			StartsAt: f.now.Add(24 * time.Hour),
		}, nil)
		f.bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		_, err := usecase.Create(ctx, actor, tt.ID, 2)
		require.NoError(t, err)
	})
}

func TestCancel(t *testing.T) {
	ctx := context.Background()
	actor := actors.Actor{ID: uuid.New(), Role: actors.RoleCustomer}

	pendingBooking := func() *bookings.Booking {
		return &bookings.Booking{
			ID:           uuid.New(),
			CustomerID:   actor.ID,
			TicketTypeID: uuid.New(),
			Quantity:     2,
			Status:       bookings.StatusPending,
		}
	}

	t.Run("cancels an unsettled booking without touching inventory", func(t *testing.T) {
		f, usecase := newFixture(t)

		b := pendingBooking()
		f.bookings.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)
		f.payments.EXPECT().GetByBookingID(gomock.Any(), b.ID).Return(nil, payments.ErrPaymentNotFound)
		f.bookings.EXPECT().UpdateStatus(gomock.Any(), b.ID, bookings.StatusCancelled).Return(nil)

		cancelled, err := usecase.Cancel(ctx, actor, b.ID)
		require.NoError(t, err)
		assert.Equal(t, bookings.StatusCancelled, cancelled.Status)
	})

	t.Run("hides other customers' bookings", func(t *testing.T) {
		f, usecase := newFixture(t)

		b := pendingBooking()
		b.CustomerID = uuid.New()
		f.bookings.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		_, err := usecase.Cancel(ctx, actor, b.ID)
		assert.ErrorIs(t, err, bookings.ErrBookingNotFound)
	})

	t.Run("rejects a second cancellation", func(t *testing.T) {
		f, usecase := newFixture(t)

		b := pendingBooking()
		b.Status = bookings.StatusCancelled
		f.bookings.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)

		_, err := usecase.Cancel(ctx, actor, b.ID)
		assert.ErrorIs(t, err, bookings.ErrAlreadyCancelled)
	})

	t.Run("sends paid bookings to the refund path", func(t *testing.T) {
		f, usecase := newFixture(t)

		b := pendingBooking()
		b.Status = bookings.StatusConfirmed
		f.bookings.EXPECT().GetByIDForUpdate(gomock.Any(), b.ID).Return(b, nil)
		f.payments.EXPECT().GetByBookingID(gomock.Any(), b.ID).Return(&payments.Payment{
			ID:        uuid.New(),
			BookingID: b.ID,
			Status:    payments.StatusSuccess,
		}, nil)

		_, err := usecase.Cancel(ctx, actor, b.ID)
		assert.ErrorIs(t, err, bookings.ErrPaidBooking)
	})
}
