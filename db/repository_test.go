package repository

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainBookings "ticketing/internal/domain/bookings"
	domainEvents "ticketing/internal/domain/events"
	domainPayments "ticketing/internal/domain/payments"
	domainTickets "ticketing/internal/domain/tickets"
	"ticketing/internal/repository"
)

var db *sqlx.DB
var getDbOnce sync.Once

func getDb(t *testing.T) *sqlx.DB {
	url := os.Getenv("POSTGRES_URL")
	if url == "" {
		t.Skip("POSTGRES_URL is not set")
	}

	getDbOnce.Do(func() {
		var err error
		db, err = sqlx.Open("postgres", url)
		if err != nil {
			panic(err)
		}
		if err := repository.InitializeDBSchema(db); err != nil {
			panic(err)
		}
	})
	return db
}

func cleanupTestDB(t *testing.T) {
	_, err := getDb(t).Exec("TRUNCATE TABLE payments, bookings, ticket_types, events")
	require.NoError(t, err)
}

// seedTicketType inserts an event with one ticket type carrying the given
// inventory and returns the ticket type id.
func seedTicketType(t *testing.T, quantity int) uuid.UUID {
	ctx := context.Background()
	db := getDb(t)

	eventsRepo := repository.NewEventsRepo(db, trmsqlx.DefaultCtxGetter)
	ticketTypesRepo := repository.NewTicketTypesRepo(db, trmsqlx.DefaultCtxGetter)

	event := &domainEvents.Event{
		ID:        uuid.New(),
		Title:     "Summer Festival",
		StartsAt:  time.Now().Add(72 * time.Hour),
		CreatedBy: uuid.New(),
	}
	require.NoError(t, eventsRepo.Create(ctx, event))

	tt := &domainTickets.TicketType{
		ID:       uuid.New(),
		EventID:  event.ID,
		Name:     "General Admission",
		Price:    decimal.NewFromInt(25),
		Quantity: quantity,
	}
	require.NoError(t, ticketTypesRepo.Create(ctx, tt))

	return tt.ID
}

func seedBooking(t *testing.T, ticketTypeID uuid.UUID, status domainBookings.Status) *domainBookings.Booking {
	ctx := context.Background()
	repo := repository.NewBookingsRepo(getDb(t), trmsqlx.DefaultCtxGetter)

	b := &domainBookings.Booking{
		ID:           uuid.New(),
		CustomerID:   uuid.New(),
		TicketTypeID: ticketTypeID,
		Quantity:     2,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, b))
	return b
}

func TestTicketTypesRepo_DecrementQuantity_Integration(t *testing.T) {
	t.Cleanup(func() { cleanupTestDB(t) })
	ctx := context.Background()

	repo := repository.NewTicketTypesRepo(getDb(t), trmsqlx.DefaultCtxGetter)

	t.Run("decrement stops at zero", func(t *testing.T) {
		ttID := seedTicketType(t, 3)

		require.NoError(t, repo.DecrementQuantity(ctx, ttID, 3))

		err := repo.DecrementQuantity(ctx, ttID, 1)
		assert.ErrorIs(t, err, domainTickets.ErrInsufficientInventory)

		tt, err := repo.GetByID(ctx, ttID)
		require.NoError(t, err)
		assert.Equal(t, 0, tt.Quantity)
	})

	t.Run("concurrent decrements never oversell", func(t *testing.T) {
		const inventory = 10
		const settlers = 20

		ttID := seedTicketType(t, inventory)

		var wg sync.WaitGroup
		errs := make(chan error, settlers)
		for i := 0; i < settlers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- repo.DecrementQuantity(ctx, ttID, 2)
			}()
		}
		wg.Wait()
		close(errs)

		succeeded := 0
		for err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.ErrorIs(t, err, domainTickets.ErrInsufficientInventory)
			}
		}
		assert.Equal(t, inventory/2, succeeded)

		tt, err := repo.GetByID(ctx, ttID)
		require.NoError(t, err)
		assert.Equal(t, 0, tt.Quantity)
	})
}

func TestBookingsRepo_DuplicateGuard_Integration(t *testing.T) {
	t.Cleanup(func() { cleanupTestDB(t) })
	ctx := context.Background()

	repo := repository.NewBookingsRepo(getDb(t), trmsqlx.DefaultCtxGetter)

	t.Run("second active booking for the same ticket type is rejected", func(t *testing.T) {
		ttID := seedTicketType(t, 10)
		first := seedBooking(t, ttID, domainBookings.StatusPending)

		dup := &domainBookings.Booking{
			ID:           uuid.New(),
			CustomerID:   first.CustomerID,
			TicketTypeID: ttID,
			Quantity:     1,
			Status:       domainBookings.StatusPending,
			CreatedAt:    time.Now().UTC(),
		}
		err := repo.Create(ctx, dup)
		assert.ErrorIs(t, err, domainBookings.ErrDuplicateBooking)
	})

	t.Run("cancelled bookings do not block rebooking", func(t *testing.T) {
		ttID := seedTicketType(t, 10)
		first := seedBooking(t, ttID, domainBookings.StatusPending)

		require.NoError(t, repo.UpdateStatus(ctx, first.ID, domainBookings.StatusCancelled))

		rebooked := &domainBookings.Booking{
			ID:           uuid.New(),
			CustomerID:   first.CustomerID,
			TicketTypeID: ttID,
			Quantity:     1,
			Status:       domainBookings.StatusPending,
			CreatedAt:    time.Now().UTC(),
		}
		assert.NoError(t, repo.Create(ctx, rebooked))
	})

	t.Run("other customers are not affected by the guard", func(t *testing.T) {
		ttID := seedTicketType(t, 10)
		seedBooking(t, ttID, domainBookings.StatusPending)
		other := seedBooking(t, ttID, domainBookings.StatusPending)

		got, err := repo.GetByID(ctx, other.ID)
		require.NoError(t, err)
		assert.Equal(t, other.CustomerID, got.CustomerID)
	})
}

func TestPaymentsRepo_BookingUniqueness_Integration(t *testing.T) {
	t.Cleanup(func() { cleanupTestDB(t) })
	ctx := context.Background()

	repo := repository.NewPaymentsRepo(getDb(t), trmsqlx.DefaultCtxGetter)

	ttID := seedTicketType(t, 10)
	booking := seedBooking(t, ttID, domainBookings.StatusPending)

	first := &domainPayments.Payment{
		ID:        uuid.New(),
		BookingID: booking.ID,
		Amount:    decimal.NewFromInt(50),
		Status:    domainPayments.StatusSuccess,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, first))

	second := &domainPayments.Payment{
		ID:        uuid.New(),
		BookingID: booking.ID,
		Amount:    decimal.NewFromInt(50),
		Status:    domainPayments.StatusFailed,
		CreatedAt: time.Now().UTC(),
	}
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domainPayments.ErrPaymentExists)

	got, err := repo.GetByBookingID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}
