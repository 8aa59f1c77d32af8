package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	domain "ticketing/internal/domain/bookings"
)

type booking struct {
	ID           uuid.UUID `db:"id"`
	CustomerID   uuid.UUID `db:"customer_id"`
	TicketTypeID uuid.UUID `db:"ticket_type_id"`
	Quantity     int       `db:"quantity"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
}

type BookingsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewBookingsRepo(db *sqlx.DB, getter *trmsqlx.CtxGetter) *BookingsRepo {
	return &BookingsRepo{db: db, getter: getter}
}

// Create inserts a pending booking. The partial unique index on active
// bookings makes the insert itself the double-booking guard: a concurrent
// insert for the same (customer, ticket type) pair loses with
// ErrDuplicateBooking instead of slipping between a check and an insert.
func (r *BookingsRepo) Create(ctx context.Context, b *domain.Booking) error {
	query := `
		INSERT INTO bookings (
			id, customer_id, ticket_type_id, quantity, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6
		)`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		b.ID,
		b.CustomerID,
		b.TicketTypeID,
		b.Quantity,
		b.Status,
		b.CreatedAt,
	)
	if isUniqueViolation(err, "ux_bookings_active") {
		return domain.ErrDuplicateBooking
	}
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (r *BookingsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.get(ctx, `
		SELECT id, customer_id, ticket_type_id, quantity, status, created_at
		FROM bookings
		WHERE id = $1`, id)
}

// GetByIDAndCustomer scopes the read to the owning customer; other actors'
// bookings are indistinguishable from absent ones.
func (r *BookingsRepo) GetByIDAndCustomer(ctx context.Context, id, customerID uuid.UUID) (*domain.Booking, error) {
	return r.get(ctx, `
		SELECT id, customer_id, ticket_type_id, quantity, status, created_at
		FROM bookings
		WHERE id = $1 AND customer_id = $2`, id, customerID)
}

// GetByIDForUpdate locks the booking row for the rest of the transaction.
func (r *BookingsRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return r.get(ctx, `
		SELECT id, customer_id, ticket_type_id, quantity, status, created_at
		FROM bookings
		WHERE id = $1
		FOR UPDATE`, id)
}

func (r *BookingsRepo) get(ctx context.Context, query string, args ...interface{}) (*domain.Booking, error) {
	var row booking

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return bookingToDomain(row), nil
}

func (r *BookingsRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Booking, error) {
	var rows []booking

	query := `
		SELECT id, customer_id, ticket_type_id, quantity, status, created_at
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at DESC`

	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, *bookingToDomain(row))
	}
	return out, nil
}

func (r *BookingsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	query := `
		UPDATE bookings
		SET status = $2
		WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read status update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrBookingNotFound
	}

	return nil
}

func bookingToDomain(row booking) *domain.Booking {
	return &domain.Booking{
		ID:           row.ID,
		CustomerID:   row.CustomerID,
		TicketTypeID: row.TicketTypeID,
		Quantity:     row.Quantity,
		Status:       domain.Status(row.Status),
		CreatedAt:    row.CreatedAt,
	}
}
