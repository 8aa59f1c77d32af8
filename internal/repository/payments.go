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
	"github.com/shopspring/decimal"

	domain "ticketing/internal/domain/payments"
)

type payment struct {
	ID        uuid.UUID       `db:"id"`
	BookingID uuid.UUID       `db:"booking_id"`
	Amount    decimal.Decimal `db:"amount"`
	Status    string          `db:"status"`
	CreatedAt time.Time       `db:"created_at"`
}

type PaymentsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewPaymentsRepo(db *sqlx.DB, getter *trmsqlx.CtxGetter) *PaymentsRepo {
	return &PaymentsRepo{db: db, getter: getter}
}

// Create inserts the settlement outcome. The unique constraint on booking_id
// keeps the at-most-one-payment invariant under concurrent settlements.
func (r *PaymentsRepo) Create(ctx context.Context, p *domain.Payment) error {
	query := `
		INSERT INTO payments (
			id, booking_id, amount, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5
		)`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		p.ID,
		p.BookingID,
		p.Amount,
		p.Status,
		p.CreatedAt,
	)
	if isUniqueViolation(err, "payments_booking_id_key") {
		return domain.ErrPaymentExists
	}
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func (r *PaymentsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return r.get(ctx, `
		SELECT id, booking_id, amount, status, created_at
		FROM payments
		WHERE id = $1`, id)
}

// GetByIDForUpdate locks the payment row so a concurrent refund of the same
// payment serializes behind this transaction.
func (r *PaymentsRepo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return r.get(ctx, `
		SELECT id, booking_id, amount, status, created_at
		FROM payments
		WHERE id = $1
		FOR UPDATE`, id)
}

func (r *PaymentsRepo) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Payment, error) {
	return r.get(ctx, `
		SELECT id, booking_id, amount, status, created_at
		FROM payments
		WHERE booking_id = $1`, bookingID)
}

func (r *PaymentsRepo) get(ctx context.Context, query string, args ...interface{}) (*domain.Payment, error) {
	var row payment

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &row, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return paymentToDomain(row), nil
}

func (r *PaymentsRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	query := `
		UPDATE payments
		SET status = $2
		WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update payment status: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read payment update result: %w", err)
	}
	if affected == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

func paymentToDomain(row payment) *domain.Payment {
	return &domain.Payment{
		ID:        row.ID,
		BookingID: row.BookingID,
		Amount:    row.Amount,
		Status:    domain.Status(row.Status),
		CreatedAt: row.CreatedAt,
	}
}
