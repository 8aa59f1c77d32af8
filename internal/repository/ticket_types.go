package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	domain "ticketing/internal/domain/tickets"
)

type ticketType struct {
	ID       uuid.UUID       `db:"id"`
	EventID  uuid.UUID       `db:"event_id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	Quantity int             `db:"quantity"`
}

type TicketTypesRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTicketTypesRepo(db *sqlx.DB, getter *trmsqlx.CtxGetter) *TicketTypesRepo {
	return &TicketTypesRepo{db: db, getter: getter}
}

func (r *TicketTypesRepo) Create(ctx context.Context, t *domain.TicketType) error {
	query := `
		INSERT INTO ticket_types (
			id, event_id, name, price, quantity
		) VALUES (
			$1, $2, $3, $4, $5
		)`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		t.ID,
		t.EventID,
		t.Name,
		t.Price,
		t.Quantity,
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket type: %w", err)
	}

	return nil
}

func (r *TicketTypesRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.TicketType, error) {
	var row ticketType

	query := `
		SELECT id, event_id, name, price, quantity
		FROM ticket_types
		WHERE id = $1`

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrTicketTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get ticket type: %w", err)
	}

	return ticketTypeToDomain(row), nil
}

func (r *TicketTypesRepo) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]domain.TicketType, error) {
	var rows []ticketType

	query := `
		SELECT id, event_id, name, price, quantity
		FROM ticket_types
		WHERE event_id = $1
		ORDER BY name`

	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ticket types: %w", err)
	}

	out := make([]domain.TicketType, 0, len(rows))
	for _, row := range rows {
		out = append(out, *ticketTypeToDomain(row))
	}
	return out, nil
}

// DecrementQuantity atomically takes amount units of inventory. The
// non-negative check happens in the same statement, so two concurrent
// settlements can never jointly drive quantity below zero.
func (r *TicketTypesRepo) DecrementQuantity(ctx context.Context, id uuid.UUID, amount int) error {
	query := `
		UPDATE ticket_types
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("failed to decrement ticket quantity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read decrement result: %w", err)
	}
	if affected == 0 {
		return domain.ErrInsufficientInventory
	}

	return nil
}

// IncrementQuantity returns amount units of inventory (refund path).
func (r *TicketTypesRepo) IncrementQuantity(ctx context.Context, id uuid.UUID, amount int) error {
	query := `
		UPDATE ticket_types
		SET quantity = quantity + $2
		WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, id, amount)
	if err != nil {
		return fmt.Errorf("failed to increment ticket quantity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read increment result: %w", err)
	}
	if affected == 0 {
		return domain.ErrTicketTypeNotFound
	}

	return nil
}

func ticketTypeToDomain(row ticketType) *domain.TicketType {
	return &domain.TicketType{
		ID:       row.ID,
		EventID:  row.EventID,
		Name:     row.Name,
		Price:    row.Price,
		Quantity: row.Quantity,
	}
}
