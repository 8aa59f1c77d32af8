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

	domain "ticketing/internal/domain/events"
)

type event struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	StartsAt  time.Time `db:"starts_at"`
	CreatedBy uuid.UUID `db:"created_by"`
}

type EventsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewEventsRepo(db *sqlx.DB, getter *trmsqlx.CtxGetter) *EventsRepo {
	return &EventsRepo{db: db, getter: getter}
}

func (r *EventsRepo) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (
			id, title, starts_at, created_by
		) VALUES (
			$1, $2, $3, $4
		)`

	_, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query,
		e.ID,
		e.Title,
		e.StartsAt,
		e.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (r *EventsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	var row event

	query := `
		SELECT id, title, starts_at, created_by
		FROM events
		WHERE id = $1`

	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &row, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return eventToDomain(row), nil
}

func (r *EventsRepo) List(ctx context.Context) ([]domain.Event, error) {
	var rows []event

	query := `
		SELECT id, title, starts_at, created_by
		FROM events
		ORDER BY starts_at`

	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &rows, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	out := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, *eventToDomain(row))
	}
	return out, nil
}

func eventToDomain(row event) *domain.Event {
	return &domain.Event{
		ID:        row.ID,
		Title:     row.Title,
		StartsAt:  row.StartsAt,
		CreatedBy: row.CreatedBy,
	}
}
