package events

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"ticketing/internal/domain/actors"
	domain "ticketing/internal/domain/events"
	"ticketing/internal/domain/tickets"
)

//go:generate mockgen -source=events.go -destination=mocks/mock_events.go -package=mocks

type EventsRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
}

type TicketTypesRepo interface {
	Create(ctx context.Context, t *tickets.TicketType) error
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]tickets.TicketType, error)
}

// Usecase covers the organizer-facing catalogue: events and their ticket
// tiers. None of this mutates inventory concurrently, so plain inserts and
// reads suffice.
type Usecase struct {
	logger      *logrus.Logger
	events      EventsRepo
	ticketTypes TicketTypesRepo
}

func NewUsecase(
	logger *logrus.Logger,
	eventsRepo EventsRepo,
	ticketTypesRepo TicketTypesRepo,
) *Usecase {
	return &Usecase{
		logger:      logger,
		events:      eventsRepo,
		ticketTypes: ticketTypesRepo,
	}
}

func (u *Usecase) CreateEvent(ctx context.Context, actor actors.Actor, title string, startsAt time.Time) (*domain.Event, error) {
	if !actor.CanManageEvents() {
		return nil, actors.ErrForbidden
	}
	if strings.TrimSpace(title) == "" {
		return nil, domain.ErrInvalidTitle
	}

	e := &domain.Event{
		ID:        uuid.New(),
		Title:     title,
		StartsAt:  startsAt,
		CreatedBy: actor.ID,
	}
	if err := u.events.Create(ctx, e); err != nil {
		return nil, err
	}

	u.logger.WithField("event_id", e.ID).Info("Event created")

	return e, nil
}

func (u *Usecase) GetEvent(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	return u.events.GetByID(ctx, id)
}

func (u *Usecase) ListEvents(ctx context.Context) ([]domain.Event, error) {
	return u.events.List(ctx)
}

func (u *Usecase) CreateTicketType(ctx context.Context, actor actors.Actor, eventID uuid.UUID, name string, price decimal.Decimal, quantity int) (*tickets.TicketType, error) {
	if !actor.CanManageEvents() {
		return nil, actors.ErrForbidden
	}

	ev, err := u.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if ev.CreatedBy != actor.ID && actor.Role != actors.RoleAdmin {
		return nil, actors.ErrForbidden
	}

	if strings.TrimSpace(name) == "" {
		return nil, tickets.ErrInvalidName
	}
	if price.IsNegative() {
		return nil, tickets.ErrInvalidPrice
	}
	if quantity < 1 {
		return nil, tickets.ErrInvalidQuantity
	}

	t := &tickets.TicketType{
		ID:       uuid.New(),
		EventID:  eventID,
		Name:     name,
		Price:    price,
		Quantity: quantity,
	}
	if err := u.ticketTypes.Create(ctx, t); err != nil {
		return nil, err
	}

	u.logger.WithFields(logrus.Fields{
		"event_id":       eventID,
		"ticket_type_id": t.ID,
	}).Info("Ticket type created")

	return t, nil
}

func (u *Usecase) ListTicketTypes(ctx context.Context, eventID uuid.UUID) ([]tickets.TicketType, error) {
	if _, err := u.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return u.ticketTypes.ListByEvent(ctx, eventID)
}
