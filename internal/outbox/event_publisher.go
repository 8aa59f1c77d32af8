package outbox

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"

	"ticketing/internal/interfaces/events"
)

// EventPublisher publishes domain events into the outbox using the
// transaction bound to the context. Calling it outside a transaction is a
// programming error.
type EventPublisher struct {
	getter *trmsqlx.CtxGetter
	logger watermill.LoggerAdapter
}

func NewEventPublisher(getter *trmsqlx.CtxGetter, logger watermill.LoggerAdapter) *EventPublisher {
	return &EventPublisher{
		getter: getter,
		logger: logger,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event any) error {
	tr := p.getter.DefaultTrOrDB(ctx, nil)
	if tr == nil {
		return fmt.Errorf("no transaction in context for outbox publish")
	}

	publisher, err := NewPublisher(tr, p.logger)
	if err != nil {
		return fmt.Errorf("failed to create event publisher: %w", err)
	}

	eventBus, err := events.NewEventBus(publisher, p.logger)
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}

	return eventBus.Publish(ctx, event)
}
