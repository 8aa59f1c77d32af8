package outbox

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	watermillSQL "github.com/ThreeDotsLabs/watermill-sql/v2/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/components/forwarder"
	"github.com/ThreeDotsLabs/watermill/message"
)

// NewPublisher returns a publisher that writes messages to the outbox table
// using the given transaction executor, wrapped in the forwarder envelope.
func NewPublisher(
	tx watermillSQL.ContextExecutor,
	logger watermill.LoggerAdapter,
) (message.Publisher, error) {
	publisher, err := watermillSQL.NewPublisher(
		tx,
		watermillSQL.PublisherConfig{
			SchemaAdapter: watermillSQL.DefaultPostgreSQLSchema{},
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create outbox publisher: %w", err)
	}

	return forwarder.NewPublisher(publisher, forwarder.PublisherConfig{
		ForwarderTopic: Topic,
	}), nil
}
