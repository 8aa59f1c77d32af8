package events

import (
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ticketing/internal/logctx"
)

func CorrelationIDMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		correlationID := msg.Metadata.Get("correlation_id")
		if correlationID == "" {
			correlationID = uuid.New().String()
		}

		ctx := logctx.ContextWithCorrelationID(msg.Context(), correlationID)
		ctx = logctx.ToContext(ctx,
			logrus.WithFields(logrus.Fields{
				"correlation_id": correlationID,
				"message_uuid":   msg.UUID,
			}),
		)
		msg.SetContext(ctx)

		return next(msg)
	}
}

func LoggingMiddleware(next message.HandlerFunc) message.HandlerFunc {
	return func(msg *message.Message) ([]*message.Message, error) {
		logctx.FromContext(msg.Context()).
			WithField("metadata", msg.Metadata).
			Info("Handling a message")

		messages, err := next(msg)

		if err != nil {
			logctx.FromContext(msg.Context()).
				WithField("payload", string(msg.Payload)).
				WithField("error", err).
				Error("Message handling error")
		}

		return messages, err
	}
}
