package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	domain "ticketing/internal/domain/bookings"
)

// NotificationsClient posts booking confirmations to the notification
// collaborator's webhook. Without a configured URL it only logs, which keeps
// local setups runnable.
type NotificationsClient struct {
	logger     *logrus.Logger
	httpClient *http.Client
	webhookURL string
}

func NewNotificationsClient(logger *logrus.Logger, webhookURL string) *NotificationsClient {
	return &NotificationsClient{
		logger:     logger,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		webhookURL: webhookURL,
	}
}

func (c *NotificationsClient) NotifyConfirmed(ctx context.Context, event *domain.BookingConfirmed_v1) error {
	entry := c.logger.WithFields(logrus.Fields{
		"booking_id":  event.BookingID,
		"customer_id": event.CustomerID,
		"amount":      event.Amount,
	})

	if c.webhookURL == "" {
		entry.Info("Booking confirmed (no notification webhook configured)")
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", event.Header.IdempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to deliver notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("notification webhook returned status %d", resp.StatusCode)
	}

	entry.Info("Booking confirmation delivered")
	return nil
}
