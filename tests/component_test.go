package tests_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"ticketing/internal/app"
	"ticketing/internal/config"
	"ticketing/internal/domain/bookings"
	"ticketing/internal/interfaces/events/mocks"
)

const httpAddr = "http://localhost:8089"

// ComponentTestSuite boots the whole application against a real Postgres
// (POSTGRES_URL) and a Redis started in a container, then drives it over
// HTTP. It covers the path unit tests cannot: outbox row written in the
// settlement transaction, forwarded to Redis after commit, consumed by the
// notification handler.
type ComponentTestSuite struct {
	suite.Suite

	ctx    context.Context
	cancel context.CancelFunc

	redisContainer testcontainers.Container
	db             *sqlx.DB

	notifications        atomic.Int32
	notifiedBeforeCommit atomic.Bool
	notifiedBookingID    atomic.Value
}

func TestComponent(t *testing.T) {
	if os.Getenv("POSTGRES_URL") == "" {
		t.Skip("POSTGRES_URL is not set")
	}
	suite.Run(t, new(ComponentTestSuite))
}

func (s *ComponentTestSuite) SetupSuite() {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	redisContainer, err := testcontainers.GenericContainer(s.ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:latest",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(s.T(), err)
	s.redisContainer = redisContainer

	redisPort, err := redisContainer.MappedPort(s.ctx, "6379/tcp")
	require.NoError(s.T(), err)
	redisAddr := "localhost:" + redisPort.Port()

	s.db, err = sqlx.Connect("postgres", os.Getenv("POSTGRES_URL"))
	require.NoError(s.T(), err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	ctrl := gomock.NewController(s.T())
	notifier := mocks.NewMockNotifier(ctrl)
	notifier.EXPECT().
		NotifyConfirmed(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, event *bookings.BookingConfirmed_v1) error {
			// the handler must only ever see a committed settlement
			var status string
			if err := s.db.GetContext(ctx, &status,
				"SELECT status FROM bookings WHERE id = $1", event.BookingID,
			); err != nil || status != string(bookings.StatusConfirmed) {
				s.notifiedBeforeCommit.Store(true)
			}

			s.notifiedBookingID.Store(event.BookingID)
			s.notifications.Add(1)
			return nil
		}).
		AnyTimes()

	cfg := &config.Config{
		Port:                   "8089",
		PostgresURL:            os.Getenv("POSTGRES_URL"),
		RedisURL:               redisAddr,
		GatewaySuccessRate:     100,
		GatewayProcessingDelay: 10 * time.Millisecond,
	}

	application, err := app.NewApp(
		logger,
		cfg,
		notifier,
		redis.NewClient(&redis.Options{Addr: redisAddr}),
		s.db,
		rand.New(rand.NewSource(1)),
	)
	require.NoError(s.T(), err)

	go func() {
		if err := application.Run(s.ctx); err != nil && s.ctx.Err() == nil {
			s.T().Errorf("app stopped: %v", err)
		}
	}()

	s.waitForHttpServer()
}

func (s *ComponentTestSuite) TearDownSuite() {
	s.cancel()

	if s.redisContainer != nil {
		_ = s.redisContainer.Terminate(context.Background())
	}
	if s.db != nil {
		_ = s.db.Close()
	}
}

func (s *ComponentTestSuite) TestSettlementNotifiesOnlyAfterCommit() {
	organizerID := uuid.NewString()
	customerID := uuid.NewString()

	var event struct {
		ID uuid.UUID `json:"id"`
	}
	s.doJSON(http.MethodPost, "/events", organizerID, "organizer", map[string]any{
		"title":     "Component Night",
		"starts_at": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}, http.StatusCreated, &event)

	var ticketType struct {
		ID uuid.UUID `json:"id"`
	}
	s.doJSON(http.MethodPost, fmt.Sprintf("/events/%s/ticket-types", event.ID), organizerID, "organizer", map[string]any{
		"name":     "standard",
		"price":    25,
		"quantity": 10,
	}, http.StatusCreated, &ticketType)

	var booking struct {
		ID uuid.UUID `json:"id"`
	}
	s.doJSON(http.MethodPost, fmt.Sprintf("/ticket-types/%s/bookings", ticketType.ID), customerID, "customer", map[string]any{
		"quantity": 2,
	}, http.StatusCreated, &booking)

	s.doJSON(http.MethodPost, fmt.Sprintf("/bookings/%s/payment", booking.ID), customerID, "customer", map[string]any{
		"test_mode":    true,
		"force_result": "success",
	}, http.StatusOK, nil)

	require.Eventually(
		s.T(),
		func() bool { return s.notifications.Load() >= 1 },
		5*time.Second,
		100*time.Millisecond,
		"confirmation should reach the notifier through the outbox",
	)

	assert.False(s.T(), s.notifiedBeforeCommit.Load(),
		"notifier fired before the settlement transaction was committed")
	assert.Equal(s.T(), booking.ID, s.notifiedBookingID.Load())
}

func (s *ComponentTestSuite) doJSON(method, path, actorID, role string, body map[string]any, wantStatus int, out any) {
	s.T().Helper()

	payload, err := json.Marshal(body)
	require.NoError(s.T(), err)

	req, err := http.NewRequestWithContext(s.ctx, method, httpAddr+path, bytes.NewReader(payload))
	require.NoError(s.T(), err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-ID", actorID)
	req.Header.Set("X-Actor-Role", role)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(s.T(), err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err)
	require.Equal(s.T(), wantStatus, resp.StatusCode, "unexpected response: %s", raw)

	if out != nil {
		require.NoError(s.T(), json.Unmarshal(raw, out))
	}
}

func (s *ComponentTestSuite) waitForHttpServer() {
	s.T().Helper()

	require.EventuallyWithT(
		s.T(),
		func(t *assert.CollectT) {
			resp, err := http.Get(httpAddr + "/health")
			if !assert.NoError(t, err) {
				return
			}
			defer resp.Body.Close()

			assert.Less(t, resp.StatusCode, 300, "API not ready, http status: %d", resp.StatusCode)
		},
		time.Second*15,
		time.Millisecond*50,
	)
}
