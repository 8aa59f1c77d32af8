package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketing/internal/domain/actors"
	"ticketing/internal/domain/bookings"
	"ticketing/internal/domain/events"
	"ticketing/internal/domain/payments"
	"ticketing/internal/domain/tickets"
)

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		err    error
		kind   string
		status int
	}{
		{bookings.ErrBookingNotFound, "NOT_FOUND", http.StatusNotFound},
		{tickets.ErrTicketTypeNotFound, "NOT_FOUND", http.StatusNotFound},
		{events.ErrEventNotFound, "NOT_FOUND", http.StatusNotFound},
		{bookings.ErrInvalidQuantity, "VALIDATION", http.StatusUnprocessableEntity},
		{bookings.ErrDuplicateBooking, "DUPLICATE_BOOKING", http.StatusConflict},
		{tickets.ErrInsufficientInventory, "INSUFFICIENT_INVENTORY", http.StatusBadRequest},
		{events.ErrEventPast, "EVENT_PAST", http.StatusBadRequest},
		{payments.ErrPaymentExists, "PAYMENT_EXISTS", http.StatusBadRequest},
		{payments.ErrInvalidState, "INVALID_STATE", http.StatusBadRequest},
		{bookings.ErrAlreadyCancelled, "ALREADY_CANCELLED", http.StatusBadRequest},
		{bookings.ErrPaidBooking, "PAID_BOOKING", http.StatusBadRequest},
		{payments.ErrNotSuccessfulPayment, "NOT_SUCCESSFUL_PAYMENT", http.StatusBadRequest},
		{actors.ErrForbidden, "FORBIDDEN", http.StatusForbidden},
		{errors.New("database exploded"), "INTERNAL", http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.kind+" "+tc.err.Error(), func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			errorHandler(tc.err, c)

			assert.Equal(t, tc.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.kind, body.Error)
		})
	}

	t.Run("wrapped errors still map", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		errorHandler(fmt.Errorf("creating booking: %w", bookings.ErrDuplicateBooking), c)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestRequireActor(t *testing.T) {
	handler := RequireActor(func(c echo.Context) error {
		return c.JSON(http.StatusOK, actorFromContext(c))
	})

	do := func(id, role string) *httptest.ResponseRecorder {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if id != "" {
			req.Header.Set("X-Actor-ID", id)
		}
		if role != "" {
			req.Header.Set("X-Actor-Role", role)
		}
		rec := httptest.NewRecorder()
		require.NoError(t, handler(e.NewContext(req, rec)))
		return rec
	}

	t.Run("valid identity reaches the handler", func(t *testing.T) {
		id := uuid.New()
		rec := do(id.String(), "customer")

		assert.Equal(t, http.StatusOK, rec.Code)

		var actor actors.Actor
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &actor))
		assert.Equal(t, id, actor.ID)
		assert.Equal(t, actors.RoleCustomer, actor.Role)
	})

	t.Run("missing actor id", func(t *testing.T) {
		rec := do("", "customer")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed actor id", func(t *testing.T) {
		rec := do("not-a-uuid", "customer")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		rec := do(uuid.NewString(), "superuser")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing role", func(t *testing.T) {
		rec := do(uuid.NewString(), "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestLoggingUsesInjectedLogger(t *testing.T) {
	logger, hook := logrustest.NewNullLogger()

	e := echo.New()
	NewServer(e, ":0", logger, nil, nil, nil, func() bool { return true })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotEmpty(t, hook.Entries, "request logs should reach the injected logger")
	entry := hook.Entries[0]
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "Handling a request", entry.Message)
	assert.Equal(t, "/health", entry.Data["path"])
}
