package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ticketing/internal/domain/actors"
	"ticketing/internal/domain/bookings"
	"ticketing/internal/domain/events"
	"ticketing/internal/domain/payments"
	"ticketing/internal/domain/tickets"
)

// ErrorResponse is the single error shape every endpoint returns. Error is a
// stable kind discriminator clients can switch on; Message is for humans.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

var errorKinds = []struct {
	err    error
	kind   string
	status int
}{
	{bookings.ErrBookingNotFound, "NOT_FOUND", http.StatusNotFound},
	{payments.ErrPaymentNotFound, "NOT_FOUND", http.StatusNotFound},
	{tickets.ErrTicketTypeNotFound, "NOT_FOUND", http.StatusNotFound},
	{events.ErrEventNotFound, "NOT_FOUND", http.StatusNotFound},
	{bookings.ErrInvalidQuantity, "VALIDATION", http.StatusUnprocessableEntity},
	{tickets.ErrInvalidName, "VALIDATION", http.StatusUnprocessableEntity},
	{tickets.ErrInvalidPrice, "VALIDATION", http.StatusUnprocessableEntity},
	{tickets.ErrInvalidQuantity, "VALIDATION", http.StatusUnprocessableEntity},
	{events.ErrInvalidTitle, "VALIDATION", http.StatusUnprocessableEntity},
	{bookings.ErrDuplicateBooking, "DUPLICATE_BOOKING", http.StatusConflict},
	{tickets.ErrInsufficientInventory, "INSUFFICIENT_INVENTORY", http.StatusBadRequest},
	{events.ErrEventPast, "EVENT_PAST", http.StatusBadRequest},
	{payments.ErrPaymentExists, "PAYMENT_EXISTS", http.StatusBadRequest},
	{payments.ErrInvalidState, "INVALID_STATE", http.StatusBadRequest},
	{bookings.ErrAlreadyCancelled, "ALREADY_CANCELLED", http.StatusBadRequest},
	{bookings.ErrPaidBooking, "PAID_BOOKING", http.StatusBadRequest},
	{payments.ErrNotSuccessfulPayment, "NOT_SUCCESSFUL_PAYMENT", http.StatusBadRequest},
	{actors.ErrForbidden, "FORBIDDEN", http.StatusForbidden},
}

func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			_ = c.JSON(k.status, ErrorResponse{
				Error:   k.kind,
				Message: k.err.Error(),
			})
			return
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = c.JSON(httpErr.Code, ErrorResponse{
			Error:   "ERROR",
			Message: http.StatusText(httpErr.Code),
		})
		return
	}

	_ = c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "INTERNAL",
		Message: "internal server error",
	})
}
