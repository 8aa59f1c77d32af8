package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ticketing/internal/domain/bookings"
	"ticketing/internal/domain/payments"
	"ticketing/internal/domain/tickets"
	"ticketing/internal/infrastructure/gateway"
)

type SettlePaymentRequest struct {
	TestMode    bool   `json:"test_mode"`
	ForceResult string `json:"force_result"`
}

type SettlePaymentResponse struct {
	Payment *payments.Payment `json:"payment"`
	Booking *bookings.Booking `json:"booking"`
}

// SettlePaymentHandler resolves a pending booking through the payment
// gateway. A declined charge is a settled outcome, not a server error: the
// booking is released and the response is 402 with the failed payment.
func (s *Server) SettlePaymentHandler(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "booking_id is not a valid UUID",
		})
	}

	var request SettlePaymentRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	p, b, err := s.paymentsService.Settle(c.Request().Context(), actorFromContext(c), bookingID, gateway.Input{
		TestMode:    request.TestMode,
		ForceResult: request.ForceResult,
	})
	if err != nil {
		return err
	}

	status := http.StatusOK
	if !p.IsSuccess() {
		status = http.StatusPaymentRequired
	}

	return c.JSON(status, SettlePaymentResponse{
		Payment: p,
		Booking: b,
	})
}

type PaymentStatusResponse struct {
	Payment    payments.Payment   `json:"payment"`
	Booking    bookings.Booking   `json:"booking"`
	TicketType tickets.TicketType `json:"ticket_type"`
	EventTitle string             `json:"event_title"`
}

func (s *Server) GetPaymentHandler(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("payment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "payment_id is not a valid UUID",
		})
	}

	status, err := s.paymentsService.Status(c.Request().Context(), actorFromContext(c), paymentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, PaymentStatusResponse{
		Payment:    status.Payment,
		Booking:    status.Booking,
		TicketType: status.TicketType,
		EventTitle: status.EventTitle,
	})
}

func (s *Server) RefundPaymentHandler(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("payment_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "payment_id is not a valid UUID",
		})
	}

	p, b, err := s.paymentsService.Refund(c.Request().Context(), actorFromContext(c), paymentID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, SettlePaymentResponse{
		Payment: p,
		Booking: b,
	})
}
