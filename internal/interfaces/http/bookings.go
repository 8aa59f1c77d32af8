package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CreateBookingRequest struct {
	Quantity int `json:"quantity"`
}

func (s *Server) CreateBookingHandler(c echo.Context) error {
	ticketTypeID, err := uuid.Parse(c.Param("ticket_type_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "ticket_type_id is not a valid UUID",
		})
	}

	var request CreateBookingRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	b, err := s.bookingsService.Create(c.Request().Context(), actorFromContext(c), ticketTypeID, request.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, b)
}

func (s *Server) ListBookingsHandler(c echo.Context) error {
	list, err := s.bookingsService.ListByCustomer(c.Request().Context(), actorFromContext(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

func (s *Server) GetBookingHandler(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "booking_id is not a valid UUID",
		})
	}

	b, err := s.bookingsService.Get(c.Request().Context(), actorFromContext(c), bookingID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b)
}

func (s *Server) CancelBookingHandler(c echo.Context) error {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "booking_id is not a valid UUID",
		})
	}

	b, err := s.bookingsService.Cancel(c.Request().Context(), actorFromContext(c), bookingID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, b)
}
