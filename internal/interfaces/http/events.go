package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type CreateEventRequest struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"starts_at"`
}

func (s *Server) CreateEventHandler(c echo.Context) error {
	var request CreateEventRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	e, err := s.eventsService.CreateEvent(c.Request().Context(), actorFromContext(c), request.Title, request.StartsAt)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, e)
}

func (s *Server) ListEventsHandler(c echo.Context) error {
	list, err := s.eventsService.ListEvents(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}

func (s *Server) GetEventHandler(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "event_id is not a valid UUID",
		})
	}

	e, err := s.eventsService.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, e)
}

type CreateTicketTypeRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (s *Server) CreateTicketTypeHandler(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "event_id is not a valid UUID",
		})
	}

	var request CreateTicketTypeRequest
	if err := c.Bind(&request); err != nil {
		return err
	}

	tt, err := s.eventsService.CreateTicketType(c.Request().Context(), actorFromContext(c),
		eventID, request.Name, request.Price, request.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, tt)
}

func (s *Server) ListTicketTypesHandler(c echo.Context) error {
	eventID, err := uuid.Parse(c.Param("event_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION",
			Message: "event_id is not a valid UUID",
		})
	}

	list, err := s.eventsService.ListTicketTypes(c.Request().Context(), eventID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, list)
}
