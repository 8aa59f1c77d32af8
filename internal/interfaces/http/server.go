package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"ticketing/internal/application/usecases/booking"
	"ticketing/internal/application/usecases/events"
	"ticketing/internal/application/usecases/payment"
	"ticketing/internal/logctx"
)

type Server struct {
	e    *echo.Echo
	addr string

	eventsService   *events.Usecase
	bookingsService *booking.Usecase
	paymentsService *payment.Usecase
}

func NewServer(
	e *echo.Echo,
	addr string,
	logger *logrus.Logger,
	eventsService *events.Usecase,
	bookingsService *booking.Usecase,
	paymentsService *payment.Usecase,
	routerIsRunning func() bool,
) *Server {
	srv := &Server{
		e:               e,
		addr:            addr,
		eventsService:   eventsService,
		bookingsService: bookingsService,
		paymentsService: paymentsService,
	}

	e.HTTPErrorHandler = errorHandler

	e.POST("/events", srv.CreateEventHandler, RequireActor)
	e.GET("/events", srv.ListEventsHandler)
	e.GET("/events/:event_id", srv.GetEventHandler)
	e.POST("/events/:event_id/ticket-types", srv.CreateTicketTypeHandler, RequireActor)
	e.GET("/events/:event_id/ticket-types", srv.ListTicketTypesHandler)

	e.POST("/ticket-types/:ticket_type_id/bookings", srv.CreateBookingHandler, RequireActor)
	e.GET("/bookings", srv.ListBookingsHandler, RequireActor)
	e.GET("/bookings/:booking_id", srv.GetBookingHandler, RequireActor)
	e.PUT("/bookings/:booking_id/cancel", srv.CancelBookingHandler, RequireActor)

	e.POST("/bookings/:booking_id/payment", srv.SettlePaymentHandler, RequireActor)
	e.GET("/payments/:payment_id", srv.GetPaymentHandler, RequireActor)
	e.POST("/payments/:payment_id/refund", srv.RefundPaymentHandler, RequireActor)

	e.GET("/health", func(c echo.Context) error {
		if !routerIsRunning() {
			return c.String(http.StatusServiceUnavailable, "router is not running")
		}
		return c.String(http.StatusOK, "ok")
	})

	// logging middleware, seeds the request context so handlers and
	// usecases log through the injected logger
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := logctx.ToContext(
				c.Request().Context(),
				logger.WithField("path", c.Request().URL.Path),
			)
			c.SetRequest(c.Request().WithContext(ctx))

			logctx.FromContext(ctx).Info("Handling a request")

			err := next(c)

			if err != nil {
				logctx.FromContext(ctx).
					WithField("error", err).
					Error("Request handling error")
			}

			return err
		}
	})
	return srv
}

func (s *Server) Start() error {
	err := s.e.Start(s.addr)
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
