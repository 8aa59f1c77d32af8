package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"ticketing/internal/domain/actors"
)

const actorContextKey = "actor"

// RequireActor reads the identity headers set by the upstream authorization
// layer and stores the actor on the request context. Requests without a
// valid identity never reach the handlers.
func RequireActor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawID := c.Request().Header.Get("X-Actor-ID")
		if rawID == "" {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "UNAUTHENTICATED",
				Message: "X-Actor-ID header is required",
			})
		}

		id, err := uuid.Parse(rawID)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "UNAUTHENTICATED",
				Message: "X-Actor-ID is not a valid UUID",
			})
		}

		role := actors.Role(c.Request().Header.Get("X-Actor-Role"))
		if !role.Valid() {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error:   "UNAUTHENTICATED",
				Message: "X-Actor-Role must be customer, organizer or admin",
			})
		}

		c.Set(actorContextKey, actors.Actor{ID: id, Role: role})
		return next(c)
	}
}

func actorFromContext(c echo.Context) actors.Actor {
	actor, _ := c.Get(actorContextKey).(actors.Actor)
	return actor
}
