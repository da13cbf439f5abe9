package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/volobus/internal/models"
	"github.com/dharmasatrya/volobus/internal/session"
)

// HealthHandler reports ok while the session store answers.
func HealthHandler(store session.Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
				Error:   "store_unavailable",
				Message: err.Error(),
				Code:    http.StatusServiceUnavailable,
			})
		}

		return c.JSON(http.StatusOK, map[string]string{
			"status": "ok",
		})
	}
}
