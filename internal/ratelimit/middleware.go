package ratelimit

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/volobus/internal/models"
)

// Middleware rejects requests from a client whose bucket is empty.
func Middleware(l *ClientLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			client := c.RealIP()
			if !l.Allow(client) {
				log.Printf("[RATELIMIT] action=reject client=%s path=%s", client, c.Path())
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests, slow down",
					Code:    http.StatusTooManyRequests,
				})
			}
			return next(c)
		}
	}
}
