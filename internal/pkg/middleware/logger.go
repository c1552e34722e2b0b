package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/adhiwira/kapten/internal/pkg/logger"
)

// LoggerMiddleware creates a middleware for request logging
func LoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status

			if raw != "" {
				path = path + "?" + raw
			}

			captainID := "anonymous"
			if cid := c.Get("captain_id"); cid != nil {
				captainID = fmt.Sprintf("%v", cid)
			}

			fields := []logger.Field{
				logger.Int("status", statusCode),
				logger.Duration("latency", latency),
				logger.String("client_ip", c.RealIP()),
				logger.String("method", c.Request().Method),
				logger.String("path", path),
				logger.String("captain_id", captainID),
				logger.String("request_id", c.Response().Header().Get("X-Request-ID")),
			}

			switch {
			case statusCode >= 500:
				logger.Error("Server error", fields...)
			case statusCode >= 400:
				logger.Warn("Client error", fields...)
			default:
				logger.Info("Request processed", fields...)
			}

			return err
		}
	}
}
