package logger

import (
	"time"

	"github.com/labstack/echo/v4"
)

// EchoMiddleware creates request-logging middleware for Echo
func EchoMiddleware(log *ZapLogger) echo.MiddlewareFunc {
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

			fields := []Field{
				Int("status", statusCode),
				String("method", c.Request().Method),
				String("path", path),
				String("client_ip", c.RealIP()),
				String("request_id", c.Response().Header().Get("X-Request-ID")),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
			}

			switch {
			case statusCode >= 500:
				log.Error("Server error", fields...)
			case statusCode >= 400:
				log.Warn("Client error", fields...)
			default:
				log.Info("Request processed", fields...)
			}

			return err
		}
	}
}
