package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"

	"github.com/mkamau/pesapal-callback/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from panics anywhere below the boundary,
// logs them with full request context and answers with a generic 500. A
// panicking request must never take the process down or go unlogged.
func PanicRecoveryMiddleware(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, log)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, log logger.Logger) {
	log.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", c.Request().Method),
		logger.String("path", c.Request().URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", c.Response().Header().Get("X-Request-ID")),
	)

	if !c.Response().Committed {
		_ = c.JSON(http.StatusInternalServerError, map[string]string{
			"status":  "500",
			"message": "Internal server error",
		})
	}
}
