package health

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// Status is the health endpoint response
type Status struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Service   string `json:"service"`
}

// NewHandler creates a handler for the health endpoint
func NewHandler(serviceName string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, Status{
			Status:    "healthy",
			Timestamp: models.FormatTime(models.NowEAT()),
			Service:   serviceName,
		})
	}
}

// RegisterHealthEndpoints registers the health route
func RegisterHealthEndpoints(e *echo.Echo, serviceName string) {
	e.GET("/health", NewHandler(serviceName))
}
