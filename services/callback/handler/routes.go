package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the callback routes
func (h *CallbackHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/pesapal-callback", h.PesapalCallback)
	e.GET("/", h.Home)
	e.GET("/favicon.ico", h.Favicon)
}
