package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

const homePage = `<!DOCTYPE html>
<html>
<head>
    <title>Pesapal Wireless POS - Callback Service</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: 'Inter', -apple-system, BlinkMacSystemFont, sans-serif;
            background: #0f172a;
            color: #e2e8f0;
            min-height: 100vh;
            display: flex;
            align-items: center;
            justify-content: center;
        }
        .card {
            background: linear-gradient(145deg, #1e293b, #334155);
            padding: 2rem;
            border-radius: 20px;
            box-shadow: 0 25px 50px rgba(0, 0, 0, 0.3);
            text-align: center;
            max-width: 400px;
            width: 90%;
        }
        h1 {
            font-size: 1.8rem;
            font-weight: 700;
            margin-bottom: 0.5rem;
            color: #f1f5f9;
        }
        .subtitle {
            color: #94a3b8;
            margin-bottom: 2rem;
        }
        .status-indicator {
            display: inline-flex;
            align-items: center;
            gap: 0.5rem;
            background: #10b981;
            color: white;
            padding: 0.5rem 1rem;
            border-radius: 50px;
            font-weight: 600;
        }
        .dot {
            width: 8px;
            height: 8px;
            background: white;
            border-radius: 50%;
            animation: pulse 1s ease-in-out infinite;
        }
        @keyframes pulse {
            0%, 100% { opacity: 1; }
            50% { opacity: 0.5; }
        }
        .info {
            margin-top: 2rem;
            padding-top: 2rem;
            border-top: 1px solid #334155;
            font-size: 0.9rem;
            color: #64748b;
        }
    </style>
</head>
<body>
    <div class="card">
        <h1>Pesapal Wireless POS</h1>
        <p class="subtitle">Callback Endpoint Listener</p>
        <div class="status-indicator">
            <div class="dot"></div>
            Service Running
        </div>
        <div class="info">
            <p>Version: 1.0.0</p>
        </div>
    </div>
</body>
</html>`

// Home serves the status page: JSON for API clients, HTML for browsers
func (h *CallbackHandler) Home(c echo.Context) error {
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, map[string]string{
			"service":   "Pesapal Wireless POS Callback Endpoint",
			"status":    "running",
			"timestamp": models.FormatTime(models.NowEAT()),
			"version":   "1.0.0",
		})
	}

	return c.HTML(http.StatusOK, homePage)
}

// Favicon avoids 404 noise from browsers
func (h *CallbackHandler) Favicon(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}
