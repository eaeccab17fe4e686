package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	e := echo.New()
	RegisterHealthEndpoints(e, "pesapal-callback-endpoint")

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var status Status
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "pesapal-callback-endpoint", status.Service)

	ts, err := time.Parse(time.RFC3339, status.Timestamp)
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 3*60*60, offset)
}
