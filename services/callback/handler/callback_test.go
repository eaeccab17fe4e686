package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamau/pesapal-callback/internal/pkg/logger"
	"github.com/mkamau/pesapal-callback/internal/pkg/models"
	"github.com/mkamau/pesapal-callback/services/callback"
	"github.com/mkamau/pesapal-callback/services/callback/mocks"
)

const validBody = `{
	"id": 12345,
	"first_name": "John",
	"last_name": "Doe",
	"phone": "254700000000",
	"amount": 100.00,
	"payment_option": "MPESA",
	"transaction_date": "2024-06-01T09:00:00Z",
	"currency": "KES",
	"merchant_reference": "INV-001",
	"confirmation_code": "QWE123RTY"
}`

func setupHandlerTest(t *testing.T) (*CallbackHandler, *mocks.MockCallbackUseCase) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockCallbackUseCase(ctrl)
	h := NewCallbackHandler(mockUC, logger.NewNopLogger())
	return h, mockUC
}

func doCallback(h *CallbackHandler, contentType, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/pesapal-callback", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set(echo.HeaderContentType, contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = h.PesapalCallback(c)
	return rec
}

func TestPesapalCallbackSuccess(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		ProcessCallback(gomock.Any(), gomock.Any()).
		Return(&models.Transaction{ID: 12345}, nil)

	rec := doCallback(h, echo.MIMEApplicationJSON, validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"200","message":"Ok"}`, rec.Body.String())
}

func TestPesapalCallbackWrongContentType(t *testing.T) {
	h, _ := setupHandlerTest(t)

	rec := doCallback(h, echo.MIMETextPlain, validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid content type")
}

func TestPesapalCallbackContentTypeWithCharset(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		ProcessCallback(gomock.Any(), gomock.Any()).
		Return(&models.Transaction{ID: 1}, nil)

	rec := doCallback(h, "application/json; charset=utf-8", validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPesapalCallbackMalformedJSON(t *testing.T) {
	h, _ := setupHandlerTest(t)

	rec := doCallback(h, echo.MIMEApplicationJSON, `{"id": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON payload")
}

func TestPesapalCallbackMissingFields(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		ProcessCallback(gomock.Any(), gomock.Any()).
		Return(nil, &callback.SchemaError{MissingFields: []string{"amount", "currency"}})

	rec := doCallback(h, echo.MIMEApplicationJSON, `{"id": 1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing fields: [amount, currency]")
}

func TestPesapalCallbackValidationError(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	mockUC.EXPECT().
		ProcessCallback(gomock.Any(), gomock.Any()).
		Return(nil, &callback.ValidationError{Field: "transaction_date", Reason: "missing or unparsable"})

	rec := doCallback(h, echo.MIMEApplicationJSON, validBody)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "transaction_date")
}

func TestPesapalCallbackStorageFailure(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	testCases := []struct {
		name string
		err  error
	}{
		{
			name: "connection retries exhausted",
			err: &callback.ConnectionError{
				Host: "db.internal", Database: "pesapal", Attempts: 4,
				Err: errors.New("connection refused"),
			},
		},
		{
			name: "integrity violation",
			err:  &callback.IntegrityError{Err: errors.New("constraint violated")},
		},
		{
			name: "unexpected failure",
			err:  errors.New("boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockUC.EXPECT().
				ProcessCallback(gomock.Any(), gomock.Any()).
				Return(nil, tc.err)

			rec := doCallback(h, echo.MIMEApplicationJSON, validBody)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			assert.JSONEq(t, `{"status":"500","message":"Internal server error"}`, rec.Body.String())
		})
	}
}

func TestPesapalCallbackPreservesNumberPrecision(t *testing.T) {
	h, mockUC := setupHandlerTest(t)

	var got models.CallbackPayload
	mockUC.EXPECT().
		ProcessCallback(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, payload models.CallbackPayload) (*models.Transaction, error) {
			got = payload
			return &models.Transaction{}, nil
		})

	body := strings.Replace(validBody, "12345", "9007199254740993", 1)
	rec := doCallback(h, echo.MIMEApplicationJSON, body)

	require.Equal(t, http.StatusOK, rec.Code)
	num, ok := got["id"].(json.Number)
	require.True(t, ok, "id should decode as json.Number")
	assert.Equal(t, "9007199254740993", num.String())
}

func TestHomeServesHTML(t *testing.T) {
	h, _ := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Home(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Pesapal Wireless POS")
}

func TestHomeServesJSONWhenAsked(t *testing.T) {
	h, _ := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Home(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"running"`)
}

func TestFavicon(t *testing.T) {
	h, _ := setupHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/favicon.ico", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Favicon(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
