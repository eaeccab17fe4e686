package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mkamau/pesapal-callback/internal/pkg/logger"
	"github.com/mkamau/pesapal-callback/internal/pkg/models"
	"github.com/mkamau/pesapal-callback/services/callback"
)

// Response is the wire shape of every callback endpoint reply
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CallbackHandler handles HTTP requests for Pesapal callbacks
type CallbackHandler struct {
	callbackUC callback.CallbackUseCase
	log        logger.Logger
}

// NewCallbackHandler creates a new callback handler
func NewCallbackHandler(callbackUC callback.CallbackUseCase, log logger.Logger) *CallbackHandler {
	return &CallbackHandler{
		callbackUC: callbackUC,
		log:        log,
	}
}

// PesapalCallback receives a payment-completion notification and maps the
// ingestion outcome to a status code: schema and validation failures are
// client errors, storage failures are server errors.
func (h *CallbackHandler) PesapalCallback(c echo.Context) error {
	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		h.log.Warn("Non-JSON request received", logger.String("content_type", contentType))
		return c.JSON(http.StatusBadRequest, Response{
			Status:  "400",
			Message: "Invalid content type. Expecting application/json",
		})
	}

	var payload models.CallbackPayload
	decoder := json.NewDecoder(c.Request().Body)
	// json.Number keeps transaction ids above 2^53 and decimal amounts exact
	decoder.UseNumber()
	if err := decoder.Decode(&payload); err != nil {
		h.log.Warn("Malformed JSON body", logger.Err(err))
		return c.JSON(http.StatusBadRequest, Response{
			Status:  "400",
			Message: "Invalid JSON payload",
		})
	}

	h.log.Info("Transaction received",
		logger.String("remote_addr", c.RealIP()),
		logger.Any("payload", payload))

	txn, err := h.callbackUC.ProcessCallback(c.Request().Context(), payload)
	if err != nil {
		return h.errorResponse(c, err)
	}

	h.log.Info("Transaction saved successfully", logger.Int64("transaction_id", txn.ID))
	return c.JSON(http.StatusOK, Response{Status: "200", Message: "Ok"})
}

func (h *CallbackHandler) errorResponse(c echo.Context, err error) error {
	var schemaErr *callback.SchemaError
	if errors.As(err, &schemaErr) {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  "400",
			Message: "Missing fields: [" + strings.Join(schemaErr.MissingFields, ", ") + "]",
		})
	}

	var validationErr *callback.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, Response{
			Status:  "400",
			Message: validationErr.Error(),
		})
	}

	h.log.Error("Error saving transaction to DB", logger.Err(err))
	return c.JSON(http.StatusInternalServerError, Response{
		Status:  "500",
		Message: "Internal server error",
	})
}
