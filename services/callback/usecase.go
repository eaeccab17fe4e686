package callback

import (
	"context"

	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// CallbackUseCase ingests one payment callback: validate, normalize, persist
type CallbackUseCase interface {
	ProcessCallback(ctx context.Context, payload models.CallbackPayload) (*models.Transaction, error)
}
