package usecase

import (
	"context"

	"github.com/mkamau/pesapal-callback/internal/pkg/logger"
	"github.com/mkamau/pesapal-callback/internal/pkg/models"
	"github.com/mkamau/pesapal-callback/internal/utils"
	"github.com/mkamau/pesapal-callback/services/callback"
)

// CallbackUC implements the callback.CallbackUseCase interface
type CallbackUC struct {
	cfg  *models.Config
	repo callback.TransactionRepo
	log  logger.Logger
}

// NewCallbackUC creates a new callback use case
func NewCallbackUC(cfg *models.Config, repo callback.TransactionRepo, log logger.Logger) callback.CallbackUseCase {
	return &CallbackUC{
		cfg:  cfg,
		repo: repo,
		log:  log,
	}
}

// ProcessCallback validates the payload, normalizes its transaction_date and
// persists the transaction idempotently. Validation failures return before
// any database interaction.
func (uc *CallbackUC) ProcessCallback(ctx context.Context, payload models.CallbackPayload) (*models.Transaction, error) {
	if missing := ValidatePayload(payload); len(missing) > 0 {
		uc.log.Error("Missing fields in payload", logger.Strings("missing_fields", missing))
		return nil, &callback.SchemaError{MissingFields: missing}
	}

	rawDate, _ := payload["transaction_date"].(string)
	transactionDate, err := utils.NormalizeTransactionDate(rawDate)
	if err != nil {
		uc.log.Error("Invalid transaction_date", logger.Err(err))
		return nil, &callback.ValidationError{
			Field:  "transaction_date",
			Reason: "missing or unparsable",
			Err:    err,
		}
	}

	txn, err := models.TransactionFromPayload(payload)
	if err != nil {
		uc.log.Error("Uncoercible payload value", logger.Err(err))
		return nil, &callback.ValidationError{
			Field:  "payload",
			Reason: "value coercion failed",
			Err:    err,
		}
	}
	txn.TransactionDate = transactionDate
	txn.ReceivedAt = models.NowEAT()

	if err := uc.repo.UpsertTransaction(ctx, txn); err != nil {
		return nil, err
	}

	uc.log.Info("Transaction saved successfully",
		logger.Int64("transaction_id", txn.ID),
		logger.String("merchant_reference", txn.MerchantReference))

	return txn, nil
}
