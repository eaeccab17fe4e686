package callback

import (
	"context"

	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// TransactionRepo persists Pesapal transactions
type TransactionRepo interface {
	// EnsureSchema creates the transactions table if it does not exist.
	// Runs once at startup, never on the request path.
	EnsureSchema(ctx context.Context) error
	// UpsertTransaction atomically inserts the transaction or overwrites
	// the existing row with the same id
	UpsertTransaction(ctx context.Context, txn *models.Transaction) error
}
