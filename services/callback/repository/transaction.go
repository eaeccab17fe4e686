package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/mkamau/pesapal-callback/internal/pkg/database"
	"github.com/mkamau/pesapal-callback/internal/pkg/logger"
	"github.com/mkamau/pesapal-callback/internal/pkg/models"
	"github.com/mkamau/pesapal-callback/internal/pkg/retry"
	"github.com/mkamau/pesapal-callback/services/callback"
)

// TransactionRepo implements the callback.TransactionRepo interface. Each
// write acquires its own connection, uses it inside one database
// transaction and releases it; the database's conflict resolution is the
// only synchronization point between concurrent deliveries.
type TransactionRepo struct {
	cfg     *models.Config
	backend database.Backend
	retrier *retry.Retrier
	log     logger.Logger
}

// NewTransactionRepo creates a new transaction repository
func NewTransactionRepo(cfg *models.Config, backend database.Backend, log logger.Logger) callback.TransactionRepo {
	retryCfg := retry.Config{
		MaxRetries: cfg.Retry.MaxRetries,
		BaseDelay:  time.Duration(cfg.Retry.BaseDelayMs) * time.Millisecond,
		MaxDelay:   time.Duration(cfg.Retry.MaxDelayMs) * time.Millisecond,
		Multiplier: cfg.Retry.Multiplier,
		Jitter:     cfg.Retry.Jitter,
	}

	return &TransactionRepo{
		cfg:     cfg,
		backend: backend,
		retrier: retry.New(retryCfg, log),
		log:     log,
	}
}

// EnsureSchema creates the pesapal_transactions table if it does not exist
func (r *TransactionRepo) EnsureSchema(ctx context.Context) error {
	db, err := r.connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, r.backend.CreateTableStmt()); err != nil {
		return fmt.Errorf("failed to create transactions table: %w", err)
	}

	return nil
}

// UpsertTransaction writes the transaction atomically: insert a new row, or
// overwrite every field of the existing row sharing the same id. Rolls back
// and releases the connection on any failure.
func (r *TransactionRepo) UpsertTransaction(ctx context.Context, txn *models.Transaction) (err error) {
	db, err := r.connect(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx, r.backend.UpsertStmt(),
		txn.ID,
		txn.FirstName,
		txn.LastName,
		txn.Phone,
		txn.Amount,
		txn.PaymentOption,
		txn.TransactionDate,
		txn.Currency,
		txn.MerchantReference,
		txn.ConfirmationCode,
		txn.ReceivedAt,
	)
	if err != nil {
		if r.backend.IsIntegrityViolation(err) {
			return &callback.IntegrityError{Err: err}
		}
		return fmt.Errorf("failed to upsert transaction %d: %w", txn.ID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// connect acquires a verified connection with exponential-backoff retry.
// After the retry budget is exhausted it reports a ConnectionError wrapping
// the last underlying failure.
func (r *TransactionRepo) connect(ctx context.Context) (*sqlx.DB, error) {
	var db *sqlx.DB
	var lastErr error
	attempts := 0

	err := r.retrier.Execute(ctx, func(ctx context.Context) error {
		attempts++
		conn, connErr := r.backend.Connect(ctx)
		if connErr != nil {
			lastErr = connErr
			return connErr
		}
		db = conn
		return nil
	})
	if err != nil {
		if lastErr == nil {
			lastErr = err
		}
		r.log.Error("Database connection retries exhausted",
			logger.String("backend", r.backend.Name()),
			logger.String("host", r.cfg.Database.Host),
			logger.String("database", r.cfg.Database.Database),
			logger.Int("attempts", attempts))
		return nil, &callback.ConnectionError{
			Host:     r.cfg.Database.Host,
			Database: r.cfg.Database.Database,
			Attempts: attempts,
			Err:      lastErr,
		}
	}

	return db, nil
}
