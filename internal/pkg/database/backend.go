package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// Backend is the storage capability set used by the transaction writer.
// Everything driver-specific (connection strings, upsert dialect, error
// classification) lives behind this interface; the core pipeline never
// branches on backend identity.
type Backend interface {
	// Name returns the backend identifier ("postgres" or "sqlserver")
	Name() string
	// Connect opens and verifies a single database handle. The caller owns
	// the handle and must close it.
	Connect(ctx context.Context) (*sqlx.DB, error)
	// CreateTableStmt returns the create-if-absent DDL for the
	// pesapal_transactions table
	CreateTableStmt() string
	// UpsertStmt returns the atomic insert-or-update statement. Both
	// dialects bind the same eleven ordinal arguments: id, first_name,
	// last_name, phone, amount, payment_option, transaction_date, currency,
	// merchant_reference, confirmation_code, received_at.
	UpsertStmt() string
	// IsIntegrityViolation reports whether err is a constraint violation
	IsIntegrityViolation(err error) bool
}

// New selects a backend variant from configuration at startup
func New(config models.DatabaseConfig) (Backend, error) {
	switch strings.ToLower(config.Driver) {
	case "postgres", "":
		return NewPostgresBackend(config), nil
	case "sqlserver", "mssql":
		return NewSQLServerBackend(config), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", config.Driver)
	}
}
