package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/jmoiron/sqlx"

	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// PostgresBackend connects over the pgx stdlib driver
type PostgresBackend struct {
	config models.DatabaseConfig
}

// NewPostgresBackend creates a PostgreSQL storage backend
func NewPostgresBackend(config models.DatabaseConfig) *PostgresBackend {
	return &PostgresBackend{config: config}
}

// Name returns the backend identifier
func (b *PostgresBackend) Name() string {
	return "postgres"
}

// Connect opens and pings a PostgreSQL handle
func (b *PostgresBackend) Connect(ctx context.Context) (*sqlx.DB, error) {
	sslMode := b.config.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	connString := fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		b.config.Username,
		b.config.Password,
		b.config.Host,
		b.config.Port,
		b.config.Database,
		sslMode,
	)

	db, err := sqlx.Open("pgx", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, b.connectTimeout())
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return db, nil
}

func (b *PostgresBackend) connectTimeout() time.Duration {
	if b.config.ConnectTimeout > 0 {
		return time.Duration(b.config.ConnectTimeout) * time.Second
	}
	return 10 * time.Second
}

// CreateTableStmt returns the create-if-absent DDL
func (b *PostgresBackend) CreateTableStmt() string {
	return `
		CREATE TABLE IF NOT EXISTS pesapal_transactions (
			id BIGINT PRIMARY KEY,
			first_name VARCHAR(255),
			last_name VARCHAR(255),
			phone VARCHAR(20),
			amount DECIMAL(10, 2),
			payment_option VARCHAR(100),
			transaction_date TIMESTAMP,
			currency VARCHAR(10),
			merchant_reference VARCHAR(255),
			confirmation_code VARCHAR(255),
			received_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`
}

// UpsertStmt returns the INSERT ... ON CONFLICT statement. The conflict
// target is the primary key, so concurrent redeliveries of the same id
// serialize inside the database.
func (b *PostgresBackend) UpsertStmt() string {
	return `
		INSERT INTO pesapal_transactions (
			id, first_name, last_name, phone, amount, payment_option,
			transaction_date, currency, merchant_reference, confirmation_code,
			received_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			phone = EXCLUDED.phone,
			amount = EXCLUDED.amount,
			payment_option = EXCLUDED.payment_option,
			transaction_date = EXCLUDED.transaction_date,
			currency = EXCLUDED.currency,
			merchant_reference = EXCLUDED.merchant_reference,
			confirmation_code = EXCLUDED.confirmation_code,
			received_at = EXCLUDED.received_at
	`
}

// IsIntegrityViolation reports whether err carries a SQLSTATE class 23
// code (integrity constraint violation)
func (b *PostgresBackend) IsIntegrityViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, "23")
	}
	return false
}
