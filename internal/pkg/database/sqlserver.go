package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	mssql "github.com/denisenkom/go-mssqldb"
	"github.com/jmoiron/sqlx"

	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// SQLServerBackend connects over the go-mssqldb driver
type SQLServerBackend struct {
	config models.DatabaseConfig
}

// NewSQLServerBackend creates a SQL Server storage backend
func NewSQLServerBackend(config models.DatabaseConfig) *SQLServerBackend {
	return &SQLServerBackend{config: config}
}

// Name returns the backend identifier
func (b *SQLServerBackend) Name() string {
	return "sqlserver"
}

// Connect opens and pings a SQL Server handle
func (b *SQLServerBackend) Connect(ctx context.Context) (*sqlx.DB, error) {
	query := url.Values{}
	query.Add("database", b.config.Database)

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(b.config.Username, b.config.Password),
		Host:     fmt.Sprintf("%s:%d", b.config.Host, b.config.Port),
		RawQuery: query.Encode(),
	}

	db, err := sqlx.Open("sqlserver", u.String())
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlserver connection: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, b.connectTimeout())
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping sqlserver: %w", err)
	}

	return db, nil
}

func (b *SQLServerBackend) connectTimeout() time.Duration {
	if b.config.ConnectTimeout > 0 {
		return time.Duration(b.config.ConnectTimeout) * time.Second
	}
	return 10 * time.Second
}

// CreateTableStmt returns the create-if-absent DDL
func (b *SQLServerBackend) CreateTableStmt() string {
	return `
		IF NOT EXISTS (SELECT * FROM sysobjects WHERE name='pesapal_transactions' AND xtype='U')
		CREATE TABLE pesapal_transactions (
			id BIGINT PRIMARY KEY,
			first_name NVARCHAR(255),
			last_name NVARCHAR(255),
			phone NVARCHAR(20),
			amount DECIMAL(10, 2),
			payment_option NVARCHAR(100),
			transaction_date DATETIME2,
			currency NVARCHAR(10),
			merchant_reference NVARCHAR(255),
			confirmation_code NVARCHAR(255),
			received_at DATETIME2 DEFAULT GETDATE()
		)
	`
}

// UpsertStmt returns a MERGE statement. HOLDLOCK keeps the match-and-write
// atomic under concurrent redeliveries of the same id.
func (b *SQLServerBackend) UpsertStmt() string {
	return `
		MERGE pesapal_transactions WITH (HOLDLOCK) AS target
		USING (SELECT @p1 AS id) AS source
		ON target.id = source.id
		WHEN MATCHED THEN UPDATE SET
			first_name = @p2,
			last_name = @p3,
			phone = @p4,
			amount = @p5,
			payment_option = @p6,
			transaction_date = @p7,
			currency = @p8,
			merchant_reference = @p9,
			confirmation_code = @p10,
			received_at = @p11
		WHEN NOT MATCHED THEN INSERT (
			id, first_name, last_name, phone, amount, payment_option,
			transaction_date, currency, merchant_reference, confirmation_code,
			received_at
		) VALUES (@p1, @p2, @p3, @p4, @p5, @p6, @p7, @p8, @p9, @p10, @p11);
	`
}

// IsIntegrityViolation reports constraint violations: 2601/2627 are
// duplicate key errors, 547 is a constraint conflict
func (b *SQLServerBackend) IsIntegrityViolation(err error) bool {
	var sqlErr mssql.Error
	if errors.As(err, &sqlErr) {
		switch sqlErr.Number {
		case 2601, 2627, 547:
			return true
		}
	}
	return false
}
