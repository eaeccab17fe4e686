package callback

import (
	"fmt"
	"strings"
)

// The ingestion pipeline reports failures through typed errors so the HTTP
// boundary can pick a status code without string matching. Schema and
// validation errors are client errors; connection and integrity errors are
// server errors.

// SchemaError reports a request that never reached the writer: wrong
// content type or required fields missing from the payload.
type SchemaError struct {
	ContentType   string
	MissingFields []string
}

func (e *SchemaError) Error() string {
	if len(e.MissingFields) > 0 {
		return fmt.Sprintf("missing fields: [%s]", strings.Join(e.MissingFields, ", "))
	}
	return fmt.Sprintf("invalid content type: %s", e.ContentType)
}

// ValidationError reports a present but unusable field value, such as a
// missing or unparsable transaction_date.
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ConnectionError reports exhausted connection retries. It carries enough
// context to diagnose the failure without leaking credentials.
type ConnectionError struct {
	Host     string
	Database string
	Attempts int
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("database connection to %s/%s failed after %d attempts: %v",
		e.Host, e.Database, e.Attempts, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IntegrityError reports a constraint violation during the write. The
// transaction has been rolled back when this surfaces.
type IntegrityError struct {
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation: %v", e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}
