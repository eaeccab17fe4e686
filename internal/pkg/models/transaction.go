package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CallbackPayload is the decoded JSON body of a Pesapal callback. Values are
// kept untyped: the required-field check is presence-only and coercion
// happens when the payload is turned into a Transaction.
type CallbackPayload map[string]interface{}

// Transaction represents one Pesapal payment transaction
type Transaction struct {
	ID                int64           `json:"id" db:"id"`
	FirstName         string          `json:"first_name" db:"first_name"`
	LastName          string          `json:"last_name" db:"last_name"`
	Phone             string          `json:"phone" db:"phone"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	PaymentOption     string          `json:"payment_option" db:"payment_option"`
	TransactionDate   time.Time       `json:"transaction_date" db:"transaction_date"`
	Currency          string          `json:"currency" db:"currency"`
	MerchantReference string          `json:"merchant_reference" db:"merchant_reference"`
	ConfirmationCode  string          `json:"confirmation_code" db:"confirmation_code"`
	ReceivedAt        time.Time       `json:"received_at" db:"received_at"`
}

// TransactionFromPayload builds a Transaction from a validated payload. The
// transaction_date and received_at fields are set by the caller; everything
// else is coerced from the raw payload values.
func TransactionFromPayload(payload CallbackPayload) (*Transaction, error) {
	id, err := coerceInt64(payload["id"])
	if err != nil {
		return nil, fmt.Errorf("invalid id: %w", err)
	}

	amount, err := coerceDecimal(payload["amount"])
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	return &Transaction{
		ID:                id,
		FirstName:         coerceString(payload["first_name"]),
		LastName:          coerceString(payload["last_name"]),
		Phone:             coerceString(payload["phone"]),
		Amount:            amount,
		PaymentOption:     coerceString(payload["payment_option"]),
		Currency:          coerceString(payload["currency"]),
		MerchantReference: coerceString(payload["merchant_reference"]),
		ConfirmationCode:  coerceString(payload["confirmation_code"]),
	}, nil
}

func coerceString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

func coerceInt64(v interface{}) (int64, error) {
	switch val := v.(type) {
	case json.Number:
		return val.Int64()
	case string:
		n := json.Number(val)
		return n.Int64()
	case float64:
		return int64(val), nil
	case int64:
		return val, nil
	case int:
		return int64(val), nil
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func coerceDecimal(v interface{}) (decimal.Decimal, error) {
	switch val := v.(type) {
	case json.Number:
		return decimal.NewFromString(val.String())
	case string:
		return decimal.NewFromString(val)
	case float64:
		return decimal.NewFromFloat(val), nil
	case int64:
		return decimal.NewFromInt(val), nil
	case int:
		return decimal.NewFromInt(int64(val)), nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}
