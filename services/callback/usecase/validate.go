package usecase

import (
	"github.com/mkamau/pesapal-callback/internal/pkg/models"
)

// RequiredFields is the fixed set of keys every callback payload must carry
var RequiredFields = []string{
	"id", "first_name", "last_name", "phone", "amount",
	"payment_option", "transaction_date", "currency",
	"merchant_reference", "confirmation_code",
}

// ValidatePayload returns the names of required fields absent from the
// payload, in declaration order. The check is presence-only: a key with any
// value, including null, passes.
func ValidatePayload(payload models.CallbackPayload) []string {
	var missing []string
	for _, field := range RequiredFields {
		if _, ok := payload[field]; !ok {
			missing = append(missing, field)
		}
	}
	return missing
}
