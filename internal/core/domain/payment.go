package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents a single monthly membership payment. Month and Year are
// the covered period; Date is the calendar date the row was recorded, which
// can differ when a payment is backfilled.
type Payment struct {
	PaymentID   int64           `json:"paymentID"`
	ClientID    int64           `json:"clientID"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"` // 1-12
	Year        int             `json:"year"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// Period returns the covered period of the payment.
func (p Payment) Period() Period {
	return Period{Year: p.Year, Month: p.Month}
}

// PaymentDetail is a payment joined with its client's name, as needed by the
// edit form.
type PaymentDetail struct {
	Payment
	ClientName string `json:"clientName"`
}

// RegistrationResult is the outcome of a registration attempt. Exactly one of
// two shapes is produced: NeedsConfirmation=true with the expected period and
// no payment created, or NeedsConfirmation=false with the created payment.
type RegistrationResult struct {
	Payment           *Payment `json:"payment,omitempty"`
	NeedsConfirmation bool     `json:"needsConfirmation"`

	// Expected is the period the client was expected to pay next, set only
	// when NeedsConfirmation is true. The caller resolves the pause by
	// re-submitting with SkipValidation set.
	Expected *Period `json:"expected,omitempty"`
}
