package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment mirrors the payments table. (client_id, month, year) is unique.
type Payment struct {
	PaymentID   int64           `json:"paymentID"`
	ClientID    int64           `json:"clientID"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"` // date the row was recorded
}
