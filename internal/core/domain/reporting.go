package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentFilter narrows the payment listing. Zero values mean "no filter";
// Name matches as a case-sensitive substring of the client name.
type PaymentFilter struct {
	Name  string
	Month int
	Year  int
}

// PaymentRow is one row of the filtered payment listing.
type PaymentRow struct {
	PaymentID   int64           `json:"paymentID"`
	ClientName  string          `json:"clientName"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// MonthlyTotal is the sum collected during one calendar month, grouped by the
// date payments were recorded rather than the period they cover.
type MonthlyTotal struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// Standing classifies how far behind a client is on their membership.
type Standing string

const (
	StandingCurrent    Standing = "CURRENT"     // paid the current month or ahead
	StandingDue        Standing = "DUE"         // last covered period was last month
	StandingOverdue    Standing = "OVERDUE"     // more than one month behind
	StandingNoPayments Standing = "NO_PAYMENTS" // pointer unresolved (should not persist)
)

// ClientStatus is one row of the standing report: the client's name, the
// covered period of their last payment (nil when none resolves), and the
// derived standing.
type ClientStatus struct {
	Name        string   `json:"name"`
	LastPeriod  *Period  `json:"lastPeriod,omitempty"`
	MonthsSince int      `json:"monthsSince"`
	Standing    Standing `json:"standing"`
}

// StandingFor derives a client's standing from the covered period of their
// last payment and the current date.
func StandingFor(last *Period, now time.Time) (Standing, int) {
	if last == nil {
		return StandingNoPayments, 0
	}
	gap := last.MonthsSince(now)
	switch {
	case gap <= 0:
		return StandingCurrent, gap
	case gap == 1:
		return StandingDue, gap
	default:
		return StandingOverdue, gap
	}
}
