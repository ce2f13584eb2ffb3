package repositories

import (
	"context"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
)

// ClientLastPeriod pairs a client name with the covered period of the payment
// their last-payment pointer resolves to. LastPeriod is nil when the pointer
// does not resolve.
type ClientLastPeriod struct {
	Name       string
	LastPeriod *domain.Period
}

// ReportingRepository defines the read-only projections used by the reporting
// and status screens.
type ReportingRepository interface {
	// ListPayments retrieves payments matching the filter, joined with client
	// names and ordered by client name.
	ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentRow, error)

	// ListCoveredYears retrieves the distinct covered-period years present,
	// newest first. Feeds the listing filter dropdown.
	ListCoveredYears(ctx context.Context) ([]int, error)

	// ListPaymentYears retrieves the distinct years in which payments were
	// recorded (by payment date), newest first. Feeds the statistics dropdown.
	ListPaymentYears(ctx context.Context) ([]int, error)

	// GetMonthlyTotals sums amounts per recording month for payments recorded
	// during the given year.
	GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error)

	// GetClientLastPeriods retrieves every client (optionally filtered by a
	// name substring) with the covered period their last-payment pointer
	// resolves to, ordered by client name.
	GetClientLastPeriods(ctx context.Context, nameFilter string) ([]ClientLastPeriod, error)
}
