package services

import (
	"context"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
)

// ReportingSvcFacade defines the aggregate read-only projections over
// payments.
type ReportingSvcFacade interface {
	// ListPayments retrieves the filtered payment listing.
	ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentRow, error)

	// ListCoveredYears retrieves the distinct covered-period years.
	ListCoveredYears(ctx context.Context) ([]int, error)

	// ListPaymentYears retrieves the distinct recording years.
	ListPaymentYears(ctx context.Context) ([]int, error)

	// MonthlyTotals retrieves per-month revenue sums for payments recorded
	// during the given year.
	MonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error)
}
