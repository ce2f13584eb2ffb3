package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
)

// reportingService implements the ReportingSvcFacade interface. The reporting
// surfaces are plain read-only projections; none of them touch the
// last-payment pointers.
type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new reporting service
func NewReportingService(repo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{
		reportingRepo: repo,
	}
}

// Ensure reportingService implements the ReportingSvcFacade interface
var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ListPayments retrieves the filtered payment listing.
func (s *reportingService) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentRow, error) {
	rows, err := s.reportingRepo.ListPayments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments",
			slog.String("name_filter", filter.Name),
			slog.Int("month", filter.Month),
			slog.Int("year", filter.Year))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	if rows == nil {
		return []domain.PaymentRow{}, nil
	}
	return rows, nil
}

// ListCoveredYears retrieves the distinct covered-period years.
func (s *reportingService) ListCoveredYears(ctx context.Context) ([]int, error) {
	years, err := s.reportingRepo.ListCoveredYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list covered years")
		return nil, fmt.Errorf("failed to list covered years: %w", err)
	}
	if years == nil {
		return []int{}, nil
	}
	return years, nil
}

// ListPaymentYears retrieves the distinct recording years.
func (s *reportingService) ListPaymentYears(ctx context.Context) ([]int, error) {
	years, err := s.reportingRepo.ListPaymentYears(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment years")
		return nil, fmt.Errorf("failed to list payment years: %w", err)
	}
	if years == nil {
		return []int{}, nil
	}
	return years, nil
}

// MonthlyTotals retrieves per-month revenue sums for payments recorded during
// the given year.
func (s *reportingService) MonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	totals, err := s.reportingRepo.GetMonthlyTotals(ctx, year)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve monthly totals",
			slog.Int("year", year))
		return nil, fmt.Errorf("failed to retrieve monthly totals for %d: %w", year, err)
	}
	if totals == nil {
		return []domain.MonthlyTotal{}, nil
	}

	s.LogDebug(ctx, "Monthly totals retrieved",
		slog.Int("year", year),
		slog.Int("row_count", len(totals)))
	return totals, nil
}
