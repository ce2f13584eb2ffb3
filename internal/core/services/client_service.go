package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo    portsrepo.ClientReader
	reportingRepo portsrepo.ReportingRepository

	now func() time.Time
}

// ClientServiceOption is a functional option for configuring the client service
type ClientServiceOption func(*clientService)

// WithClientClock overrides the client service's clock.
func WithClientClock(now func() time.Time) ClientServiceOption {
	return func(s *clientService) {
		s.now = now
	}
}

// NewClientService creates a new client service with the provided options
func NewClientService(clientRepo portsrepo.ClientReader, reportingRepo portsrepo.ReportingRepository, options ...ClientServiceOption) portssvc.ClientSvcFacade {
	svc := &clientService{
		clientRepo:    clientRepo,
		reportingRepo: reportingRepo,
		now:           time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure clientService implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

// ListClientNames retrieves every client name for autocompletion.
func (s *clientService) ListClientNames(ctx context.Context) ([]string, error) {
	names, err := s.clientRepo.ListClientNames(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list client names")
		return nil, fmt.Errorf("failed to list client names: %w", err)
	}
	if names == nil {
		return []string{}, nil
	}
	return names, nil
}

// GetClientStatuses derives each client's standing from the covered period of
// the payment their last-payment pointer resolves to and the current date.
func (s *clientService) GetClientStatuses(ctx context.Context, nameFilter string) ([]domain.ClientStatus, error) {
	rows, err := s.reportingRepo.GetClientLastPeriods(ctx, nameFilter)
	if err != nil {
		s.LogError(ctx, err, "Failed to retrieve client last periods",
			slog.String("name_filter", nameFilter))
		return nil, fmt.Errorf("failed to retrieve client statuses: %w", err)
	}

	now := s.now()
	statuses := make([]domain.ClientStatus, len(rows))
	for i, row := range rows {
		standing, gap := domain.StandingFor(row.LastPeriod, now)
		statuses[i] = domain.ClientStatus{
			Name:        row.Name,
			LastPeriod:  row.LastPeriod,
			MonthsSince: gap,
			Standing:    standing,
		}
	}

	s.LogDebug(ctx, "Client statuses derived",
		slog.Int("count", len(statuses)),
		slog.String("name_filter", nameFilter))
	return statuses, nil
}
