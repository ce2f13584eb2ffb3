package services

import (
	"context"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
)

// ClientSvcFacade defines the read-only client surfaces: the autocomplete
// name list and the standing report.
type ClientSvcFacade interface {
	// ListClientNames retrieves every client name for autocompletion.
	ListClientNames(ctx context.Context) ([]string, error)

	// GetClientStatuses derives each client's standing (current, due,
	// overdue) from their last-payment pointer and the current date.
	GetClientStatuses(ctx context.Context, nameFilter string) ([]domain.ClientStatus, error)
}
