package repositories

import (
	"context"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByName retrieves a client by their exact (case-sensitive) name.
	FindClientByName(ctx context.Context, name string) (*domain.Client, error)

	// ListClientNames retrieves every client name, ordered alphabetically.
	// Used by the autocomplete endpoint.
	ListClientNames(ctx context.Context) ([]string, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// CreateClient persists a new client with no last-payment pointer and
	// returns it with its generated ID.
	CreateClient(ctx context.Context, name string) (*domain.Client, error)

	// SetLastPayment points the client's last-payment reference at the given
	// payment, or clears it when paymentID is nil.
	SetLastPayment(ctx context.Context, clientID int64, paymentID *int64) error
}

// ClientLifecycleManager defines operations for managing client lifecycle
type ClientLifecycleManager interface {
	// DeleteClient removes a client. Callers are responsible for ensuring no
	// payments remain.
	DeleteClient(ctx context.Context, clientID int64) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientLifecycleManager
}
