package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mgiraudo/club_payments_app/internal/apperrors"
	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
	"github.com/mgiraudo/club_payments_app/internal/models"
)

type PgxClientRepository struct {
	BaseRepository
}

// newPgxClientRepository creates a new repository for client data.
func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepositoryFacade
var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

// Helper to convert models.Client from DB to domain.Client
func toDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:      m.ClientID,
		Name:          m.Name,
		LastPaymentID: m.LastPaymentID,
	}
}

// FindClientByName retrieves a client by their exact name.
func (r *PgxClientRepository) FindClientByName(ctx context.Context, name string) (*domain.Client, error) {
	query := `
		SELECT client_id, name, last_payment_id
		FROM clients
		WHERE name = $1;
	`
	var modelClient models.Client
	var lastPaymentID sql.NullInt64

	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&modelClient.ClientID,
		&modelClient.Name,
		&lastPaymentID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by name %s: %w", name, err)
	}

	if lastPaymentID.Valid {
		modelClient.LastPaymentID = &lastPaymentID.Int64
	}

	domainClient := toDomainClient(modelClient)
	return &domainClient, nil
}

// CreateClient inserts a new client with no last-payment pointer.
func (r *PgxClientRepository) CreateClient(ctx context.Context, name string) (*domain.Client, error) {
	query := `
		INSERT INTO clients (name, last_payment_id)
		VALUES ($1, NULL)
		RETURNING client_id;
	`
	var clientID int64
	err := r.Pool.QueryRow(ctx, query, name).Scan(&clientID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: client with name %s already exists", apperrors.ErrDuplicate, name)
		}
		return nil, fmt.Errorf("failed to create client %s: %w", name, err)
	}

	return &domain.Client{ClientID: clientID, Name: name}, nil
}

// SetLastPayment updates the client's last-payment pointer, clearing it when
// paymentID is nil.
func (r *PgxClientRepository) SetLastPayment(ctx context.Context, clientID int64, paymentID *int64) error {
	query := `
		UPDATE clients
		SET last_payment_id = $2
		WHERE client_id = $1;
	`
	var pointer sql.NullInt64
	if paymentID != nil {
		pointer = sql.NullInt64{Int64: *paymentID, Valid: true}
	}

	tag, err := r.Pool.Exec(ctx, query, clientID, pointer)
	if err != nil {
		return fmt.Errorf("failed to set last payment for client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteClient removes a client.
func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	query := `
		DELETE FROM clients
		WHERE client_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// ListClientNames retrieves every client name, ordered alphabetically.
func (r *PgxClientRepository) ListClientNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM clients
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query client names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan client name: %w", err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client name rows: %w", err)
	}

	return names, nil
}
