package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mgiraudo/club_payments_app/internal/apperrors"
	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
	"github.com/mgiraudo/club_payments_app/internal/models"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentRepositoryFacade
var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// Helper to convert models.Payment from DB to domain.Payment
func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		ClientID:    m.ClientID,
		Amount:      m.Amount,
		Month:       m.Month,
		Year:        m.Year,
		Description: m.Description,
		Date:        m.Date,
	}
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error) {
	query := `
		SELECT payment_id, client_id, amount, month, year, description, payment_date
		FROM payments
		WHERE payment_id = $1;
	`
	var modelPayment models.Payment
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&modelPayment.PaymentID,
		&modelPayment.ClientID,
		&modelPayment.Amount,
		&modelPayment.Month,
		&modelPayment.Year,
		&modelPayment.Description,
		&modelPayment.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment by ID %d: %w", paymentID, err)
	}

	domainPayment := toDomainPayment(modelPayment)
	return &domainPayment, nil
}

// FindPaymentDetailByID retrieves a payment joined with its client's name.
func (r *PgxPaymentRepository) FindPaymentDetailByID(ctx context.Context, paymentID int64) (*domain.PaymentDetail, error) {
	query := `
		SELECT p.payment_id, p.client_id, p.amount, p.month, p.year, p.description, p.payment_date, c.name
		FROM payments p
		JOIN clients c ON p.client_id = c.client_id
		WHERE p.payment_id = $1;
	`
	var modelPayment models.Payment
	var clientName string
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(
		&modelPayment.PaymentID,
		&modelPayment.ClientID,
		&modelPayment.Amount,
		&modelPayment.Month,
		&modelPayment.Year,
		&modelPayment.Description,
		&modelPayment.Date,
		&clientName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment detail by ID %d: %w", paymentID, err)
	}

	return &domain.PaymentDetail{
		Payment:    toDomainPayment(modelPayment),
		ClientName: clientName,
	}, nil
}

// HasPaymentForPeriod reports whether the client already has a payment for
// (month, year), optionally excluding one payment ID.
func (r *PgxPaymentRepository) HasPaymentForPeriod(ctx context.Context, clientID int64, month, year int, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM payments
			WHERE client_id = $1 AND month = $2 AND year = $3 AND payment_id <> $4
		);
	`
	var exists bool
	err := r.Pool.QueryRow(ctx, query, clientID, month, year, excludeID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payment existence for client %d period %d/%d: %w", clientID, month, year, err)
	}
	return exists, nil
}

// CreatePayment inserts a new payment and returns it with its generated ID.
func (r *PgxPaymentRepository) CreatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error) {
	query := `
		INSERT INTO payments (client_id, amount, month, year, description, payment_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING payment_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		payment.ClientID,
		payment.Amount,
		payment.Month,
		payment.Year,
		payment.Description,
		payment.Date,
	).Scan(&payment.PaymentID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: payment for client %d period %d/%d already exists", apperrors.ErrDuplicate, payment.ClientID, payment.Month, payment.Year)
		}
		return nil, fmt.Errorf("failed to create payment for client %d: %w", payment.ClientID, err)
	}

	return &payment, nil
}

// UpdatePayment updates an existing payment's amount, period and description.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		UPDATE payments
		SET amount = $2, month = $3, year = $4, description = $5
		WHERE payment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.Amount,
		payment.Month,
		payment.Year,
		payment.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: payment for client %d period %d/%d already exists", apperrors.ErrDuplicate, payment.ClientID, payment.Month, payment.Year)
		}
		return fmt.Errorf("failed to update payment %d: %w", payment.PaymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePayment removes a payment and returns the owning client's ID.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, paymentID int64) (int64, error) {
	query := `
		DELETE FROM payments
		WHERE payment_id = $1
		RETURNING client_id;
	`
	var clientID int64
	err := r.Pool.QueryRow(ctx, query, paymentID).Scan(&clientID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrNotFound
		}
		return 0, fmt.Errorf("failed to delete payment %d: %w", paymentID, err)
	}
	return clientID, nil
}

// FindLatestPayment retrieves the client's most recent payment by covered
// period, ties broken by highest payment ID.
func (r *PgxPaymentRepository) FindLatestPayment(ctx context.Context, clientID int64) (*domain.Payment, error) {
	query := `
		SELECT payment_id, client_id, amount, month, year, description, payment_date
		FROM payments
		WHERE client_id = $1
		ORDER BY year DESC, month DESC, payment_id DESC
		LIMIT 1;
	`
	var modelPayment models.Payment
	err := r.Pool.QueryRow(ctx, query, clientID).Scan(
		&modelPayment.PaymentID,
		&modelPayment.ClientID,
		&modelPayment.Amount,
		&modelPayment.Month,
		&modelPayment.Year,
		&modelPayment.Description,
		&modelPayment.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest payment for client %d: %w", clientID, err)
	}

	domainPayment := toDomainPayment(modelPayment)
	return &domainPayment, nil
}
