package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mgiraudo/club_payments_app/internal/apperrors"
	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
	"github.com/mgiraudo/club_payments_app/internal/dto"
	"github.com/shopspring/decimal"
)

// paymentService implements the PaymentSvcFacade interface. It owns the
// registration workflow and is the only writer of the clients' last-payment
// pointers.
type paymentService struct {
	BaseService
	clientRepo  portsrepo.ClientRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade

	// now is injected so tests can pin the recording date.
	now func() time.Time
}

// PaymentServiceOption is a functional option for configuring the payment service
type PaymentServiceOption func(*paymentService)

// WithClock overrides the payment service's clock.
func WithClock(now func() time.Time) PaymentServiceOption {
	return func(s *paymentService) {
		s.now = now
	}
}

// NewPaymentService creates a new payment service with the provided options
func NewPaymentService(clientRepo portsrepo.ClientRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, options ...PaymentServiceOption) portssvc.PaymentSvcFacade {
	svc := &paymentService{
		clientRepo:  clientRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure paymentService implements the PaymentSvcFacade interface
var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// validatePeriodAndAmount guards the engine against inputs that slip past the
// transport-level binding, like a negative amount.
func validatePeriodAndAmount(month int, amount decimal.Decimal) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d is out of range", apperrors.ErrValidation, month)
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	return nil
}

// RegisterPayment runs the registration workflow described on
// PaymentWriterSvc. The duplicate check runs before cadence validation, so a
// duplicate never consumes a confirmation round-trip.
func (s *paymentService) RegisterPayment(ctx context.Context, req dto.RegisterPaymentRequest) (*domain.RegistrationResult, error) {
	if err := validatePeriodAndAmount(req.Month, req.Amount); err != nil {
		return nil, err
	}

	// Resolve the client, creating it lazily on first payment.
	client, err := s.clientRepo.FindClientByName(ctx, req.Name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client by name", slog.String("name", req.Name))
			return nil, fmt.Errorf("failed to resolve client %s: %w", req.Name, err)
		}
		client, err = s.clientRepo.CreateClient(ctx, req.Name)
		if err != nil {
			s.LogError(ctx, err, "Failed to create client", slog.String("name", req.Name))
			return nil, fmt.Errorf("failed to create client %s: %w", req.Name, err)
		}
		s.LogInfo(ctx, "Client created for first payment",
			slog.Int64("client_id", client.ClientID),
			slog.String("name", client.Name))
	}

	// Duplicate check first: one payment per client per covered period.
	exists, err := s.paymentRepo.HasPaymentForPeriod(ctx, client.ClientID, req.Month, req.Year, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for duplicate payment",
			slog.Int64("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to check for duplicate payment: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: client %s already has a payment for %d/%d", apperrors.ErrDuplicate, client.Name, req.Month, req.Year)
	}

	newPeriod := domain.Period{Year: req.Year, Month: req.Month}

	// The pointer only moves forward: a backfilled payment never becomes the
	// client's latest. The first payment ever always does.
	movePointer := true

	if client.LastPaymentID != nil {
		lastPayment, err := s.paymentRepo.FindPaymentByID(ctx, *client.LastPaymentID)
		if err != nil {
			s.LogError(ctx, err, "Failed to load client's last payment",
				slog.Int64("client_id", client.ClientID),
				slog.Int64("last_payment_id", *client.LastPaymentID))
			return nil, fmt.Errorf("failed to load last payment: %w", err)
		}

		lastPeriod := lastPayment.Period()
		movePointer = newPeriod.After(lastPeriod)

		expected := lastPeriod.Next()
		if !req.SkipValidation && newPeriod != expected {
			s.LogInfo(ctx, "Payment breaks monthly cadence, asking for confirmation",
				slog.Int64("client_id", client.ClientID),
				slog.Int("expected_month", expected.Month),
				slog.Int("expected_year", expected.Year))
			return &domain.RegistrationResult{
				NeedsConfirmation: true,
				Expected:          &expected,
			}, nil
		}
	}

	created, err := s.paymentRepo.CreatePayment(ctx, domain.Payment{
		ClientID:    client.ClientID,
		Amount:      req.Amount,
		Month:       req.Month,
		Year:        req.Year,
		Description: req.Description,
		Date:        s.now(),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment",
			slog.Int64("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	if movePointer {
		if err := s.clientRepo.SetLastPayment(ctx, client.ClientID, &created.PaymentID); err != nil {
			// The payment row already exists; the pointer is now stale. No
			// compensating delete is attempted, the failure is surfaced.
			s.LogError(ctx, err, "Failed to update client's last payment pointer",
				slog.Int64("client_id", client.ClientID),
				slog.Int64("payment_id", created.PaymentID))
			return nil, fmt.Errorf("failed to update last payment pointer: %w", err)
		}
	}

	s.LogInfo(ctx, "Payment registered successfully",
		slog.Int64("payment_id", created.PaymentID),
		slog.Int64("client_id", client.ClientID),
		slog.Int("month", req.Month),
		slog.Int("year", req.Year))
	return &domain.RegistrationResult{Payment: created}, nil
}

// UpdatePayment applies the new fields, then repoints the owning client's
// last-payment reference by re-scanning their payments. Editing a period can
// reorder which payment is latest, so the recompute never assumes the edited
// payment won.
func (s *paymentService) UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error) {
	if err := validatePeriodAndAmount(req.Month, req.Amount); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load payment for update",
				slog.Int64("payment_id", paymentID))
		}
		return nil, err
	}

	exists, err := s.paymentRepo.HasPaymentForPeriod(ctx, payment.ClientID, req.Month, req.Year, paymentID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for duplicate payment",
			slog.Int64("client_id", payment.ClientID))
		return nil, fmt.Errorf("failed to check for duplicate payment: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: client already has a payment for %d/%d", apperrors.ErrDuplicate, req.Month, req.Year)
	}

	payment.Amount = req.Amount
	payment.Month = req.Month
	payment.Year = req.Year
	payment.Description = req.Description

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		s.LogError(ctx, err, "Failed to update payment",
			slog.Int64("payment_id", paymentID))
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	latest, err := s.paymentRepo.FindLatestPayment(ctx, payment.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find client's latest payment",
			slog.Int64("client_id", payment.ClientID))
		return nil, fmt.Errorf("failed to recompute latest payment: %w", err)
	}
	if err := s.clientRepo.SetLastPayment(ctx, payment.ClientID, &latest.PaymentID); err != nil {
		s.LogError(ctx, err, "Failed to update client's last payment pointer",
			slog.Int64("client_id", payment.ClientID),
			slog.Int64("payment_id", latest.PaymentID))
		return nil, fmt.Errorf("failed to update last payment pointer: %w", err)
	}

	s.LogInfo(ctx, "Payment updated successfully",
		slog.Int64("payment_id", paymentID),
		slog.Int64("client_id", payment.ClientID))
	return payment, nil
}

// DeletePayment removes the payment and restores the owning client's
// last-payment pointer to the latest surviving payment. A client whose last
// payment is deleted is removed entirely.
func (s *paymentService) DeletePayment(ctx context.Context, paymentID int64) error {
	clientID, err := s.paymentRepo.DeletePayment(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete payment",
				slog.Int64("payment_id", paymentID))
		}
		return err
	}

	latest, err := s.paymentRepo.FindLatestPayment(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client's latest surviving payment",
				slog.Int64("client_id", clientID))
			return fmt.Errorf("failed to recompute latest payment: %w", err)
		}

		// No payments remain: clients without payment history are not kept.
		if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
			s.LogError(ctx, err, "Failed to delete client with no remaining payments",
				slog.Int64("client_id", clientID))
			return fmt.Errorf("failed to delete client: %w", err)
		}
		s.LogInfo(ctx, "Client deleted along with their last payment",
			slog.Int64("client_id", clientID),
			slog.Int64("payment_id", paymentID))
		return nil
	}

	if err := s.clientRepo.SetLastPayment(ctx, clientID, &latest.PaymentID); err != nil {
		s.LogError(ctx, err, "Failed to update client's last payment pointer",
			slog.Int64("client_id", clientID),
			slog.Int64("payment_id", latest.PaymentID))
		return fmt.Errorf("failed to update last payment pointer: %w", err)
	}

	s.LogInfo(ctx, "Payment deleted successfully",
		slog.Int64("payment_id", paymentID),
		slog.Int64("client_id", clientID))
	return nil
}

// GetPaymentByID retrieves a payment with its client's name.
func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentDetail, error) {
	detail, err := s.paymentRepo.FindPaymentDetailByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find payment by ID",
				slog.Int64("payment_id", paymentID))
		}
		return nil, err
	}
	return detail, nil
}
