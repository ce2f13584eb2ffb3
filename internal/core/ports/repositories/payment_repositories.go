package repositories

import (
	"context"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its ID.
	FindPaymentByID(ctx context.Context, paymentID int64) (*domain.Payment, error)

	// FindPaymentDetailByID retrieves a payment joined with its client's name.
	FindPaymentDetailByID(ctx context.Context, paymentID int64) (*domain.PaymentDetail, error)

	// HasPaymentForPeriod reports whether the client already has a payment
	// covering (month, year). A non-zero excludeID leaves that payment out of
	// the check, for updates that keep their own period.
	HasPaymentForPeriod(ctx context.Context, clientID int64, month, year int, excludeID int64) (bool, error)

	// FindLatestPayment retrieves the client's most recent payment by covered
	// period, ordered by (year desc, month desc, id desc). Returns
	// apperrors.ErrNotFound when the client has no payments.
	FindLatestPayment(ctx context.Context, clientID int64) (*domain.Payment, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// CreatePayment persists a new payment and returns it with its generated ID.
	CreatePayment(ctx context.Context, payment domain.Payment) (*domain.Payment, error)

	// UpdatePayment updates an existing payment's amount, period and description.
	UpdatePayment(ctx context.Context, payment domain.Payment) error

	// DeletePayment removes a payment and returns the ID of the client that
	// owned it. Returns apperrors.ErrNotFound when no such payment exists.
	DeletePayment(ctx context.Context, paymentID int64) (int64, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
