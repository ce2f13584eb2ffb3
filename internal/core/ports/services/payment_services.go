package services

import (
	"context"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	"github.com/mgiraudo/club_payments_app/internal/dto"
)

// PaymentReaderSvc defines read operations for payment data
type PaymentReaderSvc interface {
	// GetPaymentByID retrieves a payment with its client's name, for the
	// edit form.
	GetPaymentByID(ctx context.Context, paymentID int64) (*domain.PaymentDetail, error)
}

// PaymentWriterSvc defines the registration and mutation workflows of the
// payment engine.
type PaymentWriterSvc interface {
	// RegisterPayment runs the registration workflow: resolve or create the
	// client, reject duplicates for the covered period, validate the monthly
	// cadence against the client's last payment, create the payment and move
	// the last-payment pointer forward when appropriate.
	//
	// When the new period breaks the expected cadence and the request does
	// not carry SkipValidation, no payment is created and the result asks the
	// caller to confirm, carrying the expected period. Re-invoking with
	// SkipValidation set completes the registration.
	RegisterPayment(ctx context.Context, req dto.RegisterPaymentRequest) (*domain.RegistrationResult, error)

	// UpdatePayment applies new amount/period/description to a payment and
	// repoints the owning client's last-payment reference if the edited
	// payment is now the client's latest.
	UpdatePayment(ctx context.Context, paymentID int64, req dto.UpdatePaymentRequest) (*domain.Payment, error)
}

// PaymentLifecycleSvc defines operations for removing payments
type PaymentLifecycleSvc interface {
	// DeletePayment removes a payment, repoints the owning client's
	// last-payment reference at the latest surviving payment, and deletes
	// the client entirely when no payments remain.
	DeletePayment(ctx context.Context, paymentID int64) error
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
	PaymentLifecycleSvc
}
