package dto

import (
	"time"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RegisterPaymentRequest defines the data needed to register a payment.
// Name must already be normalized to uppercase by the caller.
type RegisterPaymentRequest struct {
	Name        string          `json:"name" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Year        int             `json:"year" binding:"required,min=1900"`
	Description string          `json:"description"`

	// SkipValidation bypasses the cadence check. Set on the second call of
	// the confirm-and-retry protocol, after the user accepts a gap or an
	// out-of-order registration.
	SkipValidation bool `json:"skipValidation"`
}

// UpdatePaymentRequest defines the data needed to edit an existing payment.
type UpdatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Year        int             `json:"year" binding:"required,min=1900"`
	Description string          `json:"description"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   int64           `json:"paymentID"`
	ClientID    int64           `json:"clientID"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// RegisterPaymentResponse is the registration outcome: either the created
// payment, or a confirmation request carrying the expected period.
type RegisterPaymentResponse struct {
	NeedsConfirmation bool             `json:"needsConfirmation"`
	ExpectedMonth     int              `json:"expectedMonth,omitempty"`
	ExpectedYear      int              `json:"expectedYear,omitempty"`
	Payment           *PaymentResponse `json:"payment,omitempty"`
}

// PaymentDetailResponse defines the data returned for the edit form.
type PaymentDetailResponse struct {
	PaymentResponse
	ClientName string `json:"clientName"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		ClientID:    p.ClientID,
		Amount:      p.Amount,
		Month:       p.Month,
		Year:        p.Year,
		Description: p.Description,
		Date:        p.Date,
	}
}

// ToRegisterPaymentResponse converts a domain.RegistrationResult to the
// response DTO.
func ToRegisterPaymentResponse(res *domain.RegistrationResult) RegisterPaymentResponse {
	out := RegisterPaymentResponse{NeedsConfirmation: res.NeedsConfirmation}
	if res.Expected != nil {
		out.ExpectedMonth = res.Expected.Month
		out.ExpectedYear = res.Expected.Year
	}
	if res.Payment != nil {
		p := ToPaymentResponse(res.Payment)
		out.Payment = &p
	}
	return out
}

// ToPaymentDetailResponse converts a domain.PaymentDetail to the response DTO.
func ToPaymentDetailResponse(d *domain.PaymentDetail) PaymentDetailResponse {
	return PaymentDetailResponse{
		PaymentResponse: ToPaymentResponse(&d.Payment),
		ClientName:      d.ClientName,
	}
}
