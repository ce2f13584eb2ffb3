package dto

import (
	"time"

	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListPaymentsParams are the query parameters of the filtered payment listing.
type ListPaymentsParams struct {
	Name  string `form:"name"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int    `form:"year" binding:"omitempty,min=1900"`
}

// PaymentRowResponse is one row of the filtered payment listing.
type PaymentRowResponse struct {
	PaymentID   int64           `json:"paymentID"`
	ClientName  string          `json:"clientName"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// MonthlyTotalResponse is the revenue collected during one calendar month.
type MonthlyTotalResponse struct {
	Month int             `json:"month"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyTotalsResponse wraps the per-month rows with the annual sum.
type MonthlyTotalsResponse struct {
	Year   int                    `json:"year"`
	Months []MonthlyTotalResponse `json:"months"`
	Total  decimal.Decimal        `json:"total"`
}

// ClientStatusResponse is one row of the standing report.
type ClientStatusResponse struct {
	Name        string `json:"name"`
	LastMonth   int    `json:"lastMonth,omitempty"`
	LastYear    int    `json:"lastYear,omitempty"`
	MonthsSince int    `json:"monthsSince"`
	Standing    string `json:"standing"`
}

// ToPaymentRowResponse converts a domain.PaymentRow to its response DTO
func ToPaymentRowResponse(row domain.PaymentRow) PaymentRowResponse {
	return PaymentRowResponse{
		PaymentID:   row.PaymentID,
		ClientName:  row.ClientName,
		Amount:      row.Amount,
		Date:        row.Date,
		Description: row.Description,
	}
}

// ToMonthlyTotalsResponse converts the per-month rows, computing the annual
// total.
func ToMonthlyTotalsResponse(year int, rows []domain.MonthlyTotal) MonthlyTotalsResponse {
	res := MonthlyTotalsResponse{
		Year:   year,
		Months: make([]MonthlyTotalResponse, len(rows)),
		Total:  decimal.Zero,
	}
	for i, row := range rows {
		res.Months[i] = MonthlyTotalResponse{Month: row.Month, Total: row.Total}
		res.Total = res.Total.Add(row.Total)
	}
	return res
}

// ToClientStatusResponse converts a domain.ClientStatus to its response DTO
func ToClientStatusResponse(status domain.ClientStatus) ClientStatusResponse {
	res := ClientStatusResponse{
		Name:        status.Name,
		MonthsSince: status.MonthsSince,
		Standing:    string(status.Standing),
	}
	if status.LastPeriod != nil {
		res.LastMonth = status.LastPeriod.Month
		res.LastYear = status.LastPeriod.Year
	}
	return res
}
