package pgsql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mgiraudo/club_payments_app/internal/core/domain"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure reportingRepository implements portsrepo.ReportingRepository
var _ portsrepo.ReportingRepository = (*reportingRepository)(nil)

// ListPayments retrieves payments matching the filter, joined with client
// names and ordered by client name.
func (r *reportingRepository) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.PaymentRow, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT p.payment_id, c.name, p.amount, p.payment_date, p.description
		FROM payments p
		JOIN clients c ON p.client_id = c.client_id
	`)

	var conditions []string
	var args []any
	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conditions = append(conditions, fmt.Sprintf("c.name LIKE $%d", len(args)))
	}
	if filter.Month != 0 {
		args = append(args, filter.Month)
		conditions = append(conditions, fmt.Sprintf("p.month = $%d", len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		conditions = append(conditions, fmt.Sprintf("p.year = $%d", len(args)))
	}
	if len(conditions) > 0 {
		sb.WriteString("WHERE " + strings.Join(conditions, " AND ") + "\n")
	}
	sb.WriteString("ORDER BY c.name ASC;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment listing: %w", err)
	}
	defer rows.Close()

	var result []domain.PaymentRow
	for rows.Next() {
		var row domain.PaymentRow
		if err := rows.Scan(
			&row.PaymentID,
			&row.ClientName,
			&row.Amount,
			&row.Date,
			&row.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment listing row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment listing rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.PaymentRow{}, nil
	}
	return result, nil
}

// ListCoveredYears retrieves the distinct covered-period years, newest first.
func (r *reportingRepository) ListCoveredYears(ctx context.Context) ([]int, error) {
	query := `
		SELECT DISTINCT year
		FROM payments
		ORDER BY year DESC;
	`
	return r.queryYears(ctx, query)
}

// ListPaymentYears retrieves the distinct recording years, newest first.
func (r *reportingRepository) ListPaymentYears(ctx context.Context) ([]int, error) {
	query := `
		SELECT DISTINCT EXTRACT(YEAR FROM payment_date)::int AS year
		FROM payments
		ORDER BY year DESC;
	`
	return r.queryYears(ctx, query)
}

func (r *reportingRepository) queryYears(ctx context.Context, query string) ([]int, error) {
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query years: %w", err)
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var year int
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("failed to scan year row: %w", err)
		}
		years = append(years, year)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating year rows: %w", err)
	}
	return years, nil
}

// GetMonthlyTotals sums amounts per recording month for payments recorded
// during the given year.
func (r *reportingRepository) GetMonthlyTotals(ctx context.Context, year int) ([]domain.MonthlyTotal, error) {
	query := `
		SELECT EXTRACT(MONTH FROM payment_date)::int AS month, SUM(amount) AS total
		FROM payments
		WHERE EXTRACT(YEAR FROM payment_date) = $1
		GROUP BY month
		ORDER BY month;
	`
	rows, err := r.Pool.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals for %d: %w", year, err)
	}
	defer rows.Close()

	var result []domain.MonthlyTotal
	for rows.Next() {
		var row domain.MonthlyTotal
		if err := rows.Scan(&row.Month, &row.Total); err != nil {
			return nil, fmt.Errorf("failed to scan monthly total row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monthly total rows: %w", err)
	}

	if len(result) == 0 {
		return []domain.MonthlyTotal{}, nil
	}
	return result, nil
}

// GetClientLastPeriods retrieves every client with the covered period their
// last-payment pointer resolves to, ordered by client name.
func (r *reportingRepository) GetClientLastPeriods(ctx context.Context, nameFilter string) ([]portsrepo.ClientLastPeriod, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT c.name, p.month, p.year
		FROM clients c
		LEFT JOIN payments p ON c.last_payment_id = p.payment_id
	`)

	var args []any
	if nameFilter != "" {
		args = append(args, "%"+nameFilter+"%")
		sb.WriteString("WHERE c.name LIKE $1\n")
	}
	sb.WriteString("ORDER BY c.name;")

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query client last periods: %w", err)
	}
	defer rows.Close()

	var result []portsrepo.ClientLastPeriod
	for rows.Next() {
		var name string
		var month, year sql.NullInt64
		if err := rows.Scan(&name, &month, &year); err != nil {
			return nil, fmt.Errorf("failed to scan client last period row: %w", err)
		}

		row := portsrepo.ClientLastPeriod{Name: name}
		if month.Valid && year.Valid {
			row.LastPeriod = &domain.Period{Year: int(year.Int64), Month: int(month.Int64)}
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client last period rows: %w", err)
	}

	if len(result) == 0 {
		return []portsrepo.ClientLastPeriod{}, nil
	}
	return result, nil
}
