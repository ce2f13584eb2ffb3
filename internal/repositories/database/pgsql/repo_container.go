package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	paymentRepo := newPgxPaymentRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:    clientRepo,
		PaymentRepo:   paymentRepo,
		ReportingRepo: reportingRepo,
	}
}
