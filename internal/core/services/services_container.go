package services

import (
	portsrepo "github.com/mgiraudo/club_payments_app/internal/core/ports/repositories"
	portssvc "github.com/mgiraudo/club_payments_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Payment = NewPaymentService(repos.ClientRepo, repos.PaymentRepo)
	container.Client = NewClientService(repos.ClientRepo, repos.ReportingRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PaymentSvcFacade   = (*paymentService)(nil)
	_ portssvc.ClientSvcFacade    = (*clientService)(nil)
	_ portssvc.ReportingSvcFacade = (*reportingService)(nil)
)
