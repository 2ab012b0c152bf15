package services

import (
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	portssvc "github.com/eventstaff/esa_backend/internal/core/ports/services"
	"github.com/eventstaff/esa_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Organization service comes first since everything else authorizes
	// through it.
	organizationService := NewOrganizationService(
		repos.OrganizationRepo,
		repos.PersonnelRepo,
		repos.UserRepo,
	)
	container.Organization = organizationService

	var authorizer portssvc.OrganizationAuthorizerSvc = organizationService

	container.User = NewUserService(repos.UserRepo)
	container.Token = NewTokenService(cfg, container.User)

	container.Personnel = NewPersonnelService(repos.PersonnelRepo, repos.UserRepo, authorizer)
	container.Contractor = NewContractorService(repos.ContractorRepo, authorizer)
	container.Catalog = NewCatalogService(repos.ContractTypeRepo, repos.ServiceTypeRepo, authorizer)

	container.Contract = NewContractService(
		repos.ContractRepo,
		repos.ParticipationRepo,
		repos.ContractorRepo,
		repos.ContractTypeRepo,
		repos.ServiceTypeRepo,
		repos.PersonnelRepo,
		authorizer,
	)
	container.Attendance = NewAttendanceService(repos.ParticipationRepo, authorizer)
	container.Payroll = NewPayrollService(repos.BatchRepo, repos.PersonnelRepo, authorizer, cfg)
	container.Reporting = NewReportingService(repos.ReportingRepo, authorizer)

	container.GoogleVerifier = NewGoogleTokenVerifier(cfg)

	return container
}
