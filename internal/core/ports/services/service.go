package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is what route
// registration receives.
type ServiceContainer struct {
	User         UserSvcFacade
	Token        TokenSvcFacade
	Organization OrganizationSvcFacade
	Personnel    PersonnelSvcFacade
	Contractor   ContractorSvcFacade
	Catalog      CatalogSvcFacade
	Contract     ContractSvcFacade
	Attendance   AttendanceSvcFacade
	Payroll      PayrollSvcFacade
	Reporting    ReportingSvcFacade

	GoogleVerifier GoogleTokenVerifierSvc
}
