package repositories

// RepositoryProvider bundles every repository facade for injection into the
// service layer.
type RepositoryProvider struct {
	UserRepo          UserRepositoryFacade
	OrganizationRepo  OrganizationRepositoryFacade
	PersonnelRepo     PersonnelRepositoryFacade
	ContractorRepo    ContractorRepositoryFacade
	ContractTypeRepo  ContractTypeRepositoryFacade
	ServiceTypeRepo   ServiceTypeRepositoryFacade
	ContractRepo      ContractRepositoryFacade
	ParticipationRepo ParticipationRepositoryFacade
	BatchRepo         PaymentBatchRepositoryFacade
	ReportingRepo     ReportingRepository
}
