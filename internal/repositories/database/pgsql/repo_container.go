package pgsql

import (
	portsrepo "github.com/eventstaff/esa_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		OrganizationRepo:  newPgxOrganizationRepository(dbPool),
		PersonnelRepo:     newPgxPersonnelRepository(dbPool),
		ContractorRepo:    newPgxContractorRepository(dbPool),
		ContractTypeRepo:  newPgxContractTypeRepository(dbPool),
		ServiceTypeRepo:   newPgxServiceTypeRepository(dbPool),
		ContractRepo:      newPgxContractRepository(dbPool),
		ParticipationRepo: newPgxParticipationRepository(dbPool),
		BatchRepo:         newPgxBatchRepository(dbPool),
		ReportingRepo:     newPgxReportingRepository(dbPool),
	}
}
