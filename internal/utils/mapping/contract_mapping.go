package mapping

import (
	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/eventstaff/esa_backend/internal/models"
)

// ToModelContract converts a domain Contract to a model Contract
func ToModelContract(d domain.Contract) models.Contract {
	return models.Contract{
		ContractID:     d.ContractID,
		OrganizationID: d.OrganizationID,
		ContractorID:   d.ContractorID,
		ContractTypeID: d.ContractTypeID,
		EventDate:      d.EventDate,
		Venue:          d.Venue,
		Status:         models.ContractStatus(d.Status),
		StaffingStatus: models.StaffingStatus(d.StaffingStatus),
		Notes:          d.Notes,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContract converts a model Contract to a domain Contract
func ToDomainContract(m models.Contract) domain.Contract {
	return domain.Contract{
		ContractID:     m.ContractID,
		OrganizationID: m.OrganizationID,
		ContractorID:   m.ContractorID,
		ContractTypeID: m.ContractTypeID,
		EventDate:      m.EventDate,
		Venue:          m.Venue,
		Status:         domain.ContractStatus(m.Status),
		StaffingStatus: domain.StaffingStatus(m.StaffingStatus),
		Notes:          m.Notes,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelContractEvent converts a domain ContractEvent to a model ContractEvent
func ToModelContractEvent(d domain.ContractEvent) models.ContractEvent {
	return models.ContractEvent{
		ContractEventID: d.ContractEventID,
		ContractID:      d.ContractID,
		StartedAt:       d.StartedAt,
		EndedAt:         d.EndedAt,
		Notes:           d.Notes,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContractEvent converts a model ContractEvent to a domain ContractEvent
func ToDomainContractEvent(m models.ContractEvent) domain.ContractEvent {
	return domain.ContractEvent{
		ContractEventID: m.ContractEventID,
		ContractID:      m.ContractID,
		StartedAt:       m.StartedAt,
		EndedAt:         m.EndedAt,
		Notes:           m.Notes,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelContractType converts a domain ContractType to a model ContractType
func ToModelContractType(d domain.ContractType) models.ContractType {
	return models.ContractType{
		ContractTypeID: d.ContractTypeID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		BaseIncome:     d.BaseIncome,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContractType converts a model ContractType to a domain ContractType
func ToDomainContractType(m models.ContractType) domain.ContractType {
	return domain.ContractType{
		ContractTypeID: m.ContractTypeID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		BaseIncome:     m.BaseIncome,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelServiceType converts a domain ServiceType to a model ServiceType
func ToModelServiceType(d domain.ServiceType) models.ServiceType {
	return models.ServiceType{
		ServiceTypeID:  d.ServiceTypeID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		DefaultRate:    d.DefaultRate,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainServiceType converts a model ServiceType to a domain ServiceType
func ToDomainServiceType(m models.ServiceType) domain.ServiceType {
	return domain.ServiceType{
		ServiceTypeID:  m.ServiceTypeID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		DefaultRate:    m.DefaultRate,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
