package mapping

import (
	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/eventstaff/esa_backend/internal/models"
)

// ToModelPersonnel converts a domain Personnel to a model Personnel
func ToModelPersonnel(d domain.Personnel) models.Personnel {
	return models.Personnel{
		PersonnelID:    d.PersonnelID,
		OrganizationID: d.OrganizationID,
		UserID:         d.UserID,
		Role:           models.PersonnelRole(d.Role),
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		Email:          d.Email,
		Phone:          d.Phone,
		DocumentID:     d.DocumentID,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPersonnel converts a model Personnel to a domain Personnel
func ToDomainPersonnel(m models.Personnel) domain.Personnel {
	return domain.Personnel{
		PersonnelID:    m.PersonnelID,
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Role:           domain.PersonnelRole(m.Role),
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		Email:          m.Email,
		Phone:          m.Phone,
		DocumentID:     m.DocumentID,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelContractor converts a domain Contractor to a model Contractor
func ToModelContractor(d domain.Contractor) models.Contractor {
	return models.Contractor{
		ContractorID:   d.ContractorID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		TaxID:          d.TaxID,
		ContactName:    d.ContactName,
		ContactPhone:   d.ContactPhone,
		Email:          d.Email,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainContractor converts a model Contractor to a domain Contractor
func ToDomainContractor(m models.Contractor) domain.Contractor {
	return domain.Contractor{
		ContractorID:   m.ContractorID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		TaxID:          m.TaxID,
		ContactName:    m.ContactName,
		ContactPhone:   m.ContactPhone,
		Email:          m.Email,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
