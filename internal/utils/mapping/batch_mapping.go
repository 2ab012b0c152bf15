package mapping

import (
	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/eventstaff/esa_backend/internal/models"
)

// ToModelParticipation converts a domain Participation to a model Participation
func ToModelParticipation(d domain.Participation) models.Participation {
	return models.Participation{
		ParticipationID: d.ParticipationID,
		ContractEventID: d.ContractEventID,
		PersonnelID:     d.PersonnelID,
		Attendance:      models.AttendanceState(d.Attendance),
		ArrivalTime:     d.ArrivalTime,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainParticipation converts a model Participation to a domain Participation
func ToDomainParticipation(m models.Participation) domain.Participation {
	return domain.Participation{
		ParticipationID: m.ParticipationID,
		ContractEventID: m.ContractEventID,
		PersonnelID:     m.PersonnelID,
		Attendance:      domain.AttendanceState(m.Attendance),
		ArrivalTime:     m.ArrivalTime,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAssignedService converts a domain AssignedService to a model AssignedService
func ToModelAssignedService(d domain.AssignedService) models.AssignedService {
	return models.AssignedService{
		AssignedServiceID: d.AssignedServiceID,
		ParticipationID:   d.ParticipationID,
		ServiceTypeID:     d.ServiceTypeID,
		AgreedAmount:      d.AgreedAmount,
		PaymentState:      models.PaymentState(d.PaymentState),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAssignedService converts a model AssignedService to a domain AssignedService
func ToDomainAssignedService(m models.AssignedService) domain.AssignedService {
	return domain.AssignedService{
		AssignedServiceID: m.AssignedServiceID,
		ParticipationID:   m.ParticipationID,
		ServiceTypeID:     m.ServiceTypeID,
		AgreedAmount:      m.AgreedAmount,
		PaymentState:      domain.PaymentState(m.PaymentState),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentBatch converts a domain PaymentBatch to a model PaymentBatch
func ToModelPaymentBatch(d domain.PaymentBatch) models.PaymentBatch {
	return models.PaymentBatch{
		BatchID:        d.BatchID,
		OrganizationID: d.OrganizationID,
		Name:           d.Name,
		Status:         models.BatchStatus(d.Status),
		TotalAmount:    d.TotalAmount,
		ScheduledDate:  d.ScheduledDate,
		Version:        d.Version,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentBatch converts a model PaymentBatch to a domain PaymentBatch
func ToDomainPaymentBatch(m models.PaymentBatch) domain.PaymentBatch {
	return domain.PaymentBatch{
		BatchID:        m.BatchID,
		OrganizationID: m.OrganizationID,
		Name:           m.Name,
		Status:         domain.BatchStatus(m.Status),
		TotalAmount:    m.TotalAmount,
		ScheduledDate:  m.ScheduledDate,
		Version:        m.Version,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentBatchDetail converts a domain PaymentBatchDetail to its model
func ToModelPaymentBatchDetail(d domain.PaymentBatchDetail) models.PaymentBatchDetail {
	return models.PaymentBatchDetail{
		DetailID:          d.DetailID,
		BatchID:           d.BatchID,
		AssignedServiceID: d.AssignedServiceID,
		PersonnelID:       d.PersonnelID,
		Amount:            d.Amount,
		DiscountPct:       d.DiscountPct,
		Attendance:        models.AttendanceState(d.Attendance),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentBatchDetail converts a model PaymentBatchDetail to its domain form
func ToDomainPaymentBatchDetail(m models.PaymentBatchDetail) domain.PaymentBatchDetail {
	return domain.PaymentBatchDetail{
		DetailID:          m.DetailID,
		BatchID:           m.BatchID,
		AssignedServiceID: m.AssignedServiceID,
		PersonnelID:       m.PersonnelID,
		Amount:            m.Amount,
		DiscountPct:       m.DiscountPct,
		Attendance:        domain.AttendanceState(m.Attendance),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelPaymentBatchPersonnel converts a domain PaymentBatchPersonnel to its model
func ToModelPaymentBatchPersonnel(d domain.PaymentBatchPersonnel) models.PaymentBatchPersonnel {
	return models.PaymentBatchPersonnel{
		BatchPersonnelID: d.BatchPersonnelID,
		BatchID:          d.BatchID,
		PersonnelID:      d.PersonnelID,
		ShareAmount:      d.ShareAmount,
		CollectionDone:   d.CollectionDone,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPaymentBatchPersonnel converts a model PaymentBatchPersonnel to its domain form
func ToDomainPaymentBatchPersonnel(m models.PaymentBatchPersonnel) domain.PaymentBatchPersonnel {
	return domain.PaymentBatchPersonnel{
		BatchPersonnelID: m.BatchPersonnelID,
		BatchID:          m.BatchID,
		PersonnelID:      m.PersonnelID,
		ShareAmount:      m.ShareAmount,
		CollectionDone:   m.CollectionDone,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
