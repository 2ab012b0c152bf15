package domain

import "github.com/shopspring/decimal"

// ContractType is a catalog entry defining the base income the agency charges
// for a class of event (wedding, corporate, festival, ...).
type ContractType struct {
	ContractTypeID string          `json:"contractTypeID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	BaseIncome     decimal.Decimal `json:"baseIncome"` // Income charged to the contractor
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// ServiceType is a catalog entry for a service a staff member can perform
// (waiter, security, bartender, ...) with its default pay rate.
type ServiceType struct {
	ServiceTypeID  string          `json:"serviceTypeID"` // Primary Key (UUID)
	OrganizationID string          `json:"organizationID"`
	Name           string          `json:"name"`
	DefaultRate    decimal.Decimal `json:"defaultRate"` // Default monto pactado
	IsActive       bool            `json:"isActive"`
	AuditFields
}
