package models

import "github.com/shopspring/decimal"

// ContractType mirrors the contract_types table.
type ContractType struct {
	ContractTypeID string          `db:"contract_type_id"`
	OrganizationID string          `db:"organization_id"`
	Name           string          `db:"name"`
	BaseIncome     decimal.Decimal `db:"base_income"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}

// ServiceType mirrors the service_types table.
type ServiceType struct {
	ServiceTypeID  string          `db:"service_type_id"`
	OrganizationID string          `db:"organization_id"`
	Name           string          `db:"name"`
	DefaultRate    decimal.Decimal `db:"default_rate"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
