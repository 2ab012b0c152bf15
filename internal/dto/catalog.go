package dto

import (
	"github.com/eventstaff/esa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateContractTypeRequest defines data for a contract-type catalog entry.
type CreateContractTypeRequest struct {
	Name       string          `json:"name" binding:"required"`
	BaseIncome decimal.Decimal `json:"baseIncome" binding:"required"`
}

// UpdateContractTypeRequest defines the updatable contract-type fields.
type UpdateContractTypeRequest struct {
	Name       *string          `json:"name"`
	BaseIncome *decimal.Decimal `json:"baseIncome"`
	IsActive   *bool            `json:"isActive"`
}

// ContractTypeResponse defines data returned for a contract type.
type ContractTypeResponse struct {
	ContractTypeID string          `json:"contractTypeID"`
	Name           string          `json:"name"`
	BaseIncome     decimal.Decimal `json:"baseIncome"`
	IsActive       bool            `json:"isActive"`
}

// ToContractTypeResponse converts domain.ContractType to DTO.
func ToContractTypeResponse(ct *domain.ContractType) ContractTypeResponse {
	return ContractTypeResponse{
		ContractTypeID: ct.ContractTypeID,
		Name:           ct.Name,
		BaseIncome:     ct.BaseIncome,
		IsActive:       ct.IsActive,
	}
}

// ListContractTypesResponse wraps a list of contract types.
type ListContractTypesResponse struct {
	ContractTypes []ContractTypeResponse `json:"contractTypes"`
}

// ToListContractTypesResponse converts a slice of domain.ContractType to DTO.
func ToListContractTypesResponse(cts []domain.ContractType) ListContractTypesResponse {
	list := make([]ContractTypeResponse, len(cts))
	for i := range cts {
		list[i] = ToContractTypeResponse(&cts[i])
	}
	return ListContractTypesResponse{ContractTypes: list}
}

// CreateServiceTypeRequest defines data for a service-type catalog entry.
type CreateServiceTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	DefaultRate decimal.Decimal `json:"defaultRate" binding:"required"`
}

// UpdateServiceTypeRequest defines the updatable service-type fields.
type UpdateServiceTypeRequest struct {
	Name        *string          `json:"name"`
	DefaultRate *decimal.Decimal `json:"defaultRate"`
	IsActive    *bool            `json:"isActive"`
}

// ServiceTypeResponse defines data returned for a service type.
type ServiceTypeResponse struct {
	ServiceTypeID string          `json:"serviceTypeID"`
	Name          string          `json:"name"`
	DefaultRate   decimal.Decimal `json:"defaultRate"`
	IsActive      bool            `json:"isActive"`
}

// ToServiceTypeResponse converts domain.ServiceType to DTO.
func ToServiceTypeResponse(st *domain.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{
		ServiceTypeID: st.ServiceTypeID,
		Name:          st.Name,
		DefaultRate:   st.DefaultRate,
		IsActive:      st.IsActive,
	}
}

// ListServiceTypesResponse wraps a list of service types.
type ListServiceTypesResponse struct {
	ServiceTypes []ServiceTypeResponse `json:"serviceTypes"`
}

// ToListServiceTypesResponse converts a slice of domain.ServiceType to DTO.
func ToListServiceTypesResponse(sts []domain.ServiceType) ListServiceTypesResponse {
	list := make([]ServiceTypeResponse, len(sts))
	for i := range sts {
		list[i] = ToServiceTypeResponse(&sts[i])
	}
	return ListServiceTypesResponse{ServiceTypes: list}
}
