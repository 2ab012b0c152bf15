package dto

import (
	"time"

	"github.com/eventstaff/esa_backend/internal/core/domain"
)

// CreatePersonnelRequest defines data for registering a staff member.
type CreatePersonnelRequest struct {
	Role       domain.PersonnelRole `json:"role" binding:"required,oneof=ADMIN ADMIN_SUPPORT OPERATIONAL"`
	FirstName  string               `json:"firstName" binding:"required"`
	LastName   string               `json:"lastName" binding:"required"`
	Email      string               `json:"email" binding:"required,email"`
	Phone      string               `json:"phone"`
	DocumentID string               `json:"documentID"`
}

// UpdatePersonnelRequest defines the fields an admin may change. Pointers
// distinguish omitted fields from zero values.
type UpdatePersonnelRequest struct {
	Role       *domain.PersonnelRole `json:"role" binding:"omitempty,oneof=ADMIN ADMIN_SUPPORT OPERATIONAL"`
	FirstName  *string               `json:"firstName"`
	LastName   *string               `json:"lastName"`
	Phone      *string               `json:"phone"`
	DocumentID *string               `json:"documentID"`
	IsActive   *bool                 `json:"isActive"`
}

// ProvisionUserRequest defines data for creating and linking a login identity
// to an existing personnel row.
type ProvisionUserRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

// PersonnelResponse defines data returned for a staff member.
type PersonnelResponse struct {
	PersonnelID    string               `json:"personnelID"`
	OrganizationID string               `json:"organizationID"`
	UserID         *string              `json:"userID,omitempty"`
	Role           domain.PersonnelRole `json:"role"`
	FirstName      string               `json:"firstName"`
	LastName       string               `json:"lastName"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	DocumentID     string               `json:"documentID"`
	IsActive       bool                 `json:"isActive"`
	CreatedAt      time.Time            `json:"createdAt"`
}

// ToPersonnelResponse converts domain.Personnel to DTO.
func ToPersonnelResponse(p *domain.Personnel) PersonnelResponse {
	return PersonnelResponse{
		PersonnelID:    p.PersonnelID,
		OrganizationID: p.OrganizationID,
		UserID:         p.UserID,
		Role:           p.Role,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Email:          p.Email,
		Phone:          p.Phone,
		DocumentID:     p.DocumentID,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
	}
}

// ListPersonnelResponse wraps a list of staff members.
type ListPersonnelResponse struct {
	Personnel []PersonnelResponse `json:"personnel"`
}

// ToListPersonnelResponse converts a slice of domain.Personnel to DTO.
func ToListPersonnelResponse(ps []domain.Personnel) ListPersonnelResponse {
	list := make([]PersonnelResponse, len(ps))
	for i := range ps {
		list[i] = ToPersonnelResponse(&ps[i])
	}
	return ListPersonnelResponse{Personnel: list}
}

// --- Contractor DTOs ---

// CreateContractorRequest defines data for registering a contracting client.
type CreateContractorRequest struct {
	Name         string `json:"name" binding:"required"`
	TaxID        string `json:"taxID"`
	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	Email        string `json:"email" binding:"omitempty,email"`
}

// UpdateContractorRequest defines the updatable contractor fields.
type UpdateContractorRequest struct {
	Name         *string `json:"name"`
	TaxID        *string `json:"taxID"`
	ContactName  *string `json:"contactName"`
	ContactPhone *string `json:"contactPhone"`
	Email        *string `json:"email" binding:"omitempty,email"`
	IsActive     *bool   `json:"isActive"`
}

// ContractorResponse defines data returned for a contractor.
type ContractorResponse struct {
	ContractorID   string    `json:"contractorID"`
	OrganizationID string    `json:"organizationID"`
	Name           string    `json:"name"`
	TaxID          string    `json:"taxID"`
	ContactName    string    `json:"contactName"`
	ContactPhone   string    `json:"contactPhone"`
	Email          string    `json:"email"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ToContractorResponse converts domain.Contractor to DTO.
func ToContractorResponse(c *domain.Contractor) ContractorResponse {
	return ContractorResponse{
		ContractorID:   c.ContractorID,
		OrganizationID: c.OrganizationID,
		Name:           c.Name,
		TaxID:          c.TaxID,
		ContactName:    c.ContactName,
		ContactPhone:   c.ContactPhone,
		Email:          c.Email,
		IsActive:       c.IsActive,
		CreatedAt:      c.CreatedAt,
	}
}

// ListContractorsResponse wraps a list of contractors.
type ListContractorsResponse struct {
	Contractors []ContractorResponse `json:"contractors"`
}

// ToListContractorsResponse converts a slice of domain.Contractor to DTO.
func ToListContractorsResponse(cs []domain.Contractor) ListContractorsResponse {
	list := make([]ContractorResponse, len(cs))
	for i := range cs {
		list[i] = ToContractorResponse(&cs[i])
	}
	return ListContractorsResponse{Contractors: list}
}
