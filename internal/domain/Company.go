package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CompanyStatus string

const (
	CompanyStatusLead     CompanyStatus = "lead"
	CompanyStatusProspect CompanyStatus = "prospect"
	CompanyStatusCustomer CompanyStatus = "customer"
	CompanyStatusPartner  CompanyStatus = "partner"
	CompanyStatusInactive CompanyStatus = "inactive"
)

type Company struct {
	ID             string              `json:"id"`
	OrganizationID string              `json:"organization_id"`
	OwnerID        *string             `json:"owner_id"`
	Name           string              `json:"name"`
	Domain         *string             `json:"domain"`
	Industry       *string             `json:"industry"`
	Size           *string             `json:"size"`
	Website        *string             `json:"website"`
	Phone          *string             `json:"phone"`
	Address        *string             `json:"address"`
	Status         CompanyStatus       `json:"status"`
	AnnualRevenue  decimal.NullDecimal `json:"annual_revenue"`
	Tags           []string            `json:"tags"`
	Notes          *string             `json:"notes"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
	DeletedAt      *time.Time          `json:"-"`
}

type CreateCompanyRequest struct {
	Name          string           `json:"name" validate:"required,min=2,max=255"`
	Domain        *string          `json:"domain" validate:"omitempty,max=255"`
	Industry      *string          `json:"industry" validate:"omitempty,max=100"`
	Size          *string          `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	Website       *string          `json:"website" validate:"omitempty,url,max=500"`
	Phone         *string          `json:"phone" validate:"omitempty,max=50"`
	Address       *string          `json:"address" validate:"omitempty,max=500"`
	Status        *CompanyStatus   `json:"status" validate:"omitempty,oneof=lead prospect customer partner inactive"`
	AnnualRevenue *decimal.Decimal `json:"annual_revenue" validate:"omitempty,gte=0"`
	OwnerID       *string          `json:"owner_id" validate:"omitempty,uuid"`
	Tags          []string         `json:"tags" validate:"omitempty,dive,max=50"`
	Notes         *string          `json:"notes"`
}

type UpdateCompanyRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Domain        *string          `json:"domain" validate:"omitempty,max=255"`
	Industry      *string          `json:"industry" validate:"omitempty,max=100"`
	Size          *string          `json:"size" validate:"omitempty,oneof=1-10 11-50 51-200 201-500 501-1000 1000+"`
	Website       *string          `json:"website" validate:"omitempty,url,max=500"`
	Phone         *string          `json:"phone" validate:"omitempty,max=50"`
	Address       *string          `json:"address" validate:"omitempty,max=500"`
	Status        *CompanyStatus   `json:"status" validate:"omitempty,oneof=lead prospect customer partner inactive"`
	AnnualRevenue *decimal.Decimal `json:"annual_revenue" validate:"omitempty,gte=0"`
	OwnerID       *string          `json:"owner_id" validate:"omitempty,uuid"`
	Tags          []string         `json:"tags" validate:"omitempty,dive,max=50"`
	Notes         *string          `json:"notes"`
}

// Apply copia para a empresa os campos presentes na requisição
func (r UpdateCompanyRequest) Apply(c *Company) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Domain != nil {
		c.Domain = r.Domain
	}
	if r.Industry != nil {
		c.Industry = r.Industry
	}
	if r.Size != nil {
		c.Size = r.Size
	}
	if r.Website != nil {
		c.Website = r.Website
	}
	if r.Phone != nil {
		c.Phone = r.Phone
	}
	if r.Address != nil {
		c.Address = r.Address
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.AnnualRevenue != nil {
		c.AnnualRevenue = decimal.NewNullDecimal(*r.AnnualRevenue)
	}
	if r.OwnerID != nil {
		c.OwnerID = r.OwnerID
	}
	if r.Tags != nil {
		c.Tags = r.Tags
	}
	if r.Notes != nil {
		c.Notes = r.Notes
	}
}

type CompanyFilter struct {
	PageParams
	Search   string
	Industry string
	Size     string
	Status   string
	Tag      string
	OwnerID  string
}
