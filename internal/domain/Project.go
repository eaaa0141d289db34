package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type ProjectStatus string

const (
	ProjectStatusPlanning  ProjectStatus = "planning"
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
)

type Project struct {
	ID               string              `json:"id"`
	OrganizationID   string              `json:"organization_id"`
	OwnerID          *string             `json:"owner_id"`
	ProjectManagerID *string             `json:"project_manager_id"`
	CompanyID        *string             `json:"company_id"`
	DealID           *string             `json:"deal_id"`
	Name             string              `json:"name"`
	Description      *string             `json:"description"`
	Status           ProjectStatus       `json:"project_status"`
	Priority         Priority            `json:"priority"`
	StartDate        *time.Time          `json:"start_date"`
	DueDate          *time.Time          `json:"due_date"`
	CompletionDate   *time.Time          `json:"completion_date"`
	EstimatedHours   decimal.NullDecimal `json:"estimated_hours"`
	ActualHours      decimal.NullDecimal `json:"actual_hours"`
	Tags             []string            `json:"tags"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
	DeletedAt        *time.Time          `json:"-"`
}

// SyncCompletion preenche completion_date ao concluir e limpa ao reabrir
func (p *Project) SyncCompletion(now time.Time) {
	if p.Status != ProjectStatusCompleted {
		p.CompletionDate = nil
		return
	}
	if p.CompletionDate == nil {
		p.CompletionDate = &now
	}
}

type CreateProjectRequest struct {
	Name             string           `json:"name" validate:"required,min=2,max=255"`
	Description      *string          `json:"description"`
	Status           *ProjectStatus   `json:"project_status" validate:"omitempty,oneof=planning active on_hold completed cancelled"`
	Priority         *Priority        `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	CompanyID        *string          `json:"company_id" validate:"omitempty,uuid"`
	DealID           *string          `json:"deal_id" validate:"omitempty,uuid"`
	StartDate        *time.Time       `json:"start_date"`
	DueDate          *time.Time       `json:"due_date"`
	EstimatedHours   *decimal.Decimal `json:"estimated_hours" validate:"omitempty,gt=0"`
	OwnerID          *string          `json:"owner_id" validate:"omitempty,uuid"`
	ProjectManagerID *string          `json:"project_manager_id" validate:"omitempty,uuid"`
	Tags             []string         `json:"tags" validate:"omitempty,dive,max=50"`
}

type UpdateProjectRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=2,max=255"`
	Description      *string          `json:"description"`
	Status           *ProjectStatus   `json:"project_status" validate:"omitempty,oneof=planning active on_hold completed cancelled"`
	Priority         *Priority        `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	CompanyID        *string          `json:"company_id" validate:"omitempty,uuid"`
	DealID           *string          `json:"deal_id" validate:"omitempty,uuid"`
	StartDate        *time.Time       `json:"start_date"`
	DueDate          *time.Time       `json:"due_date"`
	CompletionDate   *time.Time       `json:"completion_date"`
	EstimatedHours   *decimal.Decimal `json:"estimated_hours" validate:"omitempty,gt=0"`
	ActualHours      *decimal.Decimal `json:"actual_hours" validate:"omitempty,gt=0"`
	OwnerID          *string          `json:"owner_id" validate:"omitempty,uuid"`
	ProjectManagerID *string          `json:"project_manager_id" validate:"omitempty,uuid"`
	Tags             []string         `json:"tags" validate:"omitempty,dive,max=50"`
}

func (r UpdateProjectRequest) Apply(p *Project) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = r.Description
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.Priority != nil {
		p.Priority = *r.Priority
	}
	if r.CompanyID != nil {
		p.CompanyID = r.CompanyID
	}
	if r.DealID != nil {
		p.DealID = r.DealID
	}
	if r.StartDate != nil {
		p.StartDate = r.StartDate
	}
	if r.DueDate != nil {
		p.DueDate = r.DueDate
	}
	if r.CompletionDate != nil {
		p.CompletionDate = r.CompletionDate
	}
	if r.EstimatedHours != nil {
		p.EstimatedHours = decimal.NewNullDecimal(*r.EstimatedHours)
	}
	if r.ActualHours != nil {
		p.ActualHours = decimal.NewNullDecimal(*r.ActualHours)
	}
	if r.OwnerID != nil {
		p.OwnerID = r.OwnerID
	}
	if r.ProjectManagerID != nil {
		p.ProjectManagerID = r.ProjectManagerID
	}
	if r.Tags != nil {
		p.Tags = r.Tags
	}
}

type ProjectFilter struct {
	PageParams
	Search           string
	Status           string
	Priority         string
	CompanyID        string
	DealID           string
	OwnerID          string
	ProjectManagerID string
	Tags             []string
}
