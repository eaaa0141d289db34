package domain

import (
	"time"
)

type ContactStatus string

const (
	ContactStatusActive       ContactStatus = "active"
	ContactStatusInactive     ContactStatus = "inactive"
	ContactStatusBounced      ContactStatus = "bounced"
	ContactStatusUnsubscribed ContactStatus = "unsubscribed"
)

var LeadGrades = []string{"A", "B", "C", "D", "F"}

// GradeForScore converte o lead score (0-100) em nota A-F
func GradeForScore(score int) string {
	switch {
	case score >= 80:
		return "A"
	case score >= 60:
		return "B"
	case score >= 40:
		return "C"
	case score >= 20:
		return "D"
	default:
		return "F"
	}
}

type Contact struct {
	ID             string        `json:"id"`
	OrganizationID string        `json:"organization_id"`
	OwnerID        *string       `json:"owner_id"`
	CompanyID      *string       `json:"company_id"`
	CompanyName    *string       `json:"company"`
	FirstName      string        `json:"first_name"`
	LastName       string        `json:"last_name"`
	Name           string        `json:"name"`
	Email          *string       `json:"email"`
	Phone          *string       `json:"phone"`
	Title          *string       `json:"title"`
	Status         ContactStatus `json:"status"`
	LeadSource     *string       `json:"lead_source"`
	LeadScore      int           `json:"lead_score"`
	LeadGrade      string        `json:"lead_grade"`
	LeadScoredAt   *time.Time    `json:"lead_scored_at"`
	Tags           []string      `json:"tags"`
	Notes          *string       `json:"notes"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	DeletedAt      *time.Time    `json:"-"`
}

func (c Contact) FullName() string {
	return joinName(c.FirstName, c.LastName)
}

// Fill preenche os campos derivados de leitura
func (c *Contact) Fill() {
	c.Name = c.FullName()
	c.LeadGrade = GradeForScore(c.LeadScore)
	if c.Tags == nil {
		c.Tags = []string{}
	}
}

type CreateContactRequest struct {
	CompanyID  *string        `json:"company_id" validate:"omitempty,uuid"`
	FirstName  string         `json:"first_name" validate:"required,min=1,max=100"`
	LastName   string         `json:"last_name" validate:"omitempty,max=100"`
	Email      *string        `json:"email" validate:"omitempty,email,max=255"`
	Phone      *string        `json:"phone" validate:"omitempty,max=50"`
	Title      *string        `json:"title" validate:"omitempty,max=100"`
	Status     *ContactStatus `json:"status" validate:"omitempty,oneof=active inactive bounced unsubscribed"`
	LeadSource *string        `json:"lead_source" validate:"omitempty,max=100"`
	LeadScore  *int           `json:"lead_score" validate:"omitempty,gte=0,lte=100"`
	OwnerID    *string        `json:"owner_id" validate:"omitempty,uuid"`
	Tags       []string       `json:"tags" validate:"omitempty,dive,max=50"`
	Notes      *string        `json:"notes"`
}

type UpdateContactRequest struct {
	CompanyID  *string        `json:"company_id" validate:"omitempty,uuid"`
	FirstName  *string        `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName   *string        `json:"last_name" validate:"omitempty,max=100"`
	Email      *string        `json:"email" validate:"omitempty,email,max=255"`
	Phone      *string        `json:"phone" validate:"omitempty,max=50"`
	Title      *string        `json:"title" validate:"omitempty,max=100"`
	Status     *ContactStatus `json:"status" validate:"omitempty,oneof=active inactive bounced unsubscribed"`
	LeadSource *string        `json:"lead_source" validate:"omitempty,max=100"`
	LeadScore  *int           `json:"lead_score" validate:"omitempty,gte=0,lte=100"`
	OwnerID    *string        `json:"owner_id" validate:"omitempty,uuid"`
	Tags       []string       `json:"tags" validate:"omitempty,dive,max=50"`
	Notes      *string        `json:"notes"`
}

func (r UpdateContactRequest) Apply(c *Contact) {
	if r.CompanyID != nil {
		c.CompanyID = r.CompanyID
	}
	if r.FirstName != nil {
		c.FirstName = *r.FirstName
	}
	if r.LastName != nil {
		c.LastName = *r.LastName
	}
	if r.Email != nil {
		c.Email = r.Email
	}
	if r.Phone != nil {
		c.Phone = r.Phone
	}
	if r.Title != nil {
		c.Title = r.Title
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.LeadSource != nil {
		c.LeadSource = r.LeadSource
	}
	if r.LeadScore != nil {
		c.LeadScore = *r.LeadScore
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
	c.Fill()
}

type ContactFilter struct {
	PageParams
	Search        string
	CompanyID     string
	Status        string
	LeadSource    string
	OwnerID       string
	MinLeadScore  *int
	MaxLeadScore  *int
	LeadGrades    []string
	Tags          []string
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

// ScoreRange devolve o intervalo de score de uma nota
func ScoreRange(grade string) (min, max int, ok bool) {
	switch grade {
	case "A":
		return 80, 100, true
	case "B":
		return 60, 79, true
	case "C":
		return 40, 59, true
	case "D":
		return 20, 39, true
	case "F":
		return 0, 19, true
	}
	return 0, 0, false
}
