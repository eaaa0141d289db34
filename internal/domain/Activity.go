package domain

import "time"

type ActivityType string

const (
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeTask    ActivityType = "task"
	ActivityTypeNote    ActivityType = "note"
)

type Activity struct {
	ID             string       `json:"id"`
	OrganizationID string       `json:"organization_id"`
	OwnerID        *string      `json:"owner_id"`
	Type           ActivityType `json:"type"`
	Title          string       `json:"title"`
	Description    *string      `json:"description"`
	DueDate        *time.Time   `json:"due_date"`
	Completed      bool         `json:"completed"`
	CompletedAt    *time.Time   `json:"completed_at"`
	ContactID      *string      `json:"contact_id"`
	CompanyID      *string      `json:"company_id"`
	DealID         *string      `json:"deal_id"`
	CampaignID     *string      `json:"campaign_id"`
	AssignedToID   *string      `json:"assigned_to_id"`
	Priority       Priority     `json:"priority"`
	IsPinned       bool         `json:"is_pinned"`
	Tags           []string     `json:"tags"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
	DeletedAt      *time.Time   `json:"-"`
}

// SetCompleted marca ou desmarca a atividade mantendo completed_at coerente
func (a *Activity) SetCompleted(completed bool, now time.Time) {
	a.Completed = completed
	if !completed {
		a.CompletedAt = nil
		return
	}
	if a.CompletedAt == nil {
		a.CompletedAt = &now
	}
}

type CreateActivityRequest struct {
	Type         ActivityType `json:"type" validate:"required,oneof=call email meeting task note"`
	Title        string       `json:"title" validate:"required,min=1,max=255"`
	Description  *string      `json:"description"`
	DueDate      *time.Time   `json:"due_date"`
	Completed    bool         `json:"completed"`
	ContactID    *string      `json:"contact_id" validate:"omitempty,uuid"`
	CompanyID    *string      `json:"company_id" validate:"omitempty,uuid"`
	DealID       *string      `json:"deal_id" validate:"omitempty,uuid"`
	CampaignID   *string      `json:"campaign_id" validate:"omitempty,uuid"`
	OwnerID      *string      `json:"owner_id" validate:"omitempty,uuid"`
	AssignedToID *string      `json:"assigned_to_id" validate:"omitempty,uuid"`
	Priority     *Priority    `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	IsPinned     bool         `json:"is_pinned"`
	Tags         []string     `json:"tags" validate:"omitempty,dive,max=50"`
}

type UpdateActivityRequest struct {
	Type         *ActivityType `json:"type" validate:"omitempty,oneof=call email meeting task note"`
	Title        *string       `json:"title" validate:"omitempty,min=1,max=255"`
	Description  *string       `json:"description"`
	DueDate      *time.Time    `json:"due_date"`
	Completed    *bool         `json:"completed"`
	ContactID    *string       `json:"contact_id" validate:"omitempty,uuid"`
	CompanyID    *string       `json:"company_id" validate:"omitempty,uuid"`
	DealID       *string       `json:"deal_id" validate:"omitempty,uuid"`
	CampaignID   *string       `json:"campaign_id" validate:"omitempty,uuid"`
	OwnerID      *string       `json:"owner_id" validate:"omitempty,uuid"`
	AssignedToID *string       `json:"assigned_to_id" validate:"omitempty,uuid"`
	Priority     *Priority     `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	IsPinned     *bool         `json:"is_pinned"`
	Tags         []string      `json:"tags" validate:"omitempty,dive,max=50"`
}

func (r UpdateActivityRequest) Apply(a *Activity, now time.Time) {
	if r.Type != nil {
		a.Type = *r.Type
	}
	if r.Title != nil {
		a.Title = *r.Title
	}
	if r.Description != nil {
		a.Description = r.Description
	}
	if r.DueDate != nil {
		a.DueDate = r.DueDate
	}
	if r.Completed != nil {
		a.SetCompleted(*r.Completed, now)
	}
	if r.ContactID != nil {
		a.ContactID = r.ContactID
	}
	if r.CompanyID != nil {
		a.CompanyID = r.CompanyID
	}
	if r.DealID != nil {
		a.DealID = r.DealID
	}
	if r.CampaignID != nil {
		a.CampaignID = r.CampaignID
	}
	if r.OwnerID != nil {
		a.OwnerID = r.OwnerID
	}
	if r.AssignedToID != nil {
		a.AssignedToID = r.AssignedToID
	}
	if r.Priority != nil {
		a.Priority = *r.Priority
	}
	if r.IsPinned != nil {
		a.IsPinned = *r.IsPinned
	}
	if r.Tags != nil {
		a.Tags = r.Tags
	}
}

type CompleteActivityRequest struct {
	Completed *bool `json:"completed"`
}

type ActivityFilter struct {
	PageParams
	Type         string
	Completed    *bool
	ContactID    string
	CompanyID    string
	DealID       string
	CampaignID   string
	OwnerID      string
	AssignedToID string
	Priority     string
	Pinned       *bool
	Overdue      bool
	DueBefore    *time.Time
	DueAfter     *time.Time
}
