package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CampaignStatus string

const (
	CampaignStatusDraft     CampaignStatus = "draft"
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusArchived  CampaignStatus = "archived"
)

type CampaignGoalType string

const (
	GoalTypeRevenue    CampaignGoalType = "revenue"
	GoalTypeDeals      CampaignGoalType = "deals"
	GoalTypeContacts   CampaignGoalType = "contacts"
	GoalTypeActivities CampaignGoalType = "activities"
)

type Campaign struct {
	ID              string              `json:"id"`
	OrganizationID  string              `json:"organization_id"`
	OwnerID         *string             `json:"owner_id"`
	Name            string              `json:"name"`
	Description     *string             `json:"description"`
	Status          CampaignStatus      `json:"status"`
	StartDate       *time.Time          `json:"start_date"`
	EndDate         *time.Time          `json:"end_date"`
	GoalType        *CampaignGoalType   `json:"goal_type"`
	GoalValue       decimal.NullDecimal `json:"goal_value"`
	CurrentProgress decimal.Decimal     `json:"current_progress"`
	Budget          decimal.NullDecimal `json:"budget"`
	ContactCount    int64               `json:"contact_count"`
	Tags            []string            `json:"tags"`
	Notes           *string             `json:"notes"`
	Contacts        []*CampaignContact  `json:"contacts,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	DeletedAt       *time.Time          `json:"-"`
}

// ProgressPercent é o progresso relativo à meta (0 quando não há meta)
func (c Campaign) ProgressPercent() float64 {
	if !c.GoalValue.Valid || c.GoalValue.Decimal.IsZero() {
		return 0
	}
	pct, _ := c.CurrentProgress.Div(c.GoalValue.Decimal).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	return pct
}

type CampaignContactStatus string

const (
	CampaignContactPending      CampaignContactStatus = "pending"
	CampaignContactSent         CampaignContactStatus = "sent"
	CampaignContactOpened       CampaignContactStatus = "opened"
	CampaignContactClicked      CampaignContactStatus = "clicked"
	CampaignContactBounced      CampaignContactStatus = "bounced"
	CampaignContactUnsubscribed CampaignContactStatus = "unsubscribed"
)

type CampaignContact struct {
	CampaignID string                `json:"campaign_id"`
	ContactID  string                `json:"contact_id"`
	Name       string                `json:"name"`
	Email      *string               `json:"email"`
	LeadScore  int                   `json:"lead_score"`
	Status     CampaignContactStatus `json:"status"`
	SentAt     *time.Time            `json:"sent_at"`
	OpenedAt   *time.Time            `json:"opened_at"`
	ClickedAt  *time.Time            `json:"clicked_at"`
	AddedAt    time.Time             `json:"added_at"`
}

// UpdateCampaignContactRequest registra o acompanhamento do envio para um membro da campanha
type UpdateCampaignContactRequest struct {
	Status    *CampaignContactStatus `json:"status" validate:"omitempty,oneof=pending sent opened clicked bounced unsubscribed"`
	SentAt    *time.Time             `json:"sent_at"`
	OpenedAt  *time.Time             `json:"opened_at"`
	ClickedAt *time.Time             `json:"clicked_at"`
}

// Apply usa as datas informadas; sem elas, um status de engajamento carimba now
// na etapa correspondente e nas anteriores (clique implica abertura e envio).
func (r UpdateCampaignContactRequest) Apply(cc *CampaignContact, now time.Time) {
	if r.SentAt != nil {
		cc.SentAt = r.SentAt
	}
	if r.OpenedAt != nil {
		cc.OpenedAt = r.OpenedAt
	}
	if r.ClickedAt != nil {
		cc.ClickedAt = r.ClickedAt
	}
	if r.Status == nil {
		return
	}

	cc.Status = *r.Status
	stamp := func(t **time.Time) {
		if *t == nil {
			*t = &now
		}
	}
	switch cc.Status {
	case CampaignContactClicked:
		stamp(&cc.ClickedAt)
		fallthrough
	case CampaignContactOpened:
		stamp(&cc.OpenedAt)
		fallthrough
	case CampaignContactSent:
		stamp(&cc.SentAt)
	}
}

type CreateCampaignRequest struct {
	Name        string            `json:"name" validate:"required,min=2,max=255"`
	Description *string           `json:"description"`
	Status      *CampaignStatus   `json:"status" validate:"omitempty,oneof=draft active paused completed archived"`
	StartDate   *time.Time        `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
	GoalType    *CampaignGoalType `json:"goal_type" validate:"omitempty,oneof=revenue deals contacts activities"`
	GoalValue   *decimal.Decimal  `json:"goal_value" validate:"omitempty,gte=0"`
	Budget      *decimal.Decimal  `json:"budget" validate:"omitempty,gte=0"`
	OwnerID     *string           `json:"owner_id" validate:"omitempty,uuid"`
	Tags        []string          `json:"tags" validate:"omitempty,dive,max=50"`
	Notes       *string           `json:"notes"`
}

type UpdateCampaignRequest struct {
	Name        *string           `json:"name" validate:"omitempty,min=2,max=255"`
	Description *string           `json:"description"`
	Status      *CampaignStatus   `json:"status" validate:"omitempty,oneof=draft active paused completed archived"`
	StartDate   *time.Time        `json:"start_date"`
	EndDate     *time.Time        `json:"end_date"`
	GoalType    *CampaignGoalType `json:"goal_type" validate:"omitempty,oneof=revenue deals contacts activities"`
	GoalValue   *decimal.Decimal  `json:"goal_value" validate:"omitempty,gte=0"`
	Budget      *decimal.Decimal  `json:"budget" validate:"omitempty,gte=0"`
	OwnerID     *string           `json:"owner_id" validate:"omitempty,uuid"`
	Tags        []string          `json:"tags" validate:"omitempty,dive,max=50"`
	Notes       *string           `json:"notes"`
}

func (r UpdateCampaignRequest) Apply(c *Campaign) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
	if r.Status != nil {
		c.Status = *r.Status
	}
	if r.StartDate != nil {
		c.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		c.EndDate = r.EndDate
	}
	if r.GoalType != nil {
		c.GoalType = r.GoalType
	}
	if r.GoalValue != nil {
		c.GoalValue = decimal.NewNullDecimal(*r.GoalValue)
	}
	if r.Budget != nil {
		c.Budget = decimal.NewNullDecimal(*r.Budget)
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

type CampaignFilter struct {
	PageParams
	Search  string
	Status  string
	OwnerID string
}

type CampaignContactsRequest struct {
	ContactIDs []string `json:"contactIds" validate:"required,min=1,max=1000,dive,uuid"`
}

type LeadScoreRange struct {
	Min *int `json:"min" validate:"omitempty,gte=0,lte=100"`
	Max *int `json:"max" validate:"omitempty,gte=0,lte=100"`
}

// ContactSegment seleciona contatos para adicionar a uma campanha
type ContactSegment struct {
	Tags          []string        `json:"tags"`
	LeadScore     *LeadScoreRange `json:"leadScore"`
	LeadGrade     []string        `json:"leadGrade" validate:"omitempty,dive,oneof=A B C D F"`
	Company       *string         `json:"company"`
	CreatedAfter  *time.Time      `json:"createdAfter"`
	CreatedBefore *time.Time      `json:"createdBefore"`
}

type CampaignFilterRequest struct {
	Filter ContactSegment `json:"filter"`
}

type CampaignMembershipResult struct {
	Added   int64 `json:"added,omitempty"`
	Removed int64 `json:"removed,omitempty"`
}
