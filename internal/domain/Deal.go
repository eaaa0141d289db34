package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type DealStage string

const (
	DealStageLead        DealStage = "lead"
	DealStageQualified   DealStage = "qualified"
	DealStageProposal    DealStage = "proposal"
	DealStageNegotiation DealStage = "negotiation"
	DealStageClosedWon   DealStage = "closed_won"
	DealStageClosedLost  DealStage = "closed_lost"
)

// DealStages na ordem do pipeline
var DealStages = []DealStage{
	DealStageLead,
	DealStageQualified,
	DealStageProposal,
	DealStageNegotiation,
	DealStageClosedWon,
	DealStageClosedLost,
}

var stageProbability = map[DealStage]int{
	DealStageLead:        10,
	DealStageQualified:   25,
	DealStageProposal:    50,
	DealStageNegotiation: 75,
	DealStageClosedWon:   100,
	DealStageClosedLost:  0,
}

func (s DealStage) Valid() bool {
	_, ok := stageProbability[s]
	return ok
}

// DefaultProbability é a probabilidade usada quando a requisição não informa uma
func (s DealStage) DefaultProbability() int {
	return stageProbability[s]
}

func (s DealStage) IsClosed() bool {
	return s == DealStageClosedWon || s == DealStageClosedLost
}

type Deal struct {
	ID                string          `json:"id"`
	OrganizationID    string          `json:"organization_id"`
	OwnerID           *string         `json:"owner_id"`
	Title             string          `json:"title"`
	Value             decimal.Decimal `json:"value"`
	Currency          string          `json:"currency"`
	Stage             DealStage       `json:"stage"`
	Probability       int             `json:"probability"`
	ExpectedCloseDate *time.Time      `json:"expected_close_date"`
	ActualCloseDate   *time.Time      `json:"actual_close_date"`
	ContactID         *string         `json:"contact_id"`
	ContactName       *string         `json:"contact_name"`
	CompanyID         *string         `json:"company_id"`
	CompanyName       *string         `json:"company_name"`
	LostReason        *string         `json:"lost_reason"`
	Tags              []string        `json:"tags"`
	Notes             *string         `json:"notes"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         *time.Time      `json:"-"`
}

type CreateDealRequest struct {
	Title             string           `json:"title" validate:"required,min=2,max=255"`
	Value             *decimal.Decimal `json:"value" validate:"omitempty,gte=0"`
	Currency          *string          `json:"currency" validate:"omitempty,len=3,alpha"`
	Stage             *DealStage       `json:"stage" validate:"omitempty,oneof=lead qualified proposal negotiation closed_won closed_lost"`
	Probability       *int             `json:"probability" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date"`
	ContactID         *string          `json:"contact_id" validate:"omitempty,uuid"`
	CompanyID         *string          `json:"company_id" validate:"omitempty,uuid"`
	OwnerID           *string          `json:"owner_id" validate:"omitempty,uuid"`
	LostReason        *string          `json:"lost_reason"`
	Tags              []string         `json:"tags" validate:"omitempty,dive,max=50"`
	Notes             *string          `json:"notes"`
}

type UpdateDealRequest struct {
	Title             *string          `json:"title" validate:"omitempty,min=2,max=255"`
	Value             *decimal.Decimal `json:"value" validate:"omitempty,gte=0"`
	Currency          *string          `json:"currency" validate:"omitempty,len=3,alpha"`
	Stage             *DealStage       `json:"stage" validate:"omitempty,oneof=lead qualified proposal negotiation closed_won closed_lost"`
	Probability       *int             `json:"probability" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate *time.Time       `json:"expected_close_date"`
	ActualCloseDate   *time.Time       `json:"actual_close_date"`
	ContactID         *string          `json:"contact_id" validate:"omitempty,uuid"`
	CompanyID         *string          `json:"company_id" validate:"omitempty,uuid"`
	OwnerID           *string          `json:"owner_id" validate:"omitempty,uuid"`
	LostReason        *string          `json:"lost_reason"`
	Tags              []string         `json:"tags" validate:"omitempty,dive,max=50"`
	Notes             *string          `json:"notes"`
}

func (r UpdateDealRequest) Apply(d *Deal) {
	if r.Title != nil {
		d.Title = *r.Title
	}
	if r.Value != nil {
		d.Value = *r.Value
	}
	if r.Currency != nil {
		d.Currency = *r.Currency
	}
	if r.Stage != nil {
		d.Stage = *r.Stage
	}
	if r.Probability != nil {
		d.Probability = *r.Probability
	}
	if r.ExpectedCloseDate != nil {
		d.ExpectedCloseDate = r.ExpectedCloseDate
	}
	if r.ActualCloseDate != nil {
		d.ActualCloseDate = r.ActualCloseDate
	}
	if r.ContactID != nil {
		d.ContactID = r.ContactID
	}
	if r.CompanyID != nil {
		d.CompanyID = r.CompanyID
	}
	if r.OwnerID != nil {
		d.OwnerID = r.OwnerID
	}
	if r.LostReason != nil {
		d.LostReason = r.LostReason
	}
	if r.Tags != nil {
		d.Tags = r.Tags
	}
	if r.Notes != nil {
		d.Notes = r.Notes
	}
}

// UpdateStageRequest move o negócio para qualquer etapa, sem regra de transição
type UpdateStageRequest struct {
	Stage       DealStage `json:"stage" validate:"required,oneof=lead qualified proposal negotiation closed_won closed_lost"`
	Probability *int      `json:"probability" validate:"omitempty,gte=0,lte=100"`
	LostReason  *string   `json:"lost_reason"`
}

type DealFilter struct {
	PageParams
	Search    string
	Stage     string
	CompanyID string
	ContactID string
	OwnerID   string
	MinValue  *decimal.Decimal
	MaxValue  *decimal.Decimal
}
