package domain

import "time"

type ScoreFactor struct {
	Factor string `json:"factor"`
	Impact string `json:"impact"`
	Weight int    `json:"weight"`
}

type LeadScoreResult struct {
	ContactID string        `json:"contact_id"`
	Score     int           `json:"score"`
	Grade     string        `json:"grade"`
	Reasoning string        `json:"reasoning"`
	Factors   []ScoreFactor `json:"factors"`
	Fallback  bool          `json:"fallback"`
}

type EmailDraftRequest struct {
	ContactID         *string `json:"contact_id" validate:"omitempty,uuid"`
	RecipientName     string  `json:"recipient_name" validate:"required_without=ContactID,max=200"`
	RecipientTitle    string  `json:"recipient_title" validate:"omitempty,max=100"`
	CompanyName       string  `json:"company_name" validate:"omitempty,max=255"`
	Purpose           string  `json:"purpose" validate:"required,oneof=introduction follow_up proposal meeting_request thank_you"`
	Tone              string  `json:"tone" validate:"omitempty,oneof=professional friendly casual"`
	AdditionalContext string  `json:"additional_context" validate:"omitempty,max=2000"`
}

type EmailDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type DealPrediction struct {
	DealID          string   `json:"deal_id"`
	WinProbability  int      `json:"winProbability"`
	Reasoning       string   `json:"reasoning"`
	Recommendations []string `json:"recommendations"`
	RiskFactors     []string `json:"riskFactors"`
}

type EntityType string

const (
	EntityContact  EntityType = "contact"
	EntityCompany  EntityType = "company"
	EntityDeal     EntityType = "deal"
	EntityActivity EntityType = "activity"
	EntityCampaign EntityType = "campaign"
	EntityProject  EntityType = "project"
)

type EntityRequest struct {
	EntityType EntityType `json:"entity_type" validate:"required,oneof=contact company deal"`
	EntityID   string     `json:"entity_id" validate:"required,uuid"`
}

type Insights struct {
	Summary           string   `json:"summary"`
	KeyPoints         []string `json:"keyPoints"`
	SentimentAnalysis string   `json:"sentimentAnalysis"`
	NextActions       []string `json:"nextActions"`
}

type NextAction struct {
	Action        string     `json:"action"`
	Priority      string     `json:"priority"`
	Reasoning     string     `json:"reasoning"`
	SuggestedDate *time.Time `json:"suggestedDate"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required,max=4000"`
}

type ChatActionType string

const (
	ChatActionCreate ChatActionType = "create"
	ChatActionUpdate ChatActionType = "update"
	ChatActionDelete ChatActionType = "delete"
	ChatActionList   ChatActionType = "list"
	ChatActionSearch ChatActionType = "search"
)

// ChatAction é uma sugestão de operação; nunca é executada pelo servidor
type ChatAction struct {
	Type   ChatActionType `json:"type"`
	Entity EntityType     `json:"entity"`
	ID     string         `json:"id,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

type ChatReply struct {
	Response string      `json:"response"`
	Action   *ChatAction `json:"action,omitempty"`
}

// EntityContext reúne os dados de um registro enviados ao modelo para insights e próxima ação
type EntityContext struct {
	Type          EntityType
	ID            string
	Name          string
	Data          any
	Notes         []string
	Activities    []*Activity
	LastContactAt *time.Time
}
