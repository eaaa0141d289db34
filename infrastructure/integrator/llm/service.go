package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	llmdomain "github.com/vfg2006/crm-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/crm-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	scoreMaxTokens   = 1024
	defaultMaxTokens = 1500
)

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type LLMIntegrator interface {
	Enabled() bool
	ScoreContact(ctx context.Context, contact *domain.Contact, company *domain.Company) (*domain.LeadScoreResult, error)
	DraftEmail(ctx context.Context, req domain.EmailDraftRequest) (*domain.EmailDraft, error)
	PredictDeal(ctx context.Context, deal *domain.Deal, lastActivityAt *time.Time) (*domain.DealPrediction, error)
	GenerateInsights(ctx context.Context, entity *domain.EntityContext) (*domain.Insights, error)
	SuggestNextAction(ctx context.Context, entity *domain.EntityContext) (*domain.NextAction, error)
	Chat(ctx context.Context, message string) (*domain.ChatReply, error)
}

type Integrator struct {
	cfg    config.LLM
	Client llmclient.Client
	now    func() time.Time
}

func New(cfg config.LLM, client llmclient.Client) *Integrator {
	return &Integrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

func (s *Integrator) Enabled() bool {
	return s.Client.Enabled()
}

func (s *Integrator) ScoreContact(ctx context.Context, contact *domain.Contact, company *domain.Company) (*domain.LeadScoreResult, error) {
	var result llmdomain.LeadScore
	if err := s.ask(ctx, "", scoringPrompt(contact, company), scoreMaxTokens, &result); err != nil {
		logrus.WithError(err).WithField("contact_id", contact.ID).Error("ai: falha ao pontuar contato")
		return nil, err
	}

	score := clamp(result.Score)
	factors := make([]domain.ScoreFactor, 0, len(result.Factors))
	for _, f := range result.Factors {
		factors = append(factors, domain.ScoreFactor{Factor: f.Factor, Impact: f.Impact, Weight: f.Weight})
	}

	return &domain.LeadScoreResult{
		ContactID: contact.ID,
		Score:     score,
		Grade:     domain.GradeForScore(score),
		Reasoning: result.Reasoning,
		Factors:   factors,
	}, nil
}

func (s *Integrator) DraftEmail(ctx context.Context, req domain.EmailDraftRequest) (*domain.EmailDraft, error) {
	var result llmdomain.EmailDraft
	if err := s.ask(ctx, "", emailPrompt(req), defaultMaxTokens, &result); err != nil {
		logrus.WithError(err).WithField("purpose", req.Purpose).Error("ai: falha ao gerar rascunho de email")
		return nil, err
	}

	if result.Subject == "" && result.Body == "" {
		return nil, fmt.Errorf("%w: rascunho vazio", domain.ErrUpstream)
	}

	return &domain.EmailDraft{Subject: result.Subject, Body: result.Body}, nil
}

func (s *Integrator) PredictDeal(ctx context.Context, deal *domain.Deal, lastActivityAt *time.Time) (*domain.DealPrediction, error) {
	ageDays := int(s.now().Sub(deal.CreatedAt).Hours() / 24)

	var result llmdomain.DealPrediction
	if err := s.ask(ctx, "", dealPrompt(deal, ageDays, lastActivityAt), defaultMaxTokens, &result); err != nil {
		logrus.WithError(err).WithField("deal_id", deal.ID).Error("ai: falha ao prever negócio")
		return nil, err
	}

	return &domain.DealPrediction{
		DealID:          deal.ID,
		WinProbability:  clamp(result.WinProbability),
		Reasoning:       result.Reasoning,
		Recommendations: nonNil(result.Recommendations),
		RiskFactors:     nonNil(result.RiskFactors),
	}, nil
}

func (s *Integrator) GenerateInsights(ctx context.Context, entity *domain.EntityContext) (*domain.Insights, error) {
	var result llmdomain.Insights
	if err := s.ask(ctx, "", insightsPrompt(entity), defaultMaxTokens, &result); err != nil {
		logrus.WithError(err).WithField("entity_id", entity.ID).Error("ai: falha ao gerar insights")
		return nil, err
	}

	sentiment := strings.ToLower(strings.TrimSpace(result.SentimentAnalysis))
	switch sentiment {
	case "positive", "neutral", "negative":
	default:
		sentiment = "neutral"
	}

	return &domain.Insights{
		Summary:           result.Summary,
		KeyPoints:         nonNil(result.KeyPoints),
		SentimentAnalysis: sentiment,
		NextActions:       nonNil(result.NextActions),
	}, nil
}

func (s *Integrator) SuggestNextAction(ctx context.Context, entity *domain.EntityContext) (*domain.NextAction, error) {
	var result llmdomain.NextAction
	if err := s.ask(ctx, "", nextActionPrompt(entity), scoreMaxTokens, &result); err != nil {
		logrus.WithError(err).WithField("entity_id", entity.ID).Error("ai: falha ao sugerir próxima ação")
		return nil, err
	}

	priority := strings.ToLower(strings.TrimSpace(result.Priority))
	switch priority {
	case "low", "medium", "high", "urgent":
	default:
		priority = "medium"
	}

	action := &domain.NextAction{
		Action:    result.Action,
		Priority:  priority,
		Reasoning: result.Reasoning,
	}

	if suggested, err := utils.ParseDate(result.SuggestedDate); err == nil {
		action.SuggestedDate = suggested
	} else {
		logrus.WithField("suggested_date", result.SuggestedDate).Warn("ai: data sugerida inválida, ignorando")
	}

	return action, nil
}

// Chat responde a mensagem do usuário; a ação sugerida só é devolvida quando válida
func (s *Integrator) Chat(ctx context.Context, message string) (*domain.ChatReply, error) {
	text, err := s.complete(ctx, chatSystemPrompt, message, scoreMaxTokens)
	if err != nil {
		logrus.WithError(err).Error("ai: falha no chat")
		return nil, err
	}

	var result llmdomain.ChatReply
	if err := decodeJSON(text, &result); err != nil || result.Response == "" {
		// resposta em texto livre, sem ação
		return &domain.ChatReply{Response: strings.TrimSpace(text)}, nil
	}

	reply := &domain.ChatReply{Response: result.Response}
	if result.Action != nil {
		if action, ok := validateAction(result.Action); ok {
			reply.Action = action
		} else {
			logrus.WithFields(logrus.Fields{
				"type":   result.Action.Type,
				"entity": result.Action.Entity,
			}).Warn("ai: ação do chat descartada")
		}
	}

	return reply, nil
}

func (s *Integrator) ask(ctx context.Context, system, prompt string, maxTokens int, out any) error {
	text, err := s.complete(ctx, system, prompt, maxTokens)
	if err != nil {
		return err
	}

	if err := decodeJSON(text, out); err != nil {
		return fmt.Errorf("%w: resposta fora do formato esperado: %v", domain.ErrUpstream, err)
	}
	return nil
}

func (s *Integrator) complete(ctx context.Context, system, prompt string, maxTokens int) (string, error) {
	if !s.Client.Enabled() {
		return "", domain.ErrAIDisabled
	}

	resp, err := s.Client.CreateMessage(ctx, &llmdomain.MessageRequest{
		Model:     s.cfg.Model,
		MaxTokens: maxTokens,
		System:    system,
		Messages:  []llmdomain.Message{{Role: llmdomain.RoleUser, Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstream, err)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: resposta sem texto", domain.ErrUpstream)
	}
	return text, nil
}

// decodeJSON lê o objeto entre a primeira '{' e a última '}' (o modelo às vezes cerca o JSON com texto)
func decodeJSON(text string, out any) error {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return fmt.Errorf("nenhum objeto JSON encontrado")
	}
	return json.Unmarshal([]byte(text[start:end+1]), out)
}

var (
	chatActionTypes = map[domain.ChatActionType]bool{
		domain.ChatActionCreate: true,
		domain.ChatActionUpdate: true,
		domain.ChatActionDelete: true,
		domain.ChatActionList:   true,
		domain.ChatActionSearch: true,
	}
	chatEntities = map[domain.EntityType]bool{
		domain.EntityContact:  true,
		domain.EntityCompany:  true,
		domain.EntityDeal:     true,
		domain.EntityActivity: true,
		domain.EntityCampaign: true,
	}
)

func validateAction(raw *llmdomain.ChatAction) (*domain.ChatAction, bool) {
	action := &domain.ChatAction{
		Type:   domain.ChatActionType(strings.ToLower(strings.TrimSpace(raw.Type))),
		Entity: domain.EntityType(strings.ToLower(strings.TrimSpace(raw.Entity))),
		ID:     strings.TrimSpace(raw.ID),
		Data:   raw.Data,
	}

	if !chatActionTypes[action.Type] || !chatEntities[action.Entity] {
		return nil, false
	}
	if (action.Type == domain.ChatActionUpdate || action.Type == domain.ChatActionDelete) && action.ID == "" {
		return nil, false
	}
	if action.Type == domain.ChatActionCreate && len(action.Data) == 0 {
		return nil, false
	}

	return action, true
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
