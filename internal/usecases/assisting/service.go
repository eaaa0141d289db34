package assisting

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/infrastructure/integrator/llm"
	"github.com/vfg2006/crm-api/infrastructure/repository"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
)

// recentActivities é quantas atividades entram no contexto enviado ao modelo
const recentActivities = 10

//go:generate mockgen -source=service.go -destination=mocks/service.go -package=mocks

type Assistant interface {
	ScoreContact(ctx context.Context, organizationID, contactID string) (*domain.LeadScoreResult, error)
	DraftEmail(ctx context.Context, organizationID string, req domain.EmailDraftRequest) (*domain.EmailDraft, error)
	PredictDeal(ctx context.Context, organizationID, dealID string) (*domain.DealPrediction, error)
	Insights(ctx context.Context, organizationID string, req domain.EntityRequest) (*domain.Insights, error)
	NextAction(ctx context.Context, organizationID string, req domain.EntityRequest) (*domain.NextAction, error)
	Chat(ctx context.Context, message string) (*domain.ChatReply, error)
}

// LeadScorer é usado pelo job de pontuação em lote
type LeadScorer interface {
	Enabled() bool
	StaleContacts(ctx context.Context, scoredBefore time.Time, limit int) ([]*domain.Contact, error)
	Rescore(ctx context.Context, contact *domain.Contact) (*domain.LeadScoreResult, error)
}

type Service struct {
	llm          llm.LLMIntegrator
	contactRepo  repository.ContactRepository
	companyRepo  repository.CompanyRepository
	dealRepo     repository.DealRepository
	activityRepo repository.ActivityRepository
}

func NewService(
	integrator llm.LLMIntegrator,
	contactRepo repository.ContactRepository,
	companyRepo repository.CompanyRepository,
	dealRepo repository.DealRepository,
	activityRepo repository.ActivityRepository,
) *Service {
	return &Service{
		llm:          integrator,
		contactRepo:  contactRepo,
		companyRepo:  companyRepo,
		dealRepo:     dealRepo,
		activityRepo: activityRepo,
	}
}

func (s *Service) Enabled() bool {
	return s.llm.Enabled()
}

// ScoreContact pontua o contato e grava o resultado; se a IA falhar devolve o score padrão sem gravar
func (s *Service) ScoreContact(ctx context.Context, organizationID, contactID string) (*domain.LeadScoreResult, error) {
	contact, err := s.contact(ctx, organizationID, contactID)
	if err != nil {
		return nil, err
	}

	company, err := s.companyOf(ctx, contact)
	if err != nil {
		return nil, err
	}

	result, err := s.llm.ScoreContact(ctx, contact, company)
	if err != nil {
		logrus.WithError(err).WithField("contact_id", contactID).Warn("Usando score padrão para o contato")
		return &domain.LeadScoreResult{
			ContactID: contact.ID,
			Score:     FallbackScore,
			Grade:     domain.GradeForScore(FallbackScore),
			Reasoning: FallbackReasoning,
			Factors:   []domain.ScoreFactor{},
			Fallback:  true,
		}, nil
	}

	if err := s.contactRepo.UpdateLeadScore(ctx, organizationID, contact.ID, result.Score); err != nil {
		return nil, databaseError(err)
	}

	return result, nil
}

func (s *Service) StaleContacts(ctx context.Context, scoredBefore time.Time, limit int) ([]*domain.Contact, error) {
	contacts, err := s.contactRepo.ListForScoring(ctx, scoredBefore, limit)
	if err != nil {
		return nil, databaseError(err)
	}
	return contacts, nil
}

// Rescore é a pontuação do job: sem score padrão, falhas voltam para quem chamou
func (s *Service) Rescore(ctx context.Context, contact *domain.Contact) (*domain.LeadScoreResult, error) {
	company, err := s.companyOf(ctx, contact)
	if err != nil {
		return nil, err
	}

	result, err := s.llm.ScoreContact(ctx, contact, company)
	if err != nil {
		return nil, upstream(err)
	}

	if err := s.contactRepo.UpdateLeadScore(ctx, contact.OrganizationID, contact.ID, result.Score); err != nil {
		return nil, databaseError(err)
	}

	return result, nil
}

// DraftEmail completa o destinatário com os dados do contato quando informado
func (s *Service) DraftEmail(ctx context.Context, organizationID string, req domain.EmailDraftRequest) (*domain.EmailDraft, error) {
	if req.ContactID != nil && *req.ContactID != "" {
		contact, err := s.contact(ctx, organizationID, *req.ContactID)
		if err != nil {
			return nil, err
		}
		if req.RecipientName == "" {
			req.RecipientName = contact.FullName()
		}
		if req.RecipientTitle == "" && contact.Title != nil {
			req.RecipientTitle = *contact.Title
		}
		if req.CompanyName == "" && contact.CompanyName != nil {
			req.CompanyName = *contact.CompanyName
		}
	}

	if strings.TrimSpace(req.RecipientName) == "" {
		return nil, NewAIError(ErrMissingRecipient, apiErrors.ErrMissingRequiredData, "recipient_name")
	}
	if req.Tone == "" {
		req.Tone = "professional"
	}

	draft, err := s.llm.DraftEmail(ctx, req)
	if err != nil {
		return nil, upstream(err)
	}

	return draft, nil
}

func (s *Service) PredictDeal(ctx context.Context, organizationID, dealID string) (*domain.DealPrediction, error) {
	deal, err := s.dealRepo.GetByID(ctx, organizationID, dealID)
	if err != nil {
		return nil, databaseError(err)
	}
	if deal == nil {
		return nil, notFound(domain.EntityDeal, dealID)
	}

	activities, err := s.activities(ctx, organizationID, domain.ActivityFilter{DealID: deal.ID}, 1)
	if err != nil {
		return nil, err
	}

	var lastActivityAt *time.Time
	if len(activities) > 0 {
		lastActivityAt = &activities[0].CreatedAt
	}

	prediction, err := s.llm.PredictDeal(ctx, deal, lastActivityAt)
	if err != nil {
		return nil, upstream(err)
	}

	return prediction, nil
}

func (s *Service) Insights(ctx context.Context, organizationID string, req domain.EntityRequest) (*domain.Insights, error) {
	entity, err := s.entityContext(ctx, organizationID, req)
	if err != nil {
		return nil, err
	}

	insights, err := s.llm.GenerateInsights(ctx, entity)
	if err != nil {
		return nil, upstream(err)
	}

	return insights, nil
}

func (s *Service) NextAction(ctx context.Context, organizationID string, req domain.EntityRequest) (*domain.NextAction, error) {
	entity, err := s.entityContext(ctx, organizationID, req)
	if err != nil {
		return nil, err
	}

	action, err := s.llm.SuggestNextAction(ctx, entity)
	if err != nil {
		return nil, upstream(err)
	}

	return action, nil
}

// Chat devolve a resposta do modelo; a ação sugerida nunca é executada aqui
func (s *Service) Chat(ctx context.Context, message string) (*domain.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, NewAIError(ErrEmptyMessage, apiErrors.ErrMissingRequiredData, "message")
	}

	reply, err := s.llm.Chat(ctx, message)
	if err != nil {
		return nil, upstream(err)
	}

	return reply, nil
}

// entityContext carrega o registro e suas atividades recentes
func (s *Service) entityContext(ctx context.Context, organizationID string, req domain.EntityRequest) (*domain.EntityContext, error) {
	entity := &domain.EntityContext{Type: req.EntityType, ID: req.EntityID}
	filter := domain.ActivityFilter{}

	switch req.EntityType {
	case domain.EntityContact:
		contact, err := s.contact(ctx, organizationID, req.EntityID)
		if err != nil {
			return nil, err
		}
		entity.Name = contact.FullName()
		entity.Data = contact
		entity.Notes = notes(contact.Notes)
		filter.ContactID = contact.ID

	case domain.EntityCompany:
		company, err := s.companyRepo.GetByID(ctx, organizationID, req.EntityID)
		if err != nil {
			return nil, databaseError(err)
		}
		if company == nil {
			return nil, notFound(domain.EntityCompany, req.EntityID)
		}
		entity.Name = company.Name
		entity.Data = company
		entity.Notes = notes(company.Notes)
		filter.CompanyID = company.ID

	case domain.EntityDeal:
		deal, err := s.dealRepo.GetByID(ctx, organizationID, req.EntityID)
		if err != nil {
			return nil, databaseError(err)
		}
		if deal == nil {
			return nil, notFound(domain.EntityDeal, req.EntityID)
		}
		entity.Name = deal.Title
		entity.Data = deal
		entity.Notes = notes(deal.Notes)
		filter.DealID = deal.ID

	default:
		return nil, NewAIError(ErrUnsupportedEntity, apiErrors.ErrValidationFailed, string(req.EntityType))
	}

	activities, err := s.activities(ctx, organizationID, filter, recentActivities)
	if err != nil {
		return nil, err
	}
	entity.Activities = activities

	for _, a := range activities {
		if a.Type == domain.ActivityTypeNote && a.Description != nil && *a.Description != "" {
			entity.Notes = append(entity.Notes, *a.Description)
		}
	}
	if len(activities) > 0 {
		entity.LastContactAt = &activities[0].CreatedAt
	}

	return entity, nil
}

// activities devolve as atividades mais recentes primeiro
func (s *Service) activities(ctx context.Context, organizationID string, filter domain.ActivityFilter, limit int) ([]*domain.Activity, error) {
	filter.PageParams = domain.PageParams{Page: 1, Limit: limit, SortBy: "created_at", SortOrder: domain.SortDesc}

	activities, _, err := s.activityRepo.List(ctx, organizationID, filter)
	if err != nil {
		return nil, databaseError(err)
	}
	return activities, nil
}

func (s *Service) contact(ctx context.Context, organizationID, id string) (*domain.Contact, error) {
	contact, err := s.contactRepo.GetByID(ctx, organizationID, id)
	if err != nil {
		return nil, databaseError(err)
	}
	if contact == nil {
		return nil, notFound(domain.EntityContact, id)
	}
	return contact, nil
}

func (s *Service) companyOf(ctx context.Context, contact *domain.Contact) (*domain.Company, error) {
	if contact.CompanyID == nil {
		return nil, nil
	}

	company, err := s.companyRepo.GetByID(ctx, contact.OrganizationID, *contact.CompanyID)
	if err != nil {
		return nil, databaseError(err)
	}
	return company, nil
}

func notes(n *string) []string {
	if n == nil || strings.TrimSpace(*n) == "" {
		return []string{}
	}
	return []string{*n}
}
