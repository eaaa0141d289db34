package assisting

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	llmmocks "github.com/vfg2006/crm-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/crm-api/infrastructure/repository/mocks"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const (
	orgID     = "11111111-1111-1111-1111-111111111111"
	contactID = "22222222-2222-2222-2222-222222222222"
	companyID = "33333333-3333-3333-3333-333333333333"
	dealID    = "44444444-4444-4444-4444-444444444444"
)

type serviceMocks struct {
	llm        *llmmocks.MockLLMIntegrator
	contacts   *mocks.MockContactRepository
	companies  *mocks.MockCompanyRepository
	deals      *mocks.MockDealRepository
	activities *mocks.MockActivityRepository
}

func newService(t *testing.T) (*Service, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		llm:        llmmocks.NewMockLLMIntegrator(ctrl),
		contacts:   mocks.NewMockContactRepository(ctrl),
		companies:  mocks.NewMockCompanyRepository(ctrl),
		deals:      mocks.NewMockDealRepository(ctrl),
		activities: mocks.NewMockActivityRepository(ctrl),
	}
	return NewService(m.llm, m.contacts, m.companies, m.deals, m.activities), m
}

func strPtr(s string) *string { return &s }

func TestService_ScoreContact(t *testing.T) {
	company := &domain.Company{ID: companyID, Name: "Acme"}
	contact := func() *domain.Contact {
		return &domain.Contact{ID: contactID, OrganizationID: orgID, FirstName: "Ada", CompanyID: strPtr(companyID)}
	}

	tests := []struct {
		name      string
		setup     func(m serviceMocks)
		wantScore int
		wantGrade string
		fallback  bool
		wantCode  string
	}{
		{
			name: "grava o score da IA",
			setup: func(m serviceMocks) {
				m.contacts.EXPECT().GetByID(gomock.Any(), orgID, contactID).Return(contact(), nil)
				m.companies.EXPECT().GetByID(gomock.Any(), orgID, companyID).Return(company, nil)
				m.llm.EXPECT().ScoreContact(gomock.Any(), gomock.Any(), company).
					Return(&domain.LeadScoreResult{ContactID: contactID, Score: 85, Grade: "A"}, nil)
				m.contacts.EXPECT().UpdateLeadScore(gomock.Any(), orgID, contactID, 85).Return(nil)
			},
			wantScore: 85,
			wantGrade: "A",
		},
		{
			name: "falha da IA devolve score padrão sem gravar",
			setup: func(m serviceMocks) {
				m.contacts.EXPECT().GetByID(gomock.Any(), orgID, contactID).Return(contact(), nil)
				m.companies.EXPECT().GetByID(gomock.Any(), orgID, companyID).Return(company, nil)
				m.llm.EXPECT().ScoreContact(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, fmt.Errorf("%w: timeout", domain.ErrUpstream))
			},
			wantScore: FallbackScore,
			wantGrade: "C",
			fallback:  true,
		},
		{
			name: "contato inexistente",
			setup: func(m serviceMocks) {
				m.contacts.EXPECT().GetByID(gomock.Any(), orgID, contactID).Return(nil, nil)
			},
			wantCode: apiErrors.ErrResourceNotFound,
		},
		{
			name: "erro ao gravar",
			setup: func(m serviceMocks) {
				m.contacts.EXPECT().GetByID(gomock.Any(), orgID, contactID).Return(contact(), nil)
				m.companies.EXPECT().GetByID(gomock.Any(), orgID, companyID).Return(company, nil)
				m.llm.EXPECT().ScoreContact(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&domain.LeadScoreResult{Score: 10}, nil)
				m.contacts.EXPECT().UpdateLeadScore(gomock.Any(), orgID, contactID, 10).Return(errors.New("deadlock"))
			},
			wantCode: apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newService(t)
			tt.setup(m)

			result, err := service.ScoreContact(context.Background(), orgID, contactID)
			if tt.wantCode != "" {
				var aiErr *AIError
				require.True(t, errors.As(err, &aiErr))
				assert.Equal(t, tt.wantCode, aiErr.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantGrade, result.Grade)
			assert.Equal(t, tt.fallback, result.Fallback)
			if tt.fallback {
				assert.Equal(t, FallbackReasoning, result.Reasoning)
				assert.NotNil(t, result.Factors)
			}
		})
	}
}

func TestService_Rescore_NoFallback(t *testing.T) {
	service, m := newService(t)
	contact := &domain.Contact{ID: contactID, OrganizationID: orgID}

	m.llm.EXPECT().ScoreContact(gomock.Any(), contact, nil).Return(nil, domain.ErrAIDisabled)

	_, err := service.Rescore(context.Background(), contact)

	var aiErr *AIError
	require.True(t, errors.As(err, &aiErr))
	assert.Equal(t, apiErrors.ErrServiceDisabled, aiErr.Code)
}

func TestService_DraftEmail(t *testing.T) {
	t.Run("completa destinatário pelo contato", func(t *testing.T) {
		service, m := newService(t)

		m.contacts.EXPECT().GetByID(gomock.Any(), orgID, contactID).Return(&domain.Contact{
			ID: contactID, FirstName: "Ada", LastName: "Lovelace", Title: strPtr("CTO"), CompanyName: strPtr("Acme"),
		}, nil)
		m.llm.EXPECT().DraftEmail(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req domain.EmailDraftRequest) (*domain.EmailDraft, error) {
				assert.Equal(t, "Ada Lovelace", req.RecipientName)
				assert.Equal(t, "CTO", req.RecipientTitle)
				assert.Equal(t, "Acme", req.CompanyName)
				assert.Equal(t, "professional", req.Tone)
				return &domain.EmailDraft{Subject: "Olá", Body: "..."}, nil
			})

		draft, err := service.DraftEmail(context.Background(), orgID, domain.EmailDraftRequest{
			ContactID: strPtr(contactID), Purpose: "introduction",
		})
		require.NoError(t, err)
		assert.Equal(t, "Olá", draft.Subject)
	})

	t.Run("sem destinatário", func(t *testing.T) {
		service, _ := newService(t)

		_, err := service.DraftEmail(context.Background(), orgID, domain.EmailDraftRequest{Purpose: "follow_up"})
		assert.ErrorIs(t, err, ErrMissingRecipient)
	})

	t.Run("falha da IA vira 502", func(t *testing.T) {
		service, m := newService(t)
		m.llm.EXPECT().DraftEmail(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("%w: 529", domain.ErrUpstream))

		_, err := service.DraftEmail(context.Background(), orgID, domain.EmailDraftRequest{RecipientName: "Ana", Purpose: "follow_up"})

		var aiErr *AIError
		require.True(t, errors.As(err, &aiErr))
		assert.Equal(t, apiErrors.ErrExternalService, aiErr.Code)
	})
}

func TestService_PredictDeal(t *testing.T) {
	service, m := newService(t)
	last := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	deal := &domain.Deal{ID: dealID, Title: "Licenças"}

	m.deals.EXPECT().GetByID(gomock.Any(), orgID, dealID).Return(deal, nil)
	m.activities.EXPECT().List(gomock.Any(), orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f domain.ActivityFilter) ([]*domain.Activity, int64, error) {
			assert.Equal(t, dealID, f.DealID)
			assert.Equal(t, 1, f.Limit)
			assert.Equal(t, domain.SortDesc, f.SortOrder)
			return []*domain.Activity{{CreatedAt: last}}, 4, nil
		})
	m.llm.EXPECT().PredictDeal(gomock.Any(), deal, &last).
		Return(&domain.DealPrediction{DealID: dealID, WinProbability: 60}, nil)

	prediction, err := service.PredictDeal(context.Background(), orgID, dealID)
	require.NoError(t, err)
	assert.Equal(t, 60, prediction.WinProbability)
}

func TestService_Insights_BuildsContext(t *testing.T) {
	service, m := newService(t)
	created := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	m.companies.EXPECT().GetByID(gomock.Any(), orgID, companyID).
		Return(&domain.Company{ID: companyID, Name: "Acme", Notes: strPtr("cliente estratégico")}, nil)
	m.activities.EXPECT().List(gomock.Any(), orgID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, f domain.ActivityFilter) ([]*domain.Activity, int64, error) {
			assert.Equal(t, companyID, f.CompanyID)
			return []*domain.Activity{
				{Type: domain.ActivityTypeNote, Title: "Nota", Description: strPtr("pediu desconto"), CreatedAt: created},
				{Type: domain.ActivityTypeCall, Title: "Ligação"},
			}, 2, nil
		})
	m.llm.EXPECT().GenerateInsights(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entity *domain.EntityContext) (*domain.Insights, error) {
			assert.Equal(t, "Acme", entity.Name)
			assert.Equal(t, []string{"cliente estratégico", "pediu desconto"}, entity.Notes)
			assert.Len(t, entity.Activities, 2)
			require.NotNil(t, entity.LastContactAt)
			assert.Equal(t, created, *entity.LastContactAt)
			return &domain.Insights{Summary: "ok", SentimentAnalysis: "positive"}, nil
		})

	insights, err := service.Insights(context.Background(), orgID, domain.EntityRequest{EntityType: domain.EntityCompany, EntityID: companyID})
	require.NoError(t, err)
	assert.Equal(t, "ok", insights.Summary)
}

func TestService_NextAction_UnsupportedEntity(t *testing.T) {
	service, _ := newService(t)

	_, err := service.NextAction(context.Background(), orgID, domain.EntityRequest{EntityType: domain.EntityCampaign, EntityID: "x"})
	assert.ErrorIs(t, err, ErrUnsupportedEntity)
}

func TestService_Chat(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		setup    func(m serviceMocks)
		wantCode string
	}{
		{
			name:     "mensagem vazia",
			message:  "   ",
			wantCode: apiErrors.ErrMissingRequiredData,
		},
		{
			name:    "resposta com ação sugerida",
			message: " liste meus negócios ",
			setup: func(m serviceMocks) {
				m.llm.EXPECT().Chat(gomock.Any(), "liste meus negócios").Return(&domain.ChatReply{
					Response: "Aqui estão",
					Action:   &domain.ChatAction{Type: domain.ChatActionList, Entity: domain.EntityDeal},
				}, nil)
			},
		},
		{
			name:    "falha da IA",
			message: "oi",
			setup: func(m serviceMocks) {
				m.llm.EXPECT().Chat(gomock.Any(), "oi").Return(nil, domain.ErrUpstream)
			},
			wantCode: apiErrors.ErrExternalService,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := newService(t)
			if tt.setup != nil {
				tt.setup(m)
			}

			reply, err := service.Chat(context.Background(), tt.message)
			if tt.wantCode != "" {
				var aiErr *AIError
				require.True(t, errors.As(err, &aiErr))
				assert.Equal(t, tt.wantCode, aiErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.ChatActionList, reply.Action.Type)
		})
	}
}
