package llm

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	llmdomain "github.com/vfg2006/crm-api/infrastructure/integrator/llm/domain"
	"github.com/vfg2006/crm-api/infrastructure/integrator/llm/mocks"
	"github.com/vfg2006/crm-api/internal/config"
	"github.com/vfg2006/crm-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func textResponse(text string) *llmdomain.MessageResponse {
	return &llmdomain.MessageResponse{
		Content: []llmdomain.ContentBlock{{Type: "text", Text: text}},
	}
}

func newIntegrator(t *testing.T) (*Integrator, *mocks.MockClient) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Enabled().Return(true).AnyTimes()

	return New(config.LLM{Model: "test-model"}, client), client
}

func strPtr(s string) *string { return &s }

func TestIntegrator_ScoreContact(t *testing.T) {
	contact := &domain.Contact{ID: "c1", FirstName: "Ana", LastName: "Souza", Email: strPtr("ana@acme.com")}
	company := &domain.Company{
		Name:          "Acme",
		Industry:      strPtr("SaaS"),
		AnnualRevenue: decimal.NewNullDecimal(decimal.NewFromInt(2500000)),
	}

	tests := []struct {
		name      string
		reply     string
		clientErr error
		wantScore int
		wantGrade string
		wantErr   error
	}{
		{
			name:      "json cercado de texto",
			reply:     "Segue a análise:\n{\"score\": 72, \"reasoning\": \"decisora\", \"factors\": [{\"factor\": \"cargo\", \"impact\": \"positive\", \"weight\": 8}]}\nObrigado",
			wantScore: 72,
			wantGrade: "B",
		},
		{
			name:      "score acima do limite é ajustado",
			reply:     `{"score": 140, "reasoning": "x", "factors": []}`,
			wantScore: 100,
			wantGrade: "A",
		},
		{
			name:    "resposta sem json",
			reply:   "não consigo avaliar",
			wantErr: domain.ErrUpstream,
		},
		{
			name:      "falha do provedor",
			clientErr: &llmdomain.APIError{StatusCode: 529, Type: "overloaded_error"},
			wantErr:   domain.ErrUpstream,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)

			client.EXPECT().
				CreateMessage(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req *llmdomain.MessageRequest) (*llmdomain.MessageResponse, error) {
					assert.Equal(t, "test-model", req.Model)
					assert.Equal(t, scoreMaxTokens, req.MaxTokens)
					require.Len(t, req.Messages, 1)
					assert.Contains(t, req.Messages[0].Content, "Ana Souza")
					assert.Contains(t, req.Messages[0].Content, "$2500000.00")
					if tt.clientErr != nil {
						return nil, tt.clientErr
					}
					return textResponse(tt.reply), nil
				})

			result, err := integrator.ScoreContact(context.Background(), contact, company)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "c1", result.ContactID)
			assert.Equal(t, tt.wantScore, result.Score)
			assert.Equal(t, tt.wantGrade, result.Grade)
			assert.False(t, result.Fallback)
		})
	}
}

func TestIntegrator_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().Enabled().Return(false).AnyTimes()

	integrator := New(config.LLM{}, client)

	_, err := integrator.DraftEmail(context.Background(), domain.EmailDraftRequest{RecipientName: "Ana", Purpose: "introduction"})
	assert.ErrorIs(t, err, domain.ErrAIDisabled)
	assert.False(t, integrator.Enabled())
}

func TestIntegrator_PredictDeal(t *testing.T) {
	integrator, client := newIntegrator(t)
	integrator.now = func() time.Time { return time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC) }

	deal := &domain.Deal{
		ID:        "d1",
		Title:     "Licenças anuais",
		Value:     decimal.NewFromInt(50000),
		Currency:  "BRL",
		Stage:     domain.DealStageNegotiation,
		CreatedAt: time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC),
	}
	last := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	client.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *llmdomain.MessageRequest) (*llmdomain.MessageResponse, error) {
			prompt := req.Messages[0].Content
			assert.Contains(t, prompt, "Age: 10 days")
			assert.Contains(t, prompt, "Last activity: 2026-10-15")
			return textResponse(`{"winProbability": -5, "reasoning": "sem retorno"}`), nil
		})

	prediction, err := integrator.PredictDeal(context.Background(), deal, &last)
	require.NoError(t, err)
	assert.Equal(t, "d1", prediction.DealID)
	assert.Equal(t, 0, prediction.WinProbability)
	assert.NotNil(t, prediction.Recommendations)
	assert.NotNil(t, prediction.RiskFactors)
}

func TestIntegrator_GenerateInsights_NormalizesSentiment(t *testing.T) {
	integrator, client := newIntegrator(t)

	client.EXPECT().
		CreateMessage(gomock.Any(), gomock.Any()).
		Return(textResponse(`{"summary": "ok", "keyPoints": ["a"], "sentimentAnalysis": "Mixed", "nextActions": []}`), nil)

	insights, err := integrator.GenerateInsights(context.Background(), &domain.EntityContext{
		Type: domain.EntityCompany,
		Name: "Acme",
	})
	require.NoError(t, err)
	assert.Equal(t, "neutral", insights.SentimentAnalysis)
	assert.Equal(t, []string{"a"}, insights.KeyPoints)
}

func TestIntegrator_SuggestNextAction(t *testing.T) {
	tests := []struct {
		name         string
		reply        string
		wantPriority string
		wantDate     *time.Time
	}{
		{
			name:         "data simples",
			reply:        `{"action": "ligar", "priority": "HIGH", "reasoning": "r", "suggestedDate": "2026-10-20"}`,
			wantPriority: "high",
			wantDate:     ptrTime(time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:         "data RFC3339",
			reply:        `{"action": "ligar", "priority": "urgent", "reasoning": "r", "suggestedDate": "2026-10-20T14:00:00Z"}`,
			wantPriority: "urgent",
			wantDate:     ptrTime(time.Date(2026, 10, 20, 14, 0, 0, 0, time.UTC)),
		},
		{
			name:         "data inválida e prioridade desconhecida",
			reply:        `{"action": "ligar", "priority": "asap", "reasoning": "r", "suggestedDate": "amanhã"}`,
			wantPriority: "medium",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)
			client.EXPECT().CreateMessage(gomock.Any(), gomock.Any()).Return(textResponse(tt.reply), nil)

			action, err := integrator.SuggestNextAction(context.Background(), &domain.EntityContext{
				Type: domain.EntityContact,
				Data: map[string]string{"name": "Ana"},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPriority, action.Priority)
			if tt.wantDate == nil {
				assert.Nil(t, action.SuggestedDate)
			} else {
				require.NotNil(t, action.SuggestedDate)
				assert.True(t, tt.wantDate.Equal(*action.SuggestedDate))
			}
		})
	}
}

func TestIntegrator_Chat(t *testing.T) {
	tests := []struct {
		name       string
		reply      string
		wantText   string
		wantAction *domain.ChatAction
	}{
		{
			name:     "texto livre",
			reply:    "Olá! Como posso ajudar?",
			wantText: "Olá! Como posso ajudar?",
		},
		{
			name:     "ação válida",
			reply:    `{"response": "Vou listar seus negócios.", "action": {"type": "LIST", "entity": "deal"}}`,
			wantText: "Vou listar seus negócios.",
			wantAction: &domain.ChatAction{
				Type:   domain.ChatActionList,
				Entity: domain.EntityDeal,
			},
		},
		{
			name:     "update sem id é descartado",
			reply:    `{"response": "Atualizando.", "action": {"type": "update", "entity": "contact", "data": {"status": "active"}}}`,
			wantText: "Atualizando.",
		},
		{
			name:     "entidade desconhecida é descartada",
			reply:    `{"response": "Feito.", "action": {"type": "create", "entity": "invoice", "data": {"x": 1}}}`,
			wantText: "Feito.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, client := newIntegrator(t)
			client.EXPECT().
				CreateMessage(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req *llmdomain.MessageRequest) (*llmdomain.MessageResponse, error) {
					assert.True(t, strings.HasPrefix(req.System, "You are the assistant"))
					return textResponse(tt.reply), nil
				})

			reply, err := integrator.Chat(context.Background(), "mostre meus negócios")
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, reply.Response)
			assert.Equal(t, tt.wantAction, reply.Action)
		})
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
