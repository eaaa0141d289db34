package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"github.com/vfg2006/crm-api/internal/usecases/assisting/mocks"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestScoreContact(t *testing.T) {
	tests := []struct {
		name           string
		result         *domain.LeadScoreResult
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "pontuação da IA",
			result:         &domain.LeadScoreResult{ContactID: contactID, Score: 82, Grade: "A", Reasoning: "engajado"},
			expectedStatus: http.StatusOK,
			expectedBody:   `"grade":"A"`,
		},
		{
			name:           "valor padrão quando a IA falha",
			result:         &domain.LeadScoreResult{ContactID: contactID, Score: assisting.FallbackScore, Grade: "C", Reasoning: assisting.FallbackReasoning, Fallback: true},
			expectedStatus: http.StatusOK,
			expectedBody:   `"score":50`,
		},
		{
			name:           "contato inexistente",
			err:            &assisting.AIError{Err: domain.ErrNotFound, Code: apiErrors.ErrResourceNotFound, Entity: domain.EntityContact, ID: contactID},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAssistant(ctrl)
			service.EXPECT().ScoreContact(gomock.Any(), orgID, contactID).Return(tt.result, tt.err)

			rec := httptest.NewRecorder()
			ScoreContact(service).ServeHTTP(rec, newRequest(http.MethodPost, "/", "", adminClaims(), idParam(contactID)))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestDraftEmail_Validation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{name: "propósito desconhecido", body: `{"recipient_name":"Ana","purpose":"spam"}`, expectedStatus: http.StatusBadRequest},
		{name: "sem destinatário nem contato", body: `{"purpose":"introduction"}`, expectedStatus: http.StatusBadRequest},
		{name: "tom inválido", body: `{"recipient_name":"Ana","purpose":"introduction","tone":"rude"}`, expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAssistant(ctrl)

			rec := httptest.NewRecorder()
			DraftEmail(service).ServeHTTP(rec, newRequest(http.MethodPost, "/", tt.body, adminClaims()))

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestDraftEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAssistant(ctrl)
	service.EXPECT().
		DraftEmail(gomock.Any(), orgID, domain.EmailDraftRequest{RecipientName: "Ana", Purpose: "follow_up"}).
		Return(&domain.EmailDraft{Subject: "Retomando", Body: "Olá Ana"}, nil)

	rec := httptest.NewRecorder()
	DraftEmail(service).ServeHTTP(rec, newRequest(http.MethodPost, "/", `{"recipient_name":"Ana","purpose":"follow_up"}`, adminClaims()))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"subject":"Retomando","body":"Olá Ana"}`, string(decodeEnvelope(t, rec).Data))
}

func TestGenerateInsights_UnsupportedEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := mocks.NewMockAssistant(ctrl)

	rec := httptest.NewRecorder()
	body := `{"entity_type":"campaign","entity_id":"` + dealID + `"}`
	GenerateInsights(service).ServeHTTP(rec, newRequest(http.MethodPost, "/", body, adminClaims()))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *mocks.MockAssistant)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "resposta com ação sugerida",
			body: `{"message":"liste meus negócios"}`,
			setup: func(service *mocks.MockAssistant) {
				service.EXPECT().
					Chat(gomock.Any(), "liste meus negócios").
					Return(&domain.ChatReply{
						Response: "Aqui estão seus negócios",
						Action:   &domain.ChatAction{Type: domain.ChatActionList, Entity: domain.EntityDeal},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "mensagem vazia",
			body:           `{"message":""}`,
			setup:          func(service *mocks.MockAssistant) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrValidationFailed,
		},
		{
			name: "falha do provedor",
			body: `{"message":"oi"}`,
			setup: func(service *mocks.MockAssistant) {
				service.EXPECT().
					Chat(gomock.Any(), "oi").
					Return(nil, assisting.NewAIError(domain.ErrUpstream, apiErrors.ErrExternalService, "status 529"))
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrExternalService,
		},
		{
			name: "IA não configurada",
			body: `{"message":"oi"}`,
			setup: func(service *mocks.MockAssistant) {
				service.EXPECT().
					Chat(gomock.Any(), "oi").
					Return(nil, assisting.NewAIError(domain.ErrAIDisabled, apiErrors.ErrServiceDisabled, ""))
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedCode:   apiErrors.ErrServiceDisabled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := mocks.NewMockAssistant(ctrl)
			tt.setup(service)

			rec := httptest.NewRecorder()
			Chat(service).ServeHTTP(rec, newRequest(http.MethodPost, "/", tt.body, adminClaims()))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, env.Code)
				return
			}
			assert.JSONEq(t, `{"response":"Aqui estão seus negócios","action":{"type":"list","entity":"deal"}}`, string(env.Data))
		})
	}
}
