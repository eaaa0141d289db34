package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/insighting"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/middleware"
	"github.com/vfg2006/crm-api/pkg/validation"
)

const (
	orgID     = "0b6f1c2a-8d4e-4b43-9b8e-3f1a2b3c4d5e"
	userID    = "1c7a2d3b-9e5f-4c54-8c9f-4a2b3c4d5e6f"
	companyID = "2d8b3e4c-af60-4d65-9da0-5b3c4d5e6f70"
	contactID = "3e9c4f5d-b071-4e76-8eb1-6c4d5e6f7081"
	dealID    = "4fad5a6e-c182-4f87-9fc2-7d5e6f708192"
)

func adminClaims() *domain.Claims {
	return &domain.Claims{UserID: userID, OrganizationID: orgID, UserRoleID: domain.RoleAdmin}
}

// newRequest monta a requisição como o router e o middleware de autenticação entregariam
func newRequest(method, target, body string, claims *domain.Claims, params ...httprouter.Param) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	ctx := req.Context()
	if len(params) > 0 {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, httprouter.Params(params))
	}
	if claims != nil {
		ctx = middleware.WithClaims(ctx, claims)
	}
	return req.WithContext(ctx)
}

func idParam(id string) httprouter.Param {
	return httprouter.Param{Key: "id", Value: id}
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// envelope cobre as respostas de sucesso e de erro
type envelope struct {
	Success    bool                `json:"success"`
	Data       jsoniter.RawMessage `json:"data"`
	Message    string              `json:"message"`
	Pagination *domain.Pagination  `json:"pagination"`
	Code       string              `json:"code"`
	Details    jsoniter.RawMessage `json:"details"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "erro de validação",
			err:            validation.Field("email", "email inválido"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrValidationFailed,
		},
		{
			name:           "erro de autenticação",
			err:            authenticating.NewAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, ""),
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:           "registro não encontrado",
			err:            &managing.CRMError{Err: domain.ErrNotFound, Code: apiErrors.ErrResourceNotFound, Entity: domain.EntityDeal, ID: dealID},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrResourceNotFound,
		},
		{
			name:           "falha de banco",
			err:            &managing.CRMError{Err: managing.ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: "pq: connection refused"},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrDatabaseOperation,
		},
		{
			name:           "busca vazia",
			err:            insighting.NewReportError(insighting.ErrEmptyQuery, apiErrors.ErrMissingRequiredData, "q"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrMissingRequiredData,
		},
		{
			name:           "falha da IA",
			err:            assisting.NewAIError(domain.ErrUpstream, apiErrors.ErrExternalService, "timeout"),
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrExternalService,
		},
		{
			name:           "erro desconhecido",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, newRequest(http.MethodGet, "/", "", nil), tt.err, "falhou")

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, tt.expectedCode, decodeEnvelope(t, rec).Code)
		})
	}
}

func TestWriteError_HidesDatabaseDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	err := &managing.CRMError{Err: managing.ErrDatabaseOperation, Code: apiErrors.ErrDatabaseOperation, Details: "pq: senha incorreta"}

	writeError(rec, newRequest(http.MethodGet, "/", "", nil), err, "Erro ao listar empresas")

	assert.NotContains(t, rec.Body.String(), "pq:")
	assert.Contains(t, rec.Body.String(), "Erro ao listar empresas")
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedOK   bool
		expectedCode string
	}{
		{name: "válido", body: `{"email":"ana@acme.com","password":"x"}`, expectedOK: true},
		{name: "vazio", body: "", expectedCode: apiErrors.ErrMissingRequiredData},
		{name: "json quebrado", body: `{"email":`, expectedCode: apiErrors.ErrInvalidRequest},
		{name: "campo obrigatório ausente", body: `{"email":"ana@acme.com"}`, expectedCode: apiErrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			var req domain.LoginRequest

			ok := decodeBody(rec, newRequest(http.MethodPost, "/", tt.body, nil), &req)

			assert.Equal(t, tt.expectedOK, ok)
			if !tt.expectedOK {
				assert.Equal(t, tt.expectedCode, decodeEnvelope(t, rec).Code)
			}
		})
	}
}

func TestPathID(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := pathID(rec, newRequest(http.MethodGet, "/", "", nil, idParam("42")), "id")

	assert.False(t, ok)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeEnvelope(t, rec).Code)
}

func TestNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nada", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Not found","path":"/api/v1/nada"}`, rec.Body.String())
}

func TestHealthcheck(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthcheckHandler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, body.Success)
	assert.Equal(t, "healthy", body.Status)
	assert.NotEmpty(t, body.Service)
}
