package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		code           string
		expectedStatus int
	}{
		{ErrInvalidToken, http.StatusUnauthorized},
		{ErrExpiredToken, http.StatusUnauthorized},
		{ErrInsufficientPrivilege, http.StatusForbidden},
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrInvalidReference, http.StatusBadRequest},
		{ErrDuplicateRecord, http.StatusConflict},
		{ErrResourceNotFound, http.StatusNotFound},
		{ErrRateLimited, http.StatusTooManyRequests},
		{ErrExternalService, http.StatusBadGateway},
		{"UNKNOWN", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			rec := httptest.NewRecorder()

			WriteError(rec, tt.code, "mensagem", map[string]string{"email": "inválido"})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body APIError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, "mensagem", body.Message)
			assert.NotNil(t, body.Details)
		})
	}
}

func TestWriteError_RequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	rec.Header().Set("X-Request-ID", "req-123")

	WriteError(rec, ErrResourceNotFound, "Contato não encontrado", nil)

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "req-123", body.RequestID)
	assert.Nil(t, body.Details)
}

func TestIsServerError(t *testing.T) {
	assert.True(t, IsServerError(ErrDatabaseOperation))
	assert.True(t, IsServerError(ErrCommunication))
	assert.True(t, IsServerError("DESCONHECIDO"))
	assert.False(t, IsServerError(ErrDuplicateRecord))
}
