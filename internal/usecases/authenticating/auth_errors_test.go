package authenticating

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/log"
)

func TestAuthError_Error(t *testing.T) {
	assert.Equal(t, "token inválido", NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "").Error())
	assert.Equal(t, "senha fraca: mínimo de 8 caracteres",
		NewAuthError(ErrWeakPassword, apiErrors.ErrValidationFailed, "mínimo de 8 caracteres").Error())
}

func TestAuthError_LogFields(t *testing.T) {
	tests := []struct {
		name string
		err  *AuthError
		want log.Fields
	}{
		{
			name: "credenciais",
			err:  NewAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, ""),
			want: log.Fields{"code": apiErrors.ErrUserDisabled, "kind": "credentials"},
		},
		{
			name: "token revogado com usuário",
			err:  NewUserAuthError(ErrRevokedToken, apiErrors.ErrRevokedToken, testUserID, ""),
			want: log.Fields{"code": apiErrors.ErrRevokedToken, "user_id": testUserID, "kind": "token"},
		},
		{
			name: "privilégio",
			err:  NewUserAuthError(ErrNoAdminPrivilege, apiErrors.ErrInsufficientPrivilege, testUserID, ""),
			want: log.Fields{"code": apiErrors.ErrInsufficientPrivilege, "user_id": testUserID, "kind": "privilege"},
		},
		{
			name: "sem classificação",
			err:  NewAuthError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "timeout"),
			want: log.Fields{"code": apiErrors.ErrDatabaseOperation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.LogFields())
		})
	}
}

func TestIsTokenError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("validando sessão: %w", NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, ""))

	assert.True(t, IsTokenError(wrapped))
	assert.False(t, IsCredentialsError(wrapped))
}
