package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/crm-api/pkg/log"
)

var (
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrUserDisabled          = errors.New("usuário desativado")
	ErrUserNotFound          = errors.New("usuário não encontrado")
	ErrUserAlreadyExists     = errors.New("usuário já existe")
	ErrInsufficientPrivilege = errors.New("privilégios insuficientes")
	ErrNoAdminPrivilege      = errors.New("apenas administradores podem realizar esta ação")

	ErrInvalidToken = errors.New("token inválido")
	ErrExpiredToken = errors.New("token expirado")
	ErrRevokedToken = errors.New("token revogado")

	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	ErrWeakPassword    = errors.New("senha fraca")
	ErrInvalidPassword = errors.New("senha atual incorreta")
	ErrSamePassword    = errors.New("nova senha deve ser diferente da atual")

	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError carrega o código da API e, quando houver, o usuário envolvido
type AuthError struct {
	Err     error
	Code    string
	UserID  string
	Details string
}

func (e *AuthError) Error() string {
	if e.Details == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// LogFields resume o erro para o log sem expor os detalhes ao cliente
func (e *AuthError) LogFields() log.Fields {
	fields := log.Fields{"code": e.Code}
	if e.UserID != "" {
		fields["user_id"] = e.UserID
	}
	switch {
	case IsCredentialsError(e):
		fields["kind"] = "credentials"
	case IsTokenError(e):
		fields["kind"] = "token"
	case errors.Is(e, ErrInsufficientPrivilege), errors.Is(e, ErrNoAdminPrivilege):
		fields["kind"] = "privilege"
	}
	return fields
}

// IsCredentialsError indica falha de login
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserDisabled)
}

// IsTokenError indica que o token apresentado não vale mais
func IsTokenError(err error) bool {
	for _, target := range []error{ErrInvalidToken, ErrExpiredToken, ErrRevokedToken} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{Err: baseErr, Code: code, Details: details}
}

func NewUserAuthError(baseErr error, code string, userID string, details string) *AuthError {
	err := NewAuthError(baseErr, code, details)
	err.UserID = userID
	return err
}
