package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/pkg/utils"
)

// Register cria a organização com o usuário administrador e já devolve o token
func Register(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Register")

		var req domain.RegisterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Register(r.Context(), req)
		if err != nil {
			writeError(w, r, err, "Erro ao registrar usuário")
			return
		}

		utils.WriteData(w, http.StatusCreated, resp)
	}
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Login")

		var req domain.LoginRequest
		if !decodeBody(w, r, &req) {
			return
		}

		resp, err := service.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err, "Erro interno ao realizar login")
			return
		}

		utils.WriteData(w, http.StatusOK, resp)
	}
}

// Logout revoga o token apresentado até a sua expiração
func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Logout")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		if err := service.Logout(r.Context(), claims); err != nil {
			writeError(w, r, err, "Erro ao encerrar sessão")
			return
		}

		utils.WriteMessage(w, http.StatusOK, "Sessão encerrada")
	}
}

// GetMe retorna as informações do usuário logado
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, r, err, "Erro ao obter dados do usuário")
			return
		}

		utils.WriteData(w, http.StatusOK, user)
	}
}

// ChangePassword altera a senha do próprio usuário autenticado
func ChangePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ChangePassword")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.ChangePasswordRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := service.ChangePassword(r.Context(), claims.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			writeError(w, r, err, "Erro ao alterar senha")
			return
		}

		utils.WriteMessage(w, http.StatusOK, "Senha alterada com sucesso")
	}
}
