package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/utils"
)

type GeneratePasswordResponse struct {
	Password string `json:"password"`
}

// GetUser retorna um usuário da mesma organização
func GetUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		user, err := service.GetUserProfile(r.Context(), id)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar usuário")
			return
		}

		if user.OrganizationID != claims.OrganizationID {
			apiErrors.WriteError(w, apiErrors.ErrUserNotFound, "Usuário não encontrado", nil)
			return
		}

		utils.WriteData(w, http.StatusOK, user)
	}
}

// ListUsers lista os membros da organização do administrador
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		users, err := service.ListUsers(r.Context(), claims.OrganizationID)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar usuários")
			return
		}

		utils.WriteData(w, http.StatusOK, users)
	}
}

// CreateUser convida um novo membro para a organização
func CreateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateUser")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}

		user, err := service.CreateUser(r.Context(), claims.OrganizationID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao criar usuário")
			return
		}

		utils.WriteData(w, http.StatusCreated, user)
	}
}

// UpdateUser atualiza o próprio perfil ou, para administradores, qualquer membro
func UpdateUser(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateUser")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateUserRequest
		if !decodeBody(w, r, &req) {
			return
		}
		req.ID = id

		user, err := service.UpdateUser(r.Context(), claims, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar usuário")
			return
		}

		utils.WriteData(w, http.StatusOK, user)
	}
}

// GeneratePassword gera uma senha forte para o usuário informado (somente administradores)
func GeneratePassword(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GeneratePassword")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		password, err := service.GenerateStrongPassword(r.Context(), claims, id)
		if err != nil {
			writeError(w, r, err, "Erro ao gerar senha")
			return
		}

		utils.WriteData(w, http.StatusOK, GeneratePasswordResponse{Password: password})
	}
}
