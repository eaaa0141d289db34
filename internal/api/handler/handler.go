package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"github.com/vfg2006/crm-api/internal/usecases/authenticating"
	"github.com/vfg2006/crm-api/internal/usecases/insighting"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/log"
	"github.com/vfg2006/crm-api/pkg/middleware"
	"github.com/vfg2006/crm-api/pkg/utils"
	"github.com/vfg2006/crm-api/pkg/validation"
)

// writeError traduz os erros dos casos de uso para a resposta padronizada
func writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	logger := log.ForContext(r.Context()).WithError(err)

	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Campos inválidos", validationErrs)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logger.WithFields(authErr.LogFields()).Warn(fallback)
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	var crmErr *managing.CRMError
	if errors.As(err, &crmErr) {
		if apiErrors.IsServerError(crmErr.Code) {
			logger.Error(fallback)
			apiErrors.WriteError(w, crmErr.Code, fallback, nil)
			return
		}
		apiErrors.WriteError(w, crmErr.Code, crmErr.Error(), recordDetails(crmErr.Entity, crmErr.ID))
		return
	}

	var reportErr *insighting.ReportError
	if errors.As(err, &reportErr) {
		if apiErrors.IsServerError(reportErr.Code) {
			logger.Error(fallback)
			apiErrors.WriteError(w, reportErr.Code, fallback, nil)
			return
		}
		apiErrors.WriteError(w, reportErr.Code, reportErr.Error(), nil)
		return
	}

	var aiErr *assisting.AIError
	if errors.As(err, &aiErr) {
		if apiErrors.IsServerError(aiErr.Code) {
			logger.Error(fallback)
			apiErrors.WriteError(w, aiErr.Code, fallback+": "+aiErr.Err.Error(), nil)
			return
		}
		apiErrors.WriteError(w, aiErr.Code, aiErr.Error(), recordDetails(aiErr.Entity, aiErr.ID))
		return
	}

	logger.Error(fallback)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}

func recordDetails(entity domain.EntityType, id string) map[string]string {
	if entity == "" && id == "" {
		return nil
	}
	details := map[string]string{}
	if entity != "" {
		details["entity"] = string(entity)
	}
	if id != "" {
		details["id"] = id
	}
	return details
}

// decodeBody lê e valida o corpo; responde o erro e devolve false quando inválido
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := utils.DecodeJSON(r, v); err != nil {
		if errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Corpo da requisição vazio", nil)
			return false
		}
		logrus.WithError(err).Warn("Erro ao decodificar requisição")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
		return false
	}

	if err := validation.Struct(v); err != nil {
		writeError(w, r, err, "Erro ao validar requisição")
		return false
	}

	return true
}

// callerClaims devolve o usuário autenticado; responde 401 quando ausente
func callerClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return nil, false
	}
	return claims, true
}

// pathID lê e valida o parâmetro de rota informado
func pathID(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	id := httprouter.ParamsFromContext(r.Context()).ByName(name)
	if id == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID não fornecido", nil)
		return "", false
	}
	if err := validation.Var(id, "uuid"); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID inválido", map[string]string{name: id})
		return "", false
	}
	return id, true
}
