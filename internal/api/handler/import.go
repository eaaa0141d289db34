package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/utils"
)

// maxImportSize limita o arquivo CSV enviado
const maxImportSize = 5 << 20

var importEntities = map[string]domain.EntityType{
	"contacts":  domain.EntityContact,
	"companies": domain.EntityCompany,
}

// ImportRecords recebe um CSV no corpo da requisição e cria os registros linha a linha
func ImportRecords(service managing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ImportRecords")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		name := httprouter.ParamsFromContext(r.Context()).ByName("entity")
		entity, ok := importEntities[name]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Entidade não suportada para importação",
				map[string]string{"entity": name})
			return
		}

		body := http.MaxBytesReader(w, r.Body, maxImportSize)
		defer body.Close()

		result, err := service.Import(r.Context(), claims.OrganizationID, claims.UserID, entity, body)
		if err != nil {
			writeError(w, r, err, "Erro ao importar registros")
			return
		}

		utils.WriteData(w, http.StatusOK, result)
	}
}
