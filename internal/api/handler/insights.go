package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/insighting"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/utils"
)

// exportEntities mapeia o segmento da rota para a entidade exportada
var exportEntities = map[string]domain.EntityType{
	"contacts":   domain.EntityContact,
	"companies":  domain.EntityCompany,
	"deals":      domain.EntityDeal,
	"activities": domain.EntityActivity,
}

func GetDashboardMetrics(service insighting.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		metrics, err := service.DashboardMetrics(r.Context(), claims.OrganizationID)
		if err != nil {
			writeError(w, r, err, "Erro ao calcular métricas")
			return
		}

		utils.WriteData(w, http.StatusOK, metrics)
	}
}

func GetPipelineAnalytics(service insighting.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		stages, err := service.Pipeline(r.Context(), claims.OrganizationID)
		if err != nil {
			writeError(w, r, err, "Erro ao calcular pipeline")
			return
		}

		utils.WriteData(w, http.StatusOK, stages)
	}
}

// monthsParam lê ?months=N; o serviço aplica o padrão e o limite
func monthsParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	p := newQueryParser(r.URL.Query())
	months := p.int("months")
	if err := p.err(); err != nil {
		writeError(w, r, err, "Parâmetros inválidos")
		return 0, false
	}
	if months == nil {
		return 0, true
	}
	return *months, true
}

func GetRevenueTrend(service insighting.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		months, ok := monthsParam(w, r)
		if !ok {
			return
		}

		trend, err := service.RevenueTrend(r.Context(), claims.OrganizationID, months)
		if err != nil {
			writeError(w, r, err, "Erro ao calcular receita mensal")
			return
		}

		utils.WriteData(w, http.StatusOK, trend)
	}
}

func GetWinLoss(service insighting.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		months, ok := monthsParam(w, r)
		if !ok {
			return
		}

		result, err := service.WinLoss(r.Context(), claims.OrganizationID, months)
		if err != nil {
			writeError(w, r, err, "Erro ao calcular ganhos e perdas")
			return
		}

		utils.WriteData(w, http.StatusOK, result)
	}
}

func GetActivitySummary(service insighting.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		summary, err := service.ActivitySummary(r.Context(), claims.OrganizationID)
		if err != nil {
			writeError(w, r, err, "Erro ao resumir atividades")
			return
		}

		utils.WriteData(w, http.StatusOK, summary)
	}
}

func GetForecast(service insighting.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		forecast, err := service.Forecast(r.Context(), claims.OrganizationID)
		if err != nil {
			writeError(w, r, err, "Erro ao calcular previsão")
			return
		}

		utils.WriteData(w, http.StatusOK, forecast)
	}
}

// Search busca contatos, empresas e negócios pelo termo ?q=
func Search(service insighting.Searcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		query := p.string("q")
		limit := p.int("limit")
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		n := 0
		if limit != nil {
			n = *limit
		}

		results, err := service.Search(r.Context(), claims.OrganizationID, query, n)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar registros")
			return
		}

		utils.WriteData(w, http.StatusOK, results)
	}
}

// Export gera o CSV da entidade como anexo
func Export(service insighting.Exporter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Export")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		name := httprouter.ParamsFromContext(r.Context()).ByName("entity")
		entity, ok := exportEntities[name]
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrValidationFailed, "Entidade não suportada para exportação",
				map[string]string{"entity": name})
			return
		}

		// o arquivo é montado em memória para que uma falha ainda vire resposta JSON
		var buf bytes.Buffer
		rows, err := service.Export(r.Context(), claims.OrganizationID, entity, &buf)
		if err != nil {
			writeError(w, r, err, "Erro ao exportar registros")
			return
		}

		logrus.WithFields(logrus.Fields{"entity": name, "rows": rows}).Info("Exportação concluída")

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".csv"))
		w.WriteHeader(http.StatusOK)
		if _, err := buf.WriteTo(w); err != nil {
			logrus.WithError(err).Error("Erro ao enviar exportação")
		}
	}
}
