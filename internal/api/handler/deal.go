package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/utils"
)

// pipelineSegment divide a rota GET /deals/:id com o pipeline, pois o httprouter
// não aceita um segmento fixo ao lado de um parâmetro
const pipelineSegment = "pipeline"

func dealFilter(p *queryParser) domain.DealFilter {
	return domain.DealFilter{
		PageParams: p.page(),
		Search:     p.string("search"),
		Stage: p.oneOf("stage",
			string(domain.DealStageLead),
			string(domain.DealStageQualified),
			string(domain.DealStageProposal),
			string(domain.DealStageNegotiation),
			string(domain.DealStageClosedWon),
			string(domain.DealStageClosedLost)),
		CompanyID: p.uuid("company_id"),
		ContactID: p.uuid("contact_id"),
		OwnerID:   p.uuid("owner_id"),
		MinValue:  p.decimal("min_value"),
		MaxValue:  p.decimal("max_value"),
	}
}

func ListDeals(service managing.DealManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		filter := dealFilter(p)
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.List(r.Context(), claims.OrganizationID, filter)
		if err != nil {
			writeError(w, r, err, "Erro ao listar negócios")
			return
		}

		utils.WritePage(w, *page)
	}
}

func GetDeal(service managing.DealManager) http.HandlerFunc {
	pipeline := GetPipeline(service)

	return func(w http.ResponseWriter, r *http.Request) {
		if httprouter.ParamsFromContext(r.Context()).ByName("id") == pipelineSegment {
			pipeline(w, r)
			return
		}

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		deal, err := service.Get(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar negócio")
			return
		}

		utils.WriteData(w, http.StatusOK, deal)
	}
}

// GetPipeline agrupa os negócios por etapa
func GetPipeline(service managing.DealManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		stages, err := service.Pipeline(r.Context(), claims.OrganizationID)
		if err != nil {
			writeError(w, r, err, "Erro ao montar pipeline")
			return
		}

		utils.WriteData(w, http.StatusOK, stages)
	}
}

func CreateDeal(service managing.DealManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateDeal")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateDealRequest
		if !decodeBody(w, r, &req) {
			return
		}

		deal, err := service.Create(r.Context(), claims.OrganizationID, claims.UserID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao criar negócio")
			return
		}

		utils.WriteData(w, http.StatusCreated, deal)
	}
}

func UpdateDeal(service managing.DealManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateDeal")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateDealRequest
		if !decodeBody(w, r, &req) {
			return
		}

		deal, err := service.Update(r.Context(), claims.OrganizationID, id, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar negócio")
			return
		}

		utils.WriteData(w, http.StatusOK, deal)
	}
}

// UpdateDealStage move o negócio para qualquer etapa, sem regras de transição
func UpdateDealStage(service managing.DealManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateDealStage")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateStageRequest
		if !decodeBody(w, r, &req) {
			return
		}

		deal, err := service.UpdateStage(r.Context(), claims.OrganizationID, claims.UserID, id, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar etapa do negócio")
			return
		}

		utils.WriteData(w, http.StatusOK, deal)
	}
}

func DeleteDeal(service managing.DealManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteDeal")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeError(w, r, err, "Erro ao remover negócio")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
