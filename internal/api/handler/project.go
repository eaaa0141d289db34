package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/utils"
)

func projectFilter(p *queryParser) domain.ProjectFilter {
	return domain.ProjectFilter{
		PageParams:       p.page(),
		Search:           p.string("search"),
		Status:           p.oneOf("project_status", "planning", "active", "on_hold", "completed", "cancelled"),
		Priority:         p.oneOf("priority", "low", "medium", "high", "urgent"),
		CompanyID:        p.uuid("company_id"),
		DealID:           p.uuid("deal_id"),
		OwnerID:          p.uuid("owner_id"),
		ProjectManagerID: p.uuid("project_manager_id"),
		Tags:             p.list("tag"),
	}
}

func ListProjects(service managing.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		filter := projectFilter(p)
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.List(r.Context(), claims.OrganizationID, filter)
		if err != nil {
			writeError(w, r, err, "Erro ao listar projetos")
			return
		}

		utils.WritePage(w, *page)
	}
}

func GetProject(service managing.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		project, err := service.Get(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar projeto")
			return
		}

		utils.WriteData(w, http.StatusOK, project)
	}
}

func CreateProject(service managing.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateProject")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateProjectRequest
		if !decodeBody(w, r, &req) {
			return
		}

		project, err := service.Create(r.Context(), claims.OrganizationID, claims.UserID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao criar projeto")
			return
		}

		utils.WriteData(w, http.StatusCreated, project)
	}
}

func UpdateProject(service managing.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateProject")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateProjectRequest
		if !decodeBody(w, r, &req) {
			return
		}

		project, err := service.Update(r.Context(), claims.OrganizationID, id, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar projeto")
			return
		}

		utils.WriteData(w, http.StatusOK, project)
	}
}

func DeleteProject(service managing.ProjectManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteProject")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeError(w, r, err, "Erro ao remover projeto")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
