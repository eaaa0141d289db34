package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/utils"
)

func companyFilter(p *queryParser) domain.CompanyFilter {
	return domain.CompanyFilter{
		PageParams: p.page(),
		Search:     p.string("search"),
		Industry:   p.string("industry"),
		Size:       p.oneOf("size", "1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"),
		Status:     p.oneOf("status", "lead", "prospect", "customer", "partner", "inactive"),
		Tag:        p.string("tag"),
		OwnerID:    p.uuid("owner_id"),
	}
}

func ListCompanies(service managing.CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		filter := companyFilter(p)
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.List(r.Context(), claims.OrganizationID, filter)
		if err != nil {
			writeError(w, r, err, "Erro ao listar empresas")
			return
		}

		utils.WritePage(w, *page)
	}
}

func GetCompany(service managing.CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		company, err := service.Get(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar empresa")
			return
		}

		utils.WriteData(w, http.StatusOK, company)
	}
}

func CreateCompany(service managing.CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCompany")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateCompanyRequest
		if !decodeBody(w, r, &req) {
			return
		}

		company, err := service.Create(r.Context(), claims.OrganizationID, claims.UserID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao criar empresa")
			return
		}

		utils.WriteData(w, http.StatusCreated, company)
	}
}

func UpdateCompany(service managing.CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCompany")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateCompanyRequest
		if !decodeBody(w, r, &req) {
			return
		}

		company, err := service.Update(r.Context(), claims.OrganizationID, id, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar empresa")
			return
		}

		utils.WriteData(w, http.StatusOK, company)
	}
}

func DeleteCompany(service managing.CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCompany")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeError(w, r, err, "Erro ao remover empresa")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// ListCompanyContacts lista os contatos vinculados à empresa
func ListCompanyContacts(service managing.CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		params := p.page()
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.ListContacts(r.Context(), claims.OrganizationID, id, params)
		if err != nil {
			writeError(w, r, err, "Erro ao listar contatos da empresa")
			return
		}

		utils.WritePage(w, *page)
	}
}

// ListCompanyDeals lista os negócios vinculados à empresa
func ListCompanyDeals(service managing.CompanyManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		params := p.page()
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.ListDeals(r.Context(), claims.OrganizationID, id, params)
		if err != nil {
			writeError(w, r, err, "Erro ao listar negócios da empresa")
			return
		}

		utils.WritePage(w, *page)
	}
}
