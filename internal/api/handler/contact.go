package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/utils"
)

func contactFilter(p *queryParser) domain.ContactFilter {
	filter := domain.ContactFilter{
		PageParams:    p.page(),
		Search:        p.string("search"),
		CompanyID:     p.uuid("company_id"),
		Status:        p.oneOf("status", "active", "inactive", "bounced", "unsubscribed"),
		LeadSource:    p.string("lead_source"),
		OwnerID:       p.uuid("owner_id"),
		MinLeadScore:  p.int("min_lead_score"),
		MaxLeadScore:  p.int("max_lead_score"),
		Tags:          p.list("tag"),
		CreatedAfter:  p.date("created_after"),
		CreatedBefore: p.date("created_before"),
	}

	for _, grade := range p.list("lead_grade") {
		if _, _, ok := domain.ScoreRange(grade); !ok {
			p.invalid("lead_grade", "deve ser um de: A B C D F")
			continue
		}
		filter.LeadGrades = append(filter.LeadGrades, grade)
	}

	return filter
}

func ListContacts(service managing.ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		filter := contactFilter(p)
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.List(r.Context(), claims.OrganizationID, filter)
		if err != nil {
			writeError(w, r, err, "Erro ao listar contatos")
			return
		}

		utils.WritePage(w, *page)
	}
}

func GetContact(service managing.ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		contact, err := service.Get(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar contato")
			return
		}

		utils.WriteData(w, http.StatusOK, contact)
	}
}

func CreateContact(service managing.ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateContact")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateContactRequest
		if !decodeBody(w, r, &req) {
			return
		}

		contact, err := service.Create(r.Context(), claims.OrganizationID, claims.UserID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao criar contato")
			return
		}

		utils.WriteData(w, http.StatusCreated, contact)
	}
}

func UpdateContact(service managing.ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateContact")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateContactRequest
		if !decodeBody(w, r, &req) {
			return
		}

		contact, err := service.Update(r.Context(), claims.OrganizationID, id, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar contato")
			return
		}

		utils.WriteData(w, http.StatusOK, contact)
	}
}

func DeleteContact(service managing.ContactManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteContact")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeError(w, r, err, "Erro ao remover contato")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
