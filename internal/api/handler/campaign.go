package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/utils"
)

func ListCampaigns(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		filter := domain.CampaignFilter{
			PageParams: p.page(),
			Search:     p.string("search"),
			Status:     p.oneOf("status", "draft", "active", "paused", "completed", "archived"),
			OwnerID:    p.uuid("owner_id"),
		}
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.List(r.Context(), claims.OrganizationID, filter)
		if err != nil {
			writeError(w, r, err, "Erro ao listar campanhas")
			return
		}

		utils.WritePage(w, *page)
	}
}

// GetCampaign devolve a campanha com seus contatos
func GetCampaign(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		campaign, err := service.Get(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar campanha")
			return
		}

		utils.WriteData(w, http.StatusOK, campaign)
	}
}

func CreateCampaign(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateCampaign")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateCampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaign, err := service.Create(r.Context(), claims.OrganizationID, claims.UserID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao criar campanha")
			return
		}

		utils.WriteData(w, http.StatusCreated, campaign)
	}
}

func UpdateCampaign(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaign")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateCampaignRequest
		if !decodeBody(w, r, &req) {
			return
		}

		campaign, err := service.Update(r.Context(), claims.OrganizationID, id, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar campanha")
			return
		}

		utils.WriteData(w, http.StatusOK, campaign)
	}
}

func DeleteCampaign(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteCampaign")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeError(w, r, err, "Erro ao remover campanha")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AddCampaignContacts(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddCampaignContacts")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.CampaignContactsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.AddContacts(r.Context(), claims.OrganizationID, id, req.ContactIDs)
		if err != nil {
			writeError(w, r, err, "Erro ao adicionar contatos à campanha")
			return
		}

		utils.WriteData(w, http.StatusOK, result)
	}
}

func RemoveCampaignContacts(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RemoveCampaignContacts")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.CampaignContactsRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.RemoveContacts(r.Context(), claims.OrganizationID, id, req.ContactIDs)
		if err != nil {
			writeError(w, r, err, "Erro ao remover contatos da campanha")
			return
		}

		utils.WriteData(w, http.StatusOK, result)
	}
}

// UpdateCampaignContact registra status e datas de envio de um contato da campanha
func UpdateCampaignContact(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateCampaignContact")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		contactID, ok := pathID(w, r, "contactId")
		if !ok {
			return
		}

		var req domain.UpdateCampaignContactRequest
		if !decodeBody(w, r, &req) {
			return
		}

		member, err := service.UpdateContact(r.Context(), claims.OrganizationID, id, contactID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar contato da campanha")
			return
		}

		utils.WriteData(w, http.StatusOK, member)
	}
}

// AddCampaignContactsByFilter adiciona todos os contatos que atendem ao filtro
func AddCampaignContactsByFilter(service managing.CampaignManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddCampaignContactsByFilter")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.CampaignFilterRequest
		if !decodeBody(w, r, &req) {
			return
		}

		result, err := service.AddContactsBySegment(r.Context(), claims.OrganizationID, id, req.Filter)
		if err != nil {
			writeError(w, r, err, "Erro ao adicionar contatos à campanha")
			return
		}

		utils.WriteData(w, http.StatusOK, map[string]int64{"added": result.Added})
	}
}
