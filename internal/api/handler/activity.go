package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/managing"
	"github.com/vfg2006/crm-api/pkg/utils"
)

func activityFilter(p *queryParser) domain.ActivityFilter {
	return domain.ActivityFilter{
		PageParams: p.page(),
		Type: p.oneOf("type",
			string(domain.ActivityTypeCall),
			string(domain.ActivityTypeEmail),
			string(domain.ActivityTypeMeeting),
			string(domain.ActivityTypeTask),
			string(domain.ActivityTypeNote)),
		Completed:    p.bool("completed"),
		ContactID:    p.uuid("contact_id"),
		CompanyID:    p.uuid("company_id"),
		DealID:       p.uuid("deal_id"),
		CampaignID:   p.uuid("campaign_id"),
		OwnerID:      p.uuid("owner_id"),
		AssignedToID: p.uuid("assigned_to_id"),
		Priority: p.oneOf("priority",
			string(domain.PriorityLow),
			string(domain.PriorityMedium),
			string(domain.PriorityHigh),
			string(domain.PriorityUrgent)),
		Pinned:    p.bool("is_pinned"),
		Overdue:   boolValue(p.bool("overdue")),
		DueBefore: p.date("due_before"),
		DueAfter:  p.date("due_after"),
	}
}

func boolValue(b *bool) bool {
	return b != nil && *b
}

func ListActivities(service managing.ActivityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		filter := activityFilter(p)
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}

		page, err := service.List(r.Context(), claims.OrganizationID, filter)
		if err != nil {
			writeError(w, r, err, "Erro ao listar atividades")
			return
		}

		utils.WritePage(w, *page)
	}
}

// ListActivitiesOfType atende /tasks e /notes fixando o tipo da atividade
func ListActivitiesOfType(service managing.ActivityManager, activityType domain.ActivityType) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		p := newQueryParser(r.URL.Query())
		filter := activityFilter(p)
		if err := p.err(); err != nil {
			writeError(w, r, err, "Parâmetros inválidos")
			return
		}
		filter.Type = string(activityType)

		page, err := service.List(r.Context(), claims.OrganizationID, filter)
		if err != nil {
			writeError(w, r, err, "Erro ao listar atividades")
			return
		}

		utils.WritePage(w, *page)
	}
}

func GetActivity(service managing.ActivityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		activity, err := service.Get(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao buscar atividade")
			return
		}

		utils.WriteData(w, http.StatusOK, activity)
	}
}

func CreateActivity(service managing.ActivityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateActivity")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.CreateActivityRequest
		if !decodeBody(w, r, &req) {
			return
		}

		activity, err := service.Create(r.Context(), claims.OrganizationID, claims.UserID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao criar atividade")
			return
		}

		utils.WriteData(w, http.StatusCreated, activity)
	}
}

func UpdateActivity(service managing.ActivityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateActivity")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.UpdateActivityRequest
		if !decodeBody(w, r, &req) {
			return
		}

		activity, err := service.Update(r.Context(), claims.OrganizationID, id, req)
		if err != nil {
			writeError(w, r, err, "Erro ao atualizar atividade")
			return
		}

		utils.WriteData(w, http.StatusOK, activity)
	}
}

// CompleteActivity marca ou desmarca a conclusão; sem corpo alterna o estado atual
func CompleteActivity(service managing.ActivityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CompleteActivity")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		var req domain.CompleteActivityRequest
		if r.ContentLength != 0 && !decodeBody(w, r, &req) {
			return
		}

		activity, err := service.Complete(r.Context(), claims.OrganizationID, id, req.Completed)
		if err != nil {
			writeError(w, r, err, "Erro ao concluir atividade")
			return
		}

		utils.WriteData(w, http.StatusOK, activity)
	}
}

func DeleteActivity(service managing.ActivityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteActivity")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		if err := service.Delete(r.Context(), claims.OrganizationID, id); err != nil {
			writeError(w, r, err, "Erro ao remover atividade")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
