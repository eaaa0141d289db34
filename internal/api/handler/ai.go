package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/domain"
	"github.com/vfg2006/crm-api/internal/usecases/assisting"
	"github.com/vfg2006/crm-api/pkg/utils"
)

// ScoreContact calcula e grava o lead score do contato
func ScoreContact(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ScoreContact")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		result, err := service.ScoreContact(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao calcular lead score")
			return
		}

		utils.WriteData(w, http.StatusOK, result)
	}
}

func DraftEmail(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DraftEmail")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.EmailDraftRequest
		if !decodeBody(w, r, &req) {
			return
		}

		draft, err := service.DraftEmail(r.Context(), claims.OrganizationID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao gerar email")
			return
		}

		utils.WriteData(w, http.StatusOK, draft)
	}
}

func PredictDeal(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - PredictDeal")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		id, ok := pathID(w, r, "id")
		if !ok {
			return
		}

		prediction, err := service.PredictDeal(r.Context(), claims.OrganizationID, id)
		if err != nil {
			writeError(w, r, err, "Erro ao prever negócio")
			return
		}

		utils.WriteData(w, http.StatusOK, prediction)
	}
}

func GenerateInsights(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateInsights")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.EntityRequest
		if !decodeBody(w, r, &req) {
			return
		}

		insights, err := service.Insights(r.Context(), claims.OrganizationID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao gerar insights")
			return
		}

		utils.WriteData(w, http.StatusOK, insights)
	}
}

func SuggestNextAction(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SuggestNextAction")

		claims, ok := callerClaims(w, r)
		if !ok {
			return
		}

		var req domain.EntityRequest
		if !decodeBody(w, r, &req) {
			return
		}

		action, err := service.NextAction(r.Context(), claims.OrganizationID, req)
		if err != nil {
			writeError(w, r, err, "Erro ao sugerir próxima ação")
			return
		}

		utils.WriteData(w, http.StatusOK, action)
	}
}

// Chat responde a mensagem e, quando houver, sugere uma ação que o cliente pode executar
func Chat(service assisting.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Chat")

		var req domain.ChatRequest
		if !decodeBody(w, r, &req) {
			return
		}

		reply, err := service.Chat(r.Context(), req.Message)
		if err != nil {
			writeError(w, r, err, "Erro ao processar mensagem")
			return
		}

		utils.WriteData(w, http.StatusOK, reply)
	}
}
