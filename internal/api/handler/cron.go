package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/crm-api/internal/scheduler"
	"github.com/vfg2006/crm-api/pkg/apiErrors"
	"github.com/vfg2006/crm-api/pkg/utils"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCampaignProgress = "campaign-progress"
	CronJobTypeLeadScoring      = "lead-scoring"
	CronJobTypeAll              = "all"
)

// CronJobServices contém as rotinas que podem ser disparadas manualmente
type CronJobServices struct {
	CampaignProgressSyncService scheduler.Job
	LeadScoringSyncService      scheduler.Job
}

func (s CronJobServices) jobs() map[string]scheduler.Job {
	jobs := make(map[string]scheduler.Job, 2)
	if s.CampaignProgressSyncService != nil {
		jobs[CronJobTypeCampaignProgress] = s.CampaignProgressSyncService
	}
	if s.LeadScoringSyncService != nil {
		jobs[CronJobTypeLeadScoring] = s.LeadScoringSyncService
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeCampaignProgress, CronJobTypeLeadScoring:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de sincronização não disponível", nil)
				return
			}
			job.TriggerManualSync()

		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
				"Tipo de cron job inválido. Valores aceitos: campaign-progress, lead-scoring, all", nil)
			return
		}

		utils.WriteData(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		utils.WriteData(w, http.StatusOK, status)
	}
}
