package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/bizmetrics-api/pkg/apiErrors"
	"github.com/vfg2006/bizmetrics-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeArchiveRetention = "archive-retention"
)

// CronJob é o que a API precisa de um agendador para disparo manual e status
type CronJob interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron disponíveis, por tipo
type CronJobServices map[string]CronJob

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		job, ok := services[cronType]
		if !ok || job == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido", map[string]any{
				"type": cronType,
			})
			return
		}

		started := job.TriggerManualSync()
		log.ForContext(r.Context()).WithField("type", cronType).WithField("started", started).Info("Disparo manual de cron job")

		message := "Cron job iniciada com sucesso"
		status := http.StatusAccepted
		if !started {
			message = "Cron job já está em execução"
			status = http.StatusConflict
		}

		writeJSON(w, r, status, map[string]any{
			"message": message,
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for name, job := range services {
			if job != nil {
				status[name] = job.GetStatus()
			}
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
