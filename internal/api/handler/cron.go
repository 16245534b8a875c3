package handler

import (
	"net/http"
	"sort"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-analytics-api/pkg/apiErrors"
)

// Tipos de cron job que podem ser executados manualmente
const (
	CronJobTypeKPIDigest = "kpi-digest"
	CronJobTypeAll       = "all"
)

// CronJob é um serviço agendado que aceita execução manual
type CronJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices associa cada tipo de cron job ao seu serviço
type CronJobServices map[string]CronJob

func (s CronJobServices) types() []string {
	types := make([]string, 0, len(s))
	for jobType := range s {
		types = append(types, jobType)
	}
	sort.Strings(types)
	return types
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Execução manual de cron job solicitada")

		if cronType == CronJobTypeAll {
			for _, jobType := range services.types() {
				services[jobType].TriggerManualSync()
			}
		} else {
			job, exists := services[cronType]
			if !exists || job == nil {
				accepted := append(services.types(), CronJobTypeAll)
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: "+strings.Join(accepted, ", "), nil)
				return
			}
			job.TriggerManualSync()
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		writeJSON(w, r, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any, len(services))
		for jobType, job := range services {
			if job != nil {
				status[jobType] = job.GetStatus()
			}
		}

		writeJSON(w, r, status)
	}
}
