package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/kenazlabs/kenaz-analytics-api/internal/scheduler"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/apiErrors"
)

const (
	CronJobTypeHistoryCleanup = "history-cleanup"
	CronJobTypeAll            = "all"
)

// CronJobServices holds the schedulers that can be triggered manually.
type CronJobServices struct {
	HistoryCleanupService *scheduler.HistoryCleanupService
}

// RunCronJob triggers a scheduled job outside its cron window.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeHistoryCleanup, CronJobTypeAll:
			if services.HistoryCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "History cleanup service is not available", nil)
				return
			}
			services.HistoryCleanupService.TriggerManualRun()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: history-cleanup, all", nil)
			return
		}

		logrus.WithField("type", cronType).Info("cron job triggered manually")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus reports the state of the scheduled jobs.
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.HistoryCleanupService != nil {
			status["history_cleanup"] = services.HistoryCleanupService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
