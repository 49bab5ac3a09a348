package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/kenazlabs/kenaz-analytics-api/infrastructure/repository"
	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/apiErrors"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/log"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type InsightHistoryResponse struct {
	Entries []*domain.InsightHistoryEntry `json:"entries"`
	Count   int                           `json:"count"`
}

// GetInsightHistory lists recently generated insights, optionally filtered
// by ad name via the ad_name query parameter.
func GetInsightHistory(repo repository.InsightHistoryRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if repo == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Insight history is not available", nil)
			return
		}

		limit := defaultHistoryLimit
		if rawLimit := r.URL.Query().Get("limit"); rawLimit != "" {
			parsed, err := strconv.Atoi(rawLimit)
			if err != nil || parsed <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit must be a positive integer", nil)
				return
			}
			limit = parsed
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}

		var (
			entries []*domain.InsightHistoryEntry
			err     error
		)

		adName := strings.TrimSpace(r.URL.Query().Get("ad_name"))
		if adName != "" {
			entries, err = repo.ListByAdName(r.Context(), adName, limit)
		} else {
			entries, err = repo.ListRecent(r.Context(), limit)
		}
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("failed to list insight history")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Failed to list insight history", nil)
			return
		}

		if entries == nil {
			entries = []*domain.InsightHistoryEntry{}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(InsightHistoryResponse{
			Entries: entries,
			Count:   len(entries),
		})
	}
}
