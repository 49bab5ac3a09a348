package handler

import (
	"net/http"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/insighting"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/apiErrors"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/log"
)

// GenerateAdInsight serves the deterministic rule-based insight.
func GenerateAdInsight(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := decodeAdMetrics(w, r)
		if !ok {
			return
		}

		result, err := service.GenerateInsight(r.Context(), metrics)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("insight generation failed")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Failed to generate insight", nil)
			return
		}

		writeInsightResult(w, r, metrics, result)
	}
}

// GenerateAdInsightLLM serves the LLM-narrated insight. A collaborator
// failure maps to 502 so callers can fall back to the rule-based endpoint.
func GenerateAdInsightLLM(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics, ok := decodeAdMetrics(w, r)
		if !ok {
			return
		}

		result, err := service.GenerateLLMInsight(r.Context(), metrics)
		if err != nil {
			log.ForContext(r.Context()).WithError(err).
				WithField("ad_name", metrics.DisplayName()).
				Error("LLM insight generation failed")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "LLM narrative generation failed", nil)
			return
		}

		writeInsightResult(w, r, metrics, result)
	}
}

func decodeAdMetrics(w http.ResponseWriter, r *http.Request) (*domain.AdMetrics, bool) {
	var metrics domain.AdMetrics

	if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
		return nil, false
	}

	if err := metrics.Validate(); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
		return nil, false
	}

	return &metrics, true
}

func writeInsightResult(w http.ResponseWriter, r *http.Request, metrics *domain.AdMetrics, result *domain.InsightResult) {
	log.ForContext(r.Context()).WithFields(log.Fields{
		"ad_name": metrics.DisplayName(),
		"roas":    result.Diagnostics.ROAS,
	}).Info("generated insight")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("error encoding insight response")
	}
}
