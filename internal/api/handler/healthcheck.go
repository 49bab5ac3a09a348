package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kenazlabs/kenaz-analytics-api/internal/config"
)

const serviceName = "kenaz-complete-analytics"

type HealthcheckResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func HealthcheckHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(HealthcheckResponse{
			Status:    "healthy",
			Service:   serviceName,
			Version:   cfg.App.Version,
			Timestamp: time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// RootHandler serves the service banner with the endpoint map.
func RootHandler(cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		err := json.NewEncoder(w).Encode(map[string]any{
			"service": "Kenaz Complete Analytics API",
			"version": cfg.App.Version,
			"endpoints": map[string]string{
				"health":                 "/healthcheck",
				"login":                  "/v1/login (POST)",
				"ad_insights":            "/v1/insights/ad (POST)",
				"ad_insights_llm":        "/v1/insights/ad/llm (POST)",
				"video_prompt":           "/v1/prompts/video-analysis (GET)",
				"influencer_prompt":      "/v1/prompts/influencer-analysis (GET)",
				"language_extraction":    "/v1/analysis/languages (POST)",
				"product_categorization": "/v1/products/categorize (POST)",
				"insight_history":        "/v1/insights/history (GET)",
			},
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to root banner")
		}
	})
}
