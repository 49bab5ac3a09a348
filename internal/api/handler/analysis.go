package handler

import (
	"net/http"
	"strings"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/internal/usecases/analyzing"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/apiErrors"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/log"
)

// ExtractLanguages returns the dominant spoken and written language from a
// video content analysis.
func ExtractLanguages(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.LanguageExtractionRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		result := service.ExtractLanguages(r.Context(), req.VideoContentAnalysis)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"spoken_language":  result.SpokenLanguage,
			"written_language": result.WrittenLanguage,
		}).Info("extracted languages")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}

// CategorizeProduct classifies a new product name into the catalog taxonomy.
func CategorizeProduct(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProductCategorizationRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		if strings.TrimSpace(req.NewProductName) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "new_product_name is required", nil)
			return
		}

		result := service.CategorizeProduct(r.Context(), &req)

		log.ForContext(r.Context()).WithFields(log.Fields{
			"product":  req.NewProductName,
			"category": result.Category,
		}).Info("categorized product")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}
}
