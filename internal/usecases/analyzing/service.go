package analyzing

import (
	"context"
	"strings"

	"github.com/kenazlabs/kenaz-analytics-api/internal/domain"
	"github.com/kenazlabs/kenaz-analytics-api/pkg/log"
)

type Service struct{}

func NewService() Analyzer {
	return &Service{}
}

// ExtractLanguages returns the top-ranked spoken and written language from a
// video content analysis, "NA" for any axis without detectable content.
func (s *Service) ExtractLanguages(ctx context.Context, analysis map[string]any) *domain.LanguageResult {
	result := &domain.LanguageResult{
		SpokenLanguage:  dominantLanguage(analysis["speech_spoken"], noSpokenContentMarker),
		WrittenLanguage: dominantLanguage(analysis["written_text_on_screen"], noWrittenContentMarker),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"spoken_language":  result.SpokenLanguage,
		"written_language": result.WrittenLanguage,
	}).Debug("analysis: extracted dominant languages")

	return result
}

// CategorizeProduct assigns a catalog category and composite subcategory to
// a product name. An unexpected panic degrades to the "Unknown" fallback
// rather than failing the request.
func (s *Service) CategorizeProduct(ctx context.Context, req *domain.ProductCategorizationRequest) (result *domain.ProductCategorization) {
	logger := log.ForContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.WithField("panic", r).Error("analysis: product categorization panicked")
			result = &domain.ProductCategorization{
				NewProductName: req.NewProductName,
				Category:       "Unknown",
				Subcategory:    "Unknown",
				Reasoning:      "Internal categorization error",
			}
		}
	}()

	lower := strings.ToLower(req.NewProductName)

	result = &domain.ProductCategorization{
		NewProductName: req.NewProductName,
		Category:       categorize(lower),
		Subcategory:    subcategorize(lower),
		Reasoning:      "Classified based on product name keywords and structure",
	}

	logger.WithFields(log.Fields{
		"product":     req.NewProductName,
		"category":    result.Category,
		"subcategory": result.Subcategory,
	}).Debug("analysis: categorized product")

	return result
}
